package transcript

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAgent
}

type Message struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// Transcript is the read-only conversation handed to the risk engine.
type Transcript struct {
	Messages        []Message `json:"messages"`
	DurationSeconds float64   `json:"duration_seconds"`
}

func New(messages []Message, durationSeconds float64) Transcript {
	return Transcript{Messages: messages, DurationSeconds: durationSeconds}
}

func (t Transcript) UserMessages() []Message {
	var out []Message
	for _, m := range t.Messages {
		if m.Role == RoleUser {
			out = append(out, m)
		}
	}
	return out
}

// UserText joins the content of user turns with newlines so a phrase can
// never be matched across two turns. Agent turns are excluded.
func (t Transcript) UserText() string {
	var b strings.Builder
	for i, m := range t.UserMessages() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Content)
	}
	return b.String()
}

func (t Transcript) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *Transcript) Scan(value interface{}) error {
	if value == nil {
		*t = Transcript{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("expected []byte, got %T", value)
	}
	return json.Unmarshal(data, t)
}
