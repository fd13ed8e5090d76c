package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
)

// envelope is the pub/sub wire format; Type selects the concrete event from
// the listener registry.
type envelope struct {
	Type   string          `json:"type"`
	Event  json.RawMessage `json:"event"`
	SentAt int64           `json:"sent_at,omitempty"`
}

func encodeMessage(ev event.Event) (string, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return "", fmt.Errorf("encode %s event: %w", ev.Type(), err)
	}
	data, err := json.Marshal(envelope{
		Type:   ev.Type(),
		Event:  b,
		SentAt: time.Now().UnixMilli(),
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeEnvelope(payload string) (envelope, error) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		return envelope{}, err
	}
	if env.Type == "" {
		return envelope{}, fmt.Errorf("message has no event type")
	}
	return env, nil
}

// lag is how long the message spent in transit, zero when unknown.
func (e envelope) lag(now time.Time) time.Duration {
	if e.SentAt == 0 {
		return 0
	}
	return now.Sub(time.UnixMilli(e.SentAt))
}
