package request

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/transcript"
)

// ConversationWebhookRequest is the post-call payload sent by the voice
// agent platform.
type ConversationWebhookRequest struct {
	EventType      string    `json:"event_type"`
	ConversationID string    `json:"conversation_id"`
	AgentID        string    `json:"agent_id"`
	UserID         *string   `json:"user_id,omitempty"`
	CallData       *CallData `json:"call_data,omitempty"`
	Timestamp      string    `json:"timestamp"`
}

type CallData struct {
	ConversationID  string                 `json:"conversation_id"`
	StartTime       string                 `json:"start_time"`
	EndTime         string                 `json:"end_time"`
	DurationSeconds float64                `json:"duration_seconds"`
	Transcript      *CallTranscript        `json:"transcript,omitempty"`
	Analysis        *CallAnalysis          `json:"analysis,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

type CallTranscript struct {
	Messages       []CallMessage `json:"messages"`
	FullTranscript string        `json:"full_transcript"`
}

type CallMessage struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

type CallAnalysis struct {
	Summary   string   `json:"summary"`
	Sentiment string   `json:"sentiment"`
	Topics    []string `json:"topics"`
}

var ErrMissingTranscript = errors.New("call_data.transcript is required")

// Validate rejects payloads that would store a verdict without any
// conversation behind it, which would overwrite an earlier assessment.
func (r *ConversationWebhookRequest) Validate() error {
	if strings.TrimSpace(r.ConversationID) == "" && r.CallData != nil {
		r.ConversationID = r.CallData.ConversationID
	}
	if strings.TrimSpace(r.ConversationID) == "" {
		return errors.New("conversation_id is required")
	}
	if !r.hasTranscript() {
		return ErrMissingTranscript
	}
	return nil
}

func (r *ConversationWebhookRequest) hasTranscript() bool {
	if r.CallData == nil || r.CallData.Transcript == nil {
		return false
	}
	t := r.CallData.Transcript
	return len(t.Messages) > 0 || strings.TrimSpace(t.FullTranscript) != ""
}

// ShouldProcess reports whether the event carries a finished call.
func (r *ConversationWebhookRequest) ShouldProcess(eventTypes []string) bool {
	if r.CallData != nil {
		return true
	}
	for _, t := range eventTypes {
		if r.EventType == t {
			return true
		}
	}
	return false
}

// Transcript converts the call transcript. When the platform only sends the
// flattened text it is treated as a single user turn.
func (r *ConversationWebhookRequest) Transcript() transcript.Transcript {
	if r.CallData == nil {
		return transcript.Transcript{}
	}
	var messages []transcript.Message
	if t := r.CallData.Transcript; t != nil {
		for _, m := range t.Messages {
			messages = append(messages, transcript.Message{
				Role:      transcript.Role(strings.ToLower(m.Role)),
				Content:   m.Content,
				Timestamp: m.Timestamp,
			})
		}
		if len(messages) == 0 && strings.TrimSpace(t.FullTranscript) != "" {
			messages = []transcript.Message{{Role: transcript.RoleUser, Content: t.FullTranscript}}
		}
	}
	return transcript.New(messages, r.CallData.DurationSeconds)
}

func (r *ConversationWebhookRequest) CallSummary() string {
	if r.CallData == nil || r.CallData.Analysis == nil {
		return ""
	}
	return r.CallData.Analysis.Summary
}

func (r *ConversationWebhookRequest) MessageCount() int {
	if r.CallData == nil || r.CallData.Transcript == nil {
		return 0
	}
	return len(r.CallData.Transcript.Messages)
}

func (r *ConversationWebhookRequest) DurationSeconds() float64 {
	if r.CallData == nil {
		return 0
	}
	return r.CallData.DurationSeconds
}

// DetectedAt parses the event timestamp, either RFC3339 or unix seconds.
// The zero time is returned when it is absent or unreadable.
func (r *ConversationWebhookRequest) DetectedAt() time.Time {
	ts := strings.TrimSpace(r.Timestamp)
	if ts == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.UTC()
	}
	if secs, err := strconv.ParseInt(ts, 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}
	return time.Time{}
}
