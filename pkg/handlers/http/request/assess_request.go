package request

import (
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/transcript"
)

const maxAssessMessages = 5000

type AssessRequest struct {
	Messages        []transcript.Message `json:"messages"`
	DurationSeconds float64              `json:"duration_seconds"`
}

func (r *AssessRequest) Validate() error {
	if len(r.Messages) > maxAssessMessages {
		return fmt.Errorf("at most %d messages can be assessed at once", maxAssessMessages)
	}
	if r.DurationSeconds < 0 {
		return fmt.Errorf("duration_seconds must not be negative")
	}
	for i := range r.Messages {
		r.Messages[i].Role = transcript.Role(strings.ToLower(strings.TrimSpace(string(r.Messages[i].Role))))
		if !r.Messages[i].Role.Valid() {
			return fmt.Errorf("messages[%d]: role must be 'user' or 'agent'", i)
		}
	}
	return nil
}

func (r *AssessRequest) Transcript() transcript.Transcript {
	return transcript.New(r.Messages, r.DurationSeconds)
}
