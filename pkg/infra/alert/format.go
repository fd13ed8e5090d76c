package alert

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
)

type Event struct {
	Timestamp      string              `json:"timestamp"`
	ConversationID string              `json:"conversation_id"`
	AgentID        string              `json:"agent_id"`
	RiskLevel      string              `json:"risk_level"`
	RiskScore      int                 `json:"risk_score"`
	Label          string              `json:"label"`
	Summary        string              `json:"summary"`
	Requirements   []string            `json:"compliance_requirements"`
	Indicators     map[string][]string `json:"indicators,omitempty"`
}

func NewEvent(r *assessment.Record) Event {
	return Event{
		Timestamp:      r.DetectedAt.UTC().Format(time.RFC3339),
		ConversationID: r.ConversationID,
		AgentID:        r.AgentID,
		RiskLevel:      string(r.RiskLevel),
		RiskScore:      r.RiskScore,
		Label:          r.Assessment.EUAssessment.Label,
		Summary:        r.ConversationSummary,
		Requirements:   r.Assessment.EUAssessment.ComplianceRequirements,
		Indicators:     r.Assessment.RiskFactors.Indicators,
	}
}

// FormatPayload renders the body for "slack" or, by default, plain JSON.
func FormatPayload(format string, event Event) ([]byte, error) {
	switch format {
	case "slack":
		return formatSlack(event)
	default:
		return json.Marshal(event)
	}
}

func formatSlack(event Event) ([]byte, error) {
	requirements := "-"
	if len(event.Requirements) > 0 {
		requirements = "• " + strings.Join(event.Requirements, "\n• ")
	}
	payload := map[string]any{
		"text": fmt.Sprintf("EU AI Act %s risk detected in conversation %s", event.Label, event.ConversationID),
		"blocks": []any{
			map[string]any{
				"type": "header",
				"text": map[string]any{
					"type": "plain_text",
					"text": fmt.Sprintf("trustassess: %s", event.Label),
				},
			},
			map[string]any{
				"type": "section",
				"fields": []any{
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Conversation:* %s", event.ConversationID)},
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Agent:* %s", event.AgentID)},
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Score:* %d (%s)", event.RiskScore, event.RiskLevel)},
					map[string]any{"type": "mrkdwn", "text": fmt.Sprintf("*Detected:* %s", event.Timestamp)},
				},
			},
			map[string]any{
				"type": "section",
				"text": map[string]any{"type": "mrkdwn", "text": requirements},
			},
		},
	}
	return json.Marshal(payload)
}
