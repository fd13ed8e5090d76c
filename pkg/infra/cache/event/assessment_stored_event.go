package event

import "time"

// AssessmentStoredEvent feeds the live dashboard on every replica.
type AssessmentStoredEvent struct {
	ConversationID string              `json:"conversation_id"`
	AgentID        string              `json:"agent_id"`
	RiskLevel      string              `json:"risk_level"`
	RiskScore      int                 `json:"risk_score"`
	Label          string              `json:"label"`
	Summary        string              `json:"conversation_summary"`
	Indicators     map[string][]string `json:"indicators,omitempty"`
	DetectedAt     time.Time           `json:"detected_at"`
}

func (e AssessmentStoredEvent) Type() string {
	return AssessmentStoredEventType
}
