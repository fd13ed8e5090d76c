package response

import (
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

const (
	MessageProcessed    = "EU AI Act risk assessment processed successfully"
	MessageAcknowledged = "Webhook received and acknowledged"
	MessageStoreFailed  = "Failed to store EU AI Act risk assessment"
	ReasonNotConfigured = "Event type not configured for EU AI Act risk analysis"
)

type WebhookProcessed struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    WebhookProcessedData `json:"data"`
}

type WebhookProcessedData struct {
	RiskLevel              risk.Category           `json:"risk_level"`
	RiskScore              int                     `json:"risk_score"`
	EUAssessment           assessment.EUAssessment `json:"eu_assessment"`
	ConversationID         string                  `json:"conversation_id"`
	EventType              string                  `json:"event_type"`
	AnalysisType           string                  `json:"analysis_type"`
	DurationSeconds        float64                 `json:"duration_seconds"`
	MessageCount           int                     `json:"message_count"`
	KeywordMatches         map[risk.Category]int   `json:"keyword_matches"`
	ComplianceRequirements []string                `json:"compliance_requirements"`
	ProcessedAt            time.Time               `json:"processed_at"`
	SignatureVerified      bool                    `json:"signature_verified"`
	EUAIActVersion         string                  `json:"eu_ai_act_version"`
}

type WebhookAcknowledged struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Data    WebhookAcknowledgedData `json:"data"`
}

type WebhookAcknowledgedData struct {
	EventType         string    `json:"event_type"`
	ConversationID    string    `json:"conversation_id"`
	Processed         bool      `json:"processed"`
	Reason            string    `json:"reason"`
	SignatureVerified bool      `json:"signature_verified"`
	Timestamp         time.Time `json:"timestamp"`
}

type WebhookStoreFailed struct {
	Success          bool      `json:"success"`
	Error            string    `json:"error"`
	Message          string    `json:"message"`
	Details          string    `json:"details"`
	WebhookProcessed bool      `json:"webhook_processed"`
	Timestamp        time.Time `json:"timestamp"`
}

type WebhookFailed struct {
	Success         bool      `json:"success"`
	Error           string    `json:"error"`
	Message         string    `json:"message"`
	WebhookReceived bool      `json:"webhook_received"`
	Timestamp       time.Time `json:"timestamp"`
}

func NewWebhookProcessed(record *assessment.Record, eventType string, messageCount int, now time.Time) WebhookProcessed {
	a := record.Assessment
	return WebhookProcessed{
		Success: true,
		Message: MessageProcessed,
		Data: WebhookProcessedData{
			RiskLevel:              record.RiskLevel,
			RiskScore:              record.RiskScore,
			EUAssessment:           a.EUAssessment,
			ConversationID:         record.ConversationID,
			EventType:              eventType,
			AnalysisType:           assessment.AnalysisType,
			DurationSeconds:        a.RiskFactors.ConversationDuration,
			MessageCount:           messageCount,
			KeywordMatches:         a.RiskFactors.MatchCounts(),
			ComplianceRequirements: a.EUAssessment.ComplianceRequirements,
			ProcessedAt:            now.UTC(),
			SignatureVerified:      true,
			EUAIActVersion:         assessment.EUAIActVersion,
		},
	}
}

func NewWebhookAcknowledged(eventType, conversationID string, now time.Time) WebhookAcknowledged {
	return WebhookAcknowledged{
		Success: true,
		Message: MessageAcknowledged,
		Data: WebhookAcknowledgedData{
			EventType:         eventType,
			ConversationID:    conversationID,
			Processed:         false,
			Reason:            ReasonNotConfigured,
			SignatureVerified: true,
			Timestamp:         now.UTC(),
		},
	}
}
