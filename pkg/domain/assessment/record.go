package assessment

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/transcript"
	"github.com/google/uuid"
)

const defaultCallSummary = "Comprehensive risk analysis completed based on conversation content."

// Record is the persisted form of an assessment, one per conversation.
type Record struct {
	ID                  uuid.UUID             `json:"id" gorm:"type:uuid;primaryKey"`
	ConversationID      string                `json:"conversation_id" gorm:"uniqueIndex"`
	AgentID             string                `json:"agent_id"`
	UserID              *string               `json:"user_id"`
	RiskLevel           risk.Category         `json:"risk_level" gorm:"index"`
	RiskScore           int                   `json:"risk_score"`
	Assessment          Assessment            `json:"assessment" gorm:"type:jsonb"`
	Transcript          transcript.Transcript `json:"-" gorm:"type:jsonb"`
	ConversationSummary string                `json:"conversation_summary"`
	CallSummary         string                `json:"call_summary"`
	DetectedAt          time.Time             `json:"detected_at" gorm:"index"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

func (r Record) TableName() string {
	return "public.risk_assessments"
}

// NewRecord wraps an assessment for storage. The summary line mirrors what the
// dashboard shows: "<label> - <description>. <call summary>".
func NewRecord(
	conversationID string,
	agentID string,
	userID *string,
	a *Assessment,
	t transcript.Transcript,
	callSummary string,
	detectedAt time.Time,
) (*Record, error) {
	id, err := uuid.NewV6()
	if err != nil {
		return nil, fmt.Errorf("failed to generate UUID: %w", err)
	}
	if callSummary == "" {
		callSummary = defaultCallSummary
	}
	if detectedAt.IsZero() {
		detectedAt = a.RiskFactors.AnalyzedAt
	}
	now := time.Now()
	return &Record{
		ID:                  id,
		ConversationID:      conversationID,
		AgentID:             agentID,
		UserID:              userID,
		RiskLevel:           a.RiskLevel,
		RiskScore:           a.RiskScore,
		Assessment:          *a,
		Transcript:          t,
		ConversationSummary: composeSummary(a, callSummary),
		CallSummary:         callSummary,
		DetectedAt:          detectedAt,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// Reassess replaces the verdict of an existing record, keeping its identity,
// transcript and call summary.
func (r *Record) Reassess(a *Assessment) {
	callSummary := r.CallSummary
	if callSummary == "" {
		callSummary = defaultCallSummary
	}
	r.RiskLevel = a.RiskLevel
	r.RiskScore = a.RiskScore
	r.Assessment = *a
	r.ConversationSummary = composeSummary(a, callSummary)
	r.UpdatedAt = time.Now()
}

func composeSummary(a *Assessment, callSummary string) string {
	return fmt.Sprintf(
		"EU AI Act Assessment: %s - %s. %s",
		a.EUAssessment.Label, a.EUAssessment.Description, callSummary,
	)
}

// Stats aggregates stored assessments for the dashboard.
type Stats struct {
	Total        int                   `json:"total"`
	ByLevel      map[risk.Category]int `json:"by_level"`
	AverageScore int                   `json:"average_score"`
}
