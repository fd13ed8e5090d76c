package assessment

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

const (
	AnalysisType        = "eu_ai_act_compliance"
	AssessmentFramework = "EU AI Act Risk Categorization"
	EUAIActVersion      = "2024"

	keywordsSuffix = "_keywords"
	scoreSuffix    = "_score"
)

// CategoryEvidence is the matched-keyword evidence and sub-score of one category.
type CategoryEvidence struct {
	Matched  []string `json:"matched"`
	Subscore int      `json:"subscore"`
}

// RiskFactors carries the evidence behind an assessment. On the wire the
// per-category evidence is flattened into <category>_keywords and
// <category>_score keys, which is what dashboards read.
type RiskFactors struct {
	Categories           map[risk.Category]CategoryEvidence
	KeywordCategory      risk.Category
	ThresholdCategory    risk.Category
	MessageCount         int
	UserMessageCount     int
	ConversationDuration float64
	AnalyzedAt           time.Time
	Indicators           map[string][]string
}

func (f RiskFactors) Evidence(c risk.Category) CategoryEvidence {
	ev, ok := f.Categories[c]
	if !ok {
		return CategoryEvidence{Matched: []string{}}
	}
	if ev.Matched == nil {
		ev.Matched = []string{}
	}
	return ev
}

// MatchCounts returns the number of matched phrases per category.
func (f RiskFactors) MatchCounts() map[risk.Category]int {
	counts := make(map[risk.Category]int, len(risk.Categories()))
	for _, c := range risk.Categories() {
		counts[c] = len(f.Evidence(c).Matched)
	}
	return counts
}

func (f RiskFactors) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{
		"analysis_type":         AnalysisType,
		"assessment_framework":  AssessmentFramework,
		"eu_ai_act_version":     EUAIActVersion,
		"conversation_duration": f.ConversationDuration,
		"message_count":         f.MessageCount,
		"user_message_count":    f.UserMessageCount,
		"analyzed_at":           f.AnalyzedAt.UTC().Format(time.RFC3339),
		"keyword_category":      f.KeywordCategory,
		"threshold_category":    f.ThresholdCategory,
	}
	for _, c := range risk.Categories() {
		ev := f.Evidence(c)
		out[string(c)+keywordsSuffix] = ev.Matched
		out[string(c)+scoreSuffix] = ev.Subscore
	}
	indicators := f.Indicators
	if indicators == nil {
		indicators = map[string][]string{}
	}
	out["indicators"] = indicators
	return json.Marshal(out)
}

func (f *RiskFactors) UnmarshalJSON(data []byte) error {
	var raw struct {
		ConversationDuration float64             `json:"conversation_duration"`
		MessageCount         int                 `json:"message_count"`
		UserMessageCount     int                 `json:"user_message_count"`
		AnalyzedAt           time.Time           `json:"analyzed_at"`
		KeywordCategory      risk.Category       `json:"keyword_category"`
		ThresholdCategory    risk.Category       `json:"threshold_category"`
		Indicators           map[string][]string `json:"indicators"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	categories := make(map[risk.Category]CategoryEvidence, len(risk.Categories()))
	for _, c := range risk.Categories() {
		ev := CategoryEvidence{Matched: []string{}}
		if v, ok := fields[string(c)+keywordsSuffix]; ok {
			if err := json.Unmarshal(v, &ev.Matched); err != nil {
				return fmt.Errorf("decode %s%s: %w", c, keywordsSuffix, err)
			}
		}
		if v, ok := fields[string(c)+scoreSuffix]; ok {
			if err := json.Unmarshal(v, &ev.Subscore); err != nil {
				return fmt.Errorf("decode %s%s: %w", c, scoreSuffix, err)
			}
		}
		categories[c] = ev
	}

	*f = RiskFactors{
		Categories:           categories,
		KeywordCategory:      raw.KeywordCategory,
		ThresholdCategory:    raw.ThresholdCategory,
		MessageCount:         raw.MessageCount,
		UserMessageCount:     raw.UserMessageCount,
		ConversationDuration: raw.ConversationDuration,
		AnalyzedAt:           raw.AnalyzedAt,
		Indicators:           raw.Indicators,
	}
	return nil
}

type EUAssessment struct {
	Category               risk.Category `json:"category"`
	Label                  string        `json:"label"`
	Description            string        `json:"description"`
	ComplianceRequirements []string      `json:"compliance_requirements"`
}

// Assessment is the result of classifying one transcript. It is built once
// and never mutated afterwards.
type Assessment struct {
	RiskLevel    risk.Category `json:"risk_level"`
	RiskScore    int           `json:"risk_score"`
	RiskFactors  RiskFactors   `json:"risk_factors"`
	EUAssessment EUAssessment  `json:"eu_assessment"`
}

func (a Assessment) IsAlerting() bool {
	return a.RiskLevel == risk.Critical || a.RiskLevel == risk.High
}

func (a Assessment) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Assessment) Scan(value interface{}) error {
	if value == nil {
		*a = Assessment{}
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
	return json.Unmarshal(data, a)
}
