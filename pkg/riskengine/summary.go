package riskengine

import "github.com/NeuralTrust/TrustAssess/pkg/domain/risk"

const ComplianceFramework = "EU AI Act 2024"

type CategorySummary struct {
	KeywordCount int    `json:"keyword_count"`
	Weight       int    `json:"weight"`
	Description  string `json:"description"`
	Label        string `json:"label"`
}

// Summary describes the active configuration, as shown on the admin page.
type Summary struct {
	RiskCategories      []risk.Category                   `json:"risk_categories"`
	Categories          map[risk.Category]CategorySummary `json:"categories"`
	TotalKeywords       int                               `json:"total_keywords"`
	ScoringConfig       ScoringConfig                     `json:"scoring_config"`
	ComplianceFramework string                            `json:"compliance_framework"`
	AssessmentType      string                            `json:"assessment_type"`
	LabelMapping        map[risk.Category]string          `json:"label_mapping"`
}

func Summarize(corpus *Corpus, cfg ScoringConfig) Summary {
	labels := LabelMapping()
	categories := make(map[risk.Category]CategorySummary, len(corpus.sets))
	for c, set := range corpus.sets {
		categories[c] = CategorySummary{
			KeywordCount: len(set.Keywords),
			Weight:       set.Weight,
			Description:  set.Description,
			Label:        labels[c],
		}
	}
	return Summary{
		RiskCategories:      risk.Categories(),
		Categories:          categories,
		TotalKeywords:       corpus.TotalKeywords(),
		ScoringConfig:       cfg,
		ComplianceFramework: ComplianceFramework,
		AssessmentType:      "risk_categorization",
		LabelMapping:        labels,
	}
}
