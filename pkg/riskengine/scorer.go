package riskengine

import (
	"strings"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

const (
	DefaultBaseScore = 5
	MaxScore         = 100
)

type CategoryScore struct {
	Matched  []string
	Subscore int
}

// ScoreBreakdown is the per-call scoring result. It lives only for the
// duration of one assessment.
type ScoreBreakdown struct {
	Total           int
	Categories      map[risk.Category]CategoryScore
	KeywordCategory risk.Category
}

type Scorer struct {
	baseScore int
}

func NewScorer(baseScore int) *Scorer {
	if baseScore < 0 {
		baseScore = 0
	}
	return &Scorer{baseScore: baseScore}
}

func (s *Scorer) BaseScore() int {
	return s.baseScore
}

// Score matches text against the corpus. Matching is plain substring
// containment on the lowercased text: each distinct phrase counts at most
// once no matter how often it occurs or is listed, and nested phrases count
// independently.
func (s *Scorer) Score(corpus *Corpus, text string) ScoreBreakdown {
	normalized := strings.ToLower(text)

	breakdown := ScoreBreakdown{
		Total:           s.baseScore,
		Categories:      make(map[risk.Category]CategoryScore, len(risk.Categories())),
		KeywordCategory: risk.Low,
	}

	for _, category := range risk.Categories() {
		set := corpus.sets[category]
		matched := []string{}
		if normalized != "" {
			seen := make(map[string]struct{})
			for _, phrase := range set.Keywords {
				if _, dup := seen[phrase]; dup {
					continue
				}
				if strings.Contains(normalized, phrase) {
					seen[phrase] = struct{}{}
					matched = append(matched, phrase)
				}
			}
		}

		subscore := len(matched) * set.Weight
		breakdown.Categories[category] = CategoryScore{Matched: matched, Subscore: subscore}
		breakdown.Total += subscore

		if len(matched) > 0 {
			breakdown.KeywordCategory = risk.MoreSevere(breakdown.KeywordCategory, category)
		}
	}

	if breakdown.Total > MaxScore {
		breakdown.Total = MaxScore
	}
	return breakdown
}
