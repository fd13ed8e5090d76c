package riskengine

import (
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/transcript"
)

type Assessor interface {
	Assess(t transcript.Transcript) *assessment.Assessment
	Config() ScoringConfig
}

type ScoringConfig struct {
	BaseScore  int        `json:"base_score"`
	MaxScore   int        `json:"max_score"`
	Thresholds Thresholds `json:"thresholds"`
}

type assessorOptions struct {
	baseScore  int
	thresholds Thresholds
	clock      func() time.Time
}

type Option func(*assessorOptions)

func WithBaseScore(score int) Option {
	return func(o *assessorOptions) {
		o.baseScore = score
	}
}

func WithThresholds(t Thresholds) Option {
	return func(o *assessorOptions) {
		o.thresholds = t
	}
}

// WithClock overrides the source of the analyzed_at timestamp.
func WithClock(clock func() time.Time) Option {
	return func(o *assessorOptions) {
		o.clock = clock
	}
}

type assessor struct {
	source     CorpusSource
	scorer     *Scorer
	thresholds Thresholds
	clock      func() time.Time
}

// NewAssessor builds the classification pipeline over a corpus source. The
// returned Assessor keeps no per-call state and is safe for concurrent use.
func NewAssessor(source CorpusSource, opts ...Option) Assessor {
	o := &assessorOptions{
		baseScore:  DefaultBaseScore,
		thresholds: DefaultThresholds(),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return &assessor{
		source:     source,
		scorer:     NewScorer(o.baseScore),
		thresholds: o.thresholds,
		clock:      o.clock,
	}
}

func (a *assessor) Config() ScoringConfig {
	return ScoringConfig{
		BaseScore:  a.scorer.BaseScore(),
		MaxScore:   MaxScore,
		Thresholds: a.thresholds,
	}
}

// Assess scores the user turns of t and reconciles the two verdicts: the
// category implied by the score thresholds and the most severe category with
// a keyword hit. The more severe one wins, so diluting a conversation with
// low-weight keywords cannot hide a prohibited use.
func (a *assessor) Assess(t transcript.Transcript) *assessment.Assessment {
	corpus := a.source.Snapshot()
	text := t.UserText()

	breakdown := a.scorer.Score(corpus, text)
	thresholdCategory := a.thresholds.CategoryFor(breakdown.Total)
	final := risk.MoreSevere(thresholdCategory, breakdown.KeywordCategory)

	// the table covers the closed set of categories
	reg, err := RegulationFor(final)
	if err != nil {
		panic(err)
	}

	evidence := make(map[risk.Category]assessment.CategoryEvidence, len(breakdown.Categories))
	for c, cs := range breakdown.Categories {
		evidence[c] = assessment.CategoryEvidence{Matched: cs.Matched, Subscore: cs.Subscore}
	}

	return &assessment.Assessment{
		RiskLevel: final,
		RiskScore: breakdown.Total,
		RiskFactors: assessment.RiskFactors{
			Categories:           evidence,
			KeywordCategory:      breakdown.KeywordCategory,
			ThresholdCategory:    thresholdCategory,
			MessageCount:         len(t.Messages),
			UserMessageCount:     len(t.UserMessages()),
			ConversationDuration: t.DurationSeconds,
			AnalyzedAt:           a.clock().UTC(),
			Indicators:           matchIndicators(text),
		},
		EUAssessment: assessment.EUAssessment{
			Category:               final,
			Label:                  reg.Label,
			Description:            reg.Description,
			ComplianceRequirements: reg.Requirements,
		},
	}
}
