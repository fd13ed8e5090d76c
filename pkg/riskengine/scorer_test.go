package riskengine

import (
	"testing"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholds_CategoryFor(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		score int
		want  risk.Category
	}{
		{100, risk.Critical},
		{90, risk.Critical},
		{89, risk.High},
		{60, risk.High},
		{59, risk.Medium},
		{25, risk.Medium},
		{24, risk.Low},
		{0, risk.Low},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, th.CategoryFor(tt.score), "score %d", tt.score)
	}
}

func TestThresholds_Validate(t *testing.T) {
	assert.NoError(t, DefaultThresholds().Validate())
	assert.NoError(t, Thresholds{Critical: 50, High: 50, Medium: 50}.Validate())

	invalid := []Thresholds{
		{Critical: 90, High: 95, Medium: 25},
		{Critical: 90, High: 60, Medium: 70},
		{Critical: 101, High: 60, Medium: 25},
		{Critical: 90, High: 60, Medium: -1},
	}
	for _, th := range invalid {
		assert.ErrorIs(t, th.Validate(), ErrInvalidThresholds, "%+v", th)
	}
}

func TestScorer_Score(t *testing.T) {
	c, err := NewCorpus(testSets())
	require.NoError(t, err)
	s := NewScorer(5)

	t.Run("empty text", func(t *testing.T) {
		got := s.Score(c, "")
		assert.Equal(t, 5, got.Total)
		assert.Equal(t, risk.Low, got.KeywordCategory)
		for _, cat := range risk.Categories() {
			assert.NotNil(t, got.Categories[cat].Matched)
			assert.Empty(t, got.Categories[cat].Matched)
		}
	})

	t.Run("subscores per category", func(t *testing.T) {
		got := s.Score(c, "Beta and GAMMA and delta, delta again")
		assert.Equal(t, 5+30+10+2, got.Total)
		assert.Equal(t, 30, got.Categories[risk.High].Subscore)
		assert.Equal(t, []string{"delta"}, got.Categories[risk.Low].Matched)
		assert.Equal(t, risk.High, got.KeywordCategory)
	})

	t.Run("substring containment", func(t *testing.T) {
		got := s.Score(c, "alphabet")
		assert.Equal(t, []string{"alpha"}, got.Categories[risk.Critical].Matched)
		assert.Equal(t, risk.Critical, got.KeywordCategory)
	})

	t.Run("phrase listed twice counts once", func(t *testing.T) {
		sets := testSets()
		sets[risk.Medium] = KeywordSet{Keywords: []string{"gamma", "gamma"}, Weight: 10}
		dup, err := NewCorpus(sets)
		require.NoError(t, err)

		got := s.Score(dup, "gamma gamma")
		assert.Equal(t, 15, got.Total)
		assert.Equal(t, []string{"gamma"}, got.Categories[risk.Medium].Matched)
	})

	t.Run("capped at max", func(t *testing.T) {
		got := s.Score(c, "alpha beta")
		assert.Equal(t, MaxScore, got.Total)
	})

	t.Run("zero weight still sets keyword category", func(t *testing.T) {
		sets := testSets()
		sets[risk.Medium] = KeywordSet{Keywords: []string{"gamma"}, Weight: 0}
		zero, err := NewCorpus(sets)
		require.NoError(t, err)

		got := s.Score(zero, "gamma")
		assert.Equal(t, 5, got.Total)
		assert.Equal(t, risk.Medium, got.KeywordCategory)
	})
}

func TestNewScorer_ClampsNegativeBase(t *testing.T) {
	assert.Equal(t, 0, NewScorer(-3).BaseScore())
}
