package repository

import (
	"testing"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/stretchr/testify/assert"
)

func TestBuildStats(t *testing.T) {
	tests := []struct {
		name    string
		in      map[string]levelTotals
		total   int
		average int
		byLevel map[risk.Category]int
	}{
		{
			name:    "empty table",
			in:      map[string]levelTotals{},
			total:   0,
			average: 0,
			byLevel: map[risk.Category]int{risk.Critical: 0, risk.High: 0, risk.Medium: 0, risk.Low: 0},
		},
		{
			name: "rounded average",
			in: map[string]levelTotals{
				"critical": {count: 1, scoreSum: 100},
				"high":     {count: 2, scoreSum: 130},
				"low":      {count: 3, scoreSum: 21},
			},
			total:   6,
			average: 42,
			byLevel: map[risk.Category]int{risk.Critical: 1, risk.High: 2, risk.Medium: 0, risk.Low: 3},
		},
		{
			name: "unknown levels are ignored",
			in: map[string]levelTotals{
				"medium":  {count: 2, scoreSum: 31},
				"unknown": {count: 9, scoreSum: 900},
			},
			total:   2,
			average: 16,
			byLevel: map[risk.Category]int{risk.Critical: 0, risk.High: 0, risk.Medium: 2, risk.Low: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildStats(tt.in)
			assert.Equal(t, tt.total, got.Total)
			assert.Equal(t, tt.average, got.AverageScore)
			assert.Equal(t, tt.byLevel, got.ByLevel)
		})
	}
}
