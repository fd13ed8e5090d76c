package riskengine

import (
	"errors"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

var ErrInvalidThresholds = errors.New("thresholds must satisfy 0 <= medium <= high <= critical <= 100")

// Thresholds are the minimum scores of each tier; anything below Medium is low.
type Thresholds struct {
	Critical int `json:"critical" mapstructure:"critical"`
	High     int `json:"high" mapstructure:"high"`
	Medium   int `json:"medium" mapstructure:"medium"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{Critical: 90, High: 60, Medium: 25}
}

func (t Thresholds) Validate() error {
	if t.Medium < 0 || t.Medium > t.High || t.High > t.Critical || t.Critical > MaxScore {
		return ErrInvalidThresholds
	}
	return nil
}

// CategoryFor maps a score to a tier, checking from the top down.
func (t Thresholds) CategoryFor(score int) risk.Category {
	switch {
	case score >= t.Critical:
		return risk.Critical
	case score >= t.High:
		return risk.High
	case score >= t.Medium:
		return risk.Medium
	default:
		return risk.Low
	}
}
