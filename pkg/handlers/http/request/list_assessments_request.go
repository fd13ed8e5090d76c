package request

import (
	"fmt"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

type ListAssessmentsRequest struct {
	Limit int    `query:"limit"`
	Level string `query:"level"`
}

// Filter validates the query and converts it; the repository clamps the limit.
func (r *ListAssessmentsRequest) Filter() (assessment.ListFilter, error) {
	if r.Limit < 0 {
		return assessment.ListFilter{}, fmt.Errorf("limit must not be negative")
	}
	filter := assessment.ListFilter{Limit: r.Limit}
	if r.Level != "" {
		level, err := risk.Parse(r.Level)
		if err != nil {
			return assessment.ListFilter{}, err
		}
		filter.Level = &level
	}
	return filter, nil
}
