package response

import "github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"

type ListAssessmentsOutput struct {
	Assessments []assessment.Record `json:"assessments"`
	Count       int                 `json:"count"`
}
