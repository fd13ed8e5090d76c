package riskengine

import (
	"fmt"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

// Regulation is the EU AI Act metadata attached to a category.
type Regulation struct {
	Label        string
	Description  string
	Requirements []string
}

var regulations = map[risk.Category]Regulation{
	risk.Critical: {
		Label:       "PROHIBITED",
		Description: "This AI system is prohibited under the EU AI Act and cannot be deployed",
		Requirements: []string{
			"System deployment is PROHIBITED under EU AI Act",
			"Immediate cessation of development required",
			"No market access permitted in EU",
		},
	},
	risk.High: {
		Label:       "HIGH-RISK",
		Description: "High-risk AI system requiring conformity assessment and strict compliance",
		Requirements: []string{
			"Conformity assessment by notified body required",
			"CE marking mandatory before market placement",
			"Risk management system implementation",
			"High-quality training data requirements",
			"Technical documentation maintenance",
			"Human oversight implementation",
			"Post-market monitoring system",
		},
	},
	risk.Medium: {
		Label:       "LIMITED RISK",
		Description: "Limited risk AI system requiring transparency obligations",
		Requirements: []string{
			"Transparency obligations required",
			"Clear disclosure of AI system use",
			"User information requirements",
			"Basic technical documentation",
		},
	},
	risk.Low: {
		Label:       "MINIMAL RISK",
		Description: "Minimal risk AI system with no specific regulatory obligations",
		Requirements: []string{
			"No specific EU AI Act obligations",
			"General product safety requirements apply",
			"Voluntary compliance with AI ethics guidelines",
		},
	},
}

func RegulationFor(category risk.Category) (Regulation, error) {
	r, ok := regulations[category]
	if !ok {
		return Regulation{}, fmt.Errorf("%w: %q", risk.ErrInvalidCategory, category)
	}
	reqs := make([]string, len(r.Requirements))
	copy(reqs, r.Requirements)
	r.Requirements = reqs
	return r, nil
}

// LabelMapping maps stored category values to their display labels.
func LabelMapping() map[risk.Category]string {
	out := make(map[risk.Category]string, len(regulations))
	for c, r := range regulations {
		out[c] = r.Label
	}
	return out
}
