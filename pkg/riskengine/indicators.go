package riskengine

import "strings"

const (
	IndicatorSocialEngineering = "social_engineering"
	IndicatorUrgency           = "urgency_indicators"
)

// indicatorPatterns are reported alongside an assessment but never change the
// score or the category.
var indicatorPatterns = map[string][]string{
	IndicatorSocialEngineering: {
		"bypass eu regulations", "avoid compliance", "circumvent ai act",
		"hide ai functionality", "disguise ai system", "regulatory loophole",
		"minimal compliance", "compliance workaround",
	},
	IndicatorUrgency: {
		"urgent deployment", "immediate launch", "skip assessment", "fast track",
		"regulatory deadline", "compliance emergency", "urgent compliance",
	},
}

func matchIndicators(text string) map[string][]string {
	normalized := strings.ToLower(text)
	out := make(map[string][]string, len(indicatorPatterns))
	for name, patterns := range indicatorPatterns {
		matched := []string{}
		for _, p := range patterns {
			if normalized != "" && strings.Contains(normalized, p) {
				matched = append(matched, p)
			}
		}
		out[name] = matched
	}
	return out
}
