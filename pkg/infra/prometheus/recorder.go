package prometheus

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

func RecordAssessment(a *assessment.Assessment) {
	if !Config.Enabled || a == nil {
		return
	}
	AssessmentsTotal.WithLabelValues(string(a.RiskLevel)).Inc()
	RiskScore.Observe(float64(a.RiskScore))
}

func RecordWebhook(outcome string) {
	if !Config.Enabled {
		return
	}
	WebhookRequestsTotal.WithLabelValues(outcome).Inc()
}

func RecordSinkFailure(sink string) {
	if !Config.Enabled {
		return
	}
	SinkFailuresTotal.WithLabelValues(sink).Inc()
}

func RecordCorpusSize(counts map[risk.Category]int) {
	if !Config.Enabled {
		return
	}
	for c, n := range counts {
		CorpusKeywords.WithLabelValues(string(c)).Set(float64(n))
	}
}

func RecordHTTPLatency(route, method string, status int, elapsed time.Duration) {
	if !Config.Enabled || !Config.EnableLatency {
		return
	}
	HTTPRequestLatency.WithLabelValues(route, method, strconv.Itoa(status)).
		Observe(float64(elapsed.Microseconds()) / 1000)
}

func RecordLiveFeedClients(n int) {
	if !Config.Enabled {
		return
	}
	LiveFeedClients.Set(float64(n))
}
