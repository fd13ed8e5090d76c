package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Risk scores are bounded to [0, 100].
	scoreBuckets = []float64{5, 10, 25, 40, 60, 75, 90, 100}

	latencyBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500}

	AssessmentsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustassess_assessments_total",
			Help: "Total number of transcripts assessed",
		},
		[]string{"risk_level"},
	)

	RiskScore = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trustassess_risk_score",
			Help:    "Distribution of assessed risk scores",
			Buckets: scoreBuckets,
		},
	)

	WebhookRequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustassess_webhook_requests_total",
			Help: "Webhook deliveries by outcome",
		},
		[]string{"outcome"},
	)

	SinkFailuresTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustassess_sink_failures_total",
			Help: "Failed deliveries to downstream sinks",
		},
		[]string{"sink"},
	)

	CorpusKeywords = promauto.With(registerer).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trustassess_corpus_keywords",
			Help: "Number of keyword phrases per risk category",
		},
		[]string{"category"},
	)

	HTTPRequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustassess_http_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route", "method", "status"},
	)

	LiveFeedClients = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "trustassess_live_feed_clients",
			Help: "Connected live feed websocket clients",
		},
	)
)

const (
	OutcomeStored     = "stored"
	OutcomeIgnored    = "ignored"
	OutcomeRejected   = "rejected"
	OutcomeStoreError = "store_error"
)

type MetricsConfig struct {
	Enabled       bool
	EnableLatency bool
	EnableRuntime bool
}

func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:       true,
		EnableLatency: true,
		EnableRuntime: true,
	}
}

var Config MetricsConfig

// Initialize installs the private registry as the process default so the
// fiber adaptor on the metrics port serves it.
func Initialize(cfg MetricsConfig) {
	Config = cfg
	if cfg.EnableRuntime {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
	}

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

func Registry() *prometheus.Registry {
	return registry
}
