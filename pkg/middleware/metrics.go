package middleware

import (
	"errors"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

// NewMetricsMiddleware observes request latency per route template, so
// /api/v1/assessments/:conversation_id stays a single series.
func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}

		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}
		elapsed := time.Since(start)
		prometheus.RecordHTTPLatency(route, c.Method(), status, elapsed)

		m.logger.WithFields(logrus.Fields{
			"method":     c.Method(),
			"route":      route,
			"status":     status,
			"elapsed_ms": elapsed.Milliseconds(),
		}).Debug("request served")
		return err
	}
}
