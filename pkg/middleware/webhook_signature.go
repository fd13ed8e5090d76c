package middleware

import (
	"errors"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/signature"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type webhookSignatureMiddleware struct {
	logger   *logrus.Logger
	verifier signature.Verifier
}

// NewWebhookSignatureMiddleware rejects webhook calls whose body was not
// signed with the shared secret.
func NewWebhookSignatureMiddleware(logger *logrus.Logger, verifier signature.Verifier) Middleware {
	return &webhookSignatureMiddleware{
		logger:   logger,
		verifier: verifier,
	}
}

func (m *webhookSignatureMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(common.SignatureHeader)
		if header == "" {
			header = c.Get(common.LegacySignatureHeader)
		}

		err := m.verifier.Verify(c.Body(), header)
		switch {
		case err == nil:
			c.Locals(common.SignatureVerifiedLocalsKey, true)
			return c.Next()
		case errors.Is(err, signature.ErrSecretNotConfigured):
			m.logger.Error("webhook secret not configured, rejecting webhook")
			prometheus.RecordWebhook(prometheus.OutcomeRejected)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Webhook secret not configured"})
		case errors.Is(err, signature.ErrMissingSignature):
			m.logger.Warn("webhook call without signature header")
			prometheus.RecordWebhook(prometheus.OutcomeRejected)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing signature header"})
		default:
			m.logger.WithField("ip", c.IP()).Warn("webhook signature mismatch")
			prometheus.RecordWebhook(prometheus.OutcomeRejected)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid signature"})
		}
	}
}
