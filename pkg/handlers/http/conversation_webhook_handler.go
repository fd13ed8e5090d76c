package http

import (
	"encoding/json"
	"errors"
	"time"

	appAssessment "github.com/NeuralTrust/TrustAssess/pkg/app/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustAssess/pkg/handlers/http/response"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type conversationWebhookHandler struct {
	logger     *logrus.Logger
	processor  appAssessment.Processor
	eventTypes []string
	now        func() time.Time
}

func NewConversationWebhookHandler(
	logger *logrus.Logger,
	processor appAssessment.Processor,
	eventTypes []string,
) Handler {
	return &conversationWebhookHandler{
		logger:     logger,
		processor:  processor,
		eventTypes: eventTypes,
		now:        time.Now,
	}
}

// Handle @Summary Receive a post-call webhook
// @Description Classifies a finished conversation under the EU AI Act and stores the assessment.
// @Description Every handled call answers 200 so the sender does not retry; success=false marks a failure.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param ElevenLabs-Signature header string true "HMAC-SHA256 of the raw body, hex, optional sha256= prefix"
// @Param payload body request.ConversationWebhookRequest true "Post-call payload"
// @Success 200 {object} response.WebhookProcessed "Assessment stored"
// @Failure 401 {object} map[string]interface{} "Missing or invalid signature"
// @Failure 500 {object} map[string]interface{} "Webhook secret not configured"
// @Router /webhooks/conversations [post]
func (h *conversationWebhookHandler) Handle(c *fiber.Ctx) error {
	var req request.ConversationWebhookRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		h.logger.WithError(err).Error("failed to decode webhook payload")
		return h.failed(c, err)
	}

	if !req.ShouldProcess(h.eventTypes) {
		h.logger.WithFields(logrus.Fields{
			"event_type":      req.EventType,
			"conversation_id": req.ConversationID,
		}).Info("webhook event acknowledged without analysis")
		prometheus.RecordWebhook(prometheus.OutcomeIgnored)
		return c.Status(fiber.StatusOK).JSON(response.NewWebhookAcknowledged(req.EventType, req.ConversationID, h.now()))
	}

	if err := req.Validate(); err != nil {
		h.logger.WithError(err).Warn("invalid webhook payload")
		return h.failed(c, err)
	}

	record, err := h.processor.Process(c.UserContext(), appAssessment.Input{
		ConversationID: req.ConversationID,
		AgentID:        req.AgentID,
		UserID:         req.UserID,
		Transcript:     req.Transcript(),
		CallSummary:    req.CallSummary(),
		DetectedAt:     req.DetectedAt(),
	})
	if err != nil {
		if errors.Is(err, appAssessment.ErrStoreFailed) {
			prometheus.RecordWebhook(prometheus.OutcomeStoreError)
			return c.Status(fiber.StatusOK).JSON(response.WebhookStoreFailed{
				Success:          false,
				Error:            "Database error",
				Message:          response.MessageStoreFailed,
				Details:          err.Error(),
				WebhookProcessed: true,
				Timestamp:        h.now().UTC(),
			})
		}
		h.logger.WithError(err).Error("failed to process webhook")
		return h.failed(c, err)
	}

	prometheus.RecordWebhook(prometheus.OutcomeStored)
	return c.Status(fiber.StatusOK).JSON(response.NewWebhookProcessed(record, req.EventType, req.MessageCount(), h.now()))
}

func (h *conversationWebhookHandler) failed(c *fiber.Ctx, err error) error {
	prometheus.RecordWebhook(prometheus.OutcomeRejected)
	return c.Status(fiber.StatusOK).JSON(response.WebhookFailed{
		Success:         false,
		Error:           "Internal processing error",
		Message:         err.Error(),
		WebhookReceived: true,
		Timestamp:       h.now().UTC(),
	})
}
