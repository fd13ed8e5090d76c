package http

import (
	"github.com/NeuralTrust/TrustAssess/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type assessHandler struct {
	logger   *logrus.Logger
	assessor riskengine.Assessor
}

func NewAssessHandler(logger *logrus.Logger, assessor riskengine.Assessor) Handler {
	return &assessHandler{
		logger:   logger,
		assessor: assessor,
	}
}

// Handle @Summary Assess a transcript
// @Description Classifies a transcript with the active corpus without storing anything
// @Tags Assessments
// @Accept json
// @Produce json
// @Param transcript body request.AssessRequest true "Conversation turns"
// @Success 200 {object} assessment.Assessment "Risk assessment"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/v1/assess [post]
func (h *assessHandler) Handle(c *fiber.Ctx) error {
	var req request.AssessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result := h.assessor.Assess(req.Transcript())
	prometheus.RecordAssessment(result)
	return c.Status(fiber.StatusOK).JSON(result)
}
