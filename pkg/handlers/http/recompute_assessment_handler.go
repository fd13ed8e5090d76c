package http

import (
	"errors"

	appAssessment "github.com/NeuralTrust/TrustAssess/pkg/app/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type recomputeAssessmentHandler struct {
	logger     *logrus.Logger
	recomputer appAssessment.Recomputer
}

func NewRecomputeAssessmentHandler(logger *logrus.Logger, recomputer appAssessment.Recomputer) Handler {
	return &recomputeAssessmentHandler{
		logger:     logger,
		recomputer: recomputer,
	}
}

// Handle @Summary Recompute an assessment
// @Description Re-runs the classifier on the stored transcript with the current corpus
// @Tags Assessments
// @Produce json
// @Security BearerAuth
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} assessment.Record "Updated assessment"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Failure 409 {object} map[string]interface{} "No stored transcript"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/assessments/{conversation_id}/recompute [post]
func (h *recomputeAssessmentHandler) Handle(c *fiber.Ctx) error {
	conversationID := c.Params("conversation_id")

	record, err := h.recomputer.Recompute(c.UserContext(), conversationID)
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(record)
	case domain.IsNotFoundError(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "assessment not found"})
	case errors.Is(err, domain.ErrTranscriptNotFound):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.WithError(err).WithField("conversation_id", conversationID).Error("failed to recompute assessment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternalServer})
	}
}
