package http

import (
	appAssessment "github.com/NeuralTrust/TrustAssess/pkg/app/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getAssessmentHandler struct {
	logger *logrus.Logger
	finder appAssessment.Finder
}

func NewGetAssessmentHandler(logger *logrus.Logger, finder appAssessment.Finder) Handler {
	return &getAssessmentHandler{
		logger: logger,
		finder: finder,
	}
}

// Handle @Summary Retrieve an assessment
// @Description Returns the stored assessment of a conversation
// @Tags Assessments
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} assessment.Record "Assessment"
// @Failure 404 {object} map[string]interface{} "Assessment not found"
// @Router /api/v1/assessments/{conversation_id} [get]
func (h *getAssessmentHandler) Handle(c *fiber.Ctx) error {
	conversationID := c.Params("conversation_id")

	record, err := h.finder.Find(c.UserContext(), conversationID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "assessment not found"})
		}
		h.logger.WithError(err).WithField("conversation_id", conversationID).Error("failed to get assessment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternalServer})
	}
	return c.Status(fiber.StatusOK).JSON(record)
}
