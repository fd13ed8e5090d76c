package http

import (
	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type assessmentStatsHandler struct {
	logger *logrus.Logger
	repo   assessment.Repository
}

func NewAssessmentStatsHandler(logger *logrus.Logger, repo assessment.Repository) Handler {
	return &assessmentStatsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary Assessment statistics
// @Description Total assessments, count per risk level and the rounded average score
// @Tags Assessments
// @Produce json
// @Success 200 {object} assessment.Stats "Statistics"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/assessments/stats [get]
func (h *assessmentStatsHandler) Handle(c *fiber.Ctx) error {
	stats, err := h.repo.Stats(c.UserContext())
	if err != nil {
		h.logger.WithError(err).Error("failed to compute assessment stats")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternalServer})
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
