package http

import (
	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustAssess/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type listAssessmentsHandler struct {
	logger *logrus.Logger
	repo   assessment.Repository
}

func NewListAssessmentsHandler(logger *logrus.Logger, repo assessment.Repository) Handler {
	return &listAssessmentsHandler{
		logger: logger,
		repo:   repo,
	}
}

// Handle @Summary List recent assessments
// @Description Returns the latest assessments, newest detection first
// @Tags Assessments
// @Produce json
// @Param limit query int false "Maximum number of assessments (default 10, max 100)"
// @Param level query string false "Only this risk level" Enums(critical, high, medium, low)
// @Success 200 {object} response.ListAssessmentsOutput "Assessments"
// @Failure 400 {object} map[string]interface{} "Invalid query"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/v1/assessments [get]
func (h *listAssessmentsHandler) Handle(c *fiber.Ctx) error {
	var req request.ListAssessmentsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid query parameters"})
	}
	filter, err := req.Filter()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	records, err := h.repo.ListLatest(c.UserContext(), filter)
	if err != nil {
		h.logger.WithError(err).Error("failed to list assessments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternalServer})
	}
	if records == nil {
		records = []assessment.Record{}
	}
	return c.Status(fiber.StatusOK).JSON(response.ListAssessmentsOutput{
		Assessments: records,
		Count:       len(records),
	})
}
