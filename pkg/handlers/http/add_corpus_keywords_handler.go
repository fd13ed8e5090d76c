package http

import (
	"errors"

	appCorpus "github.com/NeuralTrust/TrustAssess/pkg/app/corpus"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type addCorpusKeywordsHandler struct {
	logger  *logrus.Logger
	manager appCorpus.Manager
}

func NewAddCorpusKeywordsHandler(logger *logrus.Logger, manager appCorpus.Manager) Handler {
	return &addCorpusKeywordsHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Add corpus keywords
// @Description Appends phrases to a risk category on every replica
// @Tags Corpus
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category path string true "Risk category" Enums(critical, high, medium, low)
// @Param keywords body request.AddKeywordsRequest true "Phrases to add"
// @Success 200 {object} riskengine.Summary "Updated corpus summary"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/v1/corpus/{category}/keywords [post]
func (h *addCorpusKeywordsHandler) Handle(c *fiber.Ctx) error {
	var req request.AddKeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.manager.AddKeywords(c.UserContext(), c.Params("category"), req.Keywords)
	if err != nil {
		if errors.Is(err, risk.ErrInvalidCategory) || errors.Is(err, riskengine.ErrEmptyKeyword) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to add corpus keywords")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": ErrInternalServer})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
