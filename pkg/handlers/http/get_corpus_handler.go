package http

import (
	appCorpus "github.com/NeuralTrust/TrustAssess/pkg/app/corpus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type getCorpusHandler struct {
	logger  *logrus.Logger
	manager appCorpus.Manager
}

func NewGetCorpusHandler(logger *logrus.Logger, manager appCorpus.Manager) Handler {
	return &getCorpusHandler{
		logger:  logger,
		manager: manager,
	}
}

// Handle @Summary Corpus summary
// @Description Risk categories, keyword counts, weights, thresholds and label mapping of the active corpus
// @Tags Corpus
// @Produce json
// @Success 200 {object} riskengine.Summary "Corpus summary"
// @Router /api/v1/corpus [get]
func (h *getCorpusHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.manager.Summary())
}
