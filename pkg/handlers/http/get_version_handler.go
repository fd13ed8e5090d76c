package http

import (
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/NeuralTrust/TrustAssess/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VersionResponse struct {
	version.Info
	ComplianceFramework string `json:"compliance_framework"`
}

type getVersionHandler struct {
	logger *logrus.Logger
}

func NewGetVersionHandler(logger *logrus.Logger) Handler {
	return &getVersionHandler{logger: logger}
}

// Handle @Summary Get TrustAssess version
// @Description Build information plus the regulation the engine scores against
// @Tags Version
// @Produce json
// @Success 200 {object} VersionResponse "Version information"
// @Router /version [get]
func (h *getVersionHandler) Handle(c *fiber.Ctx) error {
	return c.JSON(VersionResponse{
		Info:                version.GetInfo(),
		ComplianceFramework: riskengine.ComplianceFramework,
	})
}
