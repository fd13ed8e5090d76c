package middleware

import (
	"strconv"

	"github.com/NeuralTrust/TrustAssess/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type securityMiddleware struct {
	logger *logrus.Logger
	cfg    config.SecurityConfig
}

func NewSecurityMiddleware(logger *logrus.Logger, cfg config.SecurityConfig) Middleware {
	return &securityMiddleware{
		logger: logger,
		cfg:    cfg,
	}
}

func (m *securityMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if len(m.cfg.AllowedHosts) > 0 && !m.hostAllowed(c.Hostname()) {
			m.logger.WithField("host", c.Hostname()).Debug("request for host not in allowed_hosts")
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden: host not allowed"})
		}

		if m.cfg.STSSeconds > 0 && (c.Protocol() == "https" || c.Get(fiber.HeaderXForwardedProto) == "https") {
			h := "max-age=" + strconv.Itoa(m.cfg.STSSeconds)
			if m.cfg.STSIncludeSubdomains {
				h += "; includeSubDomains"
			}
			c.Set(fiber.HeaderStrictTransportSecurity, h)
		}
		if m.cfg.FrameDeny {
			c.Set(fiber.HeaderXFrameOptions, "DENY")
		}
		if m.cfg.ContentTypeNosniff {
			c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
		}
		if m.cfg.ReferrerPolicy != "" {
			c.Set(fiber.HeaderReferrerPolicy, m.cfg.ReferrerPolicy)
		}
		if m.cfg.ContentSecurityPolicy != "" {
			c.Set(fiber.HeaderContentSecurityPolicy, m.cfg.ContentSecurityPolicy)
		}

		return c.Next()
	}
}

func (m *securityMiddleware) hostAllowed(host string) bool {
	for _, h := range m.cfg.AllowedHosts {
		if h == host {
			return true
		}
	}
	return false
}
