package middleware

import (
	"strings"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	"github.com/NeuralTrust/TrustAssess/pkg/config"
	"github.com/gofiber/fiber/v2"
)

// Headers a browser based dashboard or webhook tester is allowed to send.
var defaultAllowHeaders = []string{
	"Authorization",
	"Content-Type",
	"X-Client-Info",
	"Apikey",
	common.SignatureHeader,
	common.LegacySignatureHeader,
}

type corsGlobalMiddleware struct {
	allowOrigins     []string
	allowMethods     []string
	allowHeaders     []string
	allowCredentials bool
	exposeHeaders    []string
	maxAge           string
}

func NewCORSGlobalMiddleware(cfg config.CORSConfig) Middleware {
	return &corsGlobalMiddleware{
		allowOrigins:     cfg.AllowOrigins,
		allowMethods:     cfg.AllowMethods,
		allowHeaders:     defaultAllowHeaders,
		allowCredentials: cfg.AllowCredentials,
		exposeHeaders:    cfg.ExposeHeaders,
		maxAge:           cfg.MaxAge,
	}
}

func (m *corsGlobalMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		if origin == "" || !m.originAllowed(origin) {
			return c.Next()
		}

		c.Vary("Origin")
		if m.allowCredentials {
			c.Set("Access-Control-Allow-Origin", origin)
			c.Set("Access-Control-Allow-Credentials", "true")
		} else if hasStar(m.allowOrigins) {
			c.Set("Access-Control-Allow-Origin", "*")
		} else {
			c.Set("Access-Control-Allow-Origin", origin)
		}
		if len(m.exposeHeaders) > 0 {
			c.Set("Access-Control-Expose-Headers", strings.Join(m.exposeHeaders, ", "))
		}

		if c.Method() != fiber.MethodOptions || c.Get("Access-Control-Request-Method") == "" {
			return c.Next()
		}

		c.Set("Access-Control-Allow-Methods", strings.Join(m.allowMethods, ", "))
		if reqHeaders := c.Get("Access-Control-Request-Headers"); reqHeaders != "" && m.headersAllowed(reqHeaders) {
			c.Set("Access-Control-Allow-Headers", reqHeaders)
		} else {
			c.Set("Access-Control-Allow-Headers", strings.Join(m.allowHeaders, ", "))
		}
		if m.maxAge != "" {
			c.Set("Access-Control-Max-Age", m.maxAge)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func (m *corsGlobalMiddleware) originAllowed(origin string) bool {
	for _, o := range m.allowOrigins {
		if o == "*" || strings.EqualFold(o, origin) {
			return true
		}
	}
	return false
}

func (m *corsGlobalMiddleware) headersAllowed(requested string) bool {
	for _, h := range strings.Split(requested, ",") {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		found := false
		for _, allowed := range m.allowHeaders {
			if strings.EqualFold(allowed, h) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func hasStar(arr []string) bool {
	for _, v := range arr {
		if v == "*" {
			return true
		}
	}
	return false
}
