package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustAssess/pkg/config"
	"github.com/NeuralTrust/TrustAssess/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCORSApp(cfg config.CORSConfig) *fiber.App {
	app := fiber.New()
	app.Use(middleware.NewCORSGlobalMiddleware(cfg).Middleware())
	app.Post("/webhooks/conversations", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestCORSGlobalMiddleware_Preflight(t *testing.T) {
	app := newCORSApp(config.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		MaxAge:       "600",
	})

	req := httptest.NewRequest(http.MethodOptions, "/webhooks/conversations", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type, elevenlabs-signature")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "content-type, elevenlabs-signature", resp.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "600", resp.Header.Get("Access-Control-Max-Age"))
}

func TestCORSGlobalMiddleware_UnknownRequestHeaderFallsBackToDefaults(t *testing.T) {
	app := newCORSApp(config.CORSConfig{AllowOrigins: []string{"*"}, AllowMethods: []string{"POST"}})

	req := httptest.NewRequest(http.MethodOptions, "/webhooks/conversations", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "x-custom")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "ElevenLabs-Signature")
	assert.NotContains(t, resp.Header.Get("Access-Control-Allow-Headers"), "x-custom")
}

func TestCORSGlobalMiddleware_CredentialsEchoOrigin(t *testing.T) {
	app := newCORSApp(config.CORSConfig{
		AllowOrigins:     []string{"https://dashboard.example.com"},
		AllowMethods:     []string{"POST"},
		AllowCredentials: true,
	})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/conversations", nil)
	req.Header.Set("Origin", "https://dashboard.example.com")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://dashboard.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestCORSGlobalMiddleware_DisallowedOrigin(t *testing.T) {
	app := newCORSApp(config.CORSConfig{AllowOrigins: []string{"https://a.example.com"}})

	req := httptest.NewRequest(http.MethodPost, "/webhooks/conversations", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
