package router

import (
	"io"
	"net/http/httptest"
	"testing"

	handlers "github.com/NeuralTrust/TrustAssess/pkg/handlers/http"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type namedHandler string

func (h namedHandler) Handle(c *fiber.Ctx) error {
	return c.SendString(string(h))
}

type denyMiddleware struct{}

func (denyMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusForbidden)
	}
}

type passMiddleware struct{}

func (passMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}

type otherTransport struct{}

func (t otherTransport) GetTransport() handlers.HandlerTransport { return t }

func newTransport() *handlers.HandlerTransportDTO {
	return &handlers.HandlerTransportDTO{
		GetVersionHandler:          namedHandler("version"),
		ConversationWebhookHandler: namedHandler("webhook"),
		AssessHandler:              namedHandler("assess"),
		ListAssessmentsHandler:     namedHandler("list"),
		AssessmentStatsHandler:     namedHandler("stats"),
		GetAssessmentHandler:       namedHandler("get"),
		RecomputeAssessmentHandler: namedHandler("recompute"),
		GetCorpusHandler:           namedHandler("corpus"),
		AddCorpusKeywordsHandler:   namedHandler("add_keywords"),
	}
}

func TestAPIRouter_BuildRoutes(t *testing.T) {
	app := fiber.New()
	r := NewAPIRouter(denyMiddleware{}, passMiddleware{}, newTransport(), "/swagger.json")
	require.NoError(t, r.BuildRoutes(app))

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{fiber.MethodGet, "/version", fiber.StatusOK, "version"},
		{fiber.MethodPost, WebhookPath, fiber.StatusOK, "webhook"},
		{fiber.MethodPost, LegacyWebhookPath, fiber.StatusOK, "webhook"},
		{fiber.MethodPost, "/api/v1/assess", fiber.StatusOK, "assess"},
		{fiber.MethodGet, "/api/v1/assessments", fiber.StatusOK, "list"},
		{fiber.MethodGet, "/api/v1/assessments/stats", fiber.StatusOK, "stats"},
		{fiber.MethodGet, "/api/v1/assessments/conv-1", fiber.StatusOK, "get"},
		{fiber.MethodPost, "/api/v1/assessments/conv-1/recompute", fiber.StatusForbidden, ""},
		{fiber.MethodGet, "/api/v1/corpus", fiber.StatusOK, "corpus"},
		{fiber.MethodPost, "/api/v1/corpus/high/keywords", fiber.StatusForbidden, ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.body != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.body, string(body))
			}
		})
	}
}

func TestAPIRouter_SignatureGuardsWebhook(t *testing.T) {
	app := fiber.New()
	r := NewAPIRouter(passMiddleware{}, denyMiddleware{}, newTransport(), "/swagger.json")
	require.NoError(t, r.BuildRoutes(app))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, WebhookPath, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/api/v1/assessments/conv-1/recompute", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAPIRouter_InvalidTransport(t *testing.T) {
	r := NewAPIRouter(passMiddleware{}, passMiddleware{}, otherTransport{}, "/swagger.json")
	assert.ErrorIs(t, r.BuildRoutes(fiber.New()), ErrInvalidHandlerTransport)
}
