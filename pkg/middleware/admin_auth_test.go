package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustAssess/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminApp(t *testing.T) (*fiber.App, jwt.Manager) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	manager, err := jwt.NewJwtManager("test-secret")
	require.NoError(t, err)

	app := fiber.New()
	app.Use(middleware.NewAdminAuthMiddleware(logger, manager).Middleware())
	app.Get("/admin", func(c *fiber.Ctx) error {
		subject, _ := c.Locals(string(common.AdminSubjectContextKey)).(string)
		return c.SendString(subject)
	})
	return app, manager
}

func TestAdminAuthMiddleware_Rejections(t *testing.T) {
	app, manager := newAdminApp(t)

	expired, err := manager.CreateToken("ops@example.com", -time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"basic scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer "},
		{"garbage token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)

			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	app, manager := newAdminApp(t)

	token, err := manager.CreateToken("ops@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ops@example.com", readBody(t, resp))
}

func TestAdminAuthMiddleware_RequiresAdminRole(t *testing.T) {
	app, _ := newAdminApp(t)

	viewer, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, &jwt.Claims{
		Role: "viewer",
		RegisteredClaims: gojwt.RegisteredClaims{
			Issuer:    jwt.Issuer,
			Subject:   "analyst@example.com",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+viewer)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAdminAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	app, manager := newAdminApp(t)

	token, err := manager.CreateToken("ops@example.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "bearer "+token)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
