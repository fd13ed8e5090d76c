package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/TrustAssess/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRouter struct {
	err error
}

func (r stubRouter) BuildRoutes(app *fiber.App) error {
	if r.err != nil {
		return r.err
	}
	app.Get("/stub", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return nil
}

func newTestServer() *BaseServer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewBaseServer(&config.Config{}, logger)
}

func TestBaseServer_HealthCheck(t *testing.T) {
	s := newTestServer()
	s.setupHealthCheck()

	for _, path := range []string{HealthPath, AdminHealthPath} {
		t.Run(path, func(t *testing.T) {
			resp, err := s.Router.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["status"])
			assert.NotEmpty(t, body["time"])
		})
	}
}

func TestBaseServer_WithRouters(t *testing.T) {
	s := newTestServer().WithRouters(stubRouter{err: errors.New("boom")}, stubRouter{})

	resp, err := s.Router.Test(httptest.NewRequest(fiber.MethodGet, "/stub", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestBaseServer_MetricsDisabled(t *testing.T) {
	s := newTestServer()
	s.setupMetricsEndpoint()
	assert.Nil(t, s.metricsApp)
}
