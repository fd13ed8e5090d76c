package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/TrustAssess/pkg/app/corpus/mocks"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func defaultSummary() riskengine.Summary {
	return riskengine.Summarize(riskengine.DefaultCorpus(), riskengine.ScoringConfig{
		BaseScore:  5,
		MaxScore:   riskengine.MaxScore,
		Thresholds: riskengine.DefaultThresholds(),
	})
}

func TestGetCorpusHandler(t *testing.T) {
	manager := mocks.NewManager(t)
	manager.EXPECT().Summary().Return(defaultSummary())

	app := fiber.New()
	app.Get("/api/v1/corpus", NewGetCorpusHandler(quietLogger(), manager).Handle)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/corpus", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "EU AI Act 2024", body["compliance_framework"])
	assert.Equal(t, []interface{}{"critical", "high", "medium", "low"}, body["risk_categories"])
	labels := body["label_mapping"].(map[string]interface{})
	assert.Equal(t, "PROHIBITED", labels["critical"])
}

func TestAddCorpusKeywordsHandler(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		body       string
		setup      func(m *mocks.Manager)
		wantStatus int
	}{
		{
			name:     "added",
			category: "medium",
			body:     `{"keywords":["voice cloning"]}`,
			setup: func(m *mocks.Manager) {
				m.EXPECT().AddKeywords(mock.Anything, "medium", []string{"voice cloning"}).Return(defaultSummary(), nil)
			},
			wantStatus: fiber.StatusOK,
		},
		{
			name:     "unknown category",
			category: "extreme",
			body:     `{"keywords":["x"]}`,
			setup: func(m *mocks.Manager) {
				m.EXPECT().AddKeywords(mock.Anything, "extreme", []string{"x"}).
					Return(riskengine.Summary{}, fmt.Errorf("%w: %q", risk.ErrInvalidCategory, "extreme"))
			},
			wantStatus: fiber.StatusBadRequest,
		},
		{name: "empty list", category: "low", body: `{"keywords":[]}`, wantStatus: fiber.StatusBadRequest},
		{name: "blank keyword", category: "low", body: `{"keywords":["ok","  "]}`, wantStatus: fiber.StatusBadRequest},
		{name: "broken json", category: "low", body: `{`, wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := mocks.NewManager(t)
			if tt.setup != nil {
				tt.setup(manager)
			}
			app := fiber.New()
			app.Post("/api/v1/corpus/:category/keywords", NewAddCorpusKeywordsHandler(quietLogger(), manager).Handle)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/corpus/"+tt.category+"/keywords", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetVersionHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(quietLogger()).Handle)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/version", nil))
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, "TrustAssess", body["app_name"])
	assert.Equal(t, "EU AI Act 2024", body["compliance_framework"])
}
