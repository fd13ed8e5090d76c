package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appMocks "github.com/NeuralTrust/TrustAssess/pkg/app/assessment/mocks"
	"github.com/NeuralTrust/TrustAssess/pkg/domain"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	repoMocks "github.com/NeuralTrust/TrustAssess/pkg/domain/assessment/mocks"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssessHandler(t *testing.T) {
	assessor := riskengine.NewAssessor(riskengine.NewCorpusStore(riskengine.DefaultCorpus()))
	app := fiber.New()
	app.Post("/api/v1/assess", NewAssessHandler(quietLogger(), assessor).Handle)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantLevel  string
	}{
		{
			name:       "high risk hiring bot",
			body:       `{"messages":[{"role":"User","content":"Our hiring algorithm ranks candidates"}],"duration_seconds":12}`,
			wantStatus: fiber.StatusOK,
			wantLevel:  "high",
		},
		{
			name:       "agent turns are ignored",
			body:       `{"messages":[{"role":"agent","content":"social scoring"}]}`,
			wantStatus: fiber.StatusOK,
			wantLevel:  "low",
		},
		{name: "unknown role", body: `{"messages":[{"role":"system","content":"x"}]}`, wantStatus: fiber.StatusBadRequest},
		{name: "negative duration", body: `{"messages":[],"duration_seconds":-1}`, wantStatus: fiber.StatusBadRequest},
		{name: "broken json", body: `{"messages":`, wantStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/assess", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			body := decodeBody(t, resp)
			if tt.wantLevel != "" {
				assert.Equal(t, tt.wantLevel, body["risk_level"])
				assert.Contains(t, body, "risk_factors")
				assert.Contains(t, body, "eu_assessment")
			} else {
				assert.Contains(t, body, "error")
			}
		})
	}
}

func TestListAssessmentsHandler(t *testing.T) {
	repo := repoMocks.NewRepository(t)
	app := fiber.New()
	app.Get("/api/v1/assessments", NewListAssessmentsHandler(quietLogger(), repo).Handle)

	critical := risk.Critical
	repo.EXPECT().ListLatest(mock.Anything, assessment.ListFilter{Limit: 5, Level: &critical}).
		Return([]assessment.Record{*assessedRecord(t, "conv-1", "social scoring")}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments?limit=5&level=CRITICAL", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(1), body["count"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments?level=extreme", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments?limit=-2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListAssessmentsHandler_EmptyAndFailure(t *testing.T) {
	repo := repoMocks.NewRepository(t)
	app := fiber.New()
	app.Get("/api/v1/assessments", NewListAssessmentsHandler(quietLogger(), repo).Handle)

	repo.EXPECT().ListLatest(mock.Anything, assessment.ListFilter{}).Return(nil, nil).Once()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil))
	require.NoError(t, err)
	body := decodeBody(t, resp)
	assert.Equal(t, []interface{}{}, body["assessments"])

	repo.EXPECT().ListLatest(mock.Anything, assessment.ListFilter{}).Return(nil, errors.New("db down")).Once()
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestAssessmentStatsHandler(t *testing.T) {
	repo := repoMocks.NewRepository(t)
	app := fiber.New()
	app.Get("/api/v1/assessments/stats", NewAssessmentStatsHandler(quietLogger(), repo).Handle)

	repo.EXPECT().Stats(mock.Anything).Return(&assessment.Stats{
		Total:        3,
		ByLevel:      map[risk.Category]int{risk.Critical: 1, risk.Low: 2},
		AverageScore: 37,
	}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(37), body["average_score"])
}

func TestGetAssessmentHandler(t *testing.T) {
	finder := appMocks.NewFinder(t)
	app := fiber.New()
	app.Get("/api/v1/assessments/:conversation_id", NewGetAssessmentHandler(quietLogger(), finder).Handle)

	finder.EXPECT().Find(mock.Anything, "conv-1").Return(assessedRecord(t, "conv-1", "deepfake"), nil)
	finder.EXPECT().Find(mock.Anything, "missing").Return(nil, domain.NewNotFoundError("assessment", "missing"))
	finder.EXPECT().Find(mock.Anything, "broken").Return(nil, errors.New("db down"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments/conv-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "medium", body["risk_level"])
	assert.NotContains(t, body, "transcript")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/assessments/broken", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestRecomputeAssessmentHandler(t *testing.T) {
	recomputer := appMocks.NewRecomputer(t)
	app := fiber.New()
	app.Post("/api/v1/assessments/:conversation_id/recompute", NewRecomputeAssessmentHandler(quietLogger(), recomputer).Handle)

	recomputer.EXPECT().Recompute(mock.Anything, "conv-1").Return(assessedRecord(t, "conv-1", "credit scoring"), nil)
	recomputer.EXPECT().Recompute(mock.Anything, "missing").Return(nil, domain.NewNotFoundError("assessment", "missing"))
	recomputer.EXPECT().Recompute(mock.Anything, "empty").Return(nil, domain.ErrTranscriptNotFound)
	recomputer.EXPECT().Recompute(mock.Anything, "broken").Return(nil, errors.New("db down"))

	tests := []struct {
		id   string
		want int
	}{
		{"conv-1", fiber.StatusOK},
		{"missing", fiber.StatusNotFound},
		{"empty", fiber.StatusConflict},
		{"broken", fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/v1/assessments/"+tt.id+"/recompute", nil))
		require.NoError(t, err)
		assert.Equal(t, tt.want, resp.StatusCode, tt.id)
	}
}
