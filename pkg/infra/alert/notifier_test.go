package alert

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/httpx/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func response(status int) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(bytes.NewReader(nil))}
}

func record(level risk.Category) *assessment.Record {
	return &assessment.Record{
		ConversationID: "conv-1",
		AgentID:        "agent-1",
		RiskLevel:      level,
		RiskScore:      95,
		DetectedAt:     time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC),
		Assessment: assessment.Assessment{
			EUAssessment: assessment.EUAssessment{Label: "PROHIBITED", ComplianceRequirements: []string{"stop"}},
		},
	}
}

func newTestNotifier(client httpx.Client, cfg Config) *Notifier {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	cfg.URL = "http://alerts.local/hook"
	cfg.Backoff = time.Millisecond
	return NewNotifier(cfg, client, httpx.NewCircuitBreaker("alert-test", time.Minute, 10, nil), logger)
}

func TestNotifier_SkipsBelowMinLevel(t *testing.T) {
	client := mocks.NewClient(t)
	n := newTestNotifier(client, Config{MinLevel: risk.High})

	assert.NoError(t, n.Deliver(context.Background(), record(risk.Medium)))
}

func TestNotifier_PostsGenericPayload(t *testing.T) {
	client := mocks.NewClient(t)
	n := newTestNotifier(client, Config{Headers: map[string]string{"Authorization": "Bearer x"}})

	client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		body, err := req.GetBody()
		if err != nil {
			return false
		}
		var ev Event
		if err := json.NewDecoder(body).Decode(&ev); err != nil {
			return false
		}
		return req.Method == http.MethodPost &&
			req.Header.Get("Authorization") == "Bearer x" &&
			ev.ConversationID == "conv-1" &&
			ev.RiskLevel == "critical"
	})).Return(response(http.StatusOK), nil).Once()

	assert.NoError(t, n.Deliver(context.Background(), record(risk.Critical)))
}

func TestNotifier_RetriesServerErrors(t *testing.T) {
	client := mocks.NewClient(t)
	n := newTestNotifier(client, Config{MaxRetries: 3})

	client.On("Do", mock.Anything).Return(nil, errors.New("connection reset")).Once()
	client.On("Do", mock.Anything).Return(response(http.StatusBadGateway), nil).Once()
	client.On("Do", mock.Anything).Return(response(http.StatusNoContent), nil).Once()

	assert.NoError(t, n.Deliver(context.Background(), record(risk.High)))
}

func TestNotifier_ClientErrorIsFinal(t *testing.T) {
	client := mocks.NewClient(t)
	n := newTestNotifier(client, Config{MaxRetries: 3})

	client.On("Do", mock.Anything).Return(response(http.StatusUnauthorized), nil).Once()

	err := n.Deliver(context.Background(), record(risk.Critical))
	assert.ErrorContains(t, err, "HTTP 401")
}

func TestNotifier_GivesUp(t *testing.T) {
	client := mocks.NewClient(t)
	n := newTestNotifier(client, Config{MaxRetries: 2})

	client.On("Do", mock.Anything).Return(response(http.StatusServiceUnavailable), nil).Twice()

	err := n.Deliver(context.Background(), record(risk.Critical))
	assert.ErrorContains(t, err, "failed after 2 attempts")
}

func TestFormatPayload_Slack(t *testing.T) {
	body, err := FormatPayload("slack", NewEvent(record(risk.Critical)))
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Contains(t, payload["text"], "PROHIBITED")
	assert.Len(t, payload["blocks"], 3)
}
