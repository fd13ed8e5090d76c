package http

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/transcript"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

// assessedRecord runs the real engine so fixtures carry realistic evidence.
func assessedRecord(t *testing.T, conversationID, userText string) *assessment.Record {
	t.Helper()
	tr := transcript.New([]transcript.Message{{Role: transcript.RoleUser, Content: userText}}, 30)
	a := riskengine.NewAssessor(riskengine.NewCorpusStore(riskengine.DefaultCorpus())).Assess(tr)
	r, err := assessment.NewRecord(conversationID, "agent-1", nil, a, tr, "", time.Now())
	require.NoError(t, err)
	return r
}
