package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *LiveFeedHub {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewLiveFeedHub(logger, time.Second, 0)
}

func TestLiveFeedHub_BroadcastFiltersByLevel(t *testing.T) {
	hub := newTestHub()
	all := hub.register(risk.Low)
	severe := hub.register(risk.High)

	hub.Broadcast(event.AssessmentStoredEvent{ConversationID: "c1", RiskLevel: "medium", RiskScore: 30})
	hub.Broadcast(event.AssessmentStoredEvent{ConversationID: "c2", RiskLevel: "critical", RiskScore: 100})

	require.Len(t, all.send, 2)
	require.Len(t, severe.send, 1)

	var got event.AssessmentStoredEvent
	require.NoError(t, json.Unmarshal(<-severe.send, &got))
	assert.Equal(t, "c2", got.ConversationID)
}

func TestLiveFeedHub_DropsSlowClients(t *testing.T) {
	hub := newTestHub()
	slow := hub.register(risk.Low)

	for i := 0; i < clientBufferSize+1; i++ {
		hub.Broadcast(event.AssessmentStoredEvent{RiskLevel: "low"})
	}

	assert.Equal(t, 0, hub.Clients())
	drained := 0
	for range slow.send {
		drained++
	}
	assert.Equal(t, clientBufferSize, drained)
}

func TestLiveFeedHub_IgnoresUnknownLevel(t *testing.T) {
	hub := newTestHub()
	c := hub.register(risk.Low)

	hub.Broadcast(event.AssessmentStoredEvent{RiskLevel: "severe"})

	assert.Empty(t, c.send)
	hub.unregister(c)
	hub.unregister(c)
	assert.Equal(t, 0, hub.Clients())
}

func TestNewLiveFeedHub_PongWaitExceedsPing(t *testing.T) {
	hub := NewLiveFeedHub(logrus.New(), 10*time.Second, 5*time.Second)
	assert.Greater(t, hub.pongWait, hub.pingPeriod)
}
