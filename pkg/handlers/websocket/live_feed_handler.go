package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	infraWebsocket "github.com/NeuralTrust/TrustAssess/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"
)

const (
	clientBufferSize  = 16
	defaultPingPeriod = 30 * time.Second
	defaultPongWait   = 45 * time.Second
	writeWait         = 10 * time.Second
)

type liveClient struct {
	send     chan []byte
	minLevel risk.Category
}

// LiveFeedHub relays stored assessments to dashboard websocket clients.
// A client whose buffer is full is disconnected rather than slowing the
// others down.
type LiveFeedHub struct {
	logger     *logrus.Logger
	pingPeriod time.Duration
	pongWait   time.Duration
	mu         sync.RWMutex
	clients    map[*liveClient]struct{}
}

func NewLiveFeedHub(logger *logrus.Logger, pingPeriod, pongWait time.Duration) *LiveFeedHub {
	if pingPeriod <= 0 {
		pingPeriod = defaultPingPeriod
	}
	if pongWait <= pingPeriod {
		pongWait = pingPeriod + pingPeriod/2
	}
	return &LiveFeedHub{
		logger:     logger,
		pingPeriod: pingPeriod,
		pongWait:   pongWait,
		clients:    make(map[*liveClient]struct{}),
	}
}

func (h *LiveFeedHub) Broadcast(ev event.AssessmentStoredEvent) {
	level, err := risk.Parse(ev.RiskLevel)
	if err != nil {
		h.logger.WithError(err).Warn("dropping live feed event with unknown risk level")
		return
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.WithError(err).Error("failed to encode live feed event")
		return
	}

	var slow []*liveClient
	h.mu.RLock()
	for c := range h.clients {
		if level.Severity() < c.minLevel.Severity() {
			continue
		}
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("live feed client too slow, disconnecting")
		h.unregister(c)
	}
}

func (h *LiveFeedHub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *LiveFeedHub) Handle(c *websocket.Conn) {
	if sem, ok := c.Locals(SemaphoreLocalsKey).(*infraWebsocket.Semaphore); ok {
		defer sem.Release()
	}

	minLevel := risk.Low
	if q := c.Query("level"); q != "" {
		parsed, err := risk.Parse(q)
		if err != nil {
			_ = c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "invalid level"))
			return
		}
		minLevel = parsed
	}

	client := h.register(minLevel)
	defer h.unregister(client)

	if err := c.SetReadDeadline(time.Now().Add(h.pongWait)); err != nil {
		h.logger.WithError(err).Error("failed to set read deadline")
		return
	}
	c.SetPongHandler(func(string) error {
		return c.SetReadDeadline(time.Now().Add(h.pongWait))
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			// clients never send anything useful; reading drives pong handling
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case msg, ok := <-client.send:
			if !ok {
				_ = c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "too slow"))
				return
			}
			_ = c.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
				h.logger.WithError(err).Debug("live feed write failed")
				return
			}
		case <-ticker.C:
			_ = c.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *LiveFeedHub) register(minLevel risk.Category) *liveClient {
	c := &liveClient{send: make(chan []byte, clientBufferSize), minLevel: minLevel}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	prometheus.RecordLiveFeedClients(n)
	return c
}

func (h *LiveFeedHub) unregister(c *liveClient) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	prometheus.RecordLiveFeedClients(n)
}
