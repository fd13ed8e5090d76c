package middleware

import (
	handlers "github.com/NeuralTrust/TrustAssess/pkg/handlers/websocket"
	infra "github.com/NeuralTrust/TrustAssess/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infra.Semaphore
}

// NewWebsocketMiddleware admits upgrade requests while live feed slots are
// free. The slot is released by the live feed handler when the socket closes.
func NewWebsocketMiddleware(logger *logrus.Logger, semaphore *infra.Semaphore) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: semaphore,
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !m.semaphore.Acquire() {
			m.logger.Warn("maximum live feed connections reached, rejecting connection")
			return fiber.ErrTooManyRequests
		}
		c.Locals(handlers.SemaphoreLocalsKey, m.semaphore)
		return c.Next()
	}
}
