package router

import (
	wsHandlers "github.com/NeuralTrust/TrustAssess/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustAssess/pkg/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

const LiveFeedPath = "/ws/assessments"

type liveFeedRouter struct {
	websocketMiddleware middleware.Middleware
	handlerTransport    wsHandlers.HandlerTransport
}

func NewLiveFeedRouter(
	websocketMiddleware middleware.Middleware,
	handlerTransport wsHandlers.HandlerTransport,
) ServerRouter {
	return &liveFeedRouter{
		websocketMiddleware: websocketMiddleware,
		handlerTransport:    handlerTransport,
	}
}

func (r *liveFeedRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	router.Get(
		LiveFeedPath,
		r.websocketMiddleware.Middleware(),
		websocket.New(handlerTransport.LiveFeedHandler.Handle),
	)
	return nil
}
