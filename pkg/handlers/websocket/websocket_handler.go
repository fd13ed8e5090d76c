package websocket

import "github.com/gofiber/contrib/websocket"

const SemaphoreLocalsKey = "ws_semaphore"

type Handler interface {
	Handle(c *websocket.Conn)
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	LiveFeedHandler Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
