package server

import (
	"fmt"

	"github.com/NeuralTrust/TrustAssess/pkg/config"
	"github.com/NeuralTrust/TrustAssess/pkg/middleware"
	"github.com/NeuralTrust/TrustAssess/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	AssessServerDI struct {
		Config              *config.Config
		Logger              *logrus.Logger
		MiddlewareTransport *middleware.Transport
		Routers             []router.ServerRouter
	}
	AssessServer struct {
		*BaseServer
		middlewareTransport *middleware.Transport
		routers             []router.ServerRouter
	}
)

// NewAssessServer serves the webhook, the query and admin API and the live
// feed on Server.Port, and prometheus on Server.MetricsPort.
func NewAssessServer(di AssessServerDI) *AssessServer {
	return &AssessServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		routers:             di.Routers,
	}
}

func (s *AssessServer) Run() error {
	s.setupRoutes()
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf("%s:%d", s.Config.Server.Host, s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting assessment server")
	return s.Router.Listen(addr)
}

func (s *AssessServer) setupRoutes() {
	if s.middlewareTransport != nil {
		for _, h := range s.middlewareTransport.GetMiddlewares() {
			s.Router.Use(h)
		}
	}
	s.setupHealthCheck()
	s.WithRouters(s.routers...)
}

func (s *AssessServer) Shutdown() error {
	s.Logger.Info("shutting down assessment server")
	return s.shutdown()
}
