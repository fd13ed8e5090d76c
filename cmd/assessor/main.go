package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/config"
	"github.com/NeuralTrust/TrustAssess/pkg/dependency_container"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/database"
	infraLogger "github.com/NeuralTrust/TrustAssess/pkg/infra/logger"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustAssess/pkg/server"
	"github.com/NeuralTrust/TrustAssess/pkg/server/router"
	"github.com/NeuralTrust/TrustAssess/pkg/version"
	"github.com/joho/godotenv"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config"
	}
	if err := config.Load(configPath); err != nil {
		log.Println(err)
	}
	cfg := config.GetConfig()

	logger, closeLogs, err := infraLogger.NewLogger(infraLogger.Options{
		Component: "assessor",
		Level:     cfg.Logging.Level,
		Dir:       cfg.Logging.Dir,
		Console:   cfg.Logging.Console,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer closeLogs()
	logger.WithField("version", version.GetInfo().String()).Info("starting")

	prometheus.Initialize(prometheus.MetricsConfig{
		Enabled:       cfg.Metrics.Enabled,
		EnableLatency: cfg.Metrics.EnableLatency,
		EnableRuntime: cfg.Metrics.EnableRuntime,
	})

	db, err := database.NewDB(logger, &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer func() { _ = db.Close() }()

	container, err := dependency_container.NewContainer(dependency_container.ContainerDI{
		Cfg:            cfg,
		Logger:         logger,
		DB:             db,
		EventsRegistry: event.Registry,
	})
	if err != nil {
		logger.Fatalf("failed to initialize dependencies: %v", err)
	}

	go container.RedisListener.Listen(ctx, channel.AssessmentsChannel, channel.CorpusChannel)
	if container.CorpusWatcher != nil {
		go container.CorpusWatcher.Run(ctx)
	}
	container.SinkWorker.StartWorkers(cfg.Sinks.Workers)

	srv := server.NewAssessServer(server.AssessServerDI{
		Config:              cfg,
		Logger:              logger,
		MiddlewareTransport: container.MiddlewareTransport,
		Routers: []router.ServerRouter{
			router.NewAPIRouter(
				container.AdminAuthMiddleware,
				container.SignatureMiddleware,
				container.HandlerTransport,
				"/swagger.json",
			),
			router.NewLiveFeedRouter(container.WebSocketMiddleware, container.WSHandlerTransport),
		},
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	if err := srv.Shutdown(); err != nil {
		logger.WithError(err).Error("error shutting down server")
	}

	drainCtx, drainCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer drainCancel()
	container.SinkWorker.Shutdown(drainCtx)
	if container.KafkaExporter != nil {
		container.KafkaExporter.Close()
	}
	logger.Info("server gracefully stopped")
}
