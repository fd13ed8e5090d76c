package dependency_container

import (
	"fmt"
	"reflect"

	appAssessment "github.com/NeuralTrust/TrustAssess/pkg/app/assessment"
	appCorpus "github.com/NeuralTrust/TrustAssess/pkg/app/corpus"
	"github.com/NeuralTrust/TrustAssess/pkg/config"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	handlers "github.com/NeuralTrust/TrustAssess/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/TrustAssess/pkg/handlers/websocket"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/alert"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/auth/jwt"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/subscriber"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/corpusfile"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/database"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/httpx"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/repository"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/signature"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/sinks"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/telemetry/kafka"
	infraWebsocket "github.com/NeuralTrust/TrustAssess/pkg/infra/websocket"
	"github.com/NeuralTrust/TrustAssess/pkg/middleware"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Container struct {
	InstanceID          string
	Cache               cache.Client
	RedisListener       cache.EventListener
	RedisPublisher      cache.EventPublisher
	AssessmentRepo      assessment.Repository
	CorpusStore         *riskengine.CorpusStore
	CorpusWatcher       *corpusfile.Watcher
	Assessor            riskengine.Assessor
	SinkWorker          *sinks.Worker
	KafkaExporter       *kafka.Exporter
	LiveFeedHub         *wsHandlers.LiveFeedHub
	JWTManager          jwt.Manager
	HandlerTransport    handlers.HandlerTransport
	WSHandlerTransport  wsHandlers.HandlerTransport
	MiddlewareTransport *middleware.Transport
	AdminAuthMiddleware middleware.Middleware
	SignatureMiddleware middleware.Middleware
	WebSocketMiddleware middleware.Middleware
}

type ContainerDI struct {
	Cfg            *config.Config
	Logger         *logrus.Logger
	DB             *database.DB
	EventsRegistry map[string]reflect.Type
}

func NewContainer(di ContainerDI) (*Container, error) {
	instanceID := uuid.NewString()

	cacheInstance, err := cache.NewClient(cache.Config{
		Host:     di.Cfg.Redis.Host,
		Port:     di.Cfg.Redis.Port,
		Password: di.Cfg.Redis.Password,
		DB:       di.Cfg.Redis.DB,
		TLS:      di.Cfg.Redis.TLS,
		LocalTTL: di.Cfg.Redis.LocalTTL,
	}, di.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %v", err)
	}
	redisPublisher := cache.NewRedisEventPublisher(cacheInstance)
	redisListener := cache.NewRedisEventListener(di.Logger, cacheInstance, di.EventsRegistry)

	// corpus
	initial := riskengine.DefaultCorpus()
	if di.Cfg.Corpus.File != "" {
		initial, err = corpusfile.Load(di.Cfg.Corpus.File)
		if err != nil {
			return nil, fmt.Errorf("failed to load corpus: %w", err)
		}
		di.Logger.WithField("file", di.Cfg.Corpus.File).Info("loaded keyword corpus from file")
	}
	corpusStore := riskengine.NewCorpusStore(initial)
	corpusStore.OnChange(appCorpus.RecordSize)
	appCorpus.RecordSize(initial)

	var corpusWatcher *corpusfile.Watcher
	if di.Cfg.Corpus.File != "" && di.Cfg.Corpus.Watch {
		corpusWatcher, err = corpusfile.NewWatcher(di.Logger, di.Cfg.Corpus.File, corpusStore, di.Cfg.Corpus.Debounce)
		if err != nil {
			return nil, err
		}
	}

	thresholds := riskengine.Thresholds{
		Critical: di.Cfg.Scoring.Thresholds.Critical,
		High:     di.Cfg.Scoring.Thresholds.High,
		Medium:   di.Cfg.Scoring.Thresholds.Medium,
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	assessor := riskengine.NewAssessor(
		corpusStore,
		riskengine.WithBaseScore(di.Cfg.Scoring.BaseScore),
		riskengine.WithThresholds(thresholds),
	)

	// repository
	assessmentRepository := repository.NewAssessmentRepository(di.DB.DB)

	// sinks
	liveFeedHub := wsHandlers.NewLiveFeedHub(di.Logger, di.Cfg.Server.PingPeriod, di.Cfg.Server.PongWait)
	deliverySinks := []assessment.Sink{sinks.NewLiveFeedSink(redisPublisher)}

	var kafkaExporter *kafka.Exporter
	if di.Cfg.Kafka.Enabled {
		kafkaExporter, err = kafka.NewExporter(di.Cfg.Kafka.Settings())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize kafka exporter: %w", err)
		}
		deliverySinks = append(deliverySinks, kafkaExporter)
	}

	if di.Cfg.Alerts.Enabled {
		minLevel, err := risk.Parse(di.Cfg.Alerts.MinLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid alerts min_level: %w", err)
		}
		httpClient := httpx.NewFastHTTPClient(
			httpx.WithTimeout(di.Cfg.Alerts.Timeout),
			httpx.WithUserAgent("TrustAssess-Alerts"),
		)
		breaker := httpx.NewCircuitBreaker(
			alert.SinkName,
			di.Cfg.Alerts.Breaker.OpenTimeout,
			di.Cfg.Alerts.Breaker.MaxFailures,
			di.Logger,
		)
		deliverySinks = append(deliverySinks, alert.NewNotifier(alert.Config{
			URL:        di.Cfg.Alerts.URL,
			Format:     di.Cfg.Alerts.Format,
			MinLevel:   minLevel,
			Headers:    di.Cfg.Alerts.Headers,
			MaxRetries: di.Cfg.Alerts.MaxRetries,
			Backoff:    di.Cfg.Alerts.Backoff,
		}, httpClient, breaker, di.Logger))
	}
	sinkWorker := sinks.NewWorker(di.Logger, deliverySinks, di.Cfg.Sinks.QueueSize, di.Cfg.Sinks.Timeout)

	// services
	processor := appAssessment.NewProcessor(di.Logger, assessor, assessmentRepository, cacheInstance, redisPublisher, sinkWorker)
	finder := appAssessment.NewFinder(di.Logger, assessmentRepository, cacheInstance)
	recomputer := appAssessment.NewRecomputer(di.Logger, assessor, assessmentRepository, cacheInstance, redisPublisher, sinkWorker)
	corpusManager := appCorpus.NewManager(di.Logger, corpusStore, assessor, redisPublisher, instanceID)

	// subscribers
	assessmentStoredSubscriber := subscriber.NewAssessmentStoredEventSubscriber(di.Logger, liveFeedHub)
	invalidateAssessmentSubscriber := subscriber.NewInvalidateAssessmentCacheEventSubscriber(di.Logger, cacheInstance)
	corpusKeywordsSubscriber := subscriber.NewCorpusKeywordsAddedEventSubscriber(di.Logger, corpusStore, instanceID)

	cache.RegisterEventSubscriber[event.AssessmentStoredEvent](redisListener, assessmentStoredSubscriber)
	cache.RegisterEventSubscriber[event.InvalidateAssessmentCacheEvent](redisListener, invalidateAssessmentSubscriber)
	cache.RegisterEventSubscriber[event.CorpusKeywordsAddedEvent](redisListener, corpusKeywordsSubscriber)

	jwtManager, err := jwt.NewJwtManager(di.Cfg.Server.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize jwt manager: %w", err)
	}

	eventTypes := di.Cfg.Webhook.EventTypes
	handlerTransport := &handlers.HandlerTransportDTO{
		GetVersionHandler:          handlers.NewGetVersionHandler(di.Logger),
		ConversationWebhookHandler: handlers.NewConversationWebhookHandler(di.Logger, processor, eventTypes),
		AssessHandler:              handlers.NewAssessHandler(di.Logger, assessor),
		ListAssessmentsHandler:     handlers.NewListAssessmentsHandler(di.Logger, assessmentRepository),
		AssessmentStatsHandler:     handlers.NewAssessmentStatsHandler(di.Logger, assessmentRepository),
		GetAssessmentHandler:       handlers.NewGetAssessmentHandler(di.Logger, finder),
		RecomputeAssessmentHandler: handlers.NewRecomputeAssessmentHandler(di.Logger, recomputer),
		GetCorpusHandler:           handlers.NewGetCorpusHandler(di.Logger, corpusManager),
		AddCorpusKeywordsHandler:   handlers.NewAddCorpusKeywordsHandler(di.Logger, corpusManager),
	}
	wsHandlerTransport := &wsHandlers.HandlerTransportDTO{
		LiveFeedHandler: liveFeedHub,
	}

	middlewareTransport := middleware.NewTransport(
		middleware.NewPanicRecoverMiddleware(di.Logger),
		middleware.NewMetricsMiddleware(di.Logger),
		middleware.NewCORSGlobalMiddleware(di.Cfg.Server.CORS),
		middleware.NewSecurityMiddleware(di.Logger, di.Cfg.Server.Security),
	)

	return &Container{
		InstanceID:          instanceID,
		Cache:               cacheInstance,
		RedisListener:       redisListener,
		RedisPublisher:      redisPublisher,
		AssessmentRepo:      assessmentRepository,
		CorpusStore:         corpusStore,
		CorpusWatcher:       corpusWatcher,
		Assessor:            assessor,
		SinkWorker:          sinkWorker,
		KafkaExporter:       kafkaExporter,
		LiveFeedHub:         liveFeedHub,
		JWTManager:          jwtManager,
		HandlerTransport:    handlerTransport,
		WSHandlerTransport:  wsHandlerTransport,
		MiddlewareTransport: middlewareTransport,
		AdminAuthMiddleware: middleware.NewAdminAuthMiddleware(di.Logger, jwtManager),
		SignatureMiddleware: middleware.NewWebhookSignatureMiddleware(di.Logger, signature.NewHMACVerifier(di.Cfg.Webhook.Secret)),
		WebSocketMiddleware: middleware.NewWebsocketMiddleware(di.Logger, infraWebsocket.NewSemaphore(di.Cfg.Server.MaxLiveClients)),
	}, nil
}
