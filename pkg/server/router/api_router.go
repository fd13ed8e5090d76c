package router

import (
	handlers "github.com/NeuralTrust/TrustAssess/pkg/handlers/http"
	"github.com/NeuralTrust/TrustAssess/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	WebhookPath       = "/webhooks/conversations"
	LegacyWebhookPath = "/webhooks/elevenlabs"
)

type apiRouter struct {
	adminMiddleware     middleware.Middleware
	signatureMiddleware middleware.Middleware
	handlerTransport    handlers.HandlerTransport
	swaggerURL          string
}

func NewAPIRouter(
	adminMiddleware middleware.Middleware,
	signatureMiddleware middleware.Middleware,
	handlerTransport handlers.HandlerTransport,
	swaggerURL string,
) ServerRouter {
	return &apiRouter{
		adminMiddleware:     adminMiddleware,
		signatureMiddleware: signatureMiddleware,
		handlerTransport:    handlerTransport,
		swaggerURL:          swaggerURL,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	router.Static("/swagger.json", "./docs/swagger.json")
	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: r.swaggerURL,
	}))

	router.Get("/version", handlerTransport.GetVersionHandler.Handle)

	webhook := []fiber.Handler{r.signatureMiddleware.Middleware(), handlerTransport.ConversationWebhookHandler.Handle}
	router.Post(WebhookPath, webhook...)
	router.Post(LegacyWebhookPath, webhook...)

	admin := r.adminMiddleware.Middleware()

	v1 := router.Group("/api/v1")
	{
		v1.Post("/assess", handlerTransport.AssessHandler.Handle)

		assessments := v1.Group("/assessments")
		{
			assessments.Get("", handlerTransport.ListAssessmentsHandler.Handle)
			assessments.Get("/stats", handlerTransport.AssessmentStatsHandler.Handle)
			assessments.Get("/:conversation_id", handlerTransport.GetAssessmentHandler.Handle)
			assessments.Post("/:conversation_id/recompute", admin, handlerTransport.RecomputeAssessmentHandler.Handle)
		}

		corpus := v1.Group("/corpus")
		{
			corpus.Get("", handlerTransport.GetCorpusHandler.Handle)
			corpus.Post("/:category/keywords", admin, handlerTransport.AddCorpusKeywordsHandler.Handle)
		}
	}
	return nil
}
