package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	GetVersionHandler Handler

	// Webhook
	ConversationWebhookHandler Handler

	// Assessments
	AssessHandler              Handler
	ListAssessmentsHandler     Handler
	AssessmentStatsHandler     Handler
	GetAssessmentHandler       Handler
	RecomputeAssessmentHandler Handler

	// Corpus
	GetCorpusHandler         Handler
	AddCorpusKeywordsHandler Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
