package subscriber

import (
	"context"

	infraCache "github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

// Broadcaster fans an event out to locally connected live-feed clients.
type Broadcaster interface {
	Broadcast(ev event.AssessmentStoredEvent)
}

type AssessmentStoredEventSubscriber struct {
	logger      *logrus.Logger
	broadcaster Broadcaster
}

func NewAssessmentStoredEventSubscriber(
	logger *logrus.Logger,
	broadcaster Broadcaster,
) infraCache.EventSubscriber[event.AssessmentStoredEvent] {
	return &AssessmentStoredEventSubscriber{
		logger:      logger,
		broadcaster: broadcaster,
	}
}

func (s AssessmentStoredEventSubscriber) OnEvent(ctx context.Context, evt event.AssessmentStoredEvent) error {
	s.logger.WithFields(logrus.Fields{
		"conversation_id": evt.ConversationID,
		"risk_level":      evt.RiskLevel,
	}).Debug("broadcasting stored assessment")
	s.broadcaster.Broadcast(evt)
	return nil
}
