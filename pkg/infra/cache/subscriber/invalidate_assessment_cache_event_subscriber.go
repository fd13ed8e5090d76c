package subscriber

import (
	"context"
	"fmt"

	infraCache "github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type InvalidateAssessmentCacheEventSubscriber struct {
	logger      *logrus.Logger
	memoryCache *infraCache.TTLMap
}

func NewInvalidateAssessmentCacheEventSubscriber(
	logger *logrus.Logger,
	c infraCache.Client,
) infraCache.EventSubscriber[event.InvalidateAssessmentCacheEvent] {
	return &InvalidateAssessmentCacheEventSubscriber{
		logger:      logger,
		memoryCache: c.GetTTLMap(infraCache.AssessmentTTLName),
	}
}

func (s InvalidateAssessmentCacheEventSubscriber) OnEvent(ctx context.Context, evt event.InvalidateAssessmentCacheEvent) error {
	s.logger.WithField("conversation_id", evt.ConversationID).Debug("invalidating local assessment cache")
	if s.memoryCache == nil {
		return nil
	}
	s.memoryCache.Delete(fmt.Sprintf(infraCache.AssessmentKeyPattern, evt.ConversationID))
	return nil
}
