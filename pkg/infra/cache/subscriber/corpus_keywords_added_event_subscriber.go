package subscriber

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	infraCache "github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/sirupsen/logrus"
)

type KeywordAppender interface {
	AppendKeywords(category risk.Category, phrases ...string) error
}

type CorpusKeywordsAddedEventSubscriber struct {
	logger     *logrus.Logger
	corpus     KeywordAppender
	instanceID string
}

func NewCorpusKeywordsAddedEventSubscriber(
	logger *logrus.Logger,
	corpus KeywordAppender,
	instanceID string,
) infraCache.EventSubscriber[event.CorpusKeywordsAddedEvent] {
	return &CorpusKeywordsAddedEventSubscriber{
		logger:     logger,
		corpus:     corpus,
		instanceID: instanceID,
	}
}

// OnEvent replays a keyword addition made on another replica. Events this
// instance published are skipped since the change is already applied.
func (s CorpusKeywordsAddedEventSubscriber) OnEvent(ctx context.Context, evt event.CorpusKeywordsAddedEvent) error {
	if evt.Origin == s.instanceID {
		return nil
	}
	category, err := risk.Parse(evt.Category)
	if err != nil {
		return err
	}
	if err := s.corpus.AppendKeywords(category, evt.Keywords...); err != nil {
		return fmt.Errorf("replay keywords for %s: %w", category, err)
	}
	s.logger.WithFields(logrus.Fields{
		"category": category,
		"count":    len(evt.Keywords),
		"origin":   evt.Origin,
	}).Info("applied corpus update from peer")
	return nil
}
