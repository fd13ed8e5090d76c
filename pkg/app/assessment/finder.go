package assessment

import (
	"context"
	"errors"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	domain "github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Finder --dir=. --output=./mocks --filename=finder_mock.go --case=underscore --with-expecter
type Finder interface {
	Find(ctx context.Context, conversationID string) (*domain.Record, error)
}

type finder struct {
	logger *logrus.Logger
	repo   domain.Repository
	cache  cache.Client
}

func NewFinder(logger *logrus.Logger, repo domain.Repository, c cache.Client) Finder {
	return &finder{
		logger: logger,
		repo:   repo,
		cache:  c,
	}
}

func (f *finder) Find(ctx context.Context, conversationID string) (*domain.Record, error) {
	if cached, err := f.cache.GetAssessment(ctx, conversationID); err == nil && cached != nil {
		return cached, nil
	} else if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		f.logger.WithError(err).Debug("distributed cache read assessment failure")
	}

	record, err := f.repo.GetByConversationID(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if err := f.cache.SaveAssessment(ctx, record, common.AssessmentCacheTTL); err != nil {
		f.logger.WithError(err).Warn("failed to cache risk assessment")
	}
	return record, nil
}
