package assessment

import (
	"context"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	"github.com/NeuralTrust/TrustAssess/pkg/domain"
	domainAssessment "github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/sinks"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Recomputer --dir=. --output=./mocks --filename=recomputer_mock.go --case=underscore --with-expecter
type Recomputer interface {
	// Recompute re-runs the engine on the stored transcript with the corpus
	// currently in effect.
	Recompute(ctx context.Context, conversationID string) (*domainAssessment.Record, error)
}

type recomputer struct {
	logger     *logrus.Logger
	assessor   riskengine.Assessor
	repo       domainAssessment.Repository
	cache      cache.Client
	publisher  cache.EventPublisher
	dispatcher sinks.Dispatcher
}

func NewRecomputer(
	logger *logrus.Logger,
	assessor riskengine.Assessor,
	repo domainAssessment.Repository,
	c cache.Client,
	publisher cache.EventPublisher,
	dispatcher sinks.Dispatcher,
) Recomputer {
	return &recomputer{
		logger:     logger,
		assessor:   assessor,
		repo:       repo,
		cache:      c,
		publisher:  publisher,
		dispatcher: dispatcher,
	}
}

func (r *recomputer) Recompute(ctx context.Context, conversationID string) (*domainAssessment.Record, error) {
	record, err := r.repo.GetByConversationID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if len(record.Transcript.Messages) == 0 {
		return nil, domain.ErrTranscriptNotFound
	}

	previous := record.RiskLevel
	result := r.assessor.Assess(record.Transcript)
	prometheus.RecordAssessment(result)
	record.Reassess(result)

	if err := r.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	if err := r.cache.SaveAssessment(ctx, record, common.AssessmentCacheTTL); err != nil {
		r.logger.WithError(err).Warn("failed to cache risk assessment")
	}
	if err := r.publisher.Publish(
		ctx,
		channel.AssessmentsChannel,
		event.InvalidateAssessmentCacheEvent{ConversationID: conversationID},
	); err != nil {
		r.logger.WithError(err).Error("failed to publish assessment invalidation event")
	}

	r.dispatcher.Dispatch(record)

	r.logger.WithFields(logrus.Fields{
		"conversation_id": conversationID,
		"previous_level":  previous,
		"risk_level":      record.RiskLevel,
		"risk_score":      record.RiskScore,
	}).Info("risk assessment recomputed")
	return record, nil
}
