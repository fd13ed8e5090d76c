package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	domain "github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/transcript"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/sinks"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/sirupsen/logrus"
)

// ErrStoreFailed marks an assessment that was computed but not persisted.
var ErrStoreFailed = errors.New("failed to store risk assessment")

type Input struct {
	ConversationID string
	AgentID        string
	UserID         *string
	Transcript     transcript.Transcript
	CallSummary    string
	DetectedAt     time.Time
}

//go:generate mockery --name=Processor --dir=. --output=./mocks --filename=processor_mock.go --case=underscore --with-expecter
type Processor interface {
	// Process assesses and stores a finished conversation. On ErrStoreFailed
	// the returned record still carries the computed verdict.
	Process(ctx context.Context, in Input) (*domain.Record, error)
}

type processor struct {
	logger     *logrus.Logger
	assessor   riskengine.Assessor
	repo       domain.Repository
	cache      cache.Client
	publisher  cache.EventPublisher
	dispatcher sinks.Dispatcher
}

func NewProcessor(
	logger *logrus.Logger,
	assessor riskengine.Assessor,
	repo domain.Repository,
	c cache.Client,
	publisher cache.EventPublisher,
	dispatcher sinks.Dispatcher,
) Processor {
	return &processor{
		logger:     logger,
		assessor:   assessor,
		repo:       repo,
		cache:      c,
		publisher:  publisher,
		dispatcher: dispatcher,
	}
}

func (p *processor) Process(ctx context.Context, in Input) (*domain.Record, error) {
	result := p.assessor.Assess(in.Transcript)
	prometheus.RecordAssessment(result)

	record, err := domain.NewRecord(
		in.ConversationID,
		in.AgentID,
		in.UserID,
		result,
		in.Transcript,
		in.CallSummary,
		in.DetectedAt,
	)
	if err != nil {
		return nil, err
	}

	// Upsert replaces ID and CreatedAt with the stored row's values when the
	// conversation was assessed before.
	if err := p.repo.Upsert(ctx, record); err != nil {
		p.logger.WithError(err).WithField("conversation_id", in.ConversationID).Error("failed to store risk assessment")
		return record, fmt.Errorf("%w: %v", ErrStoreFailed, err)
	}

	if err := p.cache.SaveAssessment(ctx, record, common.AssessmentCacheTTL); err != nil {
		p.logger.WithError(err).Warn("failed to cache risk assessment")
	}
	if err := p.publisher.Publish(
		ctx,
		channel.AssessmentsChannel,
		event.InvalidateAssessmentCacheEvent{ConversationID: in.ConversationID},
	); err != nil {
		p.logger.WithError(err).Error("failed to publish assessment invalidation event")
	}

	p.dispatcher.Dispatch(record)
	logAssessment(p.logger, record, len(in.Transcript.Messages))
	return record, nil
}

func logAssessment(logger *logrus.Logger, record *domain.Record, messageCount int) {
	a := record.Assessment
	fields := logrus.Fields{
		"conversation_id": record.ConversationID,
		"agent_id":        record.AgentID,
		"risk_level":      record.RiskLevel,
		"risk_score":      record.RiskScore,
		"eu_label":        a.EUAssessment.Label,
		"message_count":   messageCount,
		"keyword_matches": a.RiskFactors.MatchCounts(),
	}
	if !a.IsAlerting() {
		logger.WithFields(fields).Info("risk assessment stored")
		return
	}
	fields["compliance_requirements"] = a.EUAssessment.ComplianceRequirements
	fields["summary"] = record.ConversationSummary
	logger.WithFields(fields).Warn("EU AI Act high risk alert")
}
