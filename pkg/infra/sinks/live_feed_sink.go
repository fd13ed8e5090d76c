package sinks

import (
	"context"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
)

const LiveFeedSinkName = "live_feed"

// LiveFeedSink publishes a compact event on redis; every replica relays it
// to its websocket clients.
type LiveFeedSink struct {
	publisher cache.EventPublisher
}

func NewLiveFeedSink(publisher cache.EventPublisher) *LiveFeedSink {
	return &LiveFeedSink{publisher: publisher}
}

func (s *LiveFeedSink) Name() string {
	return LiveFeedSinkName
}

func (s *LiveFeedSink) Deliver(ctx context.Context, record *assessment.Record) error {
	return s.publisher.Publish(ctx, channel.AssessmentsChannel, NewStoredEvent(record))
}

func NewStoredEvent(record *assessment.Record) event.AssessmentStoredEvent {
	return event.AssessmentStoredEvent{
		ConversationID: record.ConversationID,
		AgentID:        record.AgentID,
		RiskLevel:      string(record.RiskLevel),
		RiskScore:      record.RiskScore,
		Label:          record.Assessment.EUAssessment.Label,
		Summary:        record.ConversationSummary,
		Indicators:     record.Assessment.RiskFactors.Indicators,
		DetectedAt:     record.DetectedAt,
	}
}
