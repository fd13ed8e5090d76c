package sinks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/assessment"
	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	cacheMocks "github.com/NeuralTrust/TrustAssess/pkg/infra/cache/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	name string
	err  error
	mu   sync.Mutex
	got  []string
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Deliver(_ context.Context, r *assessment.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, r.ConversationID)
	return s.err
}

func (s *recordingSink) delivered() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.got...)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func TestWorker_DeliverContinuesPastFailingSink(t *testing.T) {
	failing := &recordingSink{name: "failing", err: errors.New("down")}
	healthy := &recordingSink{name: "healthy"}
	w := NewWorker(quietLogger(), []assessment.Sink{failing, healthy}, 10, time.Second)

	w.Deliver(context.Background(), &assessment.Record{ConversationID: "conv-1"})

	assert.Equal(t, []string{"conv-1"}, failing.delivered())
	assert.Equal(t, []string{"conv-1"}, healthy.delivered())
}

func TestWorker_DispatchAndDrain(t *testing.T) {
	sink := &recordingSink{name: "s"}
	w := NewWorker(quietLogger(), []assessment.Sink{sink}, 10, time.Second)
	w.StartWorkers(2)

	for _, id := range []string{"a", "b", "c"} {
		w.Dispatch(&assessment.Record{ConversationID: id})
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	w.Shutdown(ctx)

	assert.ElementsMatch(t, []string{"a", "b", "c"}, sink.delivered())

	// no-op after shutdown
	w.Dispatch(&assessment.Record{ConversationID: "late"})
	w.Shutdown(ctx)
	assert.Len(t, sink.delivered(), 3)
}

func TestWorker_DropsWhenQueueFull(t *testing.T) {
	sink := &recordingSink{name: "s"}
	w := NewWorker(quietLogger(), []assessment.Sink{sink}, 1, time.Second)

	w.Dispatch(&assessment.Record{ConversationID: "kept"})
	w.Dispatch(&assessment.Record{ConversationID: "dropped"})

	w.StartWorkers(1)
	w.Shutdown(context.Background())
	assert.Equal(t, []string{"kept"}, sink.delivered())
}

func TestLiveFeedSink_PublishesStoredEvent(t *testing.T) {
	pub := cacheMocks.NewEventPublisher(t)
	record := &assessment.Record{
		ConversationID: "conv-1",
		RiskLevel:      risk.High,
		RiskScore:      65,
		Assessment:     assessment.Assessment{EUAssessment: assessment.EUAssessment{Label: "HIGH-RISK"}},
	}
	pub.EXPECT().Publish(mock.Anything, channel.AssessmentsChannel, mock.MatchedBy(func(ev event.AssessmentStoredEvent) bool {
		return ev.ConversationID == "conv-1" && ev.RiskLevel == "high" && ev.Label == "HIGH-RISK"
	})).Return(nil)

	s := NewLiveFeedSink(pub)
	require.NoError(t, s.Deliver(context.Background(), record))
	assert.Equal(t, LiveFeedSinkName, s.Name())
}
