package subscriber

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	infraCache "github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAppender struct {
	mock.Mock
}

func (m *mockAppender) AppendKeywords(category risk.Category, phrases ...string) error {
	args := m.Called(category, phrases)
	return args.Error(0)
}

type recordingBroadcaster struct {
	got []event.AssessmentStoredEvent
}

func (b *recordingBroadcaster) Broadcast(ev event.AssessmentStoredEvent) {
	b.got = append(b.got, ev)
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)
	return l
}

func TestCorpusKeywordsAdded_AppliesPeerUpdates(t *testing.T) {
	appender := new(mockAppender)
	appender.On("AppendKeywords", risk.High, []string{"voice cloning"}).Return(nil)

	sub := NewCorpusKeywordsAddedEventSubscriber(quietLogger(), appender, "self")
	err := sub.OnEvent(context.Background(), event.CorpusKeywordsAddedEvent{
		Origin: "peer", Category: "high", Keywords: []string{"voice cloning"},
	})

	assert.NoError(t, err)
	appender.AssertExpectations(t)
}

func TestCorpusKeywordsAdded_SkipsOwnEvents(t *testing.T) {
	appender := new(mockAppender)

	sub := NewCorpusKeywordsAddedEventSubscriber(quietLogger(), appender, "self")
	err := sub.OnEvent(context.Background(), event.CorpusKeywordsAddedEvent{
		Origin: "self", Category: "high", Keywords: []string{"voice cloning"},
	})

	assert.NoError(t, err)
	appender.AssertNotCalled(t, "AppendKeywords", mock.Anything, mock.Anything)
}

func TestCorpusKeywordsAdded_RejectsUnknownCategory(t *testing.T) {
	sub := NewCorpusKeywordsAddedEventSubscriber(quietLogger(), new(mockAppender), "self")

	err := sub.OnEvent(context.Background(), event.CorpusKeywordsAddedEvent{Origin: "peer", Category: "severe"})

	assert.ErrorIs(t, err, risk.ErrInvalidCategory)
}

func TestAssessmentStored_Broadcasts(t *testing.T) {
	b := &recordingBroadcaster{}
	sub := NewAssessmentStoredEventSubscriber(quietLogger(), b)

	ev := event.AssessmentStoredEvent{ConversationID: "conv-1", RiskLevel: "high", DetectedAt: time.Now()}
	assert.NoError(t, sub.OnEvent(context.Background(), ev))
	assert.Equal(t, []event.AssessmentStoredEvent{ev}, b.got)
}

func TestInvalidateAssessmentCache_DropsLocalEntry(t *testing.T) {
	rdb, _ := redismock.NewClientMock()
	c := infraCache.NewClientFromRedis(rdb, time.Minute)
	key := fmt.Sprintf(infraCache.AssessmentKeyPattern, "conv-1")
	local := c.GetTTLMap(infraCache.AssessmentTTLName)
	local.Set(key, "{}")

	sub := NewInvalidateAssessmentCacheEventSubscriber(quietLogger(), c)
	assert.NoError(t, sub.OnEvent(context.Background(), event.InvalidateAssessmentCacheEvent{ConversationID: "conv-1"}))

	_, ok := local.Get(key)
	assert.False(t, ok)
}
