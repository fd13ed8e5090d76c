package corpus

import (
	"context"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/channel"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/cache/event"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/prometheus"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/sirupsen/logrus"
)

//go:generate mockery --name=Manager --dir=. --output=./mocks --filename=corpus_manager_mock.go --case=underscore --with-expecter
type Manager interface {
	Summary() riskengine.Summary
	// AddKeywords appends phrases to a category on this replica and
	// announces the change to the others.
	AddKeywords(ctx context.Context, category string, keywords []string) (riskengine.Summary, error)
}

type manager struct {
	logger     *logrus.Logger
	store      *riskengine.CorpusStore
	assessor   riskengine.Assessor
	publisher  cache.EventPublisher
	instanceID string
}

func NewManager(
	logger *logrus.Logger,
	store *riskengine.CorpusStore,
	assessor riskengine.Assessor,
	publisher cache.EventPublisher,
	instanceID string,
) Manager {
	return &manager{
		logger:     logger,
		store:      store,
		assessor:   assessor,
		publisher:  publisher,
		instanceID: instanceID,
	}
}

func (m *manager) Summary() riskengine.Summary {
	return riskengine.Summarize(m.store.Snapshot(), m.assessor.Config())
}

func (m *manager) AddKeywords(ctx context.Context, category string, keywords []string) (riskengine.Summary, error) {
	c, err := risk.Parse(category)
	if err != nil {
		return riskengine.Summary{}, err
	}
	if err := m.store.AppendKeywords(c, keywords...); err != nil {
		return riskengine.Summary{}, err
	}

	if err := m.publisher.Publish(ctx, channel.CorpusChannel, event.CorpusKeywordsAddedEvent{
		Origin:   m.instanceID,
		Category: string(c),
		Keywords: keywords,
	}); err != nil {
		m.logger.WithError(err).Error("failed to publish corpus update, peers will diverge until restart")
	}

	m.logger.WithFields(logrus.Fields{
		"category": c,
		"added":    len(keywords),
	}).Info("corpus keywords added")
	return m.Summary(), nil
}

// RecordSize publishes per-category keyword counts; registered as a corpus
// change listener.
func RecordSize(c *riskengine.Corpus) {
	counts := make(map[risk.Category]int)
	for cat, set := range c.Sets() {
		counts[cat] = len(set.Keywords)
	}
	prometheus.RecordCorpusSize(counts)
}
