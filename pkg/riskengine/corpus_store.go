package riskengine

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

var ErrNilCorpus = errors.New("corpus must not be nil")

// CorpusSource hands out the corpus snapshot a classification should read.
type CorpusSource interface {
	Snapshot() *Corpus
}

// CorpusStore owns the live corpus. Readers get a consistent snapshot without
// locking; writers are serialized and publish a new copy.
type CorpusStore struct {
	mu       sync.Mutex
	current  atomic.Pointer[Corpus]
	onChange []func(*Corpus)
}

func NewCorpusStore(initial *Corpus) *CorpusStore {
	s := &CorpusStore{}
	s.current.Store(initial)
	return s
}

func (s *CorpusStore) Snapshot() *Corpus {
	return s.current.Load()
}

// AppendKeywords adds phrases to a category. Duplicates are kept in the list,
// but the scorer counts each distinct phrase once per category.
func (s *CorpusStore) AppendKeywords(category risk.Category, phrases ...string) error {
	s.mu.Lock()
	next, err := s.current.Load().withKeywords(category, phrases)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.current.Store(next)
	listeners := s.onChange
	s.mu.Unlock()

	notify(listeners, next)
	return nil
}

func (s *CorpusStore) Replace(c *Corpus) error {
	if c == nil {
		return ErrNilCorpus
	}
	s.mu.Lock()
	s.current.Store(c)
	listeners := s.onChange
	s.mu.Unlock()

	notify(listeners, c)
	return nil
}

// OnChange registers fn to be called after every successful mutation.
func (s *CorpusStore) OnChange(fn func(*Corpus)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

func notify(listeners []func(*Corpus), c *Corpus) {
	for _, fn := range listeners {
		fn(c)
	}
}
