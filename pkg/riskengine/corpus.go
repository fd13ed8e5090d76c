package riskengine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
)

var (
	ErrEmptyKeyword    = errors.New("keyword must not be empty")
	ErrMissingCategory = errors.New("corpus is missing a risk category")
	ErrNegativeWeight  = errors.New("keyword weight must not be negative")
)

// KeywordSet is the configuration of one risk category: its phrases, the
// weight applied to each matched phrase and a human readable description.
type KeywordSet struct {
	Keywords    []string `yaml:"keywords" json:"keywords"`
	Weight      int      `yaml:"weight" json:"weight"`
	Description string   `yaml:"description" json:"description"`
}

// Corpus is an immutable keyword table covering all four risk categories.
// Mutations go through CorpusStore, which publishes a fresh Corpus.
type Corpus struct {
	sets map[risk.Category]KeywordSet
}

// NewCorpus validates and normalizes the given sets. Every category must be
// present; phrases are trimmed and lowercased, order is preserved.
func NewCorpus(sets map[risk.Category]KeywordSet) (*Corpus, error) {
	normalized := make(map[risk.Category]KeywordSet, len(sets))
	for c, set := range sets {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", risk.ErrInvalidCategory, c)
		}
		if set.Weight < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeWeight, c)
		}
		keywords, err := normalizeKeywords(set.Keywords)
		if err != nil {
			return nil, fmt.Errorf("category %s: %w", c, err)
		}
		normalized[c] = KeywordSet{
			Keywords:    keywords,
			Weight:      set.Weight,
			Description: set.Description,
		}
	}
	for _, c := range risk.Categories() {
		if _, ok := normalized[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCategory, c)
		}
	}
	return &Corpus{sets: normalized}, nil
}

func (c *Corpus) ListFor(category risk.Category) ([]string, error) {
	set, ok := c.sets[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", risk.ErrInvalidCategory, category)
	}
	out := make([]string, len(set.Keywords))
	copy(out, set.Keywords)
	return out, nil
}

func (c *Corpus) WeightFor(category risk.Category) (int, error) {
	set, ok := c.sets[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", risk.ErrInvalidCategory, category)
	}
	return set.Weight, nil
}

func (c *Corpus) DescriptionFor(category risk.Category) (string, error) {
	set, ok := c.sets[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", risk.ErrInvalidCategory, category)
	}
	return set.Description, nil
}

// Sets returns a deep copy of the keyword table.
func (c *Corpus) Sets() map[risk.Category]KeywordSet {
	out := make(map[risk.Category]KeywordSet, len(c.sets))
	for cat, set := range c.sets {
		keywords := make([]string, len(set.Keywords))
		copy(keywords, set.Keywords)
		out[cat] = KeywordSet{Keywords: keywords, Weight: set.Weight, Description: set.Description}
	}
	return out
}

func (c *Corpus) TotalKeywords() int {
	total := 0
	for _, set := range c.sets {
		total += len(set.Keywords)
	}
	return total
}

// withKeywords returns a copy of c with phrases appended to category.
// The receiver is left untouched.
func (c *Corpus) withKeywords(category risk.Category, phrases []string) (*Corpus, error) {
	set, ok := c.sets[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", risk.ErrInvalidCategory, category)
	}
	added, err := normalizeKeywords(phrases)
	if err != nil {
		return nil, err
	}
	sets := c.Sets()
	keywords := make([]string, 0, len(set.Keywords)+len(added))
	keywords = append(keywords, set.Keywords...)
	keywords = append(keywords, added...)
	sets[category] = KeywordSet{Keywords: keywords, Weight: set.Weight, Description: set.Description}
	return &Corpus{sets: sets}, nil
}

func normalizeKeywords(phrases []string) ([]string, error) {
	out := make([]string, 0, len(phrases))
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			return nil, ErrEmptyKeyword
		}
		out = append(out, p)
	}
	return out, nil
}
