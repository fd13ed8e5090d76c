package corpusfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"gopkg.in/yaml.v3"
)

var ErrNoCategories = errors.New("corpus file defines no categories")

// Document is the on-disk layout:
//
//	categories:
//	  critical:
//	    weight: 100
//	    description: ...
//	    keywords: [social scoring, ...]
type Document struct {
	Categories map[string]riskengine.KeywordSet `yaml:"categories"`
}

// Load reads and validates a corpus file. Categories missing from the file
// are an error: a partial file would silently disable a tier.
func Load(path string) (*riskengine.Corpus, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*riskengine.Corpus, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse corpus file: %w", err)
	}
	if len(doc.Categories) == 0 {
		return nil, ErrNoCategories
	}
	sets := make(map[risk.Category]riskengine.KeywordSet, len(doc.Categories))
	for name, set := range doc.Categories {
		c, err := risk.Parse(name)
		if err != nil {
			return nil, err
		}
		sets[c] = set
	}
	return riskengine.NewCorpus(sets)
}

func Marshal(c *riskengine.Corpus) ([]byte, error) {
	doc := Document{Categories: make(map[string]riskengine.KeywordSet)}
	for cat, set := range c.Sets() {
		doc.Categories[string(cat)] = set
	}
	return yaml.Marshal(doc)
}
