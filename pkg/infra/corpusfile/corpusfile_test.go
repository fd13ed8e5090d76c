package corpusfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NeuralTrust/TrustAssess/pkg/domain/risk"
	"github.com/NeuralTrust/TrustAssess/pkg/riskengine"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCorpus = `
categories:
  critical:
    weight: 100
    description: prohibited
    keywords: [Social Scoring]
  high:
    weight: 30
    keywords: [hiring]
  medium:
    weight: 10
    keywords: [chatbot]
  low:
    weight: 2
    keywords: [translation]
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleCorpus))
	require.NoError(t, err)

	kw, err := c.ListFor(risk.Critical)
	require.NoError(t, err)
	assert.Equal(t, []string{"social scoring"}, kw)
	assert.Equal(t, 4, c.TotalKeywords())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty", doc: "", want: ErrNoCategories},
		{name: "unknown category", doc: "categories:\n  severe:\n    weight: 1\n", want: risk.ErrInvalidCategory},
		{name: "missing category", doc: "categories:\n  low:\n    weight: 1\n    keywords: [a]\n", want: riskengine.ErrMissingCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("categories: [oops"))
	assert.Error(t, err)
}

func TestMarshal_LoadsBack(t *testing.T) {
	data, err := Marshal(riskengine.DefaultCorpus())
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, riskengine.DefaultCorpus().Sets(), back.Sets())
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCorpus), 0600))

	store := riskengine.NewCorpusStore(riskengine.DefaultCorpus())
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	w, err := NewWatcher(logger, path, store, 20*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// give the watcher a moment to start receiving events
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(sampleCorpus), 0600))

	select {
	case <-w.Reloaded():
	case <-time.After(3 * time.Second):
		t.Fatal("corpus was not reloaded")
	}
	assert.Equal(t, 4, store.Snapshot().TotalKeywords())

	// an invalid file keeps the previous corpus
	require.NoError(t, os.WriteFile(path, []byte("categories: {}"), 0600))
	select {
	case <-w.Reloaded():
	case <-time.After(3 * time.Second):
		t.Fatal("reload was not attempted")
	}
	assert.Equal(t, 4, store.Snapshot().TotalKeywords())
}

func TestDroppedKeywords(t *testing.T) {
	fromFile, err := Parse([]byte(sampleCorpus))
	require.NoError(t, err)

	store := riskengine.NewCorpusStore(fromFile)
	require.NoError(t, store.AppendKeywords(risk.Medium, "voice clone", "deepfake"))

	assert.Equal(t, 2, droppedKeywords(store.Snapshot(), fromFile))
	assert.Equal(t, 0, droppedKeywords(fromFile, store.Snapshot()))
	assert.Equal(t, 0, droppedKeywords(nil, fromFile))
}
