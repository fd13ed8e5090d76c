package event

type CorpusKeywordsAddedEvent struct {
	// Origin is the instance that already applied the change locally.
	Origin   string   `json:"origin"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

func (e CorpusKeywordsAddedEvent) Type() string {
	return CorpusKeywordsAddedEventType
}
