package event

import "reflect"

type Event interface {
	Type() string
}

var (
	AssessmentStoredEventType          = "AssessmentStoredEvent"
	CorpusKeywordsAddedEventType       = "CorpusKeywordsAddedEvent"
	InvalidateAssessmentCacheEventType = "InvalidateAssessmentCacheEvent"
)

var Registry = map[string]reflect.Type{
	AssessmentStoredEventType:          reflect.TypeOf(AssessmentStoredEvent{}),
	CorpusKeywordsAddedEventType:       reflect.TypeOf(CorpusKeywordsAddedEvent{}),
	InvalidateAssessmentCacheEventType: reflect.TypeOf(InvalidateAssessmentCacheEvent{}),
}
