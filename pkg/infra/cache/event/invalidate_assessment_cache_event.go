package event

type InvalidateAssessmentCacheEvent struct {
	ConversationID string `json:"conversation_id"`
}

func (e InvalidateAssessmentCacheEvent) Type() string {
	return InvalidateAssessmentCacheEventType
}
