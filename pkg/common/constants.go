package common

import "time"

const (
	AssessmentCacheTTL = 24 * time.Hour
	AssessmentLocalTTL = 30 * time.Second

	SignatureHeader       = "ElevenLabs-Signature"
	LegacySignatureHeader = "X-ElevenLabs-Signature"
	SignaturePrefix       = "sha256="

	SignatureVerifiedLocalsKey = "signature_verified"
)

type contextKey string

// AdminSubjectContextKey carries the authenticated admin's subject, both as a
// fiber local and on the user context.
const AdminSubjectContextKey contextKey = "admin_subject"

// ProcessedEventTypes are the webhook events that carry a finished call.
var ProcessedEventTypes = []string{
	"conversation.ended",
	"call.analysis_complete",
	"post_call_analysis",
}
