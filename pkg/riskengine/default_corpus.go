package riskengine

import "github.com/NeuralTrust/TrustAssess/pkg/domain/risk"

const (
	DefaultCriticalWeight = 100
	DefaultHighWeight     = 30
	DefaultMediumWeight   = 10
	DefaultLowWeight      = 2
)

var prohibitedKeywords = []string{
	// social scoring and surveillance
	"social scoring", "social credit", "citizen scoring", "behavior scoring",
	"mass surveillance", "indiscriminate surveillance", "general surveillance",
	// biometric identification in public spaces
	"real-time biometric", "public biometric identification", "facial recognition public",
	"biometric surveillance", "remote biometric identification",
	// subliminal and manipulative techniques
	"subliminal techniques", "manipulative ai", "exploit vulnerabilities",
	"psychological manipulation", "behavioral manipulation", "subconscious influence",
	// targeting vulnerable groups
	"exploit children", "manipulate elderly", "target disabilities",
	"vulnerable groups targeting", "cognitive impairment exploitation",
	// emotion recognition at work or school
	"emotion recognition workplace", "emotion detection school", "emotional surveillance",
	"workplace emotion monitoring", "student emotion tracking",
	// individual predictive policing
	"individual crime prediction", "personal crime risk", "individual criminal assessment",
	"predict individual crime", "target specific person crime",
}

var highRiskKeywords = []string{
	// critical infrastructure
	"critical infrastructure", "power grid", "water supply", "transportation safety",
	"traffic management", "energy systems", "telecommunications infrastructure",
	// education and vocational training
	"educational assessment", "student evaluation", "academic scoring",
	"vocational training assessment", "educational ai", "learning analytics",
	"student performance prediction", "educational outcome prediction",
	// employment and HR
	"recruitment", "hiring", "recruitment ai", "hiring algorithm", "cv screening",
	"candidate assessment", "employee evaluation", "performance monitoring",
	"workplace assessment", "job application screening", "employment decision",
	"promotion algorithm",
	// essential services
	"credit scoring", "loan approval", "financial assessment", "insurance pricing",
	"healthcare diagnosis", "medical decision", "treatment recommendation",
	"emergency services", "social benefits", "welfare assessment",
	// law enforcement
	"crime prediction", "risk assessment individuals", "criminal justice",
	"law enforcement ai", "police algorithm", "judicial decision support",
	"bail assessment", "sentencing support", "parole decision",
	// border control and migration
	"border control", "immigration assessment", "asylum decision",
	"visa processing", "identity verification", "document authentication",
	"migration risk assessment", "refugee status determination",
	// democratic processes
	"election monitoring", "voting systems", "political analysis",
	"democratic process", "electoral assessment", "political risk",
	// biometric systems
	"biometric identification", "biometric verification", "biometric categorization",
	"facial recognition", "fingerprint analysis", "voice recognition",
	"gait recognition", "behavioral biometrics",
}

var limitedRiskKeywords = []string{
	// systems interacting with people
	"chatbot", "virtual assistant", "conversational ai", "ai interaction",
	"automated customer service", "ai support system", "dialogue system",
	// generated content
	"deepfake", "synthetic media", "ai generated content", "artificial content",
	"synthetic video", "synthetic audio", "generated images", "ai content creation",
	// recommendation
	"content recommendation", "product recommendation", "algorithmic curation",
	"personalized content", "targeted advertising", "behavioral targeting",
	// general emotion recognition
	"emotion recognition", "emotion detection", "sentiment analysis",
	"mood detection", "emotional ai", "affective computing",
	// decision support
	"decision support", "advisory system", "recommendation engine",
	"automated suggestions", "ai assistance", "intelligent assistance",
}

var minimalRiskKeywords = []string{
	"spam filter", "search algorithm", "translation", "language processing",
	"data analysis", "pattern recognition", "optimization", "automation",
	"game ai", "entertainment ai", "gaming algorithm", "recreational ai",
	"ai game character", "procedural generation",
	"text processing", "document analysis", "scheduling ai", "calendar optimization",
	"workflow automation", "task management", "productivity enhancement",
	"research ai", "scientific analysis", "data mining", "statistical analysis",
	"experimental ai", "prototype system", "research tool",
}

// DefaultKeywordSets returns a fresh copy of the built-in EU AI Act keyword table.
func DefaultKeywordSets() map[risk.Category]KeywordSet {
	return map[risk.Category]KeywordSet{
		risk.Critical: {
			Keywords:    append([]string(nil), prohibitedKeywords...),
			Weight:      DefaultCriticalWeight,
			Description: "AI systems prohibited under EU AI Act - immediate ban",
		},
		risk.High: {
			Keywords:    append([]string(nil), highRiskKeywords...),
			Weight:      DefaultHighWeight,
			Description: "High-risk AI systems requiring strict compliance and conformity assessment",
		},
		risk.Medium: {
			Keywords:    append([]string(nil), limitedRiskKeywords...),
			Weight:      DefaultMediumWeight,
			Description: "Limited risk AI systems requiring transparency obligations",
		},
		risk.Low: {
			Keywords:    append([]string(nil), minimalRiskKeywords...),
			Weight:      DefaultLowWeight,
			Description: "Minimal risk AI systems with no specific regulatory obligations",
		},
	}
}

// DefaultCorpus builds the built-in corpus. The table is static, so a
// failure here is a programming error.
func DefaultCorpus() *Corpus {
	c, err := NewCorpus(DefaultKeywordSets())
	if err != nil {
		panic(err)
	}
	return c
}
