package knowledge

// Answer is a stored response to a recognized FAQ-style topic.
type Answer struct {
	TopicID         string   // e.g. "faq_security"
	Content         string   // User-facing answer text
	FollowupActions []string // Catalog action ids suggested alongside the answer
}

// topicEntry holds the authored content for one topic, keyed by language
// with "en" as the fallback.
type topicEntry struct {
	content         map[string]string
	followupActions []string
}
