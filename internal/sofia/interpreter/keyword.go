package interpreter

import "strings"

// Minimum length before an unmatched text with a question mark is treated as
// an open question worth escalating.
const questionMinLength = 10

// keywordRule maps a keyword set to an intent. Rules are evaluated in order;
// the first rule with any matching keyword wins. The ordering is part of the
// dispatch contract and must not be reshuffled: the keyword sets overlap.
type keywordRule struct {
	keywords []string
	intent   Intent
}

var rules = []keywordRule{
	{[]string{"document", "upload", "add"}, IntentUpload},
	{[]string{"vault", "storage"}, IntentVault},
	{[]string{"guardian", "protector"}, IntentGuardians},
	{[]string{"legacy", "will", "testament"}, IntentLegacy},
	{[]string{"help", "what"}, IntentHelp},
	{[]string{"security", "encryption"}, IntentSecurity},
}

// KeywordInterpreter is a deliberately simple substring matcher. It is
// brittle with overlapping vocabularies, which is accepted: it only gates
// which free handler runs first.
type KeywordInterpreter struct{}

var _ Interpreter = (*KeywordInterpreter)(nil)

// New creates a new KeywordInterpreter.
func New() *KeywordInterpreter {
	return &KeywordInterpreter{}
}

// Classify returns the first matching intent for the given text,
// case-insensitive. Unmatched text longer than 10 characters containing a
// question mark classifies as an open question; everything else is unknown.
func (i *KeywordInterpreter) Classify(text string) Intent {
	lower := strings.ToLower(text)

	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.intent
			}
		}
	}

	if len(text) > questionMinLength && strings.Contains(text, "?") {
		return IntentQuestion
	}

	return IntentUnknown
}
