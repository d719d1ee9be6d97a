package interpreter

// Intent represents the user's intention derived from free-form text.
type Intent string

const (
	IntentUpload    Intent = "UPLOAD"
	IntentVault     Intent = "VAULT"
	IntentGuardians Intent = "GUARDIANS"
	IntentLegacy    Intent = "LEGACY"
	IntentHelp      Intent = "HELP"
	IntentSecurity  Intent = "SECURITY"
	IntentQuestion  Intent = "QUESTION"
	IntentUnknown   Intent = "UNKNOWN"
)

// Interpreter classifies free-form user text into an intent. Implementations
// must be deterministic; the router's dispatch contract depends only on this
// interface so the matching strategy can be swapped out later.
type Interpreter interface {
	Classify(text string) Intent
}
