package usecase

// Log prefixes
const (
	LogPrefixProcess = "internal.sofia.usecase.ProcessCommand"
)

// UI action tokens the host application dispatches on.
const (
	UITriggerUpload = "trigger_upload"
	UIShowProgress  = "show_progress"
	UIShowSofia     = "show_sofia"
)

// routeTable maps navigation command ids to abstract route identifiers.
// The host application owns the actual rendering; the router only declares
// intent.
var routeTable = map[string]string{
	"navigate_vault":     "/vault",
	"navigate_guardians": "/guardians",
	"navigate_legacy":    "/legacy",
	"navigate_dashboard": "/dashboard",
}

// User-facing messages.
const (
	MsgUnknownCommand  = "I don't recognize that command. Here is what I can help you with instead:"
	MsgUnknownTopic    = "I don't have an answer for that yet. One of these might help:"
	MsgGenericFailure  = "Something went wrong on my side. Please try one of these instead:"
	MsgNotSure         = "I'm not sure what you mean. Try one of these:"
	MsgSofiaGreeting   = "Hi, I'm Sofia. I can guide you through protecting your documents, your people and your legacy. What would you like to do?"
	MsgUploadReady     = "Great, let's add a document to your vault."
	MsgPremiumFallback = "Your premium request could not be completed right now. Please try again."
)

// premiumPrompts maps premium command ids to their prompt templates.
// Placeholders: user name, family status, document count, completion.
var premiumPrompts = map[string]string{
	"generate_legacy_letter": "Write a warm, personal legacy letter from %s to their loved ones. " +
		"Family situation: %s. They have secured %d documents and completed %d%% of their protection plan. " +
		"The letter should feel personal and reassuring, not legalistic.",
	"generate_family_summary": "Prepare a clear financial and document overview that %s can share with their family. " +
		"Family situation: %s. Cover the %d stored documents at a high level and note that the protection plan is %d%% complete. " +
		"Use plain language a non-expert relative would understand.",
}
