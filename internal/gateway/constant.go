package gateway

// Log prefixes
const (
	LogPrefixSimpleQuery = "internal.gateway.ProcessSimpleQuery"
	LogPrefixPremium     = "internal.gateway.ProcessPremiumGeneration"
)

// premiumErrorMessages is the localized error text surfaced when a premium
// generation fails. English is the fallback.
var premiumErrorMessages = map[string]string{
	"en": "Sofia could not finish your premium request right now. Your request was not lost — please try again in a moment.",
	"de": "Sofia konnte Ihre Premium-Anfrage gerade nicht abschließen. Ihre Anfrage ist nicht verloren — bitte versuchen Sie es gleich noch einmal.",
	"cs": "Sofia nyní nemohla dokončit váš prémiový požadavek. Požadavek se neztratil — zkuste to prosím za chvíli znovu.",
}

// mockPools hold the canned local responses used when the provider is
// unavailable, keyed by coarse prompt intent.
var mockPools = map[string][]string{
	"documents": {
		"A good next step is uploading your most important documents — identity papers and insurance first. Your vault keeps them encrypted and in one place.",
		"Start with the documents your family would need first: ID, insurance policies and contracts. Upload them to your vault and Sofia will track your progress.",
	},
	"guardians": {
		"Guardians are the people you trust to act for your family when you cannot. Adding even one guardian significantly improves how protected your family is.",
		"Consider adding a trusted person as a guardian. They only see what you explicitly share, and you can change this at any time.",
	},
	"legacy": {
		"When your basics are covered, the legacy section helps you write down your wishes — a will, personal letters, instructions. Small steps count.",
		"Creating a will sounds daunting, but you can start with a simple draft and refine it. Your progress so far puts you in a good position.",
	},
	"general": {
		"I can help you protect what matters: upload documents, add guardians, and build your legacy step by step. Ask me anything about your setup.",
		"Your family's protection grows with every step you complete. Tell me what you would like to work on and I will guide you there.",
	},
}
