package catalog

// Well-known action IDs. Consumers dispatch on these, so they are part of
// the contract with the host application.
const (
	ActionOpenVault       = "open_vault"
	ActionAddDocument     = "add_document"
	ActionManageGuardians = "manage_guardians"
	ActionCreateLegacy    = "create_legacy"
	ActionSuggestNextStep = "suggest_next_step"
	ActionFAQSecurity     = "faq_security"
	ActionBackToSofia     = "back_to_sofia"
	ActionRetryPremium    = "retry_premium"

	ActionGenerateLegacyLetter  = "generate_legacy_letter"
	ActionGenerateFamilySummary = "generate_family_summary"
)

// Contextual selection thresholds.
const (
	maxContextualActions   = 4
	fewDocumentsThreshold  = 5
	completionForLegacyPct = 60
)
