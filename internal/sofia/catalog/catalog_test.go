package catalog_test

import (
	"reflect"
	"testing"

	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia/catalog"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("catalog.New failed: %v", err)
	}
	return c
}

func TestNew_EntriesAreValid(t *testing.T) {
	c := newCatalog(t)

	// Well-known ids must all resolve
	for _, id := range []string{
		catalog.ActionOpenVault,
		catalog.ActionAddDocument,
		catalog.ActionManageGuardians,
		catalog.ActionCreateLegacy,
		catalog.ActionSuggestNextStep,
		catalog.ActionFAQSecurity,
		catalog.ActionBackToSofia,
		catalog.ActionRetryPremium,
		catalog.ActionGenerateLegacyLetter,
		catalog.ActionGenerateFamilySummary,
	} {
		if _, ok := c.Get(id); !ok {
			t.Errorf("missing well-known action %q", id)
		}
	}
}

func TestContextualActions(t *testing.T) {
	c := newCatalog(t)

	t.Run("New User With Family Gets Full Set", func(t *testing.T) {
		dctx := model.DialogContext{
			DocumentCount:        0,
			GuardianCount:        0,
			CompletionPercentage: 0,
			FamilyStatus:         model.FamilyFamily,
		}
		got := c.ContextualActions(dctx)
		want := []string{
			catalog.ActionOpenVault,
			catalog.ActionAddDocument,
			catalog.ActionManageGuardians,
			catalog.ActionSuggestNextStep,
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Errorf("unexpected actions: got %v, want %v", ids(got), want)
		}
	})

	t.Run("Advanced Single User", func(t *testing.T) {
		dctx := model.DialogContext{
			DocumentCount:        12,
			GuardianCount:        2,
			CompletionPercentage: 75,
			FamilyStatus:         model.FamilySingle,
		}
		got := c.ContextualActions(dctx)
		want := []string{
			catalog.ActionOpenVault,
			catalog.ActionCreateLegacy,
			catalog.ActionSuggestNextStep,
			catalog.ActionFAQSecurity,
		}
		if !reflect.DeepEqual(ids(got), want) {
			t.Errorf("unexpected actions: got %v, want %v", ids(got), want)
		}
	})

	t.Run("Bounds And No Duplicates", func(t *testing.T) {
		contexts := []model.DialogContext{
			{},
			{DocumentCount: 100, GuardianCount: 5, CompletionPercentage: 100, FamilyStatus: model.FamilyBusiness},
			{DocumentCount: 2, FamilyStatus: model.FamilyPartner},
			{CompletionPercentage: 61, FamilyStatus: model.FamilyParentCare},
		}
		for _, dctx := range contexts {
			got := c.ContextualActions(dctx)
			if len(got) < 1 || len(got) > 4 {
				t.Fatalf("expected 1-4 actions, got %d for %+v", len(got), dctx)
			}
			if got[0].ID != catalog.ActionOpenVault {
				t.Errorf("expected open_vault first, got %s", got[0].ID)
			}
			seen := map[string]bool{}
			for _, a := range got {
				if seen[a.ID] {
					t.Errorf("duplicate action id %s", a.ID)
				}
				seen[a.ID] = true
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		dctx := model.DialogContext{DocumentCount: 1, FamilyStatus: model.FamilyFamily}
		first := c.ContextualActions(dctx)
		second := c.ContextualActions(dctx)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("contextual actions are not deterministic")
		}
	})
}

func ids(actions []model.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.ID
	}
	return out
}
