package knowledge

import (
	"context"
	"errors"

	"sofia-assistant/internal/model"
	"sofia-assistant/internal/sofia/catalog"
)

// ErrTopicNotFound is returned when no answer is stored for a topic.
var ErrTopicNotFound = errors.New("knowledge: topic not found")

// Service is the knowledge base collaborator: a lookup of canned answers to
// recognized FAQ-style topics. Content authoring lives here; the router only
// consumes it.
type Service interface {
	GetAnswer(ctx context.Context, topicID string, dctx model.DialogContext) (Answer, error)
}

type service struct {
	topics map[string]topicEntry
}

// New creates the static knowledge base.
func New() Service {
	return &service{topics: topics}
}

// topics is the authored FAQ content. Keys must use the faq_ prefix the
// router dispatches on.
var topics = map[string]topicEntry{
	catalog.ActionFAQSecurity: {
		content: map[string]string{
			"en": "Your documents are encrypted before they leave your device, and only you and the guardians you approve can ever unlock them. We cannot read your files.",
			"de": "Ihre Dokumente werden verschlüsselt, bevor sie Ihr Gerät verlassen. Nur Sie und Ihre bestätigten Vertrauenspersonen können sie entschlüsseln.",
			"cs": "Vaše dokumenty jsou zašifrovány dříve, než opustí vaše zařízení. Odemknout je můžete jen vy a vámi schválení strážci.",
		},
		followupActions: []string{catalog.ActionOpenVault, catalog.ActionAddDocument},
	},
	"faq_pricing": {
		content: map[string]string{
			"en": "The core of the assistant is free: navigation, uploads and progress guidance cost nothing. Open questions use a low-cost tier, and generated documents such as a legacy letter are premium.",
		},
		followupActions: []string{catalog.ActionSuggestNextStep},
	},
	"faq_guardians": {
		content: map[string]string{
			"en": "Guardians are trusted people who can access selected parts of your vault when it matters. You choose who, what, and when — nothing is shared without your explicit setup.",
			"de": "Vertrauenspersonen sind Menschen, die im Ernstfall auf ausgewählte Teile Ihres Tresors zugreifen können. Sie bestimmen wer, was und wann.",
		},
		followupActions: []string{catalog.ActionManageGuardians},
	},
	"faq_legacy": {
		content: map[string]string{
			"en": "The legacy section helps you put your wishes in writing: a will, personal letters and instructions for your family. You can start small and refine it over time.",
		},
		followupActions: []string{catalog.ActionCreateLegacy},
	},
}

// GetAnswer looks up the stored answer for a topic. Content is selected by
// the context language with English fallback.
func (s *service) GetAnswer(ctx context.Context, topicID string, dctx model.DialogContext) (Answer, error) {
	entry, ok := s.topics[topicID]
	if !ok {
		return Answer{}, ErrTopicNotFound
	}

	content, ok := entry.content[dctx.Language]
	if !ok {
		content = entry.content["en"]
	}

	return Answer{
		TopicID:         topicID,
		Content:         content,
		FollowupActions: entry.followupActions,
	}, nil
}
