package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/grupoherz/conversation-dashboard/internal/model"
)

// UpdatedLabel is the neutral recency label when no timestamp is known.
const UpdatedLabel = "Atualizado"

// RelativeTime renders a pt-BR recency label for t relative to now.
// Anything older than a week falls back to an absolute date.
func RelativeTime(t *time.Time, now time.Time) string {
	if t == nil {
		return UpdatedLabel
	}
	diff := now.Sub(*t)
	if diff < 0 {
		diff = 0
	}
	switch {
	case diff < time.Minute:
		return "há poucos segundos"
	case diff < time.Hour:
		return fmt.Sprintf("há %d minutos", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("há %d horas", int(diff.Hours()))
	case diff >= 7*24*time.Hour:
		return t.Format("02/01/2006")
	default:
		return fmt.Sprintf("há %d dias", int(diff.Hours()/24))
	}
}

// MaskPhone strips the transport suffix from a counterparty identifier
// (everything after the first "@").
func MaskPhone(raw string) string {
	name, _, _ := strings.Cut(raw, "@")
	return name
}

// View decorates a conversation for display.
func View(conv model.Conversation, now time.Time) model.ConversationView {
	return model.ConversationView{
		Conversation:    conv,
		DisplayName:     MaskPhone(conv.ClientName),
		LastInteraction: RelativeTime(conv.LastSeen, now),
	}
}

// Views decorates a page of conversations for display.
func Views(conversations []model.Conversation, now time.Time) []model.ConversationView {
	views := make([]model.ConversationView, 0, len(conversations))
	for _, conv := range conversations {
		views = append(views, View(conv, now))
	}
	return views
}
