package handler

import (
	"net/http"

	"github.com/grupoherz/conversation-dashboard/internal/widget"
)

// WidgetHandler serves the chat-widget embed configuration.
type WidgetHandler struct {
	embed *widget.Embed
}

// NewWidgetHandler creates a new widget handler.
func NewWidgetHandler(embed *widget.Embed) *WidgetHandler {
	return &WidgetHandler{embed: embed}
}

// Embed handles GET /api/v1/widget/embed
func (h *WidgetHandler) Embed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"url":     h.embed.URL(),
		"persona": h.embed.Persona(),
	})
}
