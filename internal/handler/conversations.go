package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/grupoherz/conversation-dashboard/internal/dashboard"
	"github.com/grupoherz/conversation-dashboard/internal/middleware"
	"github.com/grupoherz/conversation-dashboard/internal/model"
	"github.com/grupoherz/conversation-dashboard/internal/store"
	"github.com/grupoherz/conversation-dashboard/pkg/logger"
)

// ConversationHandler serves the filtered conversation list and the
// per-counterparty history.
type ConversationHandler struct {
	store  *store.Store
	logger *logger.Logger
}

// NewConversationHandler creates a new conversation handler.
func NewConversationHandler(st *store.Store, log *logger.Logger) *ConversationHandler {
	return &ConversationHandler{store: st, logger: log}
}

// base returns the viewer's underlying conversation set: the live
// snapshot for admins, the seeded demo set for everyone else.
func (h *ConversationHandler) base(role model.Role) []model.Conversation {
	if role == model.RoleAdmin {
		return h.store.Current().Conversations
	}
	return h.store.Seeded()
}

// List handles GET /api/v1/conversations
func (h *ConversationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	criteria := dashboard.Criteria{
		Viewer: dashboard.Viewer{
			Role:    middleware.GetRole(ctx),
			Name:    middleware.GetName(ctx),
			Company: middleware.GetCompany(ctx),
		},
		Search:    q.Get("search"),
		DateStart: q.Get("date_start"),
		Company:   q.Get("company"),
	}

	if err := middleware.ValidateSearchTerm(criteria.Search); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateDate(criteria.DateStart); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := middleware.ValidateCompany(criteria.Company); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page := 1
	if p := q.Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}

	filtered := dashboard.Filter(h.base(criteria.Viewer.Role), criteria)
	pageItems := dashboard.Paginate(filtered, page, dashboard.DefaultPageSize)

	writeJSON(w, http.StatusOK, model.ListConversationsResponse{
		Conversations: dashboard.Views(pageItems, time.Now()),
		Total:         len(filtered),
		Page:          page,
		TotalPages:    dashboard.TotalPages(len(filtered), dashboard.DefaultPageSize),
	})
}

// historyEntry is one raw record rendered for the history view.
type historyEntry struct {
	ID        string          `json:"id"`
	Inbound   string          `json:"inbound,omitempty"`
	Outbound  string          `json:"outbound,omitempty"`
	Agent     string          `json:"agent"`
	Received  model.Timestamp `json:"received"`
	Replied   model.Timestamp `json:"replied"`
	Client    string          `json:"client"`
	ClientRaw string          `json:"client_raw"`
}

// History handles GET /api/v1/conversations/{clientID}/history
func (h *ConversationHandler) History(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")

	records, ok := h.store.History(clientID)
	if !ok {
		writeError(w, http.StatusNotFound, "conversation not found")
		return
	}

	entries := make([]historyEntry, 0, len(records))
	for _, rec := range records {
		agent := rec.AgentID
		if agent == "" {
			agent = "Bot"
		}
		entries = append(entries, historyEntry{
			ID:        rec.ID,
			Inbound:   rec.Inbound,
			Outbound:  rec.Outbound,
			Agent:     agent,
			Received:  rec.BestTime(),
			Replied:   rec.RepliedAt,
			Client:    dashboard.MaskPhone(rec.From),
			ClientRaw: rec.From,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"client":  dashboard.MaskPhone(clientID),
		"history": entries,
	})
}
