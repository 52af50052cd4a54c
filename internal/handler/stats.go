package handler

import (
	"net/http"

	"github.com/grupoherz/conversation-dashboard/internal/dashboard"
	"github.com/grupoherz/conversation-dashboard/internal/middleware"
	"github.com/grupoherz/conversation-dashboard/internal/model"
	"github.com/grupoherz/conversation-dashboard/internal/store"
	"github.com/grupoherz/conversation-dashboard/pkg/logger"
)

// StatsHandler serves the role-dependent statistic cards.
type StatsHandler struct {
	store  *store.Store
	logger *logger.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(st *store.Store, log *logger.Logger) *StatsHandler {
	return &StatsHandler{store: st, logger: log}
}

// Stats handles GET /api/v1/stats
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var stats []model.Stat
	switch middleware.GetRole(ctx) {
	case model.RoleAdmin:
		stats = dashboard.AdminStats(h.store.Current().Records)
	case model.RoleCompany:
		visible := dashboard.Filter(h.store.Seeded(), dashboard.Criteria{
			Viewer: dashboard.Viewer{
				Role:    model.RoleCompany,
				Company: middleware.GetCompany(ctx),
			},
		})
		stats = dashboard.CompanyStats(visible)
	default:
		stats = []model.Stat{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"stats": stats})
}
