// Package handler provides HTTP handlers for the dashboard API.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grupoherz/conversation-dashboard/internal/auth"
	"github.com/grupoherz/conversation-dashboard/internal/middleware"
	"github.com/grupoherz/conversation-dashboard/internal/model"
	"github.com/grupoherz/conversation-dashboard/pkg/logger"
	"github.com/grupoherz/conversation-dashboard/pkg/metrics"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	service *auth.Service
	logger  *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(svc *auth.Service, log *logger.Logger) *AuthHandler {
	return &AuthHandler{service: svc, logger: log}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := middleware.ValidateUsername(req.Username); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.RecordLogin("rejected")
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("login failed")
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	metrics.RecordLogin("ok")
	writeJSON(w, http.StatusOK, resp)
}
