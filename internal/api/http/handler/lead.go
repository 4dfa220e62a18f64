package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/specflow/quote-server/internal/logger"
	"github.com/specflow/quote-server/internal/service"
)

// Lead handles lead submission and the admin lead operations.
type Lead struct {
	service *service.Lead
	logger  *logger.Logger
}

// NewLead creates a Lead handler.
func NewLead(service *service.Lead, logger *logger.Logger) *Lead {
	return &Lead{service: service, logger: logger}
}

type createLeadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Create accepts a public lead submission.
func (h *Lead) Create(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	lead, err := h.service.Create(r.Context(), service.CreateLeadParams{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Error("failed to create lead", "error", err)
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": lead.ID})
}

// List returns stored leads for the admin. The limit query parameter caps the
// result; zero or absent falls back to the service default.
func (h *Lead) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	leads, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"leads": leads,
		"count": len(leads),
	})
}

// Get returns a single lead by ID.
func (h *Lead) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

// Delete removes a lead. Deleting an absent ID succeeds.
func (h *Lead) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.logger.Error("failed to delete lead", "error", err)
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
