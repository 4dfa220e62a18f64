package handler

import (
	"encoding/json"
	"net/http"

	"github.com/specflow/quote-server/internal/logger"
	"github.com/specflow/quote-server/internal/service"
)

// Estimate handles door pricing requests.
type Estimate struct {
	service *service.Estimate
	logger  *logger.Logger
}

// NewEstimate creates an Estimate handler.
func NewEstimate(service *service.Estimate, logger *logger.Logger) *Estimate {
	return &Estimate{service: service, logger: logger}
}

// Quote prices a door specification. The body is decoded into a loose map so
// that validation can report every bad field instead of failing on the first
// type mismatch.
func (h *Estimate) Quote(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	breakdown, err := h.service.Quote(r.Context(), raw)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"estimate":  breakdown.Total,
		"breakdown": breakdown,
	})
}
