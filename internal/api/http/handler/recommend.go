package handler

import (
	"encoding/json"
	"net/http"

	"github.com/specflow/quote-server/internal/logger"
	"github.com/specflow/quote-server/internal/recommend"
)

// Recommend handles distributor product recommendation requests.
type Recommend struct {
	registry *recommend.Registry
	logger   *logger.Logger
}

// NewRecommend creates a Recommend handler.
func NewRecommend(registry *recommend.Registry, logger *logger.Logger) *Recommend {
	return &Recommend{registry: registry, logger: logger}
}

// Recommendations returns matching products from every registered
// distributor for the posted door spec.
func (h *Recommend) Recommendations(w http.ResponseWriter, r *http.Request) {
	var spec recommend.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	results, total := h.registry.All(spec)

	writeJSON(w, http.StatusOK, map[string]any{
		"distributors":          results,
		"total_recommendations": total,
	})
}

// Distributors lists the registered distributors.
func (h *Recommend) Distributors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.registry.Available())
}
