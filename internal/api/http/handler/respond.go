package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/specflow/quote-server/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Payloads are built from our own types; encoding cannot fail.
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain errors to HTTP responses. Validation errors carry
// their field detail; everything unexpected collapses to an opaque 500.
func handleError(w http.ResponseWriter, err error) {
	var fieldErrs model.FieldErrors
	if errors.As(err, &fieldErrs) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": fieldErrs})
		return
	}

	var missing model.MissingFieldsError
	if errors.As(err, &missing) {
		writeError(w, http.StatusBadRequest, missing.Error())
		return
	}

	if errors.Is(err, model.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}

	writeError(w, http.StatusInternalServerError, "internal server error")
}
