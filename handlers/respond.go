package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jyokubov/portfolio/store"
)

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("respond: encode failed: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStoreError maps the store error taxonomy to HTTP statuses. Anything
// unrecognized is logged and surfaced as the generic fallback 500.
func respondStoreError(w http.ResponseWriter, err error, notFoundMsg, fallbackMsg string) {
	var ve *store.ValidationError
	var ce *store.ConflictError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, notFoundMsg)
	case errors.As(err, &ve):
		respondError(w, http.StatusBadRequest, ve.Message)
	case errors.As(err, &ce):
		respondError(w, http.StatusConflict, ce.Message)
	default:
		log.Printf("store error: %v", err)
		respondError(w, http.StatusInternalServerError, fallbackMsg)
	}
}
