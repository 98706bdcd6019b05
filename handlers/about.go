package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jyokubov/portfolio/models"
)

// AboutStore is the slice of the store the about handlers need.
type AboutStore interface {
	GetAbout(ctx context.Context) (*models.About, error)
	UpsertAbout(ctx context.Context, patch *models.AboutPatch) (*models.About, error)
}

type AboutHandler struct {
	DB AboutStore
}

// Get returns the About page content. The internal key field is stripped by the
// model's JSON tags.
func (h *AboutHandler) Get(w http.ResponseWriter, r *http.Request) {
	about, err := h.DB.GetAbout(r.Context())
	if err != nil {
		respondStoreError(w, err, "About content not found", "Failed to fetch about content")
		return
	}
	respondJSON(w, http.StatusOK, about)
}

// Update applies a partial update to the singleton, creating it on first PATCH.
func (h *AboutHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.AboutPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	about, err := h.DB.UpsertAbout(r.Context(), &patch)
	if err != nil {
		respondStoreError(w, err, "About content not found", "Failed to update about content")
		return
	}
	respondJSON(w, http.StatusOK, about)
}
