package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jyokubov/portfolio/models"
)

// ProjectStore is the slice of the store the project handlers need.
type ProjectStore interface {
	ListProjects(ctx context.Context, featuredOnly bool) ([]models.Project, error)
	ProjectBySlugOrID(ctx context.Context, idOrSlug string) (*models.Project, error)
	CreateProject(ctx context.Context, p *models.Project) error
	UpdateProject(ctx context.Context, id string, patch *models.ProjectPatch) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

type ProjectsHandler struct {
	DB ProjectStore
}

// List returns all projects sorted by order. ?featured=true narrows to featured
// projects (home page).
func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	featured := r.URL.Query().Get("featured") == "true"
	projects, err := h.DB.ListProjects(r.Context(), featured)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

// Get returns a single project, looked up by slug then primary key.
func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.DB.ProjectBySlugOrID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondStoreError(w, err, "Project not found", "Failed to fetch project")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"project": project})
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var project models.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.DB.CreateProject(r.Context(), &project); err != nil {
		respondStoreError(w, err, "Project not found", "Failed to create project")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{"project": project})
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.ProjectPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	project, err := h.DB.UpdateProject(r.Context(), chi.URLParam(r, "id"), &patch)
	if err != nil {
		respondStoreError(w, err, "Project not found", "Failed to update project")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"project": project})
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondStoreError(w, err, "Project not found", "Failed to delete project")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
