package handlers

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/jyokubov/portfolio/models"
	"github.com/jyokubov/portfolio/store"
	"github.com/jyokubov/portfolio/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for *store.DB, mirroring its normalization and error
// kinds so handler tests exercise the same paths the real store produces.

type fakeAdminStore struct {
	admins map[string]*models.Admin
	err    error
}

func (f *fakeAdminStore) AdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, nil
	}
	return a, nil
}

type fakeProjectStore struct {
	projects []models.Project
	err      error
}

func (f *fakeProjectStore) ListProjects(_ context.Context, featuredOnly bool) ([]models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Project{}
	for _, p := range f.projects {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (f *fakeProjectStore) ProjectBySlugOrID(_ context.Context, idOrSlug string) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.projects {
		if f.projects[i].Slug == idOrSlug {
			return &f.projects[i], nil
		}
	}
	if oid, err := primitive.ObjectIDFromHex(idOrSlug); err == nil {
		for i := range f.projects {
			if f.projects[i].ID == oid {
				return &f.projects[i], nil
			}
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeProjectStore) CreateProject(_ context.Context, p *models.Project) error {
	if f.err != nil {
		return f.err
	}
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	if p.Slug == "" && p.Title != "" {
		p.Slug = utils.Slugify(p.Title)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := p.Validate(); err != nil {
		return &store.ValidationError{Message: err.Error()}
	}
	for _, e := range f.projects {
		if e.Slug == p.Slug {
			return &store.ConflictError{Message: "A project with this slug already exists"}
		}
	}
	p.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.projects = append(f.projects, *p)
	return nil
}

func (f *fakeProjectStore) UpdateProject(_ context.Context, id string, patch *models.ProjectPatch) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, store.ErrNotFound
	}
	for i := range f.projects {
		if f.projects[i].ID != oid {
			continue
		}
		merged := f.projects[i]
		applyPatch(&merged, patch)
		merged.Slug = strings.ToLower(strings.TrimSpace(merged.Slug))
		if err := merged.Validate(); err != nil {
			return nil, &store.ValidationError{Message: err.Error()}
		}
		for j := range f.projects {
			if j != i && f.projects[j].Slug == merged.Slug {
				return nil, &store.ConflictError{Message: "A project with this slug already exists"}
			}
		}
		merged.UpdatedAt = time.Now().UTC()
		f.projects[i] = merged
		return &merged, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeProjectStore) DeleteProject(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return store.ErrNotFound
	}
	for i := range f.projects {
		if f.projects[i].ID == oid {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func applyPatch(p *models.Project, patch *models.ProjectPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Slug != nil {
		p.Slug = *patch.Slug
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Tags != nil {
		p.Tags = *patch.Tags
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.LiveURL != nil {
		p.LiveURL = *patch.LiveURL
	}
	if patch.GithubURL != nil {
		p.GithubURL = *patch.GithubURL
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.Order != nil {
		p.Order = *patch.Order
	}
}

type fakeAboutStore struct {
	about *models.About
	err   error
}

func (f *fakeAboutStore) GetAbout(_ context.Context) (*models.About, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.about == nil {
		return nil, store.ErrNotFound
	}
	return f.about, nil
}

func (f *fakeAboutStore) UpsertAbout(_ context.Context, patch *models.AboutPatch) (*models.About, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.about == nil {
		f.about = &models.About{Key: models.AboutKey}
	}
	if patch.Intro != nil {
		f.about.Intro = *patch.Intro
	}
	if patch.Stats != nil {
		f.about.Stats = *patch.Stats
	}
	if patch.Experience != nil {
		f.about.Experience = *patch.Experience
	}
	if patch.Projects != nil {
		f.about.Projects = *patch.Projects
	}
	if patch.Education != nil {
		f.about.Education = *patch.Education
	}
	if patch.TechStack != nil {
		f.about.TechStack = *patch.TechStack
	}
	if patch.Languages != nil {
		f.about.Languages = *patch.Languages
	}
	f.about.UpdatedAt = time.Now().UTC()
	return f.about, nil
}

var errStoreDown = errors.New("store unavailable")
