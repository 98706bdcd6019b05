package store

import (
	"context"
	"strings"
	"time"

	"github.com/jyokubov/portfolio/models"
	"github.com/jyokubov/portfolio/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListProjects returns projects sorted by display order. Ties keep insertion
// order. When featuredOnly is set, only featured projects are returned.
func (db *DB) ListProjects(ctx context.Context, featuredOnly bool) ([]models.Project, error) {
	filter := bson.M{}
	if featuredOnly {
		filter["featured"] = true
	}
	cur, err := db.Projects().Find(ctx, filter, options.Find().SetSort(bson.M{"order": 1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// ProjectBySlugOrID looks up by slug first (the common case for URLs), then by
// primary key when the identifier is a valid ObjectID hex.
func (db *DB) ProjectBySlugOrID(ctx context.Context, idOrSlug string) (*models.Project, error) {
	var p models.Project
	err := db.Projects().FindOne(ctx, bson.M{"slug": idOrSlug}).Decode(&p)
	if err == nil {
		return &p, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}
	oid, idErr := primitive.ObjectIDFromHex(idOrSlug)
	if idErr != nil {
		return nil, ErrNotFound
	}
	err = db.Projects().FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject validates, normalizes the slug, and inserts. The slug is derived
// from the title when left blank. Duplicate slugs surface as ConflictError.
func (db *DB) CreateProject(ctx context.Context, p *models.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = strings.ToLower(strings.TrimSpace(p.Slug))
	if p.Slug == "" && p.Title != "" {
		p.Slug = utils.Slugify(p.Title)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := p.Validate(); err != nil {
		return &ValidationError{Message: err.Error()}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := db.Projects().InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &ConflictError{Message: "A project with this slug already exists"}
		}
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateProject applies a partial update by primary key, re-validating the merged
// document before writing. Returns the updated document.
func (db *DB) UpdateProject(ctx context.Context, id string, patch *models.ProjectPatch) (*models.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var existing models.Project
	if err := db.Projects().FindOne(ctx, bson.M{"_id": oid}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}

	merged := existing
	applyProjectPatch(&merged, patch)
	merged.Slug = strings.ToLower(strings.TrimSpace(merged.Slug))
	if err := merged.Validate(); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	updates := projectPatchSet(patch)
	if slug, ok := updates["slug"]; ok {
		updates["slug"] = strings.ToLower(strings.TrimSpace(slug.(string)))
	}
	updates["updatedAt"] = time.Now().UTC()

	var updated models.Project
	err = db.Projects().FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &ConflictError{Message: "A project with this slug already exists"}
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteProject removes a project by primary key.
func (db *DB) DeleteProject(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := db.Projects().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func applyProjectPatch(p *models.Project, patch *models.ProjectPatch) {
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

func projectPatchSet(patch *models.ProjectPatch) bson.M {
	updates := bson.M{}
	if patch.Title != nil {
		updates["title"] = strings.TrimSpace(*patch.Title)
	}
	if patch.Slug != nil {
		updates["slug"] = *patch.Slug
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Tags != nil {
		updates["tags"] = *patch.Tags
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.LiveURL != nil {
		updates["liveUrl"] = *patch.LiveURL
	}
	if patch.GithubURL != nil {
		updates["githubUrl"] = *patch.GithubURL
	}
	if patch.Featured != nil {
		updates["featured"] = *patch.Featured
	}
	if patch.Order != nil {
		updates["order"] = *patch.Order
	}
	return updates
}
