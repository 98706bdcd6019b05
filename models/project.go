package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator"
	"github.com/jyokubov/portfolio/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project category constants.
const (
	CategoryWebsite     = "WEBSITE"
	CategoryMobileApp   = "MOBILE APP"
	CategoryTelegramBot = "TELEGRAM BOT"
)

var ValidCategories = []string{CategoryWebsite, CategoryMobileApp, CategoryTelegramBot}

type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title" validate:"required,max=100"`
	Slug        string             `bson:"slug" json:"slug"` // unique, lowercase, ^[a-z0-9-]+$
	Category    string             `bson:"category" json:"category" validate:"required"`
	Description string             `bson:"description" json:"description" validate:"required,max=500"`
	Tags        []string           `bson:"tags" json:"tags"`
	Image       string             `bson:"image" json:"image" validate:"required"` // cover image URL
	LiveURL     string             `bson:"liveUrl" json:"liveUrl"`
	GithubURL   string             `bson:"githubUrl" json:"githubUrl"`
	Featured    bool               `bson:"featured" json:"featured"`
	Order       int                `bson:"order" json:"order"` // display order, lower = first
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ProjectPatch carries a partial update; nil fields are left untouched.
type ProjectPatch struct {
	Title       *string   `json:"title"`
	Slug        *string   `json:"slug"`
	Category    *string   `json:"category"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Image       *string   `json:"image"`
	LiveURL     *string   `json:"liveUrl"`
	GithubURL   *string   `json:"githubUrl"`
	Featured    *bool     `json:"featured"`
	Order       *int      `json:"order"`
}

var validate = validator.New()

// Validate checks the document against the schema rules. Messages match what the
// admin UI shows inline, so keep them human-readable.
func (p *Project) Validate() error {
	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errors.New(projectFieldMessage(fieldErrs[0]))
		}
		return err
	}
	if p.Slug == "" {
		return errors.New("Slug is required")
	}
	if !utils.IsValidSlug(p.Slug) {
		return errors.New("Slug can only contain lowercase letters, numbers, and hyphens")
	}
	if !validCategory(p.Category) {
		return errors.New("Category must be WEBSITE, MOBILE APP, or TELEGRAM BOT")
	}
	return nil
}

func validCategory(c string) bool {
	for _, v := range ValidCategories {
		if v == c {
			return true
		}
	}
	return false
}

func projectFieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Title":
		if fe.Tag() == "max" {
			return "Title cannot exceed 100 characters"
		}
		return "Project title is required"
	case "Category":
		return "Category is required"
	case "Description":
		if fe.Tag() == "max" {
			return "Description cannot exceed 500 characters"
		}
		return "Description is required"
	case "Image":
		return "Cover image is required"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
