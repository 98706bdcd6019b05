package store

import (
	"context"
	"time"

	"github.com/jyokubov/portfolio/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAbout returns the singleton About document.
func (db *DB) GetAbout(ctx context.Context) (*models.About, error) {
	var about models.About
	err := db.AboutCollection().FindOne(ctx, bson.M{"key": models.AboutKey}).Decode(&about)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &about, nil
}

// UpsertAbout applies a partial update to the singleton, creating it on first
// write. Supplied sections replace the stored ones; two concurrent writers race
// at last-write-wins.
func (db *DB) UpsertAbout(ctx context.Context, patch *models.AboutPatch) (*models.About, error) {
	updates := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Intro != nil {
		updates["intro"] = *patch.Intro
	}
	if patch.Stats != nil {
		updates["stats"] = *patch.Stats
	}
	if patch.Experience != nil {
		updates["experience"] = *patch.Experience
	}
	if patch.Projects != nil {
		updates["projects"] = *patch.Projects
	}
	if patch.Education != nil {
		updates["education"] = *patch.Education
	}
	if patch.TechStack != nil {
		updates["techStack"] = *patch.TechStack
	}
	if patch.Languages != nil {
		updates["languages"] = *patch.Languages
	}

	var about models.About
	err := db.AboutCollection().FindOneAndUpdate(
		ctx,
		bson.M{"key": models.AboutKey},
		bson.M{"$set": updates, "$setOnInsert": bson.M{"key": models.AboutKey}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&about)
	if err != nil {
		return nil, err
	}
	return &about, nil
}
