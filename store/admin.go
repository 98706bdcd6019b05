package store

import (
	"context"
	"strings"

	"github.com/jyokubov/portfolio/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AdminByEmail returns the admin with the given email, or nil when none exists.
// The lookup is case-insensitive because emails are stored lowercase.
func (db *DB) AdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var a models.Admin
	err := db.Admins().FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *DB) AdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var a models.Admin
	err := db.Admins().FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdmin inserts a new admin. The password must already be bcrypt-hashed;
// hashing is an explicit step in the seed command, not a store side effect.
func (db *DB) CreateAdmin(ctx context.Context, admin *models.Admin) (primitive.ObjectID, error) {
	admin.Email = strings.ToLower(strings.TrimSpace(admin.Email))
	res, err := db.Admins().InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, &ConflictError{Message: "An admin with this email already exists"}
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (db *DB) CountAdmins(ctx context.Context) (int64, error) {
	return db.Admins().CountDocuments(ctx, bson.M{})
}
