package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB wraps the Mongo client. Constructed once in main and injected into every
// handler; the driver multiplexes concurrent requests over its own pool.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDB(ctx context.Context, uri, dbName string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	log.Println("Connected to MongoDB")
	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

func (db *DB) Admins() *mongo.Collection {
	return db.Database.Collection("admins")
}

func (db *DB) Projects() *mongo.Collection {
	return db.Database.Collection("projects")
}

func (db *DB) AboutCollection() *mongo.Collection {
	return db.Database.Collection("about")
}

// EnsureIndexes creates the unique indexes the data model relies on: slug per
// project, email per admin, key for the About singleton.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	_, err := db.Projects().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"slug": 1},
		Options: unique,
	})
	if err != nil {
		return err
	}
	_, err = db.Admins().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: unique,
	})
	if err != nil {
		return err
	}
	_, err = db.AboutCollection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"key": 1},
		Options: unique,
	})
	return err
}

func (db *DB) Disconnect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
