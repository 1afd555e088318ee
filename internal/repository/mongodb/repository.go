package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	foodsCollection    = "foods"
	daysCollection     = "days"
	profilesCollection = "profiles"
	usersCollection    = "users"
	reportsCollection  = "daily_reports"
)

// ErrNotFound is returned when a lookup or delete matches no document.
var ErrNotFound = errors.New("document not found")

// ErrDuplicate is returned when a write violates a unique index.
var ErrDuplicate = errors.New("duplicate document")

// MongoDBRepository owns the MongoDB client and hands out per-collection repositories.
type MongoDBRepository struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// EnsureIndexes creates the unique indexes the repositories rely on.
func (r *MongoDBRepository) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		foodsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		daysCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		profilesCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		reportsCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}, {Key: "day", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for coll, models := range indexes {
		if _, err := r.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// Ping checks that the server is reachable.
func (r *MongoDBRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}

// Foods returns the food catalog repository.
func (r *MongoDBRepository) Foods() *FoodStore {
	return &FoodStore{coll: r.db.Collection(foodsCollection)}
}

// Days returns the day log repository.
func (r *MongoDBRepository) Days() *DayStore {
	return &DayStore{coll: r.db.Collection(daysCollection)}
}

// Profiles returns the profile repository.
func (r *MongoDBRepository) Profiles() *ProfileStore {
	return &ProfileStore{coll: r.db.Collection(profilesCollection)}
}

// Users returns the account repository.
func (r *MongoDBRepository) Users() *UserStore {
	return &UserStore{coll: r.db.Collection(usersCollection)}
}

// Reports returns the daily report repository.
func (r *MongoDBRepository) Reports() *ReportStore {
	return &ReportStore{coll: r.db.Collection(reportsCollection)}
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
