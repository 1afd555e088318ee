package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

// DayRepository defines the persistence operations for day logs.
// Meals and consumed entries are embedded, so a day is always written as a whole document.
type DayRepository interface {
	ListByUser(ctx context.Context, user primitive.ObjectID) ([]models.Day, error)
	ListByName(ctx context.Context, name string) ([]models.Day, error)
	FindByName(ctx context.Context, user primitive.ObjectID, name string) (*models.Day, error)
	Insert(ctx context.Context, day *models.Day) error
	Save(ctx context.Context, day *models.Day) error
	DeleteByName(ctx context.Context, user primitive.ObjectID, name string) error
}

// DayStore implements DayRepository on the days collection.
type DayStore struct {
	coll *mongo.Collection
}

var _ DayRepository = (*DayStore)(nil)

// ListByUser returns a user's days, most recent first.
func (s *DayStore) ListByUser(ctx context.Context, user primitive.ObjectID) ([]models.Day, error) {
	return s.find(ctx, bson.M{"user": user})
}

// ListByName returns every user's day with the given name.
func (s *DayStore) ListByName(ctx context.Context, name string) ([]models.Day, error) {
	return s.find(ctx, bson.M{"name": name})
}

// FindByName loads one of the user's days.
func (s *DayStore) FindByName(ctx context.Context, user primitive.ObjectID, name string) (*models.Day, error) {
	var day models.Day
	if err := s.coll.FindOne(ctx, bson.M{"user": user, "name": name}).Decode(&day); err != nil {
		return nil, translate(err)
	}
	return &day, nil
}

// Insert stores a new day, assigning its identifier when missing.
func (s *DayStore) Insert(ctx context.Context, day *models.Day) error {
	if day.ID.IsZero() {
		day.ID = primitive.NewObjectID()
	}
	if day.Meals == nil {
		day.Meals = []models.Meal{}
	}
	if _, err := s.coll.InsertOne(ctx, day); err != nil {
		return fmt.Errorf("failed to insert day %s: %w", day.Name, translate(err))
	}
	return nil
}

// Save replaces the stored day with the provided document.
func (s *DayStore) Save(ctx context.Context, day *models.Day) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": day.ID}, day)
	if err != nil {
		return fmt.Errorf("failed to save day %s: %w", day.Name, translate(err))
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByName removes one of the user's days; ErrNotFound is returned when nothing matched.
func (s *DayStore) DeleteByName(ctx context.Context, user primitive.ObjectID, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"user": user, "name": name})
	if err != nil {
		return fmt.Errorf("failed to delete day %s: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *DayStore) find(ctx context.Context, filter bson.M) ([]models.Day, error) {
	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}

	days := make([]models.Day, 0)
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("failed to decode days: %w", err)
	}
	return days, nil
}
