package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

// FoodRepository defines the persistence operations for the food catalog.
type FoodRepository interface {
	List(ctx context.Context) ([]models.Food, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error)
	FindByName(ctx context.Context, name string) (*models.Food, error)
	UpsertByName(ctx context.Context, food models.Food) (*models.Food, error)
	DeleteByName(ctx context.Context, name string) error
}

// FoodStore implements FoodRepository on the foods collection.
type FoodStore struct {
	coll *mongo.Collection
}

var _ FoodRepository = (*FoodStore)(nil)

// List returns the whole catalog sorted by name.
func (s *FoodStore) List(ctx context.Context) ([]models.Food, error) {
	cursor, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	foods := make([]models.Food, 0)
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode foods: %w", err)
	}
	return foods, nil
}

// FindByID loads a food by its identifier.
func (s *FoodStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// FindByName loads a food by its unique name.
func (s *FoodStore) FindByName(ctx context.Context, name string) (*models.Food, error) {
	return s.findOne(ctx, bson.M{"name": name})
}

// UpsertByName creates the food or overwrites its nutritional values, returning the stored document.
func (s *FoodStore) UpsertByName(ctx context.Context, food models.Food) (*models.Food, error) {
	created := food.Date
	if created.IsZero() {
		created = time.Now().UTC()
	}

	update := bson.M{
		"$set": bson.M{
			"calorie":      food.Calorie,
			"carbohydrate": food.Carbohydrate,
		},
		"$setOnInsert": bson.M{"date": created},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Food
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"name": food.Name}, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert food %s: %w", food.Name, translate(err))
	}
	return &stored, nil
}

// DeleteByName removes a food; ErrNotFound is returned when nothing matched.
func (s *FoodStore) DeleteByName(ctx context.Context, name string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("failed to delete food %s: %w", name, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *FoodStore) findOne(ctx context.Context, filter bson.M) (*models.Food, error) {
	var food models.Food
	if err := s.coll.FindOne(ctx, filter).Decode(&food); err != nil {
		return nil, translate(err)
	}
	return &food, nil
}
