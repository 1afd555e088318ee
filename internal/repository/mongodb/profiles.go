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

// ProfileRepository defines the persistence operations for user profiles.
type ProfileRepository interface {
	FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Profile, error)
	Upsert(ctx context.Context, profile models.Profile) (*models.Profile, error)
	DeleteByUser(ctx context.Context, user primitive.ObjectID) error
}

// ProfileStore implements ProfileRepository on the profiles collection.
type ProfileStore struct {
	coll *mongo.Collection
}

var _ ProfileRepository = (*ProfileStore)(nil)

// FindByUser loads the user's profile.
func (s *ProfileStore) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.coll.FindOne(ctx, bson.M{"user": user}).Decode(&profile); err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// Upsert creates or updates the profile of profile.User.
func (s *ProfileStore) Upsert(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	update := bson.M{
		"$set": bson.M{
			"age":    profile.Age,
			"height": profile.Height,
			"weight": profile.Weight,
			"bmi":    profile.BMI,
		},
		"$setOnInsert": bson.M{"date": time.Now().UTC()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var stored models.Profile
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"user": profile.User}, update, opts).Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", translate(err))
	}
	return &stored, nil
}

// DeleteByUser removes the user's profile; ErrNotFound is returned when nothing matched.
func (s *ProfileStore) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"user": user})
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
