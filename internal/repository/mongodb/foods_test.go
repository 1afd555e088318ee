package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

const foodsNamespace = "nutrilog.foods"

func TestFoodStore(t *testing.T) {
	mt := newMockT(t)
	ctx := context.Background()

	mt.Run("find missing food", func(mt *mtest.T) {
		store := &FoodStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, foodsNamespace, mtest.FirstBatch))

		food, err := store.FindByName(ctx, "kiwi")
		assert.Nil(mt, food)
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		store := &FoodStore{coll: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, foodsNamespace, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "apple"},
			{Key: "calorie", Value: 52.0},
			{Key: "carbohydrate", Value: 14.0},
		}))

		food, err := store.FindByID(ctx, id)
		require.NoError(mt, err)
		assert.Equal(mt, "apple", food.Name)
		assert.Equal(mt, 52.0, food.Calorie)
	})

	mt.Run("upsert returns stored document", func(mt *mtest.T) {
		store := &FoodStore{coll: mt.Coll}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "apple"},
			{Key: "calorie", Value: 52.0},
			{Key: "carbohydrate", Value: 14.0},
		}}))

		food, err := store.UpsertByName(ctx, models.Food{Name: "apple", Calorie: 52, Carbohydrate: 14})
		require.NoError(mt, err)
		assert.Equal(mt, id, food.ID)
	})

	mt.Run("upsert duplicate name", func(mt *mtest.T) {
		store := &FoodStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error collection: nutrilog.foods index: name_1",
			Name:    "DuplicateKey",
		}))

		_, err := store.UpsertByName(ctx, models.Food{Name: "apple"})
		assert.ErrorIs(mt, err, ErrDuplicate)
	})

	mt.Run("delete missing food", func(mt *mtest.T) {
		store := &FoodStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := store.DeleteByName(ctx, "kiwi")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("delete existing food", func(mt *mtest.T) {
		store := &FoodStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		assert.NoError(mt, store.DeleteByName(ctx, "apple"))
	})

	mt.Run("list empty catalog", func(mt *mtest.T) {
		store := &FoodStore{coll: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, foodsNamespace, mtest.FirstBatch))

		foods, err := store.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, foods)
		assert.Empty(mt, foods)
	})
}
