package foods

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
	repo "github.com/mamadbah2/nutrilog/internal/repository/mongodb"
	"github.com/mamadbah2/nutrilog/internal/repository/mocks"
)

func TestUpsert(t *testing.T) {
	tests := []struct {
		name    string
		food    models.Food
		setup   func(*mocks.MockFoodRepository)
		wantErr error
	}{
		{
			name: "stores trimmed name",
			food: models.Food{Name: "  apple ", Calorie: 52, Carbohydrate: 14},
			setup: func(m *mocks.MockFoodRepository) {
				m.On("UpsertByName", mock.Anything, models.Food{Name: "apple", Calorie: 52, Carbohydrate: 14}).
					Return(&models.Food{Name: "apple", Calorie: 52, Carbohydrate: 14}, nil)
			},
		},
		{
			name:    "missing name",
			food:    models.Food{Calorie: 52},
			setup:   func(*mocks.MockFoodRepository) {},
			wantErr: ErrInvalidFood,
		},
		{
			name:    "negative values",
			food:    models.Food{Name: "apple", Calorie: -1},
			setup:   func(*mocks.MockFoodRepository) {},
			wantErr: ErrInvalidFood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foodRepo := new(mocks.MockFoodRepository)
			tt.setup(foodRepo)
			svc := NewService(foodRepo, nil, nil)

			food, err := svc.Upsert(context.Background(), tt.food)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				foodRepo.AssertNotCalled(t, "UpsertByName", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "apple", food.Name)
			foodRepo.AssertExpectations(t)
		})
	}
}

func TestGetAndDeleteMissingFood(t *testing.T) {
	foodRepo := new(mocks.MockFoodRepository)
	foodRepo.On("FindByName", mock.Anything, "durian").Return(nil, repo.ErrNotFound)
	foodRepo.On("DeleteByName", mock.Anything, "durian").Return(repo.ErrNotFound)
	svc := NewService(foodRepo, nil, nil)

	_, err := svc.Get(context.Background(), "durian")
	assert.ErrorIs(t, err, ErrFoodNotFound)

	err = svc.Delete(context.Background(), "durian")
	assert.ErrorIs(t, err, ErrFoodNotFound)
}

func TestDeleteStorageFailure(t *testing.T) {
	boom := errors.New("timeout")
	foodRepo := new(mocks.MockFoodRepository)
	foodRepo.On("DeleteByName", mock.Anything, "apple").Return(boom)
	svc := NewService(foodRepo, nil, nil)

	err := svc.Delete(context.Background(), "apple")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrFoodNotFound)
}

func TestLookupDisabled(t *testing.T) {
	svc := NewService(new(mocks.MockFoodRepository), nil, nil)

	_, err := svc.Lookup(context.Background(), "apple")
	assert.ErrorIs(t, err, ErrLookupDisabled)

	_, err = svc.Import(context.Background(), "apple")
	assert.ErrorIs(t, err, ErrLookupDisabled)
}

func TestImportStoresFirstCandidate(t *testing.T) {
	foodRepo := new(mocks.MockFoodRepository)
	client := new(mocks.MockNutritionClient)
	client.On("SearchFoods", mock.Anything, "apple").Return([]models.FoodCandidate{
		{ExternalID: "food_a1", Name: "apple", Calorie: 52, Carbohydrate: 13.81},
		{ExternalID: "food_b2", Name: "apple juice", Calorie: 46},
	}, nil)
	foodRepo.On("UpsertByName", mock.Anything, models.Food{Name: "apple", Calorie: 52, Carbohydrate: 13.81}).
		Return(&models.Food{Name: "apple", Calorie: 52, Carbohydrate: 13.81}, nil)

	svc := NewService(foodRepo, client, nil)
	food, err := svc.Import(context.Background(), " apple ")
	require.NoError(t, err)
	assert.Equal(t, 13.81, food.Carbohydrate)
	foodRepo.AssertExpectations(t)
}

func TestImportWithoutCandidates(t *testing.T) {
	client := new(mocks.MockNutritionClient)
	client.On("SearchFoods", mock.Anything, "xyzzy").Return([]models.FoodCandidate{}, nil)

	svc := NewService(new(mocks.MockFoodRepository), client, nil)
	_, err := svc.Import(context.Background(), "xyzzy")
	assert.ErrorIs(t, err, ErrNoCandidates)
}
