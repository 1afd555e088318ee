package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

// MockFoodRepository mocks mongodb.FoodRepository.
type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) List(ctx context.Context) ([]models.Food, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) FindByName(ctx context.Context, name string) (*models.Food, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) UpsertByName(ctx context.Context, food models.Food) (*models.Food, error) {
	args := m.Called(ctx, food)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Food), args.Error(1)
}

func (m *MockFoodRepository) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

// MockDayRepository mocks mongodb.DayRepository.
type MockDayRepository struct {
	mock.Mock
}

func (m *MockDayRepository) ListByUser(ctx context.Context, user primitive.ObjectID) ([]models.Day, error) {
	args := m.Called(ctx, user)
	return args.Get(0).([]models.Day), args.Error(1)
}

func (m *MockDayRepository) ListByName(ctx context.Context, name string) ([]models.Day, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]models.Day), args.Error(1)
}

func (m *MockDayRepository) FindByName(ctx context.Context, user primitive.ObjectID, name string) (*models.Day, error) {
	args := m.Called(ctx, user, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Day), args.Error(1)
}

func (m *MockDayRepository) Insert(ctx context.Context, day *models.Day) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *MockDayRepository) Save(ctx context.Context, day *models.Day) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

func (m *MockDayRepository) DeleteByName(ctx context.Context, user primitive.ObjectID, name string) error {
	args := m.Called(ctx, user, name)
	return args.Error(0)
}

// MockProfileRepository mocks mongodb.ProfileRepository.
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) FindByUser(ctx context.Context, user primitive.ObjectID) (*models.Profile, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(ctx context.Context, profile models.Profile) (*models.Profile, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepository) DeleteByUser(ctx context.Context, user primitive.ObjectID) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockUserRepository mocks mongodb.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Insert(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockReportRepository mocks mongodb.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

// MockExporter mocks sheets.Exporter.
type MockExporter struct {
	mock.Mock
}

func (m *MockExporter) AppendReports(ctx context.Context, reports []models.DailyReport) error {
	args := m.Called(ctx, reports)
	return args.Error(0)
}

// MockNutritionClient mocks edamam.Client.
type MockNutritionClient struct {
	mock.Mock
}

func (m *MockNutritionClient) SearchFoods(ctx context.Context, query string) ([]models.FoodCandidate, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FoodCandidate), args.Error(1)
}
