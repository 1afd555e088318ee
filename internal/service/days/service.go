package days

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
	repo "github.com/mamadbah2/nutrilog/internal/repository/mongodb"
)

var (
	// ErrDayNotFound indicates the user has no day with the requested name.
	ErrDayNotFound = errors.New("day not found")
	// ErrMealNotFound indicates today's day has no meal of the requested type.
	ErrMealNotFound = errors.New("meal not found")
	// ErrMealExists indicates today's day already holds a meal of that type.
	ErrMealExists = errors.New("meal already exists")
	// ErrFoodNotFound indicates the referenced food is not in the catalog.
	ErrFoodNotFound = errors.New("food not found")
	// ErrConsumedNotFound indicates the meal has no consumed entry with that id.
	ErrConsumedNotFound = errors.New("consumed entry not found")
	// ErrInvalidQuantity indicates a non-positive consumed quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")
	// ErrInvalidMealType indicates an empty meal type label.
	ErrInvalidMealType = errors.New("meal type is required")
)

// Service maintains users' day logs and the running totals of their meals.
type Service struct {
	days     repo.DayRepository
	foods    repo.FoodRepository
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a day service. Day names are resolved in location (UTC when nil).
func NewService(days repo.DayRepository, foods repo.FoodRepository, location *time.Location, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		days:     days,
		foods:    foods,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Today returns the ISO date naming the current day.
func (s *Service) Today() string {
	return s.now().In(s.location).Format(models.DayNameLayout)
}

// Upsert finds the user's day with the given name (today when empty) and touches it,
// or creates it when absent. The boolean reports whether a new day was created.
func (s *Service) Upsert(ctx context.Context, user primitive.ObjectID, name string) (*models.Day, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.Today()
	}

	now := s.now().UTC()

	day, err := s.days.FindByName(ctx, user, name)
	switch {
	case err == nil:
		day.UpdatedAt = now
		if err := s.days.Save(ctx, day); err != nil {
			return nil, false, s.dayError(name, err)
		}
		return day, false, nil
	case !errors.Is(err, repo.ErrNotFound):
		return nil, false, fmt.Errorf("load day %s: %w", name, err)
	}

	day = &models.Day{
		User:      user,
		Name:      name,
		Meals:     []models.Meal{},
		Date:      now,
		UpdatedAt: now,
	}
	if err := s.days.Insert(ctx, day); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			// Created concurrently by another request; return the winner.
			existing, findErr := s.days.FindByName(ctx, user, name)
			if findErr != nil {
				return nil, false, fmt.Errorf("reload day %s: %w", name, findErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create day %s: %w", name, err)
	}

	s.logger.Info("day created", zap.String("user", user.Hex()), zap.String("day", name))
	return day, true, nil
}

// List returns all of the user's days.
func (s *Service) List(ctx context.Context, user primitive.ObjectID) ([]models.Day, error) {
	days, err := s.days.ListByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return days, nil
}

// Get returns one of the user's days.
func (s *Service) Get(ctx context.Context, user primitive.ObjectID, name string) (*models.Day, error) {
	day, err := s.days.FindByName(ctx, user, name)
	if err != nil {
		return nil, s.dayError(name, err)
	}
	return day, nil
}

// Delete removes one of the user's days.
func (s *Service) Delete(ctx context.Context, user primitive.ObjectID, name string) error {
	if err := s.days.DeleteByName(ctx, user, name); err != nil {
		return s.dayError(name, err)
	}
	s.logger.Info("day deleted", zap.String("user", user.Hex()), zap.String("day", name))
	return nil
}

// AddMeal puts a new, empty meal at the head of today's meal list.
func (s *Service) AddMeal(ctx context.Context, user primitive.ObjectID, mealType string) (*models.Day, error) {
	mealType = strings.TrimSpace(mealType)
	if mealType == "" {
		return nil, ErrInvalidMealType
	}

	day, err := s.today(ctx, user)
	if err != nil {
		return nil, err
	}

	if day.FindMeal(mealType) != nil {
		return nil, fmt.Errorf("%w: %s", ErrMealExists, mealType)
	}

	meal := models.Meal{
		ID:       primitive.NewObjectID(),
		Type:     mealType,
		Consumed: []models.Consumed{},
		Date:     s.now().UTC(),
	}
	day.Meals = append([]models.Meal{meal}, day.Meals...)

	if err := s.save(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// RemoveMeal drops a meal and all of its consumed entries from today's day.
func (s *Service) RemoveMeal(ctx context.Context, user primitive.ObjectID, mealType string) (*models.Day, error) {
	day, err := s.today(ctx, user)
	if err != nil {
		return nil, err
	}

	if !day.RemoveMeal(mealType) {
		return nil, fmt.Errorf("%w: %s", ErrMealNotFound, mealType)
	}

	if err := s.save(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// AddConsumed records quantity units of a food in one of today's meals and refreshes its totals.
func (s *Service) AddConsumed(ctx context.Context, user primitive.ObjectID, mealType string, foodID primitive.ObjectID, quantity float64) (*models.Day, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	day, meal, err := s.todayMeal(ctx, user, mealType)
	if err != nil {
		return nil, err
	}

	food, err := s.foods.FindByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrFoodNotFound, foodID.Hex())
		}
		return nil, fmt.Errorf("load food %s: %w", foodID.Hex(), err)
	}

	entry := models.NewConsumed(*food, quantity)
	entry.ID = primitive.NewObjectID()
	entry.Date = s.now().UTC()
	meal.PrependConsumed(entry)

	s.logger.Debug("consumed added",
		zap.String("day", day.Name),
		zap.String("meal", mealType),
		zap.String("food", food.Name),
		zap.Float64("quantity", quantity),
		zap.Float64("calorie_total", meal.CalorieTotal))

	if err := s.save(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// RemoveConsumed deletes a consumed entry from one of today's meals and refreshes its totals.
func (s *Service) RemoveConsumed(ctx context.Context, user primitive.ObjectID, mealType string, consumedID primitive.ObjectID) (*models.Day, error) {
	day, meal, err := s.todayMeal(ctx, user, mealType)
	if err != nil {
		return nil, err
	}

	if !meal.RemoveConsumed(consumedID) {
		return nil, fmt.Errorf("%w: %s", ErrConsumedNotFound, consumedID.Hex())
	}

	if err := s.save(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *Service) today(ctx context.Context, user primitive.ObjectID) (*models.Day, error) {
	name := s.Today()
	day, err := s.days.FindByName(ctx, user, name)
	if err != nil {
		return nil, s.dayError(name, err)
	}
	return day, nil
}

func (s *Service) todayMeal(ctx context.Context, user primitive.ObjectID, mealType string) (*models.Day, *models.Meal, error) {
	day, err := s.today(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	meal := day.FindMeal(mealType)
	if meal == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMealNotFound, mealType)
	}
	return day, meal, nil
}

func (s *Service) save(ctx context.Context, day *models.Day) error {
	day.UpdatedAt = s.now().UTC()
	if err := s.days.Save(ctx, day); err != nil {
		return s.dayError(day.Name, err)
	}
	return nil
}

func (s *Service) dayError(name string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrDayNotFound, name)
	}
	return fmt.Errorf("day %s: %w", name, err)
}
