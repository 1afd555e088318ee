package foods

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
	repo "github.com/mamadbah2/nutrilog/internal/repository/mongodb"
	"github.com/mamadbah2/nutrilog/pkg/clients/edamam"
)

var (
	// ErrFoodNotFound indicates no catalog entry has the requested name.
	ErrFoodNotFound = errors.New("food not found")
	// ErrInvalidFood indicates a missing name or negative nutritional values.
	ErrInvalidFood = errors.New("invalid food")
	// ErrLookupDisabled indicates no remote nutrition source is configured.
	ErrLookupDisabled = errors.New("nutrition lookup is not configured")
	// ErrNoCandidates indicates the remote source returned nothing for the query.
	ErrNoCandidates = errors.New("no matching foods")
)

// Service manages the food catalog.
type Service struct {
	repo   repo.FoodRepository
	lookup edamam.Client
	logger *zap.Logger
}

// NewService wires a catalog service. lookup may be nil, which disables Lookup and Import.
func NewService(repository repo.FoodRepository, lookup edamam.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, lookup: lookup, logger: logger}
}

// List returns the whole catalog.
func (s *Service) List(ctx context.Context) ([]models.Food, error) {
	foods, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

// Get returns the food with the given name.
func (s *Service) Get(ctx context.Context, name string) (*models.Food, error) {
	food, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, s.foodError(name, err)
	}
	return food, nil
}

// Upsert creates the named food or updates its per-100-unit values.
func (s *Service) Upsert(ctx context.Context, food models.Food) (*models.Food, error) {
	food.Name = strings.TrimSpace(food.Name)
	if food.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidFood)
	}
	if food.Calorie < 0 || food.Carbohydrate < 0 {
		return nil, fmt.Errorf("%w: values must not be negative", ErrInvalidFood)
	}

	stored, err := s.repo.UpsertByName(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("upsert food %s: %w", food.Name, err)
	}

	s.logger.Info("food saved", zap.String("name", stored.Name), zap.Float64("calorie", stored.Calorie))
	return stored, nil
}

// Delete removes the named food. Consumed entries keep their snapshotted values.
func (s *Service) Delete(ctx context.Context, name string) error {
	if err := s.repo.DeleteByName(ctx, name); err != nil {
		return s.foodError(name, err)
	}
	s.logger.Info("food deleted", zap.String("name", name))
	return nil
}

// Lookup queries the remote nutrition source without touching the catalog.
func (s *Service) Lookup(ctx context.Context, query string) ([]models.FoodCandidate, error) {
	if s.lookup == nil {
		return nil, ErrLookupDisabled
	}

	candidates, err := s.lookup.SearchFoods(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("lookup %q: %w", query, err)
	}
	return candidates, nil
}

// Import looks up query remotely and stores the best candidate in the catalog.
func (s *Service) Import(ctx context.Context, query string) (*models.Food, error) {
	candidates, err := s.Lookup(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoCandidates, query)
	}

	best := candidates[0]
	return s.Upsert(ctx, models.Food{
		Name:         best.Name,
		Calorie:      best.Calorie,
		Carbohydrate: best.Carbohydrate,
	})
}

func (s *Service) foodError(name string, err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrFoodNotFound, name)
	}
	return fmt.Errorf("food %s: %w", name, err)
}
