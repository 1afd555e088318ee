package profiles

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
	repo "github.com/mamadbah2/nutrilog/internal/repository/mongodb"
)

var (
	// ErrProfileNotFound indicates the user has not created a profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidProfile indicates non-positive measurements.
	ErrInvalidProfile = errors.New("invalid profile")
)

// Service manages user profiles.
type Service struct {
	repo   repo.ProfileRepository
	logger *zap.Logger
}

// NewService wires a profile service.
func NewService(repository repo.ProfileRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repository, logger: logger}
}

// Get returns the user's profile.
func (s *Service) Get(ctx context.Context, user primitive.ObjectID) (*models.Profile, error) {
	profile, err := s.repo.FindByUser(ctx, user)
	if err != nil {
		return nil, profileError(err)
	}
	return profile, nil
}

// Upsert creates or updates the user's profile and refreshes its BMI.
func (s *Service) Upsert(ctx context.Context, user primitive.ObjectID, age int, height, weight float64) (*models.Profile, error) {
	if age <= 0 || height <= 0 || weight <= 0 {
		return nil, fmt.Errorf("%w: age, height and weight must be positive", ErrInvalidProfile)
	}

	profile := models.Profile{
		User:   user,
		Age:    age,
		Height: height,
		Weight: weight,
		BMI:    models.CalculateBMI(height, weight),
	}

	stored, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	s.logger.Info("profile saved", zap.String("user", user.Hex()))
	return stored, nil
}

// Delete removes the user's profile.
func (s *Service) Delete(ctx context.Context, user primitive.ObjectID) error {
	if err := s.repo.DeleteByUser(ctx, user); err != nil {
		return profileError(err)
	}
	return nil
}

func profileError(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrProfileNotFound
	}
	return fmt.Errorf("profile: %w", err)
}
