package reporting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
	repo "github.com/mamadbah2/nutrilog/internal/repository/mongodb"
	"github.com/mamadbah2/nutrilog/internal/repository/sheets"
)

// ErrDayNotFound indicates the user has no day with the requested name.
var ErrDayNotFound = errors.New("day not found")

// Service turns day logs into nutrition summaries and stored daily reports.
type Service struct {
	days     repo.DayRepository
	reports  repo.ReportRepository
	exporter sheets.Exporter
	logger   *zap.Logger
	now      func() time.Time
}

// NewService wires a new reporting service instance. exporter may be nil.
func NewService(days repo.DayRepository, reports repo.ReportRepository, exporter sheets.Exporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		days:     days,
		reports:  reports,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Summarize aggregates a day into overall and per-meal totals.
func Summarize(day models.Day) models.DaySummary {
	summary := models.DaySummary{
		Day:   day.Name,
		Meals: make([]models.MealSummary, 0, len(day.Meals)),
	}

	for _, meal := range day.Meals {
		summary.Meals = append(summary.Meals, models.MealSummary{
			Type:              meal.Type,
			Items:             len(meal.Consumed),
			CalorieTotal:      meal.CalorieTotal,
			CarbohydrateTotal: meal.CarbohydrateTotal,
		})
		summary.CalorieTotal += meal.CalorieTotal
		summary.CarbohydrateTotal += meal.CarbohydrateTotal
	}

	return summary
}

// BuildReport converts a day into its stored report form.
func BuildReport(day models.Day, createdAt time.Time) models.DailyReport {
	summary := Summarize(day)
	report := models.DailyReport{
		User:              day.User,
		Day:               day.Name,
		CalorieTotal:      summary.CalorieTotal,
		CarbohydrateTotal: summary.CarbohydrateTotal,
		Meals:             len(day.Meals),
		CreatedAt:         createdAt,
	}
	for _, meal := range summary.Meals {
		report.Consumed += meal.Items
	}
	return report
}

// DailySummary loads one of the user's days and summarizes it.
func (s *Service) DailySummary(ctx context.Context, user primitive.ObjectID, name string) (models.DaySummary, error) {
	day, err := s.days.FindByName(ctx, user, name)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return models.DaySummary{}, fmt.Errorf("%w: %s", ErrDayNotFound, name)
		}
		return models.DaySummary{}, fmt.Errorf("load day %s: %w", name, err)
	}
	return Summarize(*day), nil
}

// SnapshotDay stores a report for every user's day named name and exports them when
// a spreadsheet is configured. It returns the number of reports stored.
func (s *Service) SnapshotDay(ctx context.Context, name string) (int, error) {
	days, err := s.days.ListByName(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("load days %s: %w", name, err)
	}

	createdAt := s.now().UTC()
	stored := make([]models.DailyReport, 0, len(days))
	var firstErr error

	for _, day := range days {
		report := BuildReport(day, createdAt)
		if err := s.reports.SaveDailyReport(ctx, report); err != nil {
			s.logger.Error("failed to store daily report",
				zap.String("user", day.User.Hex()),
				zap.String("day", day.Name),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		stored = append(stored, report)
	}

	if s.exporter != nil && len(stored) > 0 {
		if err := s.exporter.AppendReports(ctx, stored); err != nil {
			s.logger.Warn("failed to export daily reports", zap.String("day", name), zap.Error(err))
			if firstErr == nil {
				firstErr = fmt.Errorf("export reports: %w", err)
			}
		}
	}

	s.logger.Info("daily reports stored", zap.String("day", name), zap.Int("count", len(stored)))
	return len(stored), firstErr
}
