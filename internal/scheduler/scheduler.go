package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/nutrilog/internal/config"
	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

// Snapshotter stores the reports of every user's day with the given name.
type Snapshotter interface {
	SnapshotDay(ctx context.Context, name string) (int, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron        *cron.Cron
	schedule    string
	location    *time.Location
	snapshotter Snapshotter
	logger      *zap.Logger
	now         func() time.Time
}

// NewScheduler creates a new scheduler instance running in cfg.Timezone.
func NewScheduler(cfg config.ReportingConfig, snapshotter Snapshotter, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Scheduler{
		cron:        cron.New(cron.WithLocation(location)),
		schedule:    cfg.CronSchedule,
		location:    location,
		snapshotter: snapshotter,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Start registers the daily snapshot job and starts the cron loop.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	if _, err := s.cron.AddFunc(s.schedule, s.snapshotPreviousDay); err != nil {
		return fmt.Errorf("schedule daily snapshot %q: %w", s.schedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

// PreviousDay names the calendar day before now in the scheduler's timezone.
func (s *Scheduler) PreviousDay() string {
	return s.now().In(s.location).AddDate(0, 0, -1).Format(models.DayNameLayout)
}

func (s *Scheduler) snapshotPreviousDay() {
	name := s.PreviousDay()
	s.logger.Info("generating daily reports", zap.String("day", name))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	count, err := s.snapshotter.SnapshotDay(ctx, name)
	if err != nil {
		s.logger.Error("failed to generate daily reports", zap.String("day", name), zap.Int("stored", count), zap.Error(err))
		return
	}
	s.logger.Info("daily reports generated", zap.String("day", name), zap.Int("stored", count))
}
