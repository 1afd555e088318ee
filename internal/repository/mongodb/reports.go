package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

// ReportRepository defines the interface for report storage.
type ReportRepository interface {
	SaveDailyReport(ctx context.Context, report models.DailyReport) error
}

// ReportStore implements ReportRepository on the daily_reports collection.
type ReportStore struct {
	coll *mongo.Collection
}

var _ ReportRepository = (*ReportStore)(nil)

// SaveDailyReport saves a daily report, replacing an earlier snapshot of the same user and day.
func (s *ReportStore) SaveDailyReport(ctx context.Context, report models.DailyReport) error {
	filter := bson.M{"user": report.User, "day": report.Day}
	_, err := s.coll.ReplaceOne(ctx, filter, report, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save daily report: %w", err)
	}
	return nil
}
