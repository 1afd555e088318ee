package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/nutrilog/internal/config"
	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

// ReportsRange is the sheet range daily reports are appended to.
const ReportsRange = "Reports!A:F"

// Exporter appends daily nutrition reports to a spreadsheet.
type Exporter interface {
	AppendReports(ctx context.Context, reports []models.DailyReport) error
}

// GoogleSheetRepository implements Exporter using the official Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Google Sheets backed exporter.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// AppendReports writes one row per report: day, user, calories, carbohydrates, meals, items.
func (r *GoogleSheetRepository) AppendReports(ctx context.Context, reports []models.DailyReport) error {
	if len(reports) == 0 {
		return nil
	}

	payload := &sheetsapi.ValueRange{Values: ReportRows(reports)}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, ReportsRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append %d reports into range %s: %w", len(reports), ReportsRange, err)
	}

	r.logger.Debug("reports appended to sheet", zap.Int("rows", len(reports)))
	return nil
}

// ReportRows converts reports into spreadsheet rows.
func ReportRows(reports []models.DailyReport) [][]interface{} {
	rows := make([][]interface{}, 0, len(reports))
	for _, report := range reports {
		rows = append(rows, []interface{}{
			report.Day,
			report.User.Hex(),
			report.CalorieTotal,
			report.CarbohydrateTotal,
			report.Meals,
			report.Consumed,
		})
	}
	return rows
}
