package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/nutrilog/internal/domain/models"
)

func TestReportRows(t *testing.T) {
	user := primitive.NewObjectID()
	rows := ReportRows([]models.DailyReport{
		{User: user, Day: "2026-10-15", CalorieTotal: 1850.5, CarbohydrateTotal: 210, Meals: 3, Consumed: 7},
	})

	assert.Equal(t, [][]interface{}{
		{"2026-10-15", user.Hex(), 1850.5, 210.0, 3, 7},
	}, rows)
}

func TestReportRowsEmpty(t *testing.T) {
	assert.Empty(t, ReportRows(nil))
}
