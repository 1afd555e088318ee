package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds body measurements for one user. Height is in centimetres, weight in kilograms.
type Profile struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User   primitive.ObjectID `bson:"user" json:"user"`
	Age    int                `bson:"age" json:"age"`
	Height float64            `bson:"height" json:"height"`
	Weight float64            `bson:"weight" json:"weight"`
	BMI    float64            `bson:"bmi" json:"bmi"`
	Date   time.Time          `bson:"date" json:"date"`
}

// CalculateBMI returns weight / height² rounded to one decimal, or 0 when height is unknown.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	meters := heightCm / 100.0
	bmi := weightKg / (meters * meters)
	return math.Round(bmi*10) / 10
}
