package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyReport is the aggregated nutrition snapshot of one user's day stored in MongoDB.
type DailyReport struct {
	User              primitive.ObjectID `bson:"user" json:"user"`
	Day               string             `bson:"day" json:"day"`
	CalorieTotal      float64            `bson:"calorie_total" json:"calorieTotal"`
	CarbohydrateTotal float64            `bson:"carbohydrate_total" json:"carbohydrateTotal"`
	Meals             int                `bson:"meals" json:"meals"`
	Consumed          int                `bson:"consumed" json:"consumed"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}

// MealSummary is the per-meal line of a DaySummary.
type MealSummary struct {
	Type              string  `json:"type"`
	Items             int     `json:"items"`
	CalorieTotal      float64 `json:"calorieTotal"`
	CarbohydrateTotal float64 `json:"carbohydrateTotal"`
}

// DaySummary is the API view of a day's nutrition totals.
type DaySummary struct {
	Day               string        `json:"day"`
	CalorieTotal      float64       `json:"calorieTotal"`
	CarbohydrateTotal float64       `json:"carbohydrateTotal"`
	Meals             []MealSummary `json:"meals"`
}
