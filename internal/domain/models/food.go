package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a catalog entry; nutritional values are expressed per 100 units (grams or millilitres).
type Food struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Calorie      float64            `bson:"calorie" json:"calorie"`
	Carbohydrate float64            `bson:"carbohydrate" json:"carbohydrate"`
	Date         time.Time          `bson:"date" json:"date"`
}

// FoodCandidate is a remote nutrition lookup hit that can be imported into the catalog.
type FoodCandidate struct {
	ExternalID   string  `json:"externalId"`
	Name         string  `json:"name"`
	Category     string  `json:"category,omitempty"`
	Calorie      float64 `json:"calorie"`
	Carbohydrate float64 `json:"carbohydrate"`
}
