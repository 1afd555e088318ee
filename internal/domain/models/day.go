package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DayNameLayout is the ISO date layout used for default day names.
const DayNameLayout = "2006-01-02"

// Day is a user's food log for one calendar date.
type Day struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      primitive.ObjectID `bson:"user" json:"user"`
	Name      string             `bson:"name" json:"name"`
	Meals     []Meal             `bson:"meals" json:"meals"`
	Date      time.Time          `bson:"date" json:"date"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Meal groups consumed portions under a type label such as "breakfast".
type Meal struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	Type              string             `bson:"type" json:"type"`
	Consumed          []Consumed         `bson:"consumed" json:"consumed"`
	CalorieTotal      float64            `bson:"calorie_total" json:"calorieTotal"`
	CarbohydrateTotal float64            `bson:"carbohydrate_total" json:"carbohydrateTotal"`
	Date              time.Time          `bson:"date" json:"date"`
}

// Consumed is one recorded portion of a food. Calorie and Carbohydrate are
// snapshotted when the entry is created and never follow later food edits.
type Consumed struct {
	ID           primitive.ObjectID `bson:"_id" json:"id"`
	Food         primitive.ObjectID `bson:"food" json:"food"`
	FoodName     string             `bson:"food_name" json:"foodName"`
	Quantity     float64            `bson:"quantity" json:"quantity"`
	Calorie      float64            `bson:"calorie" json:"calorie"`
	Carbohydrate float64            `bson:"carbohydrate" json:"carbohydrate"`
	Date         time.Time          `bson:"date" json:"date"`
}

// FindMeal returns the first meal with the given type, or nil.
func (d *Day) FindMeal(mealType string) *Meal {
	for i := range d.Meals {
		if d.Meals[i].Type == mealType {
			return &d.Meals[i]
		}
	}
	return nil
}

// RemoveMeal drops the first meal with the given type and reports whether one was found.
func (d *Day) RemoveMeal(mealType string) bool {
	for i := range d.Meals {
		if d.Meals[i].Type == mealType {
			d.Meals = append(d.Meals[:i], d.Meals[i+1:]...)
			return true
		}
	}
	return false
}

// PrependConsumed adds an entry at the head of the list and refreshes the totals.
func (m *Meal) PrependConsumed(entry Consumed) {
	m.Consumed = append([]Consumed{entry}, m.Consumed...)
	m.Recalculate()
}

// RemoveConsumed deletes the entry with the given id and refreshes the totals.
func (m *Meal) RemoveConsumed(id primitive.ObjectID) bool {
	for i := range m.Consumed {
		if m.Consumed[i].ID == id {
			m.Consumed = append(m.Consumed[:i], m.Consumed[i+1:]...)
			m.Recalculate()
			return true
		}
	}
	return false
}

// Recalculate rebuilds the running totals from the consumed entries.
func (m *Meal) Recalculate() {
	var calories, carbohydrates float64
	for _, c := range m.Consumed {
		calories += c.Calorie
		carbohydrates += c.Carbohydrate
	}
	m.CalorieTotal = calories
	m.CarbohydrateTotal = carbohydrates
}
