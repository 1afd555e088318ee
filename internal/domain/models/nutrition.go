package models

// Contribution returns the calories and carbohydrates supplied by quantity units of food.
// Food values are per 100 units, so the result scales linearly with quantity.
func Contribution(quantity float64, food Food) (calorie, carbohydrate float64) {
	ratio := quantity / 100
	return ratio * food.Calorie, ratio * food.Carbohydrate
}

// NewConsumed snapshots the contribution of quantity units of food.
func NewConsumed(food Food, quantity float64) Consumed {
	calorie, carbohydrate := Contribution(quantity, food)
	return Consumed{
		Food:         food.ID,
		FoodName:     food.Name,
		Quantity:     quantity,
		Calorie:      calorie,
		Carbohydrate: carbohydrate,
	}
}
