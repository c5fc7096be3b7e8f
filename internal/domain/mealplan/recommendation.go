// Package mealplan contains the recommendation model, the deterministic
// recommendation engine and the reconciliation logic that merges an
// untrusted external candidate with the engine's output.
package mealplan

// SlotFoods maps a category name within a meal slot to the recommended
// food ids for that slot.
type SlotFoods map[string][]string

// MealPlan is a full day's plan across the four fixed meal slots
type MealPlan struct {
	Breakfast SlotFoods `json:"breakfast"`
	Lunch     SlotFoods `json:"lunch"`
	Dinner    SlotFoods `json:"dinner"`
	Snacks    SlotFoods `json:"snacks"`
}

// PreferredFoods groups foods that are particularly beneficial for the patient
type PreferredFoods struct {
	HighFiber    []string `json:"high_fiber"`
	LowSodium    []string `json:"low_sodium"`
	LeanProteins []string `json:"lean_proteins"`
	ComplexCarbs []string `json:"complex_carbs"`
}

// FoodsToLimit groups foods that should be limited for the patient
type FoodsToLimit struct {
	HighGIFoods     []string `json:"high_gi_foods"`
	HighSodiumFoods []string `json:"high_sodium_foods"`
	HighFatFoods    []string `json:"high_fat_foods"`
}

// MealTiming carries the fixed meal timing advice strings
type MealTiming struct {
	Frequency string `json:"frequency"`
	Timing    string `json:"timing"`
	Breakfast string `json:"breakfast"`
	Dinner    string `json:"dinner"`
}

// Recommendation is the final dietary recommendation returned per request.
// It is built fresh per request and never mutated after being returned.
type Recommendation struct {
	MealPlan          MealPlan          `json:"meal_plan"`
	PreferredFoods    PreferredFoods    `json:"preferred_foods"`
	FoodsToLimit      FoodsToLimit      `json:"foods_to_limit"`
	PortionGuidelines map[string]string `json:"portion_guidelines"`
	MealTiming        MealTiming        `json:"meal_timing"`
}
