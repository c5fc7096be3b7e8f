package mealplan

import (
	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/patient"
)

// Reconcile merges an external candidate with the deterministic
// recommendation for the same profile and region. The candidate wins
// section by section, and within the meal plan slot by slot, but only
// where it produced something usable. Foods the region does not offer
// are stripped from the merged meal plan afterwards, so an external
// model can never place an unavailable food on a patient's plate.
func (e *Engine) Reconcile(candidate *Candidate, profile *patient.Profile, foods catalog.RegionFoods) Recommendation {
	rec := e.Build(profile, foods)
	if candidate == nil {
		return rec
	}

	if candidate.MealPlan != nil {
		if candidate.MealPlan.Breakfast != nil {
			rec.MealPlan.Breakfast = candidate.MealPlan.Breakfast
		}
		if candidate.MealPlan.Lunch != nil {
			rec.MealPlan.Lunch = candidate.MealPlan.Lunch
		}
		if candidate.MealPlan.Dinner != nil {
			rec.MealPlan.Dinner = candidate.MealPlan.Dinner
		}
		if candidate.MealPlan.Snacks != nil {
			rec.MealPlan.Snacks = candidate.MealPlan.Snacks
		}
	}
	if candidate.PreferredFoods != nil {
		rec.PreferredFoods = *candidate.PreferredFoods
	}
	if candidate.FoodsToLimit != nil {
		rec.FoodsToLimit = *candidate.FoodsToLimit
	}
	if candidate.PortionGuidelines != nil {
		rec.PortionGuidelines = candidate.PortionGuidelines
	}
	if candidate.MealTiming != nil {
		rec.MealTiming = *candidate.MealTiming
	}

	available := availableSet(foods)
	rec.MealPlan.Breakfast = filterSlot(rec.MealPlan.Breakfast, available)
	rec.MealPlan.Lunch = filterSlot(rec.MealPlan.Lunch, available)
	rec.MealPlan.Dinner = filterSlot(rec.MealPlan.Dinner, available)
	rec.MealPlan.Snacks = filterSlot(rec.MealPlan.Snacks, available)

	return rec
}

func availableSet(foods catalog.RegionFoods) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range foods {
		for _, food := range list {
			set[food] = struct{}{}
		}
	}
	return set
}

// filterSlot drops foods absent from the region, keeping slot keys even
// when every food in them is dropped.
func filterSlot(slot SlotFoods, available map[string]struct{}) SlotFoods {
	filtered := make(SlotFoods, len(slot))
	for category, list := range slot {
		kept := make([]string, 0, len(list))
		for _, food := range list {
			if _, ok := available[food]; ok {
				kept = append(kept, food)
			}
		}
		filtered[category] = kept
	}
	return filtered
}
