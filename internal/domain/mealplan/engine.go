package mealplan

import (
	"fmt"

	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/patient"
)

// Slot and category caps for the daily plan.
const (
	breakfastGrainCap   = 2
	breakfastProteinCap = 1
	breakfastFruitCap   = 2
	lunchVegetableCap   = 3
	dinnerVegetableCap  = 2
	snackFruitCap       = 2
	snackNutCap         = 1
)

// breakfastProteins are the only protein foods suitable for the breakfast slot.
var breakfastProteins = []string{"eggs", "milk"}

// nutLegumes are the legume foods that qualify as nut snacks.
var nutLegumes = []string{"groundnuts", "bambara_nuts"}

var (
	highFiberFoods = []string{"kale", "spinach", "beans", "sweet_potatoes", "avocados"}
	leanProteins   = []string{"fish", "chicken", "eggs"}
	complexCarbs   = []string{"millet", "sorghum", "sweet_potatoes"}
	highGIFoods    = []string{"rice", "watermelon", "dates"}
	highFatFoods   = []string{"coconut_milk", "groundnuts"}
)

// basePortions are the default portion guidance strings per food category
var basePortions = map[string]string{
	"grains":     "1/2 cup cooked",
	"vegetables": "1 cup raw or 1/2 cup cooked",
	"fruits":     "1 medium fruit or 1/2 cup",
	"proteins":   "palm-sized portion (3-4 oz)",
	"legumes":    "1/2 cup cooked",
}

// Engine builds deterministic recommendations from a patient profile and
// the foods available in the patient's region. Build is a pure function
// of its inputs and never fails: a sparse region simply yields a sparse plan.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Build assembles a full recommendation for the given profile and region foods.
func (e *Engine) Build(profile *patient.Profile, foods catalog.RegionFoods) Recommendation {
	restrictions := profile.Restrictions()
	return Recommendation{
		MealPlan:          e.buildMealPlan(foods, restrictions),
		PreferredFoods:    e.buildPreferredFoods(foods, restrictions),
		FoodsToLimit:      e.buildFoodsToLimit(foods, restrictions),
		PortionGuidelines: e.buildPortionGuidelines(profile),
		MealTiming:        buildMealTiming(profile.DiabetesStatus()),
	}
}

func (e *Engine) buildMealPlan(foods catalog.RegionFoods, r patient.DietaryRestrictions) MealPlan {
	grains := foods[catalog.CategoryGrains]
	vegetables := foods[catalog.CategoryVegetables]
	fruits := foods[catalog.CategoryFruits]
	legumes := foods[catalog.CategoryLegumes]
	proteins := foods[catalog.CategoryProteins]

	lowGIFruits := e.filterByGI(fruits, r.LimitSugar)

	return MealPlan{
		Breakfast: SlotFoods{
			"grains":     capped(e.filterByGI(grains, r.LimitSugar), breakfastGrainCap),
			"proteins":   capped(keep(proteins, breakfastProteins), breakfastProteinCap),
			"vegetables": []string{},
			"fruits":     capped(lowGIFruits, breakfastFruitCap),
		},
		Lunch: SlotFoods{
			"grains":     capped(grains, 1),
			"proteins":   capped(proteins, 1),
			"vegetables": capped(vegetables, lunchVegetableCap),
			"legumes":    capped(legumes, 1),
		},
		Dinner: SlotFoods{
			"grains":     capped(grains, 1),
			"proteins":   capped(proteins, 1),
			"vegetables": capped(vegetables, dinnerVegetableCap),
		},
		Snacks: SlotFoods{
			"fruits": capped(lowGIFruits, snackFruitCap),
			"nuts":   capped(keep(legumes, nutLegumes), snackNutCap),
		},
	}
}

// filterByGI keeps only low glycemic index foods when sugar must be limited.
// If nothing qualifies it falls back to the first two foods so the plan
// never ends up with an empty category the region could have filled.
func (e *Engine) filterByGI(foods []string, limitSugar bool) []string {
	if !limitSugar {
		return foods
	}
	lowGI := make([]string, 0, len(foods))
	for _, food := range foods {
		if e.catalog.Nutrition(food).IsLowGI() {
			lowGI = append(lowGI, food)
		}
	}
	if len(lowGI) == 0 {
		return capped(foods, 2)
	}
	return lowGI
}

func (e *Engine) buildPreferredFoods(foods catalog.RegionFoods, r patient.DietaryRestrictions) PreferredFoods {
	preferred := PreferredFoods{
		HighFiber:    []string{},
		LowSodium:    []string{},
		LeanProteins: pick(foods[catalog.CategoryProteins], leanProteins),
		ComplexCarbs: pickAvailable(foods, complexCarbs),
	}
	if r.IncreaseFiber {
		preferred.HighFiber = pickAvailable(foods, highFiberFoods)
	}
	return preferred
}

func (e *Engine) buildFoodsToLimit(foods catalog.RegionFoods, r patient.DietaryRestrictions) FoodsToLimit {
	limit := FoodsToLimit{
		HighGIFoods:     []string{},
		HighSodiumFoods: []string{},
		HighFatFoods:    []string{},
	}
	if r.LimitSugar {
		limit.HighGIFoods = pickAvailable(foods, highGIFoods)
	}
	if r.LimitSaturatedFat {
		limit.HighFatFoods = pickAvailable(foods, highFatFoods)
	}
	return limit
}

// buildPortionGuidelines attaches a qualifier to every base portion
// for patients needing tighter control. High risk takes precedence over
// the BMI based qualifier so a portion is never prefixed twice.
func (e *Engine) buildPortionGuidelines(profile *patient.Profile) map[string]string {
	guidelines := make(map[string]string, len(basePortions))
	switch {
	case profile.HealthCategory() == patient.HighRisk:
		for category, portion := range basePortions {
			guidelines[category] = fmt.Sprintf("Small %s", portion)
		}
	case profile.BMI() >= 30:
		for category, portion := range basePortions {
			guidelines[category] = fmt.Sprintf("Moderate %s", portion)
		}
	default:
		for category, portion := range basePortions {
			guidelines[category] = portion
		}
	}
	return guidelines
}

func buildMealTiming(status patient.DiabetesStatus) MealTiming {
	if status.IsDiabetic() {
		return MealTiming{
			Frequency: "Eat 3 main meals and 2-3 small snacks",
			Timing:    "Eat every 3-4 hours to maintain stable blood sugar",
			Breakfast: "Within 1 hour of waking up",
			Dinner:    "At least 2-3 hours before bedtime",
		}
	}
	return MealTiming{
		Frequency: "3 main meals with optional healthy snacks",
		Timing:    "Regular meal times help maintain energy levels",
		Breakfast: "Start your day with a balanced meal",
		Dinner:    "Light dinner 2-3 hours before bedtime",
	}
}

// capped returns at most n foods, preserving order.
func capped(foods []string, n int) []string {
	if len(foods) <= n {
		out := make([]string, len(foods))
		copy(out, foods)
		return out
	}
	out := make([]string, n)
	copy(out, foods[:n])
	return out
}

// keep retains the foods from available that appear in wanted,
// preserving availability order.
func keep(available []string, wanted []string) []string {
	set := make(map[string]struct{}, len(wanted))
	for _, food := range wanted {
		set[food] = struct{}{}
	}
	out := make([]string, 0, len(available))
	for _, food := range available {
		if _, ok := set[food]; ok {
			out = append(out, food)
		}
	}
	return out
}

// pick keeps the foods from wanted that appear in available,
// in wanted order.
func pick(available []string, wanted []string) []string {
	set := make(map[string]struct{}, len(available))
	for _, food := range available {
		set[food] = struct{}{}
	}
	out := make([]string, 0, len(wanted))
	for _, food := range wanted {
		if _, ok := set[food]; ok {
			out = append(out, food)
		}
	}
	return out
}

// pickAvailable keeps the foods from wanted that appear in any category
// of the region, in wanted order.
func pickAvailable(foods catalog.RegionFoods, wanted []string) []string {
	set := make(map[string]struct{})
	for _, list := range foods {
		for _, food := range list {
			set[food] = struct{}{}
		}
	}
	out := make([]string, 0, len(wanted))
	for _, food := range wanted {
		if _, ok := set[food]; ok {
			out = append(out, food)
		}
	}
	return out
}
