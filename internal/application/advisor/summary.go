package advisor

import (
	"fmt"
	"strings"

	"github.com/afyaplate/v1/internal/domain/mealplan"
	"github.com/afyaplate/v1/internal/domain/patient"
	"github.com/afyaplate/v1/internal/ports/inbound"
)

// buildSummary condenses the profile and recommendation into the short
// narrative block placed at the top of the report.
func buildSummary(profile *patient.Profile, rec mealplan.Recommendation) inbound.SummaryDTO {
	return inbound.SummaryDTO{
		HealthOverview: fmt.Sprintf("Patient is %s with %s BMI (%.2f) and %s diabetes status",
			profile.HealthCategory(), profile.BMIBand(), profile.BMI(), profile.DiabetesStatus()),
		KeyDietaryFocus:       keyDietaryFocus(profile.Restrictions()),
		MealFrequency:         rec.MealTiming.Frequency,
		PrimaryFoodsToInclude: strings.Join(firstN(rec.PreferredFoods.LeanProteins, 3), ", "),
		FoodsToLimit:          strings.Join(firstN(allLimitedFoods(rec.FoodsToLimit), 3), ", "),
	}
}

func keyDietaryFocus(r patient.DietaryRestrictions) string {
	var focus []string
	if r.LimitSugar {
		focus = append(focus, "blood sugar control")
	}
	if r.PortionControl {
		focus = append(focus, "portion management")
	}
	if r.LimitSodium {
		focus = append(focus, "sodium reduction")
	}
	if r.IncreaseFiber {
		focus = append(focus, "fiber intake")
	}
	if len(focus) == 0 {
		return "general balanced nutrition"
	}
	return strings.Join(focus, ", ")
}

func allLimitedFoods(limit mealplan.FoodsToLimit) []string {
	out := make([]string, 0, len(limit.HighGIFoods)+len(limit.HighSodiumFoods)+len(limit.HighFatFoods))
	out = append(out, limit.HighGIFoods...)
	out = append(out, limit.HighSodiumFoods...)
	out = append(out, limit.HighFatFoods...)
	return out
}

func firstN(foods []string, n int) []string {
	if len(foods) <= n {
		return foods
	}
	return foods[:n]
}
