// Package patient contains the core domain logic for patient risk profiling.
// A Profile is a pure function of the supplied vitals and is immutable once built.
package patient

import (
	"math"
	"strings"
)

// Calorie needs are clamped to a sane daily range regardless of the
// formula output.
const (
	MinDailyCalories = 800
	MaxDailyCalories = 4000
)

// Profile is the derived patient profile consumed by the recommendation
// engine. All derived fields are recomputed from the vitals; externally
// supplied values are never trusted.
type Profile struct {
	vitals         Vitals
	bmi            float64
	riskFactors    []RiskFactor
	healthCategory HealthCategory
	restrictions   DietaryRestrictions
	calorieNeeds   int
}

// NewProfile builds a Profile from raw vitals. It fails only on
// structurally invalid input; every valid input yields a complete profile.
func NewProfile(v Vitals) (*Profile, error) {
	if err := validateVitals(v); err != nil {
		return nil, err
	}

	v.Location = strings.ToLower(strings.TrimSpace(v.Location))

	bmi := computeBMI(v.WeightKg, v.HeightM)
	factors := tallyRiskFactors(bmi, v.BloodSugar, v.BloodPressure, v.DiabetesStatus)
	category := categorize(factors)

	return &Profile{
		vitals:         v,
		bmi:            bmi,
		riskFactors:    factors,
		healthCategory: category,
		restrictions:   deriveRestrictions(v.DiabetesStatus, category),
		calorieNeeds:   calorieNeeds(v.Age, v.WeightKg, v.HeightM),
	}, nil
}

// Vitals returns the raw measurements the profile was built from
func (p *Profile) Vitals() Vitals {
	return p.vitals
}

// BMI returns weight/height² rounded to 2 decimal places
func (p *Profile) BMI() float64 {
	return p.bmi
}

// RiskFactors returns the active risk factors
func (p *Profile) RiskFactors() []RiskFactor {
	out := make([]RiskFactor, len(p.riskFactors))
	copy(out, p.riskFactors)
	return out
}

// HealthCategory returns the derived risk category
func (p *Profile) HealthCategory() HealthCategory {
	return p.healthCategory
}

// Restrictions returns the derived dietary restrictions
func (p *Profile) Restrictions() DietaryRestrictions {
	return p.restrictions
}

// CalorieNeeds returns the clamped daily calorie target
func (p *Profile) CalorieNeeds() int {
	return p.calorieNeeds
}

// Location returns the normalized (lower-cased, trimmed) location string
func (p *Profile) Location() string {
	return p.vitals.Location
}

// DiabetesStatus returns the reported diabetes status
func (p *Profile) DiabetesStatus() DiabetesStatus {
	return p.vitals.DiabetesStatus
}

// BMIBand classifies the BMI for report summaries
func (p *Profile) BMIBand() BMIBand {
	switch {
	case p.bmi >= 30:
		return BMIObese
	case p.bmi >= 25:
		return BMIOverweight
	case p.bmi < 18.5:
		return BMIUnderweight
	default:
		return BMINormal
	}
}

func validateVitals(v Vitals) error {
	if v.Age < 0 {
		return ErrInvalidAge
	}
	if v.WeightKg <= 0 {
		return ErrInvalidWeight
	}
	if v.HeightM <= 0 {
		return ErrInvalidHeight
	}
	if v.BloodSugar < 0 {
		return ErrInvalidBloodSugar
	}
	if !v.DiabetesStatus.Valid() {
		return ErrInvalidDiabetesStatus
	}
	return nil
}

func computeBMI(weightKg, heightM float64) float64 {
	return math.Round(weightKg/(heightM*heightM)*100) / 100
}

// tallyRiskFactors collects the independent boolean risk factors. Paired
// conditions (full vs elevated) are mutually exclusive, full checked first.
func tallyRiskFactors(bmi, bloodSugar float64, bp BloodPressure, status DiabetesStatus) []RiskFactor {
	var factors []RiskFactor

	if bmi >= 30 {
		factors = append(factors, RiskObesity)
	} else if bmi >= 25 {
		factors = append(factors, RiskOverweight)
	}

	if bloodSugar > 126 {
		factors = append(factors, RiskHighBloodSugar)
	} else if bloodSugar > 100 {
		factors = append(factors, RiskElevatedBloodSugar)
	}

	if bp.Systolic >= 140 || bp.Diastolic >= 90 {
		factors = append(factors, RiskHypertension)
	} else if bp.Systolic >= 130 || bp.Diastolic >= 80 {
		factors = append(factors, RiskElevatedBP)
	}

	if status.IsDiabetic() {
		factors = append(factors, RiskDiabetes)
	} else if status == DiabetesPrediabetes {
		factors = append(factors, RiskPrediabetes)
	}

	return factors
}

// categorize maps the factor count onto a category. Factors are unweighted;
// an exact count is used with no distinction between factor types.
func categorize(factors []RiskFactor) HealthCategory {
	switch {
	case len(factors) >= 3:
		return HighRisk
	case len(factors) >= 1:
		return ModerateRisk
	default:
		return LowRisk
	}
}

func deriveRestrictions(status DiabetesStatus, category HealthCategory) DietaryRestrictions {
	elevated := category == HighRisk || category == ModerateRisk
	return DietaryRestrictions{
		LimitSugar:        status.IsDiabetic() || status == DiabetesPrediabetes,
		LimitSodium:       elevated,
		PortionControl:    elevated,
		IncreaseFiber:     status == DiabetesType2 || status == DiabetesPrediabetes,
		LimitSaturatedFat: elevated,
	}
}

// calorieNeeds estimates daily calories with the Mifflin-St Jeor baseline
// (no sex parameter) at a fixed moderate activity multiplier, clamped to
// [MinDailyCalories, MaxDailyCalories].
func calorieNeeds(age int, weightKg, heightM float64) int {
	bmr := 10*weightKg + 6.25*(heightM*100) - 5*float64(age) + 5
	daily := int(bmr * 1.55)
	if daily < MinDailyCalories {
		return MinDailyCalories
	}
	if daily > MaxDailyCalories {
		return MaxDailyCalories
	}
	return daily
}
