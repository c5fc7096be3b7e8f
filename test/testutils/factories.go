// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/afyaplate/v1/internal/domain/patient"
	"github.com/afyaplate/v1/internal/ports/inbound"
)

// VitalsFactory provides methods to create test patient vitals
type VitalsFactory struct {
	faker *gofakeit.Faker
}

// NewVitalsFactory creates a new vitals factory with seeded faker
func NewVitalsFactory(seed int64) *VitalsFactory {
	return &VitalsFactory{
		faker: gofakeit.New(seed),
	}
}

// HealthyVitals returns vitals that land in the low risk category
func (f *VitalsFactory) HealthyVitals() patient.Vitals {
	return patient.Vitals{
		Age:        f.faker.Number(20, 40),
		WeightKg:   f.faker.Float64Range(55, 70),
		HeightM:    1.75,
		BloodSugar: f.faker.Float64Range(70, 95),
		BloodPressure: patient.BloodPressure{
			Systolic:  f.faker.Number(100, 118),
			Diastolic: f.faker.Number(60, 75),
		},
		DiabetesStatus: patient.DiabetesNone,
		Location:       f.faker.RandomString([]string{"nairobi", "eldoret", "kisumu"}),
	}
}

// HighRiskVitals returns vitals with enough risk factors for the high
// risk category
func (f *VitalsFactory) HighRiskVitals() patient.Vitals {
	return patient.Vitals{
		Age:        f.faker.Number(45, 70),
		WeightKg:   105,
		HeightM:    1.65,
		BloodSugar: f.faker.Float64Range(130, 200),
		BloodPressure: patient.BloodPressure{
			Systolic:  f.faker.Number(142, 180),
			Diastolic: f.faker.Number(92, 110),
		},
		DiabetesStatus: patient.DiabetesType2,
		Location:       "mombasa",
	}
}

// RecommendCommand returns a structurally valid recommendation request
func (f *VitalsFactory) RecommendCommand() inbound.RecommendCommand {
	v := f.HealthyVitals()
	return inbound.RecommendCommand{
		Age:            v.Age,
		WeightKg:       v.WeightKg,
		HeightM:        v.HeightM,
		BloodSugarMgDl: v.BloodSugar,
		Systolic:       v.BloodPressure.Systolic,
		Diastolic:      v.BloodPressure.Diastolic,
		DiabetesStatus: string(v.DiabetesStatus),
		Location:       v.Location,
	}
}

// SubmitFeedbackCommand returns a valid feedback submission
func (f *VitalsFactory) SubmitFeedbackCommand() inbound.SubmitFeedbackCommand {
	return inbound.SubmitFeedbackCommand{
		RecommendationID: uuid.New(),
		Rating:           f.faker.Number(1, 5),
		Comments:         f.faker.Sentence(8),
	}
}
