// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/afyaplate/v1/internal/domain/feedback"
	"github.com/afyaplate/v1/internal/domain/mealplan"
)

// AdvisorService defines the use cases for dietary recommendations
// This is the primary port that HTTP handlers and other driving adapters will use
type AdvisorService interface {
	// Recommend turns raw vitals and a location into a full dietary report
	Recommend(ctx context.Context, cmd RecommendCommand) (*RecommendationReport, error)

	// Feedback on delivered recommendations
	SubmitFeedback(ctx context.Context, cmd SubmitFeedbackCommand) (*FeedbackDTO, error)
	FeedbackMetrics(ctx context.Context) (*feedback.Metrics, error)
}

// RecommendCommand carries the raw patient vitals for one request
type RecommendCommand struct {
	Age            int     `json:"age" validate:"gte=0"`
	WeightKg       float64 `json:"weight_kg" validate:"gt=0"`
	HeightM        float64 `json:"height_m" validate:"gt=0"`
	BloodSugarMgDl float64 `json:"blood_sugar_mg_dl" validate:"gte=0"`
	Systolic       int     `json:"systolic" validate:"gte=0"`
	Diastolic      int     `json:"diastolic" validate:"gte=0"`
	DiabetesStatus string  `json:"diabetes_status" validate:"omitempty,oneof=none type1 type2 prediabetes"`
	Location       string  `json:"location"`
}

// SubmitFeedbackCommand carries a rating for a delivered recommendation
type SubmitFeedbackCommand struct {
	RecommendationID uuid.UUID `json:"recommendation_id" validate:"required"`
	Rating           int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comments         string    `json:"comments" validate:"max=2000"`
}

// ProfileDTO exposes the derived patient profile alongside the recommendation
type ProfileDTO struct {
	BMI            float64  `json:"bmi"`
	BMIBand        string   `json:"bmi_band"`
	HealthCategory string   `json:"health_category"`
	RiskFactors    []string `json:"risk_factors"`
	CalorieNeeds   int      `json:"calorie_needs"`
	LimitSugar     bool     `json:"limit_sugar"`
	LimitSodium    bool     `json:"limit_sodium"`
	PortionControl bool     `json:"portion_control"`
	IncreaseFiber  bool     `json:"increase_fiber"`
	LimitSaturated bool     `json:"limit_saturated_fat"`
	Region         string   `json:"region"`
	DiabetesStatus string   `json:"diabetes_status"`
}

// SummaryDTO condenses the key findings for quick reading
type SummaryDTO struct {
	HealthOverview        string `json:"health_overview"`
	KeyDietaryFocus       string `json:"key_dietary_focus"`
	MealFrequency         string `json:"meal_frequency"`
	PrimaryFoodsToInclude string `json:"primary_foods_to_include"`
	FoodsToLimit          string `json:"foods_to_limit"`
}

// RecommendationReport is the full response for one recommendation request
type RecommendationReport struct {
	ID              uuid.UUID               `json:"id"`
	Profile         ProfileDTO              `json:"profile"`
	Recommendations mealplan.Recommendation `json:"recommendations"`
	Summary         SummaryDTO              `json:"summary"`
	Source          string                  `json:"source"`
	GeneratedAt     string                  `json:"generated_at"`
}

// FeedbackDTO is the response for a stored feedback record
type FeedbackDTO struct {
	ID               uuid.UUID `json:"id"`
	RecommendationID uuid.UUID `json:"recommendation_id"`
	Rating           int       `json:"rating"`
	Comments         string    `json:"comments,omitempty"`
	CreatedAt        string    `json:"created_at"`
}
