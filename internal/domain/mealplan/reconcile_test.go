package mealplan

import (
	"testing"

	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/patient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// ReconcileTestSuite provides a test suite for candidate reconciliation
type ReconcileTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
	engine  *Engine
	profile *patient.Profile
	foods   catalog.RegionFoods
}

// SetupSuite initializes the test suite
func (suite *ReconcileTestSuite) SetupSuite() {
	suite.catalog = catalog.New(zap.NewNop())
	suite.engine = NewEngine(suite.catalog)

	profile, err := patient.NewProfile(patient.Vitals{
		Age:            45,
		WeightKg:       78.0,
		HeightM:        1.68,
		BloodSugar:     135,
		BloodPressure:  patient.BloodPressure{Systolic: 140, Diastolic: 85},
		DiabetesStatus: patient.DiabetesPrediabetes,
		Location:       "nairobi",
	})
	require.NoError(suite.T(), err)
	suite.profile = profile
	suite.foods = suite.catalog.Foods(catalog.RegionCentral)
}

// TestReconcile tests merging external candidates with the deterministic plan
func (suite *ReconcileTestSuite) TestReconcile() {
	suite.Run("NilCandidate_ShouldReturnDeterministicPlanVerbatim", func() {
		// Act
		reconciled := suite.engine.Reconcile(nil, suite.profile, suite.foods)
		deterministic := suite.engine.Build(suite.profile, suite.foods)

		// Assert
		assert.Equal(suite.T(), deterministic, reconciled)
	})

	suite.Run("EmptyCandidate_ShouldKeepDeterministicContent", func() {
		// Act
		reconciled := suite.engine.Reconcile(&Candidate{}, suite.profile, suite.foods)
		deterministic := suite.engine.Build(suite.profile, suite.foods)

		// Assert
		assert.Equal(suite.T(), deterministic.MealPlan, reconciled.MealPlan)
		assert.Equal(suite.T(), deterministic.PreferredFoods, reconciled.PreferredFoods)
		assert.Equal(suite.T(), deterministic.PortionGuidelines, reconciled.PortionGuidelines)
		assert.Equal(suite.T(), deterministic.MealTiming, reconciled.MealTiming)
	})

	suite.Run("NullSections_ShouldFallBackToDeterministic", func() {
		// Arrange
		candidate := ParseCandidate([]byte(`{"preferred_foods": null, "meal_timing": null}`))
		require.NotNil(suite.T(), candidate)

		// Act
		reconciled := suite.engine.Reconcile(candidate, suite.profile, suite.foods)
		deterministic := suite.engine.Build(suite.profile, suite.foods)

		// Assert
		assert.Equal(suite.T(), deterministic.PreferredFoods, reconciled.PreferredFoods)
		assert.Equal(suite.T(), deterministic.MealTiming, reconciled.MealTiming)
	})

	suite.Run("CandidateSlot_ShouldReplaceOnlyThatSlot", func() {
		// Arrange
		candidate := &Candidate{
			MealPlan: &CandidateMealPlan{
				Breakfast: SlotFoods{"grains": {"millet"}, "fruits": {"mangoes"}},
			},
		}

		// Act
		reconciled := suite.engine.Reconcile(candidate, suite.profile, suite.foods)
		deterministic := suite.engine.Build(suite.profile, suite.foods)

		// Assert
		assert.Equal(suite.T(), SlotFoods{"grains": {"millet"}, "fruits": {"mangoes"}}, reconciled.MealPlan.Breakfast)
		assert.Equal(suite.T(), deterministic.MealPlan.Lunch, reconciled.MealPlan.Lunch)
		assert.Equal(suite.T(), deterministic.MealPlan.Dinner, reconciled.MealPlan.Dinner)
		assert.Equal(suite.T(), deterministic.MealPlan.Snacks, reconciled.MealPlan.Snacks)
	})

	suite.Run("CandidateSections_ShouldReplaceWholeSections", func() {
		// Arrange
		candidate := &Candidate{
			PreferredFoods: &PreferredFoods{
				HighFiber:    []string{"kale"},
				LeanProteins: []string{"fish"},
			},
			PortionGuidelines: map[string]string{"grains": "1 cup cooked"},
			MealTiming:        &MealTiming{Frequency: "4 small meals"},
		}

		// Act
		reconciled := suite.engine.Reconcile(candidate, suite.profile, suite.foods)

		// Assert
		assert.Equal(suite.T(), []string{"kale"}, reconciled.PreferredFoods.HighFiber)
		assert.Equal(suite.T(), []string{"fish"}, reconciled.PreferredFoods.LeanProteins)
		assert.Equal(suite.T(), map[string]string{"grains": "1 cup cooked"}, reconciled.PortionGuidelines)
		assert.Equal(suite.T(), "4 small meals", reconciled.MealTiming.Frequency)
	})

	suite.Run("UnavailableFoods_ShouldBeStrippedFromMealPlan", func() {
		// Arrange
		candidate := &Candidate{
			MealPlan: &CandidateMealPlan{
				Breakfast: SlotFoods{"grains": {"quinoa", "wheat"}},
				Snacks:    SlotFoods{"fruits": {"dragonfruit"}},
			},
		}

		// Act
		reconciled := suite.engine.Reconcile(candidate, suite.profile, suite.foods)

		// Assert
		assert.Equal(suite.T(), []string{"wheat"}, reconciled.MealPlan.Breakfast["grains"])
		assert.Equal(suite.T(), []string{}, reconciled.MealPlan.Snacks["fruits"])
		assert.Contains(suite.T(), reconciled.MealPlan.Snacks, "fruits")
	})

	suite.Run("AvailabilityFilter_ShouldNotTouchOtherSections", func() {
		// Arrange
		candidate := &Candidate{
			FoodsToLimit: &FoodsToLimit{HighGIFoods: []string{"white_bread"}},
		}

		// Act
		reconciled := suite.engine.Reconcile(candidate, suite.profile, suite.foods)

		// Assert
		// limit lists are advisory text, not plated foods
		assert.Equal(suite.T(), []string{"white_bread"}, reconciled.FoodsToLimit.HighGIFoods)
	})
}

// TestReconcileTestSuite runs the test suite
func TestReconcileTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcileTestSuite))
}
