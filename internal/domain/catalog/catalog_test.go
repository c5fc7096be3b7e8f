package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// CatalogTestSuite provides a test suite for the food catalog
type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

// SetupSuite initializes the test suite
func (suite *CatalogTestSuite) SetupSuite() {
	suite.catalog = New(zap.NewNop())
}

// TestRegionResolution tests location to region mapping
func (suite *CatalogTestSuite) TestRegionResolution() {
	suite.Run("KnownAlias_ShouldResolveRegion", func() {
		// Arrange
		cases := map[string]Region{
			"nairobi": RegionCentral,
			"mombasa": RegionCoastal,
			"kisumu":  RegionWestern,
			"eldoret": RegionRiftValley,
		}

		for location, expected := range cases {
			// Act
			region := suite.catalog.ResolveRegion(location)

			// Assert
			assert.Equal(suite.T(), expected, region, location)
		}
	})

	suite.Run("MixedCaseAndWhitespace_ShouldNormalize", func() {
		// Act
		region := suite.catalog.ResolveRegion("  Nairobi ")

		// Assert
		assert.Equal(suite.T(), RegionCentral, region)
	})

	suite.Run("LiteralRegionID_ShouldResolveDirectly", func() {
		// Act
		region := suite.catalog.ResolveRegion("coastal")

		// Assert
		assert.Equal(suite.T(), RegionCoastal, region)
	})

	suite.Run("UnknownLocation_ShouldFallBackToDefault", func() {
		// Act
		region := suite.catalog.ResolveRegion("atlantis")

		// Assert
		assert.Equal(suite.T(), DefaultRegion, region)
	})

	suite.Run("EmptyLocation_ShouldFallBackToDefault", func() {
		// Act
		region := suite.catalog.ResolveRegion("")

		// Assert
		assert.Equal(suite.T(), DefaultRegion, region)
	})
}

// TestFoodLookup tests regional food availability
func (suite *CatalogTestSuite) TestFoodLookup() {
	suite.Run("KnownRegion_ShouldListAllCategories", func() {
		// Act
		foods := suite.catalog.Foods(RegionCentral)

		// Assert
		require.Len(suite.T(), foods, len(Categories))
		for _, category := range Categories {
			assert.NotEmpty(suite.T(), foods[category], string(category))
		}
		assert.Equal(suite.T(), []string{"maize", "wheat", "barley", "millet", "rice"}, foods[CategoryGrains])
	})

	suite.Run("UnknownRegion_ShouldFallBackToDefault", func() {
		// Act
		foods := suite.catalog.Foods(Region("lunar"))

		// Assert
		assert.Equal(suite.T(), suite.catalog.Foods(DefaultRegion), foods)
	})

	suite.Run("ReturnedFoods_ShouldBeACopy", func() {
		// Arrange
		foods := suite.catalog.Foods(RegionCentral)

		// Act
		foods[CategoryGrains][0] = "quinoa"
		delete(foods, CategoryLegumes)

		// Assert
		fresh := suite.catalog.Foods(RegionCentral)
		assert.Equal(suite.T(), "maize", fresh[CategoryGrains][0])
		assert.NotEmpty(suite.T(), fresh[CategoryLegumes])
	})

	suite.Run("AvailableSet_ShouldFlattenAllCategories", func() {
		// Act
		set := suite.catalog.AvailableSet(RegionNorthern)

		// Assert
		assert.True(suite.T(), set["dates"])
		assert.True(suite.T(), set["camel_milk"])
		assert.True(suite.T(), set["sorghum"])
		assert.False(suite.T(), set["rice"])
	})

	suite.Run("Available_ShouldReportMembership", func() {
		// Assert
		assert.True(suite.T(), suite.catalog.Available(RegionCentral, "kale"))
		assert.False(suite.T(), suite.catalog.Available(RegionCentral, "camel_milk"))
	})
}

// TestNutritionLookup tests nutrition facts and the neutral sentinel
func (suite *CatalogTestSuite) TestNutritionLookup() {
	suite.Run("KnownFood_ShouldReturnFacts", func() {
		// Act
		facts := suite.catalog.Nutrition("rice")

		// Assert
		assert.Equal(suite.T(), float64(73), facts.GlycemicIndex)
		assert.Equal(suite.T(), float64(365), facts.CaloriesPer100g)
		assert.False(suite.T(), facts.IsLowGI())
	})

	suite.Run("UnknownFood_ShouldReturnNeutralSentinel", func() {
		// Act
		facts := suite.catalog.Nutrition("dragonfruit")

		// Assert
		assert.Equal(suite.T(), NeutralFacts, facts)
		assert.True(suite.T(), facts.IsLowGI())
		assert.Zero(suite.T(), facts.CaloriesPer100g)
	})

	suite.Run("ThresholdGI_ShouldNotCountAsLow", func() {
		// Act
		facts := suite.catalog.Nutrition("dates")

		// Assert
		assert.Equal(suite.T(), float64(LowGIThreshold), facts.GlycemicIndex)
		assert.False(suite.T(), facts.IsLowGI())
	})
}

// TestCatalogTestSuite runs the test suite
func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}
