package feedback

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FeedbackTestSuite provides a test suite for the Feedback entity
type FeedbackTestSuite struct {
	suite.Suite
}

// TestFeedbackCreation tests feedback creation scenarios
func (suite *FeedbackTestSuite) TestFeedbackCreation() {
	suite.Run("ValidFeedback_ShouldCreateSuccessfully", func() {
		// Arrange
		recommendationID := uuid.New()

		// Act
		fb, err := New(recommendationID, 4, "  Helpful and practical  ")

		// Assert
		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), fb)

		assert.NotEqual(suite.T(), uuid.Nil, fb.ID())
		assert.Equal(suite.T(), recommendationID, fb.RecommendationID())
		assert.Equal(suite.T(), 4, fb.Rating())
		assert.Equal(suite.T(), "Helpful and practical", fb.Comments())
		assert.NotZero(suite.T(), fb.CreatedAt())
	})

	suite.Run("NilRecommendationID_ShouldReturnError", func() {
		// Act
		fb, err := New(uuid.Nil, 3, "")

		// Assert
		assert.Nil(suite.T(), fb)
		assert.ErrorIs(suite.T(), err, ErrMissingRecommendation)
	})

	suite.Run("RatingOutOfRange_ShouldReturnError", func() {
		// Arrange
		recommendationID := uuid.New()

		for _, rating := range []int{0, -1, 6, 100} {
			// Act
			fb, err := New(recommendationID, rating, "")

			// Assert
			assert.Nil(suite.T(), fb, "rating %d", rating)
			assert.ErrorIs(suite.T(), err, ErrInvalidRating, "rating %d", rating)
		}
	})

	suite.Run("BoundaryRatings_ShouldBeAccepted", func() {
		// Arrange
		recommendationID := uuid.New()

		for _, rating := range []int{MinRating, MaxRating} {
			// Act
			fb, err := New(recommendationID, rating, "")

			// Assert
			require.NoError(suite.T(), err, "rating %d", rating)
			assert.Equal(suite.T(), rating, fb.Rating())
		}
	})
}

// TestFeedbackRestore tests rebuilding from persisted fields
func (suite *FeedbackTestSuite) TestFeedbackRestore() {
	suite.Run("Restore_ShouldPreserveAllFields", func() {
		// Arrange
		id := uuid.New()
		recommendationID := uuid.New()
		createdAt := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

		// Act
		fb := Restore(id, recommendationID, 5, "Excellent", createdAt)

		// Assert
		assert.Equal(suite.T(), id, fb.ID())
		assert.Equal(suite.T(), recommendationID, fb.RecommendationID())
		assert.Equal(suite.T(), 5, fb.Rating())
		assert.Equal(suite.T(), "Excellent", fb.Comments())
		assert.Equal(suite.T(), createdAt, fb.CreatedAt())
	})
}

// TestFeedbackTestSuite runs the test suite
func TestFeedbackTestSuite(t *testing.T) {
	suite.Run(t, new(FeedbackTestSuite))
}
