// Package feedback contains the entity for recommendation quality ratings
// submitted after a recommendation has been delivered.
package feedback

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrMissingRecommendation = errors.New("recommendation id is required")
)

// Feedback records how a caller rated a delivered recommendation.
// Immutable once created.
type Feedback struct {
	id               uuid.UUID
	recommendationID uuid.UUID
	rating           int
	comments         string
	createdAt        time.Time
}

// New validates the rating scale and builds a feedback record.
func New(recommendationID uuid.UUID, rating int, comments string) (*Feedback, error) {
	if recommendationID == uuid.Nil {
		return nil, ErrMissingRecommendation
	}
	if rating < MinRating || rating > MaxRating {
		return nil, ErrInvalidRating
	}
	return &Feedback{
		id:               uuid.New(),
		recommendationID: recommendationID,
		rating:           rating,
		comments:         strings.TrimSpace(comments),
		createdAt:        time.Now(),
	}, nil
}

// Restore rebuilds a feedback record from persisted fields.
func Restore(id, recommendationID uuid.UUID, rating int, comments string, createdAt time.Time) *Feedback {
	return &Feedback{
		id:               id,
		recommendationID: recommendationID,
		rating:           rating,
		comments:         comments,
		createdAt:        createdAt,
	}
}

func (f *Feedback) ID() uuid.UUID               { return f.id }
func (f *Feedback) RecommendationID() uuid.UUID { return f.recommendationID }
func (f *Feedback) Rating() int                 { return f.rating }
func (f *Feedback) Comments() string            { return f.comments }
func (f *Feedback) CreatedAt() time.Time        { return f.createdAt }

// Metrics aggregates ratings across stored feedback.
type Metrics struct {
	AverageRating      float64        `json:"average_rating"`
	TotalSessions      int            `json:"total_sessions"`
	RatingDistribution map[string]int `json:"rating_distribution,omitempty"`
}
