// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/feedback"
	"github.com/afyaplate/v1/internal/domain/patient"
)

// AdvisorAI defines the interface for the external generative service.
// Implementations must be time-bounded: a slow or failing backend returns
// an error, it never blocks the caller indefinitely.
type AdvisorAI interface {
	// GenerateCandidate asks the backend for a candidate recommendation
	// for the given profile and regional foods. The raw response body is
	// returned as-is; parsing and validation happen in the domain.
	GenerateCandidate(ctx context.Context, profile *patient.Profile, foods catalog.RegionFoods) ([]byte, error)
}

// FeedbackRepository defines the interface for feedback persistence
type FeedbackRepository interface {
	Save(ctx context.Context, fb *feedback.Feedback) error
	FindByRecommendation(ctx context.Context, recommendationID uuid.UUID) ([]*feedback.Feedback, error)
	Metrics(ctx context.Context) (*feedback.Metrics, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
