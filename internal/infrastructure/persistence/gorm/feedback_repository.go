// Package gorm provides GORM backed repository implementations
package gorm

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/afyaplate/v1/internal/domain/feedback"
	"github.com/afyaplate/v1/internal/ports/outbound"
)

// FeedbackModel represents the GORM model for recommendation feedback
type FeedbackModel struct {
	ID               uuid.UUID `gorm:"type:char(36);primaryKey"`
	RecommendationID uuid.UUID `gorm:"type:char(36);not null;index"`
	Rating           int       `gorm:"not null"`
	Comments         string    `gorm:"type:text"`
	CreatedAt        time.Time
}

// TableName overrides the default pluralized name
func (FeedbackModel) TableName() string {
	return "feedback"
}

// FeedbackRepository implements feedback persistence using GORM
type FeedbackRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFeedbackRepository creates a new GORM feedback repository
func NewFeedbackRepository(db *gorm.DB, logger *zap.Logger) outbound.FeedbackRepository {
	return &FeedbackRepository{
		db:     db,
		logger: logger.Named("feedback-repository"),
	}
}

// Save persists a feedback record
func (r *FeedbackRepository) Save(ctx context.Context, fb *feedback.Feedback) error {
	model := FeedbackModel{
		ID:               fb.ID(),
		RecommendationID: fb.RecommendationID(),
		Rating:           fb.Rating(),
		Comments:         fb.Comments(),
		CreatedAt:        fb.CreatedAt(),
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

// FindByRecommendation returns all feedback for one recommendation
func (r *FeedbackRepository) FindByRecommendation(ctx context.Context, recommendationID uuid.UUID) ([]*feedback.Feedback, error) {
	var models []FeedbackModel
	err := r.db.WithContext(ctx).
		Where("recommendation_id = ?", recommendationID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}

	records := make([]*feedback.Feedback, len(models))
	for i, m := range models {
		records[i] = feedback.Restore(m.ID, m.RecommendationID, m.Rating, m.Comments, m.CreatedAt)
	}
	return records, nil
}

// Metrics aggregates all stored ratings into an average and a distribution
func (r *FeedbackRepository) Metrics(ctx context.Context) (*feedback.Metrics, error) {
	type ratingCount struct {
		Rating int
		Count  int
	}

	var counts []ratingCount
	err := r.db.WithContext(ctx).
		Model(&FeedbackModel{}).
		Select("rating, count(*) as count").
		Group("rating").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate feedback: %w", err)
	}

	metrics := &feedback.Metrics{}
	if len(counts) == 0 {
		return metrics, nil
	}

	metrics.RatingDistribution = make(map[string]int, len(counts))
	sum := 0
	for _, c := range counts {
		metrics.TotalSessions += c.Count
		sum += c.Rating * c.Count
		metrics.RatingDistribution[fmt.Sprintf("%d", c.Rating)] = c.Count
	}
	metrics.AverageRating = float64(sum) / float64(metrics.TotalSessions)

	return metrics, nil
}
