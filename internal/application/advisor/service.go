// Package advisor provides the application layer for dietary recommendations
// This implements the use cases defined in the inbound ports
package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/afyaplate/v1/internal/domain/catalog"
	"github.com/afyaplate/v1/internal/domain/feedback"
	"github.com/afyaplate/v1/internal/domain/mealplan"
	"github.com/afyaplate/v1/internal/domain/patient"
	"github.com/afyaplate/v1/internal/ports/inbound"
	"github.com/afyaplate/v1/internal/ports/outbound"
	"github.com/afyaplate/v1/pkg/errors"
)

const (
	// SourceDeterministic marks a report built entirely by local rules.
	SourceDeterministic = "deterministic"
	// SourceReconciled marks a report that merged an external candidate.
	SourceReconciled = "reconciled"

	reportCacheTTL = 15 * time.Minute
)

// AdvisorService implements the recommendation use cases
type AdvisorService struct {
	catalog      *catalog.Catalog
	engine       *mealplan.Engine
	ai           outbound.AdvisorAI
	cache        outbound.CacheRepository
	feedbackRepo outbound.FeedbackRepository
	logger       *zap.Logger
}

// NewAdvisorService creates a new advisor service. The AI backend and the
// cache are optional: a nil AI client means every report is deterministic,
// a nil cache disables report caching.
func NewAdvisorService(
	cat *catalog.Catalog,
	engine *mealplan.Engine,
	ai outbound.AdvisorAI,
	cache outbound.CacheRepository,
	feedbackRepo outbound.FeedbackRepository,
	logger *zap.Logger,
) inbound.AdvisorService {
	return &AdvisorService{
		catalog:      cat,
		engine:       engine,
		ai:           ai,
		cache:        cache,
		feedbackRepo: feedbackRepo,
		logger:       logger.Named("advisor-service"),
	}
}

// Recommend turns raw vitals and a location into a full dietary report.
// External candidate failures never abort the request: the deterministic
// engine always produces a complete recommendation on its own.
func (s *AdvisorService) Recommend(ctx context.Context, cmd inbound.RecommendCommand) (*inbound.RecommendationReport, error) {
	profile, err := patient.NewProfile(patient.Vitals{
		Age:        cmd.Age,
		WeightKg:   cmd.WeightKg,
		HeightM:    cmd.HeightM,
		BloodSugar: cmd.BloodSugarMgDl,
		BloodPressure: patient.BloodPressure{
			Systolic:  cmd.Systolic,
			Diastolic: cmd.Diastolic,
		},
		DiabetesStatus: diabetesStatus(cmd.DiabetesStatus),
		Location:       cmd.Location,
	})
	if err != nil {
		return nil, errors.NewInvalidVitalsError(err.Error())
	}

	if cached := s.cachedReport(ctx, cmd); cached != nil {
		return cached, nil
	}

	region := s.catalog.ResolveRegion(profile.Location())
	foods := s.catalog.Foods(region)

	candidate, source := s.fetchCandidate(ctx, profile, foods)
	recommendation := s.engine.Reconcile(candidate, profile, foods)

	report := &inbound.RecommendationReport{
		ID:              uuid.New(),
		Profile:         profileDTO(profile, region),
		Recommendations: recommendation,
		Summary:         buildSummary(profile, recommendation),
		Source:          source,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}

	s.storeReport(ctx, cmd, report)

	s.logger.Info("Recommendation generated",
		zap.String("report_id", report.ID.String()),
		zap.String("region", string(region)),
		zap.String("health_category", string(profile.HealthCategory())),
		zap.String("source", source),
	)

	return report, nil
}

// fetchCandidate consults the external backend when one is configured.
// Any failure degrades to a nil candidate, logged but never surfaced.
func (s *AdvisorService) fetchCandidate(ctx context.Context, profile *patient.Profile, foods catalog.RegionFoods) (*mealplan.Candidate, string) {
	if s.ai == nil {
		return nil, SourceDeterministic
	}

	raw, err := s.ai.GenerateCandidate(ctx, profile, foods)
	if err != nil {
		s.logger.Warn("External candidate unavailable, using deterministic engine",
			zap.Error(err))
		return nil, SourceDeterministic
	}

	candidate := mealplan.ParseCandidate(raw)
	if candidate == nil {
		s.logger.Warn("External candidate was not a JSON object, using deterministic engine")
		return nil, SourceDeterministic
	}

	return candidate, SourceReconciled
}

// SubmitFeedback stores a rating for a delivered recommendation
func (s *AdvisorService) SubmitFeedback(ctx context.Context, cmd inbound.SubmitFeedbackCommand) (*inbound.FeedbackDTO, error) {
	fb, err := feedback.New(cmd.RecommendationID, cmd.Rating, cmd.Comments)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.feedbackRepo.Save(ctx, fb); err != nil {
		return nil, errors.NewFeedbackStoreError("save feedback", err)
	}

	s.logger.Info("Feedback recorded",
		zap.String("feedback_id", fb.ID().String()),
		zap.String("recommendation_id", fb.RecommendationID().String()),
		zap.Int("rating", fb.Rating()),
	)

	return &inbound.FeedbackDTO{
		ID:               fb.ID(),
		RecommendationID: fb.RecommendationID(),
		Rating:           fb.Rating(),
		Comments:         fb.Comments(),
		CreatedAt:        fb.CreatedAt().UTC().Format(time.RFC3339),
	}, nil
}

// FeedbackMetrics aggregates all stored ratings
func (s *AdvisorService) FeedbackMetrics(ctx context.Context) (*feedback.Metrics, error) {
	metrics, err := s.feedbackRepo.Metrics(ctx)
	if err != nil {
		return nil, errors.NewFeedbackStoreError("aggregate metrics", err)
	}
	return metrics, nil
}

// cachedReport returns a previously generated report for identical vitals,
// or nil on any miss or cache failure.
func (s *AdvisorService) cachedReport(ctx context.Context, cmd inbound.RecommendCommand) *inbound.RecommendationReport {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, reportCacheKey(cmd))
	if err != nil || data == nil {
		return nil
	}

	var report inbound.RecommendationReport
	if err := json.Unmarshal(data, &report); err != nil {
		s.logger.Warn("Discarding undecodable cached report", zap.Error(err))
		return nil
	}

	s.logger.Debug("Recommendation served from cache",
		zap.String("report_id", report.ID.String()))
	return &report
}

func (s *AdvisorService) storeReport(ctx context.Context, cmd inbound.RecommendCommand, report *inbound.RecommendationReport) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, reportCacheKey(cmd), data, reportCacheTTL); err != nil {
		s.logger.Warn("Failed to cache report", zap.Error(err))
	}
}

// reportCacheKey hashes the full command so any change in vitals or
// location produces a distinct key.
func reportCacheKey(cmd inbound.RecommendCommand) string {
	payload, _ := json.Marshal(cmd)
	sum := sha256.Sum256(payload)
	return "report:" + hex.EncodeToString(sum[:])
}

func diabetesStatus(raw string) patient.DiabetesStatus {
	if raw == "" {
		return patient.DiabetesNone
	}
	return patient.DiabetesStatus(raw)
}

func profileDTO(p *patient.Profile, region catalog.Region) inbound.ProfileDTO {
	factors := p.RiskFactors()
	names := make([]string, len(factors))
	for i, factor := range factors {
		names[i] = string(factor)
	}

	r := p.Restrictions()
	return inbound.ProfileDTO{
		BMI:            p.BMI(),
		BMIBand:        string(p.BMIBand()),
		HealthCategory: string(p.HealthCategory()),
		RiskFactors:    names,
		CalorieNeeds:   p.CalorieNeeds(),
		LimitSugar:     r.LimitSugar,
		LimitSodium:    r.LimitSodium,
		PortionControl: r.PortionControl,
		IncreaseFiber:  r.IncreaseFiber,
		LimitSaturated: r.LimitSaturatedFat,
		Region:         string(region),
		DiabetesStatus: string(p.DiabetesStatus()),
	}
}
