package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zatekoja/cpapmaskselector/internal/domain/entities"
	"github.com/zatekoja/cpapmaskselector/internal/domain/providers"
	"github.com/zatekoja/cpapmaskselector/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/cpapmaskselector/pkg/errors"
)

// RecommendationCachePrefix namespaces cached recommendations
const RecommendationCachePrefix = "recommendation:"

// Recommender computes a recommendation from questionnaire responses
type Recommender interface {
	Recommend(responses *entities.PatientResponses) (*entities.Recommendation, error)
}

// RecommendationResult is one served recommendation with its request id
type RecommendationResult struct {
	ID             string
	Recommendation *entities.Recommendation
	Cached         bool
}

// RecommendationService wraps the engine with caching, tracing and metrics
type RecommendationService struct {
	engine   Recommender
	cache    providers.CacheProvider
	cacheTTL time.Duration
	metrics  *observability.Metrics
	newID    func() string
}

// NewRecommendationService creates the service. cache and metrics may be nil.
func NewRecommendationService(engine Recommender, cache providers.CacheProvider, cacheTTL time.Duration, metrics *observability.Metrics) *RecommendationService {
	return &RecommendationService{
		engine:   engine,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		newID:    func() string { return uuid.New().String() },
	}
}

// Recommend returns the recommendation for the responses. Identical
// responses map to the same cache entry because the engine is deterministic.
func (s *RecommendationService) Recommend(ctx context.Context, responses *entities.PatientResponses) (*RecommendationResult, error) {
	ctx, span := observability.StartSpan(ctx, "RecommendationService.Recommend")
	defer span.End()

	if responses == nil {
		err := apperrors.NewValidationError("No responses provided")
		observability.RecordError(span, err)
		return nil, err
	}

	start := time.Now()
	logger := observability.LoggerFromContext(ctx)
	result := &RecommendationResult{ID: s.newID()}

	key, err := CacheKey(responses)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to derive recommendation cache key")
	}

	if rec := s.fromCache(ctx, key); rec != nil {
		result.Recommendation = rec
		result.Cached = true
	} else {
		rec, err := s.compute(responses)
		if err != nil {
			observability.RecordError(span, err)
			logger.Error().Err(err).Msg("Failed to calculate recommendation")
			return nil, err
		}
		result.Recommendation = rec
		s.store(ctx, key, rec)
	}

	category := string(result.Recommendation.MaskType)
	observability.SetSpanAttributes(span,
		attribute.String("recommendation.id", result.ID),
		attribute.String("recommendation.category", category),
		attribute.Bool("recommendation.cached", result.Cached),
	)
	observability.RecordRecommendation(ctx, s.metrics, category, result.Cached, time.Since(start))

	logger.Info().
		Str("recommendation_id", result.ID).
		Str("mask_type", category).
		Bool("cached", result.Cached).
		Int("safety_flags", len(result.Recommendation.SafetyFlags)).
		Msg("Recommendation served")

	return result, nil
}

// compute runs the engine, turning a panic into an internal error so one
// bad request cannot take the process down.
func (s *RecommendationService) compute(responses *entities.PatientResponses) (rec *entities.Recommendation, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = apperrors.NewInternalError("Failed to calculate recommendation", fmt.Errorf("panic: %v", r))
		}
	}()

	rec, err = s.engine.Recommend(responses)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.NewInternalError("Failed to calculate recommendation", err)
	}
	return rec, nil
}

func (s *RecommendationService) fromCache(ctx context.Context, key string) *entities.Recommendation {
	if s.cache == nil || key == "" {
		return nil
	}
	logger := observability.LoggerFromContext(ctx)

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, providers.ErrCacheMiss) {
			logger.Warn().Err(err).Msg("Recommendation cache read failed")
		}
		observability.RecordCacheMiss(ctx, s.metrics, RecommendationCachePrefix)
		return nil
	}

	var rec entities.Recommendation
	if err := json.Unmarshal(data, &rec); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Discarding unreadable cached recommendation")
		observability.RecordCacheMiss(ctx, s.metrics, RecommendationCachePrefix)
		return nil
	}

	observability.RecordCacheHit(ctx, s.metrics, RecommendationCachePrefix)
	return &rec
}

func (s *RecommendationService) store(ctx context.Context, key string, rec *entities.Recommendation) {
	if s.cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Failed to encode recommendation for cache")
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("Recommendation cache write failed")
	}
}

// CacheKey derives the cache key from the canonical JSON of the responses
func CacheKey(responses *entities.PatientResponses) (string, error) {
	data, err := json.Marshal(responses)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return RecommendationCachePrefix + hex.EncodeToString(sum[:]), nil
}
