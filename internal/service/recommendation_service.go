package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/llm"
	"github.com/hanyul/sleepwise/internal/repository"
	"github.com/hanyul/sleepwise/pkg/dateutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RecommendationCacheTTL keeps a generated recommendation for a day;
// the underlying data rarely changes after the night is logged.
const RecommendationCacheTTL = 24 * time.Hour

// RecommendationService generates the per-date AI recommendation.
type RecommendationService interface {
	Recommend(ctx context.Context, userID uuid.UUID, date string) (*domain.RecommendationResponse, error)
}

type recommendationService struct {
	sleepRepo     repository.SleepRecordRepository
	cognitiveRepo repository.CognitiveRepository
	cache         repository.RecommendationCache
	llmClient     llm.RecommendationLLM
	loc           *time.Location
}

func NewRecommendationService(
	sleepRepo repository.SleepRecordRepository,
	cognitiveRepo repository.CognitiveRepository,
	cache repository.RecommendationCache,
	llmClient llm.RecommendationLLM,
	loc *time.Location,
) RecommendationService {
	return &recommendationService{
		sleepRepo:     sleepRepo,
		cognitiveRepo: cognitiveRepo,
		cache:         cache,
		llmClient:     llmClient,
		loc:           loc,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, date string) (*domain.RecommendationResponse, error) {
	if !dateutil.IsValid(date) {
		return nil, domain.ErrInvalidInput
	}

	tracer := otel.Tracer("sleepwise-api/recommendation")
	ctx, span := tracer.Start(ctx, "RecommendationService.Recommend",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("date", date),
		),
	)
	defer span.End()

	// Cache failures degrade to a fresh generation, never to an error.
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID, date)
		if err != nil {
			log.Printf("recommendation cache read failed: %v", err)
		} else if cached != "" {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &domain.RecommendationResponse{Date: date, Recommendation: cached, Cached: true}, nil
		}
	}

	record, err := s.sleepRepo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	recCtx := &domain.RecommendationContext{
		Date:           date,
		SleepScore:     record.Score,
		SleepDuration:  record.SleepDuration,
		Quality:        record.SubjectiveQuality,
		SleepLatency:   record.SleepLatency,
		WakeCount:      record.WakeCount,
		DisturbFactors: record.DisturbFactors,
	}
	if err := s.attachCognitiveScores(ctx, userID, date, recCtx); err != nil {
		return nil, err
	}

	if inputJSON, err := json.Marshal(recCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	text, err := s.llmClient.GenerateRecommendation(ctx, recCtx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("langfuse.observation.output", text))

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, date, text, RecommendationCacheTTL); err != nil {
			log.Printf("recommendation cache write failed: %v", err)
		}
	}

	return &domain.RecommendationResponse{Date: date, Recommendation: text, Cached: false}, nil
}

// attachCognitiveScores fills the per-variant scores with the first
// result of the day for each variant, when one exists.
func (s *recommendationService) attachCognitiveScores(ctx context.Context, userID uuid.UUID, date string, recCtx *domain.RecommendationContext) error {
	from, to, err := dateutil.DayBounds(date, s.loc)
	if err != nil {
		return domain.ErrInvalidInput
	}

	// Rows come back ordered by creation time; the first row is the
	// day's first result of that variant.
	srtRows, err := s.cognitiveRepo.ListSRTInRange(ctx, userID, from, to)
	if err != nil {
		return err
	}
	if len(srtRows) > 0 {
		recCtx.SRTScore = &srtRows[0].Score
	}

	symbolRows, err := s.cognitiveRepo.ListSymbolInRange(ctx, userID, from, to)
	if err != nil {
		return err
	}
	if len(symbolRows) > 0 {
		recCtx.SymbolScore = &symbolRows[0].Score
	}

	patternRows, err := s.cognitiveRepo.ListPatternInRange(ctx, userID, from, to)
	if err != nil {
		return err
	}
	if len(patternRows) > 0 {
		recCtx.PatternScore = &patternRows[0].Score
	}
	return nil
}
