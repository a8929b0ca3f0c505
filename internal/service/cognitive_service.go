package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/repository"
	"github.com/hanyul/sleepwise/pkg/dateutil"
)

type CognitiveService interface {
	StartSession(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.CognitiveSession, error)
	EndSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CognitiveSession, error)
	RecordSRT(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSRTResultRequest) (*domain.CognitiveResultSRT, error)
	RecordSymbol(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSymbolResultRequest) (*domain.CognitiveResultSymbol, error)
	RecordPattern(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreatePatternResultRequest) (*domain.CognitiveResultPattern, error)
	DailyScores(ctx context.Context, userID uuid.UUID, from, to string) (*domain.DailyCognitiveScoresResponse, error)
	// DailyComposites maps calendar dates to composite scores over the
	// inclusive date range; empty bounds are unbounded. Dates without
	// any result are absent from the map.
	DailyComposites(ctx context.Context, userID uuid.UUID, from, to string) (map[string]float64, error)
}

type cognitiveService struct {
	repo     repository.CognitiveRepository
	userRepo repository.UserRepository
	loc      *time.Location
}

func NewCognitiveService(repo repository.CognitiveRepository, userRepo repository.UserRepository, loc *time.Location) CognitiveService {
	return &cognitiveService{
		repo:     repo,
		userRepo: userRepo,
		loc:      loc,
	}
}

func (s *cognitiveService) StartSession(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.CognitiveSession, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	session := &domain.CognitiveSession{
		UserID:     userID,
		StartedAt:  time.Now(),
		TestFormat: req.TestFormat,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *cognitiveService) EndSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CognitiveSession, error) {
	if err := s.repo.EndSession(ctx, userID, sessionID, time.Now()); err != nil {
		return nil, err
	}
	return s.repo.GetSession(ctx, userID, sessionID)
}

func (s *cognitiveService) RecordSRT(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSRTResultRequest) (*domain.CognitiveResultSRT, error) {
	if _, err := s.repo.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	result := &domain.CognitiveResultSRT{
		SessionID:     sessionID,
		Score:         req.Score,
		ReactionAvgMs: req.ReactionAvgMs,
	}
	if err := s.repo.CreateSRTResult(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *cognitiveService) RecordSymbol(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSymbolResultRequest) (*domain.CognitiveResultSymbol, error) {
	if _, err := s.repo.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	result := &domain.CognitiveResultSymbol{
		SessionID:      sessionID,
		Score:          req.Score,
		SymbolCorrect:  req.SymbolCorrect,
		SymbolAccuracy: req.SymbolAccuracy,
	}
	if err := s.repo.CreateSymbolResult(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *cognitiveService) RecordPattern(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreatePatternResultRequest) (*domain.CognitiveResultPattern, error) {
	if _, err := s.repo.GetSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	result := &domain.CognitiveResultPattern{
		SessionID:      sessionID,
		Score:          req.Score,
		PatternCorrect: req.PatternCorrect,
		PatternTimeSec: req.PatternTimeSec,
	}
	if err := s.repo.CreatePatternResult(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *cognitiveService) DailyScores(ctx context.Context, userID uuid.UUID, from, to string) (*domain.DailyCognitiveScoresResponse, error) {
	if !dateutil.IsValid(from) || !dateutil.IsValid(to) || from > to {
		return nil, domain.ErrInvalidInput
	}

	scores, err := s.DailyComposites(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.DailyCognitiveScoresResponse{
		From:   from,
		To:     to,
		Scores: scores,
	}, nil
}

// DailyComposites averages each variant's scores per date, then
// averages the variant means that exist for that date. A date with no
// results is absent, never zero. Duplicate rows of one variant within a
// session are averaged naively along with everything else.
func (s *cognitiveService) DailyComposites(ctx context.Context, userID uuid.UUID, from, to string) (map[string]float64, error) {
	fromTime, toTime, err := s.bounds(from, to)
	if err != nil {
		return nil, err
	}

	srtRows, err := s.repo.ListSRTInRange(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}
	symbolRows, err := s.repo.ListSymbolInRange(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}
	patternRows, err := s.repo.ListPatternInRange(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}

	// One mean per variant per date.
	variantMeans := make(map[string][]float64)
	appendMean := func(byDate map[string][]float64) {
		for date, scores := range byDate {
			variantMeans[date] = append(variantMeans[date], mean(scores))
		}
	}

	srtByDate := make(map[string][]float64)
	for _, row := range srtRows {
		date := dateutil.DateOf(row.CreatedAt, s.loc)
		srtByDate[date] = append(srtByDate[date], row.Score)
	}
	appendMean(srtByDate)

	symbolByDate := make(map[string][]float64)
	for _, row := range symbolRows {
		date := dateutil.DateOf(row.CreatedAt, s.loc)
		symbolByDate[date] = append(symbolByDate[date], row.Score)
	}
	appendMean(symbolByDate)

	patternByDate := make(map[string][]float64)
	for _, row := range patternRows {
		date := dateutil.DateOf(row.CreatedAt, s.loc)
		patternByDate[date] = append(patternByDate[date], row.Score)
	}
	appendMean(patternByDate)

	composites := make(map[string]float64, len(variantMeans))
	for date, means := range variantMeans {
		composites[date] = round1(mean(means))
	}
	return composites, nil
}

// bounds converts an inclusive date range to half-open timestamps in
// the reference timezone. Empty dates stay unbounded (zero time).
func (s *cognitiveService) bounds(from, to string) (time.Time, time.Time, error) {
	var fromTime, toTime time.Time
	if from != "" {
		start, _, err := dateutil.DayBounds(from, s.loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		fromTime = start
	}
	if to != "" {
		_, end, err := dateutil.DayBounds(to, s.loc)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		toTime = end
	}
	return fromTime, toTime, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
