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

// DetailService composes the single-date drill-down view: the date's
// sleep and cognitive details plus a graph spanning the containing
// calendar month.
type DetailService interface {
	DateDetail(ctx context.Context, userID uuid.UUID, date string) (*domain.DateDetailResponse, error)
}

type detailService struct {
	sleepRepo     repository.SleepRecordRepository
	cognitiveRepo repository.CognitiveRepository
	loc           *time.Location
}

func NewDetailService(sleepRepo repository.SleepRecordRepository, cognitiveRepo repository.CognitiveRepository, loc *time.Location) DetailService {
	return &detailService{
		sleepRepo:     sleepRepo,
		cognitiveRepo: cognitiveRepo,
		loc:           loc,
	}
}

func (s *detailService) DateDetail(ctx context.Context, userID uuid.UUID, date string) (*domain.DateDetailResponse, error) {
	if !dateutil.IsValid(date) {
		return nil, domain.ErrInvalidInput
	}

	monthFirst, monthLast, err := dateutil.MonthBounds(date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	// One month-wide fetch feeds both the selected date's detail and
	// the graph series.
	records, err := s.sleepRepo.ListByDateRange(ctx, userID, monthFirst, monthLast)
	if err != nil {
		return nil, err
	}

	fromTime, toTime, err := dateutil.RangeBounds(monthFirst, monthLast, s.loc)
	if err != nil {
		return nil, err
	}
	srtRows, err := s.cognitiveRepo.ListSRTInRange(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}
	symbolRows, err := s.cognitiveRepo.ListSymbolInRange(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}
	patternRows, err := s.cognitiveRepo.ListPatternInRange(ctx, userID, fromTime, toTime)
	if err != nil {
		return nil, err
	}

	recordByDate := make(map[string]*domain.SleepRecord, len(records))
	for i := range records {
		recordByDate[records[i].Date] = &records[i]
	}

	srtByDate := make(map[string][]repository.SRTRow)
	for _, row := range srtRows {
		d := dateutil.DateOf(row.CreatedAt, s.loc)
		srtByDate[d] = append(srtByDate[d], row)
	}
	symbolByDate := make(map[string][]repository.SymbolRow)
	for _, row := range symbolRows {
		d := dateutil.DateOf(row.CreatedAt, s.loc)
		symbolByDate[d] = append(symbolByDate[d], row)
	}
	patternByDate := make(map[string][]repository.PatternRow)
	for _, row := range patternRows {
		d := dateutil.DateOf(row.CreatedAt, s.loc)
		patternByDate[d] = append(patternByDate[d], row)
	}

	sleep := sleepDayDetail(recordByDate[date])
	cognitive := cognitiveDayDetail(srtByDate[date], symbolByDate[date], patternByDate[date])

	// Zero-valued halves are returned alongside a populated one; only
	// a date with nothing at all is a not-found.
	if !sleep.Recorded && !cognitive.Recorded {
		return nil, domain.ErrNotFound
	}

	graph := domain.DetailGraph{SelectedDate: date}
	for _, d := range dateutil.DatesBetween(monthFirst, monthLast) {
		graph.Dates = append(graph.Dates, d)
		if record, ok := recordByDate[d]; ok {
			graph.SleepHours = append(graph.SleepHours, round1(float64(record.SleepDuration)/60))
			graph.SleepScores = append(graph.SleepScores, float64(record.Score))
		} else {
			graph.SleepHours = append(graph.SleepHours, 0)
			graph.SleepScores = append(graph.SleepScores, 0)
		}
		graph.CognitiveScores = append(graph.CognitiveScores, dayComposite(srtByDate[d], symbolByDate[d], patternByDate[d]))
	}

	return &domain.DateDetailResponse{
		Date:      date,
		Sleep:     sleep,
		Cognitive: cognitive,
		Graph:     graph,
	}, nil
}

func sleepDayDetail(record *domain.SleepRecord) domain.SleepDayDetail {
	if record == nil {
		return domain.SleepDayDetail{}
	}
	return domain.SleepDayDetail{
		Recorded:        true,
		TotalSleepHours: round1(float64(record.SleepDuration) / 60),
		SleepScore:      float64(record.Score),
	}
}

// cognitiveDayDetail averages all same-day SRT and symbol rows naively.
// Pattern rows are first deduplicated to the latest row per session,
// then averaged across sessions; this asymmetry is intentional. The
// total is the sum of the three variant averages.
func cognitiveDayDetail(srt []repository.SRTRow, symbol []repository.SymbolRow, pattern []repository.PatternRow) domain.CognitiveDayDetail {
	detail := domain.CognitiveDayDetail{
		Recorded: len(srt) > 0 || len(symbol) > 0 || len(pattern) > 0,
	}

	if len(srt) > 0 {
		var scores, reactions []float64
		for _, row := range srt {
			scores = append(scores, row.Score)
			reactions = append(reactions, row.ReactionAvgMs)
		}
		detail.SRT = domain.SRTDayDetail{
			AverageScore:  round1(mean(scores)),
			ReactionAvgMs: round1(mean(reactions)),
		}
	}

	if len(symbol) > 0 {
		var scores, accuracies []float64
		correctTotal := 0
		for _, row := range symbol {
			scores = append(scores, row.Score)
			accuracies = append(accuracies, row.SymbolAccuracy)
			correctTotal += row.SymbolCorrect
		}
		detail.Symbol = domain.SymbolDayDetail{
			AverageScore: round1(mean(scores)),
			CorrectTotal: correctTotal,
			AccuracyAvg:  round2(mean(accuracies)),
		}
	}

	if len(pattern) > 0 {
		kept := latestPatternPerSession(pattern)
		var scores []float64
		correctTotal := 0
		for _, row := range kept {
			scores = append(scores, row.Score)
			correctTotal += row.PatternCorrect
		}
		detail.Pattern = domain.PatternDayDetail{
			AverageScore: round1(mean(scores)),
			CorrectTotal: correctTotal,
		}
	}

	detail.TotalScore = round1(detail.SRT.AverageScore + detail.Symbol.AverageScore + detail.Pattern.AverageScore)
	return detail
}

// latestPatternPerSession keeps the most recently created pattern row
// of each session.
func latestPatternPerSession(rows []repository.PatternRow) []repository.PatternRow {
	latest := make(map[uuid.UUID]repository.PatternRow, len(rows))
	for _, row := range rows {
		if prev, ok := latest[row.SessionID]; !ok || row.CreatedAt.After(prev.CreatedAt) {
			latest[row.SessionID] = row
		}
	}
	kept := make([]repository.PatternRow, 0, len(latest))
	for _, row := range latest {
		kept = append(kept, row)
	}
	return kept
}

// dayComposite mirrors the daily composite policy: naive per-variant
// means, then the mean of present variants. Days without results chart
// as 0 so the graph series stay contiguous.
func dayComposite(srt []repository.SRTRow, symbol []repository.SymbolRow, pattern []repository.PatternRow) float64 {
	var variantMeans []float64
	if len(srt) > 0 {
		var scores []float64
		for _, row := range srt {
			scores = append(scores, row.Score)
		}
		variantMeans = append(variantMeans, mean(scores))
	}
	if len(symbol) > 0 {
		var scores []float64
		for _, row := range symbol {
			scores = append(scores, row.Score)
		}
		variantMeans = append(variantMeans, mean(scores))
	}
	if len(pattern) > 0 {
		var scores []float64
		for _, row := range pattern {
			scores = append(scores, row.Score)
		}
		variantMeans = append(variantMeans, mean(scores))
	}
	if len(variantMeans) == 0 {
		return 0
	}
	return round1(mean(variantMeans))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
