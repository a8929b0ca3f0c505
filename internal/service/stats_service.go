package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/repository"
	"github.com/hanyul/sleepwise/pkg/dateutil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"

	// Window sizes per granularity
	DayWindowDays   = 90
	WeekWindowCount = 4
	MonthWindowSize = 12
)

// StatsService produces the historical trend rollups and the profile
// summary.
type StatsService interface {
	// RecordList returns day, week, or month buckets ending today.
	RecordList(ctx context.Context, userID uuid.UUID, period string) (*domain.RecordListResponse, error)
	// Summary returns the whole-history profile headline numbers.
	Summary(ctx context.Context, userID uuid.UUID) (*domain.MypageSummaryResponse, error)
}

type statsService struct {
	sleepRepo repository.SleepRecordRepository
	userRepo  repository.UserRepository
	cognitive CognitiveService
	loc       *time.Location
	now       func() time.Time
}

func NewStatsService(sleepRepo repository.SleepRecordRepository, userRepo repository.UserRepository, cognitive CognitiveService, loc *time.Location) StatsService {
	return &statsService{
		sleepRepo: sleepRepo,
		userRepo:  userRepo,
		cognitive: cognitive,
		loc:       loc,
		now:       time.Now,
	}
}

func (s *statsService) today() string {
	return dateutil.DateOf(s.now(), s.loc)
}

func (s *statsService) RecordList(ctx context.Context, userID uuid.UUID, period string) (*domain.RecordListResponse, error) {
	tracer := otel.Tracer("sleepwise-api/stats")
	ctx, span := tracer.Start(ctx, "StatsService.RecordList",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("period", period),
		),
	)
	defer span.End()

	inputPayload := map[string]any{
		"user_id": userID.String(),
		"period":  period,
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	var response *domain.RecordListResponse
	switch period {
	case PeriodDay:
		response, err = s.dayList(ctx, userID)
	case PeriodWeek:
		response, err = s.weekList(ctx, userID)
	case PeriodMonth:
		response, err = s.monthList(ctx, userID)
	default:
		return nil, domain.ErrInvalidInput
	}
	if err != nil {
		return nil, err
	}

	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	return response, nil
}

// dayList returns one bucket per calendar day of the last 90 days that
// has a sleep record or a cognitive score. Empty days are omitted.
func (s *statsService) dayList(ctx context.Context, userID uuid.UUID) (*domain.RecordListResponse, error) {
	today := s.today()
	from := dateutil.AddDays(today, -(DayWindowDays - 1))

	records, err := s.sleepRepo.ListByDateRange(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}
	composites, err := s.cognitive.DailyComposites(ctx, userID, from, today)
	if err != nil {
		return nil, err
	}

	recordByDate := make(map[string]*domain.SleepRecord, len(records))
	for i := range records {
		recordByDate[records[i].Date] = &records[i]
	}

	var days []domain.DailyScore
	for _, date := range dateutil.DatesBetween(from, today) {
		record, hasRecord := recordByDate[date]
		composite, hasComposite := composites[date]
		if !hasRecord && !hasComposite {
			continue
		}

		day := domain.DailyScore{Date: date, CognitiveScore: composite}
		if hasRecord {
			day.SleepHours = round1(float64(record.SleepDuration) / 60)
			day.SleepScore = float64(record.Score)
		}
		days = append(days, day)
	}

	if len(days) == 0 {
		return nil, domain.ErrNoRecordsInRange
	}
	return &domain.RecordListResponse{Period: PeriodDay, Days: days}, nil
}

// weekList returns up to 4 seven-day buckets ending today. Week 1 is
// the oldest span; week numbers are kept even when earlier weeks are
// omitted for having no data.
func (s *statsService) weekList(ctx context.Context, userID uuid.UUID) (*domain.RecordListResponse, error) {
	today := s.today()
	windowFrom := dateutil.AddDays(today, -(WeekWindowCount*7 - 1))

	records, err := s.sleepRepo.ListByDateRange(ctx, userID, windowFrom, today)
	if err != nil {
		return nil, err
	}
	composites, err := s.cognitive.DailyComposites(ctx, userID, windowFrom, today)
	if err != nil {
		return nil, err
	}

	var weeks []domain.WeeklyScore
	for i := 1; i <= WeekWindowCount; i++ {
		end := dateutil.AddDays(today, -(WeekWindowCount-i)*7)
		start := dateutil.AddDays(end, -6)

		var totalMinutes int
		var scores []float64
		for j := range records {
			if records[j].Date < start || records[j].Date > end {
				continue
			}
			totalMinutes += records[j].SleepDuration
			scores = append(scores, float64(records[j].Score))
		}

		var dayComposites []float64
		for date, composite := range composites {
			if date >= start && date <= end {
				dayComposites = append(dayComposites, composite)
			}
		}

		if len(scores) == 0 && len(dayComposites) == 0 {
			continue
		}

		weeks = append(weeks, domain.WeeklyScore{
			Week:                  i,
			StartDate:             start,
			EndDate:               end,
			TotalSleepHours:       round1(float64(totalMinutes) / 60),
			AverageSleepScore:     round1(mean(scores)),
			AverageCognitiveScore: round1(mean(dayComposites)),
		})
	}

	if len(weeks) == 0 {
		return nil, domain.ErrNoRecordsInRange
	}
	return &domain.RecordListResponse{Period: PeriodWeek, Weeks: weeks}, nil
}

// monthList returns up to 12 calendar-month buckets ending with the
// current month, ascending by month label.
func (s *statsService) monthList(ctx context.Context, userID uuid.UUID) (*domain.RecordListResponse, error) {
	today := s.today()
	currentFirst, _, err := dateutil.MonthBounds(today)
	if err != nil {
		return nil, err
	}
	windowStart, err := dateutil.Parse(currentFirst)
	if err != nil {
		return nil, err
	}
	windowFrom := windowStart.AddDate(0, -(MonthWindowSize - 1), 0).Format(dateutil.Layout)

	records, err := s.sleepRepo.ListByDateRange(ctx, userID, windowFrom, today)
	if err != nil {
		return nil, err
	}
	composites, err := s.cognitive.DailyComposites(ctx, userID, windowFrom, today)
	if err != nil {
		return nil, err
	}

	type monthAgg struct {
		totalMinutes  int
		scores        []float64
		dayComposites []float64
	}
	byMonth := make(map[string]*monthAgg)
	get := func(label string) *monthAgg {
		agg, ok := byMonth[label]
		if !ok {
			agg = &monthAgg{}
			byMonth[label] = agg
		}
		return agg
	}

	for i := range records {
		agg := get(dateutil.MonthLabel(records[i].Date))
		agg.totalMinutes += records[i].SleepDuration
		agg.scores = append(agg.scores, float64(records[i].Score))
	}
	for date, composite := range composites {
		agg := get(dateutil.MonthLabel(date))
		agg.dayComposites = append(agg.dayComposites, composite)
	}

	// Walk the window months oldest first so the output is ascending
	// by label regardless of map iteration order.
	var months []domain.MonthlyScore
	for i := MonthWindowSize - 1; i >= 0; i-- {
		label := dateutil.MonthLabel(windowStart.AddDate(0, -i, 0).Format(dateutil.Layout))
		agg, ok := byMonth[label]
		if !ok {
			continue
		}
		months = append(months, domain.MonthlyScore{
			Month:                 label,
			TotalSleepHours:       round1(float64(agg.totalMinutes) / 60),
			AverageSleepScore:     round1(mean(agg.scores)),
			AverageCognitiveScore: round1(mean(agg.dayComposites)),
		})
	}

	if len(months) == 0 {
		return nil, domain.ErrNoRecordsInRange
	}
	return &domain.RecordListResponse{Period: PeriodMonth, Months: months}, nil
}

func (s *statsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.MypageSummaryResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary, err := s.sleepRepo.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	composites, err := s.cognitive.DailyComposites(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}
	var dayComposites []float64
	for _, composite := range composites {
		dayComposites = append(dayComposites, composite)
	}

	response := &domain.MypageSummaryResponse{
		Nickname:              user.Nickname,
		ProfileImg:            user.ProfileImg,
		JoinedAt:              user.JoinedAt,
		TrackingDays:          summary.TrackingDays,
		TotalSleepHours:       round1(float64(summary.TotalSleepMinutes) / 60),
		AverageCognitiveScore: round1(mean(dayComposites)),
	}
	if summary.TrackingDays > 0 {
		response.AverageSleepScore = round1(summary.AverageScore)
	}
	return response, nil
}
