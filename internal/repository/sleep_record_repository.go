package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/pkg/pagination"
	"gorm.io/gorm"
)

// SleepSummary aggregates a user's whole sleep history for the profile
// page. Zero TrackingDays means the averages are meaningless.
type SleepSummary struct {
	TrackingDays      int
	TotalSleepMinutes int
	AverageScore      float64
}

type SleepRecordRepository interface {
	Create(ctx context.Context, record *domain.SleepRecord) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepRecord, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error)
	Update(ctx context.Context, record *domain.SleepRecord) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.SleepRecord, error)
	Summary(ctx context.Context, userID uuid.UUID) (*SleepSummary, error)
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	err := r.db.WithContext(ctx).Create(record).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateRecord
	}
	return err
}

func (r *sleepRecordRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepRecord, error) {
	var record domain.SleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *sleepRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error) {
	var record domain.SleepRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *sleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

func (r *sleepRecordRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&domain.SleepRecord{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")

	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// DESC order: continue below the last page's tail row.
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.SleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByDateRange returns records with from <= date <= to, oldest first.
// Empty bounds are unbounded.
func (r *sleepRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.SleepRecord, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC")
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}

	var records []domain.SleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sleepRecordRepository) Summary(ctx context.Context, userID uuid.UUID) (*SleepSummary, error) {
	var row struct {
		Days         int64
		TotalMinutes int64
		AvgScore     float64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.SleepRecord{}).
		Select("COUNT(*) AS days, COALESCE(SUM(sleep_duration), 0) AS total_minutes, COALESCE(AVG(score), 0) AS avg_score").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &SleepSummary{
		TrackingDays:      int(row.Days),
		TotalSleepMinutes: int(row.TotalMinutes),
		AverageScore:      row.AvgScore,
	}, nil
}
