package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/repository"
	"github.com/hanyul/sleepwise/pkg/pagination"
)

type SleepRecordService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error)
	Update(ctx context.Context, userID uuid.UUID, date string, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	Delete(ctx context.Context, userID uuid.UUID, date string) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
}

type sleepRecordService struct {
	repo     repository.SleepRecordRepository
	userRepo repository.UserRepository
}

func NewSleepRecordService(repo repository.SleepRecordRepository, userRepo repository.UserRepository) SleepRecordService {
	return &sleepRecordService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *sleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	record := &domain.SleepRecord{
		UserID:            userID,
		Date:              req.Date,
		SleepDuration:     req.SleepDuration,
		SubjectiveQuality: req.SubjectiveQuality,
		SleepLatency:      req.SleepLatency,
		WakeCount:         req.WakeCount,
		DisturbFactors:    req.DisturbFactors,
		Memo:              req.Memo,
		Score:             ComputeSleepScore(req.SleepDuration, req.SubjectiveQuality, req.SleepLatency, req.WakeCount, req.DisturbFactors),
	}

	// The unique index on (user_id, date) closes the concurrent-insert
	// race; the repository surfaces it as ErrDuplicateRecord.
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *sleepRecordService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error) {
	return s.repo.GetByDate(ctx, userID, date)
}

// Update merges the non-nil request fields into the stored record and
// always recomputes the score from the merged fields.
func (s *sleepRecordService) Update(ctx context.Context, userID uuid.UUID, date string, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	record, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	if req.SleepDuration != nil {
		record.SleepDuration = *req.SleepDuration
	}
	if req.SubjectiveQuality != nil {
		record.SubjectiveQuality = *req.SubjectiveQuality
	}
	if req.SleepLatency != nil {
		record.SleepLatency = *req.SleepLatency
	}
	if req.WakeCount != nil {
		record.WakeCount = *req.WakeCount
	}
	if req.DisturbFactors != nil {
		record.DisturbFactors = *req.DisturbFactors
	}
	if req.Memo != nil {
		record.Memo = *req.Memo
	}

	record.Score = ComputeSleepScore(record.SleepDuration, record.SubjectiveQuality, record.SleepLatency, record.WakeCount, record.DisturbFactors)

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *sleepRecordService) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	record, err := s.repo.GetByDate(ctx, userID, date)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, userID, record.ID)
}

func (s *sleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	records, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)

	// The repository fetched limit+1 rows; the extra row only signals
	// that another page exists.
	hasMore := len(records) > limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, 0, len(records)),
	}
	for i := range records {
		response.Data = append(response.Data, records[i].ToResponse())
	}

	response.Pagination.HasMore = hasMore
	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := pagination.Cursor{ID: last.ID, Date: last.Date}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
