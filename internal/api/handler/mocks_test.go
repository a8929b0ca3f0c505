package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	socialLoginFunc   func(ctx context.Context, req *domain.SocialLoginRequest) (*domain.SocialLoginResponse, error)
	refreshFunc       func(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	logoutFunc        func(ctx context.Context, refreshToken string) error
	withdrawFunc      func(ctx context.Context, userID uuid.UUID, refreshToken string) error
	meFunc            func(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error)
	updateProfileFunc func(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error)
}

func (m *MockAuthService) SocialLogin(ctx context.Context, req *domain.SocialLoginRequest) (*domain.SocialLoginResponse, error) {
	if m.socialLoginFunc != nil {
		return m.socialLoginFunc(ctx, req)
	}
	return &domain.SocialLoginResponse{
		Tokens: domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		User:   domain.UserResponse{ID: uuid.New(), Nickname: "tester"},
	}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(ctx, refreshToken)
	}
	return &domain.TokenPair{AccessToken: "access2", RefreshToken: "refresh2"}, nil
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(ctx, refreshToken)
	}
	return nil
}

func (m *MockAuthService) Withdraw(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	if m.withdrawFunc != nil {
		return m.withdrawFunc(ctx, userID, refreshToken)
	}
	return nil
}

func (m *MockAuthService) Me(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error) {
	if m.meFunc != nil {
		return m.meFunc(ctx, userID)
	}
	return &domain.UserResponse{ID: userID, Nickname: "tester"}, nil
}

func (m *MockAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	if m.updateProfileFunc != nil {
		return m.updateProfileFunc(ctx, userID, req)
	}
	resp := &domain.UserResponse{ID: userID, Nickname: "tester"}
	if req.Nickname != nil {
		resp.Nickname = *req.Nickname
	}
	resp.Gender = req.Gender
	resp.BirthYear = req.BirthYear
	resp.MBTI = req.MBTI
	return resp, nil
}

// MockSleepRecordService is a mock implementation of SleepRecordService
type MockSleepRecordService struct {
	createFunc    func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	getByDateFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error)
	updateFunc    func(ctx context.Context, userID uuid.UUID, date string, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	deleteFunc    func(ctx context.Context, userID uuid.UUID, date string) error
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
}

func (m *MockSleepRecordService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepRecord{
		ID:                uuid.New(),
		UserID:            userID,
		Date:              req.Date,
		SleepDuration:     req.SleepDuration,
		SubjectiveQuality: req.SubjectiveQuality,
		SleepLatency:      req.SleepLatency,
		WakeCount:         req.WakeCount,
		DisturbFactors:    req.DisturbFactors,
		Memo:              req.Memo,
		Score:             95,
		CreatedAt:         time.Now(),
	}, nil
}

func (m *MockSleepRecordService) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, userID, date)
	}
	return &domain.SleepRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          date,
		SleepDuration: 480,
		Score:         95,
	}, nil
}

func (m *MockSleepRecordService) Update(ctx context.Context, userID uuid.UUID, date string, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, date, req)
	}
	return &domain.SleepRecord{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          date,
		SleepDuration: 480,
		Score:         95,
	}, nil
}

func (m *MockSleepRecordService) Delete(ctx context.Context, userID uuid.UUID, date string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, date)
	}
	return nil
}

func (m *MockSleepRecordService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepRecordListResponse{
		Data:       []domain.SleepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockCognitiveService is a mock implementation of CognitiveService
type MockCognitiveService struct {
	startSessionFunc  func(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.CognitiveSession, error)
	endSessionFunc    func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CognitiveSession, error)
	recordSRTFunc     func(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSRTResultRequest) (*domain.CognitiveResultSRT, error)
	recordSymbolFunc  func(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSymbolResultRequest) (*domain.CognitiveResultSymbol, error)
	recordPatternFunc func(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreatePatternResultRequest) (*domain.CognitiveResultPattern, error)
	dailyScoresFunc   func(ctx context.Context, userID uuid.UUID, from, to string) (*domain.DailyCognitiveScoresResponse, error)
}

func (m *MockCognitiveService) StartSession(ctx context.Context, userID uuid.UUID, req *domain.CreateSessionRequest) (*domain.CognitiveSession, error) {
	if m.startSessionFunc != nil {
		return m.startSessionFunc(ctx, userID, req)
	}
	return &domain.CognitiveSession{ID: uuid.New(), UserID: userID, StartedAt: time.Now()}, nil
}

func (m *MockCognitiveService) EndSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.CognitiveSession, error) {
	if m.endSessionFunc != nil {
		return m.endSessionFunc(ctx, userID, sessionID)
	}
	now := time.Now()
	return &domain.CognitiveSession{ID: sessionID, UserID: userID, StartedAt: now.Add(-time.Minute), EndedAt: &now}, nil
}

func (m *MockCognitiveService) RecordSRT(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSRTResultRequest) (*domain.CognitiveResultSRT, error) {
	if m.recordSRTFunc != nil {
		return m.recordSRTFunc(ctx, userID, sessionID, req)
	}
	return &domain.CognitiveResultSRT{ID: uuid.New(), SessionID: sessionID, Score: req.Score, ReactionAvgMs: req.ReactionAvgMs}, nil
}

func (m *MockCognitiveService) RecordSymbol(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreateSymbolResultRequest) (*domain.CognitiveResultSymbol, error) {
	if m.recordSymbolFunc != nil {
		return m.recordSymbolFunc(ctx, userID, sessionID, req)
	}
	return &domain.CognitiveResultSymbol{ID: uuid.New(), SessionID: sessionID, Score: req.Score}, nil
}

func (m *MockCognitiveService) RecordPattern(ctx context.Context, userID, sessionID uuid.UUID, req *domain.CreatePatternResultRequest) (*domain.CognitiveResultPattern, error) {
	if m.recordPatternFunc != nil {
		return m.recordPatternFunc(ctx, userID, sessionID, req)
	}
	return &domain.CognitiveResultPattern{ID: uuid.New(), SessionID: sessionID, Score: req.Score}, nil
}

func (m *MockCognitiveService) DailyScores(ctx context.Context, userID uuid.UUID, from, to string) (*domain.DailyCognitiveScoresResponse, error) {
	if m.dailyScoresFunc != nil {
		return m.dailyScoresFunc(ctx, userID, from, to)
	}
	return &domain.DailyCognitiveScoresResponse{From: from, To: to, Scores: map[string]float64{}}, nil
}

func (m *MockCognitiveService) DailyComposites(ctx context.Context, userID uuid.UUID, from, to string) (map[string]float64, error) {
	return map[string]float64{}, nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	recordListFunc func(ctx context.Context, userID uuid.UUID, period string) (*domain.RecordListResponse, error)
	summaryFunc    func(ctx context.Context, userID uuid.UUID) (*domain.MypageSummaryResponse, error)
}

func (m *MockStatsService) RecordList(ctx context.Context, userID uuid.UUID, period string) (*domain.RecordListResponse, error) {
	if m.recordListFunc != nil {
		return m.recordListFunc(ctx, userID, period)
	}
	return &domain.RecordListResponse{Period: period}, nil
}

func (m *MockStatsService) Summary(ctx context.Context, userID uuid.UUID) (*domain.MypageSummaryResponse, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, userID)
	}
	return &domain.MypageSummaryResponse{}, nil
}

// MockDetailService is a mock implementation of DetailService
type MockDetailService struct {
	dateDetailFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.DateDetailResponse, error)
}

func (m *MockDetailService) DateDetail(ctx context.Context, userID uuid.UUID, date string) (*domain.DateDetailResponse, error) {
	if m.dateDetailFunc != nil {
		return m.dateDetailFunc(ctx, userID, date)
	}
	return &domain.DateDetailResponse{Date: date}, nil
}

// MockRecommendationService is a mock implementation of RecommendationService
type MockRecommendationService struct {
	recommendFunc func(ctx context.Context, userID uuid.UUID, date string) (*domain.RecommendationResponse, error)
}

func (m *MockRecommendationService) Recommend(ctx context.Context, userID uuid.UUID, date string) (*domain.RecommendationResponse, error) {
	if m.recommendFunc != nil {
		return m.recommendFunc(ctx, userID, date)
	}
	return &domain.RecommendationResponse{Date: date, Recommendation: "Keep a steady bedtime."}, nil
}
