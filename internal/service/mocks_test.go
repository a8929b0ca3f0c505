package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/repository"
	"github.com/hanyul/sleepwise/internal/social"
	"github.com/hanyul/sleepwise/pkg/pagination"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users       map[uuid.UUID]*domain.User
	blacklisted map[uuid.UUID]bool
	err         error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:       make(map[uuid.UUID]*domain.User),
		blacklisted: make(map[uuid.UUID]bool),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetBySocial(ctx context.Context, socialType domain.SocialType, socialID string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.SocialType == socialType && user.SocialID == socialID {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) IsBlacklisted(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.blacklisted[id], nil
}

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records map[uuid.UUID]*domain.SleepRecord
	err     error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{
		records: make(map[uuid.UUID]*domain.SleepRecord),
	}
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.records {
		if existing.UserID == record.UserID && existing.Date == record.Date {
			return domain.ErrDuplicateRecord
		}
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[id]
	if !ok || record.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockSleepRecordRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, record := range m.records {
		if record.UserID == userID && record.Date == date {
			return record, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockSleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	record, ok := m.records[id]
	if !ok || record.UserID != userID {
		return domain.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepRecord
	for _, record := range m.records {
		if record.UserID != userID {
			continue
		}
		if filter.From != "" && record.Date < filter.From {
			continue
		}
		if filter.To != "" && record.Date > filter.To {
			continue
		}
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].ID.String() > result[j].ID.String()
	})
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			var after []domain.SleepRecord
			for _, record := range result {
				if record.Date < cursor.Date || (record.Date == cursor.Date && record.ID.String() < cursor.ID.String()) {
					after = append(after, record)
				}
			}
			result = after
		}
	}
	limit := pagination.NormalizeLimit(filter.Limit)
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockSleepRecordRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to string) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepRecord
	for _, record := range m.records {
		if record.UserID != userID {
			continue
		}
		if from != "" && record.Date < from {
			continue
		}
		if to != "" && record.Date > to {
			continue
		}
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result, nil
}

func (m *MockSleepRecordRepository) Summary(ctx context.Context, userID uuid.UUID) (*repository.SleepSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	summary := &repository.SleepSummary{}
	totalScore := 0
	for _, record := range m.records {
		if record.UserID != userID {
			continue
		}
		summary.TrackingDays++
		summary.TotalSleepMinutes += record.SleepDuration
		totalScore += record.Score
	}
	if summary.TrackingDays > 0 {
		summary.AverageScore = float64(totalScore) / float64(summary.TrackingDays)
	}
	return summary, nil
}

// MockCognitiveRepository is a mock implementation of CognitiveRepository
type MockCognitiveRepository struct {
	sessions map[uuid.UUID]*domain.CognitiveSession
	srt      map[uuid.UUID][]repository.SRTRow
	symbol   map[uuid.UUID][]repository.SymbolRow
	pattern  map[uuid.UUID][]repository.PatternRow
	err      error
}

func NewMockCognitiveRepository() *MockCognitiveRepository {
	return &MockCognitiveRepository{
		sessions: make(map[uuid.UUID]*domain.CognitiveSession),
		srt:      make(map[uuid.UUID][]repository.SRTRow),
		symbol:   make(map[uuid.UUID][]repository.SymbolRow),
		pattern:  make(map[uuid.UUID][]repository.PatternRow),
	}
}

func (m *MockCognitiveRepository) CreateSession(ctx context.Context, session *domain.CognitiveSession) error {
	if m.err != nil {
		return m.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	m.sessions[session.ID] = session
	return nil
}

func (m *MockCognitiveRepository) GetSession(ctx context.Context, userID, id uuid.UUID) (*domain.CognitiveSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	session, ok := m.sessions[id]
	if !ok || session.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

func (m *MockCognitiveRepository) EndSession(ctx context.Context, userID, id uuid.UUID, endedAt time.Time) error {
	if m.err != nil {
		return m.err
	}
	session, ok := m.sessions[id]
	if !ok || session.UserID != userID {
		return domain.ErrNotFound
	}
	session.EndedAt = &endedAt
	return nil
}

func (m *MockCognitiveRepository) CreateSRTResult(ctx context.Context, result *domain.CognitiveResultSRT) error {
	if m.err != nil {
		return m.err
	}
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	result.CreatedAt = time.Now()
	session := m.sessions[result.SessionID]
	m.srt[session.UserID] = append(m.srt[session.UserID], repository.SRTRow{
		SessionID:     result.SessionID,
		Score:         result.Score,
		ReactionAvgMs: result.ReactionAvgMs,
		CreatedAt:     result.CreatedAt,
	})
	return nil
}

func (m *MockCognitiveRepository) CreateSymbolResult(ctx context.Context, result *domain.CognitiveResultSymbol) error {
	if m.err != nil {
		return m.err
	}
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	result.CreatedAt = time.Now()
	session := m.sessions[result.SessionID]
	m.symbol[session.UserID] = append(m.symbol[session.UserID], repository.SymbolRow{
		SessionID:      result.SessionID,
		Score:          result.Score,
		SymbolCorrect:  result.SymbolCorrect,
		SymbolAccuracy: result.SymbolAccuracy,
		CreatedAt:      result.CreatedAt,
	})
	return nil
}

func (m *MockCognitiveRepository) CreatePatternResult(ctx context.Context, result *domain.CognitiveResultPattern) error {
	if m.err != nil {
		return m.err
	}
	if result.ID == uuid.Nil {
		result.ID = uuid.New()
	}
	result.CreatedAt = time.Now()
	session := m.sessions[result.SessionID]
	m.pattern[session.UserID] = append(m.pattern[session.UserID], repository.PatternRow{
		SessionID:      result.SessionID,
		Score:          result.Score,
		PatternCorrect: result.PatternCorrect,
		PatternTimeSec: result.PatternTimeSec,
		CreatedAt:      result.CreatedAt,
	})
	return nil
}

func inMockRange(t, from, to time.Time) bool {
	if !from.IsZero() && t.Before(from) {
		return false
	}
	if !to.IsZero() && !t.Before(to) {
		return false
	}
	return true
}

func (m *MockCognitiveRepository) ListSRTInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]repository.SRTRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var rows []repository.SRTRow
	for _, row := range m.srt[userID] {
		if inMockRange(row.CreatedAt, from, to) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return rows, nil
}

func (m *MockCognitiveRepository) ListSymbolInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]repository.SymbolRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var rows []repository.SymbolRow
	for _, row := range m.symbol[userID] {
		if inMockRange(row.CreatedAt, from, to) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return rows, nil
}

func (m *MockCognitiveRepository) ListPatternInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]repository.PatternRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var rows []repository.PatternRow
	for _, row := range m.pattern[userID] {
		if inMockRange(row.CreatedAt, from, to) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].CreatedAt.Before(rows[j].CreatedAt) })
	return rows, nil
}

// MockTokenRepository is a mock implementation of TokenRepository
type MockTokenRepository struct {
	blacklisted map[string]bool
	err         error
}

func NewMockTokenRepository() *MockTokenRepository {
	return &MockTokenRepository{blacklisted: make(map[string]bool)}
}

func (m *MockTokenRepository) BlacklistRefresh(ctx context.Context, token string, ttl time.Duration) error {
	if m.err != nil {
		return m.err
	}
	m.blacklisted[token] = true
	return nil
}

func (m *MockTokenRepository) IsRefreshBlacklisted(ctx context.Context, token string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.blacklisted[token], nil
}

// MockRecommendationCache is a mock implementation of RecommendationCache
type MockRecommendationCache struct {
	entries map[string]string
	getErr  error
	setErr  error
}

func NewMockRecommendationCache() *MockRecommendationCache {
	return &MockRecommendationCache{entries: make(map[string]string)}
}

func (m *MockRecommendationCache) Get(ctx context.Context, userID uuid.UUID, date string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.entries[userID.String()+":"+date], nil
}

func (m *MockRecommendationCache) Set(ctx context.Context, userID uuid.UUID, date, text string, ttl time.Duration) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.entries[userID.String()+":"+date] = text
	return nil
}

// MockRecommendationLLM is a mock implementation of llm.RecommendationLLM
type MockRecommendationLLM struct {
	text  string
	err   error
	calls int
}

func (m *MockRecommendationLLM) GenerateRecommendation(ctx context.Context, recCtx *domain.RecommendationContext) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

// MockSocialClient is a mock implementation of social.Client
type MockSocialClient struct {
	token       string
	info        *social.UserInfo
	exchangeErr error
	fetchErr    error
}

func (m *MockSocialClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	if m.exchangeErr != nil {
		return "", m.exchangeErr
	}
	return m.token, nil
}

func (m *MockSocialClient) FetchUserInfo(ctx context.Context, accessToken string) (*social.UserInfo, error) {
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	return m.info, nil
}

// MockSocialClients returns the same client for every supported provider.
type MockSocialClients struct {
	client social.Client
}

func (m *MockSocialClients) For(p social.Provider) (social.Client, error) {
	switch p {
	case social.ProviderKakao, social.ProviderGoogle:
		return m.client, nil
	default:
		return nil, social.ErrUnsupportedProvider
	}
}

func srtRow(sessionID uuid.UUID, score float64, createdAt time.Time) repository.SRTRow {
	return repository.SRTRow{SessionID: sessionID, Score: score, CreatedAt: createdAt}
}

func strPtr(s string) *string {
	return &s
}

func intPtr(n int) *int {
	return &n
}
