package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"gorm.io/gorm"
)

// SRTRow is one SRT result scoped to its owning user via the session
// join. Results are bucketed into calendar dates by CreatedAt.
type SRTRow struct {
	SessionID     uuid.UUID
	Score         float64
	ReactionAvgMs float64
	CreatedAt     time.Time
}

// SymbolRow is one symbol result scoped to its owning user.
type SymbolRow struct {
	SessionID      uuid.UUID
	Score          float64
	SymbolCorrect  int
	SymbolAccuracy float64
	CreatedAt      time.Time
}

// PatternRow is one pattern result scoped to its owning user.
type PatternRow struct {
	SessionID      uuid.UUID
	Score          float64
	PatternCorrect int
	PatternTimeSec float64
	CreatedAt      time.Time
}

type CognitiveRepository interface {
	CreateSession(ctx context.Context, session *domain.CognitiveSession) error
	GetSession(ctx context.Context, userID, id uuid.UUID) (*domain.CognitiveSession, error)
	EndSession(ctx context.Context, userID, id uuid.UUID, endedAt time.Time) error
	CreateSRTResult(ctx context.Context, result *domain.CognitiveResultSRT) error
	CreateSymbolResult(ctx context.Context, result *domain.CognitiveResultSymbol) error
	CreatePatternResult(ctx context.Context, result *domain.CognitiveResultPattern) error
	ListSRTInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SRTRow, error)
	ListSymbolInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SymbolRow, error)
	ListPatternInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]PatternRow, error)
}

type cognitiveRepository struct {
	db *gorm.DB
}

func NewCognitiveRepository(db *gorm.DB) CognitiveRepository {
	return &cognitiveRepository{db: db}
}

func (r *cognitiveRepository) CreateSession(ctx context.Context, session *domain.CognitiveSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *cognitiveRepository) GetSession(ctx context.Context, userID, id uuid.UUID) (*domain.CognitiveSession, error) {
	var session domain.CognitiveSession
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *cognitiveRepository) EndSession(ctx context.Context, userID, id uuid.UUID, endedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&domain.CognitiveSession{}).
		Where("user_id = ? AND id = ?", userID, id).
		Update("ended_at", endedAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *cognitiveRepository) CreateSRTResult(ctx context.Context, result *domain.CognitiveResultSRT) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *cognitiveRepository) CreateSymbolResult(ctx context.Context, result *domain.CognitiveResultSymbol) error {
	return r.db.WithContext(ctx).Create(result).Error
}

func (r *cognitiveRepository) CreatePatternResult(ctx context.Context, result *domain.CognitiveResultPattern) error {
	return r.db.WithContext(ctx).Create(result).Error
}

// rangeQuery joins a result table with its sessions to scope rows to
// one user. Rows are filtered by the result's own creation timestamp;
// the half-open bounds [from, to) follow dateutil.DayBounds, and zero
// times are unbounded.
func (r *cognitiveRepository) rangeQuery(ctx context.Context, table string, userID uuid.UUID, from, to time.Time) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table(table+" AS r").
		Joins("JOIN cognitive_sessions s ON s.id = r.session_id").
		Where("s.user_id = ?", userID).
		Order("r.created_at ASC")
	if !from.IsZero() {
		query = query.Where("r.created_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("r.created_at < ?", to)
	}
	return query
}

func (r *cognitiveRepository) ListSRTInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SRTRow, error) {
	var rows []SRTRow
	err := r.rangeQuery(ctx, "cognitive_results_srt", userID, from, to).
		Select("r.session_id, r.score, r.reaction_avg_ms, r.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cognitiveRepository) ListSymbolInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]SymbolRow, error) {
	var rows []SymbolRow
	err := r.rangeQuery(ctx, "cognitive_results_symbol", userID, from, to).
		Select("r.session_id, r.score, r.symbol_correct, r.symbol_accuracy, r.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cognitiveRepository) ListPatternInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]PatternRow, error) {
	var rows []PatternRow
	err := r.rangeQuery(ctx, "cognitive_results_pattern", userID, from, to).
		Select("r.session_id, r.score, r.pattern_correct, r.pattern_time_sec, r.created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
