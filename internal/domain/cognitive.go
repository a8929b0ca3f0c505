package domain

import (
	"time"

	"github.com/google/uuid"
)

// CognitiveVariant is one of the three test kinds. All variants share a
// 0-100 score but carry different raw metrics.
type CognitiveVariant string

const (
	VariantSRT     CognitiveVariant = "srt"
	VariantSymbol  CognitiveVariant = "symbol"
	VariantPattern CognitiveVariant = "pattern"
)

// CognitiveSession is one test-taking occasion. A session owns zero or
// more result rows; duplicates of the same variant are tolerated and
// averaged defensively at read time.
type CognitiveSession struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_cognitive_sessions_user_started" json:"user_id"`
	StartedAt  time.Time  `gorm:"not null;index:idx_cognitive_sessions_user_started,sort:desc" json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	TestFormat *string    `gorm:"type:varchar(50)" json:"test_format,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CognitiveSession) TableName() string {
	return "cognitive_sessions"
}

// CognitiveResultSRT is a simple-reaction-time result.
type CognitiveResultSRT struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID     uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Score         float64   `gorm:"not null" json:"score"`
	ReactionAvgMs float64   `gorm:"not null" json:"reaction_avg_ms"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	Session CognitiveSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CognitiveResultSRT) TableName() string {
	return "cognitive_results_srt"
}

// CognitiveResultSymbol is a symbol-matching result.
type CognitiveResultSymbol struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID      uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Score          float64   `gorm:"not null" json:"score"`
	SymbolCorrect  int       `gorm:"not null" json:"symbol_correct"`
	SymbolAccuracy float64   `gorm:"not null" json:"symbol_accuracy"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Session CognitiveSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CognitiveResultSymbol) TableName() string {
	return "cognitive_results_symbol"
}

// CognitiveResultPattern is a pattern-memory result.
type CognitiveResultPattern struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SessionID      uuid.UUID `gorm:"type:uuid;not null;index" json:"session_id"`
	Score          float64   `gorm:"not null" json:"score"`
	PatternCorrect int       `gorm:"not null" json:"pattern_correct"`
	PatternTimeSec float64   `gorm:"not null" json:"pattern_time_sec"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	Session CognitiveSession `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CognitiveResultPattern) TableName() string {
	return "cognitive_results_pattern"
}

// CreateSessionRequest is the request body for starting a cognitive session.
type CreateSessionRequest struct {
	// Optional test format identifier shown to the client
	TestFormat *string `json:"test_format,omitempty" validate:"omitempty,max=50"`
}

// CreateSRTResultRequest records a simple-reaction-time result for a session.
type CreateSRTResultRequest struct {
	// Normalized score, 0-100
	Score float64 `json:"score" validate:"min=0,max=100" example:"82.5"`
	// Average reaction time in milliseconds
	ReactionAvgMs float64 `json:"reaction_avg_ms" validate:"min=0" example:"243.7"`
}

// CreateSymbolResultRequest records a symbol-matching result for a session.
type CreateSymbolResultRequest struct {
	Score float64 `json:"score" validate:"min=0,max=100" example:"74.0"`
	// Number of correct matches
	SymbolCorrect int `json:"symbol_correct" validate:"min=0" example:"18"`
	// Accuracy ratio, 0-1
	SymbolAccuracy float64 `json:"symbol_accuracy" validate:"min=0,max=1" example:"0.9"`
}

// CreatePatternResultRequest records a pattern-memory result for a session.
type CreatePatternResultRequest struct {
	Score float64 `json:"score" validate:"min=0,max=100" example:"68.0"`
	// Number of correctly recalled patterns
	PatternCorrect int `json:"pattern_correct" validate:"min=0" example:"5"`
	// Total time spent in seconds
	PatternTimeSec float64 `json:"pattern_time_sec" validate:"min=0" example:"41.2"`
}

// SessionResponse is the response body for session endpoints.
type SessionResponse struct {
	ID         uuid.UUID  `json:"id"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	TestFormat *string    `json:"test_format,omitempty"`
}

func (s *CognitiveSession) ToResponse() SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		StartedAt:  s.StartedAt,
		EndedAt:    s.EndedAt,
		TestFormat: s.TestFormat,
	}
}

// DailyCognitiveScoresResponse maps calendar dates to composite scores.
// Dates without any contributing result are absent, never zero.
type DailyCognitiveScoresResponse struct {
	From   string             `json:"from" example:"2024-03-01"`
	To     string             `json:"to" example:"2024-03-31"`
	Scores map[string]float64 `json:"scores"`
}
