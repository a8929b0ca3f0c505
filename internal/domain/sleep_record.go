package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// SleepRecord is one night's sleep diary entry. At most one exists per
// (user, date); the unique index closes the insert race that an
// application-level pre-check alone would leave open.
type SleepRecord struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sleep_records_user_date" json:"user_id"`
	Date              string    `gorm:"type:date;not null;uniqueIndex:idx_sleep_records_user_date" json:"date"`
	SleepDuration     int       `gorm:"not null" json:"sleep_duration"`
	SubjectiveQuality int       `gorm:"type:smallint;not null" json:"subjective_quality"`
	SleepLatency      int       `gorm:"not null" json:"sleep_latency"`
	WakeCount         int       `gorm:"not null" json:"wake_count"`
	DisturbFactors    []string  `gorm:"type:jsonb;serializer:json" json:"disturb_factors"`
	Memo              string    `gorm:"type:text" json:"memo"`
	Score             int       `gorm:"type:smallint;not null" json:"score"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// CreateSleepRecordRequest is the request body for creating a sleep record.
// @Description One sleep diary entry for a calendar date.
type CreateSleepRecordRequest struct {
	// Calendar date of the sleep (YYYY-MM-DD)
	Date string `json:"date" validate:"required,dateformat" example:"2024-03-10"`
	// Total sleep duration in minutes
	SleepDuration int `json:"sleep_duration" validate:"min=0,max=1440" example:"480"`
	// Subjective sleep quality, ordinal 0 (worst) to 4 (best)
	SubjectiveQuality int `json:"subjective_quality" validate:"min=0,max=4" example:"3"`
	// Minutes taken to fall asleep
	SleepLatency int `json:"sleep_latency" validate:"min=0" example:"10"`
	// Number of times woken during the night
	WakeCount int `json:"wake_count" validate:"min=0" example:"0"`
	// Free-text disturbance labels (caffeine, noise, ...)
	DisturbFactors []string `json:"disturb_factors" validate:"dive,max=255"`
	// Optional free-text memo
	Memo string `json:"memo,omitempty"`
}

// UpdateSleepRecordRequest is the request body for updating a sleep record.
// Nil fields are left unchanged; the score is always recomputed from the
// merged fields.
type UpdateSleepRecordRequest struct {
	SleepDuration     *int      `json:"sleep_duration,omitempty" validate:"omitempty,min=0,max=1440"`
	SubjectiveQuality *int      `json:"subjective_quality,omitempty" validate:"omitempty,min=0,max=4"`
	SleepLatency      *int      `json:"sleep_latency,omitempty" validate:"omitempty,min=0"`
	WakeCount         *int      `json:"wake_count,omitempty" validate:"omitempty,min=0"`
	DisturbFactors    *[]string `json:"disturb_factors,omitempty" validate:"omitempty,dive,max=255"`
	Memo              *string   `json:"memo,omitempty"`
}

// SleepRecordResponse is the response body for sleep record endpoints.
type SleepRecordResponse struct {
	ID                uuid.UUID `json:"id"`
	Date              string    `json:"date" example:"2024-03-10"`
	SleepDuration     int       `json:"sleep_duration" example:"480"`
	TotalSleepHours   float64   `json:"total_sleep_hours" example:"8.0"`
	SubjectiveQuality int       `json:"subjective_quality" example:"3"`
	SleepLatency      int       `json:"sleep_latency" example:"10"`
	WakeCount         int       `json:"wake_count" example:"0"`
	DisturbFactors    []string  `json:"disturb_factors"`
	Memo              string    `json:"memo,omitempty"`
	Score             int       `json:"score" example:"95"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (r *SleepRecord) ToResponse() SleepRecordResponse {
	factors := r.DisturbFactors
	if factors == nil {
		factors = []string{}
	}
	return SleepRecordResponse{
		ID:                r.ID,
		Date:              r.Date,
		SleepDuration:     r.SleepDuration,
		TotalSleepHours:   math.Round(float64(r.SleepDuration)/60*10) / 10,
		SubjectiveQuality: r.SubjectiveQuality,
		SleepLatency:      r.SleepLatency,
		WakeCount:         r.WakeCount,
		DisturbFactors:    factors,
		Memo:              r.Memo,
		Score:             r.Score,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

// SleepRecordListResponse is the response body for listing sleep records.
type SleepRecordListResponse struct {
	Data       []SleepRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains cursor pagination metadata.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more"`
}

// SleepRecordFilter contains filter parameters for listing sleep records.
type SleepRecordFilter struct {
	From   string
	To     string
	Limit  int
	Cursor string
}
