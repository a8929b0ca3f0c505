package domain

import "time"

// DailyScore is one day bucket in the record list.
type DailyScore struct {
	Date           string  `json:"date" example:"2024-03-10"`
	SleepHours     float64 `json:"sleep_hours" example:"7.5"`
	SleepScore     float64 `json:"sleep_score" example:"88.0"`
	CognitiveScore float64 `json:"cognitive_score" example:"76.3"`
}

// WeeklyScore is one seven-day bucket in the record list. Week indexes
// count from the oldest span in the window and are preserved even when
// intermediate weeks have no data.
type WeeklyScore struct {
	Week                  int     `json:"week" example:"2"`
	StartDate             string  `json:"start_date" example:"2024-03-04"`
	EndDate               string  `json:"end_date" example:"2024-03-10"`
	TotalSleepHours       float64 `json:"total_sleep_hours" example:"49.5"`
	AverageSleepScore     float64 `json:"average_sleep_score" example:"84.2"`
	AverageCognitiveScore float64 `json:"average_cognitive_score" example:"71.0"`
}

// MonthlyScore is one calendar-month bucket in the record list.
type MonthlyScore struct {
	Month                 string  `json:"month" example:"2024-03"`
	TotalSleepHours       float64 `json:"total_sleep_hours" example:"208.3"`
	AverageSleepScore     float64 `json:"average_sleep_score" example:"81.7"`
	AverageCognitiveScore float64 `json:"average_cognitive_score" example:"69.4"`
}

// RecordListResponse wraps one granularity's buckets. Exactly one of the
// slices is populated, matching the requested period.
type RecordListResponse struct {
	Period string         `json:"period" example:"week"`
	Days   []DailyScore   `json:"days,omitempty"`
	Weeks  []WeeklyScore  `json:"weeks,omitempty"`
	Months []MonthlyScore `json:"months,omitempty"`
}

// SleepDayDetail is the per-date sleep half of a date detail.
type SleepDayDetail struct {
	Recorded        bool    `json:"recorded"`
	TotalSleepHours float64 `json:"total_sleep_hours" example:"7.5"`
	SleepScore      float64 `json:"sleep_score" example:"88.0"`
}

// SRTDayDetail averages all same-day SRT rows.
type SRTDayDetail struct {
	AverageScore  float64 `json:"average_score" example:"82.5"`
	ReactionAvgMs float64 `json:"reaction_avg_ms" example:"245.1"`
}

// SymbolDayDetail averages all same-day symbol rows; correct counts sum.
type SymbolDayDetail struct {
	AverageScore float64 `json:"average_score" example:"74.0"`
	CorrectTotal int     `json:"correct_total" example:"36"`
	AccuracyAvg  float64 `json:"accuracy_avg" example:"0.9"`
}

// PatternDayDetail averages pattern rows after keeping only the latest
// row per session.
type PatternDayDetail struct {
	AverageScore float64 `json:"average_score" example:"68.0"`
	CorrectTotal int     `json:"correct_total" example:"10"`
}

// CognitiveDayDetail is the per-date cognitive half of a date detail.
// TotalScore is the sum, not the average, of the three variant averages.
type CognitiveDayDetail struct {
	Recorded   bool             `json:"recorded"`
	SRT        SRTDayDetail     `json:"srt"`
	Symbol     SymbolDayDetail  `json:"symbol"`
	Pattern    PatternDayDetail `json:"pattern"`
	TotalScore float64          `json:"total_score" example:"224.5"`
}

// DetailGraph holds equal-length parallel series spanning the calendar
// month that contains the selected date. Days without data are
// zero-filled so charts stay contiguous.
type DetailGraph struct {
	SelectedDate    string    `json:"selected_date" example:"2024-03-10"`
	Dates           []string  `json:"dates"`
	SleepHours      []float64 `json:"sleep_hours"`
	SleepScores     []float64 `json:"sleep_scores"`
	CognitiveScores []float64 `json:"cognitive_scores"`
}

// DateDetailResponse is the response body for the single-date detail view.
type DateDetailResponse struct {
	Date      string             `json:"date" example:"2024-03-10"`
	Sleep     SleepDayDetail     `json:"sleep"`
	Cognitive CognitiveDayDetail `json:"cognitive"`
	Graph     DetailGraph        `json:"graph"`
}

// MypageSummaryResponse is the profile-page headline summary.
type MypageSummaryResponse struct {
	Nickname              string    `json:"nickname"`
	ProfileImg            *string   `json:"profile_img"`
	JoinedAt              time.Time `json:"joined_at"`
	TrackingDays          int       `json:"tracking_days" example:"42"`
	TotalSleepHours       float64   `json:"total_sleep_hours" example:"310.5"`
	AverageSleepScore     float64   `json:"average_sleep_score" example:"83.1"`
	AverageCognitiveScore float64   `json:"average_cognitive_score" example:"70.8"`
}
