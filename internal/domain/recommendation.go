package domain

// RecommendationContext is the data handed to the LLM for one date.
type RecommendationContext struct {
	Date           string   `json:"date"`
	SleepScore     int      `json:"sleep_score"`
	SleepDuration  int      `json:"sleep_duration_min"`
	Quality        int      `json:"subjective_quality"`
	SleepLatency   int      `json:"sleep_latency_min"`
	WakeCount      int      `json:"wake_count"`
	DisturbFactors []string `json:"disturb_factors"`

	// Per-variant scores for the day's first session; nil means the test
	// was not taken that day.
	SRTScore     *float64 `json:"srt_score,omitempty"`
	SymbolScore  *float64 `json:"symbol_score,omitempty"`
	PatternScore *float64 `json:"pattern_score,omitempty"`
}

// RecommendationResponse is the response body for the AI recommendation
// endpoint.
type RecommendationResponse struct {
	Date           string `json:"date" example:"2024-03-10"`
	Recommendation string `json:"recommendation"`
	Cached         bool   `json:"cached"`
}
