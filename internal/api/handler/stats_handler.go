package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/service"
	"github.com/hanyul/sleepwise/pkg/dateutil"
	"github.com/hanyul/sleepwise/pkg/problem"
)

type StatsHandler struct {
	stats  service.StatsService
	detail service.DetailService
}

func NewStatsHandler(stats service.StatsService, detail service.DetailService) *StatsHandler {
	return &StatsHandler{stats: stats, detail: detail}
}

// RecordList handles GET /v1/records
// @Summary Aggregated sleep records
// @Description Buckets the caller's history by period: daily points over the last 90 days, four weekly spans, or the last 12 calendar months.
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param period query string true "Aggregation period" Enums(day, week, month)
// @Success 200 {object} domain.RecordListResponse "Aggregated buckets"
// @Failure 400 {object} problem.Problem "Unknown period"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "No records in range"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records [get]
func (h *StatsHandler) RecordList(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	period := r.URL.Query().Get("period")

	response, err := h.stats.RecordList(r.Context(), userID, period)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("period must be one of day, week, month").Write(w)
		case errors.Is(err, domain.ErrNoRecordsInRange):
			problem.NotFound("No records in the requested range").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		default:
			problem.InternalError("Failed to aggregate records").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// DateDetail handles GET /v1/records/{date}
// @Summary Single-day sleep and cognitive detail
// @Description Combines the day's sleep record, per-variant cognitive averages, and a month-wide graph series around the date.
// @Tags records
// @Produce json
// @Security BearerAuth
// @Param date path string true "Record date" format(date) example(2024-03-15)
// @Success 200 {object} domain.DateDetailResponse "Day detail"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "No data for the date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /records/{date} [get]
func (h *StatsHandler) DateDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if !dateutil.IsValid(date) {
		problem.BadRequest("Date must be in YYYY-MM-DD format").Write(w)
		return
	}

	response, err := h.detail.DateDetail(r.Context(), userID, date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Date must be in YYYY-MM-DD format").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("No data for the requested date").Write(w)
		default:
			problem.InternalError("Failed to load day detail").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Summary handles GET /v1/mypage/summary
// @Summary Profile-page headline summary
// @Tags mypage
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.MypageSummaryResponse "Whole-history summary"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /mypage/summary [get]
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	response, err := h.stats.Summary(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build summary").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
