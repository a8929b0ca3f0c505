package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hanyul/sleepwise/internal/api/validation"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/service"
	"github.com/hanyul/sleepwise/pkg/dateutil"
	"github.com/hanyul/sleepwise/pkg/problem"
)

type SleepRecordHandler struct {
	service service.SleepRecordService
}

func NewSleepRecordHandler(service service.SleepRecordService) *SleepRecordHandler {
	return &SleepRecordHandler{service: service}
}

// Create handles POST /v1/sleep-records
// @Summary Record a night's sleep
// @Description Create the sleep diary entry for a calendar date. The score is computed server-side. At most one record exists per date.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateSleepRecordRequest true "Sleep record data"
// @Success 201 {object} domain.SleepRecordResponse "Record created"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 409 {object} problem.Problem "A record already exists for this date"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [post]
func (h *SleepRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	var req domain.CreateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord):
			problem.Conflict("A sleep record already exists for this date").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("User not found").Write(w)
		default:
			problem.InternalError("Failed to create sleep record").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusCreated, record.ToResponse())
}

// Get handles GET /v1/sleep-records/{date}
// @Summary Get one date's sleep record
// @Tags sleep-records
// @Produce json
// @Security BearerAuth
// @Param date path string true "Calendar date" format(date) example(2024-03-10)
// @Success 200 {object} domain.SleepRecordResponse "Sleep record"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "No record for this date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{date} [get]
func (h *SleepRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if !dateutil.IsValid(date) {
		problem.BadRequest("Date must be YYYY-MM-DD").Write(w)
		return
	}

	record, err := h.service.GetByDate(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No sleep record for this date").Write(w)
			return
		}
		problem.InternalError("Failed to load sleep record").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, record.ToResponse())
}

// Update handles PATCH /v1/sleep-records/{date}
// @Summary Update one date's sleep record
// @Description Merge the supplied fields into the record. The score is always recomputed.
// @Tags sleep-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param date path string true "Calendar date" format(date) example(2024-03-10)
// @Param request body domain.UpdateSleepRecordRequest true "Fields to change"
// @Success 200 {object} domain.SleepRecordResponse "Updated record"
// @Failure 400 {object} problem.Problem "Malformed date or body"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "No record for this date"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{date} [patch]
func (h *SleepRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if !dateutil.IsValid(date) {
		problem.BadRequest("Date must be YYYY-MM-DD").Write(w)
		return
	}

	var req domain.UpdateSleepRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	record, err := h.service.Update(r.Context(), userID, date, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No sleep record for this date").Write(w)
			return
		}
		problem.InternalError("Failed to update sleep record").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, record.ToResponse())
}

// Delete handles DELETE /v1/sleep-records/{date}
// @Summary Delete one date's sleep record
// @Tags sleep-records
// @Produce json
// @Security BearerAuth
// @Param date path string true "Calendar date" format(date) example(2024-03-10)
// @Success 204 "Record deleted"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "No record for this date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records/{date} [delete]
func (h *SleepRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	date := chi.URLParam(r, "date")
	if !dateutil.IsValid(date) {
		problem.BadRequest("Date must be YYYY-MM-DD").Write(w)
		return
	}

	if err := h.service.Delete(r.Context(), userID, date); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No sleep record for this date").Write(w)
			return
		}
		problem.InternalError("Failed to delete sleep record").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /v1/sleep-records
// @Summary List sleep records
// @Description Fetch paginated sleep history, newest first. Filter by date range.
// @Tags sleep-records
// @Produce json
// @Security BearerAuth
// @Param from query string false "Start date (inclusive)" format(date) example(2024-03-01)
// @Param to query string false "End date (inclusive)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepRecordListResponse "Sleep records with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /sleep-records [get]
func (h *SleepRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		problem.InternalError("Failed to list sleep records").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.SleepRecordFilter, []problem.FieldError) {
	var fieldErrors []problem.FieldError
	filter := domain.SleepRecordFilter{
		Cursor: r.URL.Query().Get("cursor"),
	}

	if from := r.URL.Query().Get("from"); from != "" {
		if !dateutil.IsValid(from) {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "from", Message: "must be a YYYY-MM-DD date"})
		}
		filter.From = from
	}
	if to := r.URL.Query().Get("to"); to != "" {
		if !dateutil.IsValid(to) {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "to", Message: "must be a YYYY-MM-DD date"})
		}
		filter.To = to
	}
	if filter.From != "" && filter.To != "" && filter.From > filter.To {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "from", Message: "must not be after to"})
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "limit", Message: "must be a positive integer"})
		}
		filter.Limit = limit
	}

	if fieldErrors != nil {
		return domain.SleepRecordFilter{}, fieldErrors
	}
	return filter, nil
}
