package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/api/validation"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/service"
	"github.com/hanyul/sleepwise/pkg/problem"
)

type CognitiveHandler struct {
	service service.CognitiveService
}

func NewCognitiveHandler(service service.CognitiveService) *CognitiveHandler {
	return &CognitiveHandler{service: service}
}

// StartSession handles POST /v1/cognitive/sessions
// @Summary Start a cognitive test session
// @Tags cognitive
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.CreateSessionRequest false "Optional session metadata"
// @Success 201 {object} domain.SessionResponse "Session started"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cognitive/sessions [post]
func (h *CognitiveHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	// An empty body starts a bare session.
	var req domain.CreateSessionRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.StartSession(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to start session").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, session.ToResponse())
}

// EndSession handles POST /v1/cognitive/sessions/{sessionId}/end
// @Summary End a cognitive test session
// @Tags cognitive
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session UUID" format(uuid)
// @Success 200 {object} domain.SessionResponse "Ended session"
// @Failure 400 {object} problem.Problem "Malformed session ID"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cognitive/sessions/{sessionId}/end [post]
func (h *CognitiveHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		problem.BadRequest("Invalid session ID format").Write(w)
		return
	}

	session, err := h.service.EndSession(r.Context(), userID, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Session not found").Write(w)
			return
		}
		problem.InternalError("Failed to end session").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, session.ToResponse())
}

// RecordSRT handles POST /v1/cognitive/sessions/{sessionId}/results/srt
// @Summary Record a simple-reaction-time result
// @Tags cognitive
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session UUID" format(uuid)
// @Param request body domain.CreateSRTResultRequest true "Result data"
// @Success 201 {object} domain.CognitiveResultSRT "Result recorded"
// @Failure 400 {object} problem.Problem "Malformed session ID or body"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cognitive/sessions/{sessionId}/results/srt [post]
func (h *CognitiveHandler) RecordSRT(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionScope(w, r)
	if !ok {
		return
	}

	var req domain.CreateSRTResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.RecordSRT(r.Context(), userID, sessionID, &req)
	if err != nil {
		h.writeResultError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// RecordSymbol handles POST /v1/cognitive/sessions/{sessionId}/results/symbol
// @Summary Record a symbol-matching result
// @Tags cognitive
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session UUID" format(uuid)
// @Param request body domain.CreateSymbolResultRequest true "Result data"
// @Success 201 {object} domain.CognitiveResultSymbol "Result recorded"
// @Failure 400 {object} problem.Problem "Malformed session ID or body"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cognitive/sessions/{sessionId}/results/symbol [post]
func (h *CognitiveHandler) RecordSymbol(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionScope(w, r)
	if !ok {
		return
	}

	var req domain.CreateSymbolResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.RecordSymbol(r.Context(), userID, sessionID, &req)
	if err != nil {
		h.writeResultError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// RecordPattern handles POST /v1/cognitive/sessions/{sessionId}/results/pattern
// @Summary Record a pattern-memory result
// @Tags cognitive
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sessionId path string true "Session UUID" format(uuid)
// @Param request body domain.CreatePatternResultRequest true "Result data"
// @Success 201 {object} domain.CognitiveResultPattern "Result recorded"
// @Failure 400 {object} problem.Problem "Malformed session ID or body"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "Session not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cognitive/sessions/{sessionId}/results/pattern [post]
func (h *CognitiveHandler) RecordPattern(w http.ResponseWriter, r *http.Request) {
	userID, sessionID, ok := h.sessionScope(w, r)
	if !ok {
		return
	}

	var req domain.CreatePatternResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	result, err := h.service.RecordPattern(r.Context(), userID, sessionID, &req)
	if err != nil {
		h.writeResultError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// DailyScores handles GET /v1/cognitive/daily-scores
// @Summary Daily composite cognitive scores
// @Description Map each date in the range to the mean of its per-variant average scores. Dates without results are absent.
// @Tags cognitive
// @Produce json
// @Security BearerAuth
// @Param from query string true "Start date (inclusive)" format(date) example(2024-03-01)
// @Param to query string true "End date (inclusive)" format(date) example(2024-03-31)
// @Success 200 {object} domain.DailyCognitiveScoresResponse "Scores by date"
// @Failure 400 {object} problem.Problem "Invalid date range"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cognitive/daily-scores [get]
func (h *CognitiveHandler) DailyScores(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	response, err := h.service.DailyScores(r.Context(), userID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("from and to must be YYYY-MM-DD dates with from <= to").Write(w)
			return
		}
		problem.InternalError("Failed to compute daily scores").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *CognitiveHandler) sessionScope(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return uuid.Nil, uuid.Nil, false
	}

	sessionID, err := uuid.Parse(chi.URLParam(r, "sessionId"))
	if err != nil {
		problem.BadRequest("Invalid session ID format").Write(w)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, sessionID, true
}

func (h *CognitiveHandler) writeResultError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		problem.NotFound("Session not found").Write(w)
		return
	}
	problem.InternalError("Failed to record result").Write(w)
}
