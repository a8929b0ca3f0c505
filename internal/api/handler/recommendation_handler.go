package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/llm"
	"github.com/hanyul/sleepwise/internal/service"
	"github.com/hanyul/sleepwise/pkg/dateutil"
	"github.com/hanyul/sleepwise/pkg/problem"
)

type RecommendationHandler struct {
	service service.RecommendationService
}

func NewRecommendationHandler(service service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// Recommend handles GET /v1/recommendations/{date}
// @Summary Personalized sleep recommendation for a date
// @Description Generates advice from the date's sleep record and first cognitive results, cached for 24 hours.
// @Tags recommendations
// @Produce json
// @Security BearerAuth
// @Param date path string true "Record date" format(date) example(2024-03-15)
// @Success 200 {object} domain.RecommendationResponse "Recommendation text"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "No sleep record for the date"
// @Failure 502 {object} problem.Problem "Language model unavailable"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /recommendations/{date} [get]
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
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

	response, err := h.service.Recommend(r.Context(), userID, date)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Date must be in YYYY-MM-DD format").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("No sleep record for the requested date").Write(w)
		case errors.Is(err, llm.ErrOpenAIUnavailable),
			errors.Is(err, llm.ErrOpenAIRequest),
			errors.Is(err, llm.ErrOpenAIResponse):
			problem.BadGateway("Recommendation service is unavailable").Write(w)
		default:
			problem.InternalError("Failed to generate recommendation").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, response)
}
