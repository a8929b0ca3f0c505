package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/llm"
)

func TestRecommendationHandler_Recommend(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		date           string
		mockService    *MockRecommendationService
		wantStatusCode int
	}{
		{
			name: "fresh recommendation",
			date: "2024-03-10",
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, uid uuid.UUID, date string) (*domain.RecommendationResponse, error) {
					return &domain.RecommendationResponse{
						Date:           date,
						Recommendation: "Cut caffeine after 2pm.",
						Cached:         false,
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "malformed date",
			date:           "next-tuesday",
			mockService:    &MockRecommendationService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "no sleep record",
			date: "2024-03-11",
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, uid uuid.UUID, date string) (*domain.RecommendationResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "model not configured",
			date: "2024-03-10",
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, uid uuid.UUID, date string) (*domain.RecommendationResponse, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name: "model request failed",
			date: "2024-03-10",
			mockService: &MockRecommendationService{
				recommendFunc: func(ctx context.Context, uid uuid.UUID, date string) (*domain.RecommendationResponse, error) {
					return nil, llm.ErrOpenAIRequest
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewRecommendationHandler(tt.mockService)

			req := authedRequest(http.MethodGet, "/v1/recommendations/"+tt.date, userID, "")
			req = withDateParam(req, tt.date)
			rec := httptest.NewRecorder()

			handler.Recommend(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Recommend() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.RecommendationResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if response.Recommendation == "" {
					t.Error("Expected non-empty recommendation text")
				}
			}
		})
	}
}
