package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/domain"
)

// authedRequest builds a request carrying the authenticated user ID the
// way the auth middleware would.
func authedRequest(method, target string, userID uuid.UUID, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req.WithContext(auth.WithUserID(req.Context(), userID))
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockAuthService
		wantStatusCode int
	}{
		{
			name:           "valid kakao login with code",
			body:           `{"provider": "kakao", "code": "auth-code"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "valid google login with access token",
			body:           `{"provider": "google", "access_token": "provider-token"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown provider rejected by validation",
			body:           `{"provider": "naver", "code": "auth-code"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "missing credential",
			body:           `{"provider": "kakao"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "both code and access token",
			body:           `{"provider": "kakao", "code": "auth-code", "access_token": "provider-token"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "provider rejected the code",
			body: `{"provider": "kakao", "code": "expired-code"}`,
			mockService: &MockAuthService{
				socialLoginFunc: func(ctx context.Context, req *domain.SocialLoginRequest) (*domain.SocialLoginResponse, error) {
					return nil, domain.ErrUnauthorized
				},
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "blacklisted account",
			body: `{"provider": "kakao", "code": "auth-code"}`,
			mockService: &MockAuthService{
				socialLoginFunc: func(ctx context.Context, req *domain.SocialLoginRequest) (*domain.SocialLoginResponse, error) {
					return nil, domain.ErrUserBlacklisted
				},
			},
			wantStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Login(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Login() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.SocialLoginResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Errorf("Failed to decode response: %v", err)
				}
				if response.Tokens.AccessToken == "" {
					t.Error("Expected access token in response")
				}
			}
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockAuthService
		wantStatusCode int
	}{
		{
			name:           "valid rotation",
			body:           `{"refresh": "old-refresh"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing token",
			body:           `{}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "revoked token",
			body: `{"refresh": "revoked"}`,
			mockService: &MockAuthService{
				refreshFunc: func(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
					return nil, domain.ErrUnauthorized
				},
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name: "withdrawn account",
			body: `{"refresh": "old-refresh"}`,
			mockService: &MockAuthService{
				refreshFunc: func(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
					return nil, domain.ErrUserWithdrawn
				},
			},
			wantStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/refresh", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			handler.Refresh(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Refresh() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", bytes.NewBufferString(`{"refresh": "old-refresh"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Logout() status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestAuthHandler_Withdraw(t *testing.T) {
	userID := uuid.New()

	var gotUserID uuid.UUID
	handler := NewAuthHandler(&MockAuthService{
		withdrawFunc: func(ctx context.Context, uid uuid.UUID, refreshToken string) error {
			gotUserID = uid
			return nil
		},
	})

	req := authedRequest(http.MethodDelete, "/v1/auth/withdraw", userID, `{"refresh": "old-refresh"}`)
	rec := httptest.NewRecorder()

	handler.Withdraw(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("Withdraw() status = %d, want %d, body: %s", rec.Code, http.StatusNoContent, rec.Body.String())
	}
	if gotUserID != userID {
		t.Errorf("Withdraw() user = %s, want %s", gotUserID, userID)
	}
}

func TestAuthHandler_WithdrawWithoutAuth(t *testing.T) {
	handler := NewAuthHandler(&MockAuthService{})

	req := httptest.NewRequest(http.MethodDelete, "/v1/auth/withdraw", nil)
	rec := httptest.NewRecorder()

	handler.Withdraw(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("Withdraw() status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    *MockAuthService
		wantStatusCode int
	}{
		{
			name:           "onboarding fields",
			body:           `{"gender": "female", "birth_year": 1996, "mbti": "INFP"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "nickname only",
			body:           `{"nickname": "luna"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown gender",
			body:           `{"gender": "other"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "malformed mbti",
			body:           `{"mbti": "XXXX"}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "birth year before 1900",
			body:           `{"birth_year": 1850}`,
			mockService:    &MockAuthService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name: "birth year in the future",
			body: `{"birth_year": 2090}`,
			mockService: &MockAuthService{
				updateProfileFunc: func(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
					return nil, domain.ErrInvalidInput
				},
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "account not found",
			body: `{"nickname": "luna"}`,
			mockService: &MockAuthService{
				updateProfileFunc: func(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(tt.mockService)

			req := authedRequest(http.MethodPatch, "/v1/auth/me", uuid.New(), tt.body)
			rec := httptest.NewRecorder()

			handler.UpdateProfile(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("UpdateProfile() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestAuthHandler_UpdateProfileAppliesFields(t *testing.T) {
	userID := uuid.New()
	var captured *domain.UpdateProfileRequest
	handler := NewAuthHandler(&MockAuthService{
		updateProfileFunc: func(ctx context.Context, id uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
			captured = req
			gender := *req.Gender
			return &domain.UserResponse{ID: id, Nickname: "hana", Gender: &gender, BirthYear: req.BirthYear, MBTI: req.MBTI}, nil
		},
	})

	req := authedRequest(http.MethodPatch, "/v1/auth/me", userID, `{"gender": "male", "birth_year": 1990, "mbti": "ENTP"}`)
	rec := httptest.NewRecorder()

	handler.UpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("UpdateProfile() status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil || captured.Gender == nil || *captured.Gender != "male" {
		t.Fatalf("service did not receive gender: %+v", captured)
	}
	if captured.Nickname != nil {
		t.Error("omitted nickname should reach the service as nil")
	}

	var response domain.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.BirthYear == nil || *response.BirthYear != 1990 || response.MBTI == nil || *response.MBTI != "ENTP" {
		t.Errorf("UpdateProfile() response = %+v", response)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	userID := uuid.New()
	handler := NewAuthHandler(&MockAuthService{})

	req := authedRequest(http.MethodGet, "/v1/auth/me", userID, "")
	rec := httptest.NewRecorder()

	handler.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Me() status = %d, want %d, body: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var response domain.UserResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.ID != userID {
		t.Errorf("Me() user = %s, want %s", response.ID, userID)
	}
}
