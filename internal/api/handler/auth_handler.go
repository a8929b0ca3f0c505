package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hanyul/sleepwise/internal/api/validation"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/service"
	"github.com/hanyul/sleepwise/pkg/problem"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /v1/auth/login
// @Summary Social login
// @Description Log in with a Kakao or Google identity. Send either the OAuth authorization code or a provider access token. A first login creates the account.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.SocialLoginRequest true "Provider and credential"
// @Success 200 {object} domain.SocialLoginResponse "Token pair and user profile"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Provider rejected the credential"
// @Failure 403 {object} problem.Problem "Account is blocked"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.SocialLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	response, err := h.service.SocialLogin(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("Unsupported social provider").Write(w)
		case errors.Is(err, domain.ErrUnauthorized):
			problem.Unauthorized("Social login failed").Write(w)
		case errors.Is(err, domain.ErrUserBlacklisted):
			problem.Forbidden("Account is blocked").Write(w)
		default:
			problem.InternalError("Failed to log in").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Refresh handles POST /v1/auth/refresh
// @Summary Rotate tokens
// @Description Exchange a refresh token for a new token pair. The old refresh token is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RefreshRequest true "Refresh token"
// @Success 200 {object} domain.TokenPair "New token pair"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Invalid, expired, or revoked token"
// @Failure 403 {object} problem.Problem "Account is withdrawn"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.Refresh)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			problem.Unauthorized("Invalid or revoked refresh token").Write(w)
		case errors.Is(err, domain.ErrUserWithdrawn):
			problem.Forbidden("Account is withdrawn").Write(w)
		default:
			problem.InternalError("Failed to refresh tokens").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Logout handles POST /v1/auth/logout
// @Summary Log out
// @Description Revoke the refresh token for its remaining lifetime.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RefreshRequest true "Refresh token"
// @Success 204 "Logged out"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Invalid refresh token"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Logout(r.Context(), req.Refresh); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			problem.Unauthorized("Invalid refresh token").Write(w)
			return
		}
		problem.InternalError("Failed to log out").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Withdraw handles DELETE /v1/auth/withdraw
// @Summary Withdraw account
// @Description Mark the authenticated account withdrawn and revoke the supplied refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.RefreshRequest false "Refresh token to revoke"
// @Success 204 "Account withdrawn"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "Account not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/withdraw [delete]
func (h *AuthHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	// The body is optional here; withdrawal proceeds without a token
	// to revoke.
	var req domain.RefreshRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := h.service.Withdraw(r.Context(), userID, req.Refresh); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Account not found").Write(w)
			return
		}
		problem.InternalError("Failed to withdraw account").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /v1/auth/me
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.UserResponse "Profile"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "Account not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	user, err := h.service.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Account not found").Write(w)
			return
		}
		problem.InternalError("Failed to load profile").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateProfile handles PATCH /v1/auth/me
// @Summary Update profile
// @Description Partially update the authenticated profile. Only the fields present in the body are changed; gender, birth year, and MBTI are collected here after signup.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body domain.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.UserResponse "Updated profile"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 401 {object} problem.Problem "Missing or invalid access token"
// @Failure 404 {object} problem.Problem "Account not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /auth/me [patch]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		problem.Unauthorized("Missing authentication").Write(w)
		return
	}

	var req domain.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			problem.BadRequest("birth_year must not be after the current year").Write(w)
		case errors.Is(err, domain.ErrNotFound):
			problem.NotFound("Account not found").Write(w)
		default:
			problem.InternalError("Failed to update profile").Write(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
