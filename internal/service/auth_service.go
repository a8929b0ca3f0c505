package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hanyul/sleepwise/internal/auth"
	"github.com/hanyul/sleepwise/internal/domain"
	"github.com/hanyul/sleepwise/internal/repository"
	"github.com/hanyul/sleepwise/internal/social"
)

// SocialClients resolves a provider to its OAuth client. Satisfied by
// *social.Clients.
type SocialClients interface {
	For(p social.Provider) (social.Client, error)
}

type AuthService interface {
	// SocialLogin exchanges a provider code or token for an app token
	// pair, creating the account on first login.
	SocialLogin(ctx context.Context, req *domain.SocialLoginRequest) (*domain.SocialLoginResponse, error)
	// Refresh rotates a refresh token, blacklisting the old one.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
	// Logout blacklists the refresh token for its remaining lifetime.
	Logout(ctx context.Context, refreshToken string) error
	// Withdraw marks the account withdrawn and revokes the token.
	Withdraw(ctx context.Context, userID uuid.UUID, refreshToken string) error
	Me(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error)
	// UpdateProfile applies a partial profile update; nil request
	// fields are left as they are.
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error)
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	tokens    *auth.TokenManager
	clients   SocialClients
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, tokens *auth.TokenManager, clients SocialClients) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		tokens:    tokens,
		clients:   clients,
	}
}

func (s *authService) SocialLogin(ctx context.Context, req *domain.SocialLoginRequest) (*domain.SocialLoginResponse, error) {
	provider := social.Provider(req.Provider)
	client, err := s.clients.For(provider)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	accessToken := req.AccessToken
	if accessToken == "" {
		accessToken, err = client.ExchangeCode(ctx, req.Code)
		if err != nil {
			return nil, domain.ErrUnauthorized
		}
	}

	info, err := client.FetchUserInfo(ctx, accessToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.reconcileUser(ctx, provider, info)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.IssuePair(user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.SocialLoginResponse{
		Tokens: *pair,
		User:   user.ToResponse(),
	}, nil
}

// reconcileUser finds or creates the account for a provider identity.
// Blacklisted accounts are refused. A withdrawn account's social id is
// neutralized so the provider identity can be bound to a fresh account,
// keeping the old row for audit.
func (s *authService) reconcileUser(ctx context.Context, provider social.Provider, info *social.UserInfo) (*domain.User, error) {
	socialType := socialTypeOf(provider)
	now := time.Now()

	user, err := s.userRepo.GetBySocial(ctx, socialType, info.SocialID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	if user != nil {
		blacklisted, err := s.userRepo.IsBlacklisted(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if blacklisted {
			return nil, domain.ErrUserBlacklisted
		}

		if user.Status != domain.UserStatusWithdrawn {
			user.Email = info.Email
			user.Nickname = info.Nickname
			user.ProfileImg = info.ProfileImg
			user.LastLoginAt = &now
			if err := s.userRepo.Update(ctx, user); err != nil {
				return nil, err
			}
			return user, nil
		}

		// Free the (social_type, social_id) slot held by the withdrawn
		// row before creating the replacement account.
		user.SocialID = fmt.Sprintf("%s_withdrawn_%d", info.SocialID, now.Unix())
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	fresh := &domain.User{
		SocialType:  socialType,
		SocialID:    info.SocialID,
		Email:       info.Email,
		Nickname:    info.Nickname,
		ProfileImg:  info.ProfileImg,
		Status:      domain.UserStatusActive,
		JoinedAt:    now,
		LastLoginAt: &now,
	}
	if err := s.userRepo.Create(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	userID, remaining, err := s.tokens.Parse(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	blacklisted, err := s.tokenRepo.IsRefreshBlacklisted(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if user.Status == domain.UserStatusWithdrawn {
		return nil, domain.ErrUserWithdrawn
	}

	// Rotation: the old refresh token dies with the exchange.
	if err := s.tokenRepo.BlacklistRefresh(ctx, refreshToken, remaining); err != nil {
		return nil, err
	}
	return s.tokens.IssuePair(userID)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	_, remaining, err := s.tokens.Parse(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return domain.ErrUnauthorized
	}
	return s.tokenRepo.BlacklistRefresh(ctx, refreshToken, remaining)
}

func (s *authService) Withdraw(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	user.Status = domain.UserStatusWithdrawn
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	// Revoke the session if a refresh token was supplied; withdrawal
	// itself already succeeded.
	if refreshToken != "" {
		if _, remaining, err := s.tokens.Parse(refreshToken, auth.TokenTypeRefresh); err == nil {
			if err := s.tokenRepo.BlacklistRefresh(ctx, refreshToken, remaining); err != nil {
				log.Printf("withdraw: failed to blacklist refresh token: %v", err)
			}
		}
	}
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*domain.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *domain.UpdateProfileRequest) (*domain.UserResponse, error) {
	// The lower bound is a validator rule; the upper bound moves with
	// the clock, so it is checked here.
	if req.BirthYear != nil && *req.BirthYear > time.Now().Year() {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil {
		user.Nickname = *req.Nickname
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.BirthYear != nil {
		user.BirthYear = req.BirthYear
	}
	if req.MBTI != nil {
		user.MBTI = req.MBTI
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	response := user.ToResponse()
	return &response, nil
}

func socialTypeOf(p social.Provider) domain.SocialType {
	if p == social.ProviderGoogle {
		return domain.SocialTypeGoogle
	}
	return domain.SocialTypeKakao
}
