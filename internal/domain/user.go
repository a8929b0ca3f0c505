package domain

import (
	"time"

	"github.com/google/uuid"
)

// SocialType identifies the social login provider an account came from.
type SocialType string

const (
	SocialTypeKakao  SocialType = "KAKAO"
	SocialTypeGoogle SocialType = "GOOGLE"
)

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusDormant   UserStatus = "dormant"
	UserStatusWithdrawn UserStatus = "withdrawn"
)

type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	SocialType  SocialType `gorm:"type:varchar(10);not null;uniqueIndex:idx_users_social" json:"social_type"`
	SocialID    string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_social" json:"social_id"`
	Email       string     `gorm:"type:varchar(255);not null" json:"email"`
	Nickname    string     `gorm:"type:varchar(100)" json:"nickname"`
	ProfileImg  *string    `gorm:"type:varchar(512)" json:"profile_img,omitempty"`
	Gender      *string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	BirthYear   *int       `gorm:"type:smallint" json:"birth_year,omitempty"`
	MBTI        *string    `gorm:"type:varchar(4);column:mbti" json:"mbti,omitempty"`
	Status      UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	JoinedAt    time.Time  `gorm:"not null" json:"joined_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// UserBlacklist marks accounts that are refused login.
type UserBlacklist struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Reason    string    `gorm:"type:text" json:"reason"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (UserBlacklist) TableName() string {
	return "user_blacklist"
}

// UserResponse is the response body for user endpoints.
type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	SocialType SocialType `json:"social_type"`
	Email      string     `json:"email"`
	Nickname   string     `json:"nickname"`
	ProfileImg *string    `json:"profile_img,omitempty"`
	Gender     *string    `json:"gender,omitempty"`
	BirthYear  *int       `json:"birth_year,omitempty"`
	MBTI       *string    `json:"mbti,omitempty"`
	Status     UserStatus `json:"status"`
	JoinedAt   time.Time  `json:"joined_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:         u.ID,
		SocialType: u.SocialType,
		Email:      u.Email,
		Nickname:   u.Nickname,
		ProfileImg: u.ProfileImg,
		Gender:     u.Gender,
		BirthYear:  u.BirthYear,
		MBTI:       u.MBTI,
		Status:     u.Status,
		JoinedAt:   u.JoinedAt,
	}
}

// TokenPair is an access/refresh token pair issued at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SocialLoginRequest is the request body for social login.
// @Description Social login payload: exactly one of code or access_token.
type SocialLoginRequest struct {
	// Provider name: kakao or google
	Provider string `json:"provider" validate:"required,oneof=kakao google" example:"kakao"`
	// Authorization code from the provider's OAuth redirect
	Code string `json:"code,omitempty" validate:"required_without=AccessToken,excluded_with=AccessToken" example:"abc123"`
	// Provider access token obtained by the client directly
	AccessToken string `json:"access_token,omitempty" validate:"required_without=Code" example:""`
}

// SocialLoginResponse is the response body for a successful social login.
type SocialLoginResponse struct {
	Tokens TokenPair    `json:"tokens"`
	User   UserResponse `json:"user"`
}

// RefreshRequest carries a refresh token for logout or token rotation.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// UpdateProfileRequest is the body of the profile PATCH. All fields are
// optional; fields left out of the payload are not changed. Gender is
// one of male, female, or none; MBTI is one of the sixteen four-letter
// types, or NONE.
type UpdateProfileRequest struct {
	Nickname  *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=100" example:"hana"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=male female none" example:"female"`
	BirthYear *int    `json:"birth_year,omitempty" validate:"omitempty,min=1900" example:"1996"`
	MBTI      *string `json:"mbti,omitempty" validate:"omitempty,oneof=ISTJ ISFJ INTJ INFJ ISTP ISFP INTP INFP ESTJ ESFJ ENTJ ENFJ ESTP ESFP ENTP ENFP NONE" example:"INFP"`
}
