// Package social exchanges OAuth codes and fetches user profiles from
// the supported login providers. Providers are selected by an explicit
// switch over the Provider enum, one client implementation per
// provider; there is no runtime-mutable handler registry.
package social

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Provider identifies a social login provider.
type Provider string

const (
	ProviderKakao  Provider = "kakao"
	ProviderGoogle Provider = "google"
)

var (
	ErrUnsupportedProvider = errors.New("unsupported social provider")
	ErrProviderRequest     = errors.New("social provider request failed")
)

// UserInfo is the normalized profile returned by every provider.
type UserInfo struct {
	SocialID   string
	Email      string
	Nickname   string
	ProfileImg *string
}

// Client retrieves tokens and profiles from one provider.
type Client interface {
	// ExchangeCode trades an OAuth authorization code for an access token.
	ExchangeCode(ctx context.Context, code string) (string, error)
	// FetchUserInfo loads the provider profile for an access token.
	FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error)
}

// Config carries the provider app credentials.
type Config struct {
	KakaoClientID     string
	KakaoRedirectURI  string
	GoogleClientID    string
	GoogleClientSec   string
	GoogleRedirectURI string
}

// Clients bundles one client per supported provider.
type Clients struct {
	kakao  Client
	google Client
}

// NewClients builds the full provider set from config.
func NewClients(cfg Config) *Clients {
	httpClient := &http.Client{Timeout: 10 * time.Second}
	return &Clients{
		kakao:  newKakaoClient(cfg, httpClient),
		google: newGoogleClient(cfg, httpClient),
	}
}

// For returns the client for a provider.
func (c *Clients) For(p Provider) (Client, error) {
	switch p {
	case ProviderKakao:
		return c.kakao, nil
	case ProviderGoogle:
		return c.google, nil
	default:
		return nil, ErrUnsupportedProvider
	}
}

// Kakao serves a fixed URL for accounts without a custom picture;
// Google embeds recognizable keywords instead.
var kakaoDefaultImgURLs = []string{
	"http://img1.kakaocdn.net/thumb/R640x640.q70/?fname=http://t1.kakaocdn.net/account_images/default_profile.jpeg",
}

var googleDefaultImgKeywords = []string{"default_profile", "photo.jpg"}

// normalizeProfileImg maps provider default profile images to nil so
// the app can substitute its own placeholder.
func normalizeProfileImg(p Provider, url string) *string {
	if url == "" {
		return nil
	}
	switch p {
	case ProviderKakao:
		for _, def := range kakaoDefaultImgURLs {
			if url == def {
				return nil
			}
		}
	case ProviderGoogle:
		for _, kw := range googleDefaultImgKeywords {
			if strings.Contains(url, kw) {
				return nil
			}
		}
	}
	return &url
}
