package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
)

type googleClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client

	tokenURL    string
	userInfoURL string
}

func newGoogleClient(cfg Config, httpClient *http.Client) *googleClient {
	return &googleClient{
		clientID:     cfg.GoogleClientID,
		clientSecret: cfg.GoogleClientSec,
		redirectURI:  cfg.GoogleRedirectURI,
		httpClient:   httpClient,
		tokenURL:     googleTokenURL,
		userInfoURL:  googleUserInfoURL,
	}
}

func (c *googleClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"redirect_uri":  {c.redirectURI},
		"code":          {code},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("%w: google token response missing access_token", ErrProviderRequest)
	}
	return body.AccessToken, nil
}

func (c *googleClient) FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	var body struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	if body.Sub == "" {
		return nil, fmt.Errorf("%w: google response missing sub", ErrProviderRequest)
	}

	return &UserInfo{
		SocialID:   body.Sub,
		Email:      body.Email,
		Nickname:   body.Name,
		ProfileImg: normalizeProfileImg(ProviderGoogle, body.Picture),
	}, nil
}
