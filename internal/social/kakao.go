package social

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	kakaoTokenURL    = "https://kauth.kakao.com/oauth/token"
	kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"
)

type kakaoClient struct {
	clientID    string
	redirectURI string
	httpClient  *http.Client

	// Overridable in tests.
	tokenURL    string
	userInfoURL string
}

func newKakaoClient(cfg Config, httpClient *http.Client) *kakaoClient {
	return &kakaoClient{
		clientID:    cfg.KakaoClientID,
		redirectURI: cfg.KakaoRedirectURI,
		httpClient:  httpClient,
		tokenURL:    kakaoTokenURL,
		userInfoURL: kakaoUserInfoURL,
	}
}

func (c *kakaoClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	form := url.Values{
		"grant_type":   {"authorization_code"},
		"client_id":    {c.clientID},
		"redirect_uri": {c.redirectURI},
		"code":         {code},
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
		return "", fmt.Errorf("%w: kakao token response missing access_token", ErrProviderRequest)
	}
	return body.AccessToken, nil
}

func (c *kakaoClient) FetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
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
		ID           int64 `json:"id"`
		KakaoAccount struct {
			Email string `json:"email"`
		} `json:"kakao_account"`
		Properties struct {
			Nickname     string `json:"nickname"`
			ProfileImage string `json:"profile_image"`
		} `json:"properties"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderRequest, err)
	}
	if body.ID == 0 {
		return nil, fmt.Errorf("%w: kakao response missing id", ErrProviderRequest)
	}

	return &UserInfo{
		SocialID:   strconv.FormatInt(body.ID, 10),
		Email:      body.KakaoAccount.Email,
		Nickname:   body.Properties.Nickname,
		ProfileImg: normalizeProfileImg(ProviderKakao, body.Properties.ProfileImage),
	}, nil
}
