// Package auth acquires the bearer token that gates every processor call.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"merchant-console/internal/config"
)

// Token is a bearer access token. It lives for the current activation only
// and is never persisted.
type Token struct {
	AccessToken string
}

// TokenSource acquires a token once per session activation.
type TokenSource interface {
	Acquire(ctx context.Context) (Token, error)
}

var ErrEmptyToken = errors.New("token provider returned an empty access token")

// NewTokenSource picks the source the configuration describes.
func NewTokenSource(cfg config.AuthConfig, timeout time.Duration) TokenSource {
	if cfg.StaticToken != "" {
		return StaticSource{Token: cfg.StaticToken}
	}
	return &ClientCredentialsSource{
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// StaticSource hands out a pre-configured API token.
type StaticSource struct {
	Token string
}

func (s StaticSource) Acquire(ctx context.Context) (Token, error) {
	if s.Token == "" {
		return Token{}, ErrEmptyToken
	}
	return Token{AccessToken: s.Token}, nil
}

// ClientCredentialsSource exchanges client credentials for an access token.
type ClientCredentialsSource struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (s *ClientCredentialsSource) Acquire(ctx context.Context) (Token, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.clientID)
	form.Set("client_secret", s.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, fmt.Errorf("error creating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("error requesting token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return Token{}, fmt.Errorf("token provider returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return Token{}, fmt.Errorf("error decoding token response: %w", err)
	}
	if tr.AccessToken == "" {
		return Token{}, ErrEmptyToken
	}

	return Token{AccessToken: tr.AccessToken}, nil
}
