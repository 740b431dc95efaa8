package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// TokenProvider exchanges client credentials for a bearer token. Tokens are
// not cached: every call performs a fresh grant.
type TokenProvider struct {
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

func NewTokenProvider(cfg ClientConfig) *TokenProvider {
	return &TokenProvider{
		tokenURL:     cfg.endpoint(tokenPath),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   cfg.httpClient(),
	}
}

// Token performs a client-credentials grant. It returns ErrMissingCredentials
// without touching the network when the id or secret is absent, and
// ErrTokenUnavailable for any failure of the exchange itself.
func (p *TokenProvider) Token(ctx context.Context) (string, error) {
	if p.clientID == "" || p.clientSecret == "" {
		return "", ErrMissingCredentials
	}

	token, err := p.exchange(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get access token",
			slog.String("url", p.tokenURL),
			slog.String("error", err.Error()))

		return "", ErrTokenUnavailable.WithCause(err)
	}

	return token, nil
}

func (p *TokenProvider) exchange(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccess(resp.StatusCode) {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: readErrorBody(resp)}
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to parse token response: %w", err)
	}

	if body.AccessToken == "" {
		return "", errors.New("token response has no access_token")
	}

	return body.AccessToken, nil
}
