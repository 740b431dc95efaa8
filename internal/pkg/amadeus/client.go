// Package amadeus talks to the Amadeus self-service APIs: OAuth2 token
// exchange, flight and hotel offer search, and hotel booking.
//
// Every call is a single attempt. Query clients never fail with a nil slice:
// on any failure they return an empty slice together with a typed error
// from errors.go, so callers can branch on the reason and still render.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://test.api.amadeus.com"

	tokenPath         = "/v1/security/oauth2/token"
	flightOffersPath  = "/v2/shopping/flight-offers"
	hotelOffersPath   = "/v2/shopping/hotel-offers"
	hotelBookingsPath = "/v1/booking/hotel-bookings"

	defaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of an upstream error body is kept for logs.
	maxErrorBody = 4 << 10
)

// ClientConfig for every amadeus client
type ClientConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
	HTTPClient   *http.Client
}

func (c ClientConfig) endpoint(path string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	return strings.TrimRight(base, "/") + path
}

func (c ClientConfig) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &http.Client{Timeout: timeout}
}

// StatusError is returned when an upstream answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func readErrorBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return string(body)
}

type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}

// getData issues an authenticated GET against endpoint and returns the
// response envelope's data array. A missing array yields an empty slice.
func getData[T any](ctx context.Context, httpClient *http.Client,
	endpoint, token string, params url.Values,
) ([]T, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: readErrorBody(resp)}
	}

	var envelope dataEnvelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if envelope.Data == nil {
		return []T{}, nil
	}

	return envelope.Data, nil
}
