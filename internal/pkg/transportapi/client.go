// Package transportapi reads live UK train departure boards from
// TransportAPI. Authentication is an app id and key passed as query
// parameters; there is no token exchange.
package transportapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://transportapi.com"

	liveBoardPath  = "/v3/uk/train/station/%s/live.json"
	defaultTimeout = 10 * time.Second
	maxErrorBody   = 4 << 10

	// StationCodeLength is the length of a CRS station code such as KGX.
	StationCodeLength = 3
)

type Config struct {
	BaseURL    string
	AppID      string
	AppKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	appID      string
	appKey     string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		appID:      cfg.AppID,
		appKey:     cfg.AppKey,
		httpClient: httpClient,
	}
}

// NormalizeStationCode trims and uppercases a user-entered station code.
func NormalizeStationCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// LiveDepartures fetches the live board for a station.
//
// Validation and configuration problems are reported before any request is
// made. A 2xx response without departures yields ErrNoDepartures and the
// station details that were returned.
func (c *Client) LiveDepartures(ctx context.Context, stationCode string) (Board, error) {
	code := NormalizeStationCode(stationCode)
	if len([]rune(code)) != StationCodeLength {
		return Board{}, ErrInvalidStationCode
	}

	if c.appID == "" || c.appKey == "" {
		return Board{}, ErrMissingCredentials
	}

	endpoint := c.baseURL + fmt.Sprintf(liveBoardPath, url.PathEscape(code))

	board, err := c.fetch(ctx, endpoint)
	if err != nil {
		return Board{}, err
	}

	if len(board.Departures.All) == 0 {
		slog.WarnContext(ctx, "live board has no departures", slog.String("station_code", code))

		board.Departures.All = []Departure{}
		return board, ErrNoDepartures
	}

	return board, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) (Board, error) {
	params := url.Values{}
	params.Set("app_id", c.appID)
	params.Set("app_key", c.appKey)
	params.Set("darwin", "false")
	params.Set("train_status", "passenger")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Board{}, ErrFetchFailed.WithCause(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "failed to call live departures API",
			slog.String("url", endpoint),
			slog.String("error", err.Error()))

		return Board{}, ErrFetchFailed.WithCause(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.ErrorContext(ctx, "live departures API returned an error",
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))

		return Board{}, ErrFetchFailed.WithCause(fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var board Board
	if err := json.NewDecoder(resp.Body).Decode(&board); err != nil {
		slog.ErrorContext(ctx, "failed to parse live departures",
			slog.String("url", endpoint),
			slog.String("error", err.Error()))

		return Board{}, ErrFetchFailed.WithCause(err)
	}

	return board, nil
}
