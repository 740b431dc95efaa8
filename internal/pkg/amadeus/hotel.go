package amadeus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

// HotelQuery holds the hotel-offers search parameters.
type HotelQuery struct {
	Latitude     string
	Longitude    string
	CheckInDate  string
	CheckOutDate string
	RoomQuantity int
	Adults       int
}

func (q HotelQuery) Values() url.Values {
	rooms := q.RoomQuantity
	if rooms <= 0 {
		rooms = 1
	}

	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}

	v := url.Values{}
	v.Set("latitude", q.Latitude)
	v.Set("longitude", q.Longitude)
	v.Set("checkInDate", q.CheckInDate)
	v.Set("checkOutDate", q.CheckOutDate)
	v.Set("roomQuantity", strconv.Itoa(rooms))
	v.Set("adults", strconv.Itoa(adults))

	return v
}

type HotelClient struct {
	searchURL  string
	bookingURL string
	httpClient *http.Client
}

func NewHotelClient(cfg ClientConfig) *HotelClient {
	return &HotelClient{
		searchURL:  cfg.endpoint(hotelOffersPath),
		bookingURL: cfg.endpoint(hotelBookingsPath),
		httpClient: cfg.httpClient(),
	}
}

// SearchOffers returns the raw hotel records in upstream order. Records are
// left undecoded because their shape varies; see package hotel.
func (c *HotelClient) SearchOffers(ctx context.Context, token string,
	query HotelQuery,
) ([]json.RawMessage, error) {
	records, err := getData[json.RawMessage](ctx, c.httpClient, c.searchURL, token, query.Values())
	if err != nil {
		slog.ErrorContext(ctx, "failed to get hotel offers",
			slog.String("url", c.searchURL),
			slog.String("error", err.Error()))

		return []json.RawMessage{}, ErrUpstreamUnavailable.WithCause(err)
	}

	return records, nil
}

// CreateHotelOrder posts a booking payload. It is never retried: a repeated
// POST may create a second reservation.
func (c *HotelClient) CreateHotelOrder(ctx context.Context, token string,
	payload json.RawMessage,
) (json.RawMessage, error) {
	order, err := c.createOrder(ctx, token, payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create hotel order",
			slog.String("url", c.bookingURL),
			slog.String("error", err.Error()))

		return nil, ErrBookingFailed.WithCause(err)
	}

	return order, nil
}

func (c *HotelClient) createOrder(ctx context.Context, token string,
	payload json.RawMessage,
) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.bookingURL,
		bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: readErrorBody(resp)}
	}

	var order json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}

	return order, nil
}
