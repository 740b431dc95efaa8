package amadeus

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultCurrencyCode = "INR"
	DefaultMaxResults   = 10
)

type FlightOffer struct {
	Type                   string         `json:"type,omitempty"`
	ID                     string         `json:"id"`
	Source                 string         `json:"source,omitempty"`
	NumberOfBookableSeats  int            `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary    `json:"itineraries"`
	Price                  Price          `json:"price"`
	PricingOptions         PricingOptions `json:"pricingOptions"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes,omitempty"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	ID            string        `json:"id,omitempty"`
	CarrierCode   string        `json:"carrierCode"`
	Number        string        `json:"number"`
	Departure     FlightPoint   `json:"departure"`
	Arrival       FlightPoint   `json:"arrival"`
	Aircraft      *AircraftInfo `json:"aircraft,omitempty"`
	Operating     *Operating    `json:"operating,omitempty"`
	Duration      string        `json:"duration,omitempty"`
	NumberOfStops int           `json:"numberOfStops"`
}

type FlightPoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type AircraftInfo struct {
	Code string `json:"code"`
}

type Operating struct {
	CarrierCode string `json:"carrierCode"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`
}

type PricingOptions struct {
	FareType                []string `json:"fareType,omitempty"`
	IncludedCheckedBagsOnly bool     `json:"includedCheckedBagsOnly"`
}

// FlightQuery holds the flight-offers search parameters.
type FlightQuery struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	ReturnDate              string
	Adults                  int
	NonStop                 bool
	CurrencyCode            string
	Max                     int
	TravelClass             string
}

// Values serializes the query, applying defaults for unset counts and
// currency.
func (q FlightQuery) Values() url.Values {
	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}

	currency := q.CurrencyCode
	if currency == "" {
		currency = DefaultCurrencyCode
	}

	maxResults := q.Max
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	v := url.Values{}
	v.Set("originLocationCode", q.OriginLocationCode)
	v.Set("destinationLocationCode", q.DestinationLocationCode)
	v.Set("departureDate", q.DepartureDate)
	v.Set("adults", strconv.Itoa(adults))
	v.Set("nonStop", strconv.FormatBool(q.NonStop))
	v.Set("currencyCode", currency)
	v.Set("max", strconv.Itoa(maxResults))

	if q.ReturnDate != "" {
		v.Set("returnDate", q.ReturnDate)
	}

	if q.TravelClass != "" {
		v.Set("travelClass", q.TravelClass)
	}

	return v
}

type FlightClient struct {
	searchURL  string
	httpClient *http.Client
}

func NewFlightClient(cfg ClientConfig) *FlightClient {
	return &FlightClient{
		searchURL:  cfg.endpoint(flightOffersPath),
		httpClient: cfg.httpClient(),
	}
}

// SearchOffers returns the offers exactly as listed by the upstream. On any
// failure the result is an empty slice and ErrUpstreamUnavailable.
func (c *FlightClient) SearchOffers(ctx context.Context, token string,
	query FlightQuery,
) ([]FlightOffer, error) {
	offers, err := getData[FlightOffer](ctx, c.httpClient, c.searchURL, token, query.Values())
	if err != nil {
		slog.ErrorContext(ctx, "failed to get flight offers",
			slog.String("url", c.searchURL),
			slog.String("error", err.Error()))

		return []FlightOffer{}, ErrUpstreamUnavailable.WithCause(err)
	}

	return offers, nil
}
