package dto

import (
	"fmt"
	"net/http"
	"strings"
)

// IncompleteSearchMessage is shown when a required search field is blank.
const IncompleteSearchMessage = "Please fill all search fields."

type FlightSearchRequest struct {
	Origin        string `json:"origin" validate:"required,len=3,alpha"`
	Destination   string `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Adults        int    `json:"adults,omitempty" validate:"omitempty,min=1,max=9"`
	NonStop       bool   `json:"non_stop,omitempty"`
	TravelClass   string `json:"travel_class,omitempty" validate:"omitempty,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	SortBy        string `json:"sort_by,omitempty" validate:"omitempty,oneof=price duration stops departure_time arrival_time"`
	SortOrder     string `json:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
}

func (s *FlightSearchRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

// Validate normalizes codes to upper case before checking. Any blank
// required field yields IncompleteSearchMessage.
func (s *FlightSearchRequest) Validate() error {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	s.DepartureDate = strings.TrimSpace(s.DepartureDate)
	s.ReturnDate = strings.TrimSpace(s.ReturnDate)
	s.TravelClass = strings.ToUpper(strings.TrimSpace(s.TravelClass))
	s.SortBy = strings.ToLower(strings.TrimSpace(s.SortBy))
	s.SortOrder = strings.ToLower(strings.TrimSpace(s.SortOrder))

	if err := Validate.Struct(s); err != nil {
		if hasTag(err, "required") {
			return validationError(IncompleteSearchMessage)
		}

		return validationError(ValidateSingleError(s).Error())
	}

	if s.ReturnDate != "" && s.ReturnDate < s.DepartureDate {
		return validationError("return_date must not be before departure_date")
	}

	return nil
}

type Price struct {
	Currency  string `json:"currency"`
	Total     string `json:"total"`
	Formatted string `json:"formatted"`
}

type SegmentRow struct {
	FlightNumber     string `json:"flight_number"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	DepartureAt      string `json:"departure_at"`
	ArrivalAt        string `json:"arrival_at"`
	Aircraft         string `json:"aircraft"`
	OperatingCarrier string `json:"operating_carrier"`
}

// FlightRow is one offer as displayed: the route runs from the first
// segment's departure to the last segment's arrival.
type FlightRow struct {
	OfferID        string       `json:"offer_id"`
	AirlineCode    string       `json:"airline_code"`
	AirlineName    string       `json:"airline_name"`
	AirlineLogoURL string       `json:"airline_logo_url"`
	Origin         string       `json:"origin"`
	Destination    string       `json:"destination"`
	Route          string       `json:"route"`
	DepartureAt    string       `json:"departure_at"`
	ArrivalAt      string       `json:"arrival_at"`
	DepartureTime  string       `json:"departure_time"`
	ArrivalTime    string       `json:"arrival_time"`
	Duration       string       `json:"duration"`
	Stops          int          `json:"stops"`
	Price          Price        `json:"price"`
	FareType       string       `json:"fare_type"`
	BookableSeats  int          `json:"bookable_seats"`
	Segments       []SegmentRow `json:"segments"`
}

type FlightSearchView struct {
	Sequence int64       `json:"sequence,omitempty"`
	Source   Source      `json:"source"`
	Message  *Message    `json:"message,omitempty"`
	Offers   []FlightRow `json:"offers"`
}
