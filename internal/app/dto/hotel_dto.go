package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ijalalfrz/travel-search-service/internal/pkg/hotel"
)

// HotelSearchRequest is read from the query string. Blank city and dates are
// filled with defaults by the hotel service.
type HotelSearchRequest struct {
	City         string `json:"city" validate:"max=64"`
	CheckInDate  string `json:"check_in_date" validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,datetime=2006-01-02"`
	Adults       int    `json:"adults" validate:"omitempty,min=1,max=9"`
	RoomQuantity int    `json:"room_quantity" validate:"omitempty,min=1,max=9"`
}

func (s *HotelSearchRequest) BindQuery(values url.Values) error {
	s.City = strings.TrimSpace(values.Get("city"))
	s.CheckInDate = strings.TrimSpace(values.Get("check_in_date"))
	s.CheckOutDate = strings.TrimSpace(values.Get("check_out_date"))

	var err error
	if s.Adults, err = optionalInt(values, "adults"); err != nil {
		return err
	}

	if s.RoomQuantity, err = optionalInt(values, "room_quantity"); err != nil {
		return err
	}

	return s.Validate()
}

func (s *HotelSearchRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return validationError(err.Error())
	}

	if s.CheckInDate != "" && s.CheckOutDate != "" && s.CheckOutDate <= s.CheckInDate {
		return validationError("check_out_date must be after check_in_date")
	}

	return nil
}

func optionalInt(values url.Values, key string) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validationError(fmt.Sprintf("%s must be a whole number", key))
	}

	return n, nil
}

// HotelBookingRequest carries the upstream booking document. Data is passed
// through untouched.
type HotelBookingRequest struct {
	Data json.RawMessage `json:"data"`
}

func (s *HotelBookingRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *HotelBookingRequest) Validate() error {
	trimmed := bytes.TrimSpace(s.Data)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return validationError("data must be a JSON object")
	}

	return nil
}

// Payload returns the document to post upstream.
func (s *HotelBookingRequest) Payload() (json.RawMessage, error) {
	return json.Marshal(s)
}

type HotelSearchView struct {
	Sequence     int64           `json:"sequence,omitempty"`
	Source       Source          `json:"source"`
	Message      *Message        `json:"message,omitempty"`
	City         string          `json:"city"`
	CheckInDate  string          `json:"check_in_date"`
	CheckOutDate string          `json:"check_out_date"`
	Hotels       []hotel.Display `json:"hotels"`
}
