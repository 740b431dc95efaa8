package service

import (
	"net/http"

	"github.com/ijalalfrz/travel-search-service/internal/pkg/exception"
)

var ErrInvalidStayDates = exception.ApplicationError{
	Kind:       exception.KindValidation,
	StatusCode: http.StatusBadRequest,
	Message:    "check_out_date must be after check_in_date",
}

// user-facing messages
const (
	msgAmadeusCredentialsMissing = "Amadeus API credentials missing. Set AMADEUS_CLIENT_ID and AMADEUS_CLIENT_SECRET"

	msgFlightTokenFailed = "Could not get access token"
	msgFlightFetchFailed = "Error fetching flight offers"
	msgFlightNoOffers    = "No flight offers found for the specified route and date."

	msgHotelTokenFailed = "Failed to get access token, showing mock data."
	msgHotelFetchFailed = "Error fetching hotels from API, showing mock data."
	msgHotelNoResults   = "No hotels found from API, showing mock data."

	msgTrainFetchFailed  = "Failed to fetch train data"
	msgTrainNoDepartures = "No live departures found, showing sample data."
)

// search features, used to scope sequence numbers per session
const (
	FeatureFlights = "flights"
	FeatureHotels  = "hotels"
	FeatureTrains  = "trains"
)
