package service

import (
	"context"
	"slices"

	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/flight"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/hotel"
)

// Sample sets shown whenever live data is unavailable. Accessors return
// fresh slices; the package-level values are never handed out.

var sampleHotels = []hotel.Record{
	hotel.MockRecord{FlatFields: hotel.FlatFields{
		Name:    "Mock Hotel One",
		Address: hotel.Address{Lines: []string{"123 Sample St", "City"}},
		Rating:  hotel.RatingFromFloat(4.5),
		Price:   &hotel.OfferPrice{Total: "120", Currency: "USD"},
	}},
	hotel.MockRecord{FlatFields: hotel.FlatFields{
		Name:    "Mock Hotel Two",
		Address: hotel.Address{Lines: []string{"456 Example Rd", "City"}},
		Rating:  hotel.RatingFromFloat(3.8),
		Price:   &hotel.OfferPrice{Total: "100", Currency: "USD"},
	}},
}

var sampleDepartures = []dto.DepartureRow{
	{Scheduled: "10:00", Expected: "10:00", Destination: "Cambridge", Platform: "9", Status: "ON TIME", Operator: "Great Northern"},
	{Scheduled: "10:15", Expected: "10:21", Destination: "Peterborough", Platform: "2", Status: "LATE", Operator: "Great Northern"},
	{Scheduled: "10:30", Expected: "10:30", Destination: "Norwich", Platform: "4", Status: "ON TIME", Operator: "Greater Anglia"},
}

var sampleFlightOffers = []amadeus.FlightOffer{
	{
		ID:                    "sample-1",
		NumberOfBookableSeats: 9,
		Itineraries: []amadeus.Itinerary{{
			Duration: "PT2H10M",
			Segments: []amadeus.Segment{{
				CarrierCode: "6E",
				Number:      "2131",
				Departure:   amadeus.FlightPoint{IataCode: "DEL", At: "2025-01-01T06:00:00"},
				Arrival:     amadeus.FlightPoint{IataCode: "BOM", At: "2025-01-01T08:10:00"},
				Aircraft:    &amadeus.AircraftInfo{Code: "320"},
			}},
		}},
		Price:          amadeus.Price{Currency: amadeus.DefaultCurrencyCode, Total: "5400.00"},
		PricingOptions: amadeus.PricingOptions{FareType: []string{"PUBLISHED"}},
	},
	{
		ID:                    "sample-2",
		NumberOfBookableSeats: 4,
		Itineraries: []amadeus.Itinerary{{
			Duration: "PT5H5M",
			Segments: []amadeus.Segment{
				{
					CarrierCode: "AI",
					Number:      "665",
					Departure:   amadeus.FlightPoint{IataCode: "DEL", At: "2025-01-01T09:00:00"},
					Arrival:     amadeus.FlightPoint{IataCode: "BLR", At: "2025-01-01T11:45:00"},
					Aircraft:    &amadeus.AircraftInfo{Code: "32N"},
					Operating:   &amadeus.Operating{CarrierCode: "AI"},
				},
				{
					CarrierCode: "AI",
					Number:      "640",
					Departure:   amadeus.FlightPoint{IataCode: "BLR", At: "2025-01-01T12:35:00"},
					Arrival:     amadeus.FlightPoint{IataCode: "BOM", At: "2025-01-01T14:05:00"},
				},
			},
		}},
		Price: amadeus.Price{Currency: amadeus.DefaultCurrencyCode, Total: "6120.00"},
	},
}

func SampleHotels() []hotel.Display {
	return hotel.NormalizeAll(sampleHotels)
}

func SampleDepartures() []dto.DepartureRow {
	return slices.Clone(sampleDepartures)
}

func SampleFlights(ctx context.Context) []dto.FlightRow {
	return flight.ToRows(ctx, sampleFlightOffers)
}
