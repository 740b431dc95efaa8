//go:build unit

package flight

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/amadeus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectingOffer() amadeus.FlightOffer {
	return amadeus.FlightOffer{
		ID:                    "1",
		NumberOfBookableSeats: 4,
		Itineraries: []amadeus.Itinerary{{
			Duration: "PT5H10M",
			Segments: []amadeus.Segment{
				{
					CarrierCode: "AI",
					Number:      "865",
					Departure:   amadeus.FlightPoint{IataCode: "DEL", At: "2025-03-01T06:00:00"},
					Arrival:     amadeus.FlightPoint{IataCode: "BOM", At: "2025-03-01T08:10:00"},
					Aircraft:    &amadeus.AircraftInfo{Code: "32N"},
					Operating:   &amadeus.Operating{CarrierCode: "AI"},
				},
				{
					CarrierCode: "AI",
					Number:      "639",
					Departure:   amadeus.FlightPoint{IataCode: "BOM", At: "2025-03-01T09:30:00"},
					Arrival:     amadeus.FlightPoint{IataCode: "BLR", At: "2025-03-01T11:10:00"},
				},
			},
		}},
		Price:          amadeus.Price{Currency: "INR", Total: "7240.00"},
		PricingOptions: amadeus.PricingOptions{FareType: []string{"PUBLISHED"}},
	}
}

func TestNewRow(t *testing.T) {
	got, ok := NewRow(connectingOffer())
	require.True(t, ok)

	want := dto.FlightRow{
		OfferID:        "1",
		AirlineCode:    "AI",
		AirlineName:    "Air India",
		AirlineLogoURL: "https://logo.clearbit.com/airindia.in",
		Origin:         "DEL",
		Destination:    "BLR",
		Route:          "DEL → BLR",
		DepartureAt:    "2025-03-01T06:00:00",
		ArrivalAt:      "2025-03-01T11:10:00",
		DepartureTime:  "06:00",
		ArrivalTime:    "11:10",
		Duration:       "5h10m",
		Stops:          1,
		Price:          dto.Price{Currency: "INR", Total: "7240.00", Formatted: "INR 7240.00"},
		FareType:       "PUBLISHED",
		BookableSeats:  4,
		Segments: []dto.SegmentRow{
			{
				FlightNumber: "AI 865", Origin: "DEL", Destination: "BOM",
				DepartureAt: "2025-03-01T06:00:00", ArrivalAt: "2025-03-01T08:10:00",
				Aircraft: "32N", OperatingCarrier: "AI",
			},
			{
				FlightNumber: "AI 639", Origin: "BOM", Destination: "BLR",
				DepartureAt: "2025-03-01T09:30:00", ArrivalAt: "2025-03-01T11:10:00",
				Aircraft: "N/A", OperatingCarrier: "N/A",
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("NewRow() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRow_OutOfOrderSegments(t *testing.T) {
	offer := connectingOffer()
	segs := offer.Itineraries[0].Segments
	offer.Itineraries[0].Segments = []amadeus.Segment{segs[1], segs[0]}

	got, ok := NewRow(offer)
	require.True(t, ok)

	assert.Equal(t, "DEL → BLR", got.Route)
	assert.Equal(t, "AI 865", got.Segments[0].FlightNumber)
	assert.Equal(t, "BOM", offer.Itineraries[0].Segments[0].Departure.IataCode, "input offer must not be reordered")
}

func TestNewRow_UnknownCarrierAndNoFareType(t *testing.T) {
	offer := connectingOffer()
	offer.Itineraries[0].Segments = offer.Itineraries[0].Segments[:1]
	offer.Itineraries[0].Segments[0].CarrierCode = "BA"
	offer.PricingOptions = amadeus.PricingOptions{}

	got, ok := NewRow(offer)
	require.True(t, ok)

	assert.Equal(t, "BA", got.AirlineName)
	assert.Equal(t, PlaceholderLogoURL, got.AirlineLogoURL)
	assert.Equal(t, NotAvailable, got.FareType)
	assert.Equal(t, 0, got.Stops)
	assert.Equal(t, "BOM", got.Destination)
}

func TestToRows(t *testing.T) {
	rowsRequest := func(offers []amadeus.FlightOffer, wantIDs []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := ToRows(context.Background(), offers)
			gotIDs := make([]string, len(got))
			for i, r := range got {
				gotIDs[i] = r.OfferID
			}

			if diff := cmp.Diff(wantIDs, gotIDs); diff != "" {
				t.Fatalf("ToRows() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	second := connectingOffer()
	second.ID = "2"

	t.Run("keeps_order", rowsRequest([]amadeus.FlightOffer{second, connectingOffer()}, []string{"2", "1"}))
	t.Run("skips_empty_itineraries", rowsRequest([]amadeus.FlightOffer{{ID: "x"}, connectingOffer()}, []string{"1"}))
	t.Run("skips_empty_segments", rowsRequest([]amadeus.FlightOffer{{ID: "y", Itineraries: []amadeus.Itinerary{{}}}}, []string{}))
	t.Run("nil_offers", rowsRequest(nil, []string{}))
}

func TestChronological_UnparseableGoesLast(t *testing.T) {
	seg := func(number, at string) amadeus.Segment {
		return amadeus.Segment{Number: number, Departure: amadeus.FlightPoint{At: at}}
	}
	early := seg("1", "2025-03-01T06:00:00")
	late := seg("2", "2025-03-01T09:30:00")
	unknown := seg("3", "tbd")

	orderRequest := func(in []amadeus.Segment) func(t *testing.T) {
		return func(t *testing.T) {
			got := chronological(in)

			numbers := make([]string, len(got))
			for i, s := range got {
				numbers[i] = s.Number
			}
			assert.Equal(t, []string{"1", "2", "3"}, numbers)
		}
	}

	t.Run("unknown_first", orderRequest([]amadeus.Segment{unknown, late, early}))
	t.Run("unknown_middle", orderRequest([]amadeus.Segment{late, unknown, early}))
	t.Run("unknown_last", orderRequest([]amadeus.Segment{late, early, unknown}))
}

func TestAirlineLogoURL(t *testing.T) {
	logoRequest := func(code, want string) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, AirlineLogoURL(code))
		}
	}

	t.Run("indigo", logoRequest("6E", "https://logo.clearbit.com/indigo.com"))
	t.Run("vistara", logoRequest("UK", "https://logo.clearbit.com/vistaraairways.com"))
	t.Run("unknown", logoRequest("ZZ", PlaceholderLogoURL))
}
