package flight

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/amadeus"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/utils"
)

const (
	NotAvailable       = "N/A"
	logoURLTemplate    = "https://logo.clearbit.com/%s"
	PlaceholderLogoURL = "https://via.placeholder.com/40?text=?"
)

type airline struct {
	Name   string
	Domain string
}

// airlines known to the logo and name lookup; anything else shows its code
var airlines = map[string]airline{
	"AI": {Name: "Air India", Domain: "airindia.in"},
	"SG": {Name: "SpiceJet", Domain: "spicejet.com"},
	"6E": {Name: "IndiGo", Domain: "indigo.com"},
	"UK": {Name: "Vistara", Domain: "vistaraairways.com"},
	"IX": {Name: "Air India Express", Domain: "airindiaexpress.in"},
}

// AirlineName returns the display name for a carrier code.
func AirlineName(code string) string {
	if a, ok := airlines[code]; ok {
		return a.Name
	}

	return code
}

// AirlineLogoURL returns the logo for a carrier code, or a placeholder.
func AirlineLogoURL(code string) string {
	if a, ok := airlines[code]; ok {
		return fmt.Sprintf(logoURLTemplate, a.Domain)
	}

	return PlaceholderLogoURL
}

// ToRows converts offers into display rows, keeping upstream order. Offers
// with no itinerary or no segment cannot be displayed and are skipped.
func ToRows(ctx context.Context, offers []amadeus.FlightOffer) []dto.FlightRow {
	rows := make([]dto.FlightRow, 0, len(offers))
	for _, offer := range offers {
		row, ok := NewRow(offer)
		if !ok {
			slog.WarnContext(ctx, "skipping flight offer without segments", slog.String("offer_id", offer.ID))
			continue
		}
		rows = append(rows, row)
	}

	return rows
}

// NewRow builds the display row of an offer's first itinerary.
func NewRow(offer amadeus.FlightOffer) (dto.FlightRow, bool) {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return dto.FlightRow{}, false
	}

	itinerary := offer.Itineraries[0]
	segments := chronological(itinerary.Segments)
	first := segments[0]
	last := segments[len(segments)-1]

	rows := make([]dto.SegmentRow, len(segments))
	for i, seg := range segments {
		rows[i] = segmentRow(seg)
	}

	return dto.FlightRow{
		OfferID:        offer.ID,
		AirlineCode:    first.CarrierCode,
		AirlineName:    AirlineName(first.CarrierCode),
		AirlineLogoURL: AirlineLogoURL(first.CarrierCode),
		Origin:         first.Departure.IataCode,
		Destination:    last.Arrival.IataCode,
		Route:          fmt.Sprintf("%s → %s", first.Departure.IataCode, last.Arrival.IataCode),
		DepartureAt:    first.Departure.At,
		ArrivalAt:      last.Arrival.At,
		DepartureTime:  utils.FormatClock(first.Departure.At),
		ArrivalTime:    utils.FormatClock(last.Arrival.At),
		Duration:       utils.FormatISODuration(itinerary.Duration),
		Stops:          len(segments) - 1,
		Price: dto.Price{
			Currency:  offer.Price.Currency,
			Total:     offer.Price.Total,
			Formatted: utils.FormatPrice(offer.Price.Currency, offer.Price.Total),
		},
		FareType:      fareType(offer.PricingOptions),
		BookableSeats: offer.NumberOfBookableSeats,
		Segments:      rows,
	}, true
}

func segmentRow(seg amadeus.Segment) dto.SegmentRow {
	aircraft := NotAvailable
	if seg.Aircraft != nil && seg.Aircraft.Code != "" {
		aircraft = seg.Aircraft.Code
	}

	operating := NotAvailable
	if seg.Operating != nil && seg.Operating.CarrierCode != "" {
		operating = seg.Operating.CarrierCode
	}

	return dto.SegmentRow{
		FlightNumber:     strings.TrimSpace(seg.CarrierCode + " " + seg.Number),
		Origin:           seg.Departure.IataCode,
		Destination:      seg.Arrival.IataCode,
		DepartureAt:      seg.Departure.At,
		ArrivalAt:        seg.Arrival.At,
		Aircraft:         aircraft,
		OperatingCarrier: operating,
	}
}

func fareType(opts amadeus.PricingOptions) string {
	if joined := utils.JoinNonEmpty(opts.FareType, ", "); joined != "" {
		return joined
	}

	return NotAvailable
}

// chronological returns a copy of segments ordered by departure time.
// Segments whose time cannot be parsed go last, keeping their relative order.
func chronological(segments []amadeus.Segment) []amadeus.Segment {
	ordered := make([]amadeus.Segment, len(segments))
	copy(ordered, segments)

	sort.SliceStable(ordered, func(i, j int) bool {
		return departureKey(ordered[i]) < departureKey(ordered[j])
	})

	return ordered
}

func departureKey(seg amadeus.Segment) float64 {
	t, ok := utils.ParseTimestamp(seg.Departure.At)
	if !ok {
		return math.MaxFloat64
	}

	return float64(t.Unix())
}
