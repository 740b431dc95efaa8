package flight

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/ijalalfrz/travel-search-service/internal/app/dto"
	"github.com/ijalalfrz/travel-search-service/internal/pkg/utils"
)

const (
	SortByPrice         = "price"
	SortByDuration      = "duration"
	SortByStops         = "stops"
	SortByDepartureTime = "departure_time"
	SortByArrivalTime   = "arrival_time"
)

// SortRows orders rows in place by field, ascending unless order is "desc".
// An empty or unknown field keeps the upstream order. Rows whose sort value
// cannot be read go last.
func SortRows(rows []dto.FlightRow, field, order string) []dto.FlightRow {
	var key func(dto.FlightRow) float64

	switch field {
	case SortByPrice:
		key = priceOf
	case SortByDuration:
		key = durationOf
	case SortByStops:
		key = func(r dto.FlightRow) float64 { return float64(r.Stops) }
	case SortByDepartureTime:
		key = func(r dto.FlightRow) float64 { return timestampOf(r.DepartureAt) }
	case SortByArrivalTime:
		key = func(r dto.FlightRow) float64 { return timestampOf(r.ArrivalAt) }
	default:
		return rows
	}

	desc := order == "desc"

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := key(rows[i]), key(rows[j])
		if desc && a != math.MaxFloat64 && b != math.MaxFloat64 {
			return a > b
		}
		return a < b
	})

	return rows
}

func priceOf(r dto.FlightRow) float64 {
	v, err := strconv.ParseFloat(r.Price.Total, 64)
	if err != nil {
		return math.MaxFloat64
	}

	return v
}

// Duration is already rendered as "2h30m", which time.ParseDuration reads.
func durationOf(r dto.FlightRow) float64 {
	d, err := time.ParseDuration(r.Duration)
	if err != nil {
		return math.MaxFloat64
	}

	return d.Minutes()
}

func timestampOf(value string) float64 {
	t, ok := utils.ParseTimestamp(value)
	if !ok {
		return math.MaxFloat64
	}

	return float64(t.Unix())
}
