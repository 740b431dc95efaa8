package utils

import (
	"strconv"
	"strings"
	"time"
)

// LocalDateTimeLayout is the offset-less timestamp layout Amadeus uses for
// segment departure and arrival times.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// DateLayout is the ISO date layout used by every search query.
const DateLayout = "2006-01-02"

// FormatISODuration convert ISO-8601 duration to compact lowercase form.
// Days fold into hours so the result stays readable by time.ParseDuration.
// Example: "PT2H30M" -> "2h30m", "P1DT2H" -> "26h"
func FormatISODuration(duration string) string {
	if duration == "" {
		return ""
	}

	fallback := strings.ToLower(strings.TrimPrefix(duration, "PT"))

	rest, ok := strings.CutPrefix(strings.ToUpper(duration), "P")
	if !ok {
		return fallback
	}

	datePart, timePart, _ := strings.Cut(rest, "T")
	if datePart == "" {
		return strings.ToLower(timePart)
	}

	dayCount, ok := strings.CutSuffix(datePart, "D")
	if !ok {
		return fallback
	}
	days, err := strconv.Atoi(dayCount)
	if err != nil {
		return fallback
	}

	hours := days * 24
	if h, afterHours, found := strings.Cut(timePart, "H"); found {
		n, err := strconv.Atoi(h)
		if err != nil {
			return fallback
		}
		hours += n
		timePart = afterHours
	}

	return strconv.Itoa(hours) + "h" + strings.ToLower(timePart)
}

// ParseTimestamp parses an Amadeus local timestamp, falling back to RFC3339.
func ParseTimestamp(value string) (time.Time, bool) {
	for _, layout := range []string{LocalDateTimeLayout, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// FormatClock returns the HH:MM part of a timestamp
// Example: "2024-05-01T07:05:00" -> "07:05"
func FormatClock(value string) string {
	t, ok := ParseTimestamp(value)
	if !ok {
		return value
	}

	return t.Format("15:04")
}

// FormatPrice joins currency and amount the way offers are displayed
// Example: ("INR", "5400.00") -> "INR 5400.00"
func FormatPrice(currency, total string) string {
	return strings.TrimSpace(currency + " " + total)
}

// JoinNonEmpty joins the non-blank parts with sep.
func JoinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, sep)
}

// FirstNonEmpty returns the first non-empty value, or "" when all are empty.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
