package utils

import "time"

// ISODateLayout is the wire format for trip dates ("2025-06-01").
const ISODateLayout = "2006-01-02"

func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, s)
}

func FormatISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ISODateLayout)
}

// DaysBetweenInclusive counts calendar days covered by [start, end], both ends
// included: 2025-06-01 to 2025-06-05 is 5 days. Returns 0 if end precedes start.
func DaysBetweenInclusive(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if endDay.Before(startDay) {
		return 0
	}
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

func NowUnixSeconds() int64 { return time.Now().Unix() }

func FormatRFC3339UTC(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
