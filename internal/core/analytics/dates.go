package analytics

import "time"

// dateKeyLayout is the ISO day format used for by-day buckets
const dateKeyLayout = "2006-01-02"

// defaultWindowDays is the trailing inclusive window applied when a bound is missing
const defaultWindowDays = 30

// ParseDateOnly interprets an ISO "YYYY-MM-DD" string as UTC midnight of that day
func ParseDateOnly(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// StartOfUTCDay truncates t to UTC midnight
func StartOfUTCDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays performs calendar-day arithmetic in UTC, n may be negative
func AddDays(t time.Time, n int) time.Time {
	return t.UTC().AddDate(0, 0, n)
}

// DaysBetweenInclusive counts calendar days from start to end, both inclusive
// never returns less than 1 so downstream division is safe
func DaysBetweenInclusive(start, end time.Time) int {
	s := StartOfUTCDay(start)
	e := StartOfUTCDay(end)
	days := int(e.Sub(s).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// FormatDateKey emits "YYYY-MM-DD" in UTC
func FormatDateKey(t time.Time) string {
	return t.UTC().Format(dateKeyLayout)
}

// ResolveRange normalizes optional from/to bounds into an inclusive UTC day range.
// With neither bound the range is the trailing 30-day window ending today (UTC).
// With one bound the other defaults 29 days away, anchored on the given bound.
// A from after to is swapped rather than rejected
func ResolveRange(now time.Time, from, to *time.Time) Range {
	switch {
	case from == nil && to == nil:
		end := StartOfUTCDay(now)
		return Range{Start: AddDays(end, -(defaultWindowDays - 1)), End: end}
	case from != nil && to == nil:
		start := StartOfUTCDay(*from)
		return Range{Start: start, End: AddDays(start, defaultWindowDays-1)}
	case from == nil && to != nil:
		end := StartOfUTCDay(*to)
		return Range{Start: AddDays(end, -(defaultWindowDays - 1)), End: end}
	default:
		start := StartOfUTCDay(*from)
		end := StartOfUTCDay(*to)
		if start.After(end) {
			start, end = end, start
		}
		return Range{Start: start, End: end}
	}
}

// Days returns every calendar day of the range ascending, both bounds inclusive
func (r Range) Days() []time.Time {
	n := DaysBetweenInclusive(r.Start, r.End)
	out := make([]time.Time, 0, n)
	d := StartOfUTCDay(r.Start)
	for i := 0; i < n; i++ {
		out = append(out, d)
		d = AddDays(d, 1)
	}
	return out
}
