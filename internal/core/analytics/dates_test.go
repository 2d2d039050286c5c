package analytics

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := ParseDateOnly(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseDateOnly(t *testing.T) {
	t.Parallel()

	got, err := ParseDateOnly("2025-01-15")
	if err != nil {
		t.Fatalf("ParseDateOnly: %v", err)
	}
	want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("ParseDateOnly = %v, want %v", got, want)
	}

	if _, err := ParseDateOnly("15/01/2025"); err == nil {
		t.Fatalf("ParseDateOnly accepted a non-ISO string")
	}
	if _, err := ParseDateOnly(""); err == nil {
		t.Fatalf("ParseDateOnly accepted an empty string")
	}
}

func TestStartOfUTCDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+5", 5*3600)
	in := time.Date(2025, 3, 10, 2, 30, 0, 0, loc) // 2025-03-09T21:30Z
	got := StartOfUTCDay(in)
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartOfUTCDay = %v, want %v", got, want)
	}
}

func TestAddDays(t *testing.T) {
	t.Parallel()

	base := day("2025-03-01")
	if got := AddDays(base, -1); FormatDateKey(got) != "2025-02-28" {
		t.Fatalf("AddDays(-1) = %s", FormatDateKey(got))
	}
	if got := AddDays(base, 31); FormatDateKey(got) != "2025-04-01" {
		t.Fatalf("AddDays(31) = %s", FormatDateKey(got))
	}
}

func TestDaysBetweenInclusive(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		start, end string
		want       int
	}{
		{"same day", "2025-01-01", "2025-01-01", 1},
		{"two days", "2025-01-01", "2025-01-02", 2},
		{"month boundary", "2025-01-30", "2025-02-02", 4},
		{"inverted clamps to 1", "2025-01-05", "2025-01-01", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetweenInclusive(day(tc.start), day(tc.end)); got != tc.want {
				t.Fatalf("DaysBetweenInclusive(%s, %s) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestResolveRange_Defaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

	// neither bound: trailing 30-day window ending today
	rng := ResolveRange(now, nil, nil)
	if FormatDateKey(rng.End) != "2025-06-15" {
		t.Fatalf("default end = %s", FormatDateKey(rng.End))
	}
	if FormatDateKey(rng.Start) != "2025-05-17" {
		t.Fatalf("default start = %s", FormatDateKey(rng.Start))
	}
	if got := DaysBetweenInclusive(rng.Start, rng.End); got != 30 {
		t.Fatalf("default window = %d days, want 30", got)
	}

	// only from: window anchored forward on from
	from := day("2025-02-01")
	rng = ResolveRange(now, &from, nil)
	if FormatDateKey(rng.Start) != "2025-02-01" || FormatDateKey(rng.End) != "2025-03-02" {
		t.Fatalf("from-only range = [%s, %s]", FormatDateKey(rng.Start), FormatDateKey(rng.End))
	}

	// only to: window anchored backward on to
	to := day("2025-02-01")
	rng = ResolveRange(now, nil, &to)
	if FormatDateKey(rng.Start) != "2025-01-03" || FormatDateKey(rng.End) != "2025-02-01" {
		t.Fatalf("to-only range = [%s, %s]", FormatDateKey(rng.Start), FormatDateKey(rng.End))
	}
}

func TestResolveRange_BothBounds(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	from, to := day("2025-01-01"), day("2025-01-07")

	rng := ResolveRange(now, &from, &to)
	if FormatDateKey(rng.Start) != "2025-01-01" || FormatDateKey(rng.End) != "2025-01-07" {
		t.Fatalf("range = [%s, %s]", FormatDateKey(rng.Start), FormatDateKey(rng.End))
	}

	// inverted bounds swap instead of producing an empty range
	rng = ResolveRange(now, &to, &from)
	if FormatDateKey(rng.Start) != "2025-01-01" || FormatDateKey(rng.End) != "2025-01-07" {
		t.Fatalf("swapped range = [%s, %s]", FormatDateKey(rng.Start), FormatDateKey(rng.End))
	}
}

func TestRangeDays(t *testing.T) {
	t.Parallel()

	rng := Range{Start: day("2025-02-27"), End: day("2025-03-02")}
	days := rng.Days()
	want := []string{"2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02"}
	if len(days) != len(want) {
		t.Fatalf("Days len = %d, want %d", len(days), len(want))
	}
	for i, d := range days {
		if FormatDateKey(d) != want[i] {
			t.Fatalf("Days[%d] = %s, want %s", i, FormatDateKey(d), want[i])
		}
	}
}
