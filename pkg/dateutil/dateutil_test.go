package dateutil

import (
	"testing"
	"time"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%s): %v", name, err)
	}
	return loc
}

func TestDateOf_ReferenceTimezone(t *testing.T) {
	seoul := mustLocation(t, "Asia/Seoul")

	// 23:30 UTC on March 10 is already March 11 in Seoul (UTC+9).
	ts := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	if got := DateOf(ts, seoul); got != "2024-03-11" {
		t.Fatalf("DateOf = %q, want 2024-03-11", got)
	}

	// 14:00 UTC the same day is still March 10 in Seoul.
	ts = time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	if got := DateOf(ts, seoul); got != "2024-03-10" {
		t.Fatalf("DateOf = %q, want 2024-03-10", got)
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2024-03-10", 1, "2024-03-11"},
		{"2024-03-01", -1, "2024-02-29"}, // leap year
		{"2023-12-31", 1, "2024-01-01"},
		{"2024-03-10", 0, "2024-03-10"},
	}

	for _, tt := range tests {
		if got := AddDays(tt.date, tt.n); got != tt.want {
			t.Fatalf("AddDays(%s, %d) = %s, want %s", tt.date, tt.n, got, tt.want)
		}
	}
}

func TestDayBounds(t *testing.T) {
	seoul := mustLocation(t, "Asia/Seoul")

	start, end, err := DayBounds("2024-03-10", seoul)
	if err != nil {
		t.Fatalf("DayBounds: %v", err)
	}
	if start.Hour() != 0 || start.Location() != seoul {
		t.Fatalf("unexpected start: %v", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("end is not start+1d: %v", end)
	}

	if _, _, err := DayBounds("not-a-date", seoul); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestMonthBounds(t *testing.T) {
	first, last, err := MonthBounds("2024-02-15")
	if err != nil {
		t.Fatalf("MonthBounds: %v", err)
	}
	if first != "2024-02-01" || last != "2024-02-29" {
		t.Fatalf("MonthBounds = %s..%s", first, last)
	}

	first, last, _ = MonthBounds("2023-12-31")
	if first != "2023-12-01" || last != "2023-12-31" {
		t.Fatalf("MonthBounds = %s..%s", first, last)
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2024-03-10"); got != "2024-03" {
		t.Fatalf("MonthLabel = %q", got)
	}
}

func TestDatesBetween(t *testing.T) {
	dates := DatesBetween("2024-02-27", "2024-03-02")
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d", len(dates), len(want))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("dates[%d] = %s, want %s", i, dates[i], want[i])
		}
	}

	if got := DatesBetween("2024-03-02", "2024-03-01"); got != nil {
		t.Fatalf("expected nil for inverted range, got %v", got)
	}
}
