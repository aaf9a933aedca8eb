package timefmt

import (
	"testing"
	"time"
)

func TestClock(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"morning", time.Date(2025, 3, 5, 9, 15, 0, 0, loc), "09:15 AM"},
		{"noon", time.Date(2025, 3, 5, 12, 0, 0, 0, loc), "12:00 PM"},
		{"midnight", time.Date(2025, 3, 5, 0, 5, 0, 0, loc), "12:05 AM"},
		{"evening", time.Date(2025, 3, 5, 18, 45, 0, 0, loc), "06:45 PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clock(tt.in); got != tt.want {
				t.Errorf("Clock(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	in := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	if got := Date(in); got != "5 March 2025" {
		t.Errorf("Date() = %q, want %q", got, "5 March 2025")
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	day, err := ParseDay("2025-03-05", loc)
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if day.Hour() != 0 || day.Location() != loc {
		t.Errorf("ParseDay returned %v, want clinic-local midnight", day)
	}
	if got := Day(day); got != "2025-03-05" {
		t.Errorf("Day() = %q, want %q", got, "2025-03-05")
	}
}

func TestParseClock(t *testing.T) {
	loc := time.UTC
	day := time.Date(2025, 3, 5, 0, 0, 0, 0, loc)

	got, err := ParseClock("09:15 AM", day)
	if err != nil {
		t.Fatalf("ParseClock: %v", err)
	}
	want := time.Date(2025, 3, 5, 9, 15, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseClock = %v, want %v", got, want)
	}

	if _, err := ParseClock("25:99", day); err == nil {
		t.Error("ParseClock accepted malformed input")
	}
}
