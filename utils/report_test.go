package utils

import (
	"testing"
	"time"
)

func TestParseReportRange(t *testing.T) {
	now := time.Date(2024, 6, 15, 21, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		from, to string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{"defaults to month so far", "", "", "2024-06-01", "2024-06-15", false},
		{"explicit range", "2024-05-01", "2024-05-31", "2024-05-01", "2024-05-31", false},
		{"from defaults to first of to's month", "", "2024-02-10", "2024-02-01", "2024-02-10", false},
		{"single day", "2024-06-01", "2024-06-01", "2024-06-01", "2024-06-01", false},
		{"bad from", "01/06/2024", "", "", "", true},
		{"bad to", "", "2024-13-01", "", "", true},
		{"reversed", "2024-06-10", "2024-06-01", "", "", true},
		{"leap year fits", "2024-01-01", "2024-12-31", "2024-01-01", "2024-12-31", false},
		{"longer than a year", "2023-01-01", "2024-06-01", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, err := ParseReportRange(tt.from, tt.to, now)
			if tt.wantErr {
				if !IsKind(err, KindValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if from.String() != tt.wantFrom || to.String() != tt.wantTo {
				t.Fatalf("range = %s..%s, want %s..%s", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	from, _ := ParseCustomDate("2024-02-27")
	to, _ := ParseCustomDate("2024-03-01")
	if got := DaysBetween(from, to); got != 4 {
		t.Fatalf("DaysBetween = %d, want 4", got)
	}
	if got := DaysBetween(from, from); got != 1 {
		t.Fatalf("DaysBetween same day = %d, want 1", got)
	}
}

func TestAverageOf(t *testing.T) {
	if got := AverageOf(10, 3); got != 3.33 {
		t.Fatalf("AverageOf(10, 3) = %v", got)
	}
	if got := AverageOf(10, 0); got != 0 {
		t.Fatalf("AverageOf(10, 0) = %v", got)
	}
}
