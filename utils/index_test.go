package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := map[string]string{
		" 0470 12.34.56 ":  "0470123456",
		"+32-470/12 34 56": "+32470123456",
		"":                 "",
	}
	for in, want := range tests {
		if got := NormalizePhone(in); got != want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0470 12 34 56", true},
		{"+32 470 12 34 56", true},
		{"03 123 45 67", true},
		{"12345", false},
		{"0470-12-34-5x", false},
		{"+3247012345678901", false},
	}
	for _, tt := range tests {
		if got := IsValidPhone(tt.phone); got != tt.want {
			t.Errorf("IsValidPhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		today, yesterday, want float64
	}{
		{150, 100, 50},
		{50, 100, -50},
		{0, 0, 0},
		{10, 0, 100},
		{1, 3, -66.67},
	}
	for _, tt := range tests {
		if got := CalculateGrowth(tt.today, tt.yesterday); got != tt.want {
			t.Errorf("CalculateGrowth(%v, %v) = %v, want %v", tt.today, tt.yesterday, got, tt.want)
		}
	}
}
