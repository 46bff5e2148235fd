package helper

import "testing"

func TestCalculateDiscount(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		takeOut      bool
		pct          float64
		wantDiscount float64
		wantAfter    float64
	}{
		{"take-out ten percent", 100, true, 10, 10, 90},
		{"not take-out", 100, false, 10, 0, 100},
		{"zero percent", 100, true, 0, 0, 100},
		{"negative percent", 10, true, -5, 0, 10},
		{"zero total", 0, true, 10, 0, 0},
		{"negative total", -20, true, 10, 0, -20},
		{"rounds half away from zero", 33.33, true, 15, 5, 28.33},
		{"rounds up to cents", 19.99, true, 10, 2, 17.99},
		{"full discount", 12.5, true, 100, 12.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount, after := CalculateDiscount(tt.total, tt.takeOut, tt.pct)
			if discount != tt.wantDiscount || after != tt.wantAfter {
				t.Fatalf("CalculateDiscount(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.total, tt.takeOut, tt.pct, discount, after, tt.wantDiscount, tt.wantAfter)
			}
		})
	}
}
