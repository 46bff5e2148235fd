package helper

import (
	"pizzeria_kassa/model"
	"testing"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		category string
		product  string
		extras   model.Extras
		want     string
	}{
		{"Klein", "Margherita", model.Extras{}, "Klein Margherita"},
		{"Groot", "4. Hawaii", model.Extras{}, "Groot 4. Hawaii"},
		{"Turks brood", "Kip", model.Extras{}, "Turks brood Kip"},
		{"Pita", "Pita kebab", model.Extras{}, "Pita kebab"},
		{"Mix grill", "", model.Extras{}, "Mix grill"},
		{"Schotels", "Kip curry", model.Extras{}, "Schotel Kip curry"},
		{"Pizza's", "12. Hawaii", model.Extras{HalfHalf: model.StringList{"12. Hawaii", "7 Salami"}}, "12/7"},
		{"Pizza's", "12. Hawaii", model.Extras{HalfHalf: model.StringList{"12. Hawaii"}}, "12"},
		{"Pizza's", "12. Hawaii", model.Extras{}, "12"},
		{"Dranken", "Cola", model.Extras{}, "Cola"},
		{"", "", model.Extras{}, ""},
	}
	for _, tt := range tests {
		got := DisplayName(tt.category, tt.product, tt.extras)
		if got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.category, tt.product, got, tt.want)
		}
	}
}

func TestProductCode(t *testing.T) {
	tests := map[string]string{
		"Nr 105 Calzone": "105",
		"12. Hawaii":     "12",
		"  Cola ":        "Cola",
		"":               "",
	}
	for in, want := range tests {
		if got := ProductCode(in); got != want {
			t.Errorf("ProductCode(%q) = %q, want %q", in, got, want)
		}
	}
}
