package helper

import (
	"pizzeria_kassa/model"
	"regexp"
	"strings"
)

type categoryLabel struct {
	prefix string
	label  string
}

// Checked in order, so longer prefixes sharing a start must come first.
var categoryLabels = []categoryLabel{
	// sizes
	{"klein", "Klein"},
	{"medium", "Medium"},
	{"groot", "Groot"},
	{"family", "Family"},
	// bread types
	{"turks brood", "Turks brood"},
	{"pita", "Pita"},
	{"baguette", "Baguette"},
	{"durum", "Durum"},
	{"broodje", "Broodje"},
	// dish types
	{"schotel", "Schotel"},
	{"mix grill", "Mix grill"},
	{"kapsalon", "Kapsalon"},
}

var numericCode = regexp.MustCompile(`\d+`)

// ProductCode returns the first run of digits in name, or name itself when it has none.
func ProductCode(name string) string {
	if code := numericCode.FindString(name); code != "" {
		return code
	}
	return strings.TrimSpace(name)
}

func isPizzaCategory(category string) bool {
	return strings.Contains(strings.ToLower(category), "pizza")
}

// DisplayName derives the short name printed on the kitchen bon.
func DisplayName(category, productName string, extras model.Extras) string {
	lower := strings.ToLower(strings.TrimSpace(category))
	for _, cl := range categoryLabels {
		if strings.HasPrefix(lower, cl.prefix) {
			name := strings.TrimSpace(productName)
			if name == "" {
				return cl.label
			}
			if strings.HasPrefix(strings.ToLower(name), cl.prefix) {
				return name
			}
			return cl.label + " " + name
		}
	}
	if isPizzaCategory(category) && len(extras.HalfHalf) == 2 {
		return ProductCode(extras.HalfHalf[0]) + "/" + ProductCode(extras.HalfHalf[1])
	}
	return ProductCode(productName)
}
