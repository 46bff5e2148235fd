package helper

import (
	"encoding/json"
	"math"
	"pizzeria_kassa/model"
	"strings"
	"testing"

	"gorm.io/datatypes"
)

func orderLine(category, product string, qty int, price float64, extras model.Extras, note string) model.OrderLine {
	return model.OrderLine{
		Category:    category,
		ProductName: product,
		Quantity:    qty,
		UnitPrice:   price,
		Extras:      datatypes.NewJSONType(extras),
		Note:        note,
	}
}

func categoryNames(s *OrderSummary) []string {
	var out []string
	for _, c := range s.Categories {
		out = append(out, c.Category)
	}
	return out
}

func TestSummarizeOrderLinesMergesIdenticalLines(t *testing.T) {
	lines := []model.OrderLine{
		orderLine("Pizza", "Margherita", 1, 10, model.Extras{}, ""),
		orderLine("Pizza", "Margherita", 2, 10, model.Extras{}, ""),
		orderLine("Pizza", "Margherita", 1, 10, model.Extras{}, "extra kaas"),
		orderLine("Pizza", "Margherita", 1, 10, model.Extras{Garnering: model.StringList{"olijven"}}, ""),
	}
	s := SummarizeOrderLines(lines, nil)

	if len(s.Categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(s.Categories))
	}
	got := s.Categories[0].Lines
	if len(got) != 3 {
		t.Fatalf("got %d groups, want 3: %+v", len(got), got)
	}
	if got[0].Quantity != 3 || got[0].LineTotal != 30 {
		t.Fatalf("merged group = %d x %.2f, want 3 x 30.00", got[0].Quantity, got[0].LineTotal)
	}
	if s.ItemCount != 5 || s.Total != 50 {
		t.Fatalf("itemCount=%d total=%.2f, want 5 and 50", s.ItemCount, s.Total)
	}
}

func TestSummarizeOrderLinesOrdering(t *testing.T) {
	lines := []model.OrderLine{
		orderLine("Dranken", "Cola", 1, 2.5, model.Extras{}, ""),
		orderLine("Schotel", "Kip", 1, 15, model.Extras{}, ""),
		orderLine("Pizza", "Salami", 1, 11, model.Extras{}, ""),
		orderLine("Broodjes", "Kebab", 1, 7, model.Extras{}, ""),
		orderLine("Pizza", "Margherita", 1, 10, model.Extras{}, ""),
	}

	s := SummarizeOrderLines(lines, []string{"pizza", "Schotel"})
	want := []string{"Pizza", "Schotel", "Broodjes", "Dranken"}
	if got := categoryNames(s); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("category order = %v, want %v", got, want)
	}
	pizza := s.Categories[0].Lines
	if pizza[0].ProductName != "Margherita" || pizza[1].ProductName != "Salami" {
		t.Fatalf("pizza lines not sorted by name: %s, %s", pizza[0].ProductName, pizza[1].ProductName)
	}
	if s.Categories[0].Subtotal != 21 {
		t.Fatalf("pizza subtotal = %.2f, want 21", s.Categories[0].Subtotal)
	}

	s = SummarizeOrderLines(lines, nil)
	want = []string{"Broodjes", "Dranken", "Pizza", "Schotel"}
	if got := categoryNames(s); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("lexicographic order = %v, want %v", got, want)
	}
}

func TestSummarizeOrderLinesPricing(t *testing.T) {
	lines := []model.OrderLine{
		orderLine("Broodje", "Kip", 2, 8, model.Extras{Sauzen: model.StringList{"looksaus"}, SauzenToeslag: 0.5}, ""),
		orderLine("Pizza", "Margherita", 1, 10, model.Extras{VolleKaart: true}, ""),
		orderLine("Pizza", "Salami", 0, 11, model.Extras{}, ""),
		orderLine("Pizza", "Funghi", -2, 11, model.Extras{}, ""),
		orderLine("Dranken", "Water", 1, math.NaN(), model.Extras{}, ""),
	}
	s := SummarizeOrderLines(lines, nil)

	if s.ItemCount != 4 {
		t.Fatalf("itemCount = %d, want 4", s.ItemCount)
	}
	if s.Total != 17 {
		t.Fatalf("total = %.2f, want 17", s.Total)
	}
	broodje := s.Categories[0].Lines[0]
	if broodje.UnitPrice != 8.5 || broodje.LineTotal != 17 {
		t.Fatalf("broodje unit=%.2f total=%.2f, want 8.50 and 17.00", broodje.UnitPrice, broodje.LineTotal)
	}
	free := s.Categories[2].Lines[0]
	if !free.Free || free.LineTotal != 0 {
		t.Fatalf("volle kaart line = %+v, want free with zero total", free)
	}
	water := s.Categories[1].Lines[0]
	if water.LineTotal != 0 {
		t.Fatalf("NaN price gave line total %.2f", water.LineTotal)
	}
}

func TestSummarizeOrderLinesMalformedNumbers(t *testing.T) {
	tests := []struct {
		name       string
		surcharge  string
		wantGroups int
		wantTotal  float64
	}{
		{"nan", `"NaN"`, 1, 20},
		{"infinity", `"Inf"`, 1, 20},
		{"negative infinity", `"-infinity"`, 1, 20},
		{"text", `"abc"`, 1, 20},
		{"decimal comma", `"0,50"`, 2, 20.5},
		{"negative", `"-1"`, 2, 20},
		{"overflow", `1e400`, 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var extras model.Extras
			if err := json.Unmarshal([]byte(`{"sauzen_toeslag": `+tt.surcharge+`}`), &extras); err != nil {
				t.Fatalf("decode extras: %v", err)
			}
			lines := []model.OrderLine{
				orderLine("Pizza", "Margherita", 1, 10, model.Extras{}, ""),
				orderLine("Pizza", "Margherita", 1, 10, extras, ""),
				orderLine("Dranken", "Water", 1, math.Inf(1), model.Extras{}, ""),
			}
			s := SummarizeOrderLines(lines, []string{"Pizza", "Dranken"})

			if got := len(s.Categories[0].Lines); got != tt.wantGroups {
				t.Fatalf("pizza groups = %d, want %d", got, tt.wantGroups)
			}
			if s.Total != tt.wantTotal {
				t.Fatalf("total = %v, want %v", s.Total, tt.wantTotal)
			}
			var sum float64
			for _, c := range s.Categories {
				sum += c.Subtotal
			}
			if math.Abs(sum-s.Total) > 1e-9 {
				t.Fatalf("subtotals add up to %v, total is %v", sum, s.Total)
			}
			if s.ItemCount != 3 {
				t.Fatalf("itemCount = %d, want 3", s.ItemCount)
			}
			if _, err := json.Marshal(s); err != nil {
				t.Fatalf("summary does not encode: %v", err)
			}
			if bon := s.Render(); strings.Contains(strings.ToLower(bon), "nan") || strings.Contains(strings.ToLower(bon), "inf") {
				t.Fatalf("bon shows a non-finite amount:\n%s", bon)
			}
		})
	}
}

func TestSummarizeOrderLinesEmpty(t *testing.T) {
	s := SummarizeOrderLines(nil, []string{"Pizza"})
	if len(s.Categories) != 0 || s.Total != 0 || s.ItemCount != 0 {
		t.Fatalf("empty summary = %+v", s)
	}
	if !strings.Contains(s.Render(), "TOTAAL (0 st.)") {
		t.Fatalf("empty render misses total line:\n%s", s.Render())
	}
}

func TestOrderSummaryRender(t *testing.T) {
	lines := []model.OrderLine{
		orderLine("Pizza", "12. Hawaii", 2, 12.5, model.Extras{Garnering: model.StringList{"ananas"}}, "goed gebakken"),
		orderLine("Pizza", "7. Salami", 1, 11, model.Extras{VolleKaart: true}, ""),
		orderLine("", "Cola", 1, 2.5, model.Extras{}, ""),
	}
	s := SummarizeOrderLines(lines, []string{"Pizza"})
	s.ApplyDiscount(true, 10)

	if s.Total != 27.5 || s.Discount != 2.75 || s.TotalAfterDiscount != 24.75 {
		t.Fatalf("totals = %.2f / %.2f / %.2f", s.Total, s.Discount, s.TotalAfterDiscount)
	}

	out := s.Render()
	for _, want := range []string{
		"== Pizza ==",
		"2x 12",
		"25.00",
		"Garnering: ananas",
		"! goed gebakken",
		"GRATIS",
		"== Overige ==",
		"TOTAAL (4 st.)",
		"Korting afhaal 10%",
		"-2.75",
		"TE BETALEN",
		"24.75",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render misses %q:\n%s", want, out)
		}
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if n := len([]rune(line)); n > bonWidth {
			t.Errorf("line wider than %d: %q", bonWidth, line)
		}
	}
}

func TestApplyDiscountWithoutTakeOut(t *testing.T) {
	s := SummarizeOrderLines([]model.OrderLine{orderLine("Pizza", "Margherita", 1, 10, model.Extras{}, "")}, nil)
	s.ApplyDiscount(false, 10)
	if s.Discount != 0 || s.DiscountPct != 0 || s.TotalAfterDiscount != 10 {
		t.Fatalf("discount applied without take-out: %+v", s)
	}
	if strings.Contains(s.Render(), "Korting") {
		t.Fatal("render shows a discount line without discount")
	}
}
