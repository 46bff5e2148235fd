package helper

import (
	"fmt"
	"math"
	"pizzeria_kassa/model"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const bonWidth = 40

type SummaryLine struct {
	Category    string       `json:"category"`
	ProductName string       `json:"productName"`
	DisplayName string       `json:"displayName"`
	Quantity    int          `json:"quantity"`
	UnitPrice   float64      `json:"unitPrice"`
	LineTotal   float64      `json:"lineTotal"`
	Free        bool         `json:"free"`
	Extras      model.Extras `json:"extras"`
	Details     []string     `json:"details,omitempty"`
	Note        string       `json:"note,omitempty"`
}

type CategorySummary struct {
	Category string        `json:"category"`
	Lines    []SummaryLine `json:"lines"`
	Subtotal float64       `json:"subtotal"`
}

// OrderSummary is the grouped view of an order's lines, as printed on the bon.
type OrderSummary struct {
	Categories         []CategorySummary `json:"categories"`
	ItemCount          int               `json:"itemCount"`
	Total              float64           `json:"total"`
	TakeOut            bool              `json:"takeOut"`
	DiscountPct        float64           `json:"discountPct"`
	Discount           float64           `json:"discount"`
	TotalAfterDiscount float64           `json:"totalAfterDiscount"`
}

type lineGroup struct {
	line     SummaryLine
	unit     decimal.Decimal
	quantity int
}

// safeAmount coerces NaN and infinities to zero.
func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func groupKey(line model.OrderLine, extras model.Extras) string {
	return line.Category + "\x1f" + line.ProductName + "\x1f" + extras.Key() + "\x1f" + line.Note
}

// SummarizeOrderLines merges lines sharing category, product name, extras and
// note, then orders them by category (categoryOrder first, the rest
// alphabetically) and product name. Lines with a non-positive quantity are skipped.
func SummarizeOrderLines(lines []model.OrderLine, categoryOrder []string) *OrderSummary {
	groups := map[string]*lineGroup{}
	var keys []string

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		extras := line.Extras.Data()
		key := groupKey(line, extras)
		g, ok := groups[key]
		if !ok {
			unit := decimal.NewFromFloat(safeAmount(line.UnitPrice)).
				Add(decimal.NewFromFloat(safeAmount(extras.Surcharge())))
			free := extras.VolleKaart
			if free {
				unit = decimal.Zero
			}
			unitF, _ := unit.Float64()
			g = &lineGroup{
				unit: unit,
				line: SummaryLine{
					Category:    line.Category,
					ProductName: line.ProductName,
					DisplayName: DisplayName(line.Category, line.ProductName, extras),
					UnitPrice:   unitF,
					Free:        free,
					Extras:      extras,
					Details:     extras.Details(),
					Note:        line.Note,
				},
			}
			groups[key] = g
			keys = append(keys, key)
		}
		g.quantity += line.Quantity
	}

	byCategory := map[string][]SummaryLine{}
	var categories []string
	summary := &OrderSummary{}
	total := decimal.Zero

	for _, key := range keys {
		g := groups[key]
		lt := g.unit.Mul(decimal.NewFromInt(int64(g.quantity))).Round(2)
		g.line.Quantity = g.quantity
		g.line.LineTotal, _ = lt.Float64()
		if _, seen := byCategory[g.line.Category]; !seen {
			categories = append(categories, g.line.Category)
		}
		byCategory[g.line.Category] = append(byCategory[g.line.Category], g.line)
		summary.ItemCount += g.quantity
	}

	sortCategories(categories, categoryOrder)

	for _, cat := range categories {
		catLines := byCategory[cat]
		sort.SliceStable(catLines, func(i, j int) bool {
			return catLines[i].ProductName < catLines[j].ProductName
		})
		subtotal := decimal.Zero
		for _, l := range catLines {
			subtotal = subtotal.Add(decimal.NewFromFloat(l.LineTotal))
		}
		total = total.Add(subtotal)
		sub, _ := subtotal.Float64()
		summary.Categories = append(summary.Categories, CategorySummary{
			Category: cat,
			Lines:    catLines,
			Subtotal: sub,
		})
	}

	summary.Total, _ = total.Float64()
	summary.TotalAfterDiscount = summary.Total
	return summary
}

// sortCategories orders categories by their position in order, matching
// case-insensitively; unlisted categories follow in lexicographic order.
func sortCategories(categories []string, order []string) {
	rank := make(map[string]int, len(order))
	for i, c := range order {
		k := strings.ToLower(strings.TrimSpace(c))
		if _, dup := rank[k]; !dup {
			rank[k] = i
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		ri, okI := rank[strings.ToLower(categories[i])]
		rj, okJ := rank[strings.ToLower(categories[j])]
		switch {
		case okI && okJ:
			return ri < rj
		case okI:
			return true
		case okJ:
			return false
		default:
			return categories[i] < categories[j]
		}
	})
}

// ApplyDiscount fills the discount fields of s from CalculateDiscount.
func (s *OrderSummary) ApplyDiscount(takeOut bool, pct float64) {
	s.TakeOut = takeOut
	s.Discount, s.TotalAfterDiscount = CalculateDiscount(s.Total, takeOut, pct)
	if s.Discount > 0 {
		s.DiscountPct = pct
	} else {
		s.DiscountPct = 0
	}
}

func padLine(left, right string) string {
	gap := bonWidth - len([]rune(left)) - len([]rune(right))
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// Render returns the fixed-width text bon.
func (s *OrderSummary) Render() string {
	var b strings.Builder
	for _, cat := range s.Categories {
		title := cat.Category
		if title == "" {
			title = "Overige"
		}
		b.WriteString("== " + title + " ==\n")
		for _, l := range cat.Lines {
			amount := formatAmount(l.LineTotal)
			if l.Free {
				amount = "GRATIS"
			}
			b.WriteString(padLine(fmt.Sprintf("%3dx %s", l.Quantity, l.DisplayName), amount) + "\n")
			for _, d := range l.Details {
				b.WriteString("      " + d + "\n")
			}
			if l.Note != "" {
				b.WriteString("      ! " + l.Note + "\n")
			}
		}
		b.WriteString(padLine("  Subtotaal", formatAmount(cat.Subtotal)) + "\n")
	}
	b.WriteString(strings.Repeat("-", bonWidth) + "\n")
	b.WriteString(padLine(fmt.Sprintf("TOTAAL (%d st.)", s.ItemCount), formatAmount(s.Total)) + "\n")
	if s.Discount > 0 {
		b.WriteString(padLine(fmt.Sprintf("Korting afhaal %s%%", decimal.NewFromFloat(s.DiscountPct).String()), "-"+formatAmount(s.Discount)) + "\n")
		b.WriteString(padLine("TE BETALEN", formatAmount(s.TotalAfterDiscount)) + "\n")
	}
	return b.String()
}
