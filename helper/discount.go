package helper

import "github.com/shopspring/decimal"

// CalculateDiscount applies the take-out percentage to total. The discount is
// rounded to cents, half away from zero. Without take-out, or with a
// non-positive percentage or total, nothing is deducted.
func CalculateDiscount(total float64, takeOut bool, pct float64) (discount float64, after float64) {
	if !takeOut || pct <= 0 || total <= 0 {
		return 0, total
	}
	t := decimal.NewFromFloat(total)
	d := t.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100)).Round(2)
	discount, _ = d.Float64()
	after, _ = t.Sub(d).Round(2).Float64()
	return discount, after
}
