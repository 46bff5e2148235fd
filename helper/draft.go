package helper

import (
	"pizzeria_kassa/model"

	"gorm.io/datatypes"
)

// OrderDraft is the order being built at the till. It is owned by one session
// and passed by pointer; nothing about it lives in package state.
type OrderDraft struct {
	lines []model.OrderLine
}

func NewOrderDraft() *OrderDraft {
	return &OrderDraft{}
}

// AddLine appends a line and returns its index.
func (d *OrderDraft) AddLine(category, kind, productName string, productID *uint, quantity int, unitPrice float64, extras model.Extras, note string) int {
	d.lines = append(d.lines, model.OrderLine{
		ProductID:    productID,
		Category:     category,
		CategoryKind: kind,
		ProductName:  productName,
		Quantity:     quantity,
		UnitPrice:    safeAmount(unitPrice),
		Extras:       datatypes.NewJSONType(extras),
		Note:         note,
	})
	return len(d.lines) - 1
}

// SetQuantity changes the quantity of line i; a quantity of zero or less removes it.
func (d *OrderDraft) SetQuantity(i, quantity int) bool {
	if i < 0 || i >= len(d.lines) {
		return false
	}
	if quantity <= 0 {
		return d.RemoveLine(i)
	}
	d.lines[i].Quantity = quantity
	return true
}

func (d *OrderDraft) RemoveLine(i int) bool {
	if i < 0 || i >= len(d.lines) {
		return false
	}
	d.lines = append(d.lines[:i], d.lines[i+1:]...)
	return true
}

func (d *OrderDraft) Clear() {
	d.lines = nil
}

func (d *OrderDraft) IsEmpty() bool {
	return len(d.lines) == 0
}

// Lines returns a copy of the draft lines.
func (d *OrderDraft) Lines() []model.OrderLine {
	out := make([]model.OrderLine, len(d.lines))
	copy(out, d.lines)
	return out
}

func (d *OrderDraft) Summary(categoryOrder []string) *OrderSummary {
	return SummarizeOrderLines(d.lines, categoryOrder)
}

// Totals returns the summary with the take-out discount applied.
func (d *OrderDraft) Totals(categoryOrder []string, takeOut bool, pct float64) *OrderSummary {
	s := d.Summary(categoryOrder)
	s.ApplyDiscount(takeOut, pct)
	return s
}
