package helper

import (
	"math"
	"pizzeria_kassa/model"
	"testing"
)

func TestOrderDraftEditing(t *testing.T) {
	d := NewOrderDraft()
	if !d.IsEmpty() {
		t.Fatal("new draft is not empty")
	}

	pizza := d.AddLine("Pizza", "pizza", "Margherita", nil, 1, 10, model.Extras{}, "")
	cola := d.AddLine("Dranken", "other", "Cola", nil, 2, 2.5, model.Extras{}, "")
	d.AddLine("Dranken", "other", "Water", nil, 1, math.NaN(), model.Extras{}, "")

	if !d.SetQuantity(pizza, 3) {
		t.Fatal("SetQuantity on an existing line failed")
	}
	if d.SetQuantity(10, 1) || d.RemoveLine(-1) {
		t.Fatal("out-of-range index accepted")
	}
	if !d.SetQuantity(cola, 0) {
		t.Fatal("SetQuantity(0) did not remove the line")
	}

	lines := d.Lines()
	if len(lines) != 2 || lines[0].Quantity != 3 || lines[1].ProductName != "Water" {
		t.Fatalf("lines = %+v", lines)
	}
	if lines[1].UnitPrice != 0 {
		t.Fatalf("NaN price stored as %v", lines[1].UnitPrice)
	}

	lines[0].Quantity = 99
	if d.Lines()[0].Quantity != 3 {
		t.Fatal("Lines does not return a copy")
	}

	s := d.Totals([]string{"Pizza"}, true, 10)
	if s.Total != 30 || s.Discount != 3 || s.TotalAfterDiscount != 27 {
		t.Fatalf("totals = %.2f / %.2f / %.2f", s.Total, s.Discount, s.TotalAfterDiscount)
	}

	d.Clear()
	if !d.IsEmpty() {
		t.Fatal("Clear left lines behind")
	}
}

func TestOrderDraftsAreIndependent(t *testing.T) {
	a, b := NewOrderDraft(), NewOrderDraft()
	a.AddLine("Pizza", "pizza", "Margherita", nil, 1, 10, model.Extras{}, "")
	if !b.IsEmpty() {
		t.Fatal("drafts share state")
	}
}
