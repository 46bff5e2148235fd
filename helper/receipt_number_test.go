package helper

import (
	"fmt"
	"pizzeria_kassa/model"
	"pizzeria_kassa/utils"
	"sync"
	"testing"
	"time"
)

func TestFormatReceiptNumber(t *testing.T) {
	tests := []struct {
		year, seq int
		want      string
	}{
		{2024, 1, "20240001"},
		{2024, 42, "20240042"},
		{2025, 9999, "20259999"},
		{2025, 12345, "202512345"},
	}
	for _, tt := range tests {
		if got := FormatReceiptNumber(tt.year, tt.seq); got != tt.want {
			t.Errorf("FormatReceiptNumber(%d, %d) = %q, want %q", tt.year, tt.seq, got, tt.want)
		}
	}
}

func TestNextReceiptNumberSequence(t *testing.T) {
	db := newTestDB(t)
	day := time.Date(2024, 3, 1, 18, 30, 0, 0, time.UTC)

	for i := 1; i <= 3; i++ {
		got, err := NextReceiptNumber(db, day)
		if err != nil {
			t.Fatalf("NextReceiptNumber: %v", err)
		}
		if want := FormatReceiptNumber(2024, i); got != want {
			t.Fatalf("call %d = %q, want %q", i, got, want)
		}
	}

	got, err := NextReceiptNumber(db, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("NextReceiptNumber next day: %v", err)
	}
	if got != "20240001" {
		t.Fatalf("new day started at %q, want 20240001", got)
	}

	var counter model.ReceiptCounter
	if err := db.Where("year = ? AND day_of_year = ?", 2024, day.YearDay()).First(&counter).Error; err != nil {
		t.Fatalf("load counter: %v", err)
	}
	if counter.LastNumber != 3 {
		t.Fatalf("counter = %d, want 3", counter.LastNumber)
	}
}

func TestNextReceiptNumberConcurrent(t *testing.T) {
	db := newTestDB(t)
	day := time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)

	const n = 20
	var wg sync.WaitGroup
	results := make(chan string, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := NextReceiptNumber(db, day)
			if err != nil {
				errs <- err
				return
			}
			results <- number
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("NextReceiptNumber: %v", err)
	}
	seen := map[string]bool{}
	for r := range results {
		if seen[r] {
			t.Fatalf("duplicate receipt number %s", r)
		}
		seen[r] = true
	}
	for i := 1; i <= n; i++ {
		if !seen[FormatReceiptNumber(2024, i)] {
			t.Fatalf("missing receipt number %s", FormatReceiptNumber(2024, i))
		}
	}
}

func TestRenumberReceipts(t *testing.T) {
	db := newTestDB(t)
	day1 := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	orders := []model.Order{
		{Date: utils.NewCustomDate(day1), Time: "19:00:00", ReceiptNumber: "20240007"},
		{Date: utils.NewCustomDate(day1), Time: "12:00:00", ReceiptNumber: "20240001"},
		{Date: utils.NewCustomDate(day2), Time: "11:00:00", ReceiptNumber: "20240003"},
		{Date: utils.NewCustomDate(day1), Time: "12:00:00", ReceiptNumber: "20240009"},
	}
	for i := range orders {
		orders[i].PublicCode = fmt.Sprintf("ORD-T%d", i)
		orders[i].Status = "New"
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("create order: %v", err)
		}
	}

	result, err := RenumberReceipts(db)
	if err != nil {
		t.Fatalf("RenumberReceipts: %v", err)
	}
	if result.Orders != 4 || result.Days != 2 || result.Changed != 3 {
		t.Fatalf("result = %+v, want 4 orders, 2 days, 3 changed", result)
	}

	want := map[uint]string{
		orders[1].ID: "20240001",
		orders[3].ID: "20240002",
		orders[0].ID: "20240003",
		orders[2].ID: "20240001",
	}
	for id, number := range want {
		var o model.Order
		if err := db.First(&o, id).Error; err != nil {
			t.Fatalf("load order %d: %v", id, err)
		}
		if o.ReceiptNumber != number {
			t.Errorf("order %d has %q, want %q", id, o.ReceiptNumber, number)
		}
	}

	next, err := NextReceiptNumber(db, day1.Add(20*time.Hour))
	if err != nil {
		t.Fatalf("NextReceiptNumber after renumber: %v", err)
	}
	if next != "20240004" {
		t.Fatalf("live number after renumber = %q, want 20240004", next)
	}
}

func TestPruneReceiptCounters(t *testing.T) {
	db := newTestDB(t)
	for _, d := range []time.Time{
		time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	} {
		if _, err := NextReceiptNumber(db, d); err != nil {
			t.Fatalf("NextReceiptNumber: %v", err)
		}
	}
	removed, err := PruneReceiptCounters(db, 2024)
	if err != nil {
		t.Fatalf("PruneReceiptCounters: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed %d counters, want 2", removed)
	}
}

func TestRenumberWhileOrdersInFlight(t *testing.T) {
	t.Setenv("SHOP_TIMEZONE", "UTC")
	db := newTestDB(t)
	fx := seedMenu(t, db)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	const orders = 12
	const renumbers = 4
	start := make(chan struct{})
	errs := make(chan error, orders+renumbers)
	var wg sync.WaitGroup
	for i := 0; i < orders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, _, err := CreateOrder(db, OrderRequest{Input: takeOutInput(fx), Now: now.Add(time.Duration(i) * time.Second)})
			errs <- err
		}(i)
	}
	for i := 0; i < renumbers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := RenumberReceipts(db)
			errs <- err
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	close(start)
	select {
	case <-done:
	case <-time.After(20 * time.Second):
		t.Fatal("orders and renumbering did not finish, receipt lock and connection wait on each other")
	}
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent run: %v", err)
		}
	}

	var numbers []string
	if err := db.Model(&model.Order{}).Order("receipt_number").Pluck("receipt_number", &numbers).Error; err != nil {
		t.Fatalf("load receipt numbers: %v", err)
	}
	if len(numbers) != orders {
		t.Fatalf("stored %d orders, want %d", len(numbers), orders)
	}
	for i, number := range numbers {
		if want := FormatReceiptNumber(2024, i+1); number != want {
			t.Fatalf("receipt numbers = %v, want 20240001..%s without gaps or duplicates", numbers, FormatReceiptNumber(2024, orders))
		}
	}

	next, err := NextReceiptNumber(db, now)
	if err != nil {
		t.Fatalf("NextReceiptNumber: %v", err)
	}
	if want := FormatReceiptNumber(2024, orders+1); next != want {
		t.Fatalf("next live number = %q, want %q", next, want)
	}
}
