package helper

import (
	"errors"
	"fmt"
	"log"
	"pizzeria_kassa/model"
	"sync"
	"time"

	"gorm.io/gorm"
)

// receiptMu serializes live counter increments with renumbering inside this
// process. It is always taken before a connection is checked out, never while
// a transaction is open.
var receiptMu sync.Mutex

func withReceiptLock(fn func() error) error {
	receiptMu.Lock()
	defer receiptMu.Unlock()
	return fn()
}

const nextReceiptCounterSQL = `INSERT INTO receipt_counters (year, day_of_year, last_number)
VALUES (?, ?, 1)
ON CONFLICT (year, day_of_year) DO UPDATE SET last_number = receipt_counters.last_number + 1
RETURNING last_number`

func FormatReceiptNumber(year, sequence int) string {
	return fmt.Sprintf("%04d%04d", year, sequence)
}

// NextReceiptNumber increments the counter of now's (year, day-of-year) in a
// single statement and returns the resulting bon number, e.g. "20240007".
// It takes receiptMu, so db must not be an open transaction.
func NextReceiptNumber(db *gorm.DB, now time.Time) (string, error) {
	var number string
	err := withReceiptLock(func() error {
		var err error
		number, err = nextReceiptNumber(db, now)
		return err
	})
	return number, err
}

// nextReceiptNumber expects the caller to hold receiptMu.
func nextReceiptNumber(db *gorm.DB, now time.Time) (string, error) {
	year, day := now.Year(), now.YearDay()
	var seq int
	if err := db.Raw(nextReceiptCounterSQL, year, day).Scan(&seq).Error; err != nil {
		return "", fmt.Errorf("increment receipt counter %d/%d: %w", year, day, err)
	}
	if seq <= 0 {
		return "", errors.New("receipt counter returned no value")
	}
	return FormatReceiptNumber(year, seq), nil
}

type RenumberResult struct {
	Orders  int `json:"orders"`
	Changed int `json:"changed"`
	Days    int `json:"days"`
}

type dayKey struct {
	year int
	day  int
}

// RenumberReceipts recomputes every receipt number in chronological order
// (date, time, id), restarting at 1 on each day, and rewrites the counter table
// so the next live number continues after the last renumbered order.
func RenumberReceipts(db *gorm.DB) (*RenumberResult, error) {
	receiptMu.Lock()
	defer receiptMu.Unlock()

	result := &RenumberResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		// other processes increment the counter in their own order transaction
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec("LOCK TABLE receipt_counters IN EXCLUSIVE MODE").Error; err != nil {
				return err
			}
		}
		var orders []model.Order
		if err := tx.Select("id", "date", "time", "receipt_number").
			Order("date ASC, time ASC, id ASC").
			Find(&orders).Error; err != nil {
			return err
		}

		counters := map[dayKey]int{}
		var days []dayKey
		for _, o := range orders {
			k := dayKey{o.Date.Year(), o.Date.YearDay()}
			if _, ok := counters[k]; !ok {
				days = append(days, k)
			}
			counters[k]++
			number := FormatReceiptNumber(k.year, counters[k])
			if number == o.ReceiptNumber {
				continue
			}
			if err := tx.Model(&model.Order{}).Where("id = ?", o.ID).
				Update("receipt_number", number).Error; err != nil {
				return err
			}
			result.Changed++
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.ReceiptCounter{}).Error; err != nil {
			return err
		}
		rows := make([]model.ReceiptCounter, 0, len(days))
		for _, k := range days {
			rows = append(rows, model.ReceiptCounter{Year: k.year, DayOfYear: k.day, LastNumber: counters[k]})
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, 200).Error; err != nil {
				return err
			}
		}

		result.Orders = len(orders)
		result.Days = len(days)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("renumber receipts: %w", err)
	}
	log.Printf("Renumbered %d orders over %d days, %d numbers changed", result.Orders, result.Days, result.Changed)
	return result, nil
}

// PruneReceiptCounters drops counter rows of years before keepFrom.
func PruneReceiptCounters(db *gorm.DB, keepFrom int) (int64, error) {
	res := db.Where("year < ?", keepFrom).Delete(&model.ReceiptCounter{})
	return res.RowsAffected, res.Error
}
