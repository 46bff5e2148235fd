package utils

import (
	"strings"
	"time"
)

const maxReportDays = 366

// ParseReportRange parses an inclusive from/to pair of YYYY-MM-DD dates. An
// empty to defaults to today and an empty from to the first of to's month.
func ParseReportRange(from, to string, now time.Time) (CustomDate, CustomDate, error) {
	var end CustomDate
	if strings.TrimSpace(to) == "" {
		end = NewCustomDate(now)
	} else {
		d, err := ParseCustomDate(to)
		if err != nil {
			return CustomDate{}, CustomDate{}, NewValidationError("invalid 'to' date, expected YYYY-MM-DD", err)
		}
		end = d
	}

	var start CustomDate
	if strings.TrimSpace(from) == "" {
		start = NewCustomDate(time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC))
	} else {
		d, err := ParseCustomDate(from)
		if err != nil {
			return CustomDate{}, CustomDate{}, NewValidationError("invalid 'from' date, expected YYYY-MM-DD", err)
		}
		start = d
	}

	if start.After(end.Time) {
		return CustomDate{}, CustomDate{}, NewValidationError("'from' must not be after 'to'", nil)
	}
	if DaysBetween(start, end) > maxReportDays {
		return CustomDate{}, CustomDate{}, NewValidationError("report range is limited to one year", nil)
	}
	return start, end, nil
}

// DaysBetween counts the calendar days of the inclusive range.
func DaysBetween(from, to CustomDate) int {
	return int(to.Sub(from.Time).Hours()/24) + 1
}

// AverageOf returns total/count rounded to cents, 0 when count is 0.
func AverageOf(total float64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return RoundFloat(total/float64(count), 2)
}
