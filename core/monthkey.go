package core

import "time"

// MonthKey renders t as the canonical "YYYY-MM" document key in t's location.
// Current-month checks are string equality on this key.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// PrevMonthKey is the key of the calendar month before t. Normalizes to the
// first of the month so a Jan 31 "now" does not land back in January.
func PrevMonthKey(t time.Time) string {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return MonthKey(first.AddDate(0, -1, 0))
}
