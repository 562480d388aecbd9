package core

import (
	"testing"
	"time"
)

func TestMonthKey(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	if got := MonthKey(time.Date(2026, time.August, 29, 23, 0, 0, 0, loc)); got != "2026-08" {
		t.Errorf("MonthKey = %q, want 2026-08", got)
	}
}

func TestPrevMonthKey(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), "2026-07"},
		{time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), "2025-12"},
		// End-of-month dates must not skip back into the same month.
		{time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "2026-02"},
	}
	for _, tt := range tests {
		if got := PrevMonthKey(tt.now); got != tt.want {
			t.Errorf("PrevMonthKey(%s) = %q, want %q", tt.now.Format("2006-01-02"), got, tt.want)
		}
	}
}
