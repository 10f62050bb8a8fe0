package rates

import (
	"time"

	"github.com/crazytosser25/goit-web-hw-05/provider/privat"
)

// DayRange returns n calendar days ending at today, most recent first. Each day is at midnight
// in the location of today
func DayRange(today time.Time, n int) []time.Time {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	days := make([]time.Time, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, -i)
	}

	return days
}

// FormatDay renders a day as DD.MM.YYYY
func FormatDay(day time.Time) string {
	return day.Format(privat.DateLayout)
}
