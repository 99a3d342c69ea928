package models

import "time"

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// CivilDate strips the time-of-day and timezone from t, keeping only the
// calendar date as seen in t's own location. All engine dates are stored in
// this normalized form (midnight UTC), so date arithmetic is exact.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights returns the whole days between two normalized civil dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
