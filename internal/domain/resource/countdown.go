package resource

import "time"

// Midnight truncates t to its calendar day in UTC. Comparing UTC midnights
// keeps day arithmetic exact across DST transitions.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SQLDate renders t's calendar day as an ISO date literal for ::date
// parameters. Passing text sidesteps the session-timezone shift a
// timestamptz-to-date cast would apply.
func SQLDate(t time.Time) string {
	return Midnight(t).Format("2006-01-02")
}

// DaysUntil returns the signed whole-day difference from today to d.
// Negative when d is already past.
func DaysUntil(today, d time.Time) int {
	return int(Midnight(d).Sub(Midnight(today)).Hours() / 24)
}

// ApplyCountdown stamps CountdownDays on every record from its end date and
// today. Records without an end date get a nil countdown. Any previously
// held value is overwritten; stored countdowns are never trusted.
func ApplyCountdown(records []Record, today time.Time) {
	for i := range records {
		if records[i].ResourceEndDate == nil {
			records[i].CountdownDays = nil
			continue
		}
		days := DaysUntil(today, *records[i].ResourceEndDate)
		records[i].CountdownDays = &days
	}
}
