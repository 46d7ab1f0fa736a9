package shared

import "time"

// AddBusinessDays advances from by n business days, counting Monday through
// Friday only. There is no holiday calendar. AddBusinessDays(d, 0) == d.
func AddBusinessDays(from time.Time, n int) time.Time {
	date := from
	added := 0
	for added < n {
		date = date.AddDate(0, 0, 1)
		switch date.Weekday() {
		case time.Saturday, time.Sunday:
			// weekend days do not count
		default:
			added++
		}
	}
	return date
}

// IsBusinessDay reports whether t falls on a Monday through Friday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
