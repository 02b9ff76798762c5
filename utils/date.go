package utils

import "time"

// TicketDateLayout is the date format embedded in QR payloads and printed on
// tickets.
const TicketDateLayout = "02.01.2006"

func FormatTicketDate(t time.Time) string {
	return t.Format(TicketDateLayout)
}

// Today returns the current date truncated to midnight local time.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// DateBefore compares only the calendar dates of a and b.
func DateBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

// ParseClientTime accepts the timestamp formats field devices send. Falls
// back to the current time when the value is empty or unparseable.
func ParseClientTime(s string) time.Time {
	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now()
}
