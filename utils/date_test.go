package utils

import (
	"testing"
	"time"
)

func TestFormatTicketDate(t *testing.T) {
	d := time.Date(2026, 8, 29, 15, 30, 0, 0, time.Local)
	if got := FormatTicketDate(d); got != "29.08.2026" {
		t.Errorf("FormatTicketDate = %q, want 29.08.2026", got)
	}
}

func TestDateBeforeIgnoresClock(t *testing.T) {
	morning := time.Date(2026, 8, 29, 1, 0, 0, 0, time.Local)
	evening := time.Date(2026, 8, 29, 23, 0, 0, 0, time.Local)
	if DateBefore(morning, evening) {
		t.Error("same calendar day must not compare as before")
	}
	if !DateBefore(morning, evening.AddDate(0, 0, 1)) {
		t.Error("previous day must compare as before")
	}
}

func TestParseClientTime(t *testing.T) {
	got := ParseClientTime("2026-08-29 13:45:00")
	want := time.Date(2026, 8, 29, 13, 45, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseClientTime = %v, want %v", got, want)
	}

	// unparseable input falls back to now rather than a zero time
	if ParseClientTime("nonsense").IsZero() {
		t.Error("fallback time must not be zero")
	}
	if ParseClientTime("").IsZero() {
		t.Error("empty input must fall back to now")
	}
}
