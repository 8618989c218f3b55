package app

import (
	"net/http"
	"strings"
	"testing"
)

func TestHandleCalendarFeed(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/calendar.ics")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	resp := w.Result()
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/calendar") {
		t.Errorf("Expected Content-Type text/calendar, got %s", ct)
	}
	// Subscription feeds must be served inline.
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		t.Errorf("Subscription feed must not set Content-Disposition, got %s", cd)
	}

	body := w.Body.String()
	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"METHOD:PUBLISH",
		"X-WR-CALNAME:Research Center Events",
		"X-PUBLISHED-TTL:PT1H",
		"BEGIN:VEVENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(body, field) {
			t.Errorf("Feed missing required field: %s", field)
		}
	}

	// All-day format with exclusive end date.
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20250501") {
		t.Error("Event should be all-day (DTSTART;VALUE=DATE)")
	}
	if !strings.Contains(body, "DTEND;VALUE=DATE:20250502") {
		t.Error("All-day event should end on the next day")
	}

	// Stable UID so calendar apps update instead of duplicating.
	if !strings.Contains(body, "UID:e1-2025-05-01@"+ICSDomain) {
		t.Error("Feed missing stable event UID")
	}

	// The weekly seminar carries an RRULE; the one-off event does not.
	if !strings.Contains(body, "RRULE:FREQ=WEEKLY") {
		t.Error("Recurring event missing RRULE")
	}
	if strings.Count(body, "RRULE:") != 1 {
		t.Errorf("Expected exactly 1 RRULE, got %d", strings.Count(body, "RRULE:"))
	}
}

func TestHandleCalendarFeedEmpty(t *testing.T) {
	server := newTestServer(t, mapFetcher{})

	w := get(t, server, "/calendar.ics")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "BEGIN:VCALENDAR") || !strings.Contains(body, "END:VCALENDAR") {
		t.Error("Empty feed should still be a valid calendar")
	}
	if strings.Contains(body, "BEGIN:VEVENT") {
		t.Error("Empty collection should produce no events")
	}
}

func TestRecurrenceRule(t *testing.T) {
	tests := []struct {
		recurrence string
		want       string
	}{
		{"weekly", "FREQ=WEEKLY"},
		{"monthly", "FREQ=MONTHLY"},
		{"yearly", "FREQ=YEARLY"},
		{"none", ""},
		{"", ""},
		{"fortnightly", ""},
	}

	for _, tt := range tests {
		if got := recurrenceRule(tt.recurrence); got != tt.want {
			t.Errorf("recurrenceRule(%q) = %q, want %q", tt.recurrence, got, tt.want)
		}
	}
}

func TestICSEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a,b;c", `a\,b\;c`},
		{"line1\nline2", `line1\nline2`},
		{`back\slash`, `back\\slash`},
	}

	for _, tt := range tests {
		if got := icsEscape(tt.in); got != tt.want {
			t.Errorf("icsEscape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
