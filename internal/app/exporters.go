package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/crcweb/center-site/internal/content"
	"github.com/crcweb/center-site/internal/render"
)

// HandleCalendarFeed serves the events collection as an ICS subscription
// feed. Events carry no wall-clock start in the content model, so they export
// as all-day entries; recurring events carry an RRULE so subscribers see
// every occurrence without the feed enumerating them.
func (s *Server) HandleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	events := s.store.Session().Events()

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	// No Content-Disposition header: calendar apps need inline content for
	// subscriptions.

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", ICSProductID)
	fmt.Fprintln(w, "METHOD:PUBLISH")
	fmt.Fprintf(w, "X-WR-CALNAME:%s Events\n", s.cfg.SiteTitle)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")
	fmt.Fprintln(w, "X-PUBLISHED-TTL:PT1H")

	stamp := s.now().UTC().Format("20060102T150405Z")
	for _, event := range events {
		date, ok := render.ParseDate(event.Date)
		if !ok {
			continue
		}

		// UID must be stable across fetches for calendar apps to update
		// rather than duplicate.
		uid := fmt.Sprintf("%s-%s@%s", event.ID, event.Date, ICSDomain)

		fmt.Fprintln(w, "BEGIN:VEVENT")
		fmt.Fprintf(w, "UID:%s\n", uid)
		fmt.Fprintf(w, "DTSTAMP:%s\n", stamp)
		fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", date.Format("20060102"))
		fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", date.AddDate(0, 0, 1).Format("20060102"))
		fmt.Fprintf(w, "SUMMARY:%s\n", icsEscape(event.Title))
		if event.Preview != "" {
			fmt.Fprintf(w, "DESCRIPTION:%s\n", icsEscape(event.Preview))
		}
		if event.Location != "" {
			fmt.Fprintf(w, "LOCATION:%s\n", icsEscape(event.Location))
		}
		if rule := recurrenceRule(event.Recurrence); rule != "" {
			fmt.Fprintf(w, "RRULE:%s\n", rule)
		}
		fmt.Fprintln(w, "END:VEVENT")
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

// recurrenceRule maps a content recurrence to its RRULE, empty for one-off
// events.
func recurrenceRule(recurrence string) string {
	switch recurrence {
	case content.RecurWeekly:
		return "FREQ=WEEKLY"
	case content.RecurMonthly:
		return "FREQ=MONTHLY"
	case content.RecurYearly:
		return "FREQ=YEARLY"
	}
	return ""
}

// icsEscape escapes text per RFC 5545 (commas, semicolons, newlines).
func icsEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
