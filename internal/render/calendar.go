package render

import (
	"fmt"
	"time"

	"github.com/crcweb/center-site/internal/content"
)

// ParseDate parses an ISO calendar date as midnight local time. Interpreting
// the string as UTC would roll the day backward or forward in zones away from
// Greenwich, so every date comparison in the calendar goes through here.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Occurs reports whether an event occurs or recurs on the given calendar day.
// Recurrence never applies before the event's anchor date; the anchor itself
// matches regardless of the recurrence rule.
func Occurs(event content.Item, cell time.Time) bool {
	base, ok := ParseDate(event.Date)
	if !ok {
		return false
	}
	if cell.Before(base) {
		return false
	}
	if sameDay(cell, base) {
		return true
	}

	switch event.Recurrence {
	case content.RecurWeekly:
		return cell.Weekday() == base.Weekday()
	case content.RecurMonthly:
		return cell.Day() == base.Day()
	case content.RecurYearly:
		return cell.Month() == base.Month() && cell.Day() == base.Day()
	}
	return false
}

// ChangeMonth advances or retreats a displayed (year, month) by offset months,
// rolling over year boundaries in either direction.
func ChangeMonth(year int, month time.Month, offset int) (int, time.Month) {
	t := time.Date(year, month+time.Month(offset), 1, 0, 0, 0, 0, time.Local)
	return t.Year(), t.Month()
}

// EventSummary is the tooltip content for a calendar day with matches.
type EventSummary struct {
	ID       string
	Title    string
	Time     string // "All Day" when the event has no time
	Location string // "TBA" when the event has no location
}

// Day is one cell of the month grid. Leading cells before the 1st have
// Day == 0 and render empty.
type Day struct {
	Day       int
	HasEvent  bool
	First     *EventSummary
	MoreCount int // additional matches beyond the first
}

// MoreLabel is the "+N more" tooltip line, empty when the cell has at most
// one match.
func (d Day) MoreLabel() string {
	if d.MoreCount <= 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", d.MoreCount)
}

// MonthView is the render model for one displayed calendar month.
type MonthView struct {
	Year      int
	Month     time.Month
	Days      []Day
	PrevYear  int
	PrevMonth time.Month
	NextYear  int
	NextMonth time.Month
}

// Title is the "January 2025" heading.
func (v MonthView) Title() string {
	return fmt.Sprintf("%s %d", v.Month, v.Year)
}

// DayNames is the Sunday-first column header row.
var DayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BuildMonth computes the Sunday-first grid for (year, month), marking each
// day that has at least one occurring or recurring event. An empty events
// collection yields a grid with no marked days.
func BuildMonth(year int, month time.Month, events []content.Item) MonthView {
	view := MonthView{Year: year, Month: month}
	view.PrevYear, view.PrevMonth = ChangeMonth(year, month, -1)
	view.NextYear, view.NextMonth = ChangeMonth(year, month, +1)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	for i := 0; i < int(first.Weekday()); i++ {
		view.Days = append(view.Days, Day{})
	}

	for day := 1; day <= daysInMonth; day++ {
		cellDate := time.Date(year, month, day, 0, 0, 0, 0, time.Local)

		var matches []content.Item
		for _, e := range events {
			if Occurs(e, cellDate) {
				matches = append(matches, e)
			}
		}

		cell := Day{Day: day}
		if len(matches) > 0 {
			cell.HasEvent = true
			cell.First = summarize(matches[0])
			cell.MoreCount = len(matches) - 1
		}
		view.Days = append(view.Days, cell)
	}

	return view
}

func summarize(e content.Item) *EventSummary {
	s := &EventSummary{ID: e.ID, Title: e.Title, Time: e.Time, Location: e.Location}
	if s.Time == "" {
		s.Time = "All Day"
	}
	if s.Location == "" {
		s.Location = "TBA"
	}
	return s
}
