package render

import (
	"sort"
	"strings"
	"time"

	"github.com/crcweb/center-site/internal/content"
)

// cardConfig carries the per-collection card chrome.
type cardConfig struct {
	Icon             string
	ButtonText       string
	PlaceholderLabel string
	PlaceholderIcon  string
}

var cardConfigs = map[string]cardConfig{
	content.ResNews:     {Icon: "calendar-alt", ButtonText: "Read Story", PlaceholderLabel: "News", PlaceholderIcon: "newspaper"},
	content.ResOutreach: {Icon: "heart", ButtonText: "View Report", PlaceholderLabel: "Outreach", PlaceholderIcon: "hand-holding-heart"},
	content.ResEvents:   {Icon: "clock", ButtonText: "Event Details", PlaceholderLabel: "Event", PlaceholderIcon: "calendar-check"},
}

// Card is the render model for one summary card in a list grid.
type Card struct {
	ID               string
	Type             string
	Title            string
	Preview          string
	Meta             string
	Category         string
	Image            string
	Link             string // external link, shown for news and outreach only
	Icon             string
	ButtonText       string
	PlaceholderLabel string
	PlaceholderIcon  string
}

// BuildCard turns one item into its summary card for the given collection
// type.
func BuildCard(item content.Item, typ string) Card {
	cfg, ok := cardConfigs[typ]
	if !ok {
		cfg = cardConfigs[content.ResNews]
	}

	meta := displayDate(item.Date)
	if typ == content.ResEvents && item.Time != "" {
		meta += " | " + item.Time
	}
	if typ == content.ResOutreach && len(item.Tags) > 0 {
		meta = item.Tags[0]
	}

	category := item.Category
	if category == "" && len(item.Tags) > 0 {
		category = item.Tags[0]
	}
	if category == "" {
		category = "Update"
	}

	card := Card{
		ID:               item.ID,
		Type:             typ,
		Title:            item.Title,
		Preview:          item.Preview,
		Meta:             meta,
		Category:         category,
		Image:            item.Image,
		Icon:             cfg.Icon,
		ButtonText:       cfg.ButtonText,
		PlaceholderLabel: cfg.PlaceholderLabel,
		PlaceholderIcon:  cfg.PlaceholderIcon,
	}
	if typ != content.ResEvents {
		card.Link = item.Link
	}
	return card
}

// BuildCards renders a whole collection into cards, newest first for news and
// outreach, soonest first for events.
func BuildCards(items []content.Item, typ string) []Card {
	sorted := make([]content.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, _ := ParseDate(sorted[i].Date)
		b, _ := ParseDate(sorted[j].Date)
		if typ == content.ResEvents {
			return a.Before(b)
		}
		return a.After(b)
	})

	cards := make([]Card, 0, len(sorted))
	for _, item := range sorted {
		cards = append(cards, BuildCard(item, typ))
	}
	return cards
}

// UpcomingEvents returns up to limit events dated today or later, soonest
// first, for the home page preview.
func UpcomingEvents(events []content.Item, now time.Time, limit int) []content.Item {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

	var future []content.Item
	for _, e := range events {
		if d, ok := ParseDate(e.Date); ok && !d.Before(today) {
			future = append(future, e)
		}
	}
	sort.SliceStable(future, func(i, j int) bool {
		a, _ := ParseDate(future[i].Date)
		b, _ := ParseDate(future[j].Date)
		return a.Before(b)
	})

	if len(future) > limit {
		future = future[:limit]
	}
	return future
}

// displayDate formats an ISO date for card metadata.
func displayDate(date string) string {
	d, ok := ParseDate(date)
	if !ok {
		return date
	}
	return d.Format("1/2/2006")
}

// LongDate formats an ISO date for the detail header
// ("Wednesday, January 1, 2025").
func LongDate(date string) string {
	d, ok := ParseDate(date)
	if !ok {
		return date
	}
	return d.Format("Monday, January 2, 2006")
}

// ShortDate formats an ISO date as an uppercase badge ("JAN 1").
func ShortDate(date string) string {
	d, ok := ParseDate(date)
	if !ok {
		return date
	}
	return strings.ToUpper(d.Format("Jan 2"))
}
