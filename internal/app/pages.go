package app

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Page ids. Exactly one page section is active per render; detail sections
// are distinct pages from their list pages and are reached only through item
// routes.
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageResearch = "research"
	PageTeam     = "team"
	PageAdvisory = "advisory"
	PageNews     = "news"
	PageOutreach = "outreach"
	PageEvents   = "events"
	PageOutputs  = "outputs"
	PageContact  = "contact"
)

// NavPages lists the top-level pages in navigation order.
var NavPages = []string{
	PageHome,
	PageAbout,
	PageResearch,
	PageTeam,
	PageAdvisory,
	PageNews,
	PageOutreach,
	PageEvents,
	PageOutputs,
	PageContact,
}

var navLabels = map[string]string{
	PageHome:     "Home",
	PageAbout:    "About",
	PageResearch: "Research",
	PageTeam:     "Team",
	PageAdvisory: "Advisory Board",
	PageNews:     "News",
	PageOutreach: "Outreach",
	PageEvents:   "Events",
	PageOutputs:  "Outputs",
	PageContact:  "Contact",
}

// ResolvePage maps a requested page id to a known page, falling back to home
// for unknown or empty ids. Ids containing a path separator are deep-link
// detail references and are not resolved here; the detail handler owns them.
func ResolvePage(id string) string {
	if id == "" || strings.Contains(id, "/") {
		return PageHome
	}
	for _, p := range NavPages {
		if p == id {
			return id
		}
	}
	return PageHome
}

var titleCaser = cases.Title(language.English)

// NavLabel returns the display label for a page id, title-casing ids without
// an explicit label (detail sections, future pages).
func NavLabel(id string) string {
	if label, ok := navLabels[id]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(id, "-", " "))
}

// detailPage returns the detail section id for an item collection type
// ("news" -> "news-detail").
func detailPage(typ string) string {
	return typ + "-detail"
}
