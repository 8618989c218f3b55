package app

import (
	"embed"
	"html/template"
	"strings"

	"github.com/crcweb/center-site/internal/content"
	"github.com/crcweb/center-site/internal/render"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// parseTemplates loads the embedded page templates and partials into one set.
func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"markdown":  content.Markdown,
		"navLabel":  NavLabel,
		"upper":     strings.ToUpper,
		"shortDate": render.ShortDate,
		"longDate":  render.LongDate,
	}
	return template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// NavLink is one entry in the shell navigation.
type NavLink struct {
	ID     string
	Label  string
	Active bool
}

// EventPreview is one entry in the home page upcoming-events strip.
type EventPreview struct {
	ID        string
	DateBadge string
	Title     string
	Preview   string
	Time      string
}

// HomeData is the home page model.
type HomeData struct {
	Hero         content.HomePage
	Preview      []EventPreview
	PreviewEmpty string // empty-state message when no upcoming events
}

// AboutData is the about page model.
type AboutData struct {
	Overview   *content.Overview
	Paragraphs []string
	ContactPre content.Contact
}

// AdvisoryData is the advisory board page model.
type AdvisoryData struct {
	Board      []content.AdvisoryMember
	GroupImage string
}

// OutputsData is the outputs page model: four accordions plus the active
// search term.
type OutputsData struct {
	Query         string
	Publications  render.Accordion
	Patents       render.Accordion
	Presentations render.Accordion
	Awards        render.Accordion
}

// PageData is the full template payload: the shared shell plus exactly one
// populated page section.
type PageData struct {
	SiteTitle string
	BaseURL   string
	Active    string
	Nav       []NavLink
	Stats     []content.ImpactStat
	Contact   content.Contact

	Home       *HomeData
	About      *AboutData
	Aims       []render.AimView
	Team       *render.Team
	Advisory   *AdvisoryData
	Cards      []render.Card
	CardsEmpty string
	Calendar   *render.MonthView
	Outputs    *OutputsData
	Detail     *render.Detail
}
