package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/crcweb/center-site/internal/content"
	"github.com/crcweb/center-site/internal/render"
)

// Server renders the site from a content store.
type Server struct {
	cfg   Config
	store *content.Store
	tmpl  *template.Template
	now   func() time.Time // swapped in tests
}

// NewServer builds a Server with the embedded templates parsed.
func NewServer(cfg Config, store *content.Store) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Server{cfg: cfg, store: store, tmpl: tmpl, now: time.Now}, nil
}

// Routes wires up the full route table.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.HandlePage)
	mux.HandleFunc("/page/", s.HandlePage)
	mux.HandleFunc("/item/", s.HandleItem)
	mux.HandleFunc("/calendar.ics", s.HandleCalendarFeed)
	mux.HandleFunc("/api/config", s.HandleConfig)
	mux.HandleFunc("/admin/reload", RequireAuth(s.HandleReload))
	mux.Handle("/static/", http.FileServer(http.FS(staticFS)))
	return mux
}

// baseData assembles the shell payload shared by every page: navigation,
// impact stats and contact details render on every view.
func (s *Server) baseData(active string, sess *content.Session) PageData {
	globals := sess.Globals()

	data := PageData{
		SiteTitle: s.cfg.SiteTitle,
		BaseURL:   s.cfg.BaseURL,
		Active:    active,
		Stats:     globals.ImpactStats,
		Contact:   globals.Contact,
	}
	for _, id := range NavPages {
		data.Nav = append(data.Nav, NavLink{ID: id, Label: NavLabel(id), Active: id == active})
	}
	return data
}

// HandlePage serves a top-level page. Unknown or empty ids fall back to the
// home page, mirroring the hash-router behavior.
func (s *Server) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && !strings.HasPrefix(r.URL.Path, "/page/") {
		http.NotFound(w, r)
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/page/"), "/")

	page := ResolvePage(id)
	sess := s.store.Session()
	data := s.baseData(page, sess)

	switch page {
	case PageHome:
		data.Home = s.buildHome(sess)
	case PageAbout:
		data.About = buildAbout(sess)
	case PageResearch:
		data.Aims = render.BuildAims(sess.Pages().ResearchAims, sess.Team())
	case PageTeam:
		team := render.BuildTeam(sess.Team())
		data.Team = &team
	case PageAdvisory:
		globals := sess.Globals()
		data.Advisory = &AdvisoryData{
			Board:      render.SortAdvisoryBoard(globals.AdvisoryBoard),
			GroupImage: globals.AdvisoryGroupImage,
		}
	case PageNews:
		data.Cards = render.BuildCards(sess.News(), content.ResNews)
	case PageOutreach:
		data.Cards = render.BuildCards(sess.Outreach(), content.ResOutreach)
	case PageEvents:
		if err := s.buildEvents(&data, sess, r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	case PageOutputs:
		data.Outputs = buildOutputs(sess, r.URL.Query().Get("q"))
	case PageContact:
		// Contact details are already in the shell payload.
	}

	s.renderPage(w, page, data)
}

// HandleItem serves an item detail view: /item/{type}/{id}. A missing item
// aborts without rendering a detail body, logged only.
func (s *Server) HandleItem(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/item/")
	typ, id, ok := strings.Cut(rest, "/")
	if !ok || sessItemType(typ) == "" {
		http.NotFound(w, r)
		return
	}

	sess := s.store.Session()
	item, found := sess.FindItem(typ, id)
	if !found {
		log.Printf("Item not found: %s/%s", typ, id)
		http.NotFound(w, r)
		return
	}

	data := s.baseData(detailPage(typ), sess)
	detail := render.BuildDetail(item, typ)
	data.Detail = &detail
	s.renderPage(w, "detail", data)
}

// sessItemType validates an item collection type from the URL.
func sessItemType(typ string) string {
	switch typ {
	case content.ResEvents, content.ResNews, content.ResOutreach:
		return typ
	}
	return ""
}

func (s *Server) buildHome(sess *content.Session) *HomeData {
	home := &HomeData{Hero: sess.Pages().Home}

	upcoming := render.UpcomingEvents(sess.Events(), s.now(), EventPreviewLimit)
	if len(upcoming) == 0 {
		home.PreviewEmpty = MsgNoUpcomingEvents
	}
	for _, e := range upcoming {
		preview := EventPreview{
			ID:        e.ID,
			DateBadge: render.ShortDate(e.Date),
			Title:     e.Title,
			Preview:   e.Preview,
			Time:      e.Time,
		}
		if preview.Time == "" {
			preview.Time = "TBA"
		}
		home.Preview = append(home.Preview, preview)
	}
	return home
}

func buildAbout(sess *content.Session) *AboutData {
	about := &AboutData{
		Overview:   sess.Pages().About.Overview,
		ContactPre: sess.Globals().Contact,
	}
	if about.Overview != nil {
		about.Paragraphs = render.SplitParagraphs(about.Overview.Body)
	}
	return about
}

// buildEvents populates the events page: the month calendar for the
// requested (or current) month plus the date-sorted grid. Malformed
// navigation params reject the request rather than guessing a month.
func (s *Server) buildEvents(data *PageData, sess *content.Session, r *http.Request) error {
	now := s.now()
	year, month := now.Year(), now.Month()

	if y := r.URL.Query().Get("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil || parsed < 1 {
			return errors.New(ErrInvalidYear)
		}
		year = parsed
	}
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			return errors.New(ErrInvalidMonth)
		}
		month = time.Month(parsed)
	}

	events := sess.Events()
	view := render.BuildMonth(year, month, events)
	data.Calendar = &view
	data.Cards = render.BuildCards(events, content.ResEvents)
	if len(data.Cards) == 0 {
		data.CardsEmpty = MsgNoEvents
	}
	return nil
}

// outputSpecs names the four accordions on the outputs page, each with its
// designated secondary field.
var outputSpecs = struct {
	Publications, Patents, Presentations, Awards render.AccordionSpec
}{
	Publications:  render.AccordionSpec{ID: "publications-list", SubField: "journal", Search: true},
	Patents:       render.AccordionSpec{ID: "patents-list", SubField: "inventors", Search: true},
	Presentations: render.AccordionSpec{ID: "presentations-list", SubField: "conference", Search: true},
	Awards:        render.AccordionSpec{ID: "awards-list", SubField: "recipient", Search: true, Award: true},
}

func buildOutputs(sess *content.Session, query string) *OutputsData {
	build := func(items []content.Publication, spec render.AccordionSpec) render.Accordion {
		return render.BuildAccordion(render.FilterPublications(items, spec.SubField, query), spec)
	}
	return &OutputsData{
		Query:         query,
		Publications:  build(sess.Papers(), outputSpecs.Publications),
		Patents:       build(sess.Patents(), outputSpecs.Patents),
		Presentations: build(sess.Talks(), outputSpecs.Presentations),
		Awards:        build(sess.Awards(), outputSpecs.Awards),
	}
}

// renderPage executes the page template into a buffer first so a template
// failure never writes a partial page.
func (s *Server) renderPage(w http.ResponseWriter, name string, data PageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing %s: %v", name, err)
	}
}

// HandleConfig returns the site configuration as JSON.
func (s *Server) HandleConfig(w http.ResponseWriter, r *http.Request) {
	cfg := map[string]interface{}{
		"siteTitle":   s.cfg.SiteTitle,
		"pages":       NavPages,
		"collections": []string{content.ResEvents, content.ResNews, content.ResOutreach},
		"currentYear": s.now().Year(),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cfg); err != nil {
		log.Printf("Error encoding config: %v", err)
		http.Error(w, ErrInternalServer, http.StatusInternalServerError)
	}
}

// HandleReload re-reads content from disk on the next page view.
func (s *Server) HandleReload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	s.store.Reload("admin")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// RequireMethod validates that the request uses the specified HTTP method.
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}
