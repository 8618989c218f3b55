package app

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/crcweb/center-site/internal/content"
)

// mapFetcher serves content fixtures from memory.
type mapFetcher map[string]string

func (f mapFetcher) Fetch(name string) ([]byte, error) {
	doc, ok := f[name]
	if !ok {
		return nil, errors.New("resource not found: " + name)
	}
	return []byte(doc), nil
}

var testDocs = mapFetcher{
	content.ResGlobals: `{
		"impact_stats": [{"value": "12", "label": "Publications"}],
		"contact": {"address_line1": "100 Research Way", "email": "info@example.edu"}
	}`,
	content.ResPages: `{
		"home": {"hero_title": "Advancing Sensing", "hero_text": "Welcome."},
		"about": {"overview": {"title": "About the Center", "body": "First.\n\nSecond."}}
	}`,
	content.ResEvents: `{"events_list": [
		{"id": "e1", "title": "Open House", "date": "2025-05-01", "time": "2:00 PM"},
		{"id": "e2", "title": "Seminar", "date": "2025-01-08", "recurrence": "weekly"}
	]}`,
	content.ResNews: `{"articles": [
		{"id": "n1", "title": "Grant Awarded", "date": "2025-01-15", "body": "We received a **major** grant."}
	]}`,
	content.ResOutreach: `{"programs": [
		{"id": "o1", "title": "School Visit", "date": "2025-02-01", "tags": ["K-12"]}
	]}`,
	content.ResPublications: `{"papers": [
		{"title": "Sensor Advances", "year": 2025, "authors": "Smith, J.", "journal": "Nature"}
	]}`,
	content.ResPatents:       `{"patents": []}`,
	content.ResPresentations: `{"talks": []}`,
	content.ResAwards:        `{"awards": []}`,
	content.ResTeam: `{"members": [
		{"name": "Smith, Jane", "role": "Director", "is_pi": true, "bio": "Leads the sensing program.", "tags": ["Photonics"]}
	]}`,
}

func newTestServer(t *testing.T, fetcher content.Fetcher) *Server {
	t.Helper()
	cfg := Config{Port: 8080, SiteTitle: "Research Center"}
	server, err := NewServer(cfg, content.NewStore(fetcher))
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	server.now = func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	}
	return server
}

func get(t *testing.T, server *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)
	return w
}

func TestHandlePageHome(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Advancing Sensing") {
		t.Error("Home page missing hero title")
	}
	// The shell footer carries the shared globals.
	if !strings.Contains(body, "Publications") {
		t.Error("Home page missing impact stats")
	}
	if !strings.Contains(body, "100 Research Way") {
		t.Error("Home page missing contact address")
	}
	// Upcoming event preview (fixed now is March 10, e1 is May 1).
	if !strings.Contains(body, "Open House") {
		t.Error("Home page missing upcoming event")
	}
}

func TestHandlePageUnknownFallsBackToHome(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/page/bogus")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `id="home"`) {
		t.Error("Unknown page id should render the home page")
	}
}

func TestHandlePageRejectsOtherPaths(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/favicon.ico")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestEventsPageWithFailingFetcher(t *testing.T) {
	// Every fetch fails; the page still renders with empty-state messaging.
	server := newTestServer(t, mapFetcher{})

	w := get(t, server, "/page/events")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), MsgNoEvents) {
		t.Errorf("Events page should show %q when the collection is empty", MsgNoEvents)
	}
}

func TestEventsPageCalendar(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/page/events?year=2025&month=2")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "February 2025") {
		t.Error("Calendar should show the requested month")
	}
	// The weekly seminar recurs onto February Wednesdays.
	if !strings.Contains(body, "has-event") {
		t.Error("Calendar should mark recurring event days")
	}
}

func TestEventsPageInvalidParams(t *testing.T) {
	server := newTestServer(t, testDocs)

	tests := []struct {
		path string
		want string
	}{
		{"/page/events?month=13", ErrInvalidMonth},
		{"/page/events?month=abc", ErrInvalidMonth},
		{"/page/events?month=0", ErrInvalidMonth},
		{"/page/events?year=abc", ErrInvalidYear},
		{"/page/events?year=-5", ErrInvalidYear},
	}

	for _, tt := range tests {
		w := get(t, server, tt.path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", tt.path, w.Code)
		}
		if !strings.Contains(w.Body.String(), tt.want) {
			t.Errorf("%s: expected %q in response", tt.path, tt.want)
		}
	}

	// Absent params fall back to the current month.
	w := get(t, server, "/page/events")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "March 2025") {
		t.Error("Events page should default to the current month")
	}
}

func TestTeamPage(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/page/team")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Smith, Jane") {
		t.Error("Team page missing member name")
	}
	// Profile cards carry the bio and tag chips.
	if !strings.Contains(body, "Leads the sensing program.") {
		t.Error("Team page missing member bio")
	}
	if !strings.Contains(body, "Photonics") {
		t.Error("Team page missing member tags")
	}
}

func TestHandleItem(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/item/news/n1")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Grant Awarded") {
		t.Error("Detail page missing item title")
	}
	if !strings.Contains(body, "<strong>major</strong>") {
		t.Error("Detail page missing rendered markdown body")
	}
	if !strings.Contains(body, "Back to News") {
		t.Error("Detail page missing back link")
	}
}

func TestHandleItemPlaceholderBadge(t *testing.T) {
	server := newTestServer(t, testDocs)

	// o1 has no image; the detail view shows the typed placeholder with the
	// badge overlaid on it.
	w := get(t, server, "/item/outreach/o1")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "detail-placeholder") {
		t.Error("Detail page missing typed placeholder")
	}
	if !strings.Contains(body, "hero-badge") {
		t.Error("Badge should render over the placeholder too")
	}
}

func TestHandleItemNotFound(t *testing.T) {
	server := newTestServer(t, testDocs)

	tests := []struct {
		name string
		path string
	}{
		{"missing id", "/item/news/missing"},
		{"unknown collection", "/item/videos/n1"},
		{"no id", "/item/news"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, server, tt.path)
			if w.Code != http.StatusNotFound {
				t.Errorf("Expected status 404, got %d", w.Code)
			}
		})
	}
}

func TestOutputsPageSearch(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/page/outputs?q=nature")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Sensor Advances") {
		t.Error("Matching publication should be listed")
	}

	w = get(t, server, "/page/outputs?q=nomatch")
	if !strings.Contains(w.Body.String(), MsgNoResults) {
		t.Errorf("Non-matching search should show %q", MsgNoResults)
	}
}

func TestHandleConfig(t *testing.T) {
	server := newTestServer(t, testDocs)

	w := get(t, server, "/api/config")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var cfg struct {
		SiteTitle   string   `json:"siteTitle"`
		Pages       []string `json:"pages"`
		Collections []string `json:"collections"`
		CurrentYear int      `json:"currentYear"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if cfg.SiteTitle != "Research Center" {
		t.Errorf("siteTitle = %q", cfg.SiteTitle)
	}
	if len(cfg.Pages) != len(NavPages) {
		t.Errorf("pages = %v", cfg.Pages)
	}
	if cfg.CurrentYear != 2025 {
		t.Errorf("currentYear = %d", cfg.CurrentYear)
	}
}

func TestHandleReload(t *testing.T) {
	server := newTestServer(t, testDocs)

	// GET is rejected.
	w := get(t, server, "/admin/reload")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET: expected status 405, got %d", w.Code)
	}

	req := httptest.NewRequest("POST", "/admin/reload", nil)
	w = httptest.NewRecorder()
	server.Routes().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("POST: expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("Unexpected reload response: %s", w.Body.String())
	}
}

func TestReloadRefreshesContent(t *testing.T) {
	docs := mapFetcher{
		content.ResGlobals: `{}`,
		content.ResPages:   `{"home": {"hero_title": "Advancing Sensing"}}`,
	}
	server := newTestServer(t, docs)

	w := get(t, server, "/")
	if !strings.Contains(w.Body.String(), "Advancing Sensing") {
		t.Fatal("Home page missing initial hero title")
	}

	// The edited document stays invisible until the reload endpoint is hit.
	docs[content.ResPages] = `{"home": {"hero_title": "New Horizons"}}`
	w = get(t, server, "/")
	if strings.Contains(w.Body.String(), "New Horizons") {
		t.Error("Edited content visible before reload")
	}

	req := httptest.NewRequest("POST", "/admin/reload", nil)
	rec := httptest.NewRecorder()
	server.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Reload failed with status %d", rec.Code)
	}

	w = get(t, server, "/")
	if !strings.Contains(w.Body.String(), "New Horizons") {
		t.Error("Edited content should be visible after reload")
	}
}

func TestResolvePage(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"", PageHome},
		{"about", PageAbout},
		{"outputs", PageOutputs},
		{"bogus", PageHome},
		{"news/extra", PageHome},
	}

	for _, tt := range tests {
		if got := ResolvePage(tt.id); got != tt.want {
			t.Errorf("ResolvePage(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
