package content

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Resource names served from the content directory.
const (
	ResEvents        = "events"
	ResNews          = "news"
	ResOutreach      = "outreach"
	ResTeam          = "team"
	ResPublications  = "publications"
	ResPatents       = "patents"
	ResPresentations = "presentations"
	ResAwards        = "awards"
	ResPages         = "pages"
	ResGlobals       = "globals"
)

// Fetcher retrieves one named JSON resource. A single attempt per call, no
// retry; the Session above it absorbs every failure into a typed empty
// default.
type Fetcher interface {
	Fetch(name string) ([]byte, error)
}

// DirFetcher reads resources from <Dir>/<name>.json.
type DirFetcher struct {
	Dir string
}

func (f DirFetcher) Fetch(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(f.Dir, name+".json"))
}

// Store owns the content source for the whole process and caches raw
// documents until Reload drops them. Handlers take a fresh Session from it
// per page view; the watcher and the admin endpoint call Reload so the next
// view re-reads from disk.
type Store struct {
	fetcher Fetcher

	mu    sync.Mutex
	cache map[string][]byte // nil entry records a failed fetch
}

// NewStore creates a Store over the given fetcher.
func NewStore(f Fetcher) *Store {
	return &Store{fetcher: f, cache: make(map[string][]byte)}
}

// NewDirStore creates a Store reading from a content directory on disk.
func NewDirStore(dir string) *Store {
	return NewStore(DirFetcher{Dir: dir})
}

// Session returns a new per-page-view session over the store's cache.
func (s *Store) Session() *Session {
	return &Session{store: s, raw: make(map[string][]byte)}
}

// Reload drops the cached documents so the next session fetches fresh
// content. Failed fetches are dropped too, so a repaired file recovers on
// reload rather than staying pinned as empty.
func (s *Store) Reload(reason string) {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.mu.Unlock()
	log.Printf("Content reloaded (%s)", reason)
}

// fetch returns the raw resource bytes from the cache, fetching on a miss.
// A failed attempt is cached too, so a resource is tried once per reload
// cycle, not once per page view.
func (s *Store) fetch(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, ok := s.cache[name]; ok {
		return data, data != nil
	}

	data, err := s.fetcher.Fetch(name)
	if err != nil {
		log.Printf("Failed to fetch %s: %v", name, err)
		s.cache[name] = nil
		return nil, false
	}
	s.cache[name] = data
	return data, true
}

// Session snapshots fetched resources for the duration of one page view.
// Collections are read-only after load, and the session is never shared
// across requests, so a reload mid-render cannot leak mixed content into a
// view that already read a resource.
type Session struct {
	store *Store
	raw   map[string][]byte
}

// NewSession builds a session over its own private store, for callers without
// a long-lived Store.
func NewSession(f Fetcher) *Session {
	return NewStore(f).Session()
}

// fetch returns the raw resource bytes, one attempt per session.
func (s *Session) fetch(name string) ([]byte, bool) {
	if data, ok := s.raw[name]; ok {
		return data, data != nil
	}

	data, ok := s.store.fetch(name)
	if !ok {
		s.raw[name] = nil
		return nil, false
	}
	s.raw[name] = data
	return data, true
}

// loadDoc decodes one resource, returning the zero document on any transport
// or parse failure so callers always render against a complete snapshot.
func loadDoc[T any](s *Session, name string) T {
	var zero T
	data, ok := s.fetch(name)
	if !ok {
		return zero
	}
	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Failed to decode %s: %v", name, err)
		return zero
	}
	return doc
}

// itemsDoc wraps the list documents, which each keep their payload under a
// distinct top-level key.
type itemsDoc struct {
	EventsList []Item `json:"events_list"`
	Articles   []Item `json:"articles"`
	Programs   []Item `json:"programs"`
}

type teamDoc struct {
	Members []Member `json:"members"`
}

type publicationsDoc struct {
	Papers  []Publication `json:"papers"`
	Patents []Publication `json:"patents"`
	Talks   []Publication `json:"talks"`
	Awards  []Publication `json:"awards"`
}

// Events returns the events collection, empty on any failure.
func (s *Session) Events() []Item {
	return loadDoc[itemsDoc](s, ResEvents).EventsList
}

// News returns the news articles collection, empty on any failure.
func (s *Session) News() []Item {
	return loadDoc[itemsDoc](s, ResNews).Articles
}

// Outreach returns the outreach programs collection, empty on any failure.
func (s *Session) Outreach() []Item {
	return loadDoc[itemsDoc](s, ResOutreach).Programs
}

// Items returns the item collection for a content type key
// ("events", "news" or "outreach"); unknown keys yield an empty collection.
func (s *Session) Items(typ string) []Item {
	switch typ {
	case ResEvents:
		return s.Events()
	case ResNews:
		return s.News()
	case ResOutreach:
		return s.Outreach()
	}
	return nil
}

// FindItem looks an item up by id within one collection. Lookups are always
// collection-scoped, so cross-collection id collisions are harmless.
func (s *Session) FindItem(typ, id string) (Item, bool) {
	for _, item := range s.Items(typ) {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Team returns the member list, empty on any failure.
func (s *Session) Team() []Member {
	return loadDoc[teamDoc](s, ResTeam).Members
}

// Papers returns the publications list, empty on any failure.
func (s *Session) Papers() []Publication {
	return loadDoc[publicationsDoc](s, ResPublications).Papers
}

// Patents returns the patents list, empty on any failure.
func (s *Session) Patents() []Publication {
	return loadDoc[publicationsDoc](s, ResPatents).Patents
}

// Talks returns the presentations list, empty on any failure.
func (s *Session) Talks() []Publication {
	return loadDoc[publicationsDoc](s, ResPresentations).Talks
}

// Awards returns the awards list, empty on any failure.
func (s *Session) Awards() []Publication {
	return loadDoc[publicationsDoc](s, ResAwards).Awards
}

// Pages returns the pages document, zero-valued on any failure.
func (s *Session) Pages() Pages {
	return loadDoc[Pages](s, ResPages)
}

// Globals returns the globals document, zero-valued on any failure.
func (s *Session) Globals() Globals {
	return loadDoc[Globals](s, ResGlobals)
}
