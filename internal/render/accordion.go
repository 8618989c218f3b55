package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/crcweb/center-site/internal/content"
)

// OtherGroup labels publications that carry neither a year nor a parseable
// date.
const OtherGroup = "Other"

// GroupLimit is how many entries a year group shows before paging.
const GroupLimit = 5

// PubEntry is one rendered publication row.
type PubEntry struct {
	Title       string
	Featured    bool
	JournalLine string // secondary field joined with status
	Authors     string // "Authors: ..." / "Inventors: ..." / presenter
	Recipient   string // awards only
	Link        string
}

// YearGroup is one collapsible year section.
type YearGroup struct {
	Year    string
	Open    bool // first (most recent) group starts expanded
	Visible []PubEntry
	Hidden  []PubEntry
	Total   int
}

// ToggleLabel is the reveal control text for groups with hidden entries.
func (g YearGroup) ToggleLabel() string {
	return fmt.Sprintf("View All (%d)", g.Total)
}

// Accordion is the render model for one year-grouped publication list.
type Accordion struct {
	ID         string
	SubField   string // designated secondary field: journal, conference, inventors
	Search     bool
	Award      bool // award styling: recipient line, no journal line
	Groups     []YearGroup
	EmptyState string
}

// AccordionSpec names one accordion instance on the outputs page.
type AccordionSpec struct {
	ID       string
	SubField string
	Search   bool
	Award    bool
}

// BuildAccordion groups a publication list by year (descending, "Other"
// last), sorts featured entries first within each group, and pages each group
// at GroupLimit entries.
func BuildAccordion(items []content.Publication, spec AccordionSpec) Accordion {
	acc := Accordion{
		ID:         spec.ID,
		SubField:   spec.SubField,
		Search:     spec.Search,
		Award:      spec.Award,
		EmptyState: "No results found.",
	}

	grouped := make(map[string][]content.Publication)
	for _, item := range items {
		grouped[groupKey(item)] = append(grouped[groupKey(item)], item)
	}

	keys := make([]string, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		// Numeric years descending, the "Other" bucket always last.
		yi, erri := strconv.Atoi(keys[i])
		yj, errj := strconv.Atoi(keys[j])
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return yi > yj
	})

	for idx, key := range keys {
		entries := grouped[key]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Featured && !entries[j].Featured
		})

		group := YearGroup{Year: key, Open: idx == 0, Total: len(entries)}
		for i, item := range entries {
			entry := buildEntry(item, spec)
			if i < GroupLimit {
				group.Visible = append(group.Visible, entry)
			} else {
				group.Hidden = append(group.Hidden, entry)
			}
		}
		acc.Groups = append(acc.Groups, group)
	}

	return acc
}

// FilterPublications narrows a list to entries matching the search term,
// case-insensitively, across title, tags, people fields, the designated
// secondary field, year and location. An empty term matches everything.
// The input is never mutated; the result preserves relative order.
func FilterPublications(items []content.Publication, subField, term string) []content.Publication {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	var filtered []content.Publication
	for _, item := range items {
		if matchesTerm(item, subField, term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matchesTerm(item content.Publication, subField, term string) bool {
	fields := []string{
		item.Title,
		item.Authors,
		item.Inventors,
		item.Presenter,
		item.Recipient,
		secondaryField(item, subField),
		item.Location,
	}
	if item.Year != 0 {
		fields = append(fields, strconv.Itoa(item.Year))
	}
	fields = append(fields, item.Tags...)

	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func secondaryField(item content.Publication, subField string) string {
	switch subField {
	case "journal":
		return item.Journal
	case "conference":
		return item.Conference
	case "inventors":
		return item.Inventors
	}
	return ""
}

// groupKey picks the year bucket: explicit year, else year-of-date, else
// "Other".
func groupKey(item content.Publication) string {
	if item.Year != 0 {
		return strconv.Itoa(item.Year)
	}
	if d, ok := ParseDate(item.Date); ok {
		return strconv.Itoa(d.Year())
	}
	return OtherGroup
}

func buildEntry(item content.Publication, spec AccordionSpec) PubEntry {
	entry := PubEntry{
		Title:    item.Title,
		Featured: item.Featured,
		Link:     item.Link,
	}

	if spec.Award {
		entry.Recipient = item.Recipient
	} else {
		switch {
		case item.Authors != "":
			entry.Authors = "Authors: " + item.Authors
		case item.Inventors != "":
			entry.Authors = "Inventors: " + item.Inventors
		case item.Presenter != "":
			entry.Authors = item.Presenter
		}
	}

	var parts []string
	// The inventors line already names the people; repeating it as the
	// journal line would double it up.
	if !spec.Award && spec.SubField != "inventors" {
		if sec := secondaryField(item, spec.SubField); sec != "" {
			parts = append(parts, sec)
		}
	}
	if item.Status != "" {
		parts = append(parts, item.Status)
	}
	entry.JournalLine = strings.Join(parts, " | ")

	return entry
}
