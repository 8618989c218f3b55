package render

import (
	"html/template"
	"strings"

	"github.com/crcweb/center-site/internal/content"
)

// Fragment is one rendered piece of a detail body, tagged for the template
// layer. Exactly one payload field is meaningful per kind; an unknown block
// type yields the zero Fragment, which renders to nothing while holding its
// position among siblings.
type Fragment struct {
	Kind string

	HTML    template.HTML // kind "text" and "lead"
	Content string        // kind "quote", "header"
	Author  string
	Title   string
	Items   []string // kind "highlight_box", "list"
	Video   content.VideoBlock
	People  content.PeopleGrid
}

// Detail is the render model for one item's full-page view.
type Detail struct {
	Type         string
	Item         content.Item
	Title        string
	DateLine     string
	Hero         string // empty means typed placeholder
	HeroLabel    string
	Caption      string // image caption overlay; empty means category badge
	Badge        string
	TimeLine     string // events only
	Location     string // events only
	Link         string
	Fragments    []Fragment
	BackLabel    string
	BackPage     string
	ShowSchedule bool
}

// BuildDetail resolves an item's body into an ordered fragment sequence plus
// the header metadata for the detail template.
func BuildDetail(item content.Item, typ string) Detail {
	d := Detail{
		Type:      typ,
		Item:      item,
		Title:     item.Title,
		DateLine:  LongDate(item.Date),
		Hero:      item.Image,
		HeroLabel: strings.ToUpper(typ),
		Badge:     item.Category,
		Link:      item.Link,
		BackPage:  typ,
		BackLabel: "Back to " + titleCase(typ),
	}
	if d.Badge == "" {
		d.Badge = typ
	}

	if typ == content.ResEvents {
		d.ShowSchedule = true
		d.TimeLine = orTBA(item.Time)
		d.Location = orTBA(item.Location)
	}

	if sb := item.Body.Structured; sb != nil {
		if sb.FullTitle != "" {
			d.Title = sb.FullTitle
		}
		d.Caption = sb.ImageCaption
		if sb.LeadText != "" {
			// Lead text is raw, not markdown.
			d.Fragments = append(d.Fragments, Fragment{Kind: "lead", HTML: template.HTML(template.HTMLEscapeString(sb.LeadText))})
		}
		for _, block := range sb.Blocks {
			d.Fragments = append(d.Fragments, renderBlock(block))
		}
	} else {
		d.Fragments = append(d.Fragments, Fragment{Kind: "text", HTML: content.Markdown(item.Body.Markdown)})
	}

	return d
}

// renderBlock dispatches one block variant to its fragment. The switch is
// exhaustive over the closed set of variants in the content package.
func renderBlock(block content.Block) Fragment {
	switch b := block.(type) {
	case content.TextBlock:
		return Fragment{Kind: "text", HTML: content.Markdown(b.Content)}
	case content.QuoteBlock:
		return Fragment{Kind: "quote", Content: b.Content, Author: b.Author}
	case content.HighlightBox:
		return Fragment{Kind: "highlight_box", Title: b.Title, Items: b.Items}
	case content.ListBlock:
		return Fragment{Kind: "list", Items: b.Items}
	case content.HeaderBlock:
		return Fragment{Kind: "header", Content: b.Content}
	case content.VideoBlock:
		return Fragment{Kind: "video", Video: b}
	case content.PeopleGrid:
		return Fragment{Kind: "people_grid", People: b}
	}
	return Fragment{}
}

func orTBA(s string) string {
	if s == "" {
		return "TBA"
	}
	return s
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
