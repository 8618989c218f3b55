package content

import (
	"bytes"
	"encoding/json"
)

// Recurrence rules for event items
const (
	RecurNone    = "none"
	RecurWeekly  = "weekly"
	RecurMonthly = "monthly"
	RecurYearly  = "yearly"
)

// Item is a single content record (news article, outreach program or event).
type Item struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Date       string   `json:"date"`
	Time       string   `json:"time,omitempty"`
	Location   string   `json:"location,omitempty"`
	Recurrence string   `json:"recurrence,omitempty"`
	Preview    string   `json:"preview,omitempty"`
	Body       Body     `json:"body,omitempty"`
	Image      string   `json:"image,omitempty"`
	Link       string   `json:"link,omitempty"`
	Category   string   `json:"category,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Body is the union of a plain markdown string and a structured article body.
// Exactly one of Markdown or Structured is set after decoding.
type Body struct {
	Markdown   string
	Structured *StructuredBody
}

// StructuredBody is the block-based article body variant.
type StructuredBody struct {
	LeadText     string  `json:"lead_text,omitempty"`
	FullTitle    string  `json:"full_title,omitempty"`
	Category     string  `json:"category,omitempty"`
	ImageCaption string  `json:"image_caption,omitempty"`
	Blocks       []Block `json:"content_blocks,omitempty"`
}

// UnmarshalJSON decodes either a JSON string (markdown) or an object
// (structured body). Null and absent both leave the body empty.
func (b *Body) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &b.Markdown)
	}
	var sb StructuredBody
	if err := json.Unmarshal(trimmed, &sb); err != nil {
		return err
	}
	b.Structured = &sb
	return nil
}

// MarshalJSON emits the variant that is set.
func (b Body) MarshalJSON() ([]byte, error) {
	if b.Structured != nil {
		return json.Marshal(b.Structured)
	}
	return json.Marshal(b.Markdown)
}

// IsZero reports whether the body carries no content at all.
func (b Body) IsZero() bool {
	return b.Markdown == "" && b.Structured == nil
}

// Publication is a paper, patent, talk or award entry for the outputs page.
type Publication struct {
	Title      string   `json:"title"`
	Year       int      `json:"year,omitempty"`
	Date       string   `json:"date,omitempty"`
	Status     string   `json:"status,omitempty"`
	Featured   bool     `json:"featured,omitempty"`
	Authors    string   `json:"authors,omitempty"`
	Inventors  string   `json:"inventors,omitempty"`
	Presenter  string   `json:"presenter,omitempty"`
	Recipient  string   `json:"recipient,omitempty"`
	Journal    string   `json:"journal,omitempty"`
	Conference string   `json:"conference,omitempty"`
	Location   string   `json:"location,omitempty"`
	Link       string   `json:"link,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Member is a team member (principal investigator or group member).
type Member struct {
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	IsPI        bool     `json:"is_pi,omitempty"`
	TitleDetail string   `json:"title_detail,omitempty"`
	Advisor     string   `json:"advisor,omitempty"`
	Department  string   `json:"department,omitempty"`
	University  string   `json:"university,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Email       string   `json:"email,omitempty"`
	Website     string   `json:"website,omitempty"`
	Scholar     string   `json:"scholar,omitempty"`
	Image       string   `json:"image,omitempty"`
}

// GalleryItem is one image or video inside a research aim gallery.
type GalleryItem struct {
	Src     string `json:"src"`
	Caption string `json:"caption,omitempty"`
}

// Aim is one research aim shown on the research page.
type Aim struct {
	Number      int           `json:"number,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Image       string        `json:"image,omitempty"`
	Gallery     []GalleryItem `json:"gallery,omitempty"`
	Faculty     string        `json:"faculty,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
}

// AdvisoryMember is one entry on the advisory board.
type AdvisoryMember struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Image       string `json:"image,omitempty"`
	CompanyIcon string `json:"company_icon,omitempty"`
}

// ImpactStat is a single headline number shown site-wide.
type ImpactStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

// Contact holds the center's contact details.
type Contact struct {
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	AddressLine4 string `json:"address_line4,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	LinkedIn     string `json:"linkedin,omitempty"`
	MapEmbedURL  string `json:"map_embed_url,omitempty"`
}

// Slide is one hero slider image.
type Slide struct {
	Image string `json:"image"`
	Alt   string `json:"alt,omitempty"`
}

// Director is the center director's message block on the home page.
type Director struct {
	Name    string `json:"name"`
	Role    string `json:"role,omitempty"`
	Photo   string `json:"photo,omitempty"`
	Message string `json:"message,omitempty"`
}

// HomePage is the home page document inside pages.json.
type HomePage struct {
	HeroTitle string    `json:"hero_title,omitempty"`
	HeroText  string    `json:"hero_text,omitempty"`
	Slides    []Slide   `json:"slides,omitempty"`
	Director  *Director `json:"director,omitempty"`
}

// Overview is the about page main section.
type Overview struct {
	Title    string `json:"title,omitempty"`
	Lead     string `json:"lead,omitempty"`
	Body     string `json:"body,omitempty"`
	Image    string `json:"image,omitempty"`
	ImageAlt string `json:"image_alt,omitempty"`
}

// AboutPage is the about page document inside pages.json.
type AboutPage struct {
	Overview *Overview `json:"overview,omitempty"`
}

// Pages is the pages.json document.
type Pages struct {
	ResearchAims []Aim     `json:"research_aims,omitempty"`
	Home         HomePage  `json:"home,omitempty"`
	About        AboutPage `json:"about,omitempty"`
}

// Globals is the globals.json document with site-wide data.
type Globals struct {
	AdvisoryBoard      []AdvisoryMember `json:"advisory_board,omitempty"`
	AdvisoryGroupImage string           `json:"advisory_group_image,omitempty"`
	ImpactStats        []ImpactStat     `json:"impact_stats,omitempty"`
	Contact            Contact          `json:"contact,omitempty"`
}
