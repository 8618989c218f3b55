package content

import (
	"encoding/json"
)

// Block is one typed content block inside a structured article body.
// The concrete variants below are the closed set of block types; decoding an
// unrecognized type yields a nil Block, which renders as an empty fragment
// without disturbing the ordering of its siblings.
type Block interface {
	blockType() string
}

// TextBlock is a markdown paragraph section.
type TextBlock struct {
	Content string `json:"content"`
}

// QuoteBlock is a pull quote with an optional attribution.
type QuoteBlock struct {
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
}

// HighlightBox is a titled callout with bullet items.
type HighlightBox struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ListBlock is a plain bullet list.
type ListBlock struct {
	Items []string `json:"items"`
}

// HeaderBlock is a section heading.
type HeaderBlock struct {
	Content string `json:"content"`
}

// VideoBlock is a standalone video with optional poster and caption.
type VideoBlock struct {
	Src     string `json:"src"`
	Poster  string `json:"poster,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// Person is one entry in a people grid.
type Person struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Image   string `json:"image,omitempty"`
	Video   string `json:"video,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// PeopleGrid is a grid of people cards with an optional column override.
type PeopleGrid struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Columns     int      `json:"columns,omitempty"`
	Items       []Person `json:"items"`
}

func (TextBlock) blockType() string    { return "text" }
func (QuoteBlock) blockType() string   { return "quote" }
func (HighlightBox) blockType() string { return "highlight_box" }
func (ListBlock) blockType() string    { return "list" }
func (HeaderBlock) blockType() string  { return "header" }
func (VideoBlock) blockType() string   { return "video" }
func (PeopleGrid) blockType() string   { return "people_grid" }

// blockEnvelope carries the type tag plus the raw payload during decoding.
type blockEnvelope struct {
	Type string `json:"type"`
}

// DecodeBlock turns one raw content block into its concrete variant.
// Unknown types return (nil, nil).
func DecodeBlock(raw json.RawMessage) (Block, error) {
	var env blockEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	switch env.Type {
	case "text":
		var b TextBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "quote":
		var b QuoteBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "highlight_box":
		var b HighlightBox
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "list":
		var b ListBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "header":
		var b HeaderBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "video":
		var b VideoBlock
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	case "people_grid":
		var b PeopleGrid
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, nil
}

// UnmarshalJSON decodes the content_blocks array, keeping one entry per input
// block so sibling positions survive unknown types.
func (sb *StructuredBody) UnmarshalJSON(data []byte) error {
	type alias struct {
		LeadText     string            `json:"lead_text"`
		FullTitle    string            `json:"full_title"`
		Category     string            `json:"category"`
		ImageCaption string            `json:"image_caption"`
		Blocks       []json.RawMessage `json:"content_blocks"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	sb.LeadText = a.LeadText
	sb.FullTitle = a.FullTitle
	sb.Category = a.Category
	sb.ImageCaption = a.ImageCaption
	sb.Blocks = make([]Block, 0, len(a.Blocks))
	for _, raw := range a.Blocks {
		block, err := DecodeBlock(raw)
		if err != nil {
			return err
		}
		sb.Blocks = append(sb.Blocks, block)
	}
	return nil
}
