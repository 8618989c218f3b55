package content

import (
	"bytes"
	"html/template"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// mdConverter converts markdown the way the content authors write it
// (GitHub-flavored, matching the upstream CMS preview).
var mdConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown converts markdown text to HTML. Conversion failures degrade to the
// raw text rather than erroring a page render.
func Markdown(text string) template.HTML {
	if text == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := mdConverter.Convert([]byte(text), &buf); err != nil {
		log.Printf("Markdown conversion failed: %v", err)
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}
