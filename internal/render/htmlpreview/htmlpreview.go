// Package htmlpreview turns the Markdown rendition into a standalone HTML
// file for quick review without a word processor.
package htmlpreview

import (
	"bytes"
	"fmt"
	"html"
	"os"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/ragplan/internal/document"
	"git.home.luguber.info/inful/ragplan/internal/errors"
	"git.home.luguber.info/inful/ragplan/internal/render/markdown"
)

const pageStyle = `body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; }
td, th { border: 1px solid #999; padding: 0.3rem 0.6rem; }
nav ul { list-style: none; padding-left: 0; }`

// Render converts doc into a complete HTML page: a section navigation built
// from the level-1 headings, followed by the goldmark-converted body.
func Render(doc *document.Document) ([]byte, error) {
	source := markdown.Render(doc)

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		// The Markdown rendition carries explicit <a id> anchors; they must
		// pass through to the output.
		goldmark.WithRendererOptions(htmlrenderer.WithUnsafe()),
	)

	var body bytes.Buffer
	if err := md.Convert([]byte(source), &body); err != nil {
		return nil, errors.RenderError("html", err)
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html lang=\"it\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&page, "<title>%s</title>\n", html.EscapeString(pageTitle(doc)))
	fmt.Fprintf(&page, "<style>%s</style>\n", pageStyle)
	page.WriteString("</head>\n<body>\n")

	anchors := markdown.SectionAnchors(doc)
	if len(anchors) > 0 {
		page.WriteString("<nav><ul>\n")
		for _, a := range anchors {
			fmt.Fprintf(&page, "<li><a href=\"#%s\">%s</a></li>\n", a[1], html.EscapeString(a[0]))
		}
		page.WriteString("</ul></nav>\n")
	}

	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// WriteFile renders doc and writes the HTML page to path.
func WriteFile(doc *document.Document, path string) error {
	data, err := Render(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WriteError(path, err)
	}
	return nil
}

// pageTitle uses the level-0 heading when present.
func pageTitle(doc *document.Document) string {
	for _, block := range doc.Blocks() {
		if h, ok := block.(*document.Heading); ok && h.Level == 0 {
			return h.Text
		}
	}
	return "Preview"
}
