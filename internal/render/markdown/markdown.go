// Package markdown renders the document model as Markdown text. The
// rendition is an opt-in companion to the .docx artifact, used directly or as
// the input of the HTML preview.
package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"git.home.luguber.info/inful/ragplan/internal/document"
)

// Render produces the Markdown rendition of doc. Level-1 headings are
// preceded by an explicit anchor so section links survive viewers that do not
// auto-generate heading ids.
func Render(doc *document.Document) string {
	var b strings.Builder

	for _, block := range doc.Blocks() {
		switch blk := block.(type) {
		case *document.Heading:
			if blk.Level == 1 {
				fmt.Fprintf(&b, "<a id=%q></a>\n\n", Slug(blk.Text))
			}
			b.WriteString(strings.Repeat("#", blk.Level+1))
			b.WriteString(" ")
			b.WriteString(blk.Text)
			b.WriteString("\n\n")
		case *document.Paragraph:
			line := renderRuns(blk.Runs)
			if line == "" {
				continue
			}
			b.WriteString(line)
			b.WriteString("\n\n")
		case *document.List:
			for _, item := range blk.Items {
				b.WriteString("- ")
				b.WriteString(item)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		case *document.Table:
			renderTable(&b, blk)
		}
	}

	return b.String()
}

// SectionAnchors returns (title, slug) pairs for every level-1 heading, in
// document order. The HTML preview builds its navigation from these.
func SectionAnchors(doc *document.Document) [][2]string {
	var anchors [][2]string
	for _, block := range doc.Blocks() {
		if h, ok := block.(*document.Heading); ok && h.Level == 1 {
			anchors = append(anchors, [2]string{h.Text, Slug(h.Text)})
		}
	}
	return anchors
}

func renderRuns(rs []document.Run) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(renderRun(r))
	}
	return strings.TrimRight(b.String(), " ")
}

// renderRun wraps the run text in emphasis markers. Leading and trailing
// spaces stay outside the markers; emphasis spanning whitespace boundaries is
// not valid Markdown.
func renderRun(r document.Run) string {
	text := r.Text
	if text == "" {
		return ""
	}

	marker := ""
	switch {
	case r.Bold && r.Italic:
		marker = "***"
	case r.Bold:
		marker = "**"
	case r.Italic:
		marker = "*"
	}
	if marker == "" {
		return text
	}

	lead := len(text) - len(strings.TrimLeft(text, " "))
	trail := len(text) - len(strings.TrimRight(text, " "))
	core := text[lead : len(text)-trail]
	if core == "" {
		return text
	}
	return text[:lead] + marker + core + marker + text[len(text)-trail:]
}

func renderTable(b *strings.Builder, t *document.Table) {
	if len(t.Rows) == 0 {
		return
	}

	writeRow := func(cells []string) {
		b.WriteString("|")
		for _, c := range cells {
			b.WriteString(" ")
			b.WriteString(strings.ReplaceAll(c, "|", "\\|"))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}

	writeRow(t.Rows[0])
	b.WriteString("|")
	b.WriteString(strings.Repeat(" --- |", len(t.Rows[0])))
	b.WriteString("\n")
	for _, row := range t.Rows[1:] {
		writeRow(row)
	}
	b.WriteString("\n")
}

// Slug derives an ASCII anchor id from a heading: accents are folded
// (Priorità -> priorita), everything outside [a-z0-9] collapses to hyphens.
func Slug(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	lastHyphen := true // suppress leading hyphens
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteString("-")
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
