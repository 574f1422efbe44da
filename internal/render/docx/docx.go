// Package docx renders the document model to an OOXML word-processing file.
// All formatting decisions live in the model; this package only maps blocks
// and runs onto the go-docx API.
package docx

import (
	"io"
	"os"
	"strconv"

	godocx "github.com/fumiama/go-docx"

	"git.home.luguber.info/inful/ragplan/internal/document"
	"git.home.luguber.info/inful/ragplan/internal/errors"
)

// Heading run sizes in half-points, by heading level.
var headingSizes = map[int]int{
	0: 40,
	1: 32,
	2: 28,
	3: 24,
}

const tableWidthTwips = 8000

// countingWriter tracks the bytes that actually reach the underlying writer.
// The library's WriteTo does not report a byte count.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Write renders doc and writes the .docx archive to w, returning the number
// of bytes written.
func Write(doc *document.Document, w io.Writer) (int64, error) {
	file, err := build(doc)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	if _, err := file.WriteTo(cw); err != nil {
		return cw.n, errors.RenderError("docx", err)
	}
	return cw.n, nil
}

// WriteFile renders doc to the file at path, overwriting any existing file.
func WriteFile(doc *document.Document, path string) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, errors.WriteError(path, err)
	}
	defer f.Close()

	n, err := Write(doc, f)
	if err != nil {
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, errors.WriteError(path, err)
	}
	return n, nil
}

func build(doc *document.Document) (*godocx.Docx, error) {
	file := godocx.New().WithDefaultTheme()

	for _, block := range doc.Blocks() {
		switch b := block.(type) {
		case *document.Heading:
			addHeading(file, b)
		case *document.Paragraph:
			addParagraph(file, b)
		case *document.List:
			addList(file, b)
		case *document.Table:
			addTable(file, b)
		default:
			return nil, errors.InternalError("unknown document block", nil).
				WithContext("block", block)
		}
	}

	return file, nil
}

func addHeading(file *godocx.Docx, h *document.Heading) {
	p := file.AddParagraph()
	if h.Alignment == document.AlignCenter {
		p.Justification("center")
	}

	size, ok := headingSizes[h.Level]
	if !ok {
		size = headingSizes[3]
	}

	r := p.AddText(h.Text).Bold().Size(strconv.Itoa(size))
	if h.Color != "" {
		r.Color(h.Color)
	}
}

func addParagraph(file *godocx.Docx, para *document.Paragraph) {
	p := file.AddParagraph()
	if para.Alignment == document.AlignCenter {
		p.Justification("center")
	}

	for _, run := range para.Runs {
		r := p.AddText(run.Text)
		if run.Bold {
			r.Bold()
		}
		if run.Italic {
			r.Italic()
		}
		if run.SizeHalfPoints > 0 {
			r.Size(strconv.Itoa(run.SizeHalfPoints))
		}
		if run.Color != "" {
			r.Color(run.Color)
		}
	}
}

// addList renders each item as a bullet-prefixed paragraph. go-docx exposes
// run-level formatting only, so the bullet glyph stands in for list styling.
func addList(file *godocx.Docx, l *document.List) {
	for _, item := range l.Items {
		file.AddParagraph().AddText("• " + item)
	}
}

func addTable(file *godocx.Docx, t *document.Table) {
	if len(t.Rows) == 0 {
		return
	}

	tbl := file.AddTable(len(t.Rows), len(t.Rows[0]), tableWidthTwips, nil)
	for i, row := range t.Rows {
		for j, cell := range row {
			r := tbl.TableRows[i].TableCells[j].AddParagraph().AddText(cell)
			if i == 0 && t.HeaderBold {
				r.Bold()
			}
		}
	}
}
