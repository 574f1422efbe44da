// Package document provides the intermediate representation for assembled
// report content. Renderers consume this model; nothing in here knows about
// output formats.
package document

// Alignment controls horizontal paragraph alignment.
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignCenter  Alignment = "center"
)

// Block is a top-level element in a document body.
// Concrete types: *Heading, *Paragraph, *List, *Table.
type Block interface {
	blockKind() string
}

// Run is a contiguous span of text with uniform formatting. Runs are the
// atomic formatting unit; a paragraph mixing bold and plain text holds one
// run per span.
type Run struct {
	Text           string
	Bold           bool
	Italic         bool
	SizeHalfPoints int    // 0 means inherit the default size
	Color          string // hex RRGGBB, empty means default
}

// Heading is a section heading. Level 0 is the document title; levels 1..3
// are nested section headings.
type Heading struct {
	Level     int
	Text      string
	Color     string // hex RRGGBB applied to the heading run
	Alignment Alignment
}

// Paragraph is a sequence of runs.
type Paragraph struct {
	Runs      []Run
	Alignment Alignment
}

// List is a bulleted list.
type List struct {
	Items []string
}

// Table is a grid of plain-text cells. All rows must have the same length;
// when HeaderBold is set the first row renders bold.
type Table struct {
	Rows       [][]string
	HeaderBold bool
}

func (*Heading) blockKind() string   { return "heading" }
func (*Paragraph) blockKind() string { return "paragraph" }
func (*List) blockKind() string      { return "list" }
func (*Table) blockKind() string     { return "table" }

// Document is an ordered sequence of blocks. Blocks appear in the rendered
// output in append order.
type Document struct {
	blocks []Block
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Append adds blocks to the end of the document.
func (d *Document) Append(blocks ...Block) {
	d.blocks = append(d.blocks, blocks...)
}

// Blocks returns the blocks in append order.
func (d *Document) Blocks() []Block {
	return d.blocks
}

// Text creates a plain run.
func Text(s string) Run { return Run{Text: s} }

// BoldText creates a bold run.
func BoldText(s string) Run { return Run{Text: s, Bold: true} }

// AddHeading appends a heading block and returns it.
func (d *Document) AddHeading(level int, text string) *Heading {
	h := &Heading{Level: level, Text: text}
	d.Append(h)
	return h
}

// AddParagraph appends a paragraph built from the given runs and returns it.
func (d *Document) AddParagraph(runs ...Run) *Paragraph {
	p := &Paragraph{Runs: runs}
	d.Append(p)
	return p
}

// AddList appends a bulleted list and returns it.
func (d *Document) AddList(items []string) *List {
	l := &List{Items: items}
	d.Append(l)
	return l
}

// AddTable appends a table and returns it.
func (d *Document) AddTable(rows [][]string, headerBold bool) *Table {
	t := &Table{Rows: rows, HeaderBold: headerBold}
	d.Append(t)
	return t
}
