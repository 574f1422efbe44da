package document

import (
	"testing"
)

func TestAppendOrderPreserved(t *testing.T) {
	doc := New()
	h := doc.AddHeading(1, "first")
	p := doc.AddParagraph(Text("second"))
	l := doc.AddList([]string{"third"})
	tbl := doc.AddTable([][]string{{"a", "b"}}, false)

	blocks := doc.Blocks()
	if len(blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(blocks))
	}
	if blocks[0] != Block(h) || blocks[1] != Block(p) || blocks[2] != Block(l) || blocks[3] != Block(tbl) {
		t.Fatal("blocks not in append order")
	}
}

func TestRunHelpers(t *testing.T) {
	r := Text("plain")
	if r.Bold || r.Italic || r.Text != "plain" {
		t.Fatalf("Text: unexpected run %+v", r)
	}

	b := BoldText("strong")
	if !b.Bold || b.Italic || b.Text != "strong" {
		t.Fatalf("BoldText: unexpected run %+v", b)
	}
}

func TestEmptyParagraph(t *testing.T) {
	doc := New()
	p := doc.AddParagraph()
	if len(p.Runs) != 0 {
		t.Fatalf("expected no runs, got %d", len(p.Runs))
	}
	if len(doc.Blocks()) != 1 {
		t.Fatal("empty paragraph not appended")
	}
}
