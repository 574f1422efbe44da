package plan

import (
	"fmt"
	"time"

	"git.home.luguber.info/inful/ragplan/internal/document"
)

// Formatting constants shared by the renderers. Sizes are half-points.
const (
	HeadingColor = "003366"
	FooterColor  = "808080"

	subtitleSize = 24 // 12pt
	footerSize   = 18 // 9pt
)

// Timestamp layouts for the two variable strings in the document.
const (
	subtitleTimeLayout = "January 2006"
	footerTimeLayout   = "02/01/2006 alle 15:04"
)

// Build assembles the complete improvement-plan document. The only
// run-dependent content is the subtitle month/year and the footer timestamp,
// both derived from now.
func Build(now time.Time) *document.Document {
	doc := document.New()

	title := doc.AddHeading(0, documentTitle)
	title.Alignment = document.AlignCenter

	subtitle := doc.AddParagraph(document.Run{
		Text:           fmt.Sprintf("%s - %s", subtitleBase, now.Format(subtitleTimeLayout)),
		Italic:         true,
		SizeHalfPoints: subtitleSize,
	})
	subtitle.Alignment = document.AlignCenter

	doc.AddParagraph()

	addSectionHeading(doc, "📋 Sommario Esecutivo")
	doc.AddParagraph(document.Text(summaryText))
	doc.AddParagraph()

	addSectionHeading(doc, "🔍 Analisi dello Stato Attuale")
	doc.AddHeading(3, "Il sistema attuale include:")
	features := CurrentFeatures()
	items := make([]string, 0, len(features))
	for _, f := range features {
		items = append(items, "✓ "+f)
	}
	doc.AddList(items)
	doc.AddParagraph()

	addSectionHeading(doc, "🎯 Fasi di Miglioramento")
	for _, p := range Phases() {
		addPhase(doc, p)
	}

	addSectionHeading(doc, "📅 Timeline di Implementazione Suggerita")
	doc.AddTable(timelineCells(), true)
	doc.AddParagraph()

	addSectionHeading(doc, "💡 Best Practices Generali")
	doc.AddList(BestPractices())
	doc.AddParagraph()

	addSectionHeading(doc, "🛠️ Strumenti e Tecnologie Consigliate")
	for _, group := range ToolGroups() {
		doc.AddHeading(3, group.Label)
		doc.AddList(group.Tools)
	}
	doc.AddParagraph()

	addSectionHeading(doc, "🎓 Conclusioni")
	doc.AddParagraph(document.Text(conclusionPart1))
	doc.AddParagraph(document.Text(conclusionPart2))
	doc.AddParagraph()

	addFooter(doc, now)

	return doc
}

// addSectionHeading appends a level-1 heading in the document's accent color.
func addSectionHeading(doc *document.Document, text string) {
	h := doc.AddHeading(1, text)
	h.Color = HeadingColor
}

// addPhase appends one phase section: colored heading, bold-labeled
// description, activities, and success metrics.
func addPhase(doc *document.Document, p Phase) {
	h := doc.AddHeading(2, fmt.Sprintf("Fase %d: %s", p.Number, p.Title))
	h.Color = HeadingColor

	doc.AddParagraph(document.BoldText("Descrizione: "), document.Text(p.Description))

	doc.AddHeading(3, "Attività principali:")
	doc.AddList(p.Activities)
	doc.AddParagraph()

	doc.AddHeading(3, "Metriche di successo:")
	doc.AddList(p.Metrics)
	doc.AddParagraph()
}

// timelineCells builds the full 8x3 cell grid: header row plus seven data rows.
func timelineCells() [][]string {
	rows := make([][]string, 0, len(TimelineRows())+1)
	rows = append(rows, TimelineHeader)
	for _, r := range TimelineRows() {
		rows = append(rows, []string{r.Phase, r.Duration, r.Priority})
	}
	return rows
}

// addFooter appends the two centered footer lines sharing the same muted
// italic formatting.
func addFooter(doc *document.Document, now time.Time) {
	lines := []string{
		fmt.Sprintf("Documento generato il %s", now.Format(footerTimeLayout)),
		footerAttribution,
	}
	for _, line := range lines {
		p := doc.AddParagraph(document.Run{
			Text:           line,
			Italic:         true,
			SizeHalfPoints: footerSize,
			Color:          FooterColor,
		})
		p.Alignment = document.AlignCenter
	}
}
