// Package pdfgen renders the trending-topics report as a PDF document.
package pdfgen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/TanujTlaxmanna/trendreport/internal/config"
	"github.com/TanujTlaxmanna/trendreport/internal/domain"
	"github.com/TanujTlaxmanna/trendreport/pkg/textx"
)

// wordTableLimit caps the word-frequency table at the first rows of the
// dataset, in their existing order.
const wordTableLimit = 20

// Renderer lays out the four report pages with go-pdf/fpdf.
// Implements domain.ReportRenderer.
type Renderer struct {
	tpl config.ReportTemplate
}

// New constructs a Renderer around the report copy.
func New(tpl config.ReportTemplate) *Renderer {
	return &Renderer{tpl: tpl}
}

// Render builds the report in memory. Every free-text value is sanitized to
// Latin-1 before it reaches a draw operation; frequencies are numeric and go
// in as plain decimal strings.
func (r *Renderer) Render(_ domain.Context, ds domain.Datasets) (domain.Artifact, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	// Core fonts are single-byte cp1252; the translator folds the UTF-8
	// encoding of the sanitized runes down to those single bytes.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	dropped := 0
	clean := func(s string) string {
		out, n := textx.SanitizeCount(s)
		dropped += n
		return tr(out)
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 10, clean(r.tpl.HeaderTitle), "", 1, "C", false, 0, "")
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	r.coverPage(pdf, clean, usable)
	r.summaryPage(pdf, clean, usable, len(ds.Topics))
	r.wordTablePage(pdf, clean, usable, ds.Words)
	r.appendixPage(pdf, clean, usable, ds.Topics)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return domain.Artifact{}, fmt.Errorf("op=pdfgen.Render: %w: %v", domain.ErrRenderFailed, err)
	}
	return domain.Artifact{
		ID:           uuid.NewString(),
		ContentType:  "application/pdf",
		Bytes:        buf.Bytes(),
		Pages:        pdf.PageCount(),
		DroppedChars: dropped,
		GeneratedAt:  time.Now().UTC(),
	}, nil
}

func (r *Renderer) coverPage(pdf *fpdf.Fpdf, clean func(string) string, usable float64) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 20, clean(r.tpl.CoverTitle), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(usable, 8, clean(r.tpl.CoverParagraph), "", "L", false)
}

func (r *Renderer) summaryPage(pdf *fpdf.Fpdf, clean func(string) string, usable float64, topicCount int) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, clean(r.tpl.SummaryTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	lines := make([]string, 0, len(r.tpl.SummaryBullets))
	for _, b := range r.tpl.SummaryBullets {
		lines = append(lines, strings.Replace(b, "%d", strconv.Itoa(topicCount), 1))
	}
	pdf.MultiCell(usable, 7, clean(strings.Join(lines, "\n")), "", "L", false)
}

func (r *Renderer) wordTablePage(pdf *fpdf.Fpdf, clean func(string) string, usable float64, words []domain.WordFrequency) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, clean(r.tpl.TableTitle), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(usable*0.6, 8, "Word", "1", 0, "L", false, 0, "")
	pdf.CellFormat(usable*0.4, 8, "Frequency", "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	n := len(words)
	if n > wordTableLimit {
		n = wordTableLimit
	}
	for _, wf := range words[:n] {
		pdf.CellFormat(usable*0.6, 8, clean(wf.Word), "1", 0, "L", false, 0, "")
		pdf.CellFormat(usable*0.4, 8, strconv.Itoa(wf.Frequency), "1", 1, "L", false, 0, "")
	}
}

func (r *Renderer) appendixPage(pdf *fpdf.Fpdf, clean func(string) string, usable float64, topics []domain.TrendingTopic) {
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, clean(r.tpl.AppendixTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, topic := range topics {
		pdf.MultiCell(usable, 6, "- "+clean(topic.Title), "", "L", false)
	}
}
