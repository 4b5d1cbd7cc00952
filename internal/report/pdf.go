package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/podolab/podo-analyzer/internal/pressure"
)

const (
	pageMargin   = 12.0 // mm
	contentWidth = 210 - 2*pageMargin
)

// Meta carries report header information.
type Meta struct {
	SourceName  string
	GeneratedAt time.Time
}

// GeneratePDF assembles a one-page A4 report: header, per-foot
// classification table, and the heatmap and distribution chart images.
// Either image may be nil and is then skipped.
func GeneratePDF(res *pressure.Result, heatmapPNG, chartPNG []byte, meta Meta) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(contentWidth, 10, "Foot Pressure Analysis Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(90, 90, 90)
	header := fmt.Sprintf("Source: %s    Generated: %s",
		meta.SourceName, meta.GeneratedAt.Format("2006-01-02 15:04:05"))
	pdf.CellFormat(contentWidth, 6, header, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeClassificationTable(pdf, res)
	pdf.Ln(6)

	imageY := pdf.GetY()
	if heatmapPNG != nil {
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("heatmap", opt, bytes.NewReader(heatmapPNG))
		pdf.ImageOptions("heatmap", pageMargin, imageY, contentWidth/2-4, 0, false, opt, 0, "")
	}
	if chartPNG != nil {
		opt := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("chart", opt, bytes.NewReader(chartPNG))
		pdf.ImageOptions("chart", pageMargin+contentWidth/2+4, imageY, contentWidth/2-4, 0, false, opt, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// writeClassificationTable emits the per-foot type, arch index and score.
func writeClassificationTable(pdf *gofpdf.Fpdf, res *pressure.Result) {
	colWidths := []float64{40, 50, 48, 48}
	headers := []string{"Side", "Foot Type", "Arch Index", "Score"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(225, 225, 225)
	pdf.SetTextColor(0, 0, 0)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, side := range []string{pressure.SideLeft, pressure.SideRight} {
		ft := res.FootTypes[side]
		cells := []string{side, string(ft.Type), "-", "-"}
		if ft.Type != pressure.FootTypeNoData {
			cells[2] = fmt.Sprintf("%.3f", ft.ArchIndex)
			cells[3] = fmt.Sprintf("%.1f", ft.Score)
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
