package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/model"
)

type rgb struct {
	R, G, B int
}

// kindColors mirrors the card colors of the desktop results view.
var kindColors = map[string]rgb{
	KindOriginal:    {R: 120, G: 120, B: 120},
	KindMain:        {R: 33, G: 150, B: 243},
	KindAlternative: {R: 255, G: 152, B: 0},
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	diagramTop   = marginTop + headerHeight + 10
	diagramH     = 60.0
	rowHeight    = 6.0
	rowsPerPage  = 22
)

// ExportPDF writes a one-page report for res: a side view of the original and
// recommended wheels followed by a table of every option.
func ExportPDF(path string, res model.Results) error {
	wheels, err := wheelsFor(res)
	if err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderTitle(pdf, "Tire Size Report: "+res.InitialSizeKey,
		fmt.Sprintf("Original total diameter %.1f mm | Allowed drift %.1f%%", res.Diameter, model.MaxDeltaPercent))
	drawWheelDiagram(pdf, wheels, diagramTop)
	renderOptionTable(pdf, wheels, res.Diameter, diagramTop+diagramH+18)
	renderFooter(pdf)

	return pdf.OutputFileAndClose(path)
}

// ExportComparisonPDF writes a summary table for a batch of sizes.
func ExportComparisonPDF(path string, comps []engine.Comparison) error {
	if len(comps) == 0 {
		return fmt.Errorf("no sizes to compare")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	headers := []string{"Label", "Original", "Diameter", "Main", "Best main", "Best delta", "Alternative"}
	colWidths := []float64{55, 30, 28, 18, 45, 30, 61}

	var y float64
	for i, c := range comps {
		if i%rowsPerPage == 0 {
			pdf.AddPage()
			renderTitle(pdf, "Tire Size Comparison", fmt.Sprintf("%d sizes", len(comps)))
			y = marginTop + headerHeight + 10
			y = renderTableHeader(pdf, headers, colWidths, y)
			pdf.SetFont("Helvetica", "", 9)
		}

		best, delta, alt := "-", "-", "-"
		if b := c.Results.BestMain; b != nil {
			best = b.Size
			delta = fmt.Sprintf("%.1f mm", c.BestDelta)
		}
		if a := c.Results.BestAlternative; a != nil {
			alt = fmt.Sprintf("%s (%+.1f mm)", a.Size, a.Delta)
		}
		row := []string{
			c.Label,
			c.Input.Key(),
			fmt.Sprintf("%.1f mm", c.Results.Diameter),
			fmt.Sprintf("%d", c.MainCount),
			best,
			delta,
			alt,
		}
		y = renderTableRow(pdf, row, colWidths, y, i%2 == 0)
		if (i+1)%rowsPerPage == 0 || i == len(comps)-1 {
			renderFooter(pdf)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func renderTitle(pdf *fpdf.Fpdf, title, subtitle string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+headerHeight, pageWidth-marginRight, marginTop+headerHeight)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight+1)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, subtitle, "", 0, "L", false, 0, "")
}

// drawWheelDiagram draws each wheel as a tire circle around a rim circle,
// all to the same scale and standing on a common ground line.
func drawWheelDiagram(pdf *fpdf.Fpdf, wheels []wheel, top float64) {
	drawWidth := pageWidth - marginLeft - marginRight
	slot := drawWidth / float64(len(wheels))
	scale := math.Min(diagramH, slot-6) / maxDiameter(wheels)
	ground := top + diagramH

	pdf.SetDrawColor(160, 160, 160)
	pdf.SetLineWidth(0.3)
	pdf.Line(marginLeft, ground, pageWidth-marginRight, ground)

	for i, w := range wheels {
		col := kindColors[w.Kind]
		cx := marginLeft + slot*(float64(i)+0.5)
		r := w.Size.TotalDiameter() / 2 * scale
		rimR := float64(w.Size.Rim) * model.InchToMM / 2 * scale
		cy := ground - r

		pdf.SetFillColor(40, 40, 40)
		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.SetLineWidth(0.6)
		pdf.Circle(cx, cy, r, "FD")
		pdf.SetFillColor(210, 210, 210)
		pdf.Circle(cx, cy, rimR, "FD")

		label := w.Size.Key()
		if w.Best {
			label += " *"
		}
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(col.R, col.G, col.B)
		labelW := pdf.GetStringWidth(label)
		pdf.SetXY(cx-labelW/2, ground+1)
		pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 7)
		pdf.SetTextColor(80, 80, 80)
		sub := fmt.Sprintf("%s | %.1f mm", w.Kind, w.Size.TotalDiameter())
		subW := pdf.GetStringWidth(sub)
		pdf.SetXY(cx-subW/2, ground+5)
		pdf.CellFormat(subW, 4, sub, "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

func renderOptionTable(pdf *fpdf.Fpdf, wheels []wheel, base float64, y float64) {
	headers := []string{"Kind", "Size", "Diameter", "Delta", "Delta %", "Width", "Sidewall", "Exact profile", "Note"}
	colWidths := []float64{30, 32, 28, 24, 22, 32, 26, 28, 45}

	var orig model.Size
	y = renderTableHeader(pdf, headers, colWidths, y)
	pdf.SetFont("Helvetica", "", 9)
	for i, w := range wheels {
		if w.Kind == KindOriginal {
			orig = w.Size
			row := []string{w.Kind, w.Size.Key(), fmt.Sprintf("%.1f mm", base), "-", "-", "-",
				fmt.Sprintf("%.1f mm", w.Size.Sidewall()), "-", ""}
			y = renderTableRow(pdf, row, colWidths, y, i%2 == 0)
			continue
		}

		o := w.Option
		exact := "-"
		if o.ProfileNeeded != nil {
			exact = fmt.Sprintf("%.1f%%", *o.ProfileNeeded)
		}
		var note string
		switch {
		case w.Best:
			note = "Best match"
		case !o.WithinTolerance():
			note = "Closest permissible"
		}
		row := []string{
			w.Kind,
			o.Size,
			fmt.Sprintf("%.1f mm", o.Diameter),
			fmt.Sprintf("%+.1f mm", o.Delta),
			fmt.Sprintf("%+.2f%%", o.DeltaPercent),
			fmt.Sprintf("%s (%+.0f)", o.WidthChangeLabel(orig.Width), o.WidthChange(orig.Width)),
			fmt.Sprintf("%.1f mm", w.Size.Sidewall()),
			exact,
			note,
		}
		y = renderTableRow(pdf, row, colWidths, y, i%2 == 0)
	}
}

func renderTableHeader(pdf *fpdf.Fpdf, headers []string, colWidths []float64, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], rowHeight, h, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	return y + rowHeight
}

func renderTableRow(pdf *fpdf.Fpdf, cells []string, colWidths []float64, y float64, shaded bool) float64 {
	if shaded {
		pdf.SetFillColor(245, 245, 245)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}
	x := marginLeft
	for i, c := range cells {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], rowHeight, c, "1", 0, "C", true, 0, "")
		x += colWidths[i]
	}
	return y + rowHeight
}

func renderFooter(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by Tire Calculator", "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}
