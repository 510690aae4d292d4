package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/vladmu/tire-calculator/internal/model"
)

// LabelInfo holds the data encoded into each size label's QR code.
type LabelInfo struct {
	Size         string  `json:"size"`
	Kind         string  `json:"kind"`
	Original     string  `json:"original"`
	Rim          int     `json:"rim"`
	Width        float64 `json:"width_mm"`
	Profile      float64 `json:"profile"`
	Diameter     float64 `json:"diameter_mm"`
	Delta        float64 `json:"delta_mm"`
	DeltaPercent float64 `json:"delta_percent"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
const (
	labelMarginTop  = 12.7
	labelMarginLeft = 4.8
	labelWidth      = 66.7
	labelHeight     = 25.4
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0
	labelPadding    = 2.0
)

// CollectLabelInfos returns one label per recommended size: every main
// option, then the alternative.
func CollectLabelInfos(res model.Results) []LabelInfo {
	var labels []LabelInfo
	add := func(kind string, o model.Option) {
		labels = append(labels, LabelInfo{
			Size:         o.Size,
			Kind:         kind,
			Original:     res.InitialSizeKey,
			Rim:          o.Rim,
			Width:        o.Width,
			Profile:      o.Profile,
			Diameter:     o.Diameter,
			Delta:        o.Delta,
			DeltaPercent: o.DeltaPercent,
		})
	}
	for _, o := range res.Main {
		add(KindMain, o)
	}
	if res.BestAlternative != nil {
		add(KindAlternative, *res.BestAlternative)
	}
	return labels
}

// ExportLabels writes a sheet of QR-coded labels, one per recommended size,
// on Avery 5160 / US Letter.
func ExportLabels(path string, res model.Results) error {
	labels := CollectLabelInfos(res)
	if len(labels) == 0 {
		return ErrNothingToExport
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}
		pos := i % labelsPerPage
		x := labelMarginLeft + float64(pos%labelCols)*labelWidth
		y := labelMarginTop + float64(pos/labelCols)*labelHeight

		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("render label for %q: %w", label.Size, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

func renderLabel(pdf *fpdf.Fpdf, x, y float64, idx int, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal label info: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", idx, strings.NewReplacer("/", "_", " ", "_").Replace(info.Size))
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+labelWidth-qrSize-labelPadding, y+(labelHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding
	col := kindColors[info.Kind]

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 5, info.Size, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetTextColor(col.R, col.G, col.B)
	pdf.SetXY(textX, y+labelPadding+6)
	pdf.CellFormat(textW, 3, info.Kind, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding+10)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%.1f mm (%+.1f mm)", info.Diameter, info.Delta), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+14)
	pdf.CellFormat(textW, 3, "Replaces "+info.Original, "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
