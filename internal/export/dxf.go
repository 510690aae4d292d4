package export

import (
	"fmt"

	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
)

var layerColors = map[string]color.ColorNumber{
	KindOriginal:    color.White,
	KindMain:        color.Cyan,
	KindAlternative: color.Yellow,
}

// wheelGap is the horizontal distance between neighbouring wheels (mm).
const wheelGap = 100.0

// ExportDXF writes a 1:1 side view of the original and recommended wheels.
// Each wheel is a rim circle inside a tire circle, placed on its kind's
// layer, with a size label underneath. All wheels stand on a ground line at
// y = 0.
func ExportDXF(path string, res model.Results) error {
	wheels, err := wheelsFor(res)
	if err != nil {
		return err
	}

	d := dxf.NewDrawing()
	for _, kind := range []string{KindOriginal, KindMain, KindAlternative} {
		if _, err := d.AddLayer(kind, layerColors[kind], dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("add layer %s: %w", kind, err)
		}
	}

	slot := maxDiameter(wheels) + wheelGap
	textHeight := slot / 25
	for i, w := range wheels {
		if err := d.ChangeLayer(w.Kind); err != nil {
			return fmt.Errorf("select layer %s: %w", w.Kind, err)
		}
		r := w.Size.TotalDiameter() / 2
		cx := float64(i)*slot + slot/2
		if _, err := d.Circle(cx, r, 0, r); err != nil {
			return fmt.Errorf("draw %s: %w", w.Size.Key(), err)
		}
		if _, err := d.Circle(cx, r, 0, float64(w.Size.Rim)*model.InchToMM/2); err != nil {
			return fmt.Errorf("draw rim of %s: %w", w.Size.Key(), err)
		}
		label := fmt.Sprintf("%s %s", w.Kind, w.Size.Key())
		if _, err := d.Text(label, cx-r, -2*textHeight, 0, textHeight); err != nil {
			return fmt.Errorf("label %s: %w", w.Size.Key(), err)
		}
	}

	if err := d.ChangeLayer(KindOriginal); err != nil {
		return err
	}
	if _, err := d.Line(0, 0, 0, float64(len(wheels))*slot, 0, 0); err != nil {
		return fmt.Errorf("draw ground line: %w", err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save drawing: %w", err)
	}
	return nil
}
