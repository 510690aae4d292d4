// Package export writes calculation results to PDF reports, QR label sheets,
// Excel workbooks and DXF drawings.
package export

import (
	"errors"
	"fmt"

	"github.com/vladmu/tire-calculator/internal/model"
)

// Wheel kinds; also used as DXF layer names.
const (
	KindOriginal    = "ORIGINAL"
	KindMain        = "MAIN"
	KindAlternative = "ALTERNATIVE"
)

// ErrNothingToExport is returned when a result has no recommendation.
var ErrNothingToExport = errors.New("no recommended sizes to export")

// wheel is one size to draw or list, in display order.
type wheel struct {
	Kind   string
	Size   model.Size
	Option model.Option // zero for the original
	Best   bool
}

// wheelsFor lists the original size, each main option and the alternative.
func wheelsFor(res model.Results) ([]wheel, error) {
	if !res.HasRecommendation() {
		return nil, ErrNothingToExport
	}
	in, err := model.ParseSizeKey(res.InitialSizeKey)
	if err != nil {
		return nil, fmt.Errorf("original size: %w", err)
	}

	wheels := []wheel{{Kind: KindOriginal, Size: in.Size()}}
	for _, o := range res.Main {
		wheels = append(wheels, wheel{
			Kind:   KindMain,
			Size:   optionSize(o),
			Option: o,
			Best:   res.IsBestMain(o),
		})
	}
	if alt := res.BestAlternative; alt != nil {
		wheels = append(wheels, wheel{Kind: KindAlternative, Size: optionSize(*alt), Option: *alt})
	}
	return wheels, nil
}

func optionSize(o model.Option) model.Size {
	return model.Size{Rim: o.Rim, Width: o.Width, Profile: o.Profile}
}

// maxDiameter returns the largest total diameter among wheels.
func maxDiameter(wheels []wheel) float64 {
	max := 0.0
	for _, w := range wheels {
		if d := w.Size.TotalDiameter(); d > max {
			max = d
		}
	}
	return max
}
