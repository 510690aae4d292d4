package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/vladmu/tire-calculator/internal/model"
)

// Wheel colors by role.
var (
	colorOriginal    = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
	colorMain        = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
	colorBest        = color.NRGBA{R: 76, G: 175, B: 80, A: 255}
	colorAlternative = color.NRGBA{R: 255, G: 152, B: 0, A: 255}
	colorRim         = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colorGround      = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

const (
	wheelGap     float32 = 12
	labelHeight  float32 = 30
	minWheelSize float32 = 40
)

// Wheel is one wheel drawn by a WheelCanvas.
type Wheel struct {
	Size  model.Size
	Label string
	Color color.NRGBA
}

// WheelsFor lists the original size followed by the main options and the
// alternative, colored by role.
func WheelsFor(res model.Results) []Wheel {
	var list []Wheel
	if in, err := model.ParseSizeKey(res.InitialSizeKey); err == nil {
		list = append(list, Wheel{Size: in.Size(), Label: "Current", Color: colorOriginal})
	}
	for _, o := range res.Main {
		item := Wheel{Size: optionSize(o), Label: fmt.Sprintf("%+.1f mm", o.Delta), Color: colorMain}
		if res.IsBestMain(o) {
			item.Label = "Best " + item.Label
			item.Color = colorBest
		}
		list = append(list, item)
	}
	if alt := res.BestAlternative; alt != nil {
		list = append(list, Wheel{
			Size:  optionSize(*alt),
			Label: fmt.Sprintf("Alt %+.1f mm", alt.Delta),
			Color: colorAlternative,
		})
	}
	return list
}

func optionSize(o model.Option) model.Size {
	return model.Size{Rim: o.Rim, Width: o.Width, Profile: o.Profile}
}

// WheelCanvas draws wheels side by side at a common scale, standing on one
// ground line, so diameter differences are visible at a glance.
type WheelCanvas struct {
	widget.BaseWidget
	wheels    []Wheel
	maxWidth  float32
	maxHeight float32
}

func NewWheelCanvas(wheels []Wheel, maxW, maxH float32) *WheelCanvas {
	wc := &WheelCanvas{
		wheels:    wheels,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	wc.ExtendBaseWidget(wc)
	return wc
}

// SetWheels replaces the drawn wheels.
func (wc *WheelCanvas) SetWheels(wheels []Wheel) {
	wc.wheels = wheels
	wc.Refresh()
}

func (wc *WheelCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newWheelCanvasRenderer(wc)
}

// wheelScale returns the px/mm scale that fits every wheel in one row.
func wheelScale(wheels []Wheel, maxW, maxH float32) float32 {
	if len(wheels) == 0 {
		return 0
	}
	var sum, tallest float32
	for _, w := range wheels {
		d := float32(w.Size.TotalDiameter())
		sum += d
		if d > tallest {
			tallest = d
		}
	}
	scaleX := (maxW - wheelGap*float32(len(wheels)+1)) / sum
	scaleY := (maxH - labelHeight - wheelGap) / tallest
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if tallest*scale < minWheelSize {
		scale = minWheelSize / tallest
	}
	return scale
}

type wheelCanvasRenderer struct {
	wc      *WheelCanvas
	objects []fyne.CanvasObject
	size    fyne.Size
}

func newWheelCanvasRenderer(wc *WheelCanvas) *wheelCanvasRenderer {
	r := &wheelCanvasRenderer{wc: wc}
	r.rebuild()
	return r
}

func (r *wheelCanvasRenderer) rebuild() {
	r.objects = nil
	wheels := r.wc.wheels
	scale := wheelScale(wheels, r.wc.maxWidth, r.wc.maxHeight)
	if scale == 0 {
		r.size = fyne.NewSize(0, 0)
		return
	}

	var tallest float32
	for _, w := range wheels {
		if d := float32(w.Size.TotalDiameter()) * scale; d > tallest {
			tallest = d
		}
	}
	groundY := wheelGap + tallest

	x := wheelGap
	for _, w := range wheels {
		d := float32(w.Size.TotalDiameter()) * scale
		rimD := float32(w.Size.Rim) * model.InchToMM * scale

		tire := canvas.NewCircle(color.Transparent)
		tire.StrokeColor = w.Color
		tire.StrokeWidth = 3
		tire.Resize(fyne.NewSize(d, d))
		tire.Move(fyne.NewPos(x, groundY-d))
		r.objects = append(r.objects, tire)

		rim := canvas.NewCircle(colorRim)
		rim.Resize(fyne.NewSize(rimD, rimD))
		rim.Move(fyne.NewPos(x+(d-rimD)/2, groundY-d+(d-rimD)/2))
		r.objects = append(r.objects, rim)

		name := canvas.NewText(w.Size.Key(), w.Color)
		name.TextSize = 11
		name.TextStyle = fyne.TextStyle{Bold: true}
		name.Move(fyne.NewPos(x, groundY+2))
		r.objects = append(r.objects, name)

		caption := canvas.NewText(w.Label, colorGround)
		caption.TextSize = 10
		caption.Move(fyne.NewPos(x, groundY+15))
		r.objects = append(r.objects, caption)

		x += d + wheelGap
	}

	ground := canvas.NewLine(colorGround)
	ground.StrokeWidth = 1
	ground.Position1 = fyne.NewPos(0, groundY)
	ground.Position2 = fyne.NewPos(x, groundY)
	r.objects = append(r.objects, ground)

	r.size = fyne.NewSize(x, groundY+labelHeight)
}

func (r *wheelCanvasRenderer) Layout(size fyne.Size)        {}
func (r *wheelCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.wc) }
func (r *wheelCanvasRenderer) Destroy()                     {}
func (r *wheelCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *wheelCanvasRenderer) MinSize() fyne.Size           { return r.size }
