// Tire Calculator: replacement tire sizes for larger rims
//
// A cross-platform desktop application that finds tire sizes on larger
// rims which keep the overall wheel diameter within 2% of the original.
//
// Build:
//   go build -o tirecalc ./cmd/tirecalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o tirecalc.exe ./cmd/tirecalc
//   GOOS=darwin  GOARCH=amd64 go build -o tirecalc-darwin ./cmd/tirecalc
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/vladmu/tire-calculator/internal/ui"
)

func main() {
	application := app.NewWithID("com.vladmu.tirecalc")
	window := application.NewWindow("Tire Calculator")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
}
