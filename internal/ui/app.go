package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/vladmu/tire-calculator/internal/engine"
	"github.com/vladmu/tire-calculator/internal/export"
	sizeimporter "github.com/vladmu/tire-calculator/internal/importer"
	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/vladmu/tire-calculator/internal/project"
	"github.com/vladmu/tire-calculator/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app     fyne.App
	window  fyne.Window
	state   *CalculatorState
	history *History
	config  model.AppConfig
	garage  model.Garage
	theme   *CalculatorTheme

	// UI references for dynamic updates
	rEntry, wEntry, vEntry *widget.Entry
	boundsLabel            *widget.Label
	resultContainer        *fyne.Container
	updating               bool
}

// NewApp loads the configuration and garage and prepares the calculator
// with the configured default size.
func NewApp(application fyne.App, window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Printf("Warning: using default settings: %v\n", err)
		config = model.DefaultAppConfig()
	}
	garage, err := project.LoadGarage(project.DefaultGaragePath())
	if err != nil {
		fmt.Printf("Warning: could not load garage: %v\n", err)
		garage = model.DefaultGarage()
	}

	a := &App{
		app:     application,
		window:  window,
		state:   NewCalculatorState(),
		history: NewHistory(),
		config:  config,
		garage:  garage,
		theme:   NewCalculatorTheme(config.Theme),
	}
	a.state.Load(config.DefaultSize)
	application.Settings().SetTheme(a.theme)
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	recent := make([]*fyne.MenuItem, 0, len(a.config.RecentSizes))
	for _, key := range a.config.RecentSizes {
		key := key
		recent = append(recent, fyne.NewMenuItem(key, func() { a.loadSizeKey(key) }))
	}
	recentItem := fyne.NewMenuItem("Recent Sizes", nil)
	recentItem.ChildMenu = fyne.NewMenu("", recent...)
	recentItem.Disabled = len(recent) == 0

	// File Menu
	fileMenu := fyne.NewMenu("File",
		recentItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Compare Sizes from File...", func() {
			a.importSizes()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportResults("Export PDF Report", ".pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Labels...", func() {
			a.exportResults("Export Labels", "-labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export Excel...", func() {
			a.exportResults("Export Excel", ".xlsx", a.exportSingleExcel)
		}),
		fyne.NewMenuItem("Export DXF Drawing...", func() {
			a.exportResults("Export DXF Drawing", ".dxf", export.ExportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Backup / Restore...", func() {
			a.showImportExportDialog()
		}),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.app.Quit()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() { a.undo() }),
		fyne.NewMenuItem("Redo", func() { a.redo() }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset", func() { a.reset() }),
	)

	garageMenu := fyne.NewMenu("Garage",
		fyne.NewMenuItem("Save Current Size...", func() {
			a.showSaveToGarageDialog()
		}),
		fyne.NewMenuItem("Open Garage...", func() {
			a.showGarageDialog()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, garageMenu, helpMenu))
}

// setupShortcuts binds undo and redo to the platform shortcut keys.
func (a *App) setupShortcuts() {
	a.window.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.undo() })
	a.window.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { a.redo() })
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About Tire Calculator",
		"Tire Calculator\n\n"+
			"Finds replacement tire sizes on larger rims that keep\n"+
			"the overall wheel diameter within 2% of the original.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	left := container.NewVScroll(container.NewVBox(
		a.buildInputPanel(),
		a.buildInfoPanel(),
	))

	a.resultContainer = container.NewStack()
	a.refreshResults()

	a.setupShortcuts()

	split := container.NewHSplit(left, a.resultContainer)
	split.Offset = 0.32
	return split
}

// ─── Info Panel ────────────────────────────────────────────

func (a *App) buildInfoPanel() fyne.CanvasObject {
	rules := widget.NewLabel(rulesText)
	rules.Wrapping = fyne.TextWrapWord

	bold := fyne.TextStyle{Bold: true}
	cells := []fyne.CanvasObject{
		widget.NewLabelWithStyle("R (in)", fyne.TextAlignCenter, bold),
		widget.NewLabelWithStyle("Min W", fyne.TextAlignCenter, bold),
		widget.NewLabelWithStyle("Min V", fyne.TextAlignCenter, bold),
		widget.NewLabelWithStyle("Max W", fyne.TextAlignCenter, bold),
		widget.NewLabelWithStyle("Max V", fyne.TextAlignCenter, bold),
	}
	for _, row := range model.LimitRows() {
		for _, v := range []string{
			strconv.Itoa(row.Rim),
			formatValue(row.Min.Width), formatValue(row.Min.Profile),
			formatValue(row.Max.Width), formatValue(row.Max.Profile),
		} {
			cells = append(cells, widget.NewLabelWithStyle(v, fyne.TextAlignCenter, fyne.TextStyle{}))
		}
	}

	accordion := widget.NewAccordion(
		widget.NewAccordionItem("Calculation rules", rules),
		widget.NewAccordionItem("Minimum and maximum limits", container.NewGridWithColumns(5, cells...)),
	)
	accordion.Open(0)
	return accordion
}

// ─── Input Panel ───────────────────────────────────────────

func (a *App) buildInputPanel() fyne.CanvasObject {
	a.rEntry = widget.NewEntry()
	a.wEntry = widget.NewEntry()
	a.vEntry = widget.NewEntry()
	a.boundsLabel = widget.NewLabel("")
	a.boundsLabel.Importance = widget.LowImportance

	a.rEntry.OnChanged = func(text string) {
		if !a.updating {
			a.state.SetRRaw(text)
		}
	}
	a.wEntry.OnChanged = func(text string) {
		if !a.updating {
			a.state.SetWRaw(text)
		}
	}
	a.vEntry.OnChanged = func(text string) {
		if !a.updating {
			a.state.SetVRaw(text)
		}
	}
	a.rEntry.OnSubmitted = func(text string) { a.change("Set R", func() { a.state.SetR(text) }) }
	a.wEntry.OnSubmitted = func(string) { a.change("Set W", a.state.CommitW) }
	a.vEntry.OnSubmitted = func(string) { a.change("Set V", a.state.CommitV) }

	rMinus, rPlus := newStepperButtons("rim", "1 inch",
		func() { a.change("Decrement R", a.state.DecrementR) },
		func() { a.change("Increment R", a.state.IncrementR) })
	wMinus, wPlus := newStepperButtons("width", "10 mm",
		func() { a.change("Decrement W", a.state.DecrementW) },
		func() { a.change("Increment W", a.state.IncrementW) })
	vMinus, vPlus := newStepperButtons("profile", "5%",
		func() { a.change("Decrement V", a.state.DecrementV) },
		func() { a.change("Increment V", a.state.IncrementV) })

	row := func(entry *widget.Entry, minus, plus fyne.CanvasObject) fyne.CanvasObject {
		return container.NewBorder(nil, nil, minus, plus, entry)
	}
	form := widget.NewForm(
		widget.NewFormItem("Rim R (in)", row(a.rEntry, rMinus, rPlus)),
		widget.NewFormItem("Width W (mm)", row(a.wEntry, wMinus, wPlus)),
		widget.NewFormItem("Profile V (%)", row(a.vEntry, vMinus, vPlus)),
	)

	calcBtn := widget.NewButtonWithIcon("Calculate", theme.MediaPlayIcon(), func() {
		a.runCalculate()
	})
	calcBtn.Importance = widget.HighImportance
	resetBtn := widget.NewButtonWithIcon("Reset", theme.ContentUndoIcon(), func() {
		a.reset()
	})

	a.refreshInputs()

	return widget.NewCard("Current size", "", container.NewVBox(
		form,
		a.boundsLabel,
		container.NewHBox(layout.NewSpacer(), resetBtn, calcBtn),
	))
}

// change records the fields for undo, applies fn and refreshes the form.
func (a *App) change(label string, fn func()) {
	a.history.Push(a.state.Snapshot(label))
	fn()
	a.refreshInputs()
}

func (a *App) refreshInputs() {
	a.updating = true
	a.rEntry.SetText(a.state.R)
	a.wEntry.SetText(a.state.W)
	a.vEntry.SetText(a.state.V)
	a.updating = false
	a.boundsLabel.SetText(boundsText(a.state))
}

func (a *App) undo() {
	snap, ok := a.history.Undo(a.state.Snapshot("Undo"))
	if !ok {
		return
	}
	a.state.Restore(snap)
	a.refreshInputs()
	a.refreshResults()
}

func (a *App) redo() {
	snap, ok := a.history.Redo(a.state.Snapshot("Redo"))
	if !ok {
		return
	}
	a.state.Restore(snap)
	a.refreshInputs()
	a.refreshResults()
}

func (a *App) reset() {
	a.history.Push(a.state.Snapshot("Reset"))
	a.state.Reset()
	a.refreshInputs()
	a.refreshResults()
}

// loadInput replaces the fields with in and calculates it.
func (a *App) loadInput(in model.Input) {
	a.history.Push(a.state.Snapshot("Load size"))
	a.state.Load(in)
	a.refreshInputs()
	a.runCalculate()
}

func (a *App) loadSizeKey(key string) {
	in, err := model.ParseSizeKey(key)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.loadInput(in)
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) runCalculate() {
	if err := a.state.Calculate(); err == nil {
		a.config.AddRecentSize(a.state.Results.InitialSizeKey)
		if err := a.saveConfig(); err != nil {
			fmt.Printf("Warning: could not save recent sizes: %v\n", err)
		}
		a.SetupMenus()
	}
	a.refreshResults()
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(a.renderResults())
	a.resultContainer.Refresh()
}

func (a *App) renderResults() fyne.CanvasObject {
	if a.state.Err != nil {
		msg := widget.NewLabel(a.state.Err.Error())
		msg.Importance = widget.DangerImportance
		msg.Wrapping = fyne.TextWrapWord
		return container.NewVBox(msg)
	}
	res := a.state.Results
	if res == nil {
		return widget.NewLabel("Enter the current size and click Calculate.")
	}

	baseWidth := 0.0
	if in, err := model.ParseSizeKey(res.InitialSizeKey); err == nil {
		baseWidth = in.Width
	}

	current := widget.NewCard("Current size", res.InitialSizeKey, linesBox(currentSizeLines(*res)))

	var cards []fyne.CanvasObject
	for _, o := range res.Main {
		subtitle := o.Size
		if res.IsBestMain(o) {
			subtitle += "  (Best)"
		}
		cards = append(cards, widget.NewCard(optionCardTitle(o, baseWidth, false), subtitle,
			linesBox(optionCardLines(o, baseWidth))))
	}
	if alt := res.BestAlternative; alt != nil {
		cards = append(cards, widget.NewCard(optionCardTitle(*alt, baseWidth, true), alt.Size+"  (Alt)",
			linesBox(optionCardLines(*alt, baseWidth))))
	}
	if len(res.Main) == 0 {
		note := widget.NewLabel("No main option fits the limits; only an alternative width works.")
		note.Importance = widget.WarningImportance
		cards = append([]fyne.CanvasObject{note}, cards...)
	}

	wheels := widgets.NewWheelCanvas(widgets.WheelsFor(*res), 640, 260)

	return container.NewVScroll(container.NewVBox(
		current,
		container.NewGridWrap(fyne.NewSize(260, 200), cards...),
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Wheel comparison", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHScroll(wheels),
	))
}

func linesBox(lines []string) fyne.CanvasObject {
	box := container.NewVBox()
	for _, l := range lines {
		box.Add(widget.NewLabel(l))
	}
	return box
}

// ─── Export ────────────────────────────────────────────────

// exportResults asks for a file name and writes the current results with write.
func (a *App) exportResults(title, suffix string, write func(string, model.Results) error) {
	if a.state.Results == nil {
		dialog.ShowInformation("No results", "Calculate a size first before exporting.", a.window)
		return
	}
	res := *a.state.Results
	name := strings.NewReplacer("/", "-", " ", "").Replace(res.InitialSizeKey) + suffix
	a.saveFile(title, name, func(path string) error { return write(path, res) })
}

func (a *App) exportSingleExcel(path string, res model.Results) error {
	in, err := model.ParseSizeKey(res.InitialSizeKey)
	if err != nil {
		return err
	}
	return export.ExportExcel(path, []engine.Comparison{engine.Compare(res.InitialSizeKey, in)})
}

// saveFile shows a save dialog starting in the configured export directory.
func (a *App) saveFile(title, defaultName string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path); err != nil {
			dialog.ShowError(fmt.Errorf("%s failed: %w", strings.ToLower(title), err), a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	if a.config.ExportDir != "" {
		if dir, err := storage.ListerForURI(storage.NewFileURI(a.config.ExportDir)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

// ─── Batch Comparison ──────────────────────────────────────

func (a *App) importSizes() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		a.handleImportResult(sizeimporter.ImportFile(path))
	}, a.window)
}

func (a *App) handleImportResult(result sizeimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}
	if len(result.Sizes) == 0 {
		return
	}

	comps := make([]engine.Comparison, 0, len(result.Sizes))
	for _, s := range result.Sizes {
		comps = append(comps, engine.Compare(s.Label, s.Input))
	}
	a.showComparisonDialog(comps, len(result.Errors))
}

func (a *App) showComparisonDialog(comps []engine.Comparison, skipped int) {
	bold := fyne.TextStyle{Bold: true}
	grid := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Label", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Original", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Best main", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Delta", fyne.TextAlignLeading, bold),
		widget.NewLabelWithStyle("Alternative", fyne.TextAlignLeading, bold),
	)
	for _, c := range comps {
		c := c
		best, delta, alt := "-", "-", "-"
		if b := c.Results.BestMain; b != nil {
			best = b.Size
			delta = fmt.Sprintf("%+.1f mm", b.Delta)
		}
		if al := c.Results.BestAlternative; al != nil {
			alt = al.Size
		}
		open := widget.NewButton(c.Label, func() { a.loadInput(c.Input) })
		grid.Add(open)
		grid.Add(widget.NewLabel(c.Input.Key()))
		grid.Add(widget.NewLabel(best))
		grid.Add(widget.NewLabel(delta))
		grid.Add(widget.NewLabel(alt))
	}

	exportExcel := widget.NewButtonWithIcon("Export Excel...", theme.DocumentSaveIcon(), func() {
		a.saveFile("Export Excel", "comparison.xlsx", func(path string) error {
			return export.ExportExcel(path, comps)
		})
	})
	exportPDF := widget.NewButtonWithIcon("Export PDF...", theme.DocumentSaveIcon(), func() {
		a.saveFile("Export PDF", "comparison.pdf", func(path string) error {
			return export.ExportComparisonPDF(path, comps)
		})
	})

	summary := fmt.Sprintf("%d sizes compared.", len(comps))
	if skipped > 0 {
		summary += fmt.Sprintf(" %d rows had errors and were skipped.", skipped)
	}

	content := container.NewBorder(
		widget.NewLabel(summary),
		container.NewHBox(layout.NewSpacer(), exportExcel, exportPDF),
		nil, nil,
		container.NewVScroll(grid),
	)
	d := dialog.NewCustom("Size Comparison", "Close", content, a.window)
	d.Resize(fyne.NewSize(760, 500))
	d.Show()
}
