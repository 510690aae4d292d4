package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/vladmu/tire-calculator/internal/project"
)

// ─── Garage Dialog ─────────────────────────────────────────

func (a *App) showGarageDialog() {
	list := container.NewVBox()
	var d dialog.Dialog
	var refreshList func()

	refreshList = func() {
		list.RemoveAll()

		if len(a.garage.Entries) == 0 {
			list.Add(widget.NewLabel("No saved sizes. Use Garage > Save Current Size."))
			return
		}

		bold := fyne.TextStyle{Bold: true}
		list.Add(container.NewGridWithColumns(5,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Size", fyne.TextAlignLeading, bold),
			widget.NewLabelWithStyle("Note", fyne.TextAlignLeading, bold),
			widget.NewLabel(""),
			widget.NewLabel(""),
		))
		list.Add(widget.NewSeparator())

		for _, e := range a.garage.Entries {
			e := e
			list.Add(container.NewGridWithColumns(5,
				widget.NewLabel(e.Name),
				widget.NewLabel(e.Size.Key()),
				widget.NewLabel(e.Note),
				newIconButtonWithTooltip(theme.MediaPlayIcon(), "Load and calculate", func() {
					d.Hide()
					a.loadInput(e.Size)
				}),
				newIconButtonWithTooltip(theme.DeleteIcon(), "Remove from garage", func() {
					a.garage.Remove(e.ID)
					a.saveGarage()
					refreshList()
				}),
			))
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Save Current Size", theme.ContentAddIcon(), func() {
		a.showSaveToGarageDialog(refreshList)
	})

	content := container.NewBorder(
		container.NewHBox(addBtn, layout.NewSpacer()),
		nil, nil, nil,
		container.NewVScroll(list),
	)

	d = dialog.NewCustom("Garage", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 450))
	d.Show()
}

// showSaveToGarageDialog stores the current fields under a name. onDone,
// if given, runs after the entry is saved.
func (a *App) showSaveToGarageDialog(onDone ...func()) {
	in, err := a.state.Input()
	if err != nil {
		dialog.ShowError(fmt.Errorf("cannot save this size: %w", err), a.window)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Vehicle name")
	nameEntry.Validator = func(s string) error {
		if s == "" {
			return fmt.Errorf("name is required")
		}
		return nil
	}
	noteEntry := widget.NewEntry()
	noteEntry.SetPlaceHolder("Optional note")

	form := dialog.NewForm("Save "+in.Key(), "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Note", noteEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if existing := a.garage.FindByName(nameEntry.Text); existing != nil {
				existing.Size = in
				existing.Note = noteEntry.Text
			} else {
				e := a.garage.Add(nameEntry.Text, in)
				a.garage.FindByID(e.ID).Note = noteEntry.Text
			}
			a.saveGarage()
			for _, fn := range onDone {
				fn()
			}
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 200))
	form.Show()
}

// saveGarage persists the garage, reporting failures in a dialog.
func (a *App) saveGarage() {
	if err := project.SaveGarage(project.DefaultGaragePath(), a.garage); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save garage: %w", err), a.window)
	}
}
