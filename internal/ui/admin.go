package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vladmu/tire-calculator/internal/model"
	"github.com/vladmu/tire-calculator/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	themeSelect := widget.NewSelect(ThemeNames, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	defaultEntry := widget.NewEntry()
	defaultEntry.SetText(cfg.DefaultSize.Key())
	defaultEntry.Validator = func(s string) error {
		in, err := model.ParseSizeKey(s)
		if err != nil {
			return err
		}
		return in.Validate()
	}

	exportDirEntry := widget.NewEntry()
	exportDirEntry.SetPlaceHolder("Ask every time")
	exportDirEntry.SetText(cfg.ExportDir)

	useCurrentBtn := widget.NewButton("Use current size", func() {
		if in, err := a.state.Input(); err == nil {
			defaultEntry.SetText(in.Key())
		}
	})

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Default Size", container.NewBorder(nil, nil, nil, useCurrentBtn, defaultEntry)),
		widget.NewFormItem("Export Directory", exportDirEntry),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			in, err := model.ParseSizeKey(defaultEntry.Text)
			if err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			cfg.DefaultSize = in
			cfg.ExportDir = exportDirEntry.Text
			a.config = cfg
			a.applyTheme()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 260))
	d.Show()
}

// showImportExportDialog displays the backup and restore dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := project.ExportAllData(path, a.config, a.garage); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("tirecalc-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and add the saved sizes to your garage.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					path := reader.URI().Path()
					reader.Close()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					added := project.MergeGarage(&a.garage, backup.Garage)
					a.applyTheme()
					a.SetupMenus()
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.saveGarage()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported from backup created at %s.\n%d garage entries added.",
							backup.CreatedAt, added), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings and garage to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Backup / Restore", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// applyTheme switches the running app to the configured theme.
func (a *App) applyTheme() {
	a.theme.SetName(a.config.Theme)
	a.app.Settings().SetTheme(a.theme)
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
