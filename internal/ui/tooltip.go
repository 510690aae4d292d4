package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only button with a tooltip that appears on hover.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// newStepperButtons returns the "-" and "+" buttons for one input field.
func newStepperButtons(field string, step string, dec, inc func()) (*ttwidget.Button, *ttwidget.Button) {
	minus := newIconButtonWithTooltip(theme.ContentRemoveIcon(), "Decrease "+field+" by "+step, dec)
	plus := newIconButtonWithTooltip(theme.ContentAddIcon(), "Increase "+field+" by "+step, inc)
	return minus, plus
}
