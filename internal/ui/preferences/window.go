package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	minutes    *widget.Entry
	seconds    *widget.Entry
	outerSize  *widget.Entry
	innerSize  *widget.Entry
	textSize   *widget.Entry
	outerColor *widget.Entry
	innerColor *widget.Entry
	textColor  *widget.Entry
	status     *widget.Label
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Ring Timer Settings")

	prefs := &Window{
		window:     window,
		settings:   settings,
		onSave:     onSave,
		minutes:    widget.NewEntry(),
		seconds:    widget.NewEntry(),
		outerSize:  widget.NewEntry(),
		innerSize:  widget.NewEntry(),
		textSize:   widget.NewEntry(),
		outerColor: widget.NewEntry(),
		innerColor: widget.NewEntry(),
		textColor:  widget.NewEntry(),
		status:     widget.NewLabel(""),
	}
	prefs.fill(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Countdown", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Duration"), prefs.minutes, widget.NewLabel("min"), prefs.seconds, widget.NewLabel("sec")),
		widget.NewLabelWithStyle("Ring", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Outer width"), prefs.outerSize, widget.NewLabel("colour"), prefs.outerColor),
		container.NewHBox(widget.NewLabel("Inner width"), prefs.innerSize, widget.NewLabel("colour"), prefs.innerColor),
		container.NewHBox(widget.NewLabel("Text size"), prefs.textSize, widget.NewLabel("colour"), prefs.textColor),
		prefs.status,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 320))
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.fill(settings)
}

func (prefs *Window) fill(settings Settings) {
	prefs.minutes.SetText(strconv.Itoa(settings.Minutes))
	prefs.seconds.SetText(strconv.Itoa(settings.Seconds))
	prefs.outerSize.SetText(formatFloat(settings.OuterCircleSize))
	prefs.innerSize.SetText(formatFloat(settings.InnerCircleSize))
	prefs.textSize.SetText(formatFloat(settings.LabelTextSize))
	prefs.outerColor.SetText(settings.OuterCircleColor)
	prefs.innerColor.SetText(settings.InnerCircleColor)
	prefs.textColor.SetText(settings.LabelTextColor)
	prefs.status.SetText("")
}

func (prefs *Window) handleSave() {
	settings, err := prefs.collect()
	if err != nil {
		prefs.status.SetText(err.Error())
		return
	}

	prefs.settings = settings
	prefs.status.SetText("")
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func (prefs *Window) collect() (Settings, error) {
	settings := prefs.settings

	if value, ok := parseNonNegativeInt(prefs.minutes.Text); ok {
		settings.Minutes = value
	}
	if value, ok := parseNonNegativeInt(prefs.seconds.Text); ok {
		settings.Seconds = value
	}
	if value, ok := parseNonNegativeFloat(prefs.outerSize.Text); ok {
		settings.OuterCircleSize = value
	}
	if value, ok := parseNonNegativeFloat(prefs.innerSize.Text); ok {
		settings.InnerCircleSize = value
	}
	if value, ok := parseNonNegativeFloat(prefs.textSize.Text); ok {
		settings.LabelTextSize = value
	}
	settings.OuterCircleColor = prefs.outerColor.Text
	settings.InnerCircleColor = prefs.innerColor.Text
	settings.LabelTextColor = prefs.textColor.Text

	if err := settings.Validate(); err != nil {
		return prefs.settings, err
	}
	return settings, nil
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}

func parseNonNegativeFloat(value string) (float32, bool) {
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return float32(parsed), true
}

func formatFloat(value float32) string {
	return fmt.Sprintf("%g", value)
}
