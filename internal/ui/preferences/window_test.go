package preferences

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowSave(t *testing.T) {
	app := test.NewTempApp(t)

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.minutes.SetText("1")
	prefs.seconds.SetText("5")
	prefs.outerColor.SetText("#123456")
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, 65, saved[0].TotalSeconds())
	assert.Equal(t, "#123456", saved[0].OuterCircleColor)
}

func TestWindowRejectsInvalidColor(t *testing.T) {
	app := test.NewTempApp(t)

	calls := 0
	prefs := New(app, DefaultSettings(), func(Settings) { calls++ })
	prefs.textColor.SetText("black")
	prefs.handleSave()

	assert.Zero(t, calls)
	assert.NotEmpty(t, prefs.status.Text)
}

func TestWindowRejectsShortColorWithAlpha(t *testing.T) {
	app := test.NewTempApp(t)

	calls := 0
	prefs := New(app, DefaultSettings(), func(Settings) { calls++ })
	prefs.innerColor.SetText("#f0f8")
	prefs.handleSave()

	assert.Zero(t, calls)
	assert.NotEmpty(t, prefs.status.Text)
}

func TestWindowIgnoresUnparsableNumbers(t *testing.T) {
	app := test.NewTempApp(t)

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) { saved = settings })
	prefs.minutes.SetText("abc")
	prefs.seconds.SetText("-3")
	prefs.handleSave()

	assert.Equal(t, DefaultSettings().TotalSeconds(), saved.TotalSeconds())

	updated := DefaultSettings()
	updated.Minutes = 7
	prefs.UpdateSettings(updated)
	assert.Equal(t, "7", prefs.minutes.Text)
}
