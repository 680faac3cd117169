package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDesktop struct {
	menus []*fyne.Menu
}

func (app *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *fakeDesktop) SetSystemTrayIcon(fyne.Resource) {}

func (app *fakeDesktop) SetSystemTrayWindow(fyne.Window) {}

func TestStatusAndStart(t *testing.T) {
	desktop := &fakeDesktop{}
	started := 0
	manager := New(desktop, Callbacks{OnStart: func() { started++ }})

	require.NotEmpty(t, desktop.menus)
	assert.Equal(t, "Remaining: ready", manager.StatusText())

	manager.SetStatus("01:05")
	assert.Equal(t, "Remaining: 01:05", manager.StatusText())

	menu := desktop.menus[len(desktop.menus)-1]
	require.Len(t, menu.Items, 5)
	menu.Items[3].Action()
	assert.Equal(t, 1, started)

	manager.SetStarted(true)
	menu = desktop.menus[len(desktop.menus)-1]
	assert.True(t, menu.Items[3].Disabled)
}
