package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyne.io/fyne/v2"
)

type fakeTrayApp struct {
	menus []*fyne.Menu
	icon  fyne.Resource
}

func (app *fakeTrayApp) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *fakeTrayApp) SetSystemTrayIcon(icon fyne.Resource) {
	app.icon = icon
}

func (app *fakeTrayApp) lastMenu(t *testing.T) *fyne.Menu {
	t.Helper()
	require.NotEmpty(t, app.menus)
	return app.menus[len(app.menus)-1]
}

func TestNewInstallsMenuAndIcon(t *testing.T) {
	app := &fakeTrayApp{}
	icon := fyne.NewStaticResource("icon.png", []byte{1})

	New(app, "Timer App", icon, Callbacks{})

	assert.Same(t, icon, app.icon)
	menu := app.lastMenu(t)
	assert.Equal(t, "Timer App", menu.Label)
	require.Len(t, menu.Items, 4)
	assert.Equal(t, "Status: starting...", menu.Items[0].Label)
	assert.True(t, menu.Items[0].Disabled)
	assert.Equal(t, "Show", menu.Items[1].Label)
	assert.True(t, menu.Items[2].IsSeparator)
	assert.Equal(t, "Quit", menu.Items[3].Label)
}

func TestSetStatusRefreshesOnlyOnChange(t *testing.T) {
	app := &fakeTrayApp{}
	manager := New(app, "Timer App", nil, Callbacks{})
	before := len(app.menus)

	manager.SetStatus("Next break in 10 seconds")
	manager.SetStatus("Next break in 10 seconds")

	assert.Len(t, app.menus, before+1)
	assert.Equal(t, "Status: Next break in 10 seconds", manager.Status())
	assert.Equal(t, "Status: Next break in 10 seconds", app.lastMenu(t).Items[0].Label)
}

func TestCallbacks(t *testing.T) {
	app := &fakeTrayApp{}
	shown, quit := false, false
	New(app, "Timer App", nil, Callbacks{
		OnShow: func() { shown = true },
		OnQuit: func() { quit = true },
	})

	menu := app.lastMenu(t)
	menu.Items[1].Action()
	menu.Items[3].Action()

	assert.True(t, shown)
	assert.True(t, quit)
}

func TestCallbacksOptional(t *testing.T) {
	app := &fakeTrayApp{}
	New(app, "Timer App", nil, Callbacks{})

	menu := app.lastMenu(t)
	assert.NotPanics(t, func() {
		menu.Items[1].Action()
		menu.Items[3].Action()
	})
}
