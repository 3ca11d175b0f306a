// Package mainwindow renders the application state into the fyne window and
// turns widget interaction into messages.
package mainwindow

import (
	"image/color"

	"timerapp/internal/core/model"
	"timerapp/internal/core/reminder"
	"timerapp/internal/ui/apptheme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	windowWidth   = float32(500)
	windowHeight  = float32(500)
	fieldWidth    = float32(200)
	logHeight     = float32(100)
	columnSpacing = float32(20)
	contentInset  = float32(10)
	borderWidth   = float32(5)
)

// Window is the main application window.
type Window struct {
	window     fyne.Window
	running    *widget.Label
	nextBreak  *widget.Label
	increment  *widget.Button
	delayEntry *widget.Entry
	textEntry  *widget.Entry
	logLabel   *widget.Label
	catcher    *inputCatcher
	dispatch   func(reminder.Message)
	synced     bool
}

// New creates the fixed-size main window. Widget changes are sent to
// dispatch; raw pointer and keyboard events go to onInput.
func New(app fyne.App, title string, dispatch func(reminder.Message), onInput func(reminder.InputEvent)) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	view := &Window{
		window:    window,
		running:   widget.NewLabel(""),
		nextBreak: widget.NewLabel(""),
		dispatch:  dispatch,
		catcher:   newInputCatcher(onInput),
	}

	view.increment = widget.NewButton("Increment", func() {
		view.send(reminder.Tick{})
	})

	view.delayEntry = widget.NewEntry()
	view.delayEntry.SetPlaceHolder("Delay in seconds")
	view.delayEntry.OnChanged = func(text string) {
		view.send(reminder.DelayTextChanged{Text: text})
	}

	view.textEntry = widget.NewEntry()
	view.textEntry.SetPlaceHolder("Notification text")
	view.textEntry.OnChanged = func(text string) {
		view.send(reminder.NotificationTextChanged{Text: text})
	}

	view.logLabel = widget.NewLabel("")
	view.logLabel.SizeName = theme.SizeNameCaptionText
	view.logLabel.Wrapping = fyne.TextWrapWord

	window.SetContent(view.layout())
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)
	window.SetMaster()
	window.CenterOnScreen()
	watchKeyboard(window.Canvas(), onInput)

	return view
}

// Render schedules the widgets to be refreshed from state on the UI thread.
func (view *Window) Render(state model.State) {
	fyne.Do(func() {
		view.apply(state)
	})
}

// Show displays the window.
func (view *Window) Show() {
	view.window.Show()
	view.window.RequestFocus()
}

// ShowAndRun displays the window and runs the fyne event loop.
func (view *Window) ShowAndRun() {
	view.window.ShowAndRun()
}

// Window exposes the underlying fyne window.
func (view *Window) Window() fyne.Window {
	return view.window
}

func (view *Window) layout() fyne.CanvasObject {
	column := container.New(layout.NewCustomPaddedVBoxLayout(columnSpacing),
		view.running,
		view.nextBreak,
		fixedWidth(view.increment),
		fixedWidth(view.delayEntry),
		fixedWidth(view.textEntry),
		container.NewGridWrap(fyne.NewSize(fieldWidth, logHeight), view.logLabel),
	)

	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = apptheme.BorderColor()
	frame.StrokeWidth = borderWidth

	inset := container.New(layout.NewCustomPaddedLayout(contentInset, contentInset, contentInset, contentInset),
		container.NewCenter(column))
	return container.NewStack(view.catcher, frame, inset)
}

func (view *Window) apply(state model.State) {
	view.running.SetText(state.RunningLabel())
	view.nextBreak.SetText(state.NextBreakLabel())
	view.logLabel.SetText(state.LogMessage)

	if !view.synced {
		setEntryText(view.delayEntry, state.DelayText)
		setEntryText(view.textEntry, state.NotificationText)
		view.synced = true
		return
	}
	view.reconcileDelayEntry(state)
}

// reconcileDelayEntry clears the delay field after a failed parse. Renders
// arrive asynchronously, so a state whose text differs from a valid entry is
// stale and the entry is left alone.
func (view *Window) reconcileDelayEntry(state model.State) {
	current := view.delayEntry.Text
	if current == state.DelayText {
		return
	}
	if state.DelayText != "" {
		return
	}
	if _, err := reminder.ParseDelay(current); err != nil {
		setEntryText(view.delayEntry, "")
	}
}

func (view *Window) send(msg reminder.Message) {
	if view.dispatch != nil {
		view.dispatch(msg)
	}
}

// setEntryText replaces the entry content without firing OnChanged.
func setEntryText(entry *widget.Entry, text string) {
	if entry.Text == text {
		return
	}
	onChanged := entry.OnChanged
	entry.OnChanged = nil
	entry.SetText(text)
	entry.OnChanged = onChanged
}

func fixedWidth(object fyne.CanvasObject) fyne.CanvasObject {
	return container.NewGridWrap(fyne.NewSize(fieldWidth, object.MinSize().Height), object)
}
