package mainwindow

import (
	"image/color"

	"timerapp/internal/core/reminder"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// inputCatcher is a transparent background layer that reports the raw
// pointer events reaching it.
type inputCatcher struct {
	widget.BaseWidget
	onInput func(reminder.InputEvent)
}

var (
	_ desktop.Mouseable = (*inputCatcher)(nil)
	_ desktop.Hoverable = (*inputCatcher)(nil)
	_ fyne.Scrollable   = (*inputCatcher)(nil)
)

func newInputCatcher(onInput func(reminder.InputEvent)) *inputCatcher {
	catcher := &inputCatcher{onInput: onInput}
	catcher.ExtendBaseWidget(catcher)
	return catcher
}

func (catcher *inputCatcher) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (catcher *inputCatcher) MouseDown(event *desktop.MouseEvent) {
	catcher.emit(reminder.InputEvent{Kind: reminder.InputMouseButtonPressed, Button: mouseButton(event.Button)})
}

func (catcher *inputCatcher) MouseUp(event *desktop.MouseEvent) {
	catcher.emit(reminder.InputEvent{Kind: reminder.InputMouseButtonReleased, Button: mouseButton(event.Button)})
}

func (catcher *inputCatcher) MouseIn(*desktop.MouseEvent) {
	catcher.emit(reminder.InputEvent{Kind: reminder.InputMouseEntered})
}

func (catcher *inputCatcher) MouseMoved(*desktop.MouseEvent) {
	catcher.emit(reminder.InputEvent{Kind: reminder.InputMouseMoved})
}

func (catcher *inputCatcher) MouseOut() {
	catcher.emit(reminder.InputEvent{Kind: reminder.InputMouseLeft})
}

func (catcher *inputCatcher) Scrolled(*fyne.ScrollEvent) {
	catcher.emit(reminder.InputEvent{Kind: reminder.InputMouseWheel})
}

func (catcher *inputCatcher) emit(event reminder.InputEvent) {
	if catcher.onInput != nil {
		catcher.onInput(event)
	}
}

func mouseButton(button desktop.MouseButton) reminder.MouseButton {
	switch button {
	case desktop.MouseButtonPrimary:
		return reminder.MouseButtonLeft
	case desktop.MouseButtonSecondary:
		return reminder.MouseButtonRight
	case desktop.MouseButtonTertiary:
		return reminder.MouseButtonMiddle
	default:
		return reminder.OtherMouseButton(int(button))
	}
}

// watchKeyboard reports key and character events typed into the canvas
// while no widget has focus.
func watchKeyboard(target fyne.Canvas, onInput func(reminder.InputEvent)) {
	if onInput == nil {
		return
	}
	target.SetOnTypedRune(func(r rune) {
		onInput(reminder.InputEvent{Kind: reminder.InputCharacterTyped, Key: string(r)})
	})
	target.SetOnTypedKey(func(event *fyne.KeyEvent) {
		onInput(reminder.InputEvent{Kind: reminder.InputKeyPressed, Key: string(event.Name)})
	})
	if deskCanvas, ok := target.(desktop.Canvas); ok {
		deskCanvas.SetOnKeyUp(func(event *fyne.KeyEvent) {
			onInput(reminder.InputEvent{Kind: reminder.InputKeyReleased, Key: string(event.Name)})
		})
	}
}
