package reminder

import "fmt"

// InputKind classifies a raw platform input event.
type InputKind int

const (
	InputMouseButtonPressed InputKind = iota
	InputMouseButtonReleased
	InputMouseMoved
	InputMouseEntered
	InputMouseLeft
	InputMouseWheel
	InputKeyPressed
	InputKeyReleased
	InputCharacterTyped
	InputWindowFocused
	InputWindowUnfocused
	InputWindowResized
)

// MouseButton identifies a pointer button.
type MouseButton string

const (
	MouseButtonLeft    MouseButton = "Left"
	MouseButtonRight   MouseButton = "Right"
	MouseButtonMiddle  MouseButton = "Middle"
	MouseButtonBack    MouseButton = "Back"
	MouseButtonForward MouseButton = "Forward"
)

// OtherMouseButton names a button without a dedicated identifier.
func OtherMouseButton(id int) MouseButton {
	return MouseButton(fmt.Sprintf("Other(%d)", id))
}

// InputEvent is a toolkit-neutral raw input event.
type InputEvent struct {
	Kind   InputKind
	Button MouseButton
	Key    string
}

// MessageForInput maps a raw input event to the message it produces.
func MessageForInput(event InputEvent) Message {
	switch event.Kind {
	case InputMouseButtonPressed:
		return LogMessageSet{Text: fmt.Sprintf("Button %s pressed", event.Button)}
	case InputMouseButtonReleased, InputMouseMoved, InputMouseEntered, InputMouseLeft, InputMouseWheel,
		InputKeyPressed, InputKeyReleased, InputCharacterTyped,
		InputWindowFocused, InputWindowUnfocused, InputWindowResized:
		return RawInputOccurred{}
	default:
		return RawInputOccurred{}
	}
}
