package menu

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyNone:      "--",
		KeyTab:       "Tab",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyDown:      "Down",
		KeyPageUp:    "PgUp",
		KeyPageDown:  "PgDn",
		KeyHome:      "Home",
		KeyEnd:       "End",
		KeyInsert:    "Ins",
		KeyDelete:    "Del",
		KeyBackspace: "Backspace",
		KeySpace:     "Space",
		KeyEnter:     "Enter",
		KeyEscape:    "Esc",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// EventType discriminates normalized input events.
type EventType uint8

const (
	EventNone EventType = iota
	EventKeyDown
	EventJoyHatMotion
	EventJoyAxisMotion
	EventJoyButtonDown
	EventMouseButtonDown
	EventMouseButtonUp
	EventMouseMotion
	EventFingerDown
	EventFingerUp
	EventFingerMotion
	EventQuit
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "KeyDown"
	case EventJoyHatMotion:
		return "JoyHatMotion"
	case EventJoyAxisMotion:
		return "JoyAxisMotion"
	case EventJoyButtonDown:
		return "JoyButtonDown"
	case EventMouseButtonDown:
		return "MouseButtonDown"
	case EventMouseButtonUp:
		return "MouseButtonUp"
	case EventMouseMotion:
		return "MouseMotion"
	case EventFingerDown:
		return "FingerDown"
	case EventFingerUp:
		return "FingerUp"
	case EventFingerMotion:
		return "FingerMotion"
	case EventQuit:
		return "Quit"
	default:
		return "None"
	}
}

// JoyDirection is a bitmask of digital joystick hat directions.
type JoyDirection uint8

const (
	JoyUp JoyDirection = 1 << iota
	JoyDown
	JoyLeft
	JoyRight
	JoyCentered JoyDirection = 0
)

// Event is the common representation all input sources are normalized to
// before dispatch. Producers (e.g. the GLFW driver) translate their native
// events into this type; the Menu and widgets consume it.
//
// Field usage by type:
//   - EventKeyDown: Key
//   - EventJoyHatMotion: Hat
//   - EventJoyAxisMotion: Axis, AxisValue (-1..1)
//   - EventJoyButtonDown: Button
//   - EventMouse*: Button, Pos (pixels)
//   - EventFinger*: Pos normalized to 0..1 against the window size
type Event struct {
	Type      EventType
	Key       Key
	Button    int
	Axis      int
	AxisValue float32
	Hat       JoyDirection
	Pos       Vec2
}

// NewKeyEvent builds a key-down event.
func NewKeyEvent(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// NewMouseUpEvent builds a mouse-button-up event at a pixel position.
func NewMouseUpEvent(button MouseButton, x, y float32) Event {
	return Event{Type: EventMouseButtonUp, Button: int(button), Pos: Vec2{X: x, Y: y}}
}

// NewMouseDownEvent builds a mouse-button-down event at a pixel position.
func NewMouseDownEvent(button MouseButton, x, y float32) Event {
	return Event{Type: EventMouseButtonDown, Button: int(button), Pos: Vec2{X: x, Y: y}}
}

// NewFingerUpEvent builds a touch-up event with 0..1 normalized coordinates.
func NewFingerUpEvent(nx, ny float32) Event {
	return Event{Type: EventFingerUp, Pos: Vec2{X: nx, Y: ny}}
}

// Joystick tuning constants.
const (
	// JoyDeadzone is the minimum absolute axis value that registers as a
	// directional push. Crossing it fires a single discrete move; the axis
	// must return below it before the same direction can fire again.
	JoyDeadzone float32 = 0.5

	// JoyAxisX and JoyAxisY are the default axis indices for navigation.
	JoyAxisX = 0
	JoyAxisY = 1

	// JoyButtonSelect and JoyButtonBack are the default confirm/back
	// joystick buttons.
	JoyButtonSelect = 0
	JoyButtonBack   = 1
)

// Controls holds the configurable key bindings for menu navigation.
type Controls struct {
	MoveUp    Key
	MoveDown  Key
	MoveLeft  Key
	MoveRight Key
	Apply     Key
	Back      Key
	Close     Key
}

// DefaultControls returns the standard arrow-key bindings.
func DefaultControls() Controls {
	return Controls{
		MoveUp:    KeyUp,
		MoveDown:  KeyDown,
		MoveLeft:  KeyLeft,
		MoveRight: KeyRight,
		Apply:     KeyEnter,
		Back:      KeyBackspace,
		Close:     KeyEscape,
	}
}
