package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-arcade/menu"
)

// GLFWEventAdapter translates GLFW callbacks and joystick polling into the
// normalized menu event stream.
type GLFWEventAdapter struct {
	window *glfw.Window
	events []menu.Event

	joystick    glfw.Joystick
	prevButtons []glfw.Action
	prevHat     menu.JoyDirection
}

// NewGLFWEventAdapter installs input callbacks on a window. Joystick 1 is
// polled when present.
func NewGLFWEventAdapter(window *glfw.Window) *GLFWEventAdapter {
	a := &GLFWEventAdapter{
		window:   window,
		joystick: glfw.Joystick1,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetCloseCallback(a.closeCallback)

	return a
}

// Poll drains the events accumulated since the last call, appending the
// current joystick state. The returned slice is reused on the next call.
func (a *GLFWEventAdapter) Poll() []menu.Event {
	a.pollJoystick()
	events := a.events
	a.events = a.events[:0]
	return events
}

func (a *GLFWEventAdapter) push(e menu.Event) {
	a.events = append(a.events, e)
}

func (a *GLFWEventAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	k := glfwKeyToMenuKey(key)
	if k == menu.KeyNone {
		return
	}
	a.push(menu.NewKeyEvent(k))
}

func (a *GLFWEventAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToMenu(button)
	if b < 0 {
		return
	}
	x, y := w.GetCursorPos()
	switch action {
	case glfw.Press:
		a.push(menu.NewMouseDownEvent(b, float32(x), float32(y)))
	case glfw.Release:
		a.push(menu.NewMouseUpEvent(b, float32(x), float32(y)))
	}
}

func (a *GLFWEventAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.push(menu.Event{
		Type: menu.EventMouseMotion,
		Pos:  menu.Vec2{X: float32(xpos), Y: float32(ypos)},
	})
}

func (a *GLFWEventAdapter) closeCallback(w *glfw.Window) {
	a.push(menu.Event{Type: menu.EventQuit})
}

// pollJoystick reads hat, axis and button state. Axis values pass through
// raw; the menu core does its own deadzone edge detection. Buttons are
// edge-detected here because GLFW exposes only current state.
func (a *GLFWEventAdapter) pollJoystick() {
	if !a.joystick.Present() {
		a.prevButtons = nil
		a.prevHat = menu.JoyCentered
		return
	}

	if hats := a.joystick.GetHats(); len(hats) > 0 {
		hat := glfwHatToMenu(hats[0])
		if hat != a.prevHat && hat != menu.JoyCentered {
			a.push(menu.Event{Type: menu.EventJoyHatMotion, Hat: hat})
		}
		a.prevHat = hat
	}

	axes := a.joystick.GetAxes()
	for _, axis := range []int{menu.JoyAxisX, menu.JoyAxisY} {
		if axis < len(axes) {
			a.push(menu.Event{
				Type:      menu.EventJoyAxisMotion,
				Axis:      axis,
				AxisValue: axes[axis],
			})
		}
	}

	buttons := a.joystick.GetButtons()
	if len(a.prevButtons) != len(buttons) {
		a.prevButtons = make([]glfw.Action, len(buttons))
	}
	for i, state := range buttons {
		if state == glfw.Press && a.prevButtons[i] != glfw.Press {
			a.push(menu.Event{Type: menu.EventJoyButtonDown, Button: i})
		}
		a.prevButtons[i] = state
	}
}

func glfwHatToMenu(hat glfw.JoystickHatState) menu.JoyDirection {
	var dir menu.JoyDirection
	if hat&glfw.HatUp != 0 {
		dir |= menu.JoyUp
	}
	if hat&glfw.HatDown != 0 {
		dir |= menu.JoyDown
	}
	if hat&glfw.HatLeft != 0 {
		dir |= menu.JoyLeft
	}
	if hat&glfw.HatRight != 0 {
		dir |= menu.JoyRight
	}
	return dir
}

// glfwKeyToMenuKey maps GLFW keys to menu keys.
func glfwKeyToMenuKey(key glfw.Key) menu.Key {
	switch key {
	case glfw.KeyTab:
		return menu.KeyTab
	case glfw.KeyLeft:
		return menu.KeyLeft
	case glfw.KeyRight:
		return menu.KeyRight
	case glfw.KeyUp:
		return menu.KeyUp
	case glfw.KeyDown:
		return menu.KeyDown
	case glfw.KeyPageUp:
		return menu.KeyPageUp
	case glfw.KeyPageDown:
		return menu.KeyPageDown
	case glfw.KeyHome:
		return menu.KeyHome
	case glfw.KeyEnd:
		return menu.KeyEnd
	case glfw.KeyInsert:
		return menu.KeyInsert
	case glfw.KeyDelete:
		return menu.KeyDelete
	case glfw.KeyBackspace:
		return menu.KeyBackspace
	case glfw.KeySpace:
		return menu.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return menu.KeyEnter
	case glfw.KeyEscape:
		return menu.KeyEscape
	default:
		return menu.KeyNone
	}
}

// glfwMouseButtonToMenu maps GLFW mouse buttons to menu mouse buttons.
func glfwMouseButtonToMenu(button glfw.MouseButton) menu.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return menu.MouseButtonLeft
	case glfw.MouseButtonRight:
		return menu.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return menu.MouseButtonMiddle
	default:
		return -1
	}
}
