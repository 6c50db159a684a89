// Example demonstrates a main menu with a settings submenu driven by
// keyboard, mouse and joystick.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL renderer, builds
// a two-level menu and runs the update/draw loop.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-arcade/menu"
	"github.com/go-arcade/menu/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "menu example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("menu renderer: %w", err)
	}
	defer renderer.Delete()

	events := opengl.NewGLFWEventAdapter(window)

	settings, err := buildSettings()
	if err != nil {
		return err
	}

	root, err := menu.NewMenu("MAIN MENU", windowWidth, windowHeight,
		WithSharedTheme(),
		menu.WithCenterContent(),
		menu.WithCloseFunc(func(m *menu.Menu) bool {
			window.SetShouldClose(true)
			return false
		}),
	)
	if err != nil {
		return err
	}
	root.SetWindowSize(windowWidth, windowHeight)

	if _, err := root.AddButton("PLAY", func(args ...any) {
		fmt.Println("play pressed")
	}); err != nil {
		return err
	}
	if _, err := root.AddMenuButton("SETTINGS", settings); err != nil {
		return err
	}
	if _, err := root.AddVSpacer(12); err != nil {
		return err
	}
	if _, err := root.AddButton("QUIT", func(args ...any) {
		window.SetShouldClose(true)
	}); err != nil {
		return err
	}

	dl := menu.AcquireDrawList()
	defer menu.ReleaseDrawList(dl)

	for !window.ShouldClose() {
		glfw.PollEvents()

		if _, err := root.Update(events.Poll()); err != nil {
			return fmt.Errorf("menu update: %w", err)
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.05, 0.05, 0.07, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Resize(w, h)
		dl.Clear()
		if err := root.Draw(dl); err != nil {
			return fmt.Errorf("menu draw: %w", err)
		}
		if err := renderer.Render(dl); err != nil {
			return fmt.Errorf("menu render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// WithSharedTheme loads theme.yaml next to the binary when present, falling
// back to the dark theme.
func WithSharedTheme() menu.MenuOption {
	t, err := menu.LoadTheme("theme.yaml")
	if err != nil {
		t = menu.DarkTheme()
	}
	return menu.WithTheme(t)
}

func buildSettings() (*menu.Menu, error) {
	m, err := menu.NewMenu("SETTINGS", windowWidth, windowHeight,
		WithSharedTheme(),
		menu.WithCenterContent(),
		menu.WithCloseAction(menu.CloseBack),
	)
	if err != nil {
		return nil, err
	}
	m.SetWindowSize(windowWidth, windowHeight)

	if _, err := m.AddSelector("DIFFICULTY", []menu.SelectorItem{
		{Label: "EASY", Value: 0},
		{Label: "NORMAL", Value: 1},
		{Label: "HARD", Value: 2},
	}, func(args ...any) {
		fmt.Println("difficulty:", args)
	}); err != nil {
		return nil, err
	}

	if _, err := m.AddSelector("RESOLUTION", []menu.SelectorItem{
		{Label: "800x600", Value: [2]int{800, 600}},
		{Label: "1280x720", Value: [2]int{1280, 720}},
		{Label: "1920x1080", Value: [2]int{1920, 1080}},
	}, nil); err != nil {
		return nil, err
	}

	if _, err := m.AddButton("BACK", func(args ...any) {
		m.Back()
	}); err != nil {
		return nil, err
	}

	return m, nil
}
