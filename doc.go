// Package menu implements a retained-mode menu and widget toolkit for games
// and simple graphical applications.
//
// A Menu owns an ordered list of widgets arranged into a column/row grid.
// Widgets are created through the Menu's Add* factory methods, mutated through
// their own methods, and removed explicitly. The Menu tracks a single selected
// widget and moves the selection in response to keyboard, joystick, mouse and
// touch events, all normalized to the package's Event type.
//
// Menus form a navigation tree: a button created with AddMenuButton opens a
// submenu, Back/Reset walk the stack upward, and Close consults a per-menu
// close policy. The tree is kept acyclic; inserting an edge to an ancestor
// fails.
//
// Rendering is backend-agnostic. The core emits batched draw commands into a
// DrawList which a Renderer implementation consumes; backend/opengl provides
// an OpenGL 3.3 renderer and a GLFW input driver. Text can be rendered either
// with the renderer's built-in bitmap font or with a proportional font atlas
// loaded through a FontProvider.
//
// Basic usage:
//
//	m, err := menu.NewMenu("Main Menu", 600, 400, menu.WithTheme(menu.DarkTheme()))
//	if err != nil { ... }
//	play, _ := m.AddButton("Play", func(args ...any) { startGame() })
//	m.AddMenuButton("Settings", settingsMenu)
//
//	// each frame, driven by the application loop:
//	m.Update(events)
//	m.Draw(drawList)
package menu
