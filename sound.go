package menu

// Sound is the interface for the menu sound engine. Implementations trigger
// short effects on input events; the core fires them and ignores failures,
// so implementations are free to drop effects when a mixer is unavailable.
type Sound interface {
	// PlayKey is triggered by keyboard navigation.
	PlayKey()

	// PlayClick is triggered by mouse/touch activation.
	PlayClick()

	// PlayOpen is triggered when a widget applies (e.g. a button fires).
	PlayOpen()

	// PlayClose is triggered when a menu closes or goes back.
	PlayClose()

	// PlaySelection is triggered when the selected widget changes.
	PlaySelection()
}

// NopSound is the default Sound implementation; every trigger is a no-op.
type NopSound struct{}

func (NopSound) PlayKey()       {}
func (NopSound) PlayClick()     {}
func (NopSound) PlayOpen()      {}
func (NopSound) PlayClose()     {}
func (NopSound) PlaySelection() {}
