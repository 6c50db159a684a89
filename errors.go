package menu

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Menu and Widget operations. Callers should test
// with errors.Is; most returned errors wrap one of these with context.
var (
	// ErrNotFound reports a missing widget, attribute or callback id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState reports an operation that would corrupt the
	// widget/menu graph: duplicate ids, selecting a non-selectable or
	// hidden widget, re-attaching an owned widget.
	ErrInvalidState = errors.New("invalid state")

	// ErrCapacity reports a widget insertion that exceeds the menu's
	// configured rows*columns grid capacity.
	ErrCapacity = errors.New("menu grid capacity exceeded")

	// ErrNoValue reports a value request on a widget kind that does not
	// carry a value (e.g. Button, Label).
	ErrNoValue = errors.New("widget does not accept value")

	// ErrDisabled reports input/draw operations on a disabled Menu.
	// Callers must Enable the menu first; the pipeline never no-ops
	// silently.
	ErrDisabled = errors.New("menu is disabled")

	// ErrCycle reports a submenu edge that would make the menu tree
	// cyclic (target is the menu itself or one of its ancestors).
	ErrCycle = errors.New("submenu cycle")
)

// noValueError builds the canonical ErrNoValue wrap carrying the widget kind
// and id, so failures are attributable without a stack trace.
func noValueError(kind, id string) error {
	return fmt.Errorf("%s(%q): %w", kind, id, ErrNoValue)
}
