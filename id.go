package menu

import (
	"fmt"
	"hash/fnv"
	"sync/atomic"
)

// widgetIDCounter differentiates generated ids for widgets created with the
// same title. Atomic so ids stay unique even if menus are built from
// different goroutines during setup.
var widgetIDCounter uint64

// generateID builds a stable, unique widget id from a label.
// Combines an fnv-1a hash of the label with an auto-incrementing counter so
// that same-labelled widgets (e.g. created in a loop) never collide.
func generateID(label string) string {
	n := atomic.AddUint64(&widgetIDCounter, 1)

	h := fnv.New64a()
	h.Write([]byte(label))

	return fmt.Sprintf("%x-%d", h.Sum64()&0xFFFFFFFF, n)
}

// generateCallbackID builds an id for draw/update callback registration.
func generateCallbackID() string {
	return fmt.Sprintf("cb-%d", atomic.AddUint64(&widgetIDCounter, 1))
}
