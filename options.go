package menu

// Option configures a widget created through a Menu Add* factory.
type Option func(*options)

// options holds widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
//
// Example:
//
//	btn, err := m.AddButton("Play", onPlay, menu.WithOpt(menu.OptID, "play"))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt reports whether the option was explicitly set.
// Used where "not set" and "set to the default" behave differently
// (e.g. alignment falls back to the theme only when unset).
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions merges a list of Options into a single options value.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Built-in widget option keys.
var (
	// OptID overrides the generated widget id.
	OptID = NewOptKey("id", "")

	// OptPadding overrides the theme widget padding.
	OptPadding = NewOptKey("padding", Padding{})

	// OptMargin overrides the theme widget margin.
	OptMargin = NewOptKey("margin", Vec2{})

	// OptFloat marks the widget as floating: it consumes no grid slot and
	// overlaps the preceding non-floating widget's slot.
	OptFloat = NewOptKey("float", false)

	// OptSelectable controls whether the widget can receive selection.
	OptSelectable = NewOptKey("selectable", true)

	// OptReadOnly creates the widget in readonly mode; it never processes
	// events and its callbacks do not fire.
	OptReadOnly = NewOptKey("readonly", false)

	// OptAlign overrides the theme alignment for this widget.
	OptAlign = NewOptKey("align", AlignCenter)

	// OptFontColor overrides the theme font color (0 = use theme).
	OptFontColor = NewOptKey("fontColor", uint32(0))

	// OptArgs sets extra arguments appended to on-return/on-change
	// callback invocations.
	OptArgs = NewOptKey("args", []any(nil))
)

// WithID is shorthand for WithOpt(OptID, id).
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithFloat is shorthand for WithOpt(OptFloat, true).
func WithFloat() Option { return WithOpt(OptFloat, true) }
