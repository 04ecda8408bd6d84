package fancyscroll

// Option configures a Viewport at construction time.
type Option func(*options)

// options holds all viewport configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for viewport options. Built-in options and
// host-defined extensions share the same system.
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

// applyOptions folds a list of options into an options value.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Built-in option keys.
var (
	OptCellSize          = NewOptKey[float32]("cellSize", 100)
	OptSpacing           = NewOptKey[float32]("spacing", 0)
	OptPaddingHead       = NewOptKey[float32]("paddingHead", 0)
	OptPaddingTail       = NewOptKey[float32]("paddingTail", 0)
	OptReuseMargin       = NewOptKey[float32]("reuseMargin", 0)
	OptDirection         = NewOptKey[ScrollDirection]("direction", Vertical)
	OptScrollSensitivity = NewOptKey[float32]("scrollSensitivity", 1)
)

// WithCellSize sets the cell extent along the scroll axis.
func WithCellSize(v float32) Option { return WithOpt(OptCellSize, v) }

// WithSpacing sets the gap between adjacent cells.
func WithSpacing(v float32) Option { return WithOpt(OptSpacing, v) }

// WithPadding sets the padding before the first and after the last cell.
func WithPadding(head, tail float32) Option {
	return func(o *options) {
		WithOpt(OptPaddingHead, head)(o)
		WithOpt(OptPaddingTail, tail)(o)
	}
}

// WithReuseMargin sets the recycling buffer in cell-widths.
func WithReuseMargin(v float32) Option { return WithOpt(OptReuseMargin, v) }

// WithDirection sets the scroll axis.
func WithDirection(d ScrollDirection) Option { return WithOpt(OptDirection, d) }

// WithScrollSensitivity sets the sensitivity forwarded to the Scroller.
func WithScrollSensitivity(v float32) Option { return WithOpt(OptScrollSensitivity, v) }
