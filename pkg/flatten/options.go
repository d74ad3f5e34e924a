package flatten

// DefaultSeparator joins composite key segments.
const DefaultSeparator = "_"

// DefaultMaxDepth bounds recursion. Decoded JSON never cycles, but Go values
// built by hand can.
const DefaultMaxDepth = 512

// Options configures a Flattener.
type Options struct {
	Separator string
	MaxDepth  int
}

// Option mutates Options.
type Option func(*Options)

// WithSeparator sets the string placed between key segments.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.Separator = sep }
}

// WithMaxDepth sets the deepest nesting accepted inside a record.
func WithMaxDepth(depth int) Option {
	return func(o *Options) { o.MaxDepth = depth }
}

// DefaultOptions returns the options used by Flatten.
func DefaultOptions() Options {
	return Options{
		Separator: DefaultSeparator,
		MaxDepth:  DefaultMaxDepth,
	}
}

func (o *Options) applyDefaults() {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
}
