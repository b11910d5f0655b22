package svgpath

// ParseOption configures how path data is parsed.
type ParseOption func(*parseOptions)

type parseOptions struct {
	lenientArcFlags bool
}

func newParseOptions(opts []ParseOption) parseOptions {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLenientArcFlags makes the parser read an arc flag that is neither 0
// nor 1 as 0 instead of failing with [ErrInvalidArcFlag]. Some renderers
// accept such data. A flag missing at the end of the input is still an
// error.
func WithLenientArcFlags() ParseOption {
	return func(o *parseOptions) {
		o.lenientArcFlags = true
	}
}
