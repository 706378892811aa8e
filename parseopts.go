package scicalc

// DefaultMaxDepth is the parenthesis nesting limit used when no MaxDepth
// option is given.
const DefaultMaxDepth = 256

// Option is an option for parsing and solving.
type Option interface {
	option(config) config
}

// config holds the settings applied by options.
type config struct {
	// maxDepth is the nesting limit. Non-positive means unlimited.
	maxDepth int
}

type depthopt int

// MaxDepth sets the maximum parenthesis nesting depth. Deeper input fails with
// a *DepthError. Evaluation recurses once per level, so callers accepting
// untrusted input should keep a limit. Zero or a negative depth disables the
// limit.
func MaxDepth(depth int) Option {
	return depthopt(depth)
}

func (o depthopt) option(c config) config {
	c.maxDepth = int(o)
	return c
}

// newConfig applies opts in order over the defaults. Nil options are skipped.
func newConfig(opts []Option) config {
	c := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		c = opt.option(c)
	}
	return c
}
