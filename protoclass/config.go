package protoclass

const defaultMaxDepth = 256

// Config is fixed on a root descriptor and inherited by every descendant.
type Config struct {
	// MaxDepth bounds the number of levels Instance walks. Zero selects the
	// default.
	MaxDepth int
	// Trace, when set, receives one event per phase per level.
	Trace func(TraceEvent)
}

// TraceEvent describes one step of Instance.
type TraceEvent struct {
	Class string
	Depth int
	Phase Phase
	Args  []Value
}

func (c Config) normalized() Config {
	if c.MaxDepth <= 0 {
		c.MaxDepth = defaultMaxDepth
	}
	return c
}

func (c Config) trace(ev TraceEvent) {
	if c.Trace != nil {
		c.Trace(ev)
	}
}
