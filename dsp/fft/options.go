package fft

// Engine selects the algorithm that computes the phasors.
type Engine int

const (
	// EngineRecursive splits by index parity and recurses on each half.
	EngineRecursive Engine = iota
	// EngineIterative runs an in-place butterfly after a bit-reversal
	// permutation.
	EngineIterative
	// EnginePlan delegates to an algo-fft plan.
	EnginePlan
	// EngineGonum delegates to gonum's complex FFT.
	EngineGonum
)

// String returns the engine name.
func (e Engine) String() string {
	switch e {
	case EngineRecursive:
		return "recursive"
	case EngineIterative:
		return "iterative"
	case EnginePlan:
		return "plan"
	case EngineGonum:
		return "gonum"
	default:
		return "unknown"
	}
}

// Option configures a transform.
type Option func(*config)

type config struct {
	engine Engine
}

func defaultConfig() config {
	return config{engine: EngineRecursive}
}

// WithEngine selects the phasor engine.
func WithEngine(e Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
