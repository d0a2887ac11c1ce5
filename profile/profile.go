package profile

// Stopper ends a profiling session and flushes its output.
type Stopper interface{ Stop() }

// Config selects a profiling mode and output directory.
// The zero Config disables profiling.
type Config struct {
	Mode  string
	Path  string
	Quiet bool
}

// Option modifies a Config.
type Option func(Config) Config

// Make returns a Config with opts applied.
func Make(opts ...Option) Config {
	var c Config

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

// WithMode sets the profiling mode. See [Modes].
func WithMode(mode string) Option {
	return func(c Config) Config {
		c.Mode = mode

		return c
	}
}

// WithPath sets the directory profile data is written to.
func WithPath(path string) Option {
	return func(c Config) Config {
		c.Path = path

		return c
	}
}

// WithQuiet suppresses the profiler's own log output.
func WithQuiet(quiet bool) Option {
	return func(c Config) Config {
		c.Quiet = quiet

		return c
	}
}

// Start begins profiling and returns a Stopper that ends it.
//
// If the binary was built without the pprof tag, or c.Mode is empty or
// unrecognized, Start returns a no-op. Stop is always safe to call.
func (c Config) Start() Stopper {
	if c.Mode == "" {
		return ignore{}
	}

	return start(c)
}

// Enabled reports whether mode is supported by this build.
func Enabled(mode string) bool {
	for _, m := range Modes() {
		if m == mode {
			return true
		}
	}

	return false
}

type ignore struct{}

func (ignore) Stop() {}
