package construction

import "log/slog"

type config struct {
	workers int
	own     bool
	logger  *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		workers: 1,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures a build.
type Option func(*config)

// WithWorkers sets how many workers compute instrument sums. Markets are
// sharded across workers; values below 2 select the serial path. The result
// does not depend on the worker count.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.workers = n
	}
}

// WithOwnCharacteristics prepends the characteristic matrix itself to the
// instrument blocks, giving the full [X, Other(X), Rival(X)] layout.
func WithOwnCharacteristics() Option {
	return func(c *config) {
		c.own = true
	}
}

// WithLogger sets the logger for build progress. The default is
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
