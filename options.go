package keystone

import "go.uber.org/zap"

// config holds the resolved settings a Registry is built with. It isn't
// exported: callers configure a Registry only through Option values passed
// to New, the same functional-options shape vessel uses throughout its
// constructors (opts.go, provide_constructor.go's ConstructorOption).
type config struct {
	logger *zap.Logger
}

func defaultConfig() *config {
	return &config{logger: zap.NewNop()}
}

// Option configures a Registry at construction time.
type Option func(*config)

// WithLogger attaches a *zap.Logger that the Registry uses for
// registration and resolution diagnostics. The default is a no-op logger,
// so library consumers that don't care about logging pay nothing for it.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
