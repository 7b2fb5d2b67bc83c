package checked

import (
	"context"
	"runtime"
)

// Config controls how an operation is executed.
type Config struct {
	// Workers bounds the number of goroutines of one call.
	Workers int

	// MinChunk is the smallest number of logical elements handed to one
	// goroutine. Calls with at most 2*MinChunk elements run sequentially.
	MinChunk int

	// Context cancels pending chunks of a call. Chunks already running
	// complete.
	Context context.Context
}

// Option mutates a Config.
type Option func(*Config)

// DefaultMinChunk is the default MinChunk.
const DefaultMinChunk = 16384

// DefaultConfig uses one worker per available CPU.
func DefaultConfig() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: DefaultMinChunk,
		Context:  context.Background(),
	}
}

// WithWorkers sets the worker bound. 1 forces sequential execution.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// WithMinChunk sets the minimum chunk length.
func WithMinChunk(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinChunk = n
		}
	}
}

// WithContext attaches a context whose cancellation stops pending chunks.
func WithContext(ctx context.Context) Option {
	return func(cfg *Config) {
		if ctx != nil {
			cfg.Context = ctx
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
