package frontierzdd

import (
	"log/slog"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// Config holds construction parameters, using a functional-options shape.
// WithWorkers names concurrency as "workers processing distinct nodes
// within the same level" rather than a generic goroutines-per-variable
// knob, matching how the construction engine actually parallelizes.
type Config struct {
	// Workers is the number of goroutines used to compute candidate
	// states within a level concurrently. 1 disables
	// parallelism; the merge/insert step is always single-threaded so
	// node ids stay deterministic regardless of Workers.
	Workers int

	// MemoryLimit caps total node-table bytes (rough estimate). 0 means
	// unlimited.
	MemoryLimit int64

	// Timeout is applied to Construct's context before construction
	// starts. Construct checks the context only at that point, so a
	// timeout does not interrupt a construction already running. 0 means
	// no timeout.
	Timeout time.Duration

	// DebugAssertions enables panics on internal invariant violations
	// instead of returning ErrInvariantViolation.
	DebugAssertions bool

	// Logger receives structured progress logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Tracer wraps Construct/SolutionCount in spans. Defaults to the
	// global otel tracer provider's "github.com/0h-n0/frontier-basic-go"
	// tracer (a no-op unless
	// the caller has configured a TracerProvider).
	Tracer trace.Tracer

	// Metrics, when non-nil, receives construction duration, node count,
	// and max frontier width observations.
	Metrics *Metrics
}

// Option configures a Config using the functional options pattern.
type Option func(*Config)

// WithWorkers sets the number of goroutines used for the concurrent
// candidate-compute phase. workers <= 0 defaults to runtime.NumCPU().
func WithWorkers(workers int) Option {
	return func(c *Config) {
		if workers <= 0 {
			c.Workers = runtime.NumCPU()
		} else {
			c.Workers = workers
		}
	}
}

// WithMemoryLimit sets a rough node-table byte budget. bytes <= 0 disables
// the limit.
func WithMemoryLimit(bytes int64) Option {
	return func(c *Config) {
		c.MemoryLimit = bytes
	}
}

// WithTimeout sets Config.Timeout. It is checked only before construction
// starts; it does not stop a running Construct call.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Timeout = d
	}
}

// WithDebugAssertions enables panics on invariant violations, for use in
// tests and development builds.
func WithDebugAssertions(enabled bool) Option {
	return func(c *Config) {
		c.DebugAssertions = enabled
	}
}

// WithLogger overrides the default structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithTracer overrides the default OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(c *Config) {
		if t != nil {
			c.Tracer = t
		}
	}
}

// WithMetrics attaches a Metrics collector to record construction
// observations.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) {
		c.Metrics = m
	}
}

// newConfig applies sensible defaults, then the supplied options in order.
func newConfig(opts ...Option) *Config {
	cfg := &Config{
		Workers:     1,
		MemoryLimit: 0,
		Timeout:     0,
		Logger:      slog.Default(),
		Tracer:      defaultTracer,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
