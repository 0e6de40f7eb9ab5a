package fastsplit

import "github.com/hupe1980/fastsplit/internal/simd"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	kernel           Kernel
	kernelSet        bool
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// locate returns the search function selected by the options, falling back
// to the process-wide kernel.
func (o *options) locate() func([]byte, byte) int {
	if o.kernelSet {
		return simd.KernelFunc(o.kernel)
	}
	return simd.SegmentLen
}

// Option configures index construction.
type Option func(*options)

// WithLogger configures the logger used for build diagnostics.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the collector notified about index builds
// and segment lookups.
//
// If nil is passed, metrics are discarded.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}

// WithKernel pins the delimiter search kernel, ignoring FASTSPLIT_KERNEL.
//
// Every kernel produces identical results; this exists for benchmarking and
// for isolating a suspected kernel bug.
func WithKernel(k Kernel) Option {
	return func(o *options) {
		o.kernel = k
		o.kernelSet = true
	}
}
