package mapping

import "go.uber.org/zap"

// Option configures interval propagation.
type Option func(*options)

type options struct {
	merge  bool
	logger *zap.Logger
}

func newOptions(opts []Option) options {
	o := options{
		merge:  true,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithoutMerge keeps propagated intervals as produced instead of sorting and
// coalescing adjacent ones.
func WithoutMerge() Option {
	return func(o *options) {
		o.merge = false
	}
}

// WithLogger logs per-stage interval counts at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
