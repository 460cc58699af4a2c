package almanac

import (
	"go.uber.org/zap"

	"almanac/internal/mapping"
)

// SolveOption configures Solve.
type SolveOption func(*solveOptions)

type solveOptions struct {
	validate bool
	merge    bool
	logger   *zap.Logger
}

func newSolveOptions(opts []SolveOption) solveOptions {
	o := solveOptions{
		validate: true,
		merge:    true,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o solveOptions) mappingOptions() []mapping.Option {
	opts := []mapping.Option{mapping.WithLogger(o.logger)}
	if !o.merge {
		opts = append(opts, mapping.WithoutMerge())
	}

	return opts
}

// WithLogger sets the logger used for progress and validation warnings.
func WithLogger(logger *zap.Logger) SolveOption {
	return func(o *solveOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutValidation skips the overlapping rule check before solving.
func WithoutValidation() SolveOption {
	return func(o *solveOptions) {
		o.validate = false
	}
}

// WithoutMerge keeps intermediate interval sets unmerged between stages.
func WithoutMerge() SolveOption {
	return func(o *solveOptions) {
		o.merge = false
	}
}
