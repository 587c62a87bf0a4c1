// SPDX-License-Identifier: MIT

package solver

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/prodnet/matrix"
)

// DefaultSnapTolerance is the magnitude below which a solved unit count is
// reported as exactly zero.
const DefaultSnapTolerance = 1e-9

const panicToleranceInvalid = "solver: WithPivotTolerance: tol must be finite, non-negative"

// Option configures a Solve call or a Planner.
type Option func(*config)

type config struct {
	pivotTol float64
	prune    bool
	logger   *slog.Logger
}

func newConfig(opts []Option) config {
	c := config{
		pivotTol: matrix.DefaultEpsilon,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// WithPivotTolerance sets the row-relative pivot tolerance forwarded to
// matrix.Factorize. Panics on a negative or non-finite tol.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(c *config) { c.pivotTol = tol }
}

// WithLogger routes debug diagnostics (system size, residual) to l.
// A nil logger keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPruning restricts Solve to the resources upstream of a non-zero
// target; all other resources report zero units.
//
// For an invertible network the result is identical to an unpruned solve.
// Pruning additionally lets a network with an unrelated singular part
// (for example an unused zero-rate resource) be solved. Planner ignores it.
func WithPruning() Option {
	return func(c *config) { c.prune = true }
}
