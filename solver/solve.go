// SPDX-License-Identifier: MIT

package solver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/prodnet/core"
	"github.com/katalvlaran/prodnet/matrix"
)

// Solve computes the production units every resource of g needs so that the
// net output meets targets.
//
// Steps:
//  1. Optionally prune g to the upstream closure of the non-zero targets.
//  2. Encode (see Encode).
//  3. Factorize A with partial pivoting and solve for b.
//  4. Decode x into a Solution (near-zero values snapped to 0).
//
// Errors:
//   - *SingularSystemError when A is not invertible.
//   - The validation errors of Encode.
//
// Complexity: O(V³) time, O(V²) space.
func Solve[R comparable](g *core.Graph[R], targets Targets[R], opts ...Option) (*Solution[R], error) {
	if g == nil {
		return nil, solverErrorf(opSolve, ErrNilGraph)
	}
	cfg := newConfig(opts)

	work := g
	if cfg.prune {
		var err error
		if work, err = upstreamOf(g, targets); err != nil {
			return nil, solverErrorf(opSolve, err)
		}
		targets = nonZero(targets)
	}

	sys, err := Encode(work, targets)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("encoded system", "size", sys.Size(), "edges", work.EdgeCount(), "pruned", cfg.prune)

	x, err := solveSystem(sys, cfg)
	if err != nil {
		return nil, solverErrorf(opSolve, err)
	}
	sol := decode(sys.Resources, x)
	if !cfg.prune || work.NodeCount() == g.NodeCount() {
		return sol, nil
	}

	return widen(g.Resources(), sol), nil
}

// solveSystem factorizes sys.A and solves for sys.B.
func solveSystem[R comparable](sys *System[R], cfg config) ([]float64, error) {
	if sys.Size() == 0 {
		return []float64{}, nil
	}
	f, err := factorize(sys, cfg)
	if err != nil {
		return nil, err
	}

	return solveWith(f, sys, sys.B, cfg)
}

// factorize runs matrix.Factorize and maps singularity onto SingularSystemError.
func factorize[R comparable](sys *System[R], cfg config) (*matrix.LU, error) {
	f, err := matrix.Factorize(sys.A, matrix.WithEpsilon(cfg.pivotTol))
	if err == nil {
		return f, nil
	}

	var pe *matrix.PivotError
	if errors.As(err, &pe) {
		cfg.logger.Debug("singular system", "size", sys.Size(), "resource", sys.Resources[pe.Column], "pivot", pe.Pivot)
		return nil, &SingularSystemError[R]{
			Size:     sys.Size(),
			Column:   pe.Column,
			Resource: sys.Resources[pe.Column],
			Err:      err,
		}
	}

	return nil, err
}

// solveWith solves one right-hand side against an existing factorization.
// A non-finite solution means A is numerically singular.
func solveWith[R comparable](f *matrix.LU, sys *System[R], b []float64, cfg config) ([]float64, error) {
	x, err := f.Solve(b)
	if errors.Is(err, matrix.ErrNaNInf) {
		return nil, &SingularSystemError[R]{
			Size:   sys.Size(),
			Column: -1,
			Err:    fmt.Errorf("%w: %w", matrix.ErrSingular, err),
		}
	}
	if err != nil {
		return nil, err
	}

	if cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		if res, rerr := matrix.ResidualNorm(sys.A, x, b); rerr == nil {
			cfg.logger.Debug("solved system", "size", sys.Size(), "residual", res)
		}
	}

	return x, nil
}

// upstreamOf returns the sub-network feeding every resource with a non-zero target.
func upstreamOf[R comparable](g *core.Graph[R], targets Targets[R]) (*core.Graph[R], error) {
	keep := make(map[R]struct{})
	for r, v := range targets {
		if v == 0 {
			continue
		}
		up, err := g.Upstream(r)
		if err != nil {
			return nil, err
		}
		for _, u := range up {
			keep[u] = struct{}{}
		}
	}

	// Zero targets must still name known resources.
	for r := range targets {
		if !g.HasNode(r) {
			return nil, fmt.Errorf("target %v: %w", r, core.ErrUnknownResource)
		}
	}

	return core.InducedSubgraph(g, func(r R) bool {
		_, ok := keep[r]
		return ok
	}), nil
}

// nonZero drops zero entries so they do not reference pruned resources.
func nonZero[R comparable](t Targets[R]) Targets[R] {
	out := make(Targets[R], len(t))
	for r, v := range t {
		if v != 0 {
			out[r] = v
		}
	}

	return out
}

// widen maps a pruned solution back onto every resource of the full graph.
func widen[R comparable](all []R, pruned *Solution[R]) *Solution[R] {
	x := make([]float64, len(all))
	for i, r := range all {
		x[i], _ = pruned.Units(r)
	}

	return decode(all, x)
}
