// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/prodnet/core"
	"github.com/katalvlaran/prodnet/matrix"
)

// DefaultPlannerCacheSize is the number of graph revisions a Planner keeps.
const DefaultPlannerCacheSize = 8

// plan is the cached, target-independent part of a solve.
type plan[R comparable] struct {
	sys *System[R]
	lu  *matrix.LU
	err error // cached singularity; repeated solves fail fast
}

// Planner solves many target vectors against one network, factorizing the
// coefficient matrix once per graph revision. Mutating the graph bumps its
// revision, so the next Solve refactorizes automatically.
//
// A Planner is safe for concurrent use. WithPruning is ignored.
type Planner[R comparable] struct {
	g     *core.Graph[R]
	cfg   config
	cache *lru.Cache[uint64, *plan[R]]

	hits, misses atomic.Uint64
}

// NewPlanner creates a Planner for g that keeps up to size factorizations.
//
// Errors:
//   - ErrNilGraph, ErrBadCacheSize.
func NewPlanner[R comparable](g *core.Graph[R], size int, opts ...Option) (*Planner[R], error) {
	if g == nil {
		return nil, solverErrorf(opPlanner, ErrNilGraph)
	}
	if size <= 0 {
		return nil, solverErrorf(opPlanner, fmt.Errorf("size %d: %w", size, ErrBadCacheSize))
	}
	cache, err := lru.New[uint64, *plan[R]](size)
	if err != nil {
		return nil, solverErrorf(opPlanner, err)
	}

	return &Planner[R]{g: g, cfg: newConfig(opts), cache: cache}, nil
}

// Solve is equivalent to Solve(g, targets) but reuses the cached
// factorization of the graph's current revision.
func (p *Planner[R]) Solve(targets Targets[R]) (*Solution[R], error) {
	pl, err := p.plan()
	if err != nil {
		return nil, solverErrorf(opPlanner, err)
	}
	if pl.err != nil {
		return nil, solverErrorf(opPlanner, pl.err)
	}

	b, err := pl.sys.rhs(targets)
	if err != nil {
		return nil, solverErrorf(opPlanner, err)
	}
	if pl.sys.Size() == 0 {
		return decode(pl.sys.Resources, []float64{}), nil
	}
	x, err := solveWith(pl.lu, pl.sys, b, p.cfg)
	if err != nil {
		return nil, solverErrorf(opPlanner, err)
	}

	return decode(pl.sys.Resources, x), nil
}

// plan returns the cached plan for the current revision, building it on a miss.
// A revision that changes while the plan is built is not cached.
func (p *Planner[R]) plan() (*plan[R], error) {
	rev := p.g.Revision()
	if pl, ok := p.cache.Get(rev); ok {
		p.hits.Add(1)
		return pl, nil
	}
	p.misses.Add(1)

	sys, err := Encode(p.g, nil)
	if err != nil {
		return nil, err
	}
	pl := &plan[R]{sys: sys}
	if sys.Size() > 0 {
		pl.lu, pl.err = factorize(sys, p.cfg)
		var se *SingularSystemError[R]
		if pl.err != nil && !errors.As(pl.err, &se) {
			return nil, pl.err
		}
	}
	p.cfg.logger.Debug("planner factorized", "revision", rev, "size", sys.Size(), "singular", pl.err != nil)

	if p.g.Revision() == rev {
		p.cache.Add(rev, pl)
	}

	return pl, nil
}

// Invalidate drops every cached factorization.
func (p *Planner[R]) Invalidate() { p.cache.Purge() }

// Cached returns the number of factorizations currently held.
func (p *Planner[R]) Cached() int { return p.cache.Len() }

// Stats returns cache hits and misses since creation.
func (p *Planner[R]) Stats() (hits, misses uint64) {
	return p.hits.Load(), p.misses.Load()
}
