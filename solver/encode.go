// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/prodnet/core"
	"github.com/katalvlaran/prodnet/matrix"
)

// Targets maps a resource to its externally demanded net output rate
// (units per unit time). Resources absent from the map have target 0.
type Targets[R comparable] map[R]float64

// Scale returns a copy of t with every rate multiplied by k.
func (t Targets[R]) Scale(k float64) Targets[R] {
	out := make(Targets[R], len(t))
	for r, v := range t {
		out[r] = v * k
	}

	return out
}

// System is the square linear system A·x = b encoded from a network.
// Row and column i belong to Resources[i] (graph handle order).
type System[R comparable] struct {
	Resources []R
	A         *matrix.Dense // nil when the network has no nodes
	B         []float64

	index map[R]int
}

// Size returns the number of unknowns.
func (s *System[R]) Size() int { return len(s.Resources) }

// Index returns the row/column of r.
func (s *System[R]) Index(r R) (int, bool) {
	i, ok := s.index[r]

	return i, ok
}

// Encode translates g and targets into A·x = b.
//
// Steps:
//  1. Snapshot nodes (handle order) and edges.
//  2. A[i][i] = rate_i.
//  3. For every edge s→t: A[s][t] −= w. A self-loop therefore yields
//     A[i][i] = rate_i − w. Contributions accumulate, never overwrite.
//  4. b[i] = targets[r_i], zero when absent.
//
// Errors:
//   - ErrNilGraph.
//   - ErrBadTarget for a negative or non-finite target.
//   - core.ErrUnknownResource for a target naming an unregistered resource.
//
// Complexity: O(V² + E) (dense A).
func Encode[R comparable](g *core.Graph[R], targets Targets[R]) (*System[R], error) {
	if g == nil {
		return nil, solverErrorf(opEncode, ErrNilGraph)
	}

	nodes := g.Nodes()
	sys := &System[R]{
		Resources: make([]R, len(nodes)),
		index:     make(map[R]int, len(nodes)),
	}
	for i, n := range nodes {
		sys.Resources[i] = n.Resource
		sys.index[n.Resource] = i
	}

	b, err := sys.rhs(targets)
	if err != nil {
		return nil, solverErrorf(opEncode, err)
	}
	sys.B = b
	if len(nodes) == 0 {
		return sys, nil
	}

	a, err := matrix.NewDense(len(nodes), len(nodes))
	if err != nil {
		return nil, solverErrorf(opEncode, err)
	}
	for i, n := range nodes {
		if err = a.Set(i, i, n.Rate); err != nil {
			return nil, solverErrorf(opEncode, err)
		}
	}
	for _, e := range g.Edges() {
		s, okS := sys.index[e.From]
		t, okT := sys.index[e.To]
		if !okS || !okT {
			// Edge added after the node snapshot.
			return nil, solverErrorf(opEncode, fmt.Errorf("edge %v→%v: %w", e.From, e.To, core.ErrUnknownResource))
		}
		if err = a.Add(s, t, -e.Weight); err != nil {
			return nil, solverErrorf(opEncode, err)
		}
	}
	sys.A = a

	return sys, nil
}

// rhs builds b for targets against this system's index.
func (s *System[R]) rhs(targets Targets[R]) ([]float64, error) {
	b := make([]float64, len(s.Resources))
	for r, v := range targets {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("target %v=%g: %w", r, v, ErrBadTarget)
		}
		i, ok := s.index[r]
		if !ok {
			return nil, fmt.Errorf("target %v: %w", r, core.ErrUnknownResource)
		}
		b[i] = v
	}

	return b, nil
}
