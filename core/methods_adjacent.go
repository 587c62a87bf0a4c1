// File: methods_adjacent.go
// Role: Neighborhood APIs (Inputs, Consumers) over the inbound/outbound buckets.
// Determinism:
//   - Both queries return edges in insertion order.
// Concurrency:
//   - Read operations hold muNode then muEdgeAdj read locks.
// AI-HINT (file):
//   - Inputs(r): what one unit of r eats. Consumers(r): who eats r.

package core

import "fmt"

// Inputs returns the edges whose To is r, i.e. the resources consumed by one
// production unit of r.
//
// Errors:
//   - ErrUnknownResource: if r is not registered.
//
// Complexity:
//   - Time O(d_in), Space O(d_in).
func (g *Graph[R]) Inputs(r R) ([]Edge[R], error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	h, ok := g.index[r]
	if !ok {
		return nil, fmt.Errorf("Inputs(%v): %w", r, ErrUnknownResource)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.collect(g.inbound[h]), nil
}

// Consumers returns the edges whose From is r, i.e. every downstream line
// that draws on r.
//
// Errors:
//   - ErrUnknownResource: if r is not registered.
//
// Complexity:
//   - Time O(d_out), Space O(d_out).
func (g *Graph[R]) Consumers(r R) ([]Edge[R], error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	h, ok := g.index[r]
	if !ok {
		return nil, fmt.Errorf("Consumers(%v): %w", r, ErrUnknownResource)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return g.collect(g.outbound[h]), nil
}

// collect copies the edges at the given catalog positions.
// Caller must hold muEdgeAdj (read or write).
func (g *Graph[R]) collect(positions []int) []Edge[R] {
	out := make([]Edge[R], 0, len(positions))
	for _, pos := range positions {
		out = append(out, g.edges[pos])
	}

	return out
}
