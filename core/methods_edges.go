// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order; a summed duplicate keeps
//     the position of the first insertion.
// Concurrency:
//   - Mutations under muEdgeAdj write lock, endpoints resolved under muNode read lock.
// AI-HINT (file):
//   - Edge direction is producer → consumer: AddEdge(ore, ingot, 30) means
//     one ingot line eats 30 ore per unit time.
//   - Duplicate (from,to) pairs fail unless the graph was built WithSummedEdges().

package core

import (
	"fmt"
	"math"
)

// AddEdge registers that one production unit of `to` consumes `weight`
// units of `from` per unit time.
//
// Steps:
//  1. Validate weight (finite, > 0).
//  2. Resolve both endpoints under muNode read lock (ErrUnknownResource).
//  3. Reject self-consumption unless WithLoops().
//  4. Under muEdgeAdj: on an existing (from,to) pair either sum the weight
//     (WithSummedEdges) or fail with ErrMultiEdgeNotAllowed. Never overwrite.
//  5. Append to the catalog and link inbound/outbound buckets.
//
// Complexity: O(1) amortized.
func (g *Graph[R]) AddEdge(from, to R, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return fmt.Errorf("AddEdge(%v→%v, %g): %w", from, to, weight, ErrBadWeight)
	}

	g.muNode.RLock()
	defer g.muNode.RUnlock()

	src, ok := g.index[from]
	if !ok {
		return fmt.Errorf("AddEdge(%v→%v): source: %w", from, to, ErrUnknownResource)
	}
	dst, ok := g.index[to]
	if !ok {
		return fmt.Errorf("AddEdge(%v→%v): target: %w", from, to, ErrUnknownResource)
	}
	if src == dst && !g.cfg.allowLoops {
		return fmt.Errorf("AddEdge(%v→%v): %w", from, to, ErrLoopNotAllowed)
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	key := [2]NodeHandle{src, dst}
	if pos, dup := g.slots[key]; dup {
		if !g.cfg.sumEdges {
			return fmt.Errorf("AddEdge(%v→%v): %w", from, to, ErrMultiEdgeNotAllowed)
		}
		g.edges[pos].Weight += weight
		g.revision.Add(1)

		return nil
	}

	pos := len(g.edges)
	g.edges = append(g.edges, Edge[R]{From: from, To: to, Weight: weight})
	g.slots[key] = pos
	g.outbound[src] = append(g.outbound[src], pos)
	g.inbound[dst] = append(g.inbound[dst], pos)
	g.revision.Add(1)

	return nil
}

// HasEdge reports whether a from→to consumption relation exists.
// Unknown resources simply report false.
// Complexity: O(1).
func (g *Graph[R]) HasEdge(from, to R) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the consumption weight of from→to.
// Complexity: O(1).
func (g *Graph[R]) Weight(from, to R) (float64, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	src, ok := g.index[from]
	if !ok {
		return 0, false
	}
	dst, ok := g.index[to]
	if !ok {
		return 0, false
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	pos, ok := g.slots[[2]NodeHandle{src, dst}]
	if !ok {
		return 0, false
	}

	return g.edges[pos].Weight, true
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph[R]) Edges() []Edge[R] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]Edge[R], len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of distinct (from,to) relations.
// Complexity: O(1).
func (g *Graph[R]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}
