// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns nodes in insertion (handle) order.
//
// Concurrency:
//   - Node arena and index protected by muNode.
//
// AI-Hints (file):
//   - Handles are dense 0..N-1 and are the row/column indices the solver uses.
//   - Register every node before adding edges; AddEdge never creates nodes.
package core

import (
	"fmt"
	"math"
)

// AddNode registers resource r with the output rate of one production unit.
//
// Implementation:
//   - Stage 1: Validate rate (finite, non-negative).
//   - Stage 2: Under muNode write lock, reject a duplicate resource.
//   - Stage 3: Append to the arena and record the handle.
//
// Returns:
//   - NodeHandle: dense index of the new node.
//   - error: ErrBadRate or ErrDuplicateResource, wrapped with the resource.
//
// Notes:
//   - A zero rate is accepted on purpose: such a node makes the linear
//     system singular unless something else pins its row, and that is
//     reported by the solver rather than hidden here.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[R]) AddNode(r R, rate float64) (NodeHandle, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return -1, fmt.Errorf("AddNode(%v, %g): %w", r, rate, ErrBadRate)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.index[r]; exists {
		return -1, fmt.Errorf("AddNode(%v): %w", r, ErrDuplicateResource)
	}

	h := NodeHandle(len(g.nodes))
	g.nodes = append(g.nodes, Node[R]{Resource: r, Rate: rate})
	g.index[r] = h
	g.revision.Add(1)

	return h, nil
}

// HasNode reports whether r is registered.
// Complexity: O(1).
func (g *Graph[R]) HasNode(r R) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.index[r]

	return ok
}

// Index returns the dense handle of r.
// Complexity: O(1).
func (g *Graph[R]) Index(r R) (NodeHandle, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	h, ok := g.index[r]

	return h, ok
}

// Rate returns the per-unit output rate of r, or ErrUnknownResource.
// Complexity: O(1).
func (g *Graph[R]) Rate(r R) (float64, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	h, ok := g.index[r]
	if !ok {
		return 0, fmt.Errorf("Rate(%v): %w", r, ErrUnknownResource)
	}

	return g.nodes[h].Rate, nil
}

// Node returns the node stored at handle h.
// Complexity: O(1).
func (g *Graph[R]) Node(h NodeHandle) (Node[R], bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	if h < 0 || int(h) >= len(g.nodes) {
		return Node[R]{}, false
	}

	return g.nodes[h], true
}

// Nodes returns a copy of all nodes in handle order.
// The position of a node in the result equals its NodeHandle.
// Complexity: O(V).
func (g *Graph[R]) Nodes() []Node[R] {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]Node[R], len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Resources returns the registered resources in handle order.
// Complexity: O(V).
func (g *Graph[R]) Resources() []R {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]R, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].Resource
	}

	return out
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1).
func (g *Graph[R]) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// Revision returns a counter that changes after every successful mutation.
// Two equal revisions of the same *Graph describe the same network, which
// lets callers cache derived data (index tables, factorizations).
// Complexity: O(1).
func (g *Graph[R]) Revision() uint64 {
	return g.revision.Load()
}
