// SPDX-License-Identifier: MIT
//
// File: traverse.go
// Role: Read-only traversals over the consumption relation.
//
//   - Upstream(r): breadth-first walk over Inputs, collecting every resource
//     whose production r ultimately depends on.
//   - TopologicalOrder(): depth-first post-order over Consumers, reversed, so
//     producers precede their consumers (raw materials first).
//
// Neither traversal is needed for solving; the solver accepts cyclic
// networks. They exist for presentation and diagnostics.

package core

import "fmt"

// Visitation colors for the DFS in TopologicalOrder.
const (
	white = iota // unvisited
	gray         // on the current DFS stack
	black        // fully explored
)

// Upstream returns r followed by every resource reachable from r against
// the edge direction (inputs, inputs of inputs, ...), in BFS order with ties
// broken by edge insertion order.
//
// Errors:
//   - ErrUnknownResource: if r is not registered.
//
// Complexity:
//   - Time O(V + E), Space O(V).
func (g *Graph[R]) Upstream(r R) ([]R, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	start, ok := g.index[r]
	if !ok {
		return nil, fmt.Errorf("Upstream(%v): %w", r, ErrUnknownResource)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	visited := make([]bool, len(g.nodes))
	visited[start] = true
	queue := []NodeHandle{start}
	order := make([]R, 0, len(g.nodes))

	var cur NodeHandle
	for len(queue) > 0 {
		cur, queue = queue[0], queue[1:]
		order = append(order, g.nodes[cur].Resource)
		for _, pos := range g.inbound[cur] {
			src := g.index[g.edges[pos].From]
			if visited[src] {
				continue
			}
			visited[src] = true
			queue = append(queue, src)
		}
	}

	return order, nil
}

// TopologicalOrder returns all resources ordered so that for every edge
// from→to, from appears before to. Roots are explored in handle order, so
// the result is deterministic for a given construction sequence.
//
// Errors:
//   - ErrCycleDetected: the network has a consumption cycle (self-loops included).
//
// Complexity:
//   - Time O(V + E), Space O(V) (recursion depth bounded by the longest chain).
func (g *Graph[R]) TopologicalOrder() ([]R, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	t := topoSorter[R]{
		g:     g,
		state: make([]int, len(g.nodes)),
		order: make([]NodeHandle, 0, len(g.nodes)),
	}
	for h := range g.nodes {
		if t.state[h] != white {
			continue
		}
		if err := t.visit(NodeHandle(h)); err != nil {
			return nil, err
		}
	}

	// Reverse post-order.
	out := make([]R, len(t.order))
	for i, h := range t.order {
		out[len(t.order)-1-i] = g.nodes[h].Resource
	}

	return out, nil
}

// topoSorter carries DFS state; the caller holds both read locks.
type topoSorter[R comparable] struct {
	g     *Graph[R]
	state []int
	order []NodeHandle
}

func (t *topoSorter[R]) visit(h NodeHandle) error {
	switch t.state[h] {
	case gray:
		return fmt.Errorf("TopologicalOrder: at %v: %w", t.g.nodes[h].Resource, ErrCycleDetected)
	case black:
		return nil
	}
	t.state[h] = gray

	for _, pos := range t.g.outbound[h] {
		if err := t.visit(t.g.index[t.g.edges[pos].To]); err != nil {
			return err
		}
	}

	t.state[h] = black
	t.order = append(t.order, h)

	return nil
}
