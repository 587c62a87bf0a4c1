// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves handles and edge order exactly.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, nodes, edges and
// adjacency. Handles and edge order are identical on the clone, so index
// tables computed for g stay valid for the copy.
//
// The clone starts with the same Revision as g; the two diverge as soon as
// either one is mutated.
//
// Complexity: O(V + E).
func (g *Graph[R]) Clone() *Graph[R] {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph[R]()
	clone.cfg = g.cfg

	clone.nodes = make([]Node[R], len(g.nodes))
	copy(clone.nodes, g.nodes)
	for r, h := range g.index {
		clone.index[r] = h
	}

	clone.edges = make([]Edge[R], len(g.edges))
	copy(clone.edges, g.edges)
	for key, pos := range g.slots {
		clone.slots[key] = pos
	}
	for h, bucket := range g.inbound {
		clone.inbound[h] = append([]int(nil), bucket...)
	}
	for h, bucket := range g.outbound {
		clone.outbound[h] = append([]int(nil), bucket...)
	}
	clone.revision.Store(g.revision.Load())

	return clone
}
