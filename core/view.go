// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Kept nodes and edges preserve their relative order from the source.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.
// AI-HINT (file):
//   - Views do NOT mutate the input Graph.
//   - Handles are renumbered densely on the view; never reuse source handles with it.

package core

// InducedSubgraph returns a new Graph containing only the nodes whose resource
// satisfies keep, and every edge with both endpoints kept. Policy flags are
// copied. The input graph is not mutated.
//
// Combined with Upstream, this yields the sub-network that actually feeds a
// given set of end products.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph[R comparable](g *Graph[R], keep func(R) bool) *Graph[R] {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := NewGraph[R]()
	out.cfg = g.cfg

	// Copy only kept nodes, renumbering handles densely in source order.
	for i := range g.nodes {
		n := g.nodes[i]
		if !keep(n.Resource) {
			continue
		}
		out.index[n.Resource] = NodeHandle(len(out.nodes))
		out.nodes = append(out.nodes, n)
	}

	// Copy only edges whose endpoints are both kept.
	var src, dst NodeHandle
	var okSrc, okDst bool
	for _, e := range g.edges {
		src, okSrc = out.index[e.From]
		dst, okDst = out.index[e.To]
		if !okSrc || !okDst {
			continue
		}
		pos := len(out.edges)
		out.edges = append(out.edges, e)
		out.slots[[2]NodeHandle{src, dst}] = pos
		out.outbound[src] = append(out.outbound[src], pos)
		out.inbound[dst] = append(out.inbound[dst], pos)
	}
	out.revision.Store(1)

	return out
}
