// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
// AI-HINT (file):
//   - Stats() is an O(V+E) snapshot; use it for diagnostics and logging.

package core

// GraphStats is a read-only snapshot of policy flags and catalog sizes.
type GraphStats struct {
	AllowsLoops bool // WithLoops was given
	SumsEdges   bool // WithSummedEdges was given

	NodeCount int
	EdgeCount int

	// ZeroRateNodes counts nodes whose Rate is 0. Any such node without a
	// compensating self-loop makes the solver's system singular.
	ZeroRateNodes int

	// Sources counts nodes with no inputs (raw materials).
	Sources int

	// Sinks counts nodes nothing consumes (end products or unused outputs).
	Sinks int

	Revision uint64
}

// Looped reports whether self-consumption edges are permitted by policy.
// Complexity: O(1).
func (g *Graph[R]) Looped() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.cfg.allowLoops
}

// SummedEdges reports whether repeated (from,to) edges are summed.
// Complexity: O(1).
func (g *Graph[R]) SummedEdges() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.cfg.sumEdges
}

// Stats produces a deterministic, read-only snapshot of the network shape.
//
// Implementation:
//   - Stage 1: Under muNode read lock, snapshot flags and scan node rates.
//   - Stage 2: Under muEdgeAdj read lock, count edges and classify
//     sources/sinks from the adjacency buckets.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph[R]) Stats() *GraphStats {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.cfg.allowLoops,
		SumsEdges:   g.cfg.sumEdges,
		NodeCount:   len(g.nodes),
		Revision:    g.revision.Load(),
	}
	for i := range g.nodes {
		if g.nodes[i].Rate == 0 {
			stats.ZeroRateNodes++
		}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats.EdgeCount = len(g.edges)
	for h := range g.nodes {
		if len(g.inbound[NodeHandle(h)]) == 0 {
			stats.Sources++
		}
		if len(g.outbound[NodeHandle(h)]) == 0 {
			stats.Sinks++
		}
	}

	return &stats
}
