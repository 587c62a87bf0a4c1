// Package core provides the production network model: a thread-safe,
// in-memory directed graph whose nodes are resources with a per-unit output
// rate and whose edges are per-unit consumption rates.
//
// A network N = (V,E) is built once and then read by solvers:
//
//   - Node (r, rate): one production unit of r outputs rate units per time.
//   - Edge (from → to, w): one production unit of `to` consumes w units of
//     `from` per time.
//
// Why a dedicated graph instead of a general one?
//
//   - Resources are any comparable Go type: Graph[string], Graph[MyEnum], ...
//   - Every node gets a dense NodeHandle (0..N-1) in insertion order. The
//     solver uses handles directly as matrix row/column indices.
//   - Nodes and edges are never removed, so handles are stable for the
//     life of the graph and no re-indexing is ever needed.
//   - Duplicate (from,to) relations are rejected, or summed when the graph
//     is created WithSummedEdges(). They are never silently overwritten.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-consumption (from == to); otherwise ErrLoopNotAllowed.
//
//	– WithSummedEdges()
//	    A repeated AddEdge(from,to,w) adds w to the existing weight;
//	    otherwise ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	// Construction
//	AddNode(r R, rate float64) (NodeHandle, error)  // O(1)
//	AddEdge(from, to R, weight float64) error       // O(1)
//
//	// Query
//	HasNode(r) / Index(r) / Rate(r) / Node(h)        // O(1)
//	Nodes() []Node[R]                                // O(V), handle order
//	Edges() []Edge[R]                                // O(E), insertion order
//	Inputs(r) / Consumers(r)                         // O(deg)
//	HasEdge(from,to) / Weight(from,to)               // O(1)
//	Upstream(r) / TopologicalOrder()                 // O(V+E)
//	Stats() / Revision()
//
//	// Cloning
//	Clone() *Graph[R]                                // O(V+E)
//
// Concurrency: reads may run concurrently with each other. Mutation is
// locked and safe, but a solve that races with mutation sees an arbitrary
// intermediate network; finish building before solving.
package core
