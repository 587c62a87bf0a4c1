// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Node, and Edge types of a
// production network, and provides thread-safe primitives for building,
// querying, and cloning it.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for nodes,
// muEdgeAdj for edges and adjacency), so readers never block each other.
//
// This file declares Node, Edge, Graph, GraphOption, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateResource   - resource already registered as a node.
//	ErrUnknownResource     - edge or query references an unregistered resource.
//	ErrBadRate             - node rate is negative, NaN or ±Inf.
//	ErrBadWeight           - edge weight is not a finite positive number.
//	ErrLoopNotAllowed      - self-consumption when loops are disabled.
//	ErrMultiEdgeNotAllowed - second edge for the same (from,to) pair when summing is disabled.
//	ErrCycleDetected       - TopologicalOrder on a cyclic network.
package core

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateResource indicates AddNode was called twice for one resource.
	ErrDuplicateResource = errors.New("core: resource already registered")

	// ErrUnknownResource indicates an operation referenced a resource with no node.
	ErrUnknownResource = errors.New("core: unknown resource")

	// ErrBadRate indicates a node throughput that is negative or not finite.
	ErrBadRate = errors.New("core: rate must be finite and non-negative")

	// ErrBadWeight indicates an edge weight that is zero, negative or not finite.
	ErrBadWeight = errors.New("core: weight must be finite and positive")

	// ErrLoopNotAllowed indicates a resource consuming itself when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-consumption not allowed")

	// ErrMultiEdgeNotAllowed indicates a duplicate (from,to) edge when summing is disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: duplicate edge not allowed")

	// ErrCycleDetected indicates the network has a consumption cycle.
	ErrCycleDetected = errors.New("core: cycle detected")
)

// NodeHandle is the dense arena index assigned to a node at registration.
// Handles are assigned 0..N-1 in insertion order and never change, because
// nodes cannot be removed.
type NodeHandle int

// Node is a resource together with the output rate of one production unit.
type Node[R comparable] struct {
	// Resource is the identity of the produced material.
	Resource R

	// Rate is units of Resource produced per unit time by one production unit.
	Rate float64
}

// Edge is a consumption relation: one production unit of To consumes
// Weight units of From per unit time.
type Edge[R comparable] struct {
	// From is the consumed (source) resource.
	From R

	// To is the consuming (target) resource.
	To R

	// Weight is the consumption rate of From per production unit of To.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig holds construction-time policy flags. It is not generic so that
// options can be shared between graphs of different resource types.
type graphConfig struct {
	allowLoops bool // allow a resource to consume itself
	sumEdges   bool // sum weights of repeated (from,to) edges instead of rejecting
}

// WithLoops permits self-consumption edges (a resource feeding its own line).
func WithLoops() GraphOption {
	return func(c *graphConfig) { c.allowLoops = true }
}

// WithSummedEdges makes a repeated AddEdge(from,to,w) add w to the existing
// weight instead of failing with ErrMultiEdgeNotAllowed.
func WithSummedEdges() GraphOption {
	return func(c *graphConfig) { c.sumEdges = true }
}

// Graph is the in-memory production network.
//
// Nodes live in an arena (slice) indexed by NodeHandle; index maps resource
// identity to handle. Edges keep insertion order in a slice, and
// slots[(from,to)] points at the edge's position for O(1) duplicate checks.
// muNode protects nodes and index; muEdgeAdj protects edges and adjacency.
// Lock order is always muNode then muEdgeAdj.
type Graph[R comparable] struct {
	muNode    sync.RWMutex // guards nodes, index
	muEdgeAdj sync.RWMutex // guards edges, slots, inbound, outbound

	cfg graphConfig

	// Storage
	nodes []Node[R]             // arena: handle → node
	index map[R]NodeHandle      // resource → handle
	edges []Edge[R]             // insertion-ordered edge catalog
	slots map[[2]NodeHandle]int // (from,to) → position in edges

	// inbound[to] and outbound[from] hold positions in edges, insertion order.
	inbound  map[NodeHandle][]int
	outbound map[NodeHandle][]int

	revision atomic.Uint64 // bumped on every successful mutation
}

// NewGraph creates an empty production network with the given options.
// By default self-consumption and duplicate edges are rejected.
// Complexity: O(1).
func NewGraph[R comparable](opts ...GraphOption) *Graph[R] {
	g := &Graph[R]{
		index:    make(map[R]NodeHandle),
		slots:    make(map[[2]NodeHandle]int),
		inbound:  make(map[NodeHandle][]int),
		outbound: make(map[NodeHandle][]int),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}
