// SPDX-License-Identifier: MIT
// Package core_test verifies traversals and views.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodnet/core"
)

// TestGraph_Upstream verifies BFS over inputs.
func TestGraph_Upstream(t *testing.T) {
	g := NewIronChain(t)

	up, err := g.Upstream(Screw)
	require.NoError(t, err)
	require.Equal(t, []string{Screw, Rod, Ingot, Ore}, up)

	up, err = g.Upstream(Frame)
	require.NoError(t, err)
	require.Equal(t, []string{Frame, Plate, Rod, Screw, Ingot}, up[:5])
	require.ElementsMatch(t, []string{Ore, Ingot, Plate, Rod, Screw, Frame}, up)

	up, err = g.Upstream(Ore)
	require.NoError(t, err)
	require.Equal(t, []string{Ore}, up)

	_, err = g.Upstream(Unused)
	require.ErrorIs(t, err, core.ErrUnknownResource)
}

// TestGraph_TopologicalOrder verifies producers precede consumers.
func TestGraph_TopologicalOrder(t *testing.T) {
	g := NewIronChain(t)

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Len(t, order, g.NodeCount())

	pos := make(map[string]int, len(order))
	for i, r := range order {
		pos[r] = i
	}
	for _, e := range g.Edges() {
		require.Less(t, pos[e.From], pos[e.To], "%s must precede %s", e.From, e.To)
	}
}

// TestGraph_TopologicalOrder_Cycle verifies cycle detection, including self-loops.
func TestGraph_TopologicalOrder_Cycle(t *testing.T) {
	g := core.NewGraph[string]()
	for _, r := range []string{Ore, Ingot, Plate} {
		_, _ = g.AddNode(r, Rate30)
	}
	require.NoError(t, g.AddEdge(Ore, Ingot, Weight10))
	require.NoError(t, g.AddEdge(Ingot, Plate, Weight10))
	require.NoError(t, g.AddEdge(Plate, Ore, Weight10))

	_, err := g.TopologicalOrder()
	require.ErrorIs(t, err, core.ErrCycleDetected)

	loop := core.NewGraph[string](core.WithLoops())
	_, _ = loop.AddNode(Ore, Rate30)
	require.NoError(t, loop.AddEdge(Ore, Ore, Weight10))
	_, err = loop.TopologicalOrder()
	require.ErrorIs(t, err, core.ErrCycleDetected)
}

// TestInducedSubgraph verifies node filtering, renumbering and edge retention.
func TestInducedSubgraph(t *testing.T) {
	g := NewIronChain(t)
	keep := map[string]bool{Ingot: true, Rod: true, Screw: true}

	sub := core.InducedSubgraph(g, func(r string) bool { return keep[r] })
	require.Equal(t, []string{Ingot, Rod, Screw}, sub.Resources())
	require.Equal(t, 2, sub.EdgeCount())
	require.True(t, sub.HasEdge(Ingot, Rod))
	require.True(t, sub.HasEdge(Rod, Screw))
	require.False(t, sub.HasEdge(Ingot, Plate))

	h, ok := sub.Index(Screw)
	require.True(t, ok)
	require.Equal(t, core.NodeHandle(2), h)

	// Source untouched.
	require.Equal(t, 6, g.NodeCount())
	require.Equal(t, 7, g.EdgeCount())
}

// resourceKind shows that any comparable type works as a resource identity.
type resourceKind int

const (
	kindOre resourceKind = iota
	kindIngot
)

// TestGraph_NonStringResource verifies the graph is usable with enum identities.
func TestGraph_NonStringResource(t *testing.T) {
	g := core.NewGraph[resourceKind]()
	_, err := g.AddNode(kindOre, Rate30)
	require.NoError(t, err)
	_, err = g.AddNode(kindIngot, Rate30)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(kindOre, kindIngot, Weight30))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	require.Equal(t, []resourceKind{kindOre, kindIngot}, order)
}
