package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodnet/core"
)

// Resources of the reinforced-plate chain.
const (
	Ore   = "iron_ore"
	Ingot = "iron_ingot"
	Plate = "iron_plate"
	Rod   = "iron_rod"
	Screw = "screw"
	RIP   = "reinforced_plate"
)

// tol is the absolute tolerance for solved unit counts.
const tol = 1e-9

// plateChain builds:
//
//	ore(30) → ingot(30) → plate(20) ─┐
//	                   └→ rod(15) → screw(40) → RIP(5)
//
// For target {RIP: 5} the exact answer is
// RIP 1, plate 1.5, screw 1.5, rod 1, ingot 2, ore 2.
func plateChain(t testing.TB, opts ...core.GraphOption) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](opts...)
	for _, n := range []struct {
		r    string
		rate float64
	}{{Ore, 30}, {Ingot, 30}, {Plate, 20}, {Rod, 15}, {Screw, 40}, {RIP, 5}} {
		_, err := g.AddNode(n.r, n.rate)
		require.NoError(t, err)
	}
	for _, e := range []core.Edge[string]{
		{From: Ore, To: Ingot, Weight: 30},
		{From: Ingot, To: Plate, Weight: 30},
		{From: Ingot, To: Rod, Weight: 15},
		{From: Rod, To: Screw, Weight: 10},
		{From: Plate, To: RIP, Weight: 30},
		{From: Screw, To: RIP, Weight: 60},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// plateChainUnits is the solution of plateChain for {RIP: 5}, in handle order.
var plateChainUnits = []float64{2, 2, 1.5, 1, 1.5, 1}

// cycle3 builds A→B(5), B→C(2.5), C→A(8) with rates 10, 5, 4.
// For target {C: 8}: x = (A 1, B 2, C 4).
func cycle3(t testing.TB) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, n := range []struct {
		r    string
		rate float64
	}{{"A", 10}, {"B", 5}, {"C", 4}} {
		_, err := g.AddNode(n.r, n.rate)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("B", "C", 2.5))
	require.NoError(t, g.AddEdge("C", "A", 8))

	return g
}
