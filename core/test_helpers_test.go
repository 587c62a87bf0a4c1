// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for prodnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep resource names and rates as named constants (no magic numbers in test bodies).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/prodnet/core"
)

// Common resource IDs used across core tests.
const (
	Ore    = "ore"
	Ingot  = "ingot"
	Plate  = "plate"
	Rod    = "rod"
	Screw  = "screw"
	Frame  = "frame"
	Unused = "unused"
)

// Common rates and weights used across core tests.
const (
	Rate30 = 30.0
	Rate20 = 20.0
	Rate15 = 15.0
	Rate40 = 40.0
	Rate2  = 2.0

	Weight30 = 30.0
	Weight15 = 15.0
	Weight10 = 10.0
	Weight12 = 12.0
)

// Concurrency sizes.
const (
	NReaders = 50
	NNodes   = 200
)

// NewIronChain RETURNS a small directed production network:
//
//	ore → ingot → plate ─┐
//	        └──→ rod ──→ screw
//	              └─────────┴→ frame
//
// Nodes are registered in the order Ore, Ingot, Plate, Rod, Screw, Frame,
// so their handles are 0..5.
func NewIronChain(t *testing.T, opts ...core.GraphOption) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string](opts...)
	for _, n := range []core.Node[string]{
		{Resource: Ore, Rate: Rate30},
		{Resource: Ingot, Rate: Rate30},
		{Resource: Plate, Rate: Rate20},
		{Resource: Rod, Rate: Rate15},
		{Resource: Screw, Rate: Rate40},
		{Resource: Frame, Rate: Rate2},
	} {
		_, err := g.AddNode(n.Resource, n.Rate)
		require.NoError(t, err)
	}
	for _, e := range []core.Edge[string]{
		{From: Ore, To: Ingot, Weight: Weight30},
		{From: Ingot, To: Plate, Weight: Weight30},
		{From: Ingot, To: Rod, Weight: Weight15},
		{From: Rod, To: Screw, Weight: Weight10},
		{From: Plate, To: Frame, Weight: Weight30},
		{From: Rod, To: Frame, Weight: Weight12},
		{From: Screw, To: Frame, Weight: Weight10},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// froms extracts the From side of each edge, preserving order.
func froms(edges []core.Edge[string]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.From
	}

	return out
}

// tos extracts the To side of each edge, preserving order.
func tos(edges []core.Edge[string]) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}
