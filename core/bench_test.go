package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/prodnet/core"
)

// buildChain returns a linear network r0 → r1 → ... → r(n-1).
func buildChain(b *testing.B, n int) *core.Graph[string] {
	b.Helper()
	g := core.NewGraph[string]()
	for i := 0; i < n; i++ {
		if _, err := g.AddNode(fmt.Sprintf("r%d", i), Rate30); err != nil {
			b.Fatal(err)
		}
	}
	for i := 1; i < n; i++ {
		if err := g.AddEdge(fmt.Sprintf("r%d", i-1), fmt.Sprintf("r%d", i), Weight10); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

func BenchmarkAddNode(b *testing.B) {
	names := make([]string, b.N)
	for i := range names {
		names[i] = fmt.Sprintf("r%d", i)
	}
	g := core.NewGraph[string]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddNode(names[i], Rate30)
	}
}

func BenchmarkTopologicalOrder(b *testing.B) {
	g := buildChain(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.TopologicalOrder(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUpstream(b *testing.B) {
	g := buildChain(b, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Upstream("r999"); err != nil {
			b.Fatal(err)
		}
	}
}
