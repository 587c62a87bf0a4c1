package solver_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prodnet/core"
	"github.com/katalvlaran/prodnet/solver"
)

// ExampleSolve sizes a two-step smelting line.
func ExampleSolve() {
	g := core.NewGraph[string]()
	_, _ = g.AddNode("ore", 30)
	_, _ = g.AddNode("ingot", 30)
	_, _ = g.AddNode("plate", 20)
	_ = g.AddEdge("ore", "ingot", 30)
	_ = g.AddEdge("ingot", "plate", 30)

	sol, err := solver.Solve(g, solver.Targets[string]{"plate": 30})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, req := range sol.Required() {
		fmt.Printf("%-6s %.2f units → %d\n", req.Resource, req.Units, req.Factories)
	}
	// Output:
	// ore    1.50 units → 2
	// ingot  1.50 units → 2
	// plate  1.50 units → 2
}

// ExampleSingularSystemError shows the typed failure of a singular network.
func ExampleSingularSystemError() {
	g := core.NewGraph[string]()
	_, _ = g.AddNode("ore", 30)
	_, _ = g.AddNode("broken", 0)

	_, err := solver.Solve(g, solver.Targets[string]{"ore": 30})

	var se *solver.SingularSystemError[string]
	if errors.As(err, &se) {
		fmt.Println("singular at", se.Resource, "of", se.Size)
	}
	// Output:
	// singular at broken of 2
}
