package recipe_test

import (
	"fmt"

	"github.com/katalvlaran/prodnet/recipe"
	"github.com/katalvlaran/prodnet/solver"
)

func ExampleParseHCL() {
	src := []byte(`
variable "plates" { default = 20 }

resource "iron_ingot" { rate = 30 }

resource "iron_plate" {
  rate = 20
  input "iron_ingot" { rate = 30 }
}

target "iron_plate" { rate = var.plates }
`)
	book, err := recipe.ParseHCL(src, "plates.hcl", map[string]string{"plates": "40"})
	if err != nil {
		fmt.Println(err)
		return
	}
	g, _ := book.Graph()
	sol, _ := solver.Solve(g, book.TargetMap())
	for _, req := range sol.Required() {
		fmt.Println(req.Resource, req.Factories)
	}
	// Output:
	// iron_ingot 2
	// iron_plate 2
}
