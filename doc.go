// Package prodnet is an in-memory toolkit for sizing production networks:
// given what every production line outputs and consumes, it tells you how
// many lines of each kind you need to sustain a set of target output rates.
//
// 🚀 What is prodnet?
//
//	A thread-safe, generic library that brings together:
//		• Core primitives: resources with per-unit rates, consumption edges
//		• Linear algebra: dense matrices, LU factorization with partial pivoting
//		• Requirement solver: graph → A·x = b → unit counts per resource
//		• Recipes: HCL and YAML network definitions
//		• Graphviz export of any network
//
// ✨ Why choose prodnet?
//
//   - Any comparable type can identify a resource; no hardcoded item sets
//   - Singular networks are reported as typed errors, never NaN or a panic
//   - Duplicate inputs are rejected or summed, never silently overwritten
//   - Factorizations are cached per graph revision for repeated solves
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        Graph, Node, Edge types & thread-safe primitives, traversals
//	matrix/      Dense matrix, validators, LU kernels
//	solver/      Encode, Solve, Planner, SingularSystemError
//	builder/     seeded synthetic networks for tests and benchmarks
//	recipe/      HCL/YAML loaders producing graphs and targets
//	dot/         Graphviz DOT writer
//	cmd/prodnet  the command-line tool
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddNode("iron_ore", 30)
//	g.AddNode("iron_ingot", 30)
//	g.AddEdge("iron_ore", "iron_ingot", 30)
//
//	sol, err := solver.Solve(g, solver.Targets[string]{"iron_ingot": 60})
//	// sol.Units("iron_ingot") == 2, sol.Units("iron_ore") == 2
package prodnet

// Version is the release of the library and the prodnet tool.
const Version = "0.3.0"
