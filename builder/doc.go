// Package builder generates synthetic production networks for tests,
// benchmarks and demos, in the same functional-options style as core.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:   a function that mutates builderConfig before use.
//     – builderConfig:   holds RNG, ID scheme, rate and weight policies.
//   - Resource-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefixed decimals ("r0","r1",…).
//   - Value policies (ValueFn implementations), used for node rates and
//     edge weights:
//     – ConstantFn:  fixed value.
//     – UniformFn:   uniform ∼U[min,max] drawn from the configured RNG.
//   - Topologies (Constructor factories):
//     – Chain:     r0 → r1 → … → r(n-1).
//     – Cycle:     Chain closed by r(n-1) → r0.
//     – Assembly:  one final product fed by n-1 raw inputs.
//     – Layered:   a random DAG; each node consumes fanIn resources
//     of the previous layer.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical
//     networks, including node handles and edge order.
//   - Composition: constructors reuse a resource already registered by an
//     earlier constructor instead of failing, so topologies can share nodes.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid build parameters return sentinel errors.
//
// With the defaults (rate 2, weight 1) every topology above yields an
// invertible system; ConstantFn(1) rates on a Cycle give the classic
// singular fixture.
package builder
