// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - closed production loops.

package builder

import (
	"fmt"

	"github.com/katalvlaran/prodnet/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle builds r0 → r1 → … → r(n-1) → r0.
//
// With uniform rate ρ and weight w the system matrix is ρI - wP for the
// cyclic permutation P, which is singular exactly when ρ = w.
//
// Emission order: nodes by index, then edges (i→(i+1) mod n) by ascending i.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := ensureNode(g, cfg, methodCycle, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
