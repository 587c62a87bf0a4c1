// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_chain.go - linear production chains.

package builder

import (
	"fmt"

	"github.com/katalvlaran/prodnet/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain builds r0 → r1 → … → r(n-1): every resource consumes its predecessor,
// so r(n-1) is the final product and r0 the only raw material.
//
// Emission order: nodes by index, then edges (i→i+1) by ascending i.
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := ensureNode(g, cfg, methodChain, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodChain, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
