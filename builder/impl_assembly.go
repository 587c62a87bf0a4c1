// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_assembly.go - a single product assembled from raw inputs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/prodnet/core"
)

const (
	methodAssembly   = "Assembly"
	minAssemblyNodes = 2
)

// Assembly builds a star: the product idFn(0) consumes every raw input
// idFn(1)..idFn(n-1).
//
// Emission order: product, inputs by index, then edges input→product.
// Complexity: O(n).
func Assembly(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minAssemblyNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodAssembly, n, minAssemblyNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := ensureNode(g, cfg, methodAssembly, cfg.idFn(i)); err != nil {
				return err
			}
		}
		product := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodAssembly, cfg.idFn(i), product); err != nil {
				return err
			}
		}

		return nil
	}
}
