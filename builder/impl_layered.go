// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_layered.go - random layered DAGs.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/prodnet/core"
)

const methodLayered = "Layered"

// Layered builds a DAG of layers×width resources. Node j of layer k gets
// index k*width+j. Every node of layer k ≥ 1 consumes fanIn distinct
// resources of layer k-1; layer 0 is raw material and the last layer holds
// final products.
//
// When fanIn == width every pair between adjacent layers is linked and no
// RNG is needed; otherwise the inputs are drawn with cfg.rng and emitted in
// ascending index order.
//
// Errors:
//   - ErrTooFewVertices: layers < 1 or width < 1.
//   - ErrBadSize: fanIn < 1 or fanIn > width (only checked when layers > 1).
//   - ErrNeedRandSource: fanIn < width without WithSeed/WithRand.
//
// Complexity: O(layers·width·width) for the draws, O(layers·width·fanIn) edges.
func Layered(layers, width, fanIn int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if layers < 1 || width < 1 {
			return fmt.Errorf("%s: layers=%d width=%d: %w", methodLayered, layers, width, ErrTooFewVertices)
		}
		if layers > 1 && (fanIn < 1 || fanIn > width) {
			return fmt.Errorf("%s: fanIn=%d not in [1,%d]: %w", methodLayered, fanIn, width, ErrBadSize)
		}
		if layers > 1 && fanIn < width && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodLayered, ErrNeedRandSource)
		}

		for i := 0; i < layers*width; i++ {
			if err := ensureNode(g, cfg, methodLayered, cfg.idFn(i)); err != nil {
				return err
			}
		}

		picks := make([]int, width)
		for k := 1; k < layers; k++ {
			for j := 0; j < width; j++ {
				if fanIn == width {
					for p := range picks {
						picks[p] = p
					}
				} else {
					copy(picks, cfg.rng.Perm(width))
				}
				chosen := picks[:fanIn]
				sort.Ints(chosen)

				to := cfg.idFn(k*width + j)
				for _, p := range chosen {
					if err := link(g, cfg, methodLayered, cfg.idFn((k-1)*width+p), to); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
