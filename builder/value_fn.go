// SPDX-License-Identifier: MIT
// Package: builder
//
// value_fn.go - draw policies for node rates and edge weights.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// DefaultRate is the per-unit output rate of generated nodes.
	DefaultRate float64 = 2

	// DefaultEdgeWeight is the consumption weight of generated edges.
	DefaultEdgeWeight float64 = 1
)

// ValueFn draws one rate or weight. rng is nil when no RNG is configured.
type ValueFn func(rng *rand.Rand) float64

// ConstantFn always returns value. Panics if value is negative or not finite.
// Zero is allowed for rates (singular fixtures); core rejects zero weights.
func ConstantFn(value float64) ValueFn {
	if !finite(value) || value < 0 {
		panic(fmt.Sprintf("ConstantFn: value must be finite and ≥ 0, got %g", value))
	}

	return func(*rand.Rand) float64 { return value }
}

// UniformFn draws from U[min,max]. Without an RNG it returns min, so that
// deterministic constructors stay deterministic.
// Panics unless 0 ≤ min ≤ max and both are finite.
func UniformFn(min, max float64) ValueFn {
	if !finite(min) || !finite(max) || min < 0 || max < min {
		panic(fmt.Sprintf("UniformFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
