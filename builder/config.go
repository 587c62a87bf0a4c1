// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is resolved once per BuildNetwork call and passed by value
// to every constructor.
type builderConfig struct {
	idFn     IDFn       // index → resource name
	rng      *rand.Rand // nil unless WithSeed/WithRand
	rateFn   ValueFn    // per-node output rate
	weightFn ValueFn    // per-edge consumption weight
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rateFn:   ConstantFn(DefaultRate),
		weightFn: ConstantFn(DefaultEdgeWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c builderConfig) rate() float64   { return c.rateFn(c.rng) }
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }
