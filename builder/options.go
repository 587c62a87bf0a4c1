// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for BuildNetwork.
// Option constructors validate their argument and panic on programmer error.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets how indices become resource names.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand attaches a caller-owned RNG.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRateFn sets the per-node output rate policy.
func WithRateFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}

	return func(c *builderConfig) { c.rateFn = fn }
}

// WithWeightFn sets the per-edge consumption weight policy.
func WithWeightFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}
