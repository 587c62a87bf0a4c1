// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point and topology factories.
//
// Design contract:
//   - One orchestrator: BuildNetwork(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   - Constructors validate parameters first and return sentinel errors.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical networks.
//
// AI-Hints:
//   - Compose constructors with distinct WithIDScheme prefixes via separate
//     BuildNetwork calls, or share nodes by reusing the same scheme.
//   - Use WithSeed(...) to freeze Layered and UniformFn draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/prodnet/core"
)

// Constructor applies a deterministic mutation to a production network
// using the resolved builderConfig.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildNetwork creates a core.Graph[string] with graph options gopts,
// resolves the builder configuration from bopts and applies all
// constructors in order. A constructor error is wrapped as
// "BuildNetwork: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the sum of the constructors.
func BuildNetwork(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}

// ensureNode registers id with a drawn rate unless it already exists.
// The rate is drawn only for new nodes, so reuse does not shift the RNG.
func ensureNode(g *core.Graph[string], cfg builderConfig, method, id string) error {
	if g.HasNode(id) {
		return nil
	}
	if _, err := g.AddNode(id, cfg.rate()); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}

	return nil
}

// link adds from→to with a drawn weight.
func link(g *core.Graph[string], cfg builderConfig, method, from, to string) error {
	w := cfg.weight()
	if err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, from, to, w, err)
	}

	return nil
}
