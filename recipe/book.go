// SPDX-License-Identifier: MIT

package recipe

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/prodnet/core"
	"github.com/katalvlaran/prodnet/solver"
)

var (
	// ErrUnsupportedFormat indicates a file extension with no decoder.
	ErrUnsupportedFormat = errors.New("recipe: unsupported file format")

	// ErrDuplicateTarget indicates the same resource targeted twice in one file.
	ErrDuplicateTarget = errors.New("recipe: duplicate target")

	// ErrMissingVariable indicates a variable with no default and no value supplied.
	ErrMissingVariable = errors.New("recipe: variable has no value")

	// ErrInvalidRecipe indicates a structurally invalid document.
	ErrInvalidRecipe = errors.New("recipe: invalid recipe")
)

// Input is one consumed resource of a recipe.
type Input struct {
	Resource string
	Rate     float64
}

// Resource is one production line: its output rate per unit and its inputs.
type Resource struct {
	Name   string
	Rate   float64
	Inputs []Input
}

// Target is a requested net output rate.
type Target struct {
	Resource string
	Rate     float64
}

// Book is a decoded recipe file.
type Book struct {
	// Source is the file name the book was parsed from.
	Source    string
	Resources []Resource
	Targets   []Target
}

// Graph builds the production network: every resource is registered first
// (declaration order), then every input becomes an edge input→resource.
func (b *Book) Graph(opts ...core.GraphOption) (*core.Graph[string], error) {
	g := core.NewGraph[string](opts...)
	for _, r := range b.Resources {
		if _, err := g.AddNode(r.Name, r.Rate); err != nil {
			return nil, fmt.Errorf("%s: resource %q: %w", b.Source, r.Name, err)
		}
	}
	for _, r := range b.Resources {
		for _, in := range r.Inputs {
			if err := g.AddEdge(in.Resource, r.Name, in.Rate); err != nil {
				return nil, fmt.Errorf("%s: resource %q: input %q: %w", b.Source, r.Name, in.Resource, err)
			}
		}
	}

	return g, nil
}

// TargetMap returns the file's targets as solver targets.
func (b *Book) TargetMap() solver.Targets[string] {
	out := make(solver.Targets[string], len(b.Targets))
	for _, t := range b.Targets {
		out[t.Resource] = t.Rate
	}

	return out
}

// addTarget appends t, rejecting a second target for the same resource.
func (b *Book) addTarget(t Target) error {
	for _, prev := range b.Targets {
		if prev.Resource == t.Resource {
			return fmt.Errorf("%s: %q: %w", b.Source, t.Resource, ErrDuplicateTarget)
		}
	}
	b.Targets = append(b.Targets, t)

	return nil
}

// MergeTargets returns base with every entry of overrides applied in order;
// later maps win. None of the inputs is modified.
func MergeTargets(base solver.Targets[string], overrides ...solver.Targets[string]) solver.Targets[string] {
	out := make(solver.Targets[string], len(base))
	for r, v := range base {
		out[r] = v
	}
	for _, o := range overrides {
		for r, v := range o {
			out[r] = v
		}
	}

	return out
}
