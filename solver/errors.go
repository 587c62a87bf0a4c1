// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularSystem is matched by every *SingularSystemError.
	ErrSingularSystem = errors.New("solver: singular system")

	// ErrBadTarget indicates a target rate that is negative, NaN or ±Inf.
	ErrBadTarget = errors.New("solver: target rate must be finite and non-negative")

	// ErrNilGraph indicates a nil *core.Graph was passed to the solver.
	ErrNilGraph = errors.New("solver: nil graph")

	// ErrBadCacheSize indicates a non-positive Planner cache size.
	ErrBadCacheSize = errors.New("solver: cache size must be > 0")
)

// Operation tags for solverErrorf.
const (
	opEncode  = "Encode"
	opSolve   = "Solve"
	opPlanner = "Planner"
)

// solverErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func solverErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// SingularSystemError reports that the coefficient matrix of a network is
// not invertible, so no unique unit count exists for the given targets.
//
// Typical causes: a resource with zero rate that nothing pins, or consumption
// cycles whose weights exactly cancel production.
//
// errors.Is(err, ErrSingularSystem) and errors.Is(err, matrix.ErrSingular)
// both hold.
type SingularSystemError[R comparable] struct {
	// Size is the number of unknowns (resources) in the system.
	Size int

	// Column is the elimination step that failed, or -1 when the
	// factorization succeeded but the solution overflowed.
	Column int

	// Resource is the resource owning Column. Zero value when Column is -1.
	Resource R

	// Err is the underlying matrix error.
	Err error
}

// Error implements error.
func (e *SingularSystemError[R]) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("%v (n=%d): %v", ErrSingularSystem, e.Size, e.Err)
	}

	return fmt.Sprintf("%v (n=%d): no usable pivot at resource %v: %v", ErrSingularSystem, e.Size, e.Resource, e.Err)
}

// Unwrap exposes both ErrSingularSystem and the matrix cause.
func (e *SingularSystemError[R]) Unwrap() []error {
	return []error{ErrSingularSystem, e.Err}
}
