// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines the package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No algorithm panics on user-triggered
// error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, err) at the
// facade; callers still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a right-hand side whose length differs from the system size.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when elimination meets a pivot whose magnitude
	// is at or below the relative pivot tolerance.
	ErrSingular = errors.New("matrix: singular matrix")
)

// PivotError reports where LU elimination broke down. It unwraps to
// ErrSingular, so errors.Is(err, ErrSingular) holds for every PivotError.
type PivotError struct {
	// Column is the elimination step (0-based column) with no usable pivot.
	Column int

	// Pivot is the magnitude of the best candidate found in that column.
	Pivot float64

	// Threshold is eps times the scale of the candidate's row.
	Threshold float64
}

// Error implements error.
func (e *PivotError) Error() string {
	return fmt.Sprintf("%v: no pivot in column %d (|p|=%g <= %g)", ErrSingular, e.Column, e.Pivot, e.Threshold)
}

// Unwrap exposes ErrSingular to errors.Is.
func (e *PivotError) Unwrap() error { return ErrSingular }
