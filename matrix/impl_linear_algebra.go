// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels used by the requirement solver.
//
// Purpose:
//   - Factorize a square system once (PA = LU, partial pivoting) and solve it
//     for any number of right-hand sides.
//   - Provide MatVec and ResidualNorm for verifying solutions.
//
// Notes:
//   - All kernels use central validators and return plain sentinels wrapped
//     via matrixErrorf at the facade.
//   - Loop orders are fixed, so results are bit-for-bit reproducible.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFactorize = "Factorize"
	opSolve     = "Solve"
	opMatVec    = "MatVec"
	opResidual  = "ResidualNorm"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU is the result of factorizing a square matrix A as P·A = L·U.
//
// L (unit lower triangular) and U (upper triangular) share one row-major
// buffer: entries strictly below the diagonal belong to L, the rest to U.
// piv[i] is the row of A that ended up in row i.
//
// An *LU is immutable after Factorize and safe for concurrent Solve calls.
type LU struct {
	n    int       // system size
	lu   []float64 // packed L\U, row-major n×n
	piv  []int     // row permutation
	sign float64   // permutation parity (+1 / -1), used by Det
	eps  float64   // relative tolerance the factorization was built with
}

// Factorize computes P·A = L·U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate A is non-nil and square; copy it into a flat buffer
//     (fast path for *Dense), rejecting non-finite entries.
//   - Stage 2: Record s_i = max_j |A[i,j]| for every row. For each column k
//     pick the row r ≥ k with the largest |a[r,k]|/s_r (scaled partial
//     pivoting), swap it into place, then eliminate below the pivot.
//   - Stage 3: A pivot with |p| <= eps·s_r stops elimination with a
//     *PivotError (unwraps to ErrSingular).
//
// Behavior highlights:
//   - The threshold is relative to each row, so multiplying any row of A by
//     a non-zero constant never changes the decision. Rows of very different
//     magnitude (rates 1e7 and 1e-6) factorize like rows of equal magnitude.
//   - An all-zero matrix is singular at column 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (validators).
//   - ErrNaNInf for a non-finite entry.
//   - *PivotError / ErrSingular for a (numerically) singular matrix.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(a Matrix, opts ...Option) (*LU, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}
	o := gatherOptions(opts...)
	n := a.Rows()

	buf, err := flatten(a)
	if err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}

	f := &LU{
		n:    n,
		lu:   buf,
		piv:  make([]int, n),
		sign: 1,
		eps:  o.eps,
	}
	for i := range f.piv {
		f.piv[i] = i
	}

	// Row scales for the relative pivot test, taken from A and carried
	// through row swaps. A zero row has scale 0 and never yields a pivot.
	scale := make([]float64, n)
	var i, j, k, p int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v = math.Abs(buf[i*n+j]); v > scale[i] {
				scale[i] = v
			}
		}
	}

	var best, ratio, pivot, factor float64
	for k = 0; k < n; k++ {
		// Stage 2: choose the row whose candidate is largest relative to its scale.
		p, best = k, scaledAbs(buf[k*n+k], scale[k])
		for i = k + 1; i < n; i++ {
			if ratio = scaledAbs(buf[i*n+k], scale[i]); ratio > best {
				p, best = i, ratio
			}
		}
		if best <= o.eps {
			return nil, matrixErrorf(opFactorize, &PivotError{
				Column:    k,
				Pivot:     math.Abs(buf[p*n+k]),
				Threshold: o.eps * scale[p],
			})
		}
		if p != k {
			swapRows(buf, n, p, k)
			scale[p], scale[k] = scale[k], scale[p]
			f.piv[p], f.piv[k] = f.piv[k], f.piv[p]
			f.sign = -f.sign
		}

		// Eliminate below the pivot; multipliers are stored in place (L part).
		pivot = buf[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = buf[i*n+k] / pivot
			buf[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				buf[i*n+j] -= factor * buf[k*n+j]
			}
		}
	}

	return f, nil
}

// scaledAbs returns |v|/s, or 0 for a zero row.
func scaledAbs(v, s float64) float64 {
	if s == 0 {
		return 0
	}

	return math.Abs(v) / s
}

// flatten copies a into a fresh row-major buffer and checks every entry is finite.
func flatten(a Matrix) ([]float64, error) {
	rows, cols := a.Rows(), a.Cols()
	buf := make([]float64, rows*cols)
	if d, ok := a.(*Dense); ok {
		copy(buf, d.data)
	} else {
		var i, j int
		var v float64
		var err error
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				if v, err = a.At(i, j); err != nil {
					return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
				}
				buf[i*cols+j] = v
			}
		}
	}
	if err := ValidateFinite(buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// swapRows exchanges rows r1 and r2 of an n-column row-major buffer.
func swapRows(buf []float64, n, r1, r2 int) {
	a := buf[r1*n : (r1+1)*n]
	b := buf[r2*n : (r2+1)*n]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// Size returns n for an n×n factorization.
func (f *LU) Size() int { return f.n }

// Epsilon returns the relative pivot tolerance the factorization was built with.
func (f *LU) Epsilon() float64 { return f.eps }

// Solve returns x such that A·x = b, using the stored factorization.
//
// Implementation:
//   - Stage 1: Validate len(b) == n and b is finite.
//   - Stage 2: Forward substitution L·y = P·b (unit diagonal).
//   - Stage 3: Backward substitution U·x = y.
//   - Stage 4: Reject a non-finite x (overflow on an ill-conditioned system).
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for a bad right-hand side.
//   - ErrNaNInf if b or the result is not finite.
//
// Complexity:
//   - Time O(n²), Space O(n). b is not modified.
func (f *LU) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := f.n
	x := make([]float64, n)
	var i, j int
	var sum float64

	// Forward: y = L⁻¹·P·b, stored in x.
	for i = 0; i < n; i++ {
		sum = b[f.piv[i]]
		for j = 0; j < i; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum
	}

	// Backward: x = U⁻¹·y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for j = i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum / f.lu[i*n+i]
	}

	if err := ValidateFinite(x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Det returns the determinant of A, computed as sign(P)·∏U[i,i].
// Complexity: O(n).
func (f *LU) Det() float64 {
	det := f.sign
	for i := 0; i < f.n; i++ {
		det *= f.lu[i*f.n+i]
	}

	return det
}

// Pivots returns a copy of the row permutation: row i of P·A is row Pivots()[i] of A.
func (f *LU) Pivots() []int {
	out := make([]int, f.n)
	copy(out, f.piv)

	return out
}

// L returns the unit lower-triangular factor as a fresh Dense.
// Complexity: O(n²).
func (f *LU) L() *Dense {
	l, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		for j := 0; j < i; j++ {
			l.data[i*f.n+j] = f.lu[i*f.n+j]
		}
		l.data[i*f.n+i] = 1
	}

	return l
}

// U returns the upper-triangular factor as a fresh Dense.
// Complexity: O(n²).
func (f *LU) U() *Dense {
	u, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			u.data[i*f.n+j] = f.lu[i*f.n+j]
		}
	}

	return u
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix (nil m), ErrDimensionMismatch (len(x) != Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var i, j int
	var sum float64

	// Fast path: *Dense → direct slice indexing.
	if d, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			sum = ZeroSum
			base := i * cols
			for j = 0; j < cols; j++ {
				sum += d.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// ResidualNorm returns max_i |(A·x − b)_i|, the infinity norm of the residual.
//
// Errors:
//   - Those of MatVec, plus ErrDimensionMismatch when len(b) != Rows().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func ResidualNorm(a Matrix, x, b []float64) (float64, error) {
	ax, err := MatVec(a, x)
	if err != nil {
		return 0, matrixErrorf(opResidual, err)
	}
	if err = ValidateVecLen(b, len(ax)); err != nil {
		return 0, matrixErrorf(opResidual, err)
	}

	var worst float64
	for i := range ax {
		if d := math.Abs(ax[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
