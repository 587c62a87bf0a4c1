// SPDX-License-Identifier: MIT
// Package matrix: public facades.
//
// Thin, fully-validated entry points over the kernels. Each facade wraps
// errors with its operation tag and never panics on user input.

package matrix

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Solve factorizes a and returns x with a·x = b. Use Factorize directly to
// reuse one factorization for several right-hand sides.
//
// Errors:
//   - Any error of Factorize (including ErrSingular) or (*LU).Solve.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := Factorize(a, opts...)
	if err != nil {
		return nil, err
	}

	return f.Solve(b)
}
