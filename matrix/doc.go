// Package matrix provides the dense linear algebra used to solve production
// networks: a row-major Dense matrix, shared validators, and an LU
// factorization with partial pivoting.
//
// The package provides:
//
//   - Dense: a bounds-checked, row-major float64 matrix with an optional
//     finite-only write policy.
//   - Factorize: PA = LU with scaled partial (row) pivoting and a pivot
//     tolerance relative to each row, so singular and numerically singular systems are reported
//     as ErrSingular instead of producing NaN/Inf.
//   - (*LU).Solve: forward/backward substitution for one right-hand side;
//     a factorization can be reused for many right-hand sides.
//   - MatVec and ResidualNorm for verifying solutions.
//
// Dense direct solving is O(n³) time and O(n²) memory, which is the right
// trade-off for production networks of a few hundred resources.
package matrix
