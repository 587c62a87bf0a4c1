// Package solver computes how many production units of every resource a
// production network needs to sustain a set of target output rates.
//
// Each resource i contributes one conservation row
//
//	rate_i·x_i − Σ_{i→j} w_{i→j}·x_j = target_i
//
// (output of i minus what downstream consumers j eat must equal the external
// demand for i). The rows form a square system A·x = b with
//
//	A[i][i] = rate_i,   A[s][t] = −w for every edge s→t,   b[i] = target_i,
//
// which is factorized with matrix.Factorize (LU, partial pivoting) and solved.
// x_i is the fractional number of production units of resource i; a caller
// that needs whole machines rounds up (see Solution.Factories).
//
// Entry points:
//
//   - Encode: graph + targets → *System (for inspection and tests).
//   - Solve: one-shot encode → factorize → solve → decode.
//   - Planner: caches the factorization per graph revision, so many target
//     vectors against one network pay the O(n³) cost once.
//
// A non-invertible A is reported as *SingularSystemError; no call panics on
// user input and no returned Solution contains NaN or ±Inf.
//
// Concurrency: Solve and Encode only read the graph. Any number of solves
// may run concurrently once the graph is fully built.
package solver
