// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for network constructors.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates an inconsistent size parameter (e.g. fanIn > width).
var ErrBadSize = errors.New("builder: invalid size")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor was passed to BuildNetwork.
var ErrConstructFailed = errors.New("builder: construction failed")
