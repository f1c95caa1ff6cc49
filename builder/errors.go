// SPDX-License-Identifier: MIT
package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor run without WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSpec indicates a textual topology spec Parse cannot read.
var ErrBadSpec = errors.New("builder: invalid topology spec")
