// Package geometry defines the point model, sentinel errors and snapshot
// types for the traced convex hull.
package geometry

import (
	"errors"
	"fmt"
)

// Kind tags every Event and Operation produced by this package.
const Kind = "convex-hull"

// Chains reported in Snapshot.Phase.
const (
	PhaseSort  = "sort"
	PhaseLower = "lower"
	PhaseUpper = "upper"
	PhaseDone  = "done"
)

// Procedure lines referenced by Event.Line.
const (
	LineSort = 1 // sort points by (x, y); drop duplicates
	LinePop  = 2 // while |chain| ≥ 2 and cross(chain[-2], chain[-1], p) ≤ 0: pop
	LinePush = 3 // chain ← chain + p
	LineJoin = 4 // hull ← lower[:-1] + upper[:-1]
)

// ErrNoPoints indicates an empty point set.
var ErrNoPoints = errors.New("geometry: no points")

// Point is an integer lattice point.
type Point struct {
	X int64 `json:"x" yaml:"x"`
	Y int64 `json:"y" yaml:"y"`
}

// String renders p as (x,y).
func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Cross returns the z-component of (a-o)×(b-o): positive for a
// counter-clockwise turn o→a→b, negative for clockwise, zero if collinear.
func Cross(o, a, b Point) int64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Snapshot is the complete hull state after one step.
type Snapshot struct {
	// Points is the sorted, de-duplicated input.
	Points []Point `json:"points"`

	// Index is the position in Points being processed, -1 if none.
	Index int     `json:"index"`
	Phase string  `json:"phase"`
	Lower []Point `json:"lower"`
	Upper []Point `json:"upper"`

	// Hull is set once both chains are joined, counter-clockwise from the
	// lowest-leftmost point.
	Hull []Point `json:"hull,omitempty"`
}

// Result is attached to the Operation for the finalizer.
type Result struct {
	Hull []Point `json:"hull"`

	// Area2 is twice the enclosed area (an exact integer).
	Area2 int64 `json:"area2"`
}
