// Package segtree produces playback traces of a sum segment tree with lazy
// propagation.
//
// Trace builds the tree over an int64 array, then runs a batch of Query
// values: OpAdd adds a constant to a range, OpSum reports a range sum. Each
// visited node, covered or disjoint range, lazy push-down and combine is an
// Event whose Snapshot holds the full Tree and Lazy arrays, so a viewer can
// draw the tree at any point.
//
// Bounds are inclusive and zero-based. Invalid ranges and unknown ops are
// rejected before any Event is recorded (ErrBadRange, ErrUnknownOp).
package segtree
