// Package strmatch defines sentinel errors and snapshot types for the traced
// Knuth–Morris–Pratt string matcher.
package strmatch

import "errors"

// Kind tags every Event and Operation produced by this package.
const Kind = "kmp"

// Phases reported in Snapshot.Phase.
const (
	PhaseBuild = "build" // computing the failure function
	PhaseScan  = "scan"  // scanning the text
	PhaseDone  = "done"
)

// Procedure lines referenced by Event.Line.
const (
	LineInit     = 1 // pi[0] ← 0; k ← 0
	LineFallback = 2 // while k > 0 and p[k] ≠ x: k ← pi[k-1]
	LineExtend   = 3 // if p[k] = x: k ← k + 1
	LineSet      = 4 // pi[q] ← k
	LineMatch    = 5 // if j = m: report match; j ← pi[m-1]
	LineDone     = 6
)

// ErrEmptyPattern indicates an empty pattern after normalisation.
var ErrEmptyPattern = errors.New("strmatch: pattern is empty")

// Snapshot is the complete KMP state after one step. Indices count runes,
// not bytes.
type Snapshot struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
	Phase   string `json:"phase"`

	// Pi holds the failure function computed so far.
	Pi []int `json:"pi"`

	// I is the text position being compared, -1 outside the scan.
	I int `json:"i"`

	// J is the pattern position (k while building).
	J int `json:"j"`

	// Matches lists start offsets found so far.
	Matches []int `json:"matches"`
}

// Result is attached to the Operation for the finalizer.
type Result struct {
	Pi      []int `json:"pi"`
	Matches []int `json:"matches"`
}
