package strmatch

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/lvltrace/playback"
)

// Trace finds every occurrence of pattern in text with Knuth–Morris–Pratt,
// recording the failure-function build and each comparison of the scan.
// Both strings are NFC-normalised and compared rune by rune; overlapping
// matches are reported.
//
// Complexity: O(n + m) comparisons, each Event copying O(m) state.
func Trace(text, pattern string) (*playback.Operation[Snapshot], error) {
	// 1) Normalise
	text = norm.NFC.String(text)
	pattern = norm.NFC.String(pattern)
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	k := &kmp{
		text:    text,
		pattern: pattern,
		t:       []rune(text),
		p:       []rune(pattern),
		i:       -1,
		trace:   playback.NewTrace[Snapshot](Kind),
	}

	// 2) Failure function, then scan
	k.build()
	k.scan()

	// 3) Seal
	k.phase = PhaseDone
	k.i = -1
	k.trace.Emit(LineDone, k.snapshot(), "done: %d matches", len(k.matches))
	res := Result{Pi: append([]int{}, k.pi...), Matches: append([]int{}, k.matches...)}
	summary := fmt.Sprintf("%q occurs %d times in %d characters", pattern, len(k.matches), len(k.t))

	return k.trace.Operation(summary, res), nil
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(text, pattern string) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(text, pattern)
	}
}

// kmp holds the mutable state of a single traced run.
type kmp struct {
	text, pattern string
	t, p          []rune
	pi            []int
	phase         string
	i, j          int
	matches       []int
	trace         *playback.Trace[Snapshot]
}

// build computes pi[q], the length of the longest proper prefix of p[:q+1]
// that is also its suffix.
func (k *kmp) build() {
	k.phase = PhaseBuild
	k.pi = []int{0}
	k.j = 0
	k.trace.Emit(LineInit, k.snapshot(), "pi[0] = 0")

	for q := 1; q < len(k.p); q++ {
		for k.j > 0 && k.p[k.j] != k.p[q] {
			prev := k.j
			k.j = k.pi[k.j-1]
			k.trace.Emit(LineFallback, k.snapshot(), "p[%d]=%q ≠ p[%d]=%q: fall back to k = pi[%d] = %d",
				prev, string(k.p[prev]), q, string(k.p[q]), prev-1, k.j)
		}
		if k.p[k.j] == k.p[q] {
			k.j++
			k.pi = append(k.pi, k.j)
			k.trace.Emit(LineExtend, k.snapshot(), "p[%d] = p[%d] = %q: pi[%d] = %d", k.j-1, q, string(k.p[q]), q, k.j)
			continue
		}
		k.pi = append(k.pi, 0)
		k.trace.Emit(LineSet, k.snapshot(), "pi[%d] = 0", q)
	}
}

// scan walks the text once, never moving i backwards.
func (k *kmp) scan() {
	k.phase = PhaseScan
	k.j = 0
	m := len(k.p)

	for i, r := range k.t {
		k.i = i
		for k.j > 0 && k.p[k.j] != r {
			prev := k.j
			k.j = k.pi[k.j-1]
			k.trace.Emit(LineFallback, k.snapshot(), "t[%d]=%q ≠ p[%d]=%q: shift to j = %d",
				i, string(r), prev, string(k.p[prev]), k.j)
		}
		if k.p[k.j] != r {
			k.trace.Emit(LineSet, k.snapshot(), "t[%d]=%q ≠ p[0]: advance", i, string(r))
			continue
		}
		k.j++
		k.trace.Emit(LineExtend, k.snapshot(), "t[%d] = p[%d] = %q", i, k.j-1, string(r))
		if k.j == m {
			start := i - m + 1
			k.matches = append(k.matches, start)
			k.j = k.pi[m-1]
			k.trace.Emit(LineMatch, k.snapshot(), "match at %d; continue with j = %d", start, k.j)
		}
	}
}

// snapshot deep-copies the current state.
func (k *kmp) snapshot() Snapshot {
	return Snapshot{
		Text:    k.text,
		Pattern: k.pattern,
		Phase:   k.phase,
		Pi:      append([]int{}, k.pi...),
		I:       k.i,
		J:       k.j,
		Matches: append([]int{}, k.matches...),
	}
}
