package geometry

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvltrace/playback"
)

// TraceHull computes the convex hull of points with Andrew's monotone chain
// and records the sort, every push and every pop of both chains.
// Collinear points on the boundary are excluded from the hull.
//
// Complexity: O(n log n) for the sort, O(n) pushes and pops, each Event
// copying O(n) state.
func TraceHull(points []Point) (*playback.Operation[Snapshot], error) {
	// 1) Validate
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	// 2) Sort and de-duplicate
	pts := append([]Point{}, points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	uniq := pts[:1]
	for _, p := range pts[1:] {
		if p != uniq[len(uniq)-1] {
			uniq = append(uniq, p)
		}
	}

	h := &sweep{pts: uniq, index: -1, phase: PhaseSort, trace: playback.NewTrace[Snapshot](Kind)}
	h.trace.Emit(LineSort, h.snapshot(), "sort %d points by x, then y (%d distinct)", len(points), len(uniq))

	// 3) Chains
	if len(uniq) == 1 {
		h.hull = []Point{uniq[0]}
	} else {
		h.phase = PhaseLower
		for i := 0; i < len(uniq); i++ {
			h.add(&h.lower, i, "lower")
		}
		h.phase = PhaseUpper
		for i := len(uniq) - 1; i >= 0; i-- {
			h.add(&h.upper, i, "upper")
		}
		h.hull = append(append([]Point{}, h.lower[:len(h.lower)-1]...), h.upper[:len(h.upper)-1]...)
	}

	// 4) Join
	h.phase = PhaseDone
	h.index = -1
	h.trace.Emit(LineJoin, h.snapshot(), "join chains: hull has %d vertices", len(h.hull))
	res := Result{Hull: append([]Point{}, h.hull...), Area2: area2(h.hull)}
	summary := fmt.Sprintf("convex hull of %d points has %d vertices", len(uniq), len(h.hull))

	return h.trace.Operation(summary, res), nil
}

// Generator binds TraceHull to its input for a playback.Runner.
func Generator(points []Point) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return TraceHull(points)
	}
}

// sweep holds the mutable state of a single traced run.
type sweep struct {
	pts          []Point
	index        int
	phase        string
	lower, upper []Point
	hull         []Point
	trace        *playback.Trace[Snapshot]
}

// add pops non-left turns off chain, then pushes pts[i].
func (h *sweep) add(chain *[]Point, i int, name string) {
	h.index = i
	p := h.pts[i]
	for n := len(*chain); n >= 2 && Cross((*chain)[n-2], (*chain)[n-1], p) <= 0; n = len(*chain) {
		top := (*chain)[n-1]
		*chain = (*chain)[:n-1]
		h.trace.Emit(LinePop, h.snapshot(), "pop %s from %s chain: no left turn toward %s", top, name, p)
	}
	*chain = append(*chain, p)
	h.trace.Emit(LinePush, h.snapshot(), "push %s onto %s chain", p, name)
}

// snapshot deep-copies the current state.
func (h *sweep) snapshot() Snapshot {
	return Snapshot{
		Points: append([]Point{}, h.pts...),
		Index:  h.index,
		Phase:  h.phase,
		Lower:  append([]Point{}, h.lower...),
		Upper:  append([]Point{}, h.upper...),
		Hull:   append([]Point(nil), h.hull...),
	}
}

// area2 is the shoelace sum over a closed polygon.
func area2(poly []Point) int64 {
	var s int64
	for i := range poly {
		j := (i + 1) % len(poly)
		s += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	if s < 0 {
		return -s
	}

	return s
}
