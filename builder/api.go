// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvltrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, respect the core
// graph mode flags and return sentinel errors instead of panicking.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Parse reads a topology spec of the form "name:args" and returns the
// matching Constructor:
//
//	path:N  cycle:N  star:N  wheel:N  complete:N  grid:RxC  random:N:P
//
// Size validation is left to the Constructor itself.
func Parse(spec string) (Constructor, error) {
	name, args, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok || args == "" {
		return nil, fmt.Errorf("%w: %q (want name:args)", ErrBadSpec, spec)
	}

	switch strings.ToLower(name) {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := strconv.Atoi(args)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadSpec, spec, err)
		}
		return map[string]func(int) Constructor{
			"path": Path, "cycle": Cycle, "star": Star, "wheel": Wheel, "complete": Complete,
		}[strings.ToLower(name)](n), nil

	case "grid":
		r, c, ok := strings.Cut(args, "x")
		rows, err1 := strconv.Atoi(r)
		cols, err2 := strconv.Atoi(c)
		if !ok || err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q (want grid:RxC)", ErrBadSpec, spec)
		}
		return Grid(rows, cols), nil

	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		n, err1 := strconv.Atoi(ns)
		p, err2 := strconv.ParseFloat(ps, 64)
		if !ok || err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%w: %q (want random:N:P)", ErrBadSpec, spec)
		}
		return RandomSparse(n, p), nil

	default:
		return nil, fmt.Errorf("%w: unknown topology %q", ErrBadSpec, name)
	}
}
