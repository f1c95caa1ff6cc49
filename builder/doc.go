// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs for traces, tests
// and the command line.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves BuilderOptions into an immutable builderConfig and runs each
// Constructor in order. Constructors validate early and return sentinel
// errors; they never panic. Option constructors do panic on meaningless
// inputs (nil functions, inverted ranges), since those are programmer errors.
//
// Topologies: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
// Parse turns a short textual spec such as "path:5" or "grid:3x4" into the
// matching Constructor.
//
// Determinism: the same options, seed and constructor order always yield the
// same vertex IDs, edge order and weights.
package builder
