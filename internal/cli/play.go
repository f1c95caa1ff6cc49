package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvltrace/builder"
	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/internal/input"
	"github.com/katalvlaran/lvltrace/logging"
	"github.com/katalvlaran/lvltrace/playback"
	"github.com/katalvlaran/lvltrace/store"
)

// Playback modes accepted by --mode.
const (
	modeStep    = "step"    // reveal Events one Step at a time
	modeAnimate = "animate" // reveal Events on a timer
	modeInstant = "instant" // reveal only the final Event
	modeFinish  = "finish"  // reveal the first Event, then jump to the end
)

var validModes = []string{modeStep, modeAnimate, modeInstant, modeFinish}

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Input   string
	Builder string
	Mode    string
	Delay   time.Duration
	Steps   int
	DB      string
	Source  string
	Target  string
	Root    string
	Seed    int64
}

// session is everything one algorithm needs to build its Generator and play it.
type session struct {
	ctx     context.Context
	opts    *PlayOptions
	doc     *input.Document // nil with --builder
	graph   *core.Graph     // nil for non-graph algorithms
	source  string
	target  string
	root    string
	out     *eventWriter
	log     logging.Logger
	archive *store.Store // nil without --db
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play [algorithm]",
		Short: "Play an algorithm trace",
		Long: `Run an algorithm and play back its trace.

The input is either a YAML document (--input), which names the algorithm
itself, or a generated graph (--builder) for the graph algorithms.

Modes:
  step     reveal every event in order (or the first --steps, then the last)
  animate  reveal events on a timer of --delay
  instant  reveal only the final event
  finish   reveal the first event, then jump to the final one

Examples:
  lvltrace play --input route.yaml
  lvltrace play dijkstra --builder grid:3x3 --seed 7 --target I
  lvltrace play kruskal --builder complete:5 --mode instant --db traces.db
  lvltrace play max-flow --builder grid:2x3 --seed 3`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(opts, cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "YAML input document")
	cmd.Flags().StringVarP(&opts.Builder, "builder", "b", "", "generated graph: path:N, cycle:N, star:N, wheel:N, complete:N, grid:RxC, random:N:P")
	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", modeStep, "playback mode (step|animate|instant|finish)")
	cmd.Flags().DurationVar(&opts.Delay, "delay", 200*time.Millisecond, "delay between animated events")
	cmd.Flags().IntVar(&opts.Steps, "steps", 0, "step mode: events to reveal before finishing (0 = all)")
	cmd.Flags().StringVar(&opts.DB, "db", "", "archive the finished trace in this SQLite database")
	cmd.Flags().StringVar(&opts.Source, "source", "", "source vertex (overrides the document)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "target vertex (overrides the document)")
	cmd.Flags().StringVar(&opts.Root, "root", "", "Prim root vertex (overrides the document)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "builder seed; non-zero draws random weights in [1,9]")

	return cmd
}

func runPlay(opts *PlayOptions, cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// 1) Flags
	if !slices.Contains(validModes, opts.Mode) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid mode %q: must be one of %v", opts.Mode, validModes))
	}
	if opts.Steps < 0 {
		return NewExitError(ExitCommandError, "--steps must be non-negative")
	}
	if (opts.Input == "") == (opts.Builder == "") {
		return NewExitError(ExitCommandError, "exactly one of --input or --builder is required")
	}

	s := &session{
		ctx:  ctx,
		opts: opts,
		out:  &eventWriter{w: cmd.OutOrStdout(), format: opts.Format},
		log:  opts.newLogger(cmd.ErrOrStderr()),
	}

	// 2) Algorithm and document
	var name string
	if len(args) == 1 {
		name = args[0]
	}
	if opts.Input != "" {
		doc, err := input.Load(opts.Input)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load input", err)
		}
		if name != "" && name != doc.Algorithm {
			return NewExitError(ExitCommandError, fmt.Sprintf("algorithm %q does not match document algorithm %q", name, doc.Algorithm))
		}
		name = doc.Algorithm
		s.doc = doc
	}
	if name == "" {
		return NewExitError(ExitCommandError, "algorithm name is required with --builder")
	}
	algo, ok := lookup(name)
	if !ok {
		return NewExitError(ExitCommandError, fmt.Sprintf("unknown algorithm %q (see 'lvltrace algorithms')", name))
	}

	// 3) Graph
	switch {
	case algo.graph == noGraph && s.doc == nil:
		return NewExitError(ExitCommandError, fmt.Sprintf("%s needs an --input document", name))
	case algo.graph != noGraph && s.doc != nil:
		g, err := s.doc.BuildGraph()
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to build graph", err)
		}
		s.graph = g
	case algo.graph != noGraph:
		g, err := buildGraph(algo.graph, opts)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to build graph", err)
		}
		s.graph = g
	}
	s.resolveVertices()

	// 4) Archive
	if opts.DB != "" {
		st, err := store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open database", err)
		}
		defer st.Close()
		s.archive = st
	}

	s.log.Debug("playing", "algorithm", name, "mode", opts.Mode)

	return algo.play(s)
}

// resolveVertices fills source, target and root: flags win over the
// document, and a generated graph defaults source and root to its first vertex.
func (s *session) resolveVertices() {
	var first string
	if s.doc == nil && s.graph != nil {
		if vs := s.graph.Vertices(); len(vs) > 0 {
			first = vs[0]
		}
	}
	var docSource, docTarget, docRoot string
	if s.doc != nil {
		docSource, docTarget, docRoot = s.doc.Source, s.doc.Target, s.doc.Root
	}

	s.source = firstNonEmpty(s.opts.Source, docSource, first)
	s.target = firstNonEmpty(s.opts.Target, docTarget)
	s.root = firstNonEmpty(s.opts.Root, docRoot, first)
}

// sink is the flow sink: the target, or the last vertex of a generated graph.
func (s *session) sink() string {
	if s.target != "" || s.doc != nil || s.graph == nil {
		return s.target
	}
	vs := s.graph.Vertices()
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}

// buildGraph generates the --builder topology in the shape kind asks for.
// Vertices are named A, B, C, …; weights are 1 unless --seed is set.
func buildGraph(kind graphKind, opts *PlayOptions) (*core.Graph, error) {
	cons, err := builder.Parse(opts.Builder)
	if err != nil {
		return nil, err
	}

	gopts := []core.GraphOption{core.WithDirected(kind == directedGraph || kind == flowNetwork)}
	if kind == weightedGraph || kind == flowNetwork {
		gopts = append(gopts, core.WithWeighted())
	}
	bopts := []builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)}
	if opts.Seed != 0 {
		bopts = append(bopts, builder.WithSeed(opts.Seed), builder.WithWeightRange(1, 9))
	}

	return builder.BuildGraph(gopts, bopts, cons)
}

// play drives gen through a Runner in the requested mode, printing every
// revealed Event and archiving the finished Operation when --db is set.
func play[S any](s *session, gen playback.Generator[S]) error {
	sink := sinkFor[S](s.out)
	var rec *store.Recorder[S]
	if s.archive != nil {
		rec = store.NewRecorder[S](s.ctx, s.archive, sink, store.WithRecorderLogger(s.log))
		sink = rec
	}

	var (
		prepared bool
		prepErr  error
	)
	r := playback.NewRunner(gen, sink,
		playback.WithLogger(s.log),
		playback.WithFixedDelay(s.opts.Delay),
		playback.WithOnPrepared(func(playback.Info) { prepared = true }),
		playback.WithOnNothingPrepared(func(err error) { prepErr = err }),
	)

	switch s.opts.Mode {
	case modeInstant:
		r.RunInstant()
	case modeAnimate:
		<-r.RunAnimated(s.ctx)
		r.EnsureNoPending()
	case modeFinish:
		r.Step()
		r.EnsureNoPending()
	default:
		for i := 0; s.opts.Steps == 0 || i < s.opts.Steps; i++ {
			r.Step()
			if !r.HasPendingOperation() {
				break
			}
		}
		r.EnsureNoPending()
	}

	if !prepared {
		return WrapExitError(ExitFailure, "no trace produced", prepErr)
	}
	if s.out.err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", s.out.err)
	}
	if rec != nil && rec.Err() != nil {
		return WrapExitError(ExitCommandError, "failed to archive trace", rec.Err())
	}

	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
