package input

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvltrace/core"
	"github.com/katalvlaran/lvltrace/geometry"
	"github.com/katalvlaran/lvltrace/gridgraph"
	"github.com/katalvlaran/lvltrace/segtree"
	"github.com/katalvlaran/lvltrace/trie"
)

// Sentinel errors returned by Load and Parse.
var (
	// ErrRead indicates the document file could not be read.
	ErrRead = errors.New("input: read document")

	// ErrParse indicates malformed YAML or a field with the wrong Go type.
	ErrParse = errors.New("input: parse document")

	// ErrSchema indicates the document does not satisfy the schema.
	ErrSchema = errors.New("input: document does not match schema")

	// ErrNoGraph indicates a graph algorithm was given a document without a graph.
	ErrNoGraph = errors.New("input: document has no graph")
)

// Document is one decoded input file.
type Document struct {
	Algorithm string           `yaml:"algorithm"`
	Graph     *Graph           `yaml:"graph,omitempty"`
	Grid      *Grid            `yaml:"grid,omitempty"`
	Source    string           `yaml:"source,omitempty"`
	Target    string           `yaml:"target,omitempty"`
	Root      string           `yaml:"root,omitempty"`
	Array     []int64          `yaml:"array,omitempty"`
	Queries   []segtree.Query  `yaml:"queries,omitempty"`
	Words     []string         `yaml:"words,omitempty"`
	Commands  []trie.Command   `yaml:"commands,omitempty"`
	Text      string           `yaml:"text,omitempty"`
	Pattern   string           `yaml:"pattern,omitempty"`
	Points    []geometry.Point `yaml:"points,omitempty"`
}

// Graph describes a core.Graph by its vertices and edges.
// Vertices only need listing when they have no edges.
type Graph struct {
	Directed bool     `yaml:"directed,omitempty"`
	Weighted bool     `yaml:"weighted,omitempty"`
	Vertices []string `yaml:"vertices,omitempty"`
	Edges    []Edge   `yaml:"edges,omitempty"`
}

// Edge is one graph edge. Weight is ignored by unweighted graphs.
type Edge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight,omitempty"`
}

// Grid describes a graph as a map of cell values. Cells at or above
// Threshold (default 1) are vertices named "x,y".
type Grid struct {
	Cells     [][]int64 `yaml:"cells"`
	Diagonal  bool      `yaml:"diagonal,omitempty"`
	Weighted  bool      `yaml:"weighted,omitempty"`
	Threshold *int64    `yaml:"threshold,omitempty"`
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return Parse(data)
}

// Parse validates data against the schema and decodes it.
//
// Steps:
//  1. Decode into a generic map (ErrParse on malformed YAML or an empty document).
//  2. Validate the map against #Document (ErrSchema).
//  3. Decode strictly into Document, rejecting unknown fields (ErrParse).
func Parse(data []byte) (*Document, error) {
	// 1) Generic decode for the schema check.
	var generic map[string]any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(generic) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}

	// 2) Schema.
	if err := Validate(generic); err != nil {
		return nil, err
	}

	// 3) Typed decode.
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return &doc, nil
}

// BuildGraph materialises d.Graph or d.Grid, whichever is present.
func (d *Document) BuildGraph() (*core.Graph, error) {
	switch {
	case d.Graph != nil && d.Grid != nil:
		return nil, fmt.Errorf("%w: graph and grid are exclusive", ErrSchema)
	case d.Graph != nil:
		return d.Graph.Build()
	case d.Grid != nil:
		return d.Grid.Build()
	}

	return nil, fmt.Errorf("%w: %s needs one", ErrNoGraph, d.Algorithm)
}

// Build converts the grid through gridgraph.
func (g *Grid) Build() (*core.Graph, error) {
	opts := gridgraph.GridOptions{LandThreshold: 1, Weighted: g.Weighted}
	if g.Threshold != nil {
		opts.LandThreshold = *g.Threshold
	}
	if g.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	gg, err := gridgraph.New(g.Cells, opts)
	if err != nil {
		return nil, fmt.Errorf("input: grid: %w", err)
	}

	return gg.ToCoreGraph()
}

// Build creates the core.Graph described by g. The graph is weighted when
// Weighted is set or any edge carries a non-zero weight.
func (g *Graph) Build() (*core.Graph, error) {
	weighted := g.Weighted
	for _, e := range g.Edges {
		if e.Weight != 0 {
			weighted = true
		}
	}

	opts := []core.GraphOption{core.WithDirected(g.Directed)}
	if weighted {
		opts = append(opts, core.WithWeighted())
	}
	cg := core.NewGraph(opts...)

	for _, v := range g.Vertices {
		if err := cg.AddVertex(v); err != nil {
			return nil, fmt.Errorf("input: vertex %q: %w", v, err)
		}
	}
	for i, e := range g.Edges {
		if _, err := cg.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("input: edge %d (%s→%s): %w", i, e.From, e.To, err)
		}
	}

	return cg, nil
}

// TrieCommands returns Words as insert commands followed by Commands.
func (d *Document) TrieCommands() []trie.Command {
	out := make([]trie.Command, 0, len(d.Words)+len(d.Commands))
	for _, w := range d.Words {
		out = append(out, trie.Command{Op: trie.OpInsert, Word: w})
	}

	return append(out, d.Commands...)
}
