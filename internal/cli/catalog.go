package cli

import (
	"sort"

	"github.com/katalvlaran/lvltrace/bfs"
	"github.com/katalvlaran/lvltrace/dfs"
	"github.com/katalvlaran/lvltrace/dijkstra"
	"github.com/katalvlaran/lvltrace/flow"
	"github.com/katalvlaran/lvltrace/geometry"
	"github.com/katalvlaran/lvltrace/prim_kruskal"
	"github.com/katalvlaran/lvltrace/segtree"
	"github.com/katalvlaran/lvltrace/strmatch"
	"github.com/katalvlaran/lvltrace/trie"
)

// graphKind says whether an algorithm runs on a graph, and which shape
// --builder should generate for it.
type graphKind int

const (
	noGraph graphKind = iota
	unweightedGraph
	weightedGraph
	directedGraph
	flowNetwork
	anyGraph
)

func (k graphKind) String() string {
	switch k {
	case unweightedGraph:
		return "unweighted graph"
	case weightedGraph:
		return "weighted graph"
	case directedGraph:
		return "directed graph"
	case flowNetwork:
		return "flow network"
	case anyGraph:
		return "graph"
	default:
		return "document"
	}
}

// Algorithm describes one playable trace generator.
type Algorithm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Input       string `json:"input"`

	graph graphKind
	play  func(s *session) error
}

// catalog maps algorithm names to their generators.
var catalog = map[string]Algorithm{
	dijkstra.Kind: {
		Name:        dijkstra.Kind,
		Description: "single-source shortest paths with non-negative weights",
		graph:       weightedGraph,
		play: func(s *session) error {
			return play(s, dijkstra.Generator(s.graph, dijkstra.Source(s.source), dijkstra.Target(s.target)))
		},
	},
	bfs.Kind: {
		Name:        bfs.Kind,
		Description: "breadth-first search by layers",
		graph:       unweightedGraph,
		play: func(s *session) error {
			return play(s, bfs.Generator(s.graph, s.source, bfs.WithContext(s.ctx), bfs.WithTarget(s.target)))
		},
	},
	dfs.Kind: {
		Name:        dfs.Kind,
		Description: "depth-first search with discovery and finish order",
		graph:       anyGraph,
		play: func(s *session) error {
			return play(s, dfs.Generator(s.graph, s.source, dfs.WithContext(s.ctx)))
		},
	},
	dfs.KindTopological: {
		Name:        dfs.KindTopological,
		Description: "topological order of a DAG, stopping at the first cycle",
		graph:       directedGraph,
		play: func(s *session) error {
			return play(s, dfs.TopologicalGenerator(s.graph, dfs.WithCancelContext(s.ctx)))
		},
	},
	prim_kruskal.MethodKruskal: {
		Name:        prim_kruskal.MethodKruskal,
		Description: "minimum spanning tree by sorted edges and union-find",
		graph:       weightedGraph,
		play: func(s *session) error {
			return play(s, prim_kruskal.Generator(s.graph, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal)))
		},
	},
	prim_kruskal.MethodPrim: {
		Name:        prim_kruskal.MethodPrim,
		Description: "minimum spanning tree grown from a root",
		graph:       weightedGraph,
		play: func(s *session) error {
			return play(s, prim_kruskal.Generator(s.graph,
				prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(s.root)))
		},
	},
	flow.Kind: {
		Name:        flow.Kind,
		Description: "Edmonds-Karp maximum flow and minimum cut",
		graph:       flowNetwork,
		play: func(s *session) error {
			return play(s, flow.Generator(s.graph, s.source, s.sink(), flow.WithContext(s.ctx)))
		},
	},
	segtree.Kind: {
		Name:        segtree.Kind,
		Description: "lazy segment tree: range add and range sum",
		play: func(s *session) error {
			return play(s, segtree.Generator(s.doc.Array, s.doc.Queries))
		},
	},
	trie.Kind: {
		Name:        trie.Kind,
		Description: "prefix tree insert, search and delete",
		play: func(s *session) error {
			return play(s, trie.Generator(s.doc.TrieCommands()))
		},
	},
	strmatch.Kind: {
		Name:        strmatch.Kind,
		Description: "Knuth-Morris-Pratt string matching",
		play: func(s *session) error {
			return play(s, strmatch.Generator(s.doc.Text, s.doc.Pattern))
		},
	},
	geometry.Kind: {
		Name:        geometry.Kind,
		Description: "monotone-chain convex hull",
		play: func(s *session) error {
			return play(s, geometry.Generator(s.doc.Points))
		},
	},
}

// Algorithms returns the catalog sorted by name.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(catalog))
	for _, a := range catalog {
		a.Input = a.graph.String()
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// lookup returns the named algorithm with its Input label filled in.
func lookup(name string) (Algorithm, bool) {
	a, ok := catalog[name]
	a.Input = a.graph.String()
	return a, ok
}
