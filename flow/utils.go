package flow

import (
	"sort"

	"github.com/katalvlaran/lvltrace/core"
)

// buildCapMap constructs capMap[u][v], the total capacity from u to v after
// summing parallel edges. Self-loops are skipped; an undirected edge adds
// its capacity in both directions.
//
// Complexity: O(V + E) time and memory.
func buildCapMap(g *core.Graph) (map[string]map[string]int64, error) {
	capMap := make(map[string]map[string]int64, g.VertexCount())
	for _, u := range g.Vertices() {
		capMap[u] = make(map[string]int64)
	}

	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, EdgeError{From: e.From, To: e.To, Cap: e.Weight}
		}
		if e.From == e.To {
			continue
		}
		addCap(capMap, e.From, e.To, e.Weight)
		if !e.Directed {
			addCap(capMap, e.To, e.From, e.Weight)
		}
	}

	return capMap, nil
}

// addCap adds c to m[u][v], creating the inner map if needed.
func addCap(m map[string]map[string]int64, u, v string, c int64) {
	inner, ok := m[u]
	if !ok {
		inner = make(map[string]int64)
		m[u] = inner
	}
	inner[v] += c
}

// positive deep-copies m, keeping only entries greater than zero.
func positive(m map[string]map[string]int64) map[string]map[string]int64 {
	out := make(map[string]map[string]int64, len(m))
	for u, inner := range m {
		for v, c := range inner {
			if c > 0 {
				addCap(out, u, v, c)
			}
		}
	}

	return out
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
