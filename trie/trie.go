package trie

import (
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/lvltrace/playback"
)

// node is a trie vertex. Children are keyed by rune.
type node struct {
	id       int
	parent   *node
	r        rune
	depth    int
	terminal bool
	children map[rune]*node
}

// Trace runs commands against an empty trie and records every walk, node
// creation, end-of-word mark and prune.
//
// Validation happens up front: an empty word (after normalisation) returns
// ErrEmptyWord, an unknown op returns ErrUnknownOp.
func Trace(commands []Command) (*playback.Operation[Snapshot], error) {
	// 1) Normalise and validate
	cmds := make([]Command, len(commands))
	for i, c := range commands {
		switch c.Op {
		case OpInsert, OpSearch, OpDelete:
		default:
			return nil, fmt.Errorf("%w: command %d has op %q", ErrUnknownOp, i, c.Op)
		}
		w := norm.NFC.String(c.Word)
		if w == "" {
			return nil, fmt.Errorf("%w: command %d", ErrEmptyWord, i)
		}
		cmds[i] = Command{Op: c.Op, Word: w}
	}

	// 2) Run
	t := &tracer{
		root:    &node{children: map[rune]*node{}},
		command: -1,
		trace:   playback.NewTrace[Snapshot](Kind),
	}
	t.live = 1
	for i, c := range cmds {
		t.command = i
		t.path = []*node{t.root}
		t.trace.Emit(LineCommand, t.snapshot(), "%s %q", c.Op, c.Word)
		switch c.Op {
		case OpInsert:
			t.insert(c.Word)
		case OpSearch:
			t.searches = append(t.searches, SearchResult{Word: c.Word, Found: t.search(c.Word)})
		case OpDelete:
			t.remove(c.Word)
		}
	}

	// 3) Seal
	t.command = -1
	t.path = nil
	words := t.words()
	t.trace.Emit(LineDone, t.snapshot(), "done: %d words in %d nodes", len(words), t.live)
	res := Result{Words: words, Searches: t.searches, Nodes: t.live}
	if res.Searches == nil {
		res.Searches = []SearchResult{}
	}
	summary := fmt.Sprintf("trie holds %d words in %d nodes", len(words), t.live)

	return t.trace.Operation(summary, res), nil
}

// Generator binds Trace to its inputs for a playback.Runner.
func Generator(commands []Command) playback.Generator[Snapshot] {
	return func() (*playback.Operation[Snapshot], error) {
		return Trace(commands)
	}
}

// tracer holds the mutable state of a single traced run.
type tracer struct {
	root     *node
	nextID   int
	live     int
	command  int
	path     []*node
	searches []SearchResult
	trace    *playback.Trace[Snapshot]
}

func (t *tracer) insert(word string) {
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if ok {
			t.path = append(t.path, next)
			t.trace.Emit(LineWalk, t.snapshot(), "follow %q to node %d", string(r), next.id)
		} else {
			t.nextID++
			t.live++
			next = &node{id: t.nextID, parent: cur, r: r, depth: cur.depth + 1, children: map[rune]*node{}}
			cur.children[r] = next
			t.path = append(t.path, next)
			t.trace.Emit(LineCreate, t.snapshot(), "create node %d for %q", next.id, string(r))
		}
		cur = next
	}
	if cur.terminal {
		t.trace.Emit(LineMark, t.snapshot(), "%q already present", word)
		return
	}
	cur.terminal = true
	t.trace.Emit(LineMark, t.snapshot(), "mark node %d as end of %q", cur.id, word)
}

// locate walks word from the root, emitting each hop. It returns nil at the
// first missing rune.
func (t *tracer) locate(word string) *node {
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			t.trace.Emit(LineMissing, t.snapshot(), "no child %q under node %d", string(r), cur.id)
			return nil
		}
		t.path = append(t.path, next)
		t.trace.Emit(LineWalk, t.snapshot(), "follow %q to node %d", string(r), next.id)
		cur = next
	}

	return cur
}

func (t *tracer) search(word string) bool {
	n := t.locate(word)
	switch {
	case n == nil:
		t.trace.Emit(LineDone, t.snapshot(), "search %q: not found", word)
		return false
	case !n.terminal:
		t.trace.Emit(LineMark, t.snapshot(), "search %q: only a prefix", word)
		return false
	default:
		t.trace.Emit(LineMark, t.snapshot(), "search %q: found", word)
		return true
	}
}

func (t *tracer) remove(word string) {
	n := t.locate(word)
	if n == nil || !n.terminal {
		t.trace.Emit(LineDone, t.snapshot(), "delete %q: not present", word)
		return
	}
	n.terminal = false
	t.trace.Emit(LineMark, t.snapshot(), "unmark node %d", n.id)

	// Prune childless, unmarked nodes back toward the root.
	for n != t.root && !n.terminal && len(n.children) == 0 {
		parent := n.parent
		delete(parent.children, n.r)
		t.live--
		t.path = t.path[:len(t.path)-1]
		t.trace.Emit(LinePrune, t.snapshot(), "prune node %d (%q)", n.id, string(n.r))
		n = parent
	}
}

// words lists every stored key in lexicographic order.
func (t *tracer) words() []string {
	out := []string{}
	var walk func(n *node, prefix []rune)
	walk = func(n *node, prefix []rune) {
		if n.terminal {
			out = append(out, string(prefix))
		}
		for _, r := range sortedRunes(n.children) {
			walk(n.children[r], append(prefix, r))
		}
	}
	walk(t.root, nil)

	return out
}

// snapshot flattens the live nodes in ID order.
func (t *tracer) snapshot() Snapshot {
	nodes := make([]NodeView, 0, t.live)
	var walk func(n *node)
	walk = func(n *node) {
		v := NodeView{ID: n.id, Depth: n.depth, Terminal: n.terminal}
		if n.parent != nil {
			v.Parent = n.parent.id
			v.Rune = string(n.r)
		}
		nodes = append(nodes, v)
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	path := make([]int, len(t.path))
	for i, n := range t.path {
		path[i] = n.id
	}

	return Snapshot{Nodes: nodes, Path: path, Command: t.command}
}

func sortedRunes(m map[rune]*node) []rune {
	rs := make([]rune, 0, len(m))
	for r := range m {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })

	return rs
}
