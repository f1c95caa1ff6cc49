// Package trie defines the command model, sentinel errors and snapshot types
// for the traced prefix tree.
package trie

import "errors"

// Kind tags every Event and Operation produced by this package.
const Kind = "trie"

// Command operations.
const (
	OpInsert = "insert"
	OpSearch = "search"
	OpDelete = "delete"
)

// Procedure lines referenced by Event.Line.
const (
	LineCommand = 1 // for each command
	LineWalk    = 2 // node ← node.child[r]
	LineCreate  = 3 // node.child[r] ← new node
	LineMark    = 4 // node.end ← true / false
	LineMissing = 5 // child[r] absent: stop
	LinePrune   = 6 // remove childless, unmarked node
	LineDone    = 7
)

// Sentinel errors returned by Trace.
var (
	// ErrEmptyWord indicates a command with an empty word.
	ErrEmptyWord = errors.New("trie: empty word")

	// ErrUnknownOp indicates a Command.Op other than insert, search or delete.
	ErrUnknownOp = errors.New("trie: unknown command op")
)

// Command is one trie operation. Words are NFC-normalised before use, so
// precomposed and decomposed spellings address the same key.
type Command struct {
	Op   string `json:"op" yaml:"op"`
	Word string `json:"word" yaml:"word"`
}

// NodeView is one trie node as seen by a viewer.
type NodeView struct {
	ID       int    `json:"id"`
	Parent   int    `json:"parent"` // 0 for the root
	Rune     string `json:"rune,omitempty"`
	Depth    int    `json:"depth"`
	Terminal bool   `json:"terminal"`
}

// Snapshot is the complete trie state after one step.
type Snapshot struct {
	// Nodes lists every live node in ID order; the root has ID 0.
	Nodes []NodeView `json:"nodes"`

	// Path is the chain of node IDs walked by the current command.
	Path []int `json:"path"`

	// Command is the index of the running command, -1 when idle.
	Command int `json:"command"`
}

// SearchResult reports one OpSearch outcome.
type SearchResult struct {
	Word  string `json:"word"`
	Found bool   `json:"found"`
}

// Result is attached to the Operation for the finalizer.
type Result struct {
	// Words lists the stored keys in lexicographic order.
	Words []string `json:"words"`

	// Searches holds one entry per OpSearch, in order.
	Searches []SearchResult `json:"searches"`

	// Nodes is the final node count, root included.
	Nodes int `json:"nodes"`
}
