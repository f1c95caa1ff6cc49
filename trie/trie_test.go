package trie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltrace/playback"
	"github.com/katalvlaran/lvltrace/trie"
)

func messages(op *playback.Operation[trie.Snapshot]) []string {
	out := make([]string, len(op.Events))
	for i, ev := range op.Events {
		out[i] = ev.Message
	}
	return out
}

func result(t *testing.T, op *playback.Operation[trie.Snapshot]) trie.Result {
	t.Helper()
	res, ok := op.Result.(trie.Result)
	require.True(t, ok)
	return res
}

func TestTrace_Validation(t *testing.T) {
	_, err := trie.Trace([]trie.Command{{Op: trie.OpInsert, Word: ""}})
	assert.ErrorIs(t, err, trie.ErrEmptyWord)

	_, err = trie.Trace([]trie.Command{{Op: "upsert", Word: "x"}})
	assert.ErrorIs(t, err, trie.ErrUnknownOp)
}

func TestTrace_InsertSearchDelete(t *testing.T) {
	op, err := trie.Trace([]trie.Command{
		{Op: trie.OpInsert, Word: "cat"},
		{Op: trie.OpInsert, Word: "car"},
		{Op: trie.OpSearch, Word: "ca"},
		{Op: trie.OpSearch, Word: "car"},
		{Op: trie.OpDelete, Word: "cat"},
		{Op: trie.OpSearch, Word: "cat"},
		{Op: trie.OpDelete, Word: "dog"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		`insert "cat"`,
		`create node 1 for "c"`,
		`create node 2 for "a"`,
		`create node 3 for "t"`,
		`mark node 3 as end of "cat"`,
		`insert "car"`,
		`follow "c" to node 1`,
		`follow "a" to node 2`,
		`create node 4 for "r"`,
		`mark node 4 as end of "car"`,
		`search "ca"`,
		`follow "c" to node 1`,
		`follow "a" to node 2`,
		`search "ca": only a prefix`,
		`search "car"`,
		`follow "c" to node 1`,
		`follow "a" to node 2`,
		`follow "r" to node 4`,
		`search "car": found`,
		`delete "cat"`,
		`follow "c" to node 1`,
		`follow "a" to node 2`,
		`follow "t" to node 3`,
		`unmark node 3`,
		`prune node 3 ("t")`,
		`search "cat"`,
		`follow "c" to node 1`,
		`follow "a" to node 2`,
		`no child "t" under node 2`,
		`search "cat": not found`,
		`delete "dog"`,
		`no child "d" under node 0`,
		`delete "dog": not present`,
		`done: 1 words in 4 nodes`,
	}, messages(op))

	res := result(t, op)
	assert.Equal(t, []string{"car"}, res.Words)
	assert.Equal(t, []trie.SearchResult{
		{Word: "ca", Found: false},
		{Word: "car", Found: true},
		{Word: "cat", Found: false},
	}, res.Searches)
	assert.Equal(t, 4, res.Nodes)
	assert.Equal(t, "trie holds 1 words in 4 nodes", op.Summary)
}

func TestTrace_Snapshots(t *testing.T) {
	op, err := trie.Trace([]trie.Command{
		{Op: trie.OpInsert, Word: "ab"},
		{Op: trie.OpSearch, Word: "ab"},
	})
	require.NoError(t, err)

	// After marking "ab" the trie is root → a → b(terminal).
	mark := op.Events[3].Snapshot
	assert.Equal(t, []trie.NodeView{
		{ID: 0, Parent: 0, Depth: 0},
		{ID: 1, Parent: 0, Rune: "a", Depth: 1},
		{ID: 2, Parent: 1, Rune: "b", Depth: 2, Terminal: true},
	}, mark.Nodes)
	assert.Equal(t, []int{0, 1, 2}, mark.Path)
	assert.Equal(t, 0, mark.Command)

	last, _ := op.Last()
	assert.Equal(t, -1, last.Snapshot.Command)
	assert.Empty(t, last.Snapshot.Path)
}

func TestTrace_NormalisesToNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	precomposed := "caf\u00e9"

	op, err := trie.Trace([]trie.Command{
		{Op: trie.OpInsert, Word: decomposed},
		{Op: trie.OpSearch, Word: precomposed},
	})
	require.NoError(t, err)

	res := result(t, op)
	assert.Equal(t, []string{precomposed}, res.Words)
	assert.True(t, res.Searches[0].Found)
	assert.Equal(t, 5, res.Nodes)
}
