package trie_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvltrace/trie"
)

// BenchmarkTrace inserts 200 keys sharing prefixes, then searches and deletes half.
func BenchmarkTrace(b *testing.B) {
	var cmds []trie.Command
	for i := 0; i < 200; i++ {
		cmds = append(cmds, trie.Command{Op: trie.OpInsert, Word: fmt.Sprintf("key%03d", i)})
	}
	for i := 0; i < 200; i += 2 {
		w := fmt.Sprintf("key%03d", i)
		cmds = append(cmds, trie.Command{Op: trie.OpSearch, Word: w}, trie.Command{Op: trie.OpDelete, Word: w})
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = trie.Trace(cmds)
	}
}
