// Package trie produces playback traces of a prefix tree (trie) handling
// insert, search and delete commands.
//
// Keys are normalised to Unicode NFC with golang.org/x/text/unicode/norm and
// walked rune by rune, so "é" typed precomposed or as "e" plus a combining
// accent lands on the same node. Each Snapshot flattens the live nodes in ID
// order together with the path walked by the running command; deletes prune
// childless, unmarked nodes back toward the root.
package trie
