// Package strmatch produces playback traces of Knuth–Morris–Pratt substring
// search.
//
// Trace first builds the failure function pi of the pattern, then scans the
// text once, falling back through pi on mismatches instead of moving the
// text cursor backwards. Text and pattern are normalised to Unicode NFC with
// golang.org/x/text/unicode/norm and compared as runes, so offsets in
// Snapshot and Result count characters, not bytes.
package strmatch
