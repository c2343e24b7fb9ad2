// Package lex splits a sentence into the symbol sequence the parser
// consumes. Symbols are opaque strings; the parser only ever compares
// them for equality against terminal symbols.
package lex

import "strings"

// Runes splits the sentence into one symbol per rune, skipping spaces
// and tabs. This matches grammars whose terminals are single
// characters, like the built-in arithmetic grammar.
func Runes(sentence string) []string {
	var symbols []string
	for _, r := range sentence {
		if r == ' ' || r == '\t' {
			continue
		}
		symbols = append(symbols, string(r))
	}
	return symbols
}

// Fields splits the sentence on whitespace, one symbol per field, for
// grammars with multi-character terminals.
func Fields(sentence string) []string {
	return strings.Fields(sentence)
}
