package parse

import "github.com/dhamidi/chart/grammar"

// Derivation extracts one bottom-up rule sequence from a completed
// item: the derivations of its backpointers in order, followed by the
// item's own rule. Backpointers only ever reference items finalized at
// an earlier or equal position, so the recursion cannot cycle; its
// depth equals the derivation tree's depth. Pure and idempotent.
func Derivation(item *Item) []grammar.Rule {
	var rules []grammar.Rule
	for _, prev := range item.prev {
		rules = append(rules, Derivation(prev)...)
	}
	return append(rules, item.Rule)
}
