// Package grammar provides an immutable context-free grammar model:
// rules grouped by their left-hand symbol, in declaration order, plus a
// designated start symbol. Symbols are opaque strings; the grammar
// attaches no meaning to them. Terminal symbols are not stored here —
// they travel alongside the grammar as a plain set.
package grammar

import (
	"fmt"
	"strings"
)

// Rule is a single production: one left-hand symbol and an ordered
// right-hand side. Rules are immutable after construction.
type Rule struct {
	Lhs string
	Rhs []string
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Lhs, strings.Join(r.Rhs, " "))
}

// Grammar groups rules by left-hand symbol, preserving declaration
// order both across symbols and within one symbol's rule list.
type Grammar struct {
	start string
	order []string
	rules map[string][]Rule
}

// UnknownSymbolError reports a symbol for which the grammar has no
// rules where some were required.
type UnknownSymbolError struct {
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("grammar has no rules for symbol %q", e.Symbol)
}

// New builds a grammar from rules in declaration order. The start
// symbol must have at least one rule; this is checked eagerly so a
// malformed grammar fails at construction, not mid-parse.
func New(rules []Rule, start string) (*Grammar, error) {
	g := &Grammar{
		start: start,
		rules: make(map[string][]Rule),
	}
	for _, rule := range rules {
		if _, ok := g.rules[rule.Lhs]; !ok {
			g.order = append(g.order, rule.Lhs)
		}
		g.rules[rule.Lhs] = append(g.rules[rule.Lhs], rule)
	}
	if !g.Has(start) {
		return nil, &UnknownSymbolError{Symbol: start}
	}
	return g, nil
}

// Start returns the designated start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// Rules returns all rules whose left-hand side is lhs, in declaration
// order. The returned slice must not be modified.
func (g *Grammar) Rules(lhs string) []Rule {
	return g.rules[lhs]
}

// Has reports whether any rule has lhs as its left-hand side.
func (g *Grammar) Has(lhs string) bool {
	_, ok := g.rules[lhs]
	return ok
}

// Symbols returns the left-hand symbols in declaration order.
func (g *Grammar) Symbols() []string {
	return g.order
}

func (g *Grammar) String() string {
	var sb strings.Builder
	for _, lhs := range g.order {
		for _, rule := range g.rules[lhs] {
			sb.WriteString(rule.String())
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
