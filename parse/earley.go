// Package parse implements Earley chart parsing: given a grammar, a
// terminal set and an input sequence of symbols, it decides whether the
// input is derivable from the start symbol and extracts one concrete
// derivation. Ambiguous grammars are resolved deterministically by rule
// declaration order and item discovery order.
package parse

import (
	"errors"

	"github.com/dhamidi/chart/grammar"
)

// ErrNoParse reports that the input is not derivable from the grammar's
// start symbol. It is an ordinary outcome, not a fault; callers branch
// on it explicitly.
var ErrNoParse = errors.New("input cannot be derived from the grammar")

type itemState int

const (
	stateComplete itemState = iota
	stateTerminal
	stateNonTerminal
)

// Parser fills an Earley chart for one input sequence at a time. It is
// not safe for concurrent use; each Parse call owns the chart it
// builds.
type Parser struct {
	grammar   *grammar.Grammar
	terminals map[string]bool
	chart     []*ItemSet
}

// NewParser validates the grammar against the terminal set: every
// right-hand symbol must either be a terminal or have rules of its
// own. A symbol that is neither means the grammar is malformed, so
// this fails here rather than in the middle of a parse.
func NewParser(g *grammar.Grammar, terminals map[string]bool) (*Parser, error) {
	for _, lhs := range g.Symbols() {
		for _, rule := range g.Rules(lhs) {
			for _, sym := range rule.Rhs {
				if terminals[sym] || g.Has(sym) {
					continue
				}
				return nil, &grammar.UnknownSymbolError{Symbol: sym}
			}
		}
	}
	return &Parser{grammar: g, terminals: terminals}, nil
}

// Parse runs the chart-filling loop over input and returns one
// derivation as a bottom-up rule sequence: every rule needed to build
// a sub-phrase appears before the rule that consumes it. Returns
// ErrNoParse when the input is not in the grammar's language.
func (p *Parser) Parse(input []string) ([]grammar.Rule, error) {
	p.chart = make([]*ItemSet, len(input)+1)
	for i := range p.chart {
		p.chart[i] = newItemSet()
	}
	for _, rule := range p.grammar.Rules(p.grammar.Start()) {
		p.chart[0].Add(&Item{Rule: rule, Origin: 0, Dot: 0})
	}

	for i := range input {
		// Predict and complete append to the set being walked, so this
		// is an index cursor over a live slice, not a range snapshot:
		// every item added at position i is processed before moving on.
		for j := 0; j < len(p.chart[i].items); j++ {
			item := p.chart[i].items[j]
			state, sym := p.nextSymbol(item)
			switch state {
			case stateComplete:
				p.complete(i, item)
			case stateTerminal:
				p.scan(i, item, sym, input[i])
			case stateNonTerminal:
				p.predict(i, sym)
			}
		}
	}

	// Completion-only sweep over the final position: there is no input
	// left to scan, and predicting new expectations there cannot lead
	// anywhere. Epsilon productions newly enabled by this sweep would
	// need further expansion; they are unsupported.
	last := len(input)
	for j := 0; j < len(p.chart[last].items); j++ {
		item := p.chart[last].items[j]
		if state, _ := p.nextSymbol(item); state == stateComplete {
			p.complete(last, item)
		}
	}

	if len(p.chart) != len(input)+1 {
		return nil, ErrNoParse
	}
	for _, item := range p.chart[last].items {
		if item.Dot == len(item.Rule.Rhs) && item.Origin == 0 && item.Rule.Lhs == p.grammar.Start() {
			return Derivation(item), nil
		}
	}
	return nil, ErrNoParse
}

// Chart returns the chart filled by the last Parse call: position i
// holds the items whose recognition has progressed exactly through
// input symbols 0..i-1. Read-only projection for diagnostics; the
// engine does not depend on it being consumed.
func (p *Parser) Chart() []*ItemSet {
	return p.chart
}

// nextSymbol classifies the symbol immediately after the dot.
func (p *Parser) nextSymbol(item *Item) (itemState, string) {
	if item.Dot >= len(item.Rule.Rhs) {
		return stateComplete, ""
	}
	sym := item.Rule.Rhs[item.Dot]
	if p.terminals[sym] {
		return stateTerminal, sym
	}
	return stateNonTerminal, sym
}

// predict inserts a fresh item for every rule of sym at position i.
func (p *Parser) predict(i int, sym string) {
	for _, rule := range p.grammar.Rules(sym) {
		p.chart[i].Add(&Item{Rule: rule, Origin: i, Dot: 0})
	}
}

// scan advances item into the next position when the terminal at its
// dot matches the input symbol. Terminal matches add no backpointer,
// so prev is carried over unchanged.
func (p *Parser) scan(i int, item *Item, expected, actual string) {
	if expected != actual {
		return
	}
	p.chart[i+1].Add(&Item{
		Rule:   item.Rule,
		Origin: item.Origin,
		Dot:    item.Dot + 1,
		prev:   item.prev,
	})
}

// complete advances every item at the finished item's origin position
// that was waiting for its left-hand symbol, appending the finished
// item to the advanced copy's backpointers.
func (p *Parser) complete(i int, finished *Item) {
	origin := p.chart[finished.Origin]
	for j := 0; j < len(origin.items); j++ {
		waiting := origin.items[j]
		state, sym := p.nextSymbol(waiting)
		if state == stateComplete || sym != finished.Rule.Lhs {
			continue
		}
		prev := make([]*Item, 0, len(waiting.prev)+1)
		prev = append(prev, waiting.prev...)
		prev = append(prev, finished)
		p.chart[i].Add(&Item{
			Rule:   waiting.Rule,
			Origin: waiting.Origin,
			Dot:    waiting.Dot + 1,
			prev:   prev,
		})
	}
}

// Parse builds a parser for the grammar and terminal set and parses
// input in one call.
func Parse(g *grammar.Grammar, terminals map[string]bool, input []string) ([]grammar.Rule, error) {
	parser, err := NewParser(g, terminals)
	if err != nil {
		return nil, err
	}
	return parser.Parse(input)
}
