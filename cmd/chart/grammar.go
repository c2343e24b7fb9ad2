package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dhamidi/chart/grammar"
)

// arithmeticGrammar is the built-in default: infix arithmetic over
// single digits with + - * / and parentheses.
func arithmeticGrammar() (*grammar.Grammar, map[string]bool) {
	rules := []grammar.Rule{
		{Lhs: "expr", Rhs: []string{"expr", "+", "expr"}},
		{Lhs: "expr", Rhs: []string{"expr", "-", "expr"}},
		{Lhs: "expr", Rhs: []string{"expr", "*", "expr"}},
		{Lhs: "expr", Rhs: []string{"expr", "/", "expr"}},
		{Lhs: "expr", Rhs: []string{"(", "expr", ")"}},
		{Lhs: "expr", Rhs: []string{"term"}},
	}
	terminals := map[string]bool{
		"+": true, "-": true, "*": true, "/": true,
		"(": true, ")": true,
	}
	for i := 0; i <= 9; i++ {
		digit := strconv.Itoa(i)
		rules = append(rules, grammar.Rule{Lhs: "term", Rhs: []string{digit}})
		terminals[digit] = true
	}

	g, err := grammar.New(rules, "expr")
	if err != nil {
		panic(err) // the built-in grammar is well-formed
	}
	return g, terminals
}

// loadGrammar reads a grammar file, or falls back to the built-in
// arithmetic grammar when path is empty.
func loadGrammar(path string) (*grammar.Grammar, map[string]bool, error) {
	if path == "" {
		g, terminals := arithmeticGrammar()
		return g, terminals, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, terminals, err := grammar.Parse(path, f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, terminals, nil
}
