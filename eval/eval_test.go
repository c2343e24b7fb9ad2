package eval

import (
	"strconv"
	"strings"
	"testing"

	"github.com/dhamidi/chart/grammar"
	"github.com/dhamidi/chart/parse"
)

func arithGrammar(t *testing.T) (*grammar.Grammar, map[string]bool) {
	t.Helper()

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
		t.Fatalf("build grammar: %v", err)
	}
	return g, terminals
}

func evaluateSentence(t *testing.T, sentence string) (float64, error) {
	t.Helper()

	g, terminals := arithGrammar(t)
	input := make([]string, 0, len(sentence))
	for _, r := range sentence {
		input = append(input, string(r))
	}

	rules, err := parse.Parse(g, terminals, input)
	if err != nil {
		t.Fatalf("parse %q failed: %v", sentence, err)
	}
	return Evaluate(rules)
}

func TestEvaluate_Sentences(t *testing.T) {
	// Only grammatically unambiguous sentences: for those the value
	// does not depend on which derivation the parser picks.
	cases := []struct {
		sentence string
		want     float64
	}{
		{"7", 7},
		{"2+3", 5},
		{"8/2", 4},
		{"(2+3)*4", 20},
		{"((9))", 9},
	}
	for _, tc := range cases {
		got, err := evaluateSentence(t, tc.sentence)
		if err != nil {
			t.Errorf("evaluate %q failed: %v", tc.sentence, err)
			continue
		}
		if got != tc.want {
			t.Errorf("evaluate %q = %g, want %g", tc.sentence, got, tc.want)
		}
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	_, err := evaluateSentence(t, "1/0")
	if err == nil || !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("error = %v, want division by zero", err)
	}
}

func TestEvaluate_RejectsNonArithmeticRules(t *testing.T) {
	_, err := Evaluate([]grammar.Rule{
		{Lhs: "greeting", Rhs: []string{"hello", "world"}},
	})
	if err == nil {
		t.Error("expected an error for a non-arithmetic rule")
	}
}

func TestEvaluate_MissingOperands(t *testing.T) {
	_, err := Evaluate([]grammar.Rule{
		{Lhs: "expr", Rhs: []string{"expr", "+", "expr"}},
	})
	if err == nil {
		t.Error("expected an error for a binary rule without operands")
	}
}
