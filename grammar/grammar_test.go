package grammar

import (
	"errors"
	"reflect"
	"testing"
)

func TestNew_StartSymbolMustHaveRules(t *testing.T) {
	rules := []Rule{
		{Lhs: "expr", Rhs: []string{"1"}},
	}

	_, err := New(rules, "sentence")
	var unknownErr *UnknownSymbolError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error = %v, want UnknownSymbolError", err)
	}
	if unknownErr.Symbol != "sentence" {
		t.Errorf("unknown symbol = %q, want %q", unknownErr.Symbol, "sentence")
	}
}

func TestGrammar_RulesPreserveDeclarationOrder(t *testing.T) {
	rules := []Rule{
		{Lhs: "expr", Rhs: []string{"expr", "+", "expr"}},
		{Lhs: "term", Rhs: []string{"1"}},
		{Lhs: "expr", Rhs: []string{"term"}},
	}
	g, err := New(rules, "expr")
	if err != nil {
		t.Fatalf("new grammar: %v", err)
	}

	want := []Rule{
		{Lhs: "expr", Rhs: []string{"expr", "+", "expr"}},
		{Lhs: "expr", Rhs: []string{"term"}},
	}
	if got := g.Rules("expr"); !reflect.DeepEqual(got, want) {
		t.Errorf("rules for expr = %v, want %v", got, want)
	}

	if got := g.Symbols(); !reflect.DeepEqual(got, []string{"expr", "term"}) {
		t.Errorf("symbols = %v, want [expr term]", got)
	}

	if g.Rules("digit") != nil {
		t.Error("rules for an undefined symbol should be nil")
	}
}

func TestRule_String(t *testing.T) {
	rule := Rule{Lhs: "expr", Rhs: []string{"(", "expr", ")"}}
	if got, want := rule.String(), "expr -> ( expr )"; got != want {
		t.Errorf("rule rendered as %q, want %q", got, want)
	}
}

func TestGrammar_String(t *testing.T) {
	g, err := New([]Rule{
		{Lhs: "expr", Rhs: []string{"term"}},
		{Lhs: "term", Rhs: []string{"1"}},
	}, "expr")
	if err != nil {
		t.Fatalf("new grammar: %v", err)
	}

	want := "expr -> term\nterm -> 1"
	if got := g.String(); got != want {
		t.Errorf("grammar rendered as %q, want %q", got, want)
	}
}
