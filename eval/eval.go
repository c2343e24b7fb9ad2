// Package eval interprets arithmetic derivations. It consumes only the
// bottom-up rule sequence the parser extracts; it never sees the chart.
package eval

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/chart/grammar"
)

// Evaluate replays a bottom-up derivation of an arithmetic sentence on
// a value stack. Rules are interpreted by shape:
//
//	x -> "7"          push the numeric literal
//	x -> y            pass through (unit rule)
//	x -> "(" y ")"    pass through (grouping)
//	x -> y op z       pop two operands, apply op (+ - * /)
//
// Because the derivation is bottom-up, a rule's operands are already on
// the stack when the rule is replayed.
func Evaluate(rules []grammar.Rule) (float64, error) {
	var stack []float64

	pop := func() float64 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}

	for _, rule := range rules {
		rhs := rule.Rhs
		switch {
		case len(rhs) == 1:
			if v, err := strconv.ParseFloat(rhs[0], 64); err == nil {
				stack = append(stack, v)
			}
			// Non-numeric unit rules pass the operand through.
		case len(rhs) == 3 && rhs[0] == "(" && rhs[2] == ")":
			// Grouping changes nothing on the stack.
		case len(rhs) == 3 && isOperator(rhs[1]):
			if len(stack) < 2 {
				return 0, fmt.Errorf("rule %q: missing operands", rule)
			}
			b, a := pop(), pop()
			v, err := apply(rhs[1], a, b)
			if err != nil {
				return 0, fmt.Errorf("rule %q: %w", rule, err)
			}
			stack = append(stack, v)
		default:
			return 0, fmt.Errorf("rule %q is not an arithmetic rule", rule)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("derivation left %d values on the stack, want 1", len(stack))
	}
	return stack[0], nil
}

func isOperator(sym string) bool {
	switch sym {
	case "+", "-", "*", "/":
		return true
	}
	return false
}

func apply(op string, a, b float64) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("unknown operator %q", op)
}
