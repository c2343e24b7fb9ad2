package grammar

import (
	"fmt"
	"io"
)

// Position is a location in a grammar file.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// SyntaxError is a grammar-file syntax error with its position.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// Parse reads a grammar in the concrete syntax
//
//	expr = expr "+" expr | "(" expr ")" | term .
//	term = "0" | "1" .
//
// One production per left-hand symbol, alternatives separated by "|",
// terminated by ".". Quoted strings are terminal symbols; bare names
// are non-terminals. The first production's left-hand symbol is the
// start symbol. Returns the grammar and the inferred terminal set.
func Parse(filename string, r io.Reader) (*Grammar, map[string]bool, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read grammar: %w", err)
	}

	rd := &reader{input: src, filename: filename, line: 1, column: 1}
	var rules []Rule
	terminals := make(map[string]bool)
	start := ""

	for {
		rd.skipSpace()
		if rd.peek() == 0 {
			break
		}

		lhs, err := rd.name()
		if err != nil {
			return nil, nil, err
		}
		if start == "" {
			start = lhs
		}
		if err := rd.expect('='); err != nil {
			return nil, nil, err
		}

		rhs, err := rd.alternative(terminals)
		if err != nil {
			return nil, nil, err
		}
		rules = append(rules, Rule{Lhs: lhs, Rhs: rhs})

		for {
			rd.skipSpace()
			if rd.peek() != '|' {
				break
			}
			rd.advance()
			rhs, err := rd.alternative(terminals)
			if err != nil {
				return nil, nil, err
			}
			rules = append(rules, Rule{Lhs: lhs, Rhs: rhs})
		}

		if err := rd.expect('.'); err != nil {
			return nil, nil, err
		}
	}

	if start == "" {
		return nil, nil, &SyntaxError{Pos: rd.position(), Msg: "grammar has no productions"}
	}

	g, err := New(rules, start)
	if err != nil {
		return nil, nil, err
	}
	return g, terminals, nil
}

// reader is a minimal scanner over grammar-file source.
type reader struct {
	input    []byte
	filename string
	pos      int
	line     int
	column   int
}

func (rd *reader) position() Position {
	return Position{Filename: rd.filename, Offset: rd.pos, Line: rd.line, Column: rd.column}
}

func (rd *reader) peek() byte {
	if rd.pos >= len(rd.input) {
		return 0
	}
	return rd.input[rd.pos]
}

func (rd *reader) advance() byte {
	if rd.pos >= len(rd.input) {
		return 0
	}
	ch := rd.input[rd.pos]
	rd.pos++
	if ch == '\n' {
		rd.line++
		rd.column = 1
	} else {
		rd.column++
	}
	return ch
}

func (rd *reader) skipSpace() {
	for {
		ch := rd.peek()
		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			rd.advance()
			continue
		}
		if ch == '#' {
			for rd.peek() != 0 && rd.peek() != '\n' {
				rd.advance()
			}
			continue
		}
		return
	}
}

func (rd *reader) expect(ch byte) error {
	rd.skipSpace()
	if rd.peek() != ch {
		return &SyntaxError{
			Pos: rd.position(),
			Msg: fmt.Sprintf("expected %q, got %q", string(ch), string(rd.peek())),
		}
	}
	rd.advance()
	return nil
}

func isNameChar(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' ||
		ch >= '0' && ch <= '9' || ch == '_'
}

func (rd *reader) name() (string, error) {
	rd.skipSpace()
	startPos := rd.pos
	for isNameChar(rd.peek()) {
		rd.advance()
	}
	if rd.pos == startPos {
		return "", &SyntaxError{
			Pos: rd.position(),
			Msg: fmt.Sprintf("expected a name, got %q", string(rd.peek())),
		}
	}
	return string(rd.input[startPos:rd.pos]), nil
}

// literal reads a quoted terminal symbol and returns its content.
func (rd *reader) literal() (string, error) {
	quotePos := rd.position()
	rd.advance() // opening quote
	startPos := rd.pos
	for rd.peek() != '"' {
		if rd.peek() == 0 || rd.peek() == '\n' {
			return "", &SyntaxError{Pos: quotePos, Msg: "unterminated string literal"}
		}
		rd.advance()
	}
	lit := string(rd.input[startPos:rd.pos])
	rd.advance() // closing quote
	if lit == "" {
		return "", &SyntaxError{Pos: quotePos, Msg: "empty terminal literal"}
	}
	return lit, nil
}

// alternative reads one right-hand side: a non-empty sequence of names
// and quoted literals. Quoted literals are recorded as terminals.
func (rd *reader) alternative(terminals map[string]bool) ([]string, error) {
	var rhs []string
	for {
		rd.skipSpace()
		ch := rd.peek()
		switch {
		case ch == '"':
			lit, err := rd.literal()
			if err != nil {
				return nil, err
			}
			terminals[lit] = true
			rhs = append(rhs, lit)
		case isNameChar(ch):
			sym, err := rd.name()
			if err != nil {
				return nil, err
			}
			rhs = append(rhs, sym)
		default:
			if len(rhs) == 0 {
				return nil, &SyntaxError{
					Pos: rd.position(),
					Msg: "empty alternative: epsilon productions are not supported",
				}
			}
			return rhs, nil
		}
	}
}
