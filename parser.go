// parser.go — recursive-descent parser producing the yalispy AST.
//
// The AST is a tree of tagged Node variants: integer, float, and symbol
// atoms, plus ordered lists of sub-nodes. Lists represent both code (calls,
// special forms) and, at the value level, literal list data.
//
// The token slice is consumed through an explicit cursor index shared by the
// whole recursive descent, preserving strict left-to-right consumption
// order. Consuming past the end of the tokens (unbalanced input) and a ')'
// with no matching '(' are fatal parse errors. The parser does not validate
// arity of special forms; that is deferred to evaluation (eval.go).
//
// Node trees are immutable once parsed and may be shared freely: a closure
// body is parsed once and evaluated many times.
package yalispy

import "strconv"

// NodeTag enumerates the expression-node variants.
type NodeTag int

const (
	NInt  NodeTag = iota // int64
	NNum                 // float64
	NSym                 // string (name, resolved at evaluation time)
	NList                // []Node
)

// Node is a parsed expression. Tag determines which Go type Data holds
// (see NodeTag).
type Node struct {
	Tag  NodeTag
	Data any
}

// Node constructors.
func IntNode(n int64) Node       { return Node{Tag: NInt, Data: n} }
func NumNode(f float64) Node     { return Node{Tag: NNum, Data: f} }
func SymNode(s string) Node      { return Node{Tag: NSym, Data: s} }
func ListNode(items []Node) Node { return Node{Tag: NList, Data: items} }

// Parse parses exactly one expression from src. Empty input, unbalanced
// parentheses, and trailing tokens after the expression are parse errors.
func Parse(src string) (Node, error) {
	p := &parser{toks: NewLexer(src).Scan()}
	if p.atEnd() {
		return Node{}, parseErrf("empty input")
	}
	n, err := p.expression()
	if err != nil {
		return Node{}, err
	}
	if !p.atEnd() {
		return Node{}, parseErrf("unexpected %q after expression", p.peek().Lexeme)
	}
	return n, nil
}

// ParseProgram parses src as a sequence of top-level expressions, in order.
// Empty input yields an empty slice.
func ParseProgram(src string) ([]Node, error) {
	p := &parser{toks: NewLexer(src).Scan()}
	var out []Node
	for !p.atEnd() {
		n, err := p.expression()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

//// END_OF_PUBLIC

type parser struct {
	toks []Token
	i    int
}

func (p *parser) atEnd() bool { return p.i >= len(p.toks) }

// peek is only valid when !atEnd.
func (p *parser) peek() Token { return p.toks[p.i] }

// next removes and returns the first unconsumed token.
func (p *parser) next() (Token, error) {
	if p.atEnd() {
		return Token{}, parseErrf("unexpected end of input")
	}
	t := p.toks[p.i]
	p.i++
	return t, nil
}

func (p *parser) expression() (Node, error) {
	tok, err := p.next()
	if err != nil {
		return Node{}, err
	}
	switch tok.Type {
	case LPAREN:
		return p.list()
	case RPAREN:
		return Node{}, parseErrf("unexpected ')'")
	default:
		return classify(tok.Lexeme), nil
	}
}

// list parses sub-expressions until the matching ')', which is consumed and
// discarded. An empty sequence before the ')' is a valid (empty) list node.
func (p *parser) list() (Node, error) {
	items := []Node{}
	for {
		if p.atEnd() {
			return Node{}, parseErrf("unexpected end of input: missing ')'")
		}
		if p.peek().Type == RPAREN {
			p.i++
			return ListNode(items), nil
		}
		sub, err := p.expression()
		if err != nil {
			return Node{}, err
		}
		items = append(items, sub)
	}
}

// classify converts a non-paren lexeme into a typed atom: a full base-10
// integer literal, else a full floating-point literal, else a symbol.
func classify(lex string) Node {
	if n, err := strconv.ParseInt(lex, 10, 64); err == nil {
		return IntNode(n)
	}
	if f, err := strconv.ParseFloat(lex, 64); err == nil {
		return NumNode(f)
	}
	return SymNode(lex)
}
