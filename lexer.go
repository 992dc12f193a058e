// lexer.go — tokenizer for yalispy source text.
//
// The scanner splits raw input into a flat token sequence: the longest run
// of word characters ([A-Za-z0-9_]) forms one token, and each of the
// characters ( ) + - * / > < = forms a token on its own. Whitespace and any
// other byte are skipped silently, never reported as an error. Tokens carry
// no position information.
//
// Classification is deliberately shallow here: a word starting with a digit
// is tagged NUMERAL, everything else SYMBOL, and the parser (parser.go) does
// the real integer/float/symbol split. Scanning is a pure function of the
// input string; a fresh Lexer over the same source always yields the same
// tokens.
package yalispy

// TokenType represents the kind of token.
type TokenType int

const (
	LPAREN  TokenType = iota // "("
	RPAREN                   // ")"
	SYMBOL                   // identifier word or single operator character
	NUMERAL                  // word starting with a digit; parser classifies it
)

// Token is a lexical token. Lexeme is the raw text slice.
type Token struct {
	Type   TokenType
	Lexeme string
}

// Lexer scans a yalispy source string into tokens.
type Lexer struct {
	src    string
	start  int // start index of current token
	cur    int // current index
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	return l.src[l.cur], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.isAtEnd() {
		return 0, false
	}
	ch := l.src[l.cur]
	l.cur++
	return ch, true
}

func (l *Lexer) addToken(tt TokenType) {
	l.tokens = append(l.tokens, Token{Type: tt, Lexeme: l.src[l.start:l.cur]})
	l.start = l.cur
}

// helpers

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isWordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}

func isOperatorChar(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '>', '<', '=':
		return true
	default:
		return false
	}
}

// scanWord consumes the longest run of word characters as one token.
func (l *Lexer) scanWord() {
	first, _ := l.peek()
	for {
		b, ok := l.peek()
		if !ok || !isWordChar(b) {
			break
		}
		l.advance()
	}
	if isDigit(first) {
		l.addToken(NUMERAL)
	} else {
		l.addToken(SYMBOL)
	}
}

// Scan tokenizes the whole input. It cannot fail: bytes that are neither
// word characters, parentheses, nor operator characters are dropped.
func (l *Lexer) Scan() []Token {
	for !l.isAtEnd() {
		b, _ := l.peek()
		switch {
		case isWordChar(b):
			l.scanWord()
		case b == '(':
			l.advance()
			l.addToken(LPAREN)
		case b == ')':
			l.advance()
			l.addToken(RPAREN)
		case isOperatorChar(b):
			l.advance()
			l.addToken(SYMBOL)
		default:
			l.advance()
			l.start = l.cur
		}
	}
	return l.tokens
}
