package formula

import "strings"

// lexer walks the input rune by rune, producing tokens on demand. Formulas
// are plain ASCII; action labels and atoms share the identifier syntax
// (letters, digits, underscore).
type lexer struct {
	input string
	pos   int
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

func (l *lexer) peek() (byte, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t' || l.input[l.pos] == '\n' || l.input[l.pos] == '\r') {
		l.pos++
	}
}

func (l *lexer) identifier() string {
	start := l.pos
	for l.pos < len(l.input) && isIdentChar(l.input[l.pos]) {
		l.pos++
	}
	return l.input[start:l.pos]
}

// next returns the next token. A non-nil error is always a *ParseError.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	start := l.pos

	c, ok := l.peek()
	if !ok {
		return token{Kind: tokEOF, Pos: start}, nil
	}

	if isIdentChar(c) {
		ident := l.identifier()
		switch {
		case ident == "1", strings.EqualFold(ident, "TOP"):
			return token{Kind: tokTrue, Text: ident, Pos: start}, nil
		case ident == "0", strings.EqualFold(ident, "BOT"):
			return token{Kind: tokFalse, Text: ident, Pos: start}, nil
		}
		return token{Kind: tokAtom, Text: ident, Pos: start}, nil
	}

	switch c {
	case '~':
		l.pos++
		return token{Kind: tokNot, Pos: start}, nil
	case '&':
		l.pos++
		return token{Kind: tokAnd, Pos: start}, nil
	case '|':
		l.pos++
		return token{Kind: tokOr, Pos: start}, nil
	case '(':
		l.pos++
		return token{Kind: tokLParen, Pos: start}, nil
	case ')':
		l.pos++
		return token{Kind: tokRParen, Pos: start}, nil
	case '=':
		l.pos++
		if c, ok := l.peek(); !ok || c != '>' {
			return token{}, parseErr(start, "=", "expected '>' after '='")
		}
		l.pos++
		return token{Kind: tokStrong, Pos: start}, nil
	case '-':
		l.pos++
		if c, ok := l.peek(); !ok || c != '>' {
			return token{}, parseErr(start, "-", "expected '>' after '-'")
		}
		l.pos++
		return token{Kind: tokImplies, Pos: start}, nil
	case '<':
		l.pos++
		c, ok := l.peek()
		switch {
		case ok && c == '-':
			l.pos++
			if c, ok := l.peek(); !ok || c != '>' {
				return token{}, parseErr(start, "<-", "expected '>' after '<-'")
			}
			l.pos++
			return token{Kind: tokIff, Pos: start}, nil
		case ok && c == '>':
			l.pos++
			action, err := l.actionLabel(start, "<>")
			if err != nil {
				return token{}, err
			}
			return token{Kind: tokDiamond, Text: action, Pos: start}, nil
		}
		return token{}, parseErr(start, "<", "expected '>' or '-' after '<'")
	case '[':
		l.pos++
		if c, ok := l.peek(); !ok || c != ']' {
			return token{}, parseErr(start, "[", "expected ']' after '['")
		}
		l.pos++
		action, err := l.actionLabel(start, "[]")
		if err != nil {
			return token{}, err
		}
		return token{Kind: tokBox, Text: action, Pos: start}, nil
	}

	return token{}, parseErr(start, string(c), "unknown token")
}

// actionLabel reads the mandatory `_action` suffix of a modal operator.
func (l *lexer) actionLabel(start int, op string) (string, error) {
	if c, ok := l.peek(); !ok || c != '_' {
		return "", parseErr(start, op, "modal operator %s requires an action label, e.g. %s_a", op, op)
	}
	l.pos++
	action := l.identifier()
	if action == "" {
		return "", parseErr(start, op+"_", "modal operator %s is missing its action label", op)
	}
	return action, nil
}
