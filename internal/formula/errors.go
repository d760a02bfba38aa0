package formula

import "fmt"

// ParseError reports a malformed formula. Pos is the byte offset of the
// offending token within the input; Token is the offending token text, empty
// when the input ended early.
type ParseError struct {
	Pos   int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("parse error at position %d near %q: %s", e.Pos, e.Token, e.Msg)
}

func parseErr(pos int, token, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Token: token, Msg: fmt.Sprintf(format, args...)}
}
