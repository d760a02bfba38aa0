package formula

// kind identifies a lexical token class.
type kind int

const (
	tokEOF kind = iota
	tokAtom
	tokTrue    // 1 or TOP
	tokFalse   // 0 or BOT
	tokNot     // ~
	tokAnd     // &
	tokOr      // |
	tokStrong  // =>
	tokImplies // ->
	tokIff     // <->
	tokBox     // []_action
	tokDiamond // <>_action
	tokLParen
	tokRParen
)

// token is a single lexical unit. For modal tokens, Text holds the action
// label rather than the raw operator text.
type token struct {
	Kind kind
	Text string
	Pos  int
}

func (k kind) describe() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokAtom:
		return "atom"
	case tokTrue:
		return "1"
	case tokFalse:
		return "0"
	case tokNot:
		return "~"
	case tokAnd:
		return "&"
	case tokOr:
		return "|"
	case tokStrong:
		return "=>"
	case tokImplies:
		return "->"
	case tokIff:
		return "<->"
	case tokBox:
		return "box operator"
	case tokDiamond:
		return "diamond operator"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	}
	return "unknown token"
}
