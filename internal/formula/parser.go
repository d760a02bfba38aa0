package formula

// Parse turns formula text into an AST. A non-nil error is always a
// *ParseError carrying the byte offset of the offending token.
func Parse(text string) (Node, error) {
	p := &parser{lex: newLexer(text)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseIff()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != tokEOF {
		return nil, parseErr(p.tok.Pos, p.tok.Kind.describe(), "unexpected input after complete formula")
	}
	return node, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// accept consumes the current token when it has the given kind.
func (p *parser) accept(k kind) (bool, error) {
	if p.tok.Kind != k {
		return false, nil
	}
	return true, p.advance()
}

func (p *parser) parseIff() (Node, error) {
	node, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.accept(tokIff)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		node = Iff{Left: node, Right: right}
	}
}

func (p *parser) parseImplies() (Node, error) {
	node, err := p.parseStrong()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.accept(tokImplies)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseStrong()
		if err != nil {
			return nil, err
		}
		node = Implies{Left: node, Right: right}
	}
}

func (p *parser) parseStrong() (Node, error) {
	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.accept(tokStrong)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		node = Strong{Left: node, Right: right}
	}
}

func (p *parser) parseOr() (Node, error) {
	node, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.accept(tokOr)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		node = Or{Left: node, Right: right}
	}
}

func (p *parser) parseAnd() (Node, error) {
	node, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		ok, err := p.accept(tokAnd)
		if err != nil {
			return nil, err
		}
		if !ok {
			return node, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node = And{Left: node, Right: right}
	}
}

func (p *parser) parseUnary() (Node, error) {
	tok := p.tok
	switch tok.Kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Not{Operand: operand}, nil
	case tokBox:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Box{Action: tok.Text, Operand: operand}, nil
	case tokDiamond:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Diamond{Action: tok.Text, Operand: operand}, nil
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.parseIff()
		if err != nil {
			return nil, err
		}
		if p.tok.Kind != tokRParen {
			return nil, parseErr(p.tok.Pos, p.tok.Kind.describe(), "expected ')'")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case tokAtom:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Atom{Name: tok.Text}, nil
	case tokTrue:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Top{}, nil
	case tokFalse:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Bottom{}, nil
	case tokEOF:
		return nil, parseErr(tok.Pos, "", "missing operand: unexpected end of formula")
	}
	return nil, parseErr(tok.Pos, tok.Kind.describe(), "expected a formula")
}
