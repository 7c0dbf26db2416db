package expr

import "go.trai.ch/graf/internal/core/domain"

// Binding powers, loosest to tightest. Implicit multiplication ("2x",
// "3(x+1)") binds like explicit multiplication; power is right-associative
// and binds tighter than unary minus, so -x^2 parses as -(x^2).
const (
	bpAdd   = 10
	bpMul   = 20
	bpUnary = 30
	bpPow   = 40
)

type parser struct {
	toks   []token
	pos    int
	funcs  map[string]func(float64) float64
	consts map[string]float64
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.typ != tokenEOF {
		p.pos++
	}
	return t
}

// parse consumes the whole token stream and returns the evaluation tree.
func (p *parser) parse() (node, error) {
	root, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	switch t := p.peek(); t.typ {
	case tokenEOF:
		return root, nil
	case tokenRParen:
		return nil, newParseError(domain.ErrUnbalancedParen, t.offset, t.lexeme)
	default:
		return nil, newParseError(domain.ErrTrailingInput, t.offset, t.lexeme)
	}
}

// expr is the Pratt core: parse a prefix operand, then fold in infix
// operators while their binding power is at least minBP.
func (p *parser) expr(minBP int) (node, error) {
	left, err := p.prefix()
	if err != nil {
		return nil, err
	}

	for {
		t := p.peek()

		var (
			bp         int
			op         binOp
			rightAssoc bool
			implicit   bool
		)
		switch t.typ {
		case tokenPlus:
			bp, op = bpAdd, opAdd
		case tokenMinus:
			bp, op = bpAdd, opSub
		case tokenStar:
			bp, op = bpMul, opMul
		case tokenSlash:
			bp, op = bpMul, opDiv
		case tokenCaret:
			bp, op, rightAssoc = bpPow, opPow, true
		case tokenNumber, tokenIdent, tokenLParen:
			bp, op, implicit = bpMul, opMul, true
		default:
			return left, nil
		}
		if bp < minBP {
			return left, nil
		}

		if !implicit {
			p.next()
		}
		nextMin := bp + 1
		if rightAssoc {
			nextMin = bp
		}
		right, err := p.expr(nextMin)
		if err != nil {
			return nil, err
		}
		left = fold(binNode{op: op, left: left, right: right})
	}
}

// prefix parses one operand: a literal, name, parenthesized group or unary
// sign.
func (p *parser) prefix() (node, error) {
	t := p.next()
	switch t.typ {
	case tokenNumber:
		return constNode{value: t.value}, nil

	case tokenIdent:
		return p.name(t)

	case tokenMinus:
		operand, err := p.expr(bpUnary)
		if err != nil {
			return nil, err
		}
		return fold(negNode{operand: operand}), nil

	case tokenPlus:
		return p.expr(bpUnary)

	case tokenLParen:
		inner, err := p.expr(0)
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.typ != tokenRParen {
			return nil, newParseError(domain.ErrUnbalancedParen, t.offset, t.lexeme)
		}
		return inner, nil

	case tokenEOF:
		return nil, newParseError(domain.ErrUnexpectedEnd, t.offset, "")

	default:
		return nil, newParseError(domain.ErrUnexpectedToken, t.offset, t.lexeme)
	}
}

// name resolves an identifier: the free variable, a constant, or a function
// call.
func (p *parser) name(t token) (node, error) {
	if t.lexeme == "x" {
		return varNode{}, nil
	}
	if value, ok := p.consts[t.lexeme]; ok {
		return constNode{value: value}, nil
	}
	fn, ok := p.funcs[t.lexeme]
	if !ok {
		if _, known := builtinFuncs()[t.lexeme]; known {
			// Recognized but disabled by config.
			return nil, newParseError(domain.ErrUnknownFunction, t.offset, t.lexeme)
		}
		return nil, newParseError(domain.ErrUnknownIdentifier, t.offset, t.lexeme)
	}

	if p.peek().typ != tokenLParen {
		return nil, newParseError(domain.ErrMissingArgument, t.offset, t.lexeme)
	}
	open := p.next()
	arg, err := p.expr(0)
	if err != nil {
		return nil, err
	}
	if closing := p.next(); closing.typ != tokenRParen {
		return nil, newParseError(domain.ErrUnbalancedParen, open.offset, open.lexeme)
	}
	return fold(callNode{name: t.lexeme, fn: fn, arg: arg}), nil
}
