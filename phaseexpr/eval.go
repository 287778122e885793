// SPDX-License-Identifier: MIT

package phaseexpr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrSyntax indicates input outside the expression grammar.
	ErrSyntax = errors.New("phaseexpr: syntax error")

	// ErrUnknownIdent indicates a name other than pi.
	ErrUnknownIdent = errors.New("phaseexpr: unknown identifier")

	// ErrNonFinite indicates a result (or intermediate) that is ±Inf or NaN,
	// e.g. a division by zero.
	ErrNonFinite = errors.New("phaseexpr: result is not finite")
)

const (
	maxInput = 256 // bytes
	maxDepth = 64  // nested unary operators and parentheses
	tau      = 2 * math.Pi
)

// Eval parses src and returns its value.
func Eval(src string) (float64, error) {
	if len(src) > maxInput {
		return 0, fmt.Errorf("expression longer than %d bytes: %w", maxInput, ErrSyntax)
	}

	p := &parser{lex: &lexer{input: src}}
	p.advance()

	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.cur.typ != tokenEOF {
		return 0, p.unexpected()
	}

	return v, nil
}

// Phase evaluates src and reduces the value modulo 2π into [0, 2π).
func Phase(src string) (float64, error) {
	v, err := Eval(src)
	if err != nil {
		return 0, err
	}

	r := math.Mod(v, tau)
	if r < 0 {
		r += tau
	}
	if r >= tau {
		r = 0
	}

	return r, nil
}

// parser is a recursive-descent evaluator over the lexer's tokens.
type parser struct {
	lex   *lexer
	cur   token
	depth int
}

func (p *parser) advance() {
	p.cur = p.lex.next()
}

func (p *parser) unexpected() error {
	return fmt.Errorf("unexpected %s at offset %d: %w", p.cur, p.cur.pos, ErrSyntax)
}

func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for p.cur.typ == tokenPlus || p.cur.typ == tokenMinus {
		op := p.cur
		p.advance()
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if op.typ == tokenPlus {
			v += rhs
		} else {
			v -= rhs
		}
		if err = finite(v, op); err != nil {
			return 0, err
		}
	}

	return v, nil
}

func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for p.cur.typ == tokenStar || p.cur.typ == tokenSlash {
		op := p.cur
		p.advance()
		rhs, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op.typ == tokenStar {
			v *= rhs
		} else {
			if rhs == 0 {
				return 0, fmt.Errorf("division by zero at offset %d: %w", op.pos, ErrNonFinite)
			}
			v /= rhs
		}
		if err = finite(v, op); err != nil {
			return 0, err
		}
	}

	return v, nil
}

func (p *parser) unary() (float64, error) {
	if p.depth++; p.depth > maxDepth {
		return 0, fmt.Errorf("nesting deeper than %d at offset %d: %w", maxDepth, p.cur.pos, ErrSyntax)
	}
	defer func() { p.depth-- }()

	switch p.cur.typ {
	case tokenPlus:
		p.advance()
		return p.unary()
	case tokenMinus:
		p.advance()
		v, err := p.unary()
		return -v, err
	}

	return p.primary()
}

func (p *parser) primary() (float64, error) {
	tok := p.cur
	switch tok.typ {
	case tokenNumber:
		p.advance()
		v, err := strconv.ParseFloat(tok.lit, 64)
		switch {
		case err == nil:
			return v, nil
		case errors.Is(err, strconv.ErrRange) && !math.IsInf(v, 0):
			// Underflow rounds to zero, which is a fine phase.
			return v, nil
		case errors.Is(err, strconv.ErrRange):
			return 0, fmt.Errorf("number %q at offset %d: %w", tok.lit, tok.pos, ErrNonFinite)
		}
		return 0, fmt.Errorf("malformed number %q at offset %d: %w", tok.lit, tok.pos, ErrSyntax)

	case tokenIdent:
		p.advance()
		if tok.lit == "pi" || tok.lit == "π" {
			return math.Pi, nil
		}
		return 0, fmt.Errorf("%q at offset %d: %w", tok.lit, tok.pos, ErrUnknownIdent)

	case tokenLParen:
		p.advance()
		v, err := p.expr()
		if err != nil {
			return 0, err
		}
		if p.cur.typ != tokenRParen {
			return 0, p.unexpected()
		}
		p.advance()
		return v, nil
	}

	return 0, p.unexpected()
}

// finite rejects ±Inf and NaN produced by the operator op.
func finite(v float64, op token) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Errorf("%s at offset %d overflows: %w", op, op.pos, ErrNonFinite)
	}

	return nil
}
