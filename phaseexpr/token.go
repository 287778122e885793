// SPDX-License-Identifier: MIT

package phaseexpr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// tokenType is the kind of a lexical token.
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenError
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
)

// token is one lexeme and the byte offset where it starts.
type token struct {
	typ tokenType
	lit string
	pos int
}

func (t token) String() string {
	switch t.typ {
	case tokenEOF:
		return "end of input"
	case tokenError:
		return fmt.Sprintf("invalid character %q", t.lit)
	}

	return fmt.Sprintf("%q", t.lit)
}

// lexer splits an expression into tokens.
type lexer struct {
	input string
	pos   int
}

func (l *lexer) next() token {
	for l.pos < len(l.input) {
		r, w := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += w
	}
	if l.pos >= len(l.input) {
		return token{typ: tokenEOF, pos: l.pos}
	}

	start := l.pos
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	if typ, ok := operator(r); ok {
		l.pos += w
		return token{typ: typ, lit: string(r), pos: start}
	}

	switch {
	case isDigit(r) || r == '.':
		return l.number()
	case unicode.IsLetter(r) || r == '_':
		for l.pos < len(l.input) {
			r, w = utf8.DecodeRuneInString(l.input[l.pos:])
			if !unicode.IsLetter(r) && !isDigit(r) && r != '_' {
				break
			}
			l.pos += w
		}
		return token{typ: tokenIdent, lit: l.input[start:l.pos], pos: start}
	}

	l.pos += w
	return token{typ: tokenError, lit: string(r), pos: start}
}

// number scans digits [. digits] [e [+-] digits]. Validity of the literal
// is left to strconv in the parser.
func (l *lexer) number() token {
	start := l.pos
	l.digits()
	if l.peek() == '.' {
		l.pos++
		l.digits()
	}
	if c := l.peek(); c == 'e' || c == 'E' {
		l.pos++
		if c = l.peek(); c == '+' || c == '-' {
			l.pos++
		}
		l.digits()
	}

	return token{typ: tokenNumber, lit: l.input[start:l.pos], pos: start}
}

func (l *lexer) digits() {
	for l.pos < len(l.input) && isDigit(rune(l.input[l.pos])) {
		l.pos++
	}
}

func (l *lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}

	return l.input[l.pos]
}

// operator maps single-rune operators and parentheses to their token type.
func operator(r rune) (tokenType, bool) {
	switch r {
	case '+':
		return tokenPlus, true
	case '-':
		return tokenMinus, true
	case '*':
		return tokenStar, true
	case '/':
		return tokenSlash, true
	case '(':
		return tokenLParen, true
	case ')':
		return tokenRParen, true
	}

	return tokenEOF, false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
