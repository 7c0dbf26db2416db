package expr

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"go.trai.ch/graf/internal/core/domain"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenCaret
	tokenLParen
	tokenRParen
)

// token is one lexical unit of an expression. Offset is the byte position of
// the token's first character in the submitted text, so errors can point at
// exactly what the user typed.
type token struct {
	typ    tokenType
	lexeme string
	value  float64
	offset int
}

type lexer struct {
	src string
	pos int
}

// scan tokenizes the whole source. Whitespace separates tokens and is
// otherwise ignored; offsets refer to the original text.
func scan(src string) ([]token, error) {
	l := &lexer{src: src}
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.typ == tokenEOF {
			return toks, nil
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	if l.pos >= len(l.src) {
		return token{typ: tokenEOF, offset: len(l.src)}, nil
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])

	switch {
	case r == '+':
		l.pos += size
		return token{typ: tokenPlus, lexeme: "+", offset: start}, nil
	case r == '-':
		l.pos += size
		return token{typ: tokenMinus, lexeme: "-", offset: start}, nil
	case r == '*':
		l.pos += size
		// ** is the alternate power spelling.
		if l.pos < len(l.src) && l.src[l.pos] == '*' {
			l.pos++
			return token{typ: tokenCaret, lexeme: "**", offset: start}, nil
		}
		return token{typ: tokenStar, lexeme: "*", offset: start}, nil
	case r == '/':
		l.pos += size
		return token{typ: tokenSlash, lexeme: "/", offset: start}, nil
	case r == '^':
		l.pos += size
		return token{typ: tokenCaret, lexeme: "^", offset: start}, nil
	case r == '(':
		l.pos += size
		return token{typ: tokenLParen, lexeme: "(", offset: start}, nil
	case r == ')':
		l.pos += size
		return token{typ: tokenRParen, lexeme: ")", offset: start}, nil
	case isDigit(r) || (r == '.' && l.digitFollows()):
		return l.scanNumber()
	case isIdentStart(r):
		return l.scanIdent(), nil
	default:
		return token{}, newParseError(domain.ErrInvalidCharacter, start, string(r))
	}
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		l.pos += size
	}
}

// digitFollows reports whether the character after the current one is a
// digit, used to let ".5" lex as a number while "." alone stays invalid.
func (l *lexer) digitFollows() bool {
	return l.pos+1 < len(l.src) && isDigit(rune(l.src[l.pos+1]))
}

// scanNumber consumes a decimal literal with optional fraction and exponent.
func (l *lexer) scanNumber() (token, error) {
	start := l.pos

	for l.pos < len(l.src) && (isDigit(rune(l.src[l.pos])) || l.src[l.pos] == '.') {
		l.pos++
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		mark := l.pos
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos >= len(l.src) || !isDigit(rune(l.src[l.pos])) {
			// Not an exponent after all; "2e" could be 2*e.
			l.pos = mark
		} else {
			for l.pos < len(l.src) && isDigit(rune(l.src[l.pos])) {
				l.pos++
			}
		}
	}

	lexeme := l.src[start:l.pos]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return token{}, newParseError(domain.ErrInvalidNumber, start, lexeme)
	}
	return token{typ: tokenNumber, lexeme: lexeme, value: value, offset: start}, nil
}

func (l *lexer) scanIdent() token {
	start := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !isIdentPart(r) {
			break
		}
		l.pos += size
	}
	return token{typ: tokenIdent, lexeme: l.src[start:l.pos], offset: start}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool { return unicode.IsLetter(r) || r == '_' }

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }
