package expr

import "fmt"

// ParseError describes why and where an expression was rejected. Offset is a
// byte position into the submitted text. It wraps one of the domain parse
// sentinels, so callers can classify with errors.Is while front-ends point at
// the offending spot.
type ParseError struct {
	// Offset is the byte position of the problem in the submitted text.
	Offset int
	// Token is the offending text, empty when the input ended too early.
	Token string

	err error
}

func newParseError(sentinel error, offset int, tok string) *ParseError {
	return &ParseError{Offset: offset, Token: tok, err: sentinel}
}

// Error formats the reason with the offending token and offset.
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at offset %d", e.err.Error(), e.Offset)
	}
	return fmt.Sprintf("%s %q at offset %d", e.err.Error(), e.Token, e.Offset)
}

// Unwrap exposes the sentinel classification.
func (e *ParseError) Unwrap() error { return e.err }
