package domain

import "strconv"

// ExprID is the stable identity of a compiled expression. Two expressions
// that normalize to the same source text share an ID; any textual change
// produces a new one. Sample cache keys are scoped by ExprID, so stale
// values can never leak across expression edits.
type ExprID uint64

// String returns the ID in fixed-width hex, the form used in logs and spans.
func (id ExprID) String() string {
	const hexDigits = 16
	s := strconv.FormatUint(uint64(id), 16)
	for len(s) < hexDigits {
		s = "0" + s
	}
	return s
}
