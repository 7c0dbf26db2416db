// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/graf/internal/core/domain"

// CompiledExpression is an immutable, evaluable form of an expression text.
// Implementations are pure: EvalAt has no side effects and never panics on
// any finite input.
type CompiledExpression interface {
	// ID returns the stable identity of the expression. Cache keys are
	// scoped by it.
	ID() domain.ExprID

	// Source returns the normalized source text the expression was
	// compiled from.
	Source() string

	// EvalAt evaluates the expression at x. Points where the expression
	// is mathematically undefined yield NaN.
	EvalAt(x float64) float64
}

// Compiler turns expression text into a callable form.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile parses and compiles the given text. Malformed input returns
	// an error carrying the offending offset; it never panics and never
	// executes anything from the input.
	Compile(text string) (CompiledExpression, error)
}
