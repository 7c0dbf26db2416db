package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyExpression is returned when an expression is blank or reduces to nothing.
	ErrEmptyExpression = zerr.New("empty expression")

	// ErrUnexpectedToken is returned when the parser meets a token that cannot start or continue an expression.
	ErrUnexpectedToken = zerr.New("unexpected token")

	// ErrUnexpectedEnd is returned when an expression ends mid-construct.
	ErrUnexpectedEnd = zerr.New("unexpected end of expression")

	// ErrTrailingInput is returned when text remains after a complete expression.
	ErrTrailingInput = zerr.New("unexpected trailing input")

	// ErrInvalidNumber is returned when a numeric literal cannot be parsed.
	ErrInvalidNumber = zerr.New("invalid number literal")

	// ErrInvalidCharacter is returned when the lexer meets a character outside the expression alphabet.
	ErrInvalidCharacter = zerr.New("invalid character")

	// ErrUnknownFunction is returned when an expression calls a function outside the whitelist.
	ErrUnknownFunction = zerr.New("unknown function")

	// ErrUnknownIdentifier is returned when an expression references a name that is neither x nor a known constant.
	ErrUnknownIdentifier = zerr.New("unknown identifier")

	// ErrMissingArgument is returned when a function is used without an argument.
	ErrMissingArgument = zerr.New("function requires an argument")

	// ErrUnbalancedParen is returned when parentheses do not match.
	ErrUnbalancedParen = zerr.New("unbalanced parenthesis")

	// ErrInvalidBounds is returned when viewport bounds are not finite ordered ranges.
	ErrInvalidBounds = zerr.New("invalid viewport bounds")

	// ErrSpanTooSmall is returned when a viewport span falls below the minimum zoom extent.
	ErrSpanTooSmall = zerr.New("viewport span below minimum")

	// ErrInvalidSize is returned when a viewport pixel grid is empty.
	ErrInvalidSize = zerr.New("viewport size must be positive")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when a config value is outside its valid range.
	ErrConfigInvalid = zerr.New("invalid config value")

	// ErrNoExpression is returned when a command that needs an expression is run without one.
	ErrNoExpression = zerr.New("no expression provided")

	// ErrWatchFailed is returned when the formula file watch cannot be established.
	ErrWatchFailed = zerr.New("failed to watch formula file")

	// ErrFormulaReadFailed is returned when the watched formula file cannot be read.
	ErrFormulaReadFailed = zerr.New("failed to read formula file")
)
