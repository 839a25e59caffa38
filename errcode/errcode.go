package errcode

// Code is a stable, operator-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Line reader
	BufferOverflow Code = "buffer_overflow"

	// Grammar parser
	ParseError Code = "parse_error"

	// Semantic validation at dispatch
	UnknownPin     Code = "unknown_pin"
	UnknownChannel Code = "unknown_channel"

	Unsupported Code = "unsupported"

	Error Code = "error" // generic fallback
)

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
