// errors.go — unified error type for the parse/evaluate pipeline.
//
// Every failure the core can produce is a *Error carrying a DiagKind
// discriminant and a plain-text message. Nothing is ever swallowed inside
// the evaluator or environment lookup; errors surface to the immediate
// caller, and only the REPL (cmd/yalispy) catches them to report and
// continue. Callers that need to branch on the failure class use the Is*
// predicates rather than matching message text.
//
// Tokens carry no positions (see lexer.go), so messages are location-free.
package yalispy

import "fmt"

// DiagKind classifies a core error.
type DiagKind int

const (
	DiagParse       DiagKind = iota // malformed or unbalanced input
	DiagUndefined                   // variable lookup miss
	DiagUnsupported                 // tree shape the evaluator does not recognize
	DiagArity                       // parameter/argument count mismatch
	DiagType                        // wrong value kind (non-callable, non-list, non-number)
	DiagEmptyList                   // head of an empty list
	DiagDivZero                     // division by zero
)

// Error is the single error type produced by the core.
type Error struct {
	Kind DiagKind
	Msg  string
}

func (e *Error) Error() string {
	return e.label() + ": " + e.Msg
}

func (e *Error) label() string {
	switch e.Kind {
	case DiagParse:
		return "parse error"
	case DiagUndefined:
		return "undefined variable"
	case DiagUnsupported:
		return "unsupported expression"
	case DiagArity:
		return "arity mismatch"
	case DiagType:
		return "type mismatch"
	case DiagEmptyList:
		return "empty list"
	case DiagDivZero:
		return "division by zero"
	default:
		return "error"
	}
}

// ---- constructors ------------------------------------------------------

func parseErrf(format string, args ...any) *Error {
	return &Error{Kind: DiagParse, Msg: fmt.Sprintf(format, args...)}
}

func undefinedErr(name string) *Error {
	return &Error{Kind: DiagUndefined, Msg: name}
}

func unsupportedErrf(format string, args ...any) *Error {
	return &Error{Kind: DiagUnsupported, Msg: fmt.Sprintf(format, args...)}
}

func arityErrf(format string, args ...any) *Error {
	return &Error{Kind: DiagArity, Msg: fmt.Sprintf(format, args...)}
}

func typeErrf(format string, args ...any) *Error {
	return &Error{Kind: DiagType, Msg: fmt.Sprintf(format, args...)}
}

func emptyListErr(op string) *Error {
	return &Error{Kind: DiagEmptyList, Msg: op + " of empty list"}
}

func divZeroErr() *Error {
	return &Error{Kind: DiagDivZero, Msg: "divisor is zero"}
}

// ---- predicates --------------------------------------------------------

func kindIs(err error, k DiagKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}

// IsParseError reports whether err is a malformed-input failure.
func IsParseError(err error) bool { return kindIs(err, DiagParse) }

// IsUndefinedVariable reports whether err is a lookup miss.
func IsUndefinedVariable(err error) bool { return kindIs(err, DiagUndefined) }

// IsUnsupportedExpression reports whether err is an unrecognized tree shape.
func IsUnsupportedExpression(err error) bool { return kindIs(err, DiagUnsupported) }

// IsArityMismatch reports whether err is an argument-count failure.
func IsArityMismatch(err error) bool { return kindIs(err, DiagArity) }

// IsTypeMismatch reports whether err is a wrong-value-kind failure.
func IsTypeMismatch(err error) bool { return kindIs(err, DiagType) }

// IsEmptyList reports whether err came from taking the head of an empty list.
func IsEmptyList(err error) bool { return kindIs(err, DiagEmptyList) }

// IsDivisionByZero reports whether err is a zero-divisor failure.
func IsDivisionByZero(err error) bool { return kindIs(err, DiagDivZero) }
