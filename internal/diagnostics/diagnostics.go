package diagnostics

import (
	"fmt"

	"github.com/brio-lang/brio/internal/token"
)

// ErrorCode classifies a diagnostic by the stage and cause that produced it.
type ErrorCode string

const (
	// ErrL001 — lexing: unrecognized character or unterminated literal.
	ErrL001 ErrorCode = "L001"
	// ErrP001 — parsing: unexpected token.
	ErrP001 ErrorCode = "P001"
	// ErrT001 — scope: identifier not found or redeclared.
	ErrT001 ErrorCode = "T001"
	// ErrT002 — constraint: two constraints on one class are incompatible.
	ErrT002 ErrorCode = "T002"
	// ErrT003 — arity or declaration-shape mismatch.
	ErrT003 ErrorCode = "T003"
	// ErrT004 — malformed input that a well-formed parser output cannot produce.
	ErrT004 ErrorCode = "T004"
)

// DiagnosticError is the single error type surfaced by every compiler stage.
// Message begins with a machine-stable tag (e.g. "ConstraintsNotCompatible",
// "IdentifierNotFound: x") that drivers may match on; everything after the tag
// is presentation only.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
}

func (e *DiagnosticError) Error() string {
	if e.Token.Line > 0 {
		return fmt.Sprintf("[%s] %d:%d: %s", e.Code, e.Token.Line, e.Token.Column, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Tag returns the machine-stable portion of the message: everything up to the
// first ':' when the tag carries a detail suffix, else the whole message.
func (e *DiagnosticError) Tag() string {
	for i := 0; i < len(e.Message); i++ {
		if e.Message[i] == ':' {
			return e.Message[:i]
		}
	}
	return e.Message
}

func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func Errorf(code ErrorCode, tok token.Token, format string, args ...any) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: fmt.Sprintf(format, args...)}
}
