// Package diagnostics holds the flat per-subsystem error
// enumerations, the fixed message catalog, and the error carrier every
// parser entrypoint returns in place of mutable global state.
package diagnostics

import (
	"fmt"

	"github.com/lavender-lang/lavender/internal/token"
)

// ErrorCode is a string-backed enum so test failures print something
// readable instead of a bare integer.
type ErrorCode string

// Declaration-parser codes.
const (
	ErrNotFunction        ErrorCode = "E_NOT_FUNCTION"
	ErrUnterminatedExpr   ErrorCode = "E_UNTERMINATED_EXPR"
	ErrExpectedArgs       ErrorCode = "E_EXPECTED_ARGS"
	ErrBadArgs            ErrorCode = "E_BAD_ARGS"
	ErrMissingBody        ErrorCode = "E_MISSING_BODY"
	ErrDuplicateDecl      ErrorCode = "E_DUPLICATE_DECL"
	ErrBadFixing          ErrorCode = "E_BAD_FIXING"
	ErrTooManyParams      ErrorCode = "E_TOO_MANY_PARAMS"
	ErrReservedIdentifier ErrorCode = "E_RESERVED_IDENTIFIER"
	ErrBadLocals          ErrorCode = "E_BAD_LOCALS"
)

// Expression-parser codes.
const (
	ErrNameNotFound     ErrorCode = "E_NAME_NOT_FOUND"
	ErrExpectInfix      ErrorCode = "E_EXPECT_INFIX"
	ErrExpectPrefix     ErrorCode = "E_EXPECT_PREFIX"
	ErrUnexpectedToken  ErrorCode = "E_UNEXPECTED_TOKEN"
	ErrBadArity         ErrorCode = "E_BAD_ARITY"
	ErrUnmatchedBracket ErrorCode = "E_UNMATCHED_BRACKET"
	ErrZeroArityAlias   ErrorCode = "E_ZERO_ARITY_ALIAS"
)

// Lexer codes.
const (
	ErrIllegalChar      ErrorCode = "E_ILLEGAL_CHAR"
	ErrUnterminatedStr  ErrorCode = "E_UNTERMINATED_STRING"
	ErrBadQualifiedName ErrorCode = "E_BAD_QUALIFIED_NAME"
	ErrBadNumber        ErrorCode = "E_BAD_NUMBER"
	ErrBadExponent      ErrorCode = "E_BAD_EXPONENT"
	ErrBadFuncVal       ErrorCode = "E_BAD_FUNC_VAL"
	ErrBadStringEscape  ErrorCode = "E_BAD_STRING_ESCAPE"
)

var messages = map[ErrorCode]string{
	ErrNotFunction:        "expression does not define a function",
	ErrUnterminatedExpr:   "unterminated expression",
	ErrExpectedArgs:       "expected an argument list",
	ErrBadArgs:            "bad argument list",
	ErrMissingBody:        "missing function body",
	ErrDuplicateDecl:      "inconsistent function declarations",
	ErrBadFixing:          "operator arity incompatible with fixing",
	ErrTooManyParams:      "too many parameters",
	ErrReservedIdentifier: "reserved identifier",
	ErrBadLocals:          "malformed local binding",
	ErrNameNotFound:       "name not found",
	ErrExpectInfix:        "operator expected",
	ErrExpectPrefix:       "operand expected",
	ErrUnexpectedToken:    "unexpected token",
	ErrBadArity:           "wrong number of arguments",
	ErrUnmatchedBracket:   "unmatched bracket",
	ErrZeroArityAlias:     "function value has zero effective arity",
	ErrIllegalChar:        "illegal character",
	ErrUnterminatedStr:    "unterminated string literal",
	ErrBadQualifiedName:   "namespace without name",
	ErrBadNumber:          "malformed number literal",
	ErrBadExponent:        "number has missing exponent",
	ErrBadFuncVal:         "missing function value",
	ErrBadStringEscape:    "unknown string escape sequence",
}

// Message looks up the catalog text for a code.
func Message(code ErrorCode) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return "unknown error"
}

// DiagnosticError pairs an error code with the offending token.
type DiagnosticError struct {
	Code ErrorCode
	Tok  token.Token
	Args []any
}

func (e *DiagnosticError) Error() string {
	msg := Message(e.Code)
	if len(e.Args) > 0 {
		msg = fmt.Sprintf(msg, e.Args...)
	}
	if e.Tok.Lexeme != "" {
		return fmt.Sprintf("%s: %q (line %d, col %d)", msg, e.Tok.Lexeme, e.Tok.Line, e.Tok.Column)
	}
	return msg
}

// NewError builds a DiagnosticError: code, offending token, then
// optional format arguments for the catalog message.
func NewError(code ErrorCode, tok token.Token, args ...any) *DiagnosticError {
	return &DiagnosticError{Code: code, Tok: tok, Args: args}
}
