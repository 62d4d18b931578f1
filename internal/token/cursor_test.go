package token_test

import (
	"testing"

	"github.com/lavender-lang/lavender/internal/token"
)

func TestCursorPeekAdvanceEOF(t *testing.T) {
	toks := []token.Token{
		{Type: token.IDENT, Lexeme: "x"},
		{Type: token.IDENT, Lexeme: "y"},
	}
	c := token.NewCursor(toks)

	if got := c.Peek(); got.Lexeme != "x" {
		t.Errorf("Peek() = %q, want x", got.Lexeme)
	}
	if got := c.Advance(); got.Lexeme != "x" {
		t.Errorf("Advance() = %q, want x", got.Lexeme)
	}
	if got := c.Advance(); got.Lexeme != "y" {
		t.Errorf("Advance() = %q, want y", got.Lexeme)
	}
	if !c.AtEnd() {
		t.Error("AtEnd() should be true after exhausting the token slice")
	}
	if got := c.Peek(); got.Type != token.EOF {
		t.Errorf("Peek() past the end = %v, want EOF", got.Type)
	}
	if got := c.Advance(); got.Type != token.EOF {
		t.Error("Advance() past the end should keep returning EOF, not panic")
	}
}

func TestCursorPeekAtAndMarkReset(t *testing.T) {
	toks := []token.Token{
		{Type: token.IDENT, Lexeme: "a"},
		{Type: token.IDENT, Lexeme: "b"},
		{Type: token.IDENT, Lexeme: "c"},
	}
	c := token.NewCursor(toks)
	if got := c.PeekAt(2); got.Lexeme != "c" {
		t.Errorf("PeekAt(2) = %q, want c", got.Lexeme)
	}
	if got := c.PeekAt(10); got.Type != token.EOF {
		t.Errorf("PeekAt out of range = %v, want EOF", got.Type)
	}

	mark := c.Mark()
	c.Advance()
	c.Advance()
	c.Reset(mark)
	if got := c.Peek(); got.Lexeme != "a" {
		t.Errorf("Peek() after Reset(mark) = %q, want a (back to start)", got.Lexeme)
	}
}

func TestTokenIsOperand(t *testing.T) {
	operandTypes := []token.Type{token.NUMBER, token.INTEGER, token.STRING, token.IDENT, token.QUAL_IDENT, token.FUNC_VAL, token.QUAL_FUNC_VAL}
	for _, ty := range operandTypes {
		if !(token.Token{Type: ty}).IsOperand() {
			t.Errorf("IsOperand() for %v = false, want true", ty)
		}
	}
	nonOperandTypes := []token.Type{token.SYMBOL, token.LITERAL, token.EOF, token.EMPTY_ARGS}
	for _, ty := range nonOperandTypes {
		if (token.Token{Type: ty}).IsOperand() {
			t.Errorf("IsOperand() for %v = true, want false", ty)
		}
	}
}
