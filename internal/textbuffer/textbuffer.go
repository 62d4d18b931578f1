// Package textbuffer implements the global appendable instruction
// buffer: every defined function occupies a contiguous slice of it,
// addressed by the offset AddExpr returned.
package textbuffer

import "github.com/lavender-lang/lavender/internal/postfix"

// Buffer is the process-wide instruction store; each function
// occupies a contiguous slice [offset, offset+len) within it.
type Buffer struct {
	code []postfix.Instr
	// marks records the start offset of each AddExpr call, so ClearExpr
	// can drop exactly the most recently appended slice.
	marks []int
}

func New() *Buffer {
	return &Buffer{}
}

// AddExpr appends instrs and returns the offset they now start at.
func (b *Buffer) AddExpr(instrs []postfix.Instr) int {
	offset := len(b.code)
	b.marks = append(b.marks, offset)
	b.code = append(b.code, instrs...)
	return offset
}

// ClearExpr drops the most recently appended slice, used by one-shot
// REPL expressions.
func (b *Buffer) ClearExpr() {
	if len(b.marks) == 0 {
		return
	}
	last := b.marks[len(b.marks)-1]
	b.marks = b.marks[:len(b.marks)-1]
	b.code = b.code[:last]
}

// Slice returns the instructions in [offset, end).
func (b *Buffer) Slice(offset, end int) []postfix.Instr {
	return b.code[offset:end]
}

// Len reports the current end-of-buffer offset — the value a caller
// should record as a function's textOffset before calling AddExpr for
// its body.
func (b *Buffer) Len() int {
	return len(b.code)
}
