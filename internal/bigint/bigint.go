// Package bigint implements the arbitrary-precision integers backing
// the BigInt value variant, wrapping math/big with the operation set
// the builtin algebra consumes: add, sub, mul, negate, lshift, cmp,
// equal, and the buffer/string conversions. Multiplications of large
// operands route through github.com/remyoudompheng/bigfft, whose
// Fourier-transform multiply overtakes math/big past a few thousand
// bits.
package bigint

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// fftThreshold is the operand word count at or above which bigfft's multiply
// pays for itself; below it big.Int.Mul is called directly.
const fftThreshold = 80

// Int is an owning wrapper around a math/big integer. The value is
// immutable after construction; every operation allocates its result.
type Int struct {
	v *big.Int
}

// FromInt64 wraps a machine integer, used when promoting an Integer
// operand into the BigInt domain for a mixed-type operation.
func FromInt64(n int64) *Int {
	return &Int{v: big.NewInt(n)}
}

// FromString parses a base-0 (auto-detected) integer literal.
func FromString(s string) (*Int, bool) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, false
	}
	return &Int{v: v}, true
}

// FromDecimalString parses a plain base-10 digit string — unlike
// FromString, a leading '0' is never reinterpreted as an octal prefix.
// Integer literals are always decimal digit runs, so the lexer's
// int64-overflow fallback uses this.
func FromDecimalString(s string) (*Int, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return &Int{v: v}, true
}

// Add returns a + b.
func (a *Int) Add(b *Int) *Int {
	return &Int{v: new(big.Int).Add(a.v, b.v)}
}

// Sub returns a - b.
func (a *Int) Sub(b *Int) *Int {
	return &Int{v: new(big.Int).Sub(a.v, b.v)}
}

// Mul returns a * b, routing through bigfft once either operand is
// large enough that the FFT-based multiply pays for itself.
func (a *Int) Mul(b *Int) *Int {
	if len(a.v.Bits()) >= fftThreshold || len(b.v.Bits()) >= fftThreshold {
		return &Int{v: bigfft.Mul(a.v, b.v)}
	}
	return &Int{v: new(big.Int).Mul(a.v, b.v)}
}

// MulToBuf multiplies a and b and returns the product's buffer
// representation directly, for callers that only need the bytes.
func (a *Int) MulToBuf(b *Int) []byte {
	return a.Mul(b).ToBuf()
}

// Negate returns -a.
func (a *Int) Negate() *Int {
	return &Int{v: new(big.Int).Neg(a.v)}
}

// Lshift returns a << n.
func (a *Int) Lshift(n uint) *Int {
	return &Int{v: new(big.Int).Lsh(a.v, n)}
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater
// than b.
func (a *Int) Cmp(b *Int) int {
	return a.v.Cmp(b.v)
}

// Equal reports whether a and b denote the same integer.
func (a *Int) Equal(b *Int) bool {
	return a.v.Cmp(b.v) == 0
}

// Sign reports -1, 0, or 1.
func (a *Int) Sign() int { return a.v.Sign() }

// FitsInt64 reports whether the value is representable as a 64-bit
// two's-complement integer, used to keep the Integer and BigInt
// representations disjoint.
func (a *Int) FitsInt64() bool {
	return a.v.IsInt64()
}

// Int64 returns the value as int64; callers must check FitsInt64 first.
func (a *Int) Int64() int64 {
	return a.v.Int64()
}

// ToBuf returns the big-endian two's-complement byte representation:
// the sign is the top bit of the first byte, and negative values are
// encoded over BitLen(|a|)/8+1 bytes, so -128 takes two bytes (ff80).
func (a *Int) ToBuf() []byte {
	switch a.v.Sign() {
	case 0:
		return []byte{0}
	case 1:
		b := a.v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	default:
		abs := new(big.Int).Abs(a.v)
		width := (abs.BitLen() + 8) / 8 * 8
		tc := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), uint(width)), a.v)
		b := tc.Bytes()
		for len(b) < width/8 {
			b = append([]byte{0xff}, b...)
		}
		return b
	}
}

// ToStr returns the decimal string representation.
func (a *Int) ToStr() string {
	return a.v.String()
}
