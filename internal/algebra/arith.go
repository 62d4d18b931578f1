package algebra

import (
	"math"
	"math/bits"
	"strconv"

	"github.com/lavender-lang/lavender/internal/bigint"
	"github.com/lavender-lang/lavender/internal/value"
)

// Normalize demotes a BigInt whose value fits a 64-bit integer back to
// Integer. The two representations are disjoint: a value representable
// in 64 bits must never live in a BigInt, so every arithmetic result
// passes through here.
func Normalize(v value.Value) value.Value {
	if v.Kind == value.BigInt && v.Big.Get().FitsInt64() {
		return value.MakeInteger(v.Big.Get().Int64())
	}
	return v
}

func isNumeric(v value.Value) bool {
	switch v.Kind {
	case value.Number, value.Integer, value.BigInt:
		return true
	default:
		return false
	}
}

func toFloat(v value.Value) float64 {
	switch v.Kind {
	case value.Number:
		return v.Num
	case value.Integer:
		return float64(v.Int)
	case value.BigInt:
		f, _ := bigToFloat(v.Big.Get())
		return f
	default:
		return math.NaN()
	}
}

func bigToFloat(b *bigint.Int) (float64, bool) {
	// Best-effort widening via the decimal string; exactness is not
	// required once a value is promoted to Number.
	f, err := strconv.ParseFloat(b.ToStr(), 64)
	return f, err == nil
}

// Add follows the promotion ladder Integer -> BigInt -> Number: a
// Number operand widens the other side to double, a BigInt operand
// promotes the other side to a single-word BigInt, and two Integers
// use checked 64-bit arithmetic, promoting to BigInt on overflow.
func Add(a, b value.Value) value.Value {
	if !isNumeric(a) || !isNumeric(b) {
		return value.Undef()
	}
	if a.Kind == value.Number || b.Kind == value.Number {
		return value.MakeNumber(toFloat(a) + toFloat(b))
	}
	if a.Kind == value.BigInt || b.Kind == value.BigInt {
		return Normalize(value.MakeBigInt(promoteBig(a).Add(promoteBig(b))))
	}
	sum := a.Int + b.Int
	if (a.Int > 0 && b.Int > 0 && sum < 0) || (a.Int < 0 && b.Int < 0 && sum > 0) {
		return Normalize(value.MakeBigInt(bigint.FromInt64(a.Int).Add(bigint.FromInt64(b.Int))))
	}
	return value.MakeInteger(sum)
}

// Sub implements subtraction on the same ladder.
func Sub(a, b value.Value) value.Value {
	if !isNumeric(a) || !isNumeric(b) {
		return value.Undef()
	}
	if a.Kind == value.Number || b.Kind == value.Number {
		return value.MakeNumber(toFloat(a) - toFloat(b))
	}
	if a.Kind == value.BigInt || b.Kind == value.BigInt {
		return Normalize(value.MakeBigInt(promoteBig(a).Sub(promoteBig(b))))
	}
	diff := a.Int - b.Int
	if (a.Int >= 0 && b.Int < 0 && diff < 0) || (a.Int < 0 && b.Int > 0 && diff > 0) {
		return Normalize(value.MakeBigInt(bigint.FromInt64(a.Int).Sub(bigint.FromInt64(b.Int))))
	}
	return value.MakeInteger(diff)
}

// Mul implements multiplication on the same ladder. The Integer
// product is formed in 128 bits, so every overflow promotes — a
// divide-back check would miss MinInt64 * -1, whose wrapped product
// divides back cleanly.
func Mul(a, b value.Value) value.Value {
	if !isNumeric(a) || !isNumeric(b) {
		return value.Undef()
	}
	if a.Kind == value.Number || b.Kind == value.Number {
		return value.MakeNumber(toFloat(a) * toFloat(b))
	}
	if a.Kind == value.BigInt || b.Kind == value.BigInt {
		return Normalize(value.MakeBigInt(promoteBig(a).Mul(promoteBig(b))))
	}
	hi, lo := bits.Mul64(magnitude(a.Int), magnitude(b.Int))
	negative := (a.Int < 0) != (b.Int < 0)
	if hi == 0 {
		if negative && lo <= 1<<63 {
			// lo == 1<<63 negates to exactly MinInt64.
			return value.MakeInteger(-int64(lo))
		}
		if !negative && lo <= math.MaxInt64 {
			return value.MakeInteger(int64(lo))
		}
	}
	return Normalize(value.MakeBigInt(bigint.FromInt64(a.Int).Mul(bigint.FromInt64(b.Int))))
}

// magnitude is |n| in the unsigned domain; well-defined for MinInt64.
func magnitude(n int64) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}

// Neg implements unary negation. Negating the minimum Integer has no
// 64-bit representation and promotes to BigInt.
func Neg(a value.Value) value.Value {
	switch a.Kind {
	case value.Number:
		return value.MakeNumber(-a.Num)
	case value.Integer:
		if a.Int == math.MinInt64 {
			return value.MakeBigInt(bigint.FromInt64(a.Int).Negate())
		}
		return value.MakeInteger(-a.Int)
	case value.BigInt:
		return Normalize(value.MakeBigInt(a.Big.Get().Negate()))
	default:
		return value.Undef()
	}
}

// Div is truncating real division: the nearest integer toward zero of
// a/b when both operands are integral, the IEEE quotient otherwise.
// A zero divisor yields the signed infinity of the numerator, and
// 0/0 yields NaN.
func Div(a, b value.Value) value.Value {
	if !isNumeric(a) || !isNumeric(b) {
		return value.Undef()
	}
	if a.Kind == value.Number || b.Kind == value.Number {
		return value.MakeNumber(toFloat(a) / toFloat(b))
	}
	bf := toFloat(b)
	if bf == 0 {
		af := toFloat(a)
		if af == 0 {
			return value.MakeNumber(math.NaN())
		}
		return value.MakeNumber(math.Copysign(math.Inf(1), af))
	}
	if a.Kind == value.Integer && b.Kind == value.Integer {
		return value.MakeNumber(math.Trunc(float64(a.Int) / float64(b.Int)))
	}
	return value.MakeNumber(math.Trunc(toFloat(a) / toFloat(b)))
}

// Rem is the remainder after truncating division; the result carries
// the dividend's sign. A zero divisor yields NaN.
func Rem(a, b value.Value) value.Value {
	if !isNumeric(a) || !isNumeric(b) {
		return value.Undef()
	}
	if a.Kind == value.Integer && b.Kind == value.Integer {
		if b.Int == 0 {
			return value.MakeNumber(math.NaN())
		}
		return value.MakeInteger(a.Int % b.Int)
	}
	return value.MakeNumber(math.Mod(toFloat(a), toFloat(b)))
}

func promoteBig(v value.Value) *bigint.Int {
	if v.Kind == value.BigInt {
		return v.Big.Get()
	}
	return bigint.FromInt64(v.Int)
}
