package algebra_test

import (
	"math"
	"testing"

	"github.com/lavender-lang/lavender/internal/algebra"
	"github.com/lavender-lang/lavender/internal/value"
)

func TestAddIntegerNoOverflowStaysInteger(t *testing.T) {
	r := algebra.Add(value.MakeInteger(2), value.MakeInteger(3))
	if r.Kind != value.Integer || r.Int != 5 {
		t.Errorf("2+3 = %+v, want Integer(5)", r)
	}
}

// For any Integer pair, Add returns either an Integer holding the
// mathematical sum or a BigInt whose decimal rendering equals it.
func TestAddIntegerOverflowPromotesToBigInt(t *testing.T) {
	r := algebra.Add(value.MakeInteger(math.MaxInt64), value.MakeInteger(1))
	if r.Kind != value.BigInt {
		t.Fatalf("MaxInt64+1 kind = %v, want BigInt", r.Kind)
	}
	if r.Big.Get().ToStr() != "9223372036854775808" {
		t.Errorf("MaxInt64+1 = %s, want 9223372036854775808", r.Big.Get().ToStr())
	}
}

func TestMulOverflowPromotesToBigInt(t *testing.T) {
	r := algebra.Mul(value.MakeInteger(math.MaxInt64), value.MakeInteger(2))
	if r.Kind != value.BigInt {
		t.Fatalf("MaxInt64*2 kind = %v, want BigInt", r.Kind)
	}
}

// MinInt64 * -1 wraps back to MinInt64 in 64-bit arithmetic, so its
// wrapped product divides back cleanly; the promotion must catch it
// anyway.
func TestMulIntegerMinByMinusOnePromotes(t *testing.T) {
	r := algebra.Mul(value.MakeInteger(math.MinInt64), value.MakeInteger(-1))
	if r.Kind != value.BigInt {
		t.Fatalf("MinInt64*-1 kind = %v, want BigInt", r.Kind)
	}
	if r.Big.Get().ToStr() != "9223372036854775808" {
		t.Errorf("MinInt64*-1 = %s, want 9223372036854775808", r.Big.Get().ToStr())
	}
}

func TestMulIntegerMinByOneStaysInteger(t *testing.T) {
	r := algebra.Mul(value.MakeInteger(math.MinInt64), value.MakeInteger(1))
	if r.Kind != value.Integer || r.Int != math.MinInt64 {
		t.Errorf("MinInt64*1 = %+v, want Integer(MinInt64)", r)
	}
	r = algebra.Mul(value.MakeInteger(-3), value.MakeInteger(7))
	if r.Kind != value.Integer || r.Int != -21 {
		t.Errorf("-3*7 = %+v, want Integer(-21)", r)
	}
	r = algebra.Mul(value.MakeInteger(0), value.MakeInteger(-9))
	if r.Kind != value.Integer || r.Int != 0 {
		t.Errorf("0*-9 = %+v, want Integer(0)", r)
	}
}

func TestNumberWideningWins(t *testing.T) {
	r := algebra.Add(value.MakeInteger(1), value.MakeNumber(0.5))
	if r.Kind != value.Number || r.Num != 1.5 {
		t.Errorf("1 + 0.5 = %+v, want Number(1.5)", r)
	}
}

func TestNegIntegerMinPromotesToBigInt(t *testing.T) {
	r := algebra.Neg(value.MakeInteger(math.MinInt64))
	if r.Kind != value.BigInt {
		t.Fatalf("neg(MinInt64) kind = %v, want BigInt", r.Kind)
	}
	if r.Big.Get().ToStr() != "9223372036854775808" {
		t.Errorf("neg(MinInt64) = %s, want 9223372036854775808", r.Big.Get().ToStr())
	}
}

func TestNegOrdinaryIntegerStaysInteger(t *testing.T) {
	r := algebra.Neg(value.MakeInteger(5))
	if r.Kind != value.Integer || r.Int != -5 {
		t.Errorf("neg(5) = %+v, want Integer(-5)", r)
	}
}

// A zero divisor with a non-zero numerator yields the signed
// infinity; 0/0 yields NaN.
func TestDivZeroDivisor(t *testing.T) {
	r := algebra.Div(value.MakeInteger(5), value.MakeInteger(0))
	if r.Kind != value.Number || !math.IsInf(r.Num, 1) {
		t.Errorf("5/0 = %+v, want +Inf", r)
	}
	r = algebra.Div(value.MakeInteger(-5), value.MakeInteger(0))
	if r.Kind != value.Number || !math.IsInf(r.Num, -1) {
		t.Errorf("-5/0 = %+v, want -Inf", r)
	}
	r = algebra.Div(value.MakeInteger(0), value.MakeInteger(0))
	if r.Kind != value.Number || !math.IsNaN(r.Num) {
		t.Errorf("0/0 = %+v, want NaN", r)
	}
}

func TestDivTruncatesTowardZero(t *testing.T) {
	r := algebra.Div(value.MakeInteger(7), value.MakeInteger(2))
	if r.Kind != value.Number || r.Num != 3 {
		t.Errorf("7/2 = %+v, want Number(3)", r)
	}
	r = algebra.Div(value.MakeInteger(-7), value.MakeInteger(2))
	if r.Kind != value.Number || r.Num != -3 {
		t.Errorf("-7/2 = %+v, want Number(-3)", r)
	}
}

func TestNormalizeDemotesOneWordBigInt(t *testing.T) {
	r := algebra.Add(value.MakeInteger(math.MaxInt64), value.MakeInteger(1))
	r = algebra.Sub(r, value.MakeInteger(1)) // back down to a one-word-representable value
	if r.Kind != value.Integer {
		t.Errorf("demoted sum kind = %v, want Integer (disjointness invariant)", r.Kind)
	}
	if r.Int != math.MaxInt64 {
		t.Errorf("demoted sum = %d, want MaxInt64", r.Int)
	}
}

func TestRemFollowsDividendSign(t *testing.T) {
	r := algebra.Rem(value.MakeInteger(7), value.MakeInteger(2))
	if r.Kind != value.Integer || r.Int != 1 {
		t.Errorf("7%%2 = %+v, want Integer(1)", r)
	}
	r = algebra.Rem(value.MakeInteger(-7), value.MakeInteger(2))
	if r.Kind != value.Integer || r.Int != -1 {
		t.Errorf("-7%%2 = %+v, want Integer(-1)", r)
	}
	r = algebra.Rem(value.MakeInteger(7), value.MakeInteger(-2))
	if r.Kind != value.Integer || r.Int != 1 {
		t.Errorf("7%%-2 = %+v, want Integer(1)", r)
	}
}

func TestRemZeroDivisorIsNaN(t *testing.T) {
	r := algebra.Rem(value.MakeInteger(7), value.MakeInteger(0))
	if r.Kind != value.Number || !math.IsNaN(r.Num) {
		t.Errorf("7%%0 = %+v, want NaN", r)
	}
}

func TestArithmeticOnNonNumericIsUndefined(t *testing.T) {
	r := algebra.Add(value.MakeString("x"), value.MakeInteger(1))
	if r.Kind != value.Undefined {
		t.Errorf("\"x\"+1 kind = %v, want Undefined", r.Kind)
	}
	r = algebra.Div(value.MakeInteger(1), value.MakeString("x"))
	if r.Kind != value.Undefined {
		t.Errorf("1/\"x\" kind = %v, want Undefined", r.Kind)
	}
}
