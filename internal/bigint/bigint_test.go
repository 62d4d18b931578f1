package bigint_test

import (
	"testing"

	"github.com/lavender-lang/lavender/internal/bigint"
)

func TestAddSubMul(t *testing.T) {
	a := bigint.FromInt64(9223372036854775807) // math.MaxInt64
	one := bigint.FromInt64(1)
	sum := a.Add(one)
	if sum.ToStr() != "9223372036854775808" {
		t.Errorf("sum = %s, want 9223372036854775808", sum.ToStr())
	}
	if !sum.Sub(one).Equal(a) {
		t.Error("(a+1)-1 != a")
	}
	prod := bigint.FromInt64(3).Mul(bigint.FromInt64(7))
	if prod.ToStr() != "21" {
		t.Errorf("3*7 = %s, want 21", prod.ToStr())
	}
}

func TestNegateAndCmp(t *testing.T) {
	a := bigint.FromInt64(5)
	neg := a.Negate()
	if neg.ToStr() != "-5" {
		t.Errorf("negate(5) = %s, want -5", neg.ToStr())
	}
	if a.Cmp(neg) <= 0 {
		t.Error("5 should compare greater than -5")
	}
	if neg.Sign() != -1 {
		t.Errorf("sign(-5) = %d, want -1", neg.Sign())
	}
}

func TestLshift(t *testing.T) {
	a := bigint.FromInt64(1)
	shifted := a.Lshift(4)
	if shifted.ToStr() != "16" {
		t.Errorf("1<<4 = %s, want 16", shifted.ToStr())
	}
}

func TestFitsInt64(t *testing.T) {
	small := bigint.FromInt64(42)
	if !small.FitsInt64() {
		t.Error("42 should fit in int64")
	}
	if small.Int64() != 42 {
		t.Errorf("Int64() = %d, want 42", small.Int64())
	}

	big, ok := bigint.FromDecimalString("99999999999999999999999999999")
	if !ok {
		t.Fatal("FromDecimalString failed to parse")
	}
	if big.FitsInt64() {
		t.Error("a 30-digit number should not fit in int64")
	}
}

func TestFromDecimalStringRejectsOctalPrefix(t *testing.T) {
	// Unlike FromString's base-0 auto-detect, a leading 0 must not be
	// reinterpreted as an octal prefix; integer literals are always
	// decimal digit runs.
	n, ok := bigint.FromDecimalString("010")
	if !ok {
		t.Fatal("FromDecimalString(\"010\") should parse")
	}
	if n.ToStr() != "10" {
		t.Errorf("FromDecimalString(\"010\") = %s, want 10 (not octal 8)", n.ToStr())
	}
}

func TestToBufTwosComplement(t *testing.T) {
	cases := []struct {
		n    int64
		want []byte
	}{
		{0, []byte{0}},
		{1, []byte{1}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{256, []byte{0x01, 0x00}},
		{-1, []byte{0xff}},
		{-128, []byte{0xff, 0x80}},
		{-256, []byte{0xff, 0x00}},
	}
	for _, c := range cases {
		got := bigint.FromInt64(c.n).ToBuf()
		if len(got) != len(c.want) {
			t.Errorf("ToBuf(%d) = %x, want %x", c.n, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Errorf("ToBuf(%d) = %x, want %x", c.n, got, c.want)
				break
			}
		}
	}
}

func TestMulToBuf(t *testing.T) {
	buf := bigint.FromInt64(16).MulToBuf(bigint.FromInt64(16))
	if len(buf) != 2 || buf[0] != 0x01 || buf[1] != 0x00 {
		t.Errorf("16*16 buf = %x, want 0100", buf)
	}
}
