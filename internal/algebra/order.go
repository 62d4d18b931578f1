package algebra

import (
	"fmt"

	"github.com/lavender-lang/lavender/internal/value"
)

// tagOrder orders values of differing variants by their tag.
func tagOrder(k value.Kind) int { return int(k) }

// Lt is a total order within each variant and tag order across
// variants. NaN comparisons are false; the caller layer folds both lt
// and ge to false when either operand is NaN.
func Lt(a, b value.Value) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	if a.Kind != b.Kind {
		if mixedInt, ok := ltMixedIntBig(a, b); ok {
			return mixedInt
		}
		return tagOrder(a.Kind) < tagOrder(b.Kind)
	}
	switch a.Kind {
	case value.Number:
		return a.Num < b.Num
	case value.Integer:
		return a.Int < b.Int
	case value.BigInt:
		return a.Big.Get().Cmp(b.Big.Get()) < 0
	case value.String:
		return a.Str.Get() < b.Str.Get()
	case value.Symbol:
		return a.Sym < b.Sym
	case value.Vector:
		return vectorLt(a.Vec.Get(), b.Vec.Get())
	case value.Capture:
		return captureLt(a.Cap.Get(), b.Cap.Get())
	case value.Function, value.FunctionValue:
		return fmt.Sprintf("%p", a.Op) < fmt.Sprintf("%p", b.Op)
	default:
		return false
	}
}

// ltMixedIntBig orders an Integer against a BigInt by sign first.
// With equal signs the BigInt has the larger magnitude — anything
// int64-representable is demoted out of BigInt — so it is greater iff
// positive.
func ltMixedIntBig(a, b value.Value) (bool, bool) {
	var intVal value.Value
	var bigVal value.Value
	var intIsA bool
	switch {
	case a.Kind == value.Integer && b.Kind == value.BigInt:
		intVal, bigVal, intIsA = a, b, true
	case a.Kind == value.BigInt && b.Kind == value.Integer:
		intVal, bigVal, intIsA = b, a, false
	default:
		return false, false
	}
	intSign := signOfInt64(intVal.Int)
	bigSign := bigVal.Big.Get().Sign()
	if intSign != bigSign {
		lt := intSign < bigSign
		if !intIsA {
			lt = !lt
		}
		return lt, true
	}
	// Equal sign: the BigInt magnitude exceeds any representable
	// Integer's magnitude whenever it is positive (else it is smaller).
	lt := bigSign > 0
	if !intIsA {
		lt = !lt
	}
	return lt, true
}

func signOfInt64(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func vectorLt(a, b []value.Value) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if Equal(a[i], b[i]) {
			continue
		}
		return Lt(a[i], b[i])
	}
	return false
}

func captureLt(a, b value.CaptureObj) bool {
	if a.Op != b.Op {
		return fmt.Sprintf("%p", a.Op) < fmt.Sprintf("%p", b.Op)
	}
	return vectorLt(a.Captures, b.Captures)
}
