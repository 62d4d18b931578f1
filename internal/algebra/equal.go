// Package algebra implements the builtin value algebra: equality,
// ordering, hashing, and arithmetic over the tagged Value domain,
// with the Integer -> BigInt -> Number promotion ladder.
package algebra

import "github.com/lavender-lang/lavender/internal/value"

// GlobalEqualHook lets a user-installed equality override
// participate. Nil means no hook is installed.
var GlobalEqualHook func(a, b value.Value) (bool, bool)

// Equal is structural equality. Different type tags always compare
// unequal; dynamic containers compare recursively.
func Equal(a, b value.Value) bool {
	if GlobalEqualHook != nil {
		if result, handled := GlobalEqualHook(a, b); handled {
			return result
		}
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case value.Undefined:
		return true
	case value.Number:
		return a.Num == b.Num
	case value.Integer:
		return a.Int == b.Int
	case value.BigInt:
		return a.Big.Get().Equal(b.Big.Get())
	case value.Symbol:
		return a.Sym == b.Sym
	case value.String:
		return a.Str.Get() == b.Str.Get()
	case value.Vector:
		return vectorEqual(a.Vec.Get(), b.Vec.Get())
	case value.Map:
		return mapEqual(a.Mp.Get(), b.Mp.Get())
	case value.Capture:
		return captureEqual(a.Cap.Get(), b.Cap.Get())
	case value.Function, value.FunctionValue:
		return a.Op == b.Op
	default:
		return false
	}
}

func vectorEqual(a, b []value.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func mapEqual(a, b []value.MapEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Hash != b[i].Hash || !Equal(a[i].Key, b[i].Key) || !Equal(a[i].Val, b[i].Val) {
			return false
		}
	}
	return true
}

// captureEqual: equal iff the operators match and all captures are
// pairwise equal.
func captureEqual(a, b value.CaptureObj) bool {
	if a.Op != b.Op {
		return false
	}
	if len(a.Captures) != len(b.Captures) {
		return false
	}
	for i := range a.Captures {
		if !Equal(a.Captures[i], b.Captures[i]) {
			return false
		}
	}
	return true
}
