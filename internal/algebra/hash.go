package algebra

import (
	"fmt"
	"math"

	"github.com/lavender-lang/lavender/internal/value"
)

// Hash is a djb2-style polynomial (h = h*33 + x) mixed per-variant.
func Hash(v value.Value) uint32 {
	switch v.Kind {
	case value.Undefined:
		return 0
	case value.Number:
		return hashBytes(math.Float64bits(v.Num), 8)
	case value.Integer:
		// the value itself, not a byte-loop over it
		return uint32(v.Int)
	case value.Symbol:
		return uint32(v.Sym)
	case value.String:
		return hashString(v.Str.Get())
	case value.BigInt:
		return hashBigInt(v.Big.Get().ToBuf())
	case value.Vector:
		return hashVector(v.Vec.Get())
	case value.Map:
		return hashMap(v.Mp.Get())
	case value.Capture:
		return hashCapture(v.Cap.Get())
	case value.Function, value.FunctionValue:
		return hashString(fmt.Sprintf("%p", v.Op))
	default:
		return 0
	}
}

func djb2Step(h uint32, b byte) uint32 {
	return h*33 + uint32(b)
}

func hashBytes(n uint64, width int) uint32 {
	var h uint32 = 5381
	for i := 0; i < width; i++ {
		h = djb2Step(h, byte(n>>(uint(i)*8)))
	}
	return h
}

func hashString(s string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(s); i++ {
		h = djb2Step(h, s[i])
	}
	return h
}

// hashBigInt uses polynomial coefficient 31 over the buffer payload
// rather than djb2's 33, keeping BigInt hashing distinct from string
// hashing.
func hashBigInt(buf []byte) uint32 {
	var h uint32 = 5381
	for _, b := range buf {
		h = h*31 + uint32(b)
	}
	return h
}

func hashVector(elems []value.Value) uint32 {
	var h uint32 = 5381
	for _, e := range elems {
		h = h*33 + Hash(e)
	}
	return h
}

func hashMap(entries []value.MapEntry) uint32 {
	var h uint32
	for _, e := range entries {
		h ^= e.Hash ^ Hash(e.Val)
	}
	return h
}

func hashCapture(c value.CaptureObj) uint32 {
	h := hashString(fmt.Sprintf("%p", c.Op))
	for _, cap := range c.Captures {
		h = h*33 + Hash(cap)
	}
	return h
}
