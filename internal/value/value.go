// Package value implements the tagged Value domain: a stack-friendly
// tagged union plus the owning dynamic-object payloads (String,
// Vector, Map, Capture, BigInt) and their reference-count discipline.
package value

import (
	"math"

	"github.com/lavender-lang/lavender/internal/bigint"
)

// Kind tags which variant a Value holds.
type Kind uint8

const (
	Undefined Kind = iota
	Number
	Integer
	BigInt
	Symbol
	String
	Vector
	Map
	Function
	FunctionValue
	Capture
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case BigInt:
		return "bigint"
	case Symbol:
		return "symbol"
	case String:
		return "string"
	case Vector:
		return "vector"
	case Map:
		return "map"
	case Function:
		return "function"
	case FunctionValue:
		return "function-value"
	case Capture:
		return "capture"
	default:
		return "unknown"
	}
}

// Operator is the minimal read side of an operator descriptor that the
// value domain needs (the full descriptor lives in package operator,
// whose *Operator satisfies this interface).
type Operator interface {
	Arity() int
	CaptureCount() int
	FQN() string
}

// Value is the tagged union. Only one payload field is meaningful at
// a time, selected by Kind — Num/Int hold scalars directly; the
// dynamic variants hold a *Ref to a reference-counted payload;
// Function/FunctionValue hold a non-owning Operator reference.
type Value struct {
	Kind Kind
	Num  float64
	Int  int64
	Sym  int

	Big *Ref[*bigint.Int]
	Str *Ref[string]
	Vec *Ref[[]Value]
	Mp  *Ref[[]MapEntry]
	Cap *Ref[CaptureObj]

	Op Operator
}

// MapEntry is a canonicalized (key, value, hash) triple; the hash is
// computed once at construction and never re-derived.
type MapEntry struct {
	Key  Value
	Val  Value
	Hash uint32
}

// CaptureObj pairs an operator with the already-bound values of its
// captured lexical parameters.
type CaptureObj struct {
	Op       Operator
	Captures []Value
}

func Undef() Value { return Value{Kind: Undefined} }

func MakeNumber(n float64) Value { return Value{Kind: Number, Num: n} }

func MakeInteger(n int64) Value { return Value{Kind: Integer, Int: n} }

func MakeSymbol(i int) Value { return Value{Kind: Symbol, Sym: i} }

// MakeBigInt wraps a *bigint.Int in a fresh, singly-owned Ref.
// Callers must not hold an int64-representable value in a BigInt;
// normalization demotes such results to Integer.
func MakeBigInt(b *bigint.Int) Value {
	return Value{Kind: BigInt, Big: NewRef(b, nil)}
}

func MakeString(s string) Value {
	return Value{Kind: String, Str: NewRef(s, nil)}
}

func MakeVector(elems []Value) Value {
	return Value{Kind: Vector, Vec: NewRef(elems, func(v []Value) {
		for i := range v {
			v[i].Release()
		}
	})}
}

func MakeMap(entries []MapEntry) Value {
	return Value{Kind: Map, Mp: NewRef(entries, func(es []MapEntry) {
		for i := range es {
			es[i].Key.Release()
			es[i].Val.Release()
		}
	})}
}

func MakeCapture(op Operator, captures []Value) Value {
	return Value{Kind: Capture, Cap: NewRef(CaptureObj{Op: op, Captures: captures}, func(c CaptureObj) {
		for i := range c.Captures {
			c.Captures[i].Release()
		}
	})}
}

func MakeFunction(op Operator) Value      { return Value{Kind: Function, Op: op} }
func MakeFunctionValue(op Operator) Value { return Value{Kind: FunctionValue, Op: op} }

// Retain increments the reference count of whichever dynamic payload
// this Value holds, a no-op for scalar variants. Every copy into
// durable storage owes one increment.
func (v Value) Retain() Value {
	switch v.Kind {
	case BigInt:
		v.Big.Retain()
	case String:
		v.Str.Retain()
	case Vector:
		v.Vec.Retain()
	case Map:
		v.Mp.Retain()
	case Capture:
		v.Cap.Retain()
	}
	return v
}

// Release decrements the reference count, tearing the payload down
// recursively once it reaches zero.
func (v Value) Release() {
	switch v.Kind {
	case BigInt:
		v.Big.Release()
	case String:
		v.Str.Release()
	case Vector:
		v.Vec.Release()
	case Map:
		v.Mp.Release()
	case Capture:
		v.Cap.Release()
	}
}

// IsNaN reports whether a Number variant holds NaN, used by the
// ordering algebra's NaN special-casing.
func (v Value) IsNaN() bool {
	return v.Kind == Number && math.IsNaN(v.Num)
}
