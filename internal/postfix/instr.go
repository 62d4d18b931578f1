// Package postfix defines the instruction sum type used only inside
// postfix vectors, kept apart from the runtime Value union so that no
// sentinel fields leak into values user code can observe. An Instr is
// either a constant operand — Number, Integer, String, FunctionValue —
// wrapping a value.Value, or one of the pseudo-operations the
// expression parser emits: Literal, EmptyArgs, FuncCall, FuncCall2,
// FuncCap, MakeVect, Param, PutParam, Return, BranchIfZero, Address.
package postfix

import "github.com/lavender-lang/lavender/internal/value"

// Op tags which instruction this element is.
type Op uint8

const (
	OpConst Op = iota // wraps a constant value.Value (Number/Integer/String/FunctionValue)
	OpLiteral
	OpEmptyArgs
	OpFuncCall
	OpFuncCall2
	OpFuncCap
	OpMakeVect
	OpParam
	OpPutParam
	OpReturn
	OpBranchIfZero
	OpAddress
)

func (o Op) String() string {
	switch o {
	case OpConst:
		return "Const"
	case OpLiteral:
		return "Literal"
	case OpEmptyArgs:
		return "EmptyArgs"
	case OpFuncCall:
		return "FuncCall"
	case OpFuncCall2:
		return "FuncCall2"
	case OpFuncCap:
		return "FuncCap"
	case OpMakeVect:
		return "MakeVect"
	case OpParam:
		return "Param"
	case OpPutParam:
		return "PutParam"
	case OpReturn:
		return "Return"
	case OpBranchIfZero:
		return "BranchIfZero"
	case OpAddress:
		return "Address"
	default:
		return "Unknown"
	}
}

// Instr is one element of a postfix instruction vector. Exactly one of
// the integer/byte fields is meaningful, selected by Op — this is the
// sister type's whole point: none of these fields alias a Value's
// fields, so there is no tag-punning at runtime.
type Instr struct {
	Op Op

	Const value.Value // valid when Op == OpConst

	Literal byte // OpLiteral: the raw punctuation character

	Index int // OpParam/OpPutParam: parameter index
	Arity int // OpFuncCall/OpFuncCall2/OpMakeVect: call/construction arity

	Displacement int // OpBranchIfZero: relative branch offset
	Address      int // OpAddress: absolute text-buffer offset
}

func Const(v value.Value) Instr       { return Instr{Op: OpConst, Const: v} }
func Literal(b byte) Instr            { return Instr{Op: OpLiteral, Literal: b} }
func EmptyArgs() Instr                { return Instr{Op: OpEmptyArgs} }
func FuncCall(arity int) Instr        { return Instr{Op: OpFuncCall, Arity: arity} }
func FuncCall2(arity int) Instr       { return Instr{Op: OpFuncCall2, Arity: arity} }
func FuncCap() Instr                  { return Instr{Op: OpFuncCap} }
func MakeVect(arity int) Instr        { return Instr{Op: OpMakeVect, Arity: arity} }
func Param(index int) Instr           { return Instr{Op: OpParam, Index: index} }
func PutParam(index int) Instr        { return Instr{Op: OpPutParam, Index: index} }
func Return() Instr                   { return Instr{Op: OpReturn} }
func BranchIfZero(disp int) Instr     { return Instr{Op: OpBranchIfZero, Displacement: disp} }
func Address(addr int) Instr          { return Instr{Op: OpAddress, Address: addr} }

// ConsumedArity reports how many preceding stack positions this
// instruction consumes when scanning backward for argument
// boundaries: a constant or Param consumes none; a Function consumes
// its callable arity; a FuncCap consumes captureCount+1; a MakeVect,
// FuncCall, or FuncCall2 consumes its call arity.
// captureCountOfPrecedingFunction is only consulted for OpFuncCap,
// whose own captureCount isn't carried on the instruction itself —
// callers read it off the FunctionValue constant immediately beneath
// the FuncCap.
func (in Instr) ConsumedArity(captureCountOfPrecedingFunction int) int {
	switch in.Op {
	case OpMakeVect, OpFuncCall, OpFuncCall2:
		return in.Arity
	case OpFuncCap:
		return captureCountOfPrecedingFunction + 1
	case OpConst:
		if in.Const.Kind == value.Function {
			return in.Const.Op.Arity() - in.Const.Op.CaptureCount()
		}
		return 0
	default:
		return 0
	}
}
