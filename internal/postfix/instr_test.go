package postfix_test

import (
	"testing"

	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/postfix"
	"github.com/lavender-lang/lavender/internal/value"
)

func TestConstructorsSetOp(t *testing.T) {
	cases := []struct {
		name string
		in   postfix.Instr
		want postfix.Op
	}{
		{"Const", postfix.Const(value.MakeInteger(1)), postfix.OpConst},
		{"Literal", postfix.Literal('('), postfix.OpLiteral},
		{"EmptyArgs", postfix.EmptyArgs(), postfix.OpEmptyArgs},
		{"FuncCall", postfix.FuncCall(2), postfix.OpFuncCall},
		{"FuncCall2", postfix.FuncCall2(1), postfix.OpFuncCall2},
		{"FuncCap", postfix.FuncCap(), postfix.OpFuncCap},
		{"MakeVect", postfix.MakeVect(3), postfix.OpMakeVect},
		{"Param", postfix.Param(0), postfix.OpParam},
		{"PutParam", postfix.PutParam(0), postfix.OpPutParam},
		{"Return", postfix.Return(), postfix.OpReturn},
		{"BranchIfZero", postfix.BranchIfZero(4), postfix.OpBranchIfZero},
		{"Address", postfix.Address(8), postfix.OpAddress},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.in.Op != c.want {
				t.Errorf("%s.Op = %v, want %v", c.name, c.in.Op, c.want)
			}
		})
	}
}

func TestConsumedArity(t *testing.T) {
	if got := postfix.FuncCall(3).ConsumedArity(0); got != 3 {
		t.Errorf("FuncCall(3).ConsumedArity = %d, want 3", got)
	}
	if got := postfix.MakeVect(2).ConsumedArity(0); got != 2 {
		t.Errorf("MakeVect(2).ConsumedArity = %d, want 2", got)
	}
	if got := postfix.FuncCap().ConsumedArity(2); got != 3 {
		t.Errorf("FuncCap().ConsumedArity(captureCount=2) = %d, want 3 (captureCount+1)", got)
	}

	op := operator.New("sys:+", operator.LeftInfix, 1, 2, 0, nil, false, nil, nil)
	funcInstr := postfix.Const(value.MakeFunction(op))
	if got := funcInstr.ConsumedArity(0); got != 2 {
		t.Errorf("Function(arity=3,captureCount=1).ConsumedArity = %d, want 2 (arity-captureCount)", got)
	}

	noArgTakers := []postfix.Instr{
		postfix.Const(value.MakeInteger(1)),
		postfix.Const(value.MakeFunctionValue(op)),
		postfix.Param(0),
		postfix.Literal('x'),
	}
	for _, in := range noArgTakers {
		if got := in.ConsumedArity(0); got != 0 {
			t.Errorf("%v.ConsumedArity = %d, want 0", in.Op, got)
		}
	}
}

func TestOpStringIsReadable(t *testing.T) {
	if postfix.OpFuncCall.String() != "FuncCall" {
		t.Errorf("OpFuncCall.String() = %q, want FuncCall", postfix.OpFuncCall.String())
	}
}
