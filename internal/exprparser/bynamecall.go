package exprparser

import (
	"github.com/lavender-lang/lavender/internal/operator"
	"github.com/lavender-lang/lavender/internal/postfix"
	"github.com/lavender-lang/lavender/internal/value"
)

// liftByNameArgs rewrites each by-name-marked argument of op — already
// emitted as a plain sub-expression on out — into a capture-binding
// thunk, just before op itself is emitted. fed is the source argument
// count, which exceeds the parameter count when a variadic tail is
// present; excess arguments map onto the final parameter.
func (p *Parser) liftByNameArgs(op *operator.Operator, fed int) {
	if fed == 0 || !hasByNameArg(op) {
		return
	}
	last := op.CallableArity() - 1

	bounds := make([]int, fed+1)
	bounds[fed] = len(p.out)
	for i := fed - 1; i >= 0; i-- {
		bounds[i] = argBoundary(p.out, bounds[i+1])
	}

	for i := 0; i < fed; i++ {
		pi := i
		if pi > last {
			pi = last
		}
		if pi >= len(op.ByName) || !op.ByName[pi] {
			continue
		}
		lo, hi := bounds[i], bounds[i+1]
		lifted := p.liftByNameArg(p.out[lo:hi])
		delta := len(lifted) - (hi - lo)
		if delta == 0 {
			copy(p.out[lo:hi], lifted)
			continue
		}
		rest := append([]postfix.Instr{}, p.out[hi:]...)
		p.out = append(p.out[:lo], append(lifted, rest...)...)
		for j := i + 1; j <= fed; j++ {
			bounds[j] += delta
		}
	}
}

func hasByNameArg(op *operator.Operator) bool {
	n := op.CallableArity()
	for i := 0; i < n && i < len(op.ByName); i++ {
		if op.ByName[i] {
			return true
		}
	}
	return false
}

// liftByNameArg wraps one already-emitted argument sub-expression as a
// capture-binding thunk: the captured parameter values, the
// FunctionValue, and a FuncCap binding them into one Capture value. A
// trivial atom passes through unchanged.
func (p *Parser) liftByNameArg(sub []postfix.Instr) []postfix.Instr {
	if isTrivialAtom(sub) {
		return sub
	}

	body := append([]postfix.Instr{}, sub...)
	anon := p.liftThunk(body)

	lifted := make([]postfix.Instr, 0, anon.CaptureCount()+2)
	for i := 0; i < anon.CaptureCount(); i++ {
		lifted = append(lifted, postfix.Param(i))
	}
	lifted = append(lifted, postfix.Const(value.MakeFunctionValue(anon)))
	lifted = append(lifted, postfix.FuncCap())
	return lifted
}

// argBoundary walks out backward from end (exclusive) and returns the
// start index of the single complete sub-expression ending there,
// honoring each instruction's consumed arity.
func argBoundary(out []postfix.Instr, end int) int {
	need := 1
	i := end
	for need > 0 && i > 0 {
		i--
		need--
		need += consumedArityAt(out, i)
	}
	return i
}

// consumedArityAt reads out[i].ConsumedArity, supplying the preceding
// FunctionValue's capture count when out[i] is a FuncCap; that count
// is not carried on the FuncCap instruction itself.
func consumedArityAt(out []postfix.Instr, i int) int {
	in := out[i]
	if in.Op != postfix.OpFuncCap {
		return in.ConsumedArity(0)
	}
	capCount := 0
	if i > 0 && out[i-1].Op == postfix.OpConst && out[i-1].Const.Kind == value.FunctionValue {
		capCount = out[i-1].Const.Op.CaptureCount()
	}
	return in.ConsumedArity(capCount)
}
