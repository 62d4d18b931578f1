package operator_test

import (
	"testing"

	"github.com/lavender-lang/lavender/internal/operator"
)

func TestArityCaptureCountInvariant(t *testing.T) {
	// arity == captureCount + nonCapturedArity (locals excluded), and
	// captureCount + nonCapturedArity + locals == len(params).
	params := []operator.Param{{Name: "x"}, {Name: "y"}, {Name: "cap"}, {Name: "local"}}
	op := operator.New("f", operator.Prefix, 1, 2, 1, params, false, make([]bool, 4), nil)
	if op.Arity() != len(params)-op.Locals {
		t.Errorf("Arity() = %d, want %d (len(params) - locals)", op.Arity(), len(params)-op.Locals)
	}
	if op.CaptureCount() != 1 {
		t.Errorf("CaptureCount() = %d, want 1", op.CaptureCount())
	}
	if op.CallableArity() != 2 {
		t.Errorf("CallableArity() = %d, want 2 (arity - captureCount)", op.CallableArity())
	}
}

func TestDefineTransitionsForwardDeclaredToUserDefined(t *testing.T) {
	op := operator.New("f", operator.Prefix, 0, 0, 0, nil, false, nil, nil)
	if op.Type != operator.ForwardDeclared {
		t.Fatalf("new op Type = %v, want ForwardDeclared", op.Type)
	}
	if op.HasBody() {
		t.Error("HasBody() should be false before Define")
	}
	op.Define(42)
	if op.Type != operator.UserDefined {
		t.Errorf("Type after Define = %v, want UserDefined", op.Type)
	}
	if !op.HasBody() {
		t.Error("HasBody() should be true after Define")
	}
	if op.TextOffset != 42 {
		t.Errorf("TextOffset = %d, want 42", op.TextOffset)
	}
}

func TestIsAnonymous(t *testing.T) {
	anon := operator.New("outer:", operator.Prefix, 0, 0, 0, nil, false, nil, nil)
	if !anon.IsAnonymous() {
		t.Error("a name ending in ':' should be anonymous")
	}
	named := operator.New("outer:f", operator.Prefix, 0, 0, 0, nil, false, nil, nil)
	if named.IsAnonymous() {
		t.Error("a name not ending in ':' should not be anonymous")
	}
}

func TestFQNReturnsName(t *testing.T) {
	op := operator.New("sys:f", operator.Prefix, 0, 0, 0, nil, false, nil, nil)
	if op.FQN() != "sys:f" {
		t.Errorf("FQN() = %q, want sys:f", op.FQN())
	}
}
