// Package operator implements the operator descriptor — name, fixing,
// arity, captures, locals, by-name flags — and the two namespaced
// tables (prefix, infix) the parsers register into and resolve
// against.
package operator

import "github.com/lavender-lang/lavender/internal/token"

// Fixing is a function's syntactic position.
type Fixing byte

const (
	Prefix     Fixing = Fixing(token.Prefix)
	LeftInfix  Fixing = Fixing(token.LeftInfix)
	RightInfix Fixing = Fixing(token.RightInfix)
)

// FuncType distinguishes the descriptor's lifecycle stage and origin.
type FuncType int

const (
	ForwardDeclared FuncType = iota
	UserDefined
	Builtin
	Anonymous
)

// Namespace selects which of the two tables an operator lives in.
type Namespace int

const (
	NSPrefix Namespace = iota
	NSInfix
	nsCount
)

// Param is one formal, captured, or local parameter slot. Initializer
// is non-nil only for let-bound locals and holds the tokens of the
// parenthesized initializer expression, parsed only once the body is
// defined.
type Param struct {
	Name        string
	ByName      bool
	Initializer []token.Token
}

// Operator is the descriptor stored in the operator table.
type Operator struct {
	Name         string
	Type         FuncType
	arity        int
	captureCount int
	Locals       int
	Fix          Fixing
	Varargs      bool
	// ByName has one entry per entry of Params (nil when no parameter
	// is by-name); bit i set iff parameter i is passed by name.
	ByName []bool
	Params []Param
	// Enclosing is a non-owning reference to the enclosing operator,
	// nil at top level.
	Enclosing *Operator
	// TextOffset is valid once Type transitions away from
	// ForwardDeclared.
	TextOffset int
	hasBody    bool
}

// New constructs a forward-declared Operator. Callers lay out Params
// first — formals, then captures copied from the enclosing operator,
// then locals — and the arity fields must agree with that layout.
func New(name string, fix Fixing, captureCount, nonCapturedArity, locals int, params []Param, varargs bool, byName []bool, enclosing *Operator) *Operator {
	return &Operator{
		Name:         name,
		Type:         ForwardDeclared,
		arity:        captureCount + nonCapturedArity,
		captureCount: captureCount,
		Locals:       locals,
		Fix:          fix,
		Varargs:      varargs,
		ByName:       byName,
		Params:       params,
		Enclosing:    enclosing,
	}
}

// Arity is the declared parameter count including captures.
func (o *Operator) Arity() int { return o.arity }

// CaptureCount is the number of captured parameters, which follow the
// formals in Params.
func (o *Operator) CaptureCount() int { return o.captureCount }

// CallableArity is arity - captureCount, the arity callers see.
func (o *Operator) CallableArity() int { return o.arity - o.captureCount }

// FQN is the operator's fully-qualified, colon-separated name.
func (o *Operator) FQN() string { return o.Name }

// Define installs a textOffset and transitions the descriptor out of
// ForwardDeclared.
func (o *Operator) Define(textOffset int) {
	o.TextOffset = textOffset
	o.hasBody = true
	if o.Type == ForwardDeclared {
		o.Type = UserDefined
	}
}

func (o *Operator) HasBody() bool { return o.hasBody }

// IsAnonymous reports whether this operator's name ends in ":";
// anonymous operators live outside the namespaced table.
func (o *Operator) IsAnonymous() bool {
	return len(o.Name) > 0 && o.Name[len(o.Name)-1] == ':'
}
