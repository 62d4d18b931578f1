package operator

// Table holds the two namespaced hash maps (prefix, infix), plus the
// separate list of anonymous operators that by-name thunk lifting
// synthesizes.
type Table struct {
	ns        [nsCount]*hashtable
	anonymous []*Operator
}

func NewTable() *Table {
	return &Table{
		ns: [nsCount]*hashtable{
			NSPrefix: newHashtable(),
			NSInfix:  newHashtable(),
		},
	}
}

// Get is exact lookup by fully-qualified name.
func (t *Table) Get(name string, ns Namespace) (*Operator, bool) {
	return t.ns[ns].get(name)
}

// GetScoped concatenates scope ":" simpleName and looks up.
func (t *Table) GetScoped(scope, simpleName string, ns Namespace) (*Operator, bool) {
	if scope == "" {
		return t.Get(simpleName, ns)
	}
	return t.Get(scope+":"+simpleName, ns)
}

// Add inserts op into the given namespace's table. An anonymous op is
// appended to the anonymous list instead, which always succeeds; a
// duplicate name fails.
func (t *Table) Add(op *Operator, ns Namespace) bool {
	if op.IsAnonymous() {
		t.anonymous = append(t.anonymous, op)
		return true
	}
	return t.ns[ns].put(op.Name, op)
}

// Remove deletes by fully-qualified name.
func (t *Table) Remove(name string, ns Namespace) bool {
	return t.ns[ns].remove(name)
}

// NamespaceFor returns NSPrefix when the parser is in operand
// position, NSInfix otherwise.
func NamespaceFor(expectOperand bool) Namespace {
	if expectOperand {
		return NSPrefix
	}
	return NSInfix
}
