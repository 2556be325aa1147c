package protoclass

// Member is a class member declaration: either a plain value or a method.
type Member struct {
	value  Value
	method MethodFunc
}

func ValueMember(v Value) Member { return Member{value: v} }

func MethodMember(fn MethodFunc) Member { return Member{method: fn} }

func (m Member) IsMethod() bool { return m.method != nil }

func (m Member) Value() Value { return m.value }

func (m Member) Method() MethodFunc { return m.method }

// instantiate turns a declaration into the value stored on an instance or
// private scope. Methods are bound to scope.
func (m Member) instantiate(name string, scope *Scope) Value {
	if m.method != nil {
		return newBoundMethod(name, m.method, scope)
	}
	return m.value
}

// Members maps member names to declarations.
type Members map[string]Member

func (m Members) clone() Members {
	out := make(Members, len(m))
	for name, member := range m {
		out[name] = member
	}
	return out
}
