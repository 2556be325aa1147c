package protoclass

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindMethod
	KindObject
)

// Value is the dynamic value stored in members, passed as method arguments
// and returned from method calls.
type Value struct {
	kind ValueKind
	data any
}

// MethodFunc is the body of a method member. self is the private scope of
// the class level that declared the method.
type MethodFunc func(self *Scope, args []Value) (Value, error)

// BoundMethod is a method closed over one private scope.
type BoundMethod struct {
	Name  string
	Fn    MethodFunc
	Scope *Scope
}

func (m *BoundMethod) Call(args ...Value) (Value, error) {
	return m.Fn(m.Scope, args)
}
