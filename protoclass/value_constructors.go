package protoclass

func NewNil() Value            { return Value{kind: KindNil} }
func NewBool(b bool) Value     { return Value{kind: KindBool, data: b} }
func NewInt(i int64) Value     { return Value{kind: KindInt, data: i} }
func NewFloat(f float64) Value { return Value{kind: KindFloat, data: f} }
func NewString(s string) Value { return Value{kind: KindString, data: s} }
func NewArray(a []Value) Value { return Value{kind: KindArray, data: a} }
func NewObject(obj *Object) Value { return Value{kind: KindObject, data: obj} }

func newBoundMethod(name string, fn MethodFunc, scope *Scope) Value {
	return Value{kind: KindMethod, data: &BoundMethod{Name: name, Fn: fn, Scope: scope}}
}

// Strings converts raw strings into string values. Handy for building
// constructor argument lists.
func Strings(raw ...string) []Value {
	out := make([]Value, len(raw))
	for i, s := range raw {
		out[i] = NewString(s)
	}
	return out
}
