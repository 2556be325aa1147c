package protoclass

import (
	"fmt"
	"sort"
	"strings"
)

// table is the name/value storage shared by Object and Scope.
type table struct {
	owner  string
	values map[string]Value
}

func newTable(owner string) table {
	return table{owner: owner, values: make(map[string]Value)}
}

func (t *table) Get(name string) (Value, bool) {
	val, ok := t.values[name]
	return val, ok
}

func (t *table) Set(name string, val Value) {
	t.values[name] = val
}

func (t *table) Has(name string) bool {
	_, ok := t.values[name]
	return ok
}

func (t *table) Keys() []string {
	keys := make([]string, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Call invokes the method stored under name.
func (t *table) Call(name string, args ...Value) (Value, error) {
	val, ok := t.values[name]
	if !ok {
		return NewNil(), &MemberError{Owner: t.owner, Member: name, Err: ErrUnknownMember}
	}
	method := val.Method()
	if method == nil {
		return NewNil(), &MemberError{Owner: t.owner, Member: name, Err: ErrNotCallable}
	}
	return method.Call(args...)
}

func (t *table) String() string {
	keys := t.Keys()
	if len(keys) == 0 {
		return "{}"
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %s", k, t.values[k].Inspect())
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
