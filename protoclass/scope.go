package protoclass

// Scope is the private member scope of one class level within one
// instantiation. Methods declared on that level receive it as self, so they
// can read and write private state and call private methods. A scope is never
// reachable from the resulting Object.
type Scope struct {
	table
	class string
}

func newScope(class string) *Scope {
	return &Scope{table: newTable("private scope of " + class), class: class}
}

// Class names the descriptor level this scope belongs to.
func (s *Scope) Class() string { return s.class }

// Text returns the named member rendered with Value.String, or "" when it
// is missing.
func (s *Scope) Text(name string) string {
	val, _ := s.Get(name)
	return val.String()
}
