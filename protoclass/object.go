package protoclass

// Object is a materialized instance. It holds public members only and keeps
// no reference to the descriptor that produced it.
type Object struct {
	table
}

func newObject() *Object {
	return &Object{table: newTable("instance")}
}

// Value wraps the object so it can be stored in members or returned from
// methods.
func (o *Object) Value() Value { return NewObject(o) }
