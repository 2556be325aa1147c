package protoclass

import "sort"

const anonymousClassName = "AnonymousClass"

// Constructor turns instantiation arguments into a construction record. d is
// the descriptor being instantiated; at ancestor levels that is the frozen
// copy held by the derived descriptor.
type Constructor func(d *Descriptor, args []Value) (Construction, error)

// Construction is the record a Constructor returns.
type Construction struct {
	// Construct initializes private state of the level being built.
	Construct func(self *Scope) error
	// SuperArguments are forwarded to the superclass Instance call.
	SuperArguments []Value
}

// Definition is the input of SubClass.
type Definition struct {
	Name           string
	Constructor    Constructor
	PublicMembers  Members
	PrivateMembers Members
}

// Descriptor is a class: an optional constructor, public and private member
// declarations, and the descriptor it was derived from.
type Descriptor struct {
	name        string
	constructor Constructor
	public      Members
	private     Members
	super       *Descriptor
	config      Config
}

// Root returns a fresh root descriptor with the default configuration.
func Root() *Descriptor {
	return NewRoot(Config{})
}

func NewRoot(cfg Config) *Descriptor {
	return &Descriptor{
		name:    "Root",
		public:  Members{},
		private: Members{},
		config:  cfg.normalized(),
	}
}

// SubClass derives a new descriptor. Member maps are copied from def and the
// receiver chain is snapshotted, so later changes to either do not leak into
// the result. Each call copies the whole chain, so deriving costs time and
// memory proportional to the chain depth. A nil def.Constructor inherits the
// receiver's constructor.
func (d *Descriptor) SubClass(def Definition) *Descriptor {
	child := &Descriptor{
		name:        def.Name,
		constructor: d.constructor,
		public:      Members{},
		private:     Members{},
		super:       d.snapshot(),
		config:      d.config,
	}
	if child.name == "" {
		child.name = anonymousClassName
	}
	if def.Constructor != nil {
		child.constructor = def.Constructor
	}
	if def.PublicMembers != nil {
		child.public = def.PublicMembers.clone()
	}
	if def.PrivateMembers != nil {
		child.private = def.PrivateMembers.clone()
	}
	return child
}

func (d *Descriptor) snapshot() *Descriptor {
	if d == nil {
		return nil
	}
	return &Descriptor{
		name:        d.name,
		constructor: d.constructor,
		public:      d.public.clone(),
		private:     d.private.clone(),
		super:       d.super.snapshot(),
		config:      d.config,
	}
}

func (d *Descriptor) Name() string { return d.name }

// Super returns the frozen copy of the parent taken by SubClass, nil for a
// root. It is not the descriptor SubClass was called on, and changes made to
// it are not seen by d.
func (d *Descriptor) Super() *Descriptor { return d.super }

// Depth is the number of levels in the chain, counting the root as one.
func (d *Descriptor) Depth() int {
	depth := 0
	for cur := d; cur != nil; cur = cur.super {
		depth++
	}
	return depth
}

func (d *Descriptor) HasConstructor() bool { return d.constructor != nil }

func (d *Descriptor) DefinePublic(name string, m Member) {
	d.public[name] = m
}

func (d *Descriptor) DefinePrivate(name string, m Member) {
	d.private[name] = m
}

func (d *Descriptor) SetConstructor(c Constructor) {
	d.constructor = c
}

func (d *Descriptor) PublicNames() []string { return sortedNames(d.public) }

func (d *Descriptor) PrivateNames() []string { return sortedNames(d.private) }

func sortedNames(m Members) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
