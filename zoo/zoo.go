// Package zoo builds the Animal, Cat and Hund example classes.
package zoo

import (
	"fmt"
	"sort"

	"github.com/mgomes/protoclass/protoclass"
)

// Zoo holds one freshly built example hierarchy.
type Zoo struct {
	Animal *protoclass.Descriptor
	Cat    *protoclass.Descriptor
	Hund   *protoclass.Descriptor
}

func New() *Zoo {
	return NewWithConfig(protoclass.Config{})
}

func NewWithConfig(cfg protoclass.Config) *Zoo {
	animal := NewAnimal(protoclass.NewRoot(cfg))
	return &Zoo{
		Animal: animal,
		Cat:    NewCat(animal),
		Hund:   NewHund(animal),
	}
}

// Class looks up one of the example classes by name.
func (z *Zoo) Class(name string) (*protoclass.Descriptor, bool) {
	switch name {
	case "Animal":
		return z.Animal, true
	case "Cat":
		return z.Cat, true
	case "Hund":
		return z.Hund, true
	default:
		return nil, false
	}
}

func (z *Zoo) Classes() map[string]*protoclass.Descriptor {
	return map[string]*protoclass.Descriptor{
		"Animal": z.Animal,
		"Cat":    z.Cat,
		"Hund":   z.Hund,
	}
}

func (z *Zoo) ClassNames() []string {
	names := make([]string, 0, 3)
	for name := range z.Classes() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewAnimal derives Animal(verb, what) from base.
func NewAnimal(base *protoclass.Descriptor) *protoclass.Descriptor {
	return base.SubClass(protoclass.Definition{
		Name: "Animal",
		Constructor: func(_ *protoclass.Descriptor, args []protoclass.Value) (protoclass.Construction, error) {
			verb, what := arg(args, 0), arg(args, 1)
			return protoclass.Construction{
				Construct: func(self *protoclass.Scope) error {
					self.Set("verb", verb)
					self.Set("what", what)
					return nil
				},
				SuperArguments: []protoclass.Value{},
			}, nil
		},
		PublicMembers: protoclass.Members{
			"sais": protoclass.MethodMember(func(self *protoclass.Scope, _ []protoclass.Value) (protoclass.Value, error) {
				return protoclass.NewString(fmt.Sprintf("I %s: %s", self.Text("verb"), self.Text("what"))), nil
			}),
			"sendToSleep": protoclass.MethodMember(func(self *protoclass.Scope, _ []protoclass.Value) (protoclass.Value, error) {
				self.Set("verb", protoclass.NewString("sleep"))
				self.Set("what", protoclass.NewString("zzzzz..."))
				return protoclass.NewNil(), nil
			}),
		},
		PrivateMembers: protoclass.Members{
			"verb": protoclass.ValueMember(protoclass.NewNil()),
			"what": protoclass.ValueMember(protoclass.NewNil()),
		},
	})
}

// NewCat derives Cat(what) from animal; cats always meow.
func NewCat(animal *protoclass.Descriptor) *protoclass.Descriptor {
	return animal.SubClass(protoclass.Definition{
		Name: "Cat",
		Constructor: func(_ *protoclass.Descriptor, args []protoclass.Value) (protoclass.Construction, error) {
			return protoclass.Construction{
				SuperArguments: []protoclass.Value{protoclass.NewString("meow"), arg(args, 0)},
			}, nil
		},
	})
}

// NewHund derives Hund from animal. Its sais replaces the inherited one and
// ignores the constructor argument.
func NewHund(animal *protoclass.Descriptor) *protoclass.Descriptor {
	return animal.SubClass(protoclass.Definition{
		Name: "Hund",
		Constructor: func(_ *protoclass.Descriptor, _ []protoclass.Value) (protoclass.Construction, error) {
			return protoclass.Construction{
				SuperArguments: protoclass.Strings("bark", "woof, woof!"),
			}, nil
		},
		PublicMembers: protoclass.Members{
			"sais": protoclass.MethodMember(func(_ *protoclass.Scope, _ []protoclass.Value) (protoclass.Value, error) {
				return protoclass.NewString("Ich belle: Wau wau!"), nil
			}),
		},
	})
}

func arg(args []protoclass.Value, i int) protoclass.Value {
	if i < len(args) {
		return args[i]
	}
	return protoclass.NewNil()
}

// Pet is one named member of the demo.
type Pet struct {
	Name  string
	Class string
	Args  []protoclass.Value
}

// Pets lists the demo animals in the order they are shown.
func Pets() []Pet {
	return []Pet{
		{Name: "pluto", Class: "Animal", Args: protoclass.Strings("bark", "Woof, woof!")},
		{Name: "tom", Class: "Cat", Args: protoclass.Strings("Where's Jerry?")},
		{Name: "bello", Class: "Hund", Args: protoclass.Strings("Wau wau!")},
	}
}

// Demo instantiates pet and returns what it says before and after being
// sent to sleep.
func (z *Zoo) Demo(pet Pet) ([2]string, error) {
	var lines [2]string
	class, ok := z.Class(pet.Class)
	if !ok {
		return lines, fmt.Errorf("unknown class %q", pet.Class)
	}
	obj, err := class.Instance(pet.Args...)
	if err != nil {
		return lines, err
	}
	first, err := obj.Call("sais")
	if err != nil {
		return lines, err
	}
	if _, err := obj.Call("sendToSleep"); err != nil {
		return lines, err
	}
	second, err := obj.Call("sais")
	if err != nil {
		return lines, err
	}
	lines[0], lines[1] = first.String(), second.String()
	return lines, nil
}
