package protoclass

import (
	"reflect"
	"testing"
)

func TestDescribeMarksOverrides(t *testing.T) {
	animal := newAnimal(Root())
	hund := animal.SubClass(Definition{
		Name: "Hund",
		PublicMembers: Members{
			"sais": MethodMember(func(_ *Scope, _ []Value) (Value, error) {
				return NewString("Ich belle: Wau wau!"), nil
			}),
		},
	})

	levels := Describe(hund)
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}

	want := []LevelInfo{
		{Name: "Root", Depth: 1, Public: []string{}, Private: []string{}},
		{
			Name:           "Animal",
			Depth:          2,
			HasConstructor: true,
			Public:         []string{"sais", "sendToSleep"},
			Private:        []string{"verb", "what"},
		},
		{
			Name:           "Hund",
			Depth:          3,
			HasConstructor: true,
			Public:         []string{"sais"},
			Private:        []string{},
			Overrides:      []string{"sais"},
		},
	}
	if !reflect.DeepEqual(levels, want) {
		t.Fatalf("describe mismatch:\n got %#v\nwant %#v", levels, want)
	}
}
