package main

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateClassesCommandTogglesPanel(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":classes")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if !rm.showClasses {
		t.Fatalf("classes toggle should be enabled")
	}

	rm.initialized = true
	rm.width, rm.height = 80, 60
	if view := rm.View(); !strings.Contains(view, "sendToSleep") {
		t.Fatalf("classes panel missing members:\n%s", view)
	}
}

func TestUpdateEvaluatesStatementAndRecordsHistory(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(`tom = Cat("Where's Jerry?")`)
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(replModel)

	m.textInput.SetValue("tom.sais()")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(replModel)

	if len(m.history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(m.history))
	}
	last := m.history[1]
	if last.isErr || last.output != `"I meow: Where's Jerry?"` {
		t.Fatalf("unexpected history entry: %#v", last)
	}
	if len(m.cmdHistory) != 2 || m.cmdHistory[0] != `tom = Cat("Where's Jerry?")` {
		t.Fatalf("unexpected command history: %v", m.cmdHistory)
	}
}

func TestEvaluateReportsErrors(t *testing.T) {
	m := newREPLModel()
	output, isErr := m.evaluate("ghost.sais()")
	if !isErr {
		t.Fatalf("expected error")
	}
	if !strings.Contains(output, "undefined variable ghost") {
		t.Fatalf("unexpected output: %s", output)
	}
}

func TestResetClearsVariables(t *testing.T) {
	m := newREPLModel()
	if _, isErr := m.evaluate(`pluto = Animal("bark", "Woof")`); isErr {
		t.Fatalf("setup failed")
	}
	m, _ = m.handleCommand(":reset")
	if len(m.session.env) != 0 {
		t.Fatalf("expected empty env, got %v", m.session.env)
	}
}

func TestCompletions(t *testing.T) {
	m := newREPLModel()
	if _, isErr := m.evaluate(`pluto = Animal("bark", "Woof")`); isErr {
		t.Fatalf("setup failed")
	}

	tests := []struct {
		input      string
		wantPrefix string
		want       []string
	}{
		{input: "H", wantPrefix: "", want: []string{"Hund"}},
		{input: "x = Ca", wantPrefix: "x = ", want: []string{"Cat"}},
		{input: "pl", wantPrefix: "", want: []string{"pluto"}},
		{input: "pluto.s", wantPrefix: "pluto.", want: []string{"sais", "sendToSleep"}},
		{input: "pluto.sai", wantPrefix: "pluto.", want: []string{"sais"}},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			prefix, got := m.completions(tc.input)
			if prefix != tc.wantPrefix || !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %q %v want %q %v", prefix, got, tc.wantPrefix, tc.want)
			}
		})
	}
}

func TestAutocompleteSingleMatch(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("x = Hu")
	m = m.handleAutocomplete()
	if got := m.textInput.Value(); got != "x = Hund" {
		t.Fatalf("unexpected completion %q", got)
	}
}
