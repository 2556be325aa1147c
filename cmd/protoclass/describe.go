package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mgomes/protoclass/protoclass"
	"github.com/mgomes/protoclass/zoo"
)

var classNameStyle = lipgloss.NewStyle().
	Foreground(accentColor).
	Bold(true)

func describeCommand(args []string) error {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("protoclass describe: class name required")
	}

	z := zoo.New()
	class, ok := z.Class(remaining[0])
	if !ok {
		return fmt.Errorf("protoclass describe: unknown class %q (have %s)", remaining[0], strings.Join(z.ClassNames(), ", "))
	}
	writeDescription(os.Stdout, class)
	return nil
}

func writeDescription(w io.Writer, class *protoclass.Descriptor) {
	overrides := false
	for _, level := range protoclass.Describe(class) {
		indent := strings.Repeat("  ", level.Depth-1)
		header := indent + classNameStyle.Render(level.Name)
		if level.HasConstructor {
			header += " [constructor]"
		}
		fmt.Fprintln(w, header)

		overridden := make(map[string]struct{}, len(level.Overrides))
		for _, name := range level.Overrides {
			overridden[name] = struct{}{}
		}
		public := make([]string, len(level.Public))
		for i, name := range level.Public {
			public[i] = name
			if _, ok := overridden[name]; ok {
				public[i] += "*"
				overrides = true
			}
		}
		if len(public) > 0 {
			fmt.Fprintf(w, "%s  public:  %s\n", indent, strings.Join(public, ", "))
		}
		if len(level.Private) > 0 {
			fmt.Fprintf(w, "%s  private: %s\n", indent, strings.Join(level.Private, ", "))
		}
	}
	if overrides {
		fmt.Fprintln(w, mutedStyle.Render("* overrides an inherited member"))
	}
}
