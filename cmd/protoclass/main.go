package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgomes/protoclass/protoclass"
	"github.com/mgomes/protoclass/zoo"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "run":
		return runCommand(args[2:])
	case "describe":
		return describeCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func runCommand(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	trace := fs.Bool("trace", false, "print construction steps to stderr")
	only := fs.String("animal", "", "only show the named animal")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("protoclass run: unexpected argument %q", fs.Arg(0))
	}

	cfg := protoclass.Config{}
	if *trace {
		cfg.Trace = traceTo(os.Stderr)
	}
	z := zoo.NewWithConfig(cfg)

	shown := 0
	for _, pet := range zoo.Pets() {
		if *only != "" && pet.Name != *only {
			continue
		}
		lines, err := z.Demo(pet)
		if err != nil {
			return fmt.Errorf("%s: %w", pet.Name, err)
		}
		fmt.Println(lines[0])
		fmt.Println(lines[1])
		shown++
	}
	if shown == 0 {
		return fmt.Errorf("protoclass run: unknown animal %q", *only)
	}
	return nil
}

func traceTo(w io.Writer) func(protoclass.TraceEvent) {
	return func(ev protoclass.TraceEvent) {
		fmt.Fprintln(w, mutedStyle.Render(formatTrace(ev)))
	}
}

func formatTrace(ev protoclass.TraceEvent) string {
	line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", ev.Depth-1), ev.Class, ev.Phase)
	if ev.Phase != protoclass.PhaseConstructor && ev.Phase != protoclass.PhaseSuper {
		return line
	}
	parts := make([]string, len(ev.Args))
	for i, arg := range ev.Args {
		parts[i] = arg.Inspect()
	}
	return fmt.Sprintf("%s (%s)", line, strings.Join(parts, ", "))
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  run        print what each demo animal says")
	fmt.Fprintln(os.Stderr, "  describe   show the class chain of Animal, Cat or Hund")
	fmt.Fprintln(os.Stderr, "  repl       interactive session with the demo classes")
	fmt.Fprintln(os.Stderr, "Run flags:")
	fmt.Fprintln(os.Stderr, "  -trace")
	fmt.Fprintln(os.Stderr, "    print construction steps to stderr")
	fmt.Fprintln(os.Stderr, "  -animal string")
	fmt.Fprintln(os.Stderr, "    only show the named animal (pluto, tom, bello)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
