package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"pyrite/interpreter-go/pkg/builtins"
	"pyrite/interpreter-go/pkg/driver"
	"pyrite/interpreter-go/pkg/interpreter"
	"pyrite/interpreter-go/pkg/runtime"
)

const cliVersion = "pyrite-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}
	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliVersion)
		return 0
	case "repl":
		return runRepl()
	case "run":
		return runEntry(args[1:])
	default:
		return runEntry(args)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  pyrite run <program.json | program-dir>   evaluate a JSON syntax tree
  pyrite repl                               interactive session
  pyrite version`)
}

// runEntry evaluates a program given either a JSON syntax-tree file or a
// directory containing a program.yml manifest.
func runEntry(args []string) int {
	if len(args) != 1 {
		printUsage()
		return 1
	}
	path := args[0]
	entry := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		manifest, err := driver.LoadDir(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		entry = manifest.EntryPath()
	}
	data, err := os.ReadFile(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	prog, err := interpreter.DecodeProgram(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	interp := interpreter.New()
	interp.RegisterBuiltins(builtins.Table(os.Stdout))
	result, err := interp.EvaluateProgram(prog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if _, ok := result.(runtime.NoneValue); !ok {
		fmt.Fprintln(os.Stdout, runtime.ToString(result))
	}
	return 0
}

// runRepl evaluates one JSON-encoded statement per line against a
// persistent environment.
func runRepl() int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	interp := interpreter.New()
	interp.RegisterBuiltins(builtins.Table(os.Stdout))

	fmt.Fprintln(os.Stdout, cliVersion)
	fmt.Fprintln(os.Stdout, `enter one JSON statement per line; :env lists bindings, :quit exits`)
	for {
		input, err := line.Prompt(">> ")
		if err != nil {
			// Ctrl-C / Ctrl-D end the session.
			fmt.Fprintln(os.Stdout)
			return 0
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		switch input {
		case ":quit", ":q":
			return 0
		case ":env":
			env := interp.GlobalEnvironment()
			bindings := env.Snapshot()
			for _, name := range env.Keys() {
				fmt.Fprintf(os.Stdout, "%s = %s\n", name, runtime.ToString(bindings[name]))
			}
			continue
		}
		prog, err := interpreter.DecodeProgram([]byte(input))
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode error: %v\n", err)
			continue
		}
		result, err := interp.EvaluateProgram(prog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		if _, ok := result.(runtime.NoneValue); !ok {
			fmt.Fprintln(os.Stdout, runtime.ToString(result))
		}
	}
}
