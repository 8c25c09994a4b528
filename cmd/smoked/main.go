package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/AgustinCB/smoked/builtins"
	"github.com/AgustinCB/smoked/eval"
	"github.com/AgustinCB/smoked/parser"
	"github.com/AgustinCB/smoked/trace"
	"github.com/AgustinCB/smoked/types"
)

const (
	historyFile = ".smoked_history"
	promptMain  = "> "
	promptCont  = "| "
	banner      = "smoked interpreter. Ctrl+C cancels the current input, Ctrl+D exits."
)

var keywords = []string{
	"and", "break", "class", "continue", "else", "false", "fun", "get",
	"if", "mod", "nil", "or", "print", "return", "set", "static", "this",
	"trait", "true", "var", "while", "with",
}

func main() {
	evalStr := flag.String("e", "", "Evaluate the given program and exit")
	formatMode := flag.Bool("format", false, "Print the program re-formatted instead of running it")
	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, e.g. 'make_*', comma-separated)")
	flag.Parse()

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
		log.Printf("Tracing enabled (filters: %v)", filters)
	} else {
		trace.Init(false, nil, nil)
	}

	args := flag.Args()

	if *formatMode {
		switch {
		case *evalStr != "":
			os.Exit(formatSource(*evalStr))
		case len(args) > 0:
			os.Exit(formatFile(args[0]))
		default:
			fmt.Fprintln(os.Stderr, "smoked: -format needs a script file or -e program")
			os.Exit(2)
		}
	}

	switch {
	case *evalStr != "":
		os.Exit(runSource(*evalStr, true))
	case len(args) > 0:
		os.Exit(runFile(args[0]))
	default:
		os.Exit(runREPL())
	}
}

// formatFile parses a script and prints it back in canonical form
func formatFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoked: cannot read %s: %v\n", path, err)
		return 1
	}
	return formatSource(string(src))
}

func formatSource(source string) int {
	p := parser.NewParser(source)
	program, err := p.ParseProgram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoked: %v\n", err)
		return 1
	}
	for _, line := range parser.UnparseProgram(program) {
		fmt.Println(line)
	}
	return 0
}

// runFile executes a script file
func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoked: cannot read %s: %v\n", path, err)
		return 1
	}
	return runSource(string(src), false)
}

// runSource runs a complete program. In echo mode the final value is
// printed, which is what -e is for.
func runSource(source string, echo bool) int {
	evaluator := eval.NewEvaluator(os.Stdout)
	val, err := evaluator.EvalProgram(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "smoked: %v\n", err)
		return 1
	}
	if echo {
		fmt.Printf("=> %s\n", val.String())
	}
	return 0
}

// runREPL drives the interactive loop. One evaluator lives for the
// whole session, so definitions persist between inputs.
func runREPL() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(completer())

	// Load history (best-effort)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	evaluator := eval.NewEvaluator(os.Stdout)

	for {
		source, ok := readProgram(ln)
		if !ok {
			fmt.Println()
			break
		}
		if strings.TrimSpace(source) == "" {
			continue
		}

		val, err := evaluator.EvalProgram(source)
		if err != nil {
			fmt.Println(err)
			continue
		}
		// Echo expression results; plain declarations come back Nil
		// and stay quiet
		if !val.Equal(types.Nil) {
			fmt.Printf("=> %s\n", val.String())
		}

		ln.AppendHistory(strings.ReplaceAll(source, "\n", " "))
	}

	// Persist history (best-effort)
	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// readProgram accumulates lines until the parser accepts the buffer as
// a complete program. An empty line ends an incomplete buffer so parse
// errors always surface.
func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the current input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
			if strings.TrimSpace(line) == "" {
				return b.String(), true
			}
		}
		b.WriteString(line)

		source := b.String()
		p := parser.NewParser(source)
		if _, perr := p.ParseProgram(); perr == nil {
			return source, true
		} else if !looksIncomplete(perr) {
			return source, true
		}
	}
}

// looksIncomplete classifies parse errors that likely mean the input
// just has not finished yet, like an unclosed block or argument list
func looksIncomplete(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "expected '}'") ||
		strings.Contains(msg, "expected ')'") ||
		strings.Contains(msg, "expected ']'")
}

// completer offers keywords and builtin names for the word under the
// cursor
func completer() liner.Completer {
	registry := builtins.NewRegistry()
	candidates := append([]string{}, keywords...)
	candidates = append(candidates, registry.Names()...)
	sort.Strings(candidates)

	return func(line string) []string {
		start := strings.LastIndexAny(line, " \t([,;") + 1
		prefix := line[start:]
		if prefix == "" {
			return nil
		}

		var out []string
		for _, cand := range candidates {
			if strings.HasPrefix(cand, prefix) {
				out = append(out, line[:start]+cand)
			}
		}
		return out
	}
}
