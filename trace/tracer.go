package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/AgustinCB/smoked/types"
)

// Tracer provides execution tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
	depth   int
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a function name matches any of the filter patterns
func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func (t *Tracer) indent() string {
	return strings.Repeat("  ", t.depth)
}

// Call logs a function call
func (t *Tracer) Call(name string, args []types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Format args
	argStrs := make([]string, len(args))
	for i, arg := range args {
		argStrs[i] = arg.String()
	}
	argsStr := strings.Join(argStrs, ", ")

	fmt.Fprintf(t.writer, "[TRACE] %sCALL %s(%s)\n", t.indent(), name, argsStr)
	t.depth++
}

// Return logs a function return value
func (t *Tracer) Return(name string, result types.Value) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.depth > 0 {
		t.depth--
	}

	resultStr := "nil"
	if result != nil {
		resultStr = result.String()
	}

	fmt.Fprintf(t.writer, "[TRACE] %sRETURN %s => %s\n", t.indent(), name, resultStr)
}

// Error logs a runtime error escaping a function
func (t *Tracer) Error(name string, err *types.ProgramError) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.depth > 0 {
		t.depth--
	}

	fmt.Fprintf(t.writer, "[TRACE] %sERROR %s %s\n", t.indent(), name, err.Error())
}

// Print logs output produced by a print statement
func (t *Tracer) Print(message string) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Truncate long messages for readability
	msgDisplay := message
	if len(msgDisplay) > 60 {
		msgDisplay = msgDisplay[:57] + "..."
	}

	fmt.Fprintf(t.writer, "[TRACE] %sPRINT %q\n", t.indent(), msgDisplay)
}

// Global convenience functions

// Call logs a function call using the global tracer
func Call(name string, args []types.Value) {
	if globalTracer != nil {
		globalTracer.Call(name, args)
	}
}

// Return logs a function return using the global tracer
func Return(name string, result types.Value) {
	if globalTracer != nil {
		globalTracer.Return(name, result)
	}
}

// Error logs a runtime error using the global tracer
func Error(name string, err *types.ProgramError) {
	if globalTracer != nil {
		globalTracer.Error(name, err)
	}
}

// Print logs print output using the global tracer
func Print(message string) {
	if globalTracer != nil {
		globalTracer.Print(message)
	}
}
