package sandbox

import (
	"fmt"
	"strconv"
	"strings"
)

// TestCase is one (input, expectedOutput) pair for a graded run.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// EntryPoint is a function definition detected in candidate source.
type EntryPoint struct {
	Name   string
	Params []string
}

// FallbackEntryPointName is the conventional function name assumed when no
// definition can be detected in the submitted source.
const FallbackEntryPointName = "solution"

// Adapter turns raw candidate source into a runnable program for one language.
//
// Two wrapping strategies exist. WrapScript is for free-form scripts: it
// injects a zero-argument input accessor above the user's code so the code can
// read its "stdin" without real stdin plumbing. WrapFunction synthesizes a
// driver that calls a named function with literal arguments and prints the
// return value, so the runner's stdout (trimmed) is the sole value compared
// against the expected output.
type Adapter interface {
	Language() string
	FileExt() string

	// RunCommand returns the interpreter binary and the argv prefix used to
	// execute a program file (the runner appends the file path).
	RunCommand() (bin string, preArgs []string)

	// CheckCommand returns the argv used for a syntax/compile check of a
	// program file without executing it.
	CheckCommand() (bin string, preArgs []string)

	// DetectEntryPoint scans the source for the first function definition.
	// Detection is a best-effort pattern match; callers must handle the
	// not-found case with a conservative fallback.
	DetectEntryPoint(source string) (EntryPoint, bool)

	WrapScript(code, input string) string
	WrapFunction(code string, entry EntryPoint, args []string) string
}

// splitArgs turns a raw test-case input into one argument per non-empty line.
func splitArgs(input string) []string {
	var args []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		args = append(args, line)
	}
	return args
}

// literal renders one argument as a source-level literal: numbers stay bare,
// everything else goes through the adapter's string quoting.
func literal(arg string, quote func(string) string) string {
	trimmed := strings.TrimSpace(arg)
	if _, err := strconv.Atoi(trimmed); err == nil {
		return trimmed
	}
	if _, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return trimmed
	}
	return quote(arg)
}

func renderArgs(args []string, quote func(string) string) string {
	rendered := make([]string, len(args))
	for i, a := range args {
		rendered[i] = literal(a, quote)
	}
	return strings.Join(rendered, ", ")
}

// callArgs resolves the argument list for a driver call: one literal per input
// line, padded or truncated to the arity of the detected entry point. A
// zero-arity fallback still receives the whole input as a single argument.
func callArgs(entry EntryPoint, input string) []string {
	args := splitArgs(input)
	if len(entry.Params) == 0 {
		return []string{input}
	}
	if len(args) > len(entry.Params) {
		args = args[:len(entry.Params)]
	}
	for len(args) < len(entry.Params) {
		args = append(args, "")
	}
	return args
}

func adapterFor(adapters []Adapter, language string) (Adapter, error) {
	for _, a := range adapters {
		if a.Language() == language {
			return a, nil
		}
	}
	return nil, fmt.Errorf("unsupported language %q", language)
}
