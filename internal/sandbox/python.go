package sandbox

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// pythonDefRe matches the first top-level-ish function definition, capturing
// name and parameter list. Decorators and nesting are deliberately ignored;
// detection is conservative by design of the Adapter contract.
var pythonDefRe = regexp.MustCompile(`(?m)^\s*def\s+([A-Za-z_]\w*)\s*\(([^)]*)\)\s*:`)

type PythonAdapter struct {
	bin string
}

func NewPythonAdapter(bin string) *PythonAdapter {
	if bin == "" {
		bin = "python3"
	}
	return &PythonAdapter{bin: bin}
}

func (a *PythonAdapter) Language() string { return "python" }
func (a *PythonAdapter) FileExt() string  { return ".py" }

func (a *PythonAdapter) RunCommand() (string, []string) { return a.bin, nil }

// CheckCommand compiles the file to bytecode without executing it.
func (a *PythonAdapter) CheckCommand() (string, []string) {
	return a.bin, []string{"-m", "py_compile"}
}

func (a *PythonAdapter) DetectEntryPoint(source string) (EntryPoint, bool) {
	m := pythonDefRe.FindStringSubmatch(source)
	if m == nil {
		return EntryPoint{}, false
	}
	return EntryPoint{Name: m[1], Params: parsePythonParams(m[2])}, true
}

func parsePythonParams(raw string) []string {
	var params []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		// Drop default values and annotations; only arity matters.
		if i := strings.IndexAny(p, "=:"); i >= 0 {
			p = strings.TrimSpace(p[:i])
		}
		if p == "" || strings.HasPrefix(p, "*") {
			continue
		}
		params = append(params, p)
	}
	return params
}

func (a *PythonAdapter) WrapScript(code, input string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "def get_input():\n    return %s\n\n", strconv.Quote(input))
	b.WriteString(code)
	b.WriteString("\n")
	return b.String()
}

func (a *PythonAdapter) WrapFunction(code string, entry EntryPoint, args []string) string {
	var b strings.Builder
	b.WriteString(code)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "if __name__ == \"__main__\":\n    _result = %s(%s)\n    print(_result)\n",
		entry.Name, renderArgs(args, strconv.Quote))
	return b.String()
}
