package sandbox

import (
	"strconv"
	"strings"
	"testing"
)

func TestPythonDetectEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantFound  bool
		wantName   string
		wantParams int
	}{
		{
			name:       "simple def",
			source:     "def add(a, b):\n    return a + b\n",
			wantFound:  true,
			wantName:   "add",
			wantParams: 2,
		},
		{
			name:       "def with defaults and annotations",
			source:     "def greet(name: str, punct=\"!\"):\n    return name + punct\n",
			wantFound:  true,
			wantName:   "greet",
			wantParams: 2,
		},
		{
			name:       "first definition wins",
			source:     "def first(x):\n    return x\n\ndef second(y):\n    return y\n",
			wantFound:  true,
			wantName:   "first",
			wantParams: 1,
		},
		{
			name:      "no function",
			source:    "print('hello')\n",
			wantFound: false,
		},
		{
			name:       "indented def",
			source:     "    def helper(v):\n        return v\n",
			wantFound:  true,
			wantName:   "helper",
			wantParams: 1,
		},
	}

	adapter := NewPythonAdapter("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, found := adapter.DetectEntryPoint(tt.source)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				return
			}
			if entry.Name != tt.wantName {
				t.Errorf("name = %q, want %q", entry.Name, tt.wantName)
			}
			if len(entry.Params) != tt.wantParams {
				t.Errorf("params = %v, want %d of them", entry.Params, tt.wantParams)
			}
		})
	}
}

func TestJavaScriptDetectEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantFound  bool
		wantName   string
		wantParams int
	}{
		{
			name:       "function declaration",
			source:     "function sum(a, b) { return a + b; }",
			wantFound:  true,
			wantName:   "sum",
			wantParams: 2,
		},
		{
			name:       "arrow function",
			source:     "const double = (x) => x * 2;",
			wantFound:  true,
			wantName:   "double",
			wantParams: 1,
		},
		{
			name:       "arrow without parens",
			source:     "const triple = x => x * 3;",
			wantFound:  true,
			wantName:   "triple",
			wantParams: 1,
		},
		{
			name:       "function expression",
			source:     "var f = function(a) { return a; };",
			wantFound:  true,
			wantName:   "f",
			wantParams: 1,
		},
		{
			name:      "no function",
			source:    "console.log('hi');",
			wantFound: false,
		},
		{
			name:       "earliest definition wins",
			source:     "function first(a) { return a; }\nconst second = (b) => b;",
			wantFound:  true,
			wantName:   "first",
			wantParams: 1,
		},
	}

	adapter := NewJavaScriptAdapter("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, found := adapter.DetectEntryPoint(tt.source)
			if found != tt.wantFound {
				t.Fatalf("found = %v, want %v", found, tt.wantFound)
			}
			if !found {
				return
			}
			if entry.Name != tt.wantName {
				t.Errorf("name = %q, want %q", entry.Name, tt.wantName)
			}
			if len(entry.Params) != tt.wantParams {
				t.Errorf("params = %v, want %d of them", entry.Params, tt.wantParams)
			}
		})
	}
}

func TestWrapScriptInjectsAccessor(t *testing.T) {
	py := NewPythonAdapter("")
	program := py.WrapScript("print(get_input())", "line1\nline2")
	if !strings.Contains(program, "def get_input():") {
		t.Errorf("python shim missing accessor:\n%s", program)
	}
	if !strings.Contains(program, `"line1\nline2"`) {
		t.Errorf("python shim missing quoted input:\n%s", program)
	}
	if !strings.Contains(program, "print(get_input())") {
		t.Errorf("python shim must keep user code verbatim:\n%s", program)
	}

	js := NewJavaScriptAdapter("")
	program = js.WrapScript("console.log(readInput());", "abc")
	if !strings.Contains(program, "function readInput()") {
		t.Errorf("js shim missing accessor:\n%s", program)
	}
	if !strings.Contains(program, `"abc"`) {
		t.Errorf("js shim missing quoted input:\n%s", program)
	}
}

func TestWrapFunctionDriver(t *testing.T) {
	py := NewPythonAdapter("")
	entry := EntryPoint{Name: "add", Params: []string{"a", "b"}}
	program := py.WrapFunction("def add(a, b):\n    return a + b", entry, callArgs(entry, "3\n4"))
	if !strings.Contains(program, "_result = add(3, 4)") {
		t.Errorf("python driver call wrong:\n%s", program)
	}
	if !strings.Contains(program, "print(_result)") {
		t.Errorf("python driver must end in a single print:\n%s", program)
	}

	js := NewJavaScriptAdapter("")
	entry = EntryPoint{Name: "greet", Params: []string{"name"}}
	program = js.WrapFunction("function greet(name) { return 'hi ' + name; }", entry, callArgs(entry, "world"))
	if !strings.Contains(program, `console.log(greet("world"));`) {
		t.Errorf("js driver call wrong:\n%s", program)
	}
}

func TestLiteralRendering(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"3.14", "3.14"},
		{"hello", `"hello"`},
		{"1 2 3", `"1 2 3"`},
		{"", `""`},
	}
	for _, tt := range tests {
		if got := literal(tt.in, strconv.Quote); got != tt.want {
			t.Errorf("literal(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestQuoteJS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc", `"abc"`},
		{"a\"b", `"a\"b"`},
		{"back\\slash", `"back\\slash"`},
		{"line1\nline2", `"line1\nline2"`},
		{"tab\there", `"tab\there"`},
		{"bell\x07", "\"bell\\u0007\""},
		// Astral-plane runes must come out as surrogate pairs, not Go's
		// \U00hhhhhh form, which node rejects with a SyntaxError.
		{"smile \U0001F600", "\"smile \\uD83D\\uDE00\""},
	}
	for _, tt := range tests {
		if got := quoteJS(tt.in); got != tt.want {
			t.Errorf("quoteJS(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestWrapFunctionQuotesAstralArgsForJS(t *testing.T) {
	js := NewJavaScriptAdapter("")
	entry := EntryPoint{Name: "echo", Params: []string{"s"}}
	program := js.WrapFunction("function echo(s) { return s; }", entry, callArgs(entry, "\U0001F600"))
	if !strings.Contains(program, "console.log(echo(\"\\uD83D\\uDE00\"));") {
		t.Errorf("js driver must use surrogate-pair escapes:\n%s", program)
	}
	if strings.Contains(program, `\U000`) {
		t.Errorf("js driver leaked a Go-style escape:\n%s", program)
	}
}

func TestCallArgsFallbackGetsWholeInput(t *testing.T) {
	entry := EntryPoint{Name: FallbackEntryPointName}
	args := callArgs(entry, "a\nb\nc")
	if len(args) != 1 || args[0] != "a\nb\nc" {
		t.Errorf("fallback should receive the whole input as one argument, got %v", args)
	}
}

func TestCallArgsPadsAndTruncates(t *testing.T) {
	entry := EntryPoint{Name: "f", Params: []string{"a", "b"}}

	args := callArgs(entry, "1")
	if len(args) != 2 || args[1] != "" {
		t.Errorf("short input should be padded, got %v", args)
	}

	args = callArgs(entry, "1\n2\n3")
	if len(args) != 2 || args[0] != "1" || args[1] != "2" {
		t.Errorf("long input should be truncated to arity, got %v", args)
	}
}
