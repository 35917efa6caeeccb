package sandbox

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf16"
)

// Matches "function name(params)", "const name = (params) =>" and
// "const name = function(params)". First match wins.
var (
	jsFunctionRe = regexp.MustCompile(`function\s+([A-Za-z_$][\w$]*)\s*\(([^)]*)\)`)
	jsArrowRe    = regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*(?:async\s*)?\(([^)]*)\)\s*=>`)
	jsArrowOneRe = regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*([A-Za-z_$][\w$]*)\s*=>`)
	jsExprFnRe   = regexp.MustCompile(`(?:const|let|var)\s+([A-Za-z_$][\w$]*)\s*=\s*function\s*\(([^)]*)\)`)
)

type JavaScriptAdapter struct {
	bin string
}

func NewJavaScriptAdapter(bin string) *JavaScriptAdapter {
	if bin == "" {
		bin = "node"
	}
	return &JavaScriptAdapter{bin: bin}
}

func (a *JavaScriptAdapter) Language() string { return "javascript" }
func (a *JavaScriptAdapter) FileExt() string  { return ".js" }

func (a *JavaScriptAdapter) RunCommand() (string, []string) { return a.bin, nil }

// CheckCommand parses the file without executing it.
func (a *JavaScriptAdapter) CheckCommand() (string, []string) {
	return a.bin, []string{"--check"}
}

func (a *JavaScriptAdapter) DetectEntryPoint(source string) (EntryPoint, bool) {
	type candidate struct {
		idx    int
		name   string
		params string
	}
	best := candidate{idx: -1}
	for _, re := range []*regexp.Regexp{jsFunctionRe, jsArrowRe, jsExprFnRe} {
		if loc := re.FindStringSubmatchIndex(source); loc != nil && (best.idx < 0 || loc[0] < best.idx) {
			m := re.FindStringSubmatch(source)
			best = candidate{idx: loc[0], name: m[1], params: m[2]}
		}
	}
	if loc := jsArrowOneRe.FindStringSubmatchIndex(source); loc != nil && (best.idx < 0 || loc[0] < best.idx) {
		m := jsArrowOneRe.FindStringSubmatch(source)
		best = candidate{idx: loc[0], name: m[1], params: m[2]}
	}
	if best.idx < 0 {
		return EntryPoint{}, false
	}
	return EntryPoint{Name: best.name, Params: parseJSParams(best.params)}, true
}

func parseJSParams(raw string) []string {
	var params []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if i := strings.Index(p, "="); i >= 0 {
			p = strings.TrimSpace(p[:i])
		}
		if p == "" || strings.HasPrefix(p, "...") {
			continue
		}
		params = append(params, p)
	}
	return params
}

func (a *JavaScriptAdapter) WrapScript(code, input string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "function readInput() { return %s; }\n\n", quoteJS(input))
	b.WriteString(code)
	b.WriteString("\n")
	return b.String()
}

func (a *JavaScriptAdapter) WrapFunction(code string, entry EntryPoint, args []string) string {
	var b strings.Builder
	b.WriteString(code)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "console.log(%s(%s));\n", entry.Name, renderArgs(args, quoteJS))
	return b.String()
}

// quoteJS renders s as a JavaScript double-quoted string literal. strconv.Quote
// is not usable here: it writes astral-plane runes as \U00hhhhhh, which
// JavaScript rejects, so those runes become \uXXXX surrogate pairs instead.
func quoteJS(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case r < 0x20:
				fmt.Fprintf(&b, `\u%04X`, r)
			case r > 0xFFFF:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(&b, `\u%04X\u%04X`, hi, lo)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
