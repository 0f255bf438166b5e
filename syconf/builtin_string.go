package syconf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// methodImpl is a bound-method implementation: self is the receiver value
// builtinGet (dispatch.go) already checked the type of, args are the remaining
// already-evaluated call arguments.
type methodImpl func(loc Location, self Value, args []Value) Value

type methodSpec struct {
	name     string
	minArity int
	maxArity int
	impl     methodImpl
}

// bindMethod closes impl over self, producing the Func value a `base.name`
// dispatch (dispatch.go) hands back so the caller can apply it like any
// other function: `"  x".trim()`.
func bindMethod(spec methodSpec, self Value) *Func {
	return &Func{
		name:     spec.name,
		minArity: spec.minArity,
		maxArity: spec.maxArity,
		builtin: func(loc Location, args []Value) Value {
			return spec.impl(loc, self, args)
		},
	}
}

var stringMethods = map[string]methodSpec{
	"contains":    {"contains", 1, 1, stringContains},
	"starts_with": {"starts_with", 1, 1, stringStartsWith},
	"ends_with":   {"ends_with", 1, 1, stringEndsWith},
	"lines":       {"lines", 0, 0, stringLines},
	"trim":        {"trim", 0, 0, stringTrim},
	"unindent":    {"unindent", 0, 0, stringUnindent},
	"parse_json":  {"parse_json", 0, 0, stringParseJSON},
	"parse_yaml":  {"parse_yaml", 0, 0, stringParseYAML},
	"parse_toml":  {"parse_toml", 0, 0, stringParseTOML},
}

func stringContains(loc Location, self Value, args []Value) Value {
	return NewBool(strings.Contains(self.Str(loc), args[0].Str(loc)))
}

func stringStartsWith(loc Location, self Value, args []Value) Value {
	return NewBool(strings.HasPrefix(self.Str(loc), args[0].Str(loc)))
}

func stringEndsWith(loc Location, self Value, args []Value) Value {
	return NewBool(strings.HasSuffix(self.Str(loc), args[0].Str(loc)))
}

func stringLines(loc Location, self Value, args []Value) Value {
	s := self.Str(loc)
	parts := strings.Split(s, "\n")
	values := make([]Value, len(parts))
	for i, p := range parts {
		values[i] = NewString(p)
	}
	return NewList(values)
}

func stringTrim(loc Location, self Value, args []Value) Value {
	return NewString(strings.TrimSpace(self.Str(loc)))
}

// stringUnindent strips a common leading-whitespace prefix from every line,
// replicating the original implementation's algorithm byte-for-byte rather
// than a "true common prefix" rule (see commonIndentWidth): take every
// non-blank line's leading-whitespace run, sort those runs lexicographically,
// and compare only the lexicographically-smallest and -largest of them.
// With no non-blank lines at all, the string is returned unchanged; every
// blank line in the output becomes empty regardless of prefix length.
func stringUnindent(loc Location, self Value, args []Value) Value {
	text := self.Str(loc)
	lines := strings.Split(text, "\n")
	prefixes := whitespacePrefixes(lines)
	if len(prefixes) == 0 {
		return NewString(text)
	}
	n := commonIndentWidth(prefixes)
	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		r := []rune(line)
		if n >= len(r) {
			out[i] = ""
		} else {
			out[i] = string(r[n:])
		}
	}
	return NewString(strings.Join(out, "\n"))
}

// whitespacePrefixes returns the leading run of whitespace runes for every
// non-blank line, sorted lexicographically.
func whitespacePrefixes(lines []string) []string {
	var out []string
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r := []rune(line)
		i := 0
		for i < len(r) && unicode.IsSpace(r[i]) {
			i++
		}
		out = append(out, string(r[:i]))
	}
	sort.Strings(out)
	return out
}

// commonIndentWidth reproduces the original's quirk (spec.md's "unindent"
// Open Question): with a single whitespace prefix, its length is the answer
// outright; with more than one, only the sorted-first and sorted-last
// prefixes are compared, rune by rune over their shared length, and the
// result is the *count* of positions where they happen to agree — not the
// length of their common prefix, since the loop never stops at the first
// mismatch. On mixed-whitespace input (e.g. a "\t  " prefix next to a
// " \t " one) this can count positions past a mismatch, yielding a
// nonzero width a true common-prefix computation would not.
func commonIndentWidth(prefixes []string) int {
	if len(prefixes) == 1 {
		return len([]rune(prefixes[0]))
	}
	first := []rune(prefixes[0])
	last := []rune(prefixes[len(prefixes)-1])
	n := len(first)
	if len(last) < n {
		n = len(last)
	}
	cnt := 0
	for i := 0; i < n; i++ {
		if first[i] == last[i] {
			cnt++
		}
	}
	return cnt
}

func stringParseJSON(loc Location, self Value, args []Value) Value {
	var raw interface{}
	if err := json.Unmarshal([]byte(self.Str(loc)), &raw); err != nil {
		panicErr(DomainError, loc, "parse_json: %v", err)
	}
	return fromGoValue(loc, raw)
}

func stringParseYAML(loc Location, self Value, args []Value) Value {
	var raw interface{}
	if err := yaml.Unmarshal([]byte(self.Str(loc)), &raw); err != nil {
		panicErr(DomainError, loc, "parse_yaml: %v", err)
	}
	return fromGoValue(loc, normalizeYAML(raw))
}

func stringParseTOML(loc Location, self Value, args []Value) Value {
	var raw interface{}
	if err := toml.Unmarshal([]byte(self.Str(loc)), &raw); err != nil {
		panicErr(DomainError, loc, "parse_toml: %v", err)
	}
	return fromGoValue(loc, raw)
}

// normalizeYAML recursively turns yaml.v3's map[string]interface{} (and, for
// non-string keys, map[interface{}]interface{} on older decode paths) into
// plain map[string]interface{} so fromGoValue has one shape to handle.
func normalizeYAML(v interface{}) interface{} {
	switch x := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, val := range x {
			out[k] = normalizeYAML(val)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(x))
		for k, val := range x {
			out[toGoString(k)] = normalizeYAML(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(x))
		for i, e := range x {
			out[i] = normalizeYAML(e)
		}
		return out
	default:
		return v
	}
}

func toGoString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// fromGoValue converts a decoded JSON/YAML/TOML document into a Value. Only
// the shapes this language's Value can represent are supported: bool,
// string, list, map with string keys, and numbers — which decode as
// float64 (JSON), int or float64 (YAML), or int64 (TOML) and are truncated
// to this language's
// 32-bit Int, since it has no floating-point type (spec Non-goal).
func fromGoValue(loc Location, v interface{}) Value {
	switch x := v.(type) {
	case nil:
		return NewBool(false)
	case bool:
		return NewBool(x)
	case string:
		return NewString(x)
	case int:
		return NewInt(int32(x))
	case int64:
		return NewInt(int32(x))
	case float64:
		return NewInt(int32(x))
	case []interface{}:
		items := make([]Value, len(x))
		for i, e := range x {
			items[i] = fromGoValue(loc, e)
		}
		return NewList(items)
	case map[string]interface{}:
		m := make(map[string]Value, len(x))
		for k, e := range x {
			m[k] = fromGoValue(loc, e)
		}
		return NewHashMap(m)
	default:
		panicErr(DomainError, loc, "unsupported decoded value of type %T", v)
		panic("unreachable")
	}
}
