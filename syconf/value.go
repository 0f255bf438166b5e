package syconf

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ValueType is the tag of the closed sum of six runtime value variants (see
// spec.md §3.1).
type ValueType int

const (
	// InvalidType marks a default-constructed Value; it is never produced by
	// evaluation.
	InvalidType ValueType = iota
	BoolType
	IntType
	StringType
	ListType
	HashMapType
	FuncType
)

func (t ValueType) String() string {
	switch t {
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	case StringType:
		return "string"
	case ListType:
		return "list"
	case HashMapType:
		return "map"
	case FuncType:
		return "func"
	default:
		return "invalid"
	}
}

// Value is the unified representation of every runtime value in syconf. It
// is immutable once constructed: List and HashMap share their backing
// slice/map by reference (like every other Go value holding a slice or map),
// so copying a Value never copies its payload, matching the "shared by
// reference, cloning a value clones the handle" ownership model in
// spec.md §3.1.
type Value struct {
	typ  ValueType
	b    bool
	i    int32
	s    string
	list []Value
	hm   map[string]Value
	fn   *Func
}

// NewBool creates a Bool value.
func NewBool(v bool) Value { return Value{typ: BoolType, b: v} }

// NewInt creates an Int value. The payload is a signed 32-bit integer per
// spec.md §3.1.
func NewInt(v int32) Value { return Value{typ: IntType, i: v} }

// NewString creates a String value.
func NewString(v string) Value { return Value{typ: StringType, s: v} }

// NewList creates a List value. The caller must not mutate items after
// passing it in.
func NewList(items []Value) Value { return Value{typ: ListType, list: items} }

// NewHashMap creates a HashMap value. The caller must not mutate m after
// passing it in.
func NewHashMap(m map[string]Value) Value { return Value{typ: HashMapType, hm: m} }

// NewFunc wraps a Func as a Value.
func NewFunc(f *Func) Value { return Value{typ: FuncType, fn: f} }

// Type returns the variant tag.
func (v Value) Type() ValueType { return v.typ }

// Valid reports whether v was actually constructed by one of the New*
// functions above.
func (v Value) Valid() bool { return v.typ != InvalidType }

// Bool extracts the boolean payload. It panics with an *Error (recovered at
// the Eval/Compile boundary) if v is not a Bool.
func (v Value) Bool(loc Location) bool {
	if v.typ != BoolType {
		panicType(loc, "bool", v)
	}
	return v.b
}

// Int extracts the integer payload.
func (v Value) Int(loc Location) int32 {
	if v.typ != IntType {
		panicType(loc, "int", v)
	}
	return v.i
}

// Str extracts the string payload.
func (v Value) Str(loc Location) string {
	if v.typ != StringType {
		panicType(loc, "string", v)
	}
	return v.s
}

// List extracts the list payload. The returned slice must not be mutated.
func (v Value) List(loc Location) []Value {
	if v.typ != ListType {
		panicType(loc, "list", v)
	}
	return v.list
}

// HashMap extracts the map payload. The returned map must not be mutated.
func (v Value) HashMap(loc Location) map[string]Value {
	if v.typ != HashMapType {
		panicType(loc, "map", v)
	}
	return v.hm
}

// Func extracts the function payload.
func (v Value) Func(loc Location) *Func {
	if v.typ != FuncType {
		panicType(loc, "func", v)
	}
	return v.fn
}

// JSON renders v as a JSON document, the format the `eval` and `repl`
// commands print by default. A Func value has no JSON representation and is
// reported as a DomainError rather than silently dropped.
func (v Value) JSON(loc Location) (string, error) {
	goVal, err := v.toGoValue(loc)
	if err != nil {
		return "", err
	}
	data, jsonErr := json.Marshal(goVal)
	if jsonErr != nil {
		return "", newError(DomainError, loc, "rendering JSON: %v", jsonErr)
	}
	return string(data), nil
}

func (v Value) toGoValue(loc Location) (interface{}, error) {
	switch v.typ {
	case BoolType:
		return v.b, nil
	case IntType:
		return v.i, nil
	case StringType:
		return v.s, nil
	case ListType:
		out := make([]interface{}, len(v.list))
		for i, e := range v.list {
			gv, err := e.toGoValue(loc)
			if err != nil {
				return nil, err
			}
			out[i] = gv
		}
		return out, nil
	case HashMapType:
		out := make(map[string]interface{}, len(v.hm))
		for k, e := range v.hm {
			gv, err := e.toGoValue(loc)
			if err != nil {
				return nil, err
			}
			out[k] = gv
		}
		return out, nil
	default:
		return nil, newError(DomainError, loc, "cannot render a %s as JSON", v.typ)
	}
}

func panicType(loc Location, want string, v Value) {
	panicErr(TypeError, loc, "expected %s, got %s (%v)", want, v.typ, v)
}

// Equal implements the structural equality rules of spec.md §3.1 and §4.4:
// Bool/Int/String compare by value, List element-wise in order, HashMap by
// key-set and pairwise value equality (insertion order irrelevant), Func by
// reference identity. Values of different Type are never equal — callers
// that need the comparison-operator's "different kinds → false" semantics
// rely on exactly that.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case BoolType:
		return v.b == other.b
	case IntType:
		return v.i == other.i
	case StringType:
		return v.s == other.s
	case ListType:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case HashMapType:
		if len(v.hm) != len(other.hm) {
			return false
		}
		for k, val := range v.hm {
			ov, ok := other.hm[k]
			if !ok || !val.Equal(ov) {
				return false
			}
		}
		return true
	case FuncType:
		return v.fn == other.fn
	default:
		return false
	}
}

// Display renders v the way string interpolation (concat_strings) coerces
// an interpolated fragment: a String contributes its raw text rather than a
// quoted literal, Bool/Int contribute their decimal/boolean form, and every
// other kind is a TypeError — a List, HashMap, or Func has no place in the
// middle of a string.
func (v Value) Display(loc Location) string {
	switch v.typ {
	case StringType:
		return v.s
	case BoolType, IntType:
		return v.String()
	default:
		panicErr(TypeError, loc, "cannot interpolate a %s into a string", v.typ)
		panic("unreachable")
	}
}

// String renders a human-readable (not necessarily round-trippable)
// description, used in error messages and by the CLI's `--format text`
// printer. HashMap keys are printed in sorted order.
func (v Value) String() string {
	switch v.typ {
	case BoolType:
		return strconv.FormatBool(v.b)
	case IntType:
		return strconv.FormatInt(int64(v.i), 10)
	case StringType:
		return strconv.Quote(v.s)
	case ListType:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case HashMapType:
		keys := make([]string, 0, len(v.hm))
		for k := range v.hm {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %s", k, v.hm[k].String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case FuncType:
		return v.fn.String()
	default:
		return "<invalid>"
	}
}
