package syconf

import "sort"

// dispatchGetFunc backs both `base.name` (DotField) and `base[expr]`
// (Index): the compiler (compileSuffix) reduces both surface forms to a
// call to the same two-argument builtin, since the distinction between
// "look up a key" and "look up a method" is a runtime concern — it depends
// on base's Value type and, for HashMap, on whether the key is present.
var dispatchGetFunc = newBuiltin("get", 2, 2, builtinGet)

func builtinGet(loc Location, args []Value) Value {
	base, key := args[0], args[1]
	switch base.Type() {
	case HashMapType:
		return getFromMap(loc, base, key)
	case ListType:
		return getFromList(loc, base, key)
	case StringType:
		return getFromString(loc, base, key)
	default:
		panicErr(TypeError, loc, "cannot index or access a field of %s", base.Type())
		panic("unreachable")
	}
}

func getFromMap(loc Location, base, key Value) Value {
	m := base.HashMap(loc)
	name := key.Str(loc)
	if v, ok := m[name]; ok {
		return v
	}
	if spec, ok := mapMethods[name]; ok {
		return NewFunc(bindMethod(spec, base))
	}
	panicErr(DomainError, loc, "missing key %q", name)
	panic("unreachable")
}

func getFromList(loc Location, base, key Value) Value {
	list := base.List(loc)
	if key.Type() == IntType {
		idx := key.Int(loc)
		if idx < 0 || int(idx) >= len(list) {
			panicErr(DomainError, loc, "list index %d out of range (length %d)", idx, len(list))
		}
		return list[idx]
	}
	name := key.Str(loc)
	if spec, ok := listMethods[name]; ok {
		return NewFunc(bindMethod(spec, base))
	}
	panicErr(DomainError, loc, "no such list method %q", name)
	panic("unreachable")
}

func getFromString(loc Location, base, key Value) Value {
	s := base.Str(loc)
	if key.Type() == IntType {
		idx := key.Int(loc)
		if idx < 0 || int(idx) >= len(s) {
			panicErr(DomainError, loc, "string index %d out of range (length %d)", idx, len(s))
		}
		return NewString(string(s[idx]))
	}
	name := key.Str(loc)
	if spec, ok := stringMethods[name]; ok {
		return NewFunc(bindMethod(spec, base))
	}
	panicErr(DomainError, loc, "no such string method %q", name)
	panic("unreachable")
}

var listMethods = map[string]methodSpec{
	"length": {"length", 0, 0, listLength},
	"map":    {"map", 1, 1, listMap},
	"filter": {"filter", 1, 1, listFilter},
}

func listLength(loc Location, self Value, args []Value) Value {
	return NewInt(int32(len(self.List(loc))))
}

func listMap(loc Location, self Value, args []Value) Value {
	fn := args[0].Func(loc)
	items := self.List(loc)
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = fn.call(loc, []Value{item})
	}
	return NewList(out)
}

func listFilter(loc Location, self Value, args []Value) Value {
	fn := args[0].Func(loc)
	items := self.List(loc)
	var out []Value
	for _, item := range items {
		if fn.call(loc, []Value{item}).Bool(loc) {
			out = append(out, item)
		}
	}
	return NewList(out)
}

var mapMethods = map[string]methodSpec{
	"length": {"length", 0, 0, mapLength},
	"keys":   {"keys", 0, 0, mapKeys},
}

func mapLength(loc Location, self Value, args []Value) Value {
	return NewInt(int32(len(self.HashMap(loc))))
}

// mapKeys returns keys sorted lexicographically: Go map iteration order is
// randomized per run, and this language has no other way to observe that a
// HashMap's keys came back in a different order than last time.
func mapKeys(loc Location, self Value, args []Value) Value {
	m := self.HashMap(loc)
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	keys := make([]Value, len(names))
	for i, k := range names {
		keys[i] = NewString(k)
	}
	return NewList(keys)
}
