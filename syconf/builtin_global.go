package syconf

import (
	"os"
	"strings"
)

// globalBuiltins holds every function addressable by a bare identifier in
// configuration source, per spec.md §4.1 "Identifier resolution order"
// (Context, then this table, then CompileError).
var globalBuiltins = map[string]*Func{}

func registerGlobal(f *Func) {
	globalBuiltins[f.name] = f
}

// concatStringsFunc implements string-literal interpolation: the compiler
// (compileString) turns every literal string into a call to this function
// with one argument per fragment. It is not in globalBuiltins, since
// surface syntax never spells it as an identifier — only "..." does.
var concatStringsFunc = newBuiltin("concat_strings", 0, -1, func(loc Location, args []Value) Value {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(a.Display(loc))
	}
	return NewString(b.String())
})

func init() {
	registerGlobal(newBuiltin("read_file", 1, 1, builtinReadFile))
	registerGlobal(newBuiltin("getenv", 1, 2, builtinGetenv))
	registerGlobal(newBuiltin("concat", 1, -1, builtinConcat))
	registerGlobal(newBuiltin("merge", 1, -1, builtinMerge))
	registerGlobal(newBuiltin("fold", 3, 3, builtinFold))
	registerGlobal(newBuiltin("length", 1, 1, builtinLength))
}

func builtinReadFile(loc Location, args []Value) Value {
	path := args[0].Str(loc)
	data, err := os.ReadFile(path)
	if err != nil {
		panicErr(DomainError, loc, "read_file %q: %v", path, err)
	}
	return NewString(string(data))
}

// builtinGetenv returns the named environment variable, or its second
// argument as a default when unset; with one argument, an unset variable is
// a DomainError rather than silently producing "".
func builtinGetenv(loc Location, args []Value) Value {
	name := args[0].Str(loc)
	if v, ok := os.LookupEnv(name); ok {
		return NewString(v)
	}
	if len(args) == 2 {
		return args[1]
	}
	panicErr(DomainError, loc, "environment variable %q is not set", name)
	panic("unreachable")
}

// builtinConcat appends any number of lists together, in argument order.
func builtinConcat(loc Location, args []Value) Value {
	var out []Value
	for _, a := range args {
		out = append(out, a.List(loc)...)
	}
	return NewList(out)
}

// builtinMerge combines maps into one, later maps overwriting keys from
// earlier ones — the multi-argument generalization of object-literal
// "last key wins". A single List argument is treated as that list of maps
// merged in list order, rather than a one-element merge of the list itself.
func builtinMerge(loc Location, args []Value) Value {
	maps := args
	if len(args) == 1 && args[0].Type() == ListType {
		maps = args[0].List(loc)
	}
	out := map[string]Value{}
	for _, a := range maps {
		for k, v := range a.HashMap(loc) {
			out[k] = v
		}
	}
	return NewHashMap(out)
}

// builtinFold reduces a list or map to a single value: fold(init, fn,
// collection). Over a list, fn is called as fn(acc, index, element) in
// order; over a map, as fn(acc, key, value) in unspecified key order.
func builtinFold(loc Location, args []Value) Value {
	acc := args[0]
	fn := args[1].Func(loc)
	switch collection := args[2]; collection.Type() {
	case ListType:
		for i, item := range collection.List(loc) {
			acc = fn.call(loc, []Value{acc, NewInt(int32(i)), item})
		}
	case HashMapType:
		for k, v := range collection.HashMap(loc) {
			acc = fn.call(loc, []Value{acc, NewString(k), v})
		}
	default:
		panicErr(TypeError, loc, "fold: expected list or map, got %s", collection.Type())
	}
	return acc
}

// builtinLength generalizes list/map/string length into one identifier, for
// callers that don't already hold a typed receiver to dot into.
func builtinLength(loc Location, args []Value) Value {
	v := args[0]
	switch v.Type() {
	case ListType:
		return NewInt(int32(len(v.List(loc))))
	case HashMapType:
		return NewInt(int32(len(v.HashMap(loc))))
	case StringType:
		return NewInt(int32(len(v.Str(loc))))
	default:
		panicErr(TypeError, loc, "length: expected list, map, or string, got %s", v.Type())
		panic("unreachable")
	}
}
