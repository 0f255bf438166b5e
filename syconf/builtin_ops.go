package syconf

// Arithmetic, comparison, and boolean-not operators. These are compiled
// directly by compiler.go (never looked up by name through globalBuiltins),
// since the surface language spells them as infix/prefix operators, not
// identifiers.

var mathFuncs = map[MathOp]*Func{
	OpAdd: newBuiltin("+", 2, 2, builtinAdd),
	OpSub: newBuiltin("-", 2, 2, builtinSub),
	OpMul: newBuiltin("*", 2, 2, builtinMul),
	OpDiv: newBuiltin("/", 2, 2, builtinDiv),
	OpMod: newBuiltin("%", 2, 2, builtinMod),
}

var compareFuncs = map[CompareOp]*Func{
	OpEQ: newBuiltin("=", 2, 2, builtinEQ),
	OpNE: newBuiltin("!=", 2, 2, builtinNE),
	OpLT: newBuiltin("<", 2, 2, builtinLT),
	OpLE: newBuiltin("<=", 2, 2, builtinLE),
	OpGT: newBuiltin(">", 2, 2, builtinGT),
	OpGE: newBuiltin(">=", 2, 2, builtinGE),
}

var notFunc = newBuiltin("not", 1, 1, func(loc Location, args []Value) Value {
	return NewBool(!args[0].Bool(loc))
})

// builtinAdd implements `+`: String+String concatenates, everything else
// must be Int+Int (list concatenation has its own builtin, `concat`, rather
// than overloading `+`).
func builtinAdd(loc Location, args []Value) Value {
	l, r := args[0], args[1]
	if l.Type() == StringType && r.Type() == StringType {
		return NewString(l.Str(loc) + r.Str(loc))
	}
	return NewInt(l.Int(loc) + r.Int(loc))
}

func builtinSub(loc Location, args []Value) Value {
	return NewInt(args[0].Int(loc) - args[1].Int(loc))
}

func builtinMul(loc Location, args []Value) Value {
	return NewInt(args[0].Int(loc) * args[1].Int(loc))
}

func builtinDiv(loc Location, args []Value) Value {
	divisor := args[1].Int(loc)
	if divisor == 0 {
		panicErr(DomainError, loc, "division by zero")
	}
	return NewInt(args[0].Int(loc) / divisor)
}

func builtinMod(loc Location, args []Value) Value {
	divisor := args[1].Int(loc)
	if divisor == 0 {
		panicErr(DomainError, loc, "modulo by zero")
	}
	return NewInt(args[0].Int(loc) % divisor)
}

func builtinEQ(loc Location, args []Value) Value { return NewBool(args[0].Equal(args[1])) }
func builtinNE(loc Location, args []Value) Value { return NewBool(!args[0].Equal(args[1])) }

func builtinLT(loc Location, args []Value) Value {
	return NewBool(compareOrdered(loc, args[0], args[1]) < 0)
}
func builtinLE(loc Location, args []Value) Value {
	return NewBool(compareOrdered(loc, args[0], args[1]) <= 0)
}
func builtinGT(loc Location, args []Value) Value {
	return NewBool(compareOrdered(loc, args[0], args[1]) > 0)
}
func builtinGE(loc Location, args []Value) Value {
	return NewBool(compareOrdered(loc, args[0], args[1]) >= 0)
}

// compareOrdered implements ordering for Int and String operands; any other
// kind is a TypeError, since lists, maps, bools, and funcs have no natural
// order in this language.
func compareOrdered(loc Location, l, r Value) int {
	if l.Type() != r.Type() {
		panicErr(TypeError, loc, "cannot compare %s with %s", l.Type(), r.Type())
	}
	switch l.Type() {
	case IntType:
		li, ri := l.Int(loc), r.Int(loc)
		switch {
		case li < ri:
			return -1
		case li > ri:
			return 1
		default:
			return 0
		}
	case StringType:
		ls, rs := l.Str(loc), r.Str(loc)
		switch {
		case ls < rs:
			return -1
		case ls > rs:
			return 1
		default:
			return 0
		}
	default:
		panicErr(TypeError, loc, "values of type %s are not ordered", l.Type())
		panic("unreachable")
	}
}
