package syconf

import "fmt"

// builtinImpl is the Go-side implementation of a builtin function: it
// receives the call's Location (for diagnostics) and the already-evaluated
// argument values, and returns the result or panics via panicErr/panicType.
// This mirrors the teacher's FuncCallback signature (gql/func.go), minus the
// cancellation-context parameter this package's Non-goals (no concurrent
// evaluation) make unnecessary.
type builtinImpl func(loc Location, args []Value) Value

// paramCell is the storage location a FunctionInputArgument node reads from.
// A user-defined function's call (evalClosureCall, in eval.go) binds each
// parameter's cell for the duration of the call and restores its previous
// state afterward, which is what makes recursive calls safe: a recursive
// call saves and rebinds the same cells its caller is still using, and
// unwinds them back to the caller's values on return.
type paramCell struct {
	name  string
	bound bool
	value Value
}

// Func is the runtime representation of a function value (spec.md §3.2): a
// Go-implemented builtin, or a user-defined closure whose parameters were
// already resolved to paramCells at compile time (see compiler.go), so no
// runtime environment lookup is needed when the body runs.
type Func struct {
	name string

	// Builtin function fields.
	builtin  builtinImpl
	minArity int
	maxArity int // -1 means variadic, no upper bound

	// User-defined function fields.
	params []*paramCell
	body   *node
}

// newBuiltin registers a fixed-arity or variadic Go function as a Func
// value. maxArity < 0 means the function accepts minArity or more
// arguments.
func newBuiltin(name string, minArity, maxArity int, impl builtinImpl) *Func {
	return &Func{name: name, builtin: impl, minArity: minArity, maxArity: maxArity}
}

// newClosure builds a user-defined function value from its already-compiled
// parameter cells and body.
func newClosure(params []*paramCell, body *node) *Func {
	return &Func{params: params, body: body}
}

func (f *Func) isBuiltin() bool { return f.builtin != nil }

func (f *Func) arity() (min, max int) {
	if f.isBuiltin() {
		return f.minArity, f.maxArity
	}
	return len(f.params), len(f.params)
}

func (f *Func) checkArity(loc Location, n int) {
	min, max := f.arity()
	if n < min || (max >= 0 && n > max) {
		panicErr(ArityError, loc, "%s: expected %s argument(s), got %d", f.label(), arityRange(min, max), n)
	}
}

func arityRange(min, max int) string {
	if max < 0 {
		return fmt.Sprintf("at least %d", min)
	}
	if min == max {
		return fmt.Sprintf("%d", min)
	}
	return fmt.Sprintf("%d-%d", min, max)
}

func (f *Func) label() string {
	if f.name != "" {
		return f.name
	}
	return "<function>"
}

func (f *Func) String() string {
	if f.isBuiltin() {
		return fmt.Sprintf("<builtin %s>", f.label())
	}
	return fmt.Sprintf("<func(%d)>", len(f.params))
}

// call invokes f with already-evaluated arguments, dispatching to the Go
// implementation for a builtin or to the evaluator for a closure.
func (f *Func) call(loc Location, args []Value) Value {
	f.checkArity(loc, len(args))
	if f.isBuiltin() {
		return f.builtin(loc, args)
	}
	return evalClosureCall(loc, f, args)
}
