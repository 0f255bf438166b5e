package syconf

import "fmt"

// ErrorKind classifies an Error, matching spec.md §7 exactly.
type ErrorKind int

const (
	// ParseError is a surface-syntax rejection.
	ParseError ErrorKind = iota
	// CompileError is an undefined identifier.
	CompileError
	// TypeError is an operator or method applied to the wrong value kind.
	TypeError
	// ArityError is a wrong argument count.
	ArityError
	// DomainError covers division by zero, out-of-bounds index, missing map
	// key, malformed JSON/YAML/TOML, unset env var, and file I/O failure.
	DomainError
	// InternalInvariant marks a free FunctionInputArgument or other state
	// that indicates a compiler bug, not a mistake in the configuration
	// source.
	InternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case CompileError:
		return "compile error"
	case TypeError:
		return "type error"
	case ArityError:
		return "arity error"
	case DomainError:
		return "domain error"
	case InternalInvariant:
		return "internal invariant violated"
	default:
		return "error"
	}
}

// Error is the single error type surfaced by every stage of this package, per
// spec.md §7. It carries the deepest Location available; callers that add
// call-site context must wrap the message, never discard the Location.
type Error struct {
	Kind     ErrorKind
	Message  string
	Location Location
	hasLoc   bool
}

func (e *Error) Error() string {
	if e.hasLoc {
		return fmt.Sprintf("%s: %s: %s", e.Location, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// newError constructs an Error located at loc. A zero Location (Source ==
// nil) is rendered without a position prefix.
func newError(kind ErrorKind, loc Location, format string, args ...interface{}) *Error {
	e := &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Location: loc}
	e.hasLoc = loc.Source != nil
	return e
}

// panicErr raises loc-tagged error as a panic. The compiler and evaluator
// never thread (Value, error) or (*Node, error) through every recursive
// call; instead every exported entry point wraps its work in recoverErr,
// mirroring the teacher's Panicf/Recover discipline (gql/panic.go) and the
// original Rust source's anyhow!/bail! call sites (see
// original_source/syconf-lib).
func panicErr(kind ErrorKind, loc Location, format string, args ...interface{}) {
	panic(newError(kind, loc, format, args...))
}

// recoverErr runs fn, turning any panic raised via panicErr (or containing
// an *Error) back into a normal error return. A panic with any other value
// is re-raised, since that indicates a real bug rather than a modeled
// failure.
func recoverErr(fn func()) (err *Error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*Error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	fn()
	return nil
}
