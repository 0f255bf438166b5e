package syconf

import "github.com/ankurananda/syconf/symbol"

// Context is the compiler's lexical scope chain (spec.md §3.4). Each Block
// and each function body compiles in a child Context of the scope it
// appears in; lookup walks from the innermost scope outward, and a binding
// introduced in a scope is never visible to its parent. Names are interned
// to symbol.IDs so the scope chain compares and hashes small integers
// instead of strings on every identifier reference.
type Context struct {
	parent *Context
	names  map[symbol.ID]*node
}

// newRootContext returns the empty outermost scope for a freshly-compiled
// source.
func newRootContext() *Context {
	return &Context{}
}

// child returns a new, initially empty scope nested inside ctx.
func (ctx *Context) child() *Context {
	return &Context{parent: ctx}
}

// bind introduces name into ctx's own scope, not any ancestor. Rebinding the
// same name within one scope (e.g. two `let x` in a block) shadows the
// earlier binding, matching a sequence of nested blocks.
func (ctx *Context) bind(name string, n *node) {
	if ctx.names == nil {
		ctx.names = make(map[symbol.ID]*node)
	}
	ctx.names[symbol.Intern(name)] = n
}

// lookup walks ctx outward to the root, returning the nearest binding for
// name, or nil if none exists in any enclosing scope.
func (ctx *Context) lookup(name string) *node {
	id := symbol.Intern(name)
	for c := ctx; c != nil; c = c.parent {
		if n, ok := c.names[id]; ok {
			return n
		}
	}
	return nil
}
