package syconf

// compiler turns the external Expr tree into the code-node graph, per
// spec.md §4.1. Every rule is a case in compile's switch; the only shared
// state threaded through recursive calls is the lexical Context, which is
// how an Identifier node resolves straight to the node it refers to instead
// of carrying a name for the evaluator to look up later.
type compiler struct {
	src       *Source         // source of the Expr tree currently being compiled
	importing map[string]bool // import cycle guard, keyed by resolved import path
}

func newCompiler(src *Source) *compiler {
	return &compiler{src: src, importing: map[string]bool{}}
}

// compile is the single recursive entry point dispatching on Expr's
// concrete type.
func (c *compiler) compile(ctx *Context, e Expr) *node {
	loc := locationAt(c.src, e.restLen())
	switch x := e.(type) {
	case LiteralBool:
		return resolvedNode(loc, NewBool(x.Value))
	case LiteralInt:
		return resolvedNode(loc, NewInt(x.Value))
	case LiteralString:
		return c.compileString(ctx, loc, x)
	case LiteralList:
		items := make([]*node, len(x.Elements))
		for i, el := range x.Elements {
			items[i] = c.compile(ctx, el)
		}
		return listNode(loc, items)
	case LiteralObject:
		return c.compileObject(ctx, loc, x)
	case Identifier:
		return c.compileIdentifier(ctx, loc, x.Name)
	case FuncDefinition:
		return c.compileFuncDefinition(ctx, loc, x)
	case Math:
		return functionCallNode(loc, resolvedNode(loc, NewFunc(mathFuncs[x.Op])), []*node{c.compile(ctx, x.Left), c.compile(ctx, x.Right)})
	case Comparison:
		return functionCallNode(loc, resolvedNode(loc, NewFunc(compareFuncs[x.Op])), []*node{c.compile(ctx, x.Left), c.compile(ctx, x.Right)})
	case Logical:
		return c.compileLogical(ctx, loc, x)
	case Conditional:
		return conditionalNode(loc, c.compile(ctx, x.Cond), c.compile(ctx, x.Then), c.compile(ctx, x.Else))
	case Suffix:
		return c.compileSuffix(ctx, loc, x)
	case Block:
		return c.compileBlock(ctx, x)
	case Import:
		return c.compileImport(ctx, loc, x.Path)
	default:
		panicErr(InternalInvariant, loc, "unhandled expression type %T", e)
		panic("unreachable")
	}
}

func (c *compiler) compileString(ctx *Context, loc Location, x LiteralString) *node {
	if len(x.Fragments) == 0 {
		return resolvedNode(loc, NewString(""))
	}
	args := make([]*node, len(x.Fragments))
	for i, frag := range x.Fragments {
		if frag.Expr != nil {
			args[i] = c.compile(ctx, frag.Expr)
		} else {
			args[i] = resolvedNode(loc, NewString(frag.Raw))
		}
	}
	return functionCallNode(loc, resolvedNode(loc, NewFunc(concatStringsFunc)), args)
}

// compileObject implements "last key wins": a later entry for a key already
// seen replaces the earlier one's node outright.
func (c *compiler) compileObject(ctx *Context, loc Location, x LiteralObject) *node {
	index := map[string]int{}
	var keys []string
	var values []*node
	for i, k := range x.Keys {
		v := c.compile(ctx, x.Values[i])
		if pos, ok := index[k]; ok {
			values[pos] = v
			continue
		}
		index[k] = len(keys)
		keys = append(keys, k)
		values = append(values, v)
	}
	return hashMapNode(loc, keys, values)
}

func (c *compiler) compileIdentifier(ctx *Context, loc Location, name string) *node {
	if n := ctx.lookup(name); n != nil {
		return n
	}
	if f, ok := globalBuiltins[name]; ok {
		return resolvedNode(loc, NewFunc(f))
	}
	panicErr(CompileError, loc, "undefined identifier %q", name)
	panic("unreachable")
}

func (c *compiler) compileFuncDefinition(ctx *Context, loc Location, x FuncDefinition) *node {
	debugf(loc, "creating function definition node with %d parameter(s)", len(x.Params))
	child := ctx.child()
	cells := make([]*paramCell, len(x.Params))
	for i, name := range x.Params {
		cell := &paramCell{name: name}
		cells[i] = cell
		child.bind(name, funcInputArgNode(loc, cell))
	}
	body := c.compile(child, x.Body)
	return funcDefNode(loc, cells, body)
}

func (c *compiler) compileLogical(ctx *Context, loc Location, x Logical) *node {
	switch x.Op {
	case OpAnd:
		return andNode(loc, c.compile(ctx, x.Left), c.compile(ctx, x.Right))
	case OpOr:
		return orNode(loc, c.compile(ctx, x.Left), c.compile(ctx, x.Right))
	default: // OpNot
		return functionCallNode(loc, resolvedNode(loc, NewFunc(notFunc)), []*node{c.compile(ctx, x.Left)})
	}
}

func (c *compiler) compileSuffix(ctx *Context, loc Location, x Suffix) *node {
	base := c.compile(ctx, x.Base)
	switch op := x.Op.(type) {
	case FunctionApplication:
		args := make([]*node, len(op.Args))
		for i, a := range op.Args {
			args[i] = c.compile(ctx, a)
		}
		return functionCallNode(loc, base, args)
	case DotField:
		key := resolvedNode(loc, NewString(op.Name))
		return functionCallNode(loc, resolvedNode(loc, NewFunc(dispatchGetFunc)), []*node{base, key})
	case Index:
		idx := c.compile(ctx, op.Expr)
		return functionCallNode(loc, resolvedNode(loc, NewFunc(dispatchGetFunc)), []*node{base, idx})
	default:
		panicErr(InternalInvariant, loc, "unhandled suffix operator %T", op)
		panic("unreachable")
	}
}

// compileBlock compiles each `let` assignment in order inside a freshly
// nested scope, so each one sees earlier bindings but never a later one —
// this is what makes `let fact = (n) => if n <= 1 then 1 else n *
// fact(n - 1);` work: fact's own paramCell-bound body is compiled in a
// scope where the identifier "fact" already resolves to fact's own
// FuncDefinition node.
func (c *compiler) compileBlock(ctx *Context, x Block) *node {
	child := ctx.child()
	for _, a := range x.Assignments {
		// Bind a placeholder before compiling the right-hand side, so a
		// self-recursive reference inside it (e.g. `let fact =
		// (n) => ... fact(n - 1) ...;`) resolves to this exact node. Once
		// compiled, splice the real node's contents into the placeholder in
		// place: every earlier reference already holds this pointer, so the
		// splice is all they need to see the finished definition.
		placeholder := &node{}
		child.bind(a.Name, placeholder)
		debugf(locationAt(c.src, a.Expr.restLen()), "bind %q in block scope", a.Name)
		compiled := c.compile(child, a.Expr)
		*placeholder = *compiled
	}
	return c.compile(child, x.Result)
}

// compileImport resolves and compiles the imported file eagerly, at compile
// time: the result is folded into a single Resolved node carrying the
// imported file's evaluated Value, matching spec.md's "no incremental
// recompilation or caching" Non-goal (an import is re-read and re-run every
// time its importer is compiled, never memoized).
func (c *compiler) compileImport(ctx *Context, loc Location, path string) *node {
	debugf(loc, "resolving import %q", path)
	absPath, text := resolveImport(c.src, loc, path)
	if c.importing[absPath] {
		panicErr(DomainError, loc, "import cycle detected at %q", path)
	}
	c.importing[absPath] = true
	defer delete(c.importing, absPath)

	importedSrc := NewFileSource(absPath, text)
	expr, parseErr := parse(importedSrc)
	if parseErr != nil {
		panic(parseErr)
	}
	savedSrc := c.src
	c.src = importedSrc
	compiled := c.compile(newRootContext(), expr)
	c.src = savedSrc
	return resolvedNode(loc, eval(compiled))
}
