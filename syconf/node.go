package syconf

// nodeKind enumerates the compiled code-node variants of spec.md §3.3: the
// compiler (compiler.go) reduces the external Expr tree (ast.go) down to
// this graph, resolving every identifier reference to a direct node pointer
// so the evaluator (eval.go) never needs a name-based environment lookup.
type nodeKind int

const (
	// nodeResolved wraps a Value already known at compile time: a literal,
	// an imported module's result, or a reference to a builtin function.
	nodeResolved nodeKind = iota
	// nodeList evaluates each item node and collects a List Value.
	nodeList
	// nodeHashMap evaluates each value node and collects a HashMap Value.
	// Duplicate keys are resolved at compile time, last write wins, so Keys
	// has no duplicates here.
	nodeHashMap
	// nodeFuncInputArg reads the current value of a function parameter.
	nodeFuncInputArg
	// nodeFuncDef builds a Func value closing over its (already-resolved)
	// body node.
	nodeFuncDef
	// nodeFunctionCall evaluates Fn and Args, then calls the resulting Func.
	nodeFunctionCall
	// nodeConditional evaluates Cond, then only the taken branch — unlike
	// nodeFunctionCall, the untaken branch must not run, since `if n <= 1
	// then 1 else n * fact(n - 1)` would otherwise recurse forever
	// evaluating the else-branch even when the base case is reached.
	nodeConditional
	// nodeAnd/nodeOr short-circuit for the same reason: the right operand
	// must not be evaluated once the left operand already decides the
	// result.
	nodeAnd
	nodeOr
)

// node is the runtime node type: a tagged union keyed by kind, mirroring
// Value's representation (value.go) for the same reason — a plain struct is
// simpler to evaluate than a family of interface implementations for a
// small, closed set of variants.
type node struct {
	kind nodeKind
	loc  Location

	resolved Value

	items []*node // nodeList

	keys   []string // nodeHashMap
	values []*node  // nodeHashMap

	cell *paramCell // nodeFuncInputArg

	params []*paramCell // nodeFuncDef
	body   *node        // nodeFuncDef

	fn   *node   // nodeFunctionCall
	args []*node // nodeFunctionCall

	cond, then, els *node // nodeConditional

	left, right *node // nodeAnd, nodeOr
}

func resolvedNode(loc Location, v Value) *node {
	return &node{kind: nodeResolved, loc: loc, resolved: v}
}

func listNode(loc Location, items []*node) *node {
	return &node{kind: nodeList, loc: loc, items: items}
}

func hashMapNode(loc Location, keys []string, values []*node) *node {
	return &node{kind: nodeHashMap, loc: loc, keys: keys, values: values}
}

func funcInputArgNode(loc Location, cell *paramCell) *node {
	return &node{kind: nodeFuncInputArg, loc: loc, cell: cell}
}

func funcDefNode(loc Location, params []*paramCell, body *node) *node {
	return &node{kind: nodeFuncDef, loc: loc, params: params, body: body}
}

func functionCallNode(loc Location, fn *node, args []*node) *node {
	return &node{kind: nodeFunctionCall, loc: loc, fn: fn, args: args}
}

func conditionalNode(loc Location, cond, then, els *node) *node {
	return &node{kind: nodeConditional, loc: loc, cond: cond, then: then, els: els}
}

func andNode(loc Location, left, right *node) *node {
	return &node{kind: nodeAnd, loc: loc, left: left, right: right}
}

func orNode(loc Location, left, right *node) *node {
	return &node{kind: nodeOr, loc: loc, left: left, right: right}
}
