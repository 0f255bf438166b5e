package syconf

// parse turns src's token stream into the external Expr tree (ast.go).
// Precedence, low to high: if/then/else, or, and, not, comparison,
// additive (+ -), multiplicative (* / %), unary minus, suffix (call,
// .field, [index]), primary.
func parse(src *Source) (Expr, *Error) {
	toks, lexErr := lex(src)
	if lexErr != nil {
		return nil, lexErr
	}
	p := &parseState{toks: toks, src: src}
	var result Expr
	err := recoverErr(func() {
		result = p.parseExpr()
		p.expect(tokEOF, "end of input")
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type parseState struct {
	toks []token
	pos  int
	src  *Source
}

func (p *parseState) cur() token { return p.toks[p.pos] }

func (p *parseState) at(k tokKind) bool { return p.cur().kind == k }

func (p *parseState) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// restLen approximates spec.md's "source bytes remaining" measure using the
// token offset: since lex() discards nothing but whitespace/comments before
// a token, len(src.Text)-offset is exactly what locationAt expects.
func (p *parseState) restLenAt(offset int) int { return len(p.src.Text) - offset }

func (p *parseState) mark() Location { return locationAt(p.src, p.restLenAt(p.cur().offset)) }

func (p *parseState) base(startOffset int) exprBase {
	return exprBase{RestLen: p.restLenAt(startOffset)}
}

func (p *parseState) fail(format string, args ...interface{}) {
	panicErr(ParseError, p.mark(), format, args...)
}

func (p *parseState) expect(k tokKind, what string) token {
	if !p.at(k) {
		p.fail("expected %s", what)
	}
	return p.advance()
}

func (p *parseState) save() int    { return p.pos }
func (p *parseState) restore(m int) { p.pos = m }

func (p *parseState) parseExpr() Expr {
	if p.at(tokIf) {
		return p.parseConditional()
	}
	return p.parseOr()
}

func (p *parseState) parseConditional() Expr {
	start := p.cur().offset
	p.advance() // if
	cond := p.parseExpr()
	p.expect(tokThen, "'then'")
	then := p.parseExpr()
	p.expect(tokElse, "'else'")
	els := p.parseExpr()
	return Conditional{exprBase: p.base(start), Cond: cond, Then: then, Else: els}
}

func (p *parseState) parseOr() Expr {
	start := p.cur().offset
	left := p.parseAnd()
	for p.at(tokOr) {
		p.advance()
		right := p.parseAnd()
		left = Logical{exprBase: p.base(start), Op: OpOr, Left: left, Right: right}
	}
	return left
}

func (p *parseState) parseAnd() Expr {
	start := p.cur().offset
	left := p.parseNot()
	for p.at(tokAnd) {
		p.advance()
		right := p.parseNot()
		left = Logical{exprBase: p.base(start), Op: OpAnd, Left: left, Right: right}
	}
	return left
}

func (p *parseState) parseNot() Expr {
	if p.at(tokNot) {
		start := p.cur().offset
		p.advance()
		operand := p.parseNot()
		return Logical{exprBase: p.base(start), Op: OpNot, Left: operand}
	}
	return p.parseComparison()
}

// compareTokens maps a comparison operator token to its CompareOp. tokAssign
// ('=') doubles as equality here, matching spec.md's `=`/`≠` notation: `let`
// bindings (parseBlockBody) consume their own tokAssign directly via
// p.expect before ever reaching parseComparison, so the two uses never
// collide. tokEq ('==') is accepted as the same operator for callers more
// comfortable with a C-style equality spelling.
var compareTokens = map[tokKind]CompareOp{
	tokAssign: OpEQ,
	tokEq:     OpEQ,
	tokNe:     OpNE,
	tokLt:     OpLT,
	tokLe:     OpLE,
	tokGt:     OpGT,
	tokGe:     OpGE,
}

func (p *parseState) parseComparison() Expr {
	start := p.cur().offset
	left := p.parseAdditive()
	if op, ok := compareTokens[p.cur().kind]; ok {
		p.advance()
		right := p.parseAdditive()
		return Comparison{exprBase: p.base(start), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parseState) parseAdditive() Expr {
	start := p.cur().offset
	left := p.parseMultiplicative()
	for p.at(tokPlus) || p.at(tokMinus) {
		op := OpAdd
		if p.at(tokMinus) {
			op = OpSub
		}
		p.advance()
		right := p.parseMultiplicative()
		left = Math{exprBase: p.base(start), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parseState) parseMultiplicative() Expr {
	start := p.cur().offset
	left := p.parseUnary()
	for p.at(tokStar) || p.at(tokSlash) || p.at(tokPercent) {
		var op MathOp
		switch p.cur().kind {
		case tokStar:
			op = OpMul
		case tokSlash:
			op = OpDiv
		default:
			op = OpMod
		}
		p.advance()
		right := p.parseUnary()
		left = Math{exprBase: p.base(start), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *parseState) parseUnary() Expr {
	if p.at(tokMinus) {
		start := p.cur().offset
		p.advance()
		operand := p.parseUnary()
		zero := LiteralInt{exprBase: p.base(start), Value: 0}
		return Math{exprBase: p.base(start), Op: OpSub, Left: zero, Right: operand}
	}
	return p.parseSuffix()
}

func (p *parseState) parseSuffix() Expr {
	start := p.cur().offset
	base := p.parsePrimary()
	for {
		switch {
		case p.at(tokLParen):
			p.advance()
			var args []Expr
			if !p.at(tokRParen) {
				args = append(args, p.parseExpr())
				for p.at(tokComma) {
					p.advance()
					args = append(args, p.parseExpr())
				}
			}
			p.expect(tokRParen, "')'")
			base = Suffix{exprBase: p.base(start), Base: base, Op: FunctionApplication{Args: args}}
		case p.at(tokDot):
			p.advance()
			name := p.expect(tokIdent, "field name").text
			base = Suffix{exprBase: p.base(start), Base: base, Op: DotField{Name: name}}
		case p.at(tokLBracket):
			p.advance()
			idx := p.parseExpr()
			p.expect(tokRBracket, "']'")
			base = Suffix{exprBase: p.base(start), Base: base, Op: Index{Expr: idx}}
		default:
			return base
		}
	}
}

func (p *parseState) parsePrimary() Expr {
	start := p.cur().offset
	switch p.cur().kind {
	case tokTrue:
		p.advance()
		return LiteralBool{exprBase: p.base(start), Value: true}
	case tokFalse:
		p.advance()
		return LiteralBool{exprBase: p.base(start), Value: false}
	case tokInt:
		v := p.cur().ival
		p.advance()
		return LiteralInt{exprBase: p.base(start), Value: v}
	case tokStrStart:
		return p.parseString()
	case tokLBracket:
		return p.parseList()
	case tokLBrace:
		return p.parseBlockOrObject()
	case tokImport:
		p.advance()
		path := p.parseString()
		lit, ok := path.(LiteralString)
		if !ok || len(lit.Fragments) != 1 || lit.Fragments[0].Expr != nil {
			p.fail("import path must be a plain string literal")
		}
		return Import{exprBase: p.base(start), Path: lit.Fragments[0].Raw}
	case tokIdent:
		name := p.cur().text
		p.advance()
		return Identifier{exprBase: p.base(start), Name: name}
	case tokLParen:
		if def, ok := p.tryParseFuncDefinition(start); ok {
			return def
		}
		p.advance()
		inner := p.parseExpr()
		p.expect(tokRParen, "')'")
		return inner
	default:
		p.fail("unexpected token in expression")
		panic("unreachable")
	}
}

// tryParseFuncDefinition attempts "(" ident ("," ident)* ")" "=>" expr. On
// any mismatch it rewinds to the saved position and reports failure, so the
// caller falls back to parsing a parenthesized expression — the two
// productions share the same opening token and cannot be told apart any
// other way.
func (p *parseState) tryParseFuncDefinition(start int) (Expr, bool) {
	mark := p.save()
	ok := func() bool {
		if !p.at(tokLParen) {
			return false
		}
		p.advance()
		var params []string
		if p.at(tokIdent) {
			params = append(params, p.advance().text)
			for p.at(tokComma) {
				p.advance()
				if !p.at(tokIdent) {
					return false
				}
				params = append(params, p.advance().text)
			}
		}
		if !p.at(tokRParen) {
			return false
		}
		p.advance()
		return p.at(tokArrow)
	}()
	if !ok {
		p.restore(mark)
		return nil, false
	}
	p.advance() // =>
	body := p.parseExpr()
	return p.finishFuncDef(start, mark, body)
}

// finishFuncDef re-walks the parameter list between mark and the arrow to
// build the final params slice, since tryParseFuncDefinition's probe above
// discards it on success to keep that closure single-purpose.
func (p *parseState) finishFuncDef(start, mark int, body Expr) (Expr, bool) {
	saved := p.pos
	p.pos = mark
	p.advance() // (
	var params []string
	if p.at(tokIdent) {
		params = append(params, p.advance().text)
		for p.at(tokComma) {
			p.advance()
			params = append(params, p.advance().text)
		}
	}
	p.advance() // )
	p.advance() // =>
	p.pos = saved
	return FuncDefinition{exprBase: p.base(start), Params: params, Body: body}, true
}

func (p *parseState) parseString() Expr {
	start := p.cur().offset
	p.expect(tokStrStart, "'\"'")
	var fragments []StringFragment
	for {
		switch p.cur().kind {
		case tokStrText:
			fragments = append(fragments, StringFragment{Raw: p.advance().text})
		case tokInterpStart:
			p.advance()
			expr := p.parseExpr()
			p.expect(tokInterpEnd, "'}'")
			fragments = append(fragments, StringFragment{Expr: expr})
		case tokStrEnd:
			p.advance()
			return LiteralString{exprBase: p.base(start), Fragments: fragments}
		default:
			p.fail("unterminated string literal")
		}
	}
}

func (p *parseState) parseList() Expr {
	start := p.cur().offset
	p.expect(tokLBracket, "'['")
	var elems []Expr
	if !p.at(tokRBracket) {
		elems = append(elems, p.parseExpr())
		for p.at(tokComma) {
			p.advance()
			if p.at(tokRBracket) {
				break
			}
			elems = append(elems, p.parseExpr())
		}
	}
	p.expect(tokRBracket, "']'")
	return LiteralList{exprBase: p.base(start), Elements: elems}
}

// parseBlockOrObject disambiguates on the token right after "{": "let"
// starts a block, anything else (including an immediate "}") is an object
// literal.
func (p *parseState) parseBlockOrObject() Expr {
	start := p.cur().offset
	p.expect(tokLBrace, "'{'")
	if p.at(tokLet) {
		return p.parseBlockBody(start)
	}
	return p.parseObjectBody(start)
}

func (p *parseState) parseBlockBody(start int) Expr {
	var assigns []Assignment
	for p.at(tokLet) {
		p.advance()
		name := p.expect(tokIdent, "binding name").text
		p.expect(tokAssign, "'='")
		val := p.parseExpr()
		p.expect(tokSemicolon, "';'")
		assigns = append(assigns, Assignment{Name: name, Expr: val})
	}
	result := p.parseExpr()
	p.expect(tokRBrace, "'}'")
	return Block{exprBase: p.base(start), Assignments: assigns, Result: result}
}

func (p *parseState) parseObjectBody(start int) Expr {
	var keys []string
	var values []Expr
	if !p.at(tokRBrace) {
		k, v := p.parseObjectEntry()
		keys = append(keys, k)
		values = append(values, v)
		for p.at(tokComma) {
			p.advance()
			if p.at(tokRBrace) {
				break
			}
			k, v := p.parseObjectEntry()
			keys = append(keys, k)
			values = append(values, v)
		}
	}
	p.expect(tokRBrace, "'}'")
	return LiteralObject{exprBase: p.base(start), Keys: keys, Values: values}
}

func (p *parseState) parseObjectEntry() (string, Expr) {
	var name string
	switch p.cur().kind {
	case tokIdent:
		name = p.advance().text
	case tokStrStart:
		lit := p.parseString().(LiteralString)
		if len(lit.Fragments) != 1 || lit.Fragments[0].Expr != nil {
			p.fail("object key must not use string interpolation")
		}
		name = lit.Fragments[0].Raw
		p.expect(tokColon, "':'")
		return name, p.parseExpr()
	default:
		p.fail("expected object key")
	}
	p.expect(tokColon, "':'")
	return name, p.parseExpr()
}
