// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines a recursive-descent parser for JavaScript with JSX.
// Automatic semicolon insertion happens at line breaks, before '}'
// and at end of file.

// Parse parses the input data and returns the corresponding parse tree.
//
// If src != nil, Parse parses the source from src and the filename
// is only used when recording position information.
// The type of the argument for the src parameter must be string,
// []byte, io.Reader, or FilePortion.
// If src == nil, Parse parses the file specified by filename.
func Parse(filename string, src interface{}) (f *File, err error) {
	in, err := newScanner(filename, src)
	if err != nil {
		return nil, err
	}
	p := parser{in: in}
	defer p.in.recover(&err)

	p.nextToken() // read first lookahead token
	f = p.parseFile()
	f.Path = filename
	return f, nil
}

// ParseExpr parses a JavaScript expression.
// A trailing semicolon is permitted.
// See Parse for explanation of parameters.
func ParseExpr(filename string, src interface{}) (expr Expr, err error) {
	in, err := newScanner(filename, src)
	if err != nil {
		return nil, err
	}
	p := parser{in: in}
	defer p.in.recover(&err)

	p.nextToken() // read first lookahead token
	expr = p.parseExpr()
	if p.tok == SEMI {
		p.nextToken()
	}
	if p.tok != EOF {
		p.in.errorf(p.tokval.pos, "got %#v after expression, want EOF", p.tok)
	}
	return expr, nil
}

type parser struct {
	in     *scanner
	tok    Token
	tokval tokenValue

	noIn      bool // 'in' is not an operator (for statement header)
	bareArrow bool // the primary just parsed is an unparenthesized arrow function
}

// nextToken advances the scanner and returns the position of the
// previous token.
func (p *parser) nextToken() Position {
	oldpos := p.tokval.pos
	p.tok = p.in.nextToken(&p.tokval)
	return oldpos
}

// advance is like nextToken but scans the next token in the given mode.
func (p *parser) advance(mode scanMode) Position {
	oldpos := p.tokval.pos
	p.tok = p.in.next(mode, &p.tokval)
	return oldpos
}

// peek returns the token after the current one without consuming
// anything. The returned value records whether a newline precedes it.
func (p *parser) peek() (Token, tokenValue) {
	sc := *p.in
	var val tokenValue
	tok := sc.nextToken(&val)
	return tok, val
}

// peek2 returns the two tokens after the current one.
func (p *parser) peek2() (Token, Token) {
	sc := *p.in
	var val tokenValue
	tok1 := sc.nextToken(&val)
	tok2 := sc.nextToken(&val)
	return tok1, tok2
}

// consume consumes the current token, which must be t,
// and returns its position.
func (p *parser) consume(t Token) Position {
	if p.tok != t {
		p.in.errorf(p.tokval.pos, "got %#v, want %#v", p.tok, t)
	}
	return p.nextToken()
}

// consumeSemi consumes an optional statement terminator.
func (p *parser) consumeSemi() {
	switch {
	case p.tok == SEMI:
		p.nextToken()
	case p.tok == RBRACE || p.tok == EOF || p.tokval.newline:
		// automatic semicolon insertion
	default:
		p.in.errorf(p.tokval.pos, "got %#v, want ';'", p.tok)
	}
}

// isContextual reports whether the current token is the
// identifier name, which is a keyword only in context.
func (p *parser) isContextual(name string) bool {
	return p.tok == IDENT && p.tokval.raw == name
}

func (p *parser) parseFile() *File {
	var stmts []Stmt
	for p.tok != EOF {
		stmts = append(stmts, p.parseStmt())
	}
	return &File{Stmts: stmts}
}

func (p *parser) parseStmt() Stmt {
	switch p.tok {
	case VAR, LET, CONST:
		decl := p.parseVarDecl()
		p.consumeSemi()
		return decl
	case FUNCTION:
		return p.parseFuncDecl(p.tokval.pos, false, true)
	case CLASS:
		return &ClassDecl{Class: p.parseClass(true)}
	case RETURN:
		return p.parseReturnStmt()
	case IF:
		return p.parseIfStmt()
	case FOR:
		return p.parseForStmt()
	case SWITCH:
		return p.parseSwitchStmt()
	case WHILE:
		pos := p.nextToken()
		p.consume(LPAREN)
		cond := p.parseExpr()
		p.consume(RPAREN)
		return &WhileStmt{While: pos, Cond: cond, Body: p.parseStmt()}
	case TRY:
		return p.parseTryStmt()
	case THROW:
		pos := p.nextToken()
		if p.tokval.newline {
			p.in.error(p.tokval.pos, "line break after 'throw'")
		}
		x := p.parseExpr()
		p.consumeSemi()
		return &ThrowStmt{Throw: pos, X: x}
	case BREAK, CONTINUE:
		tok := p.tok
		pos := p.nextToken()
		if p.tok == IDENT && !p.tokval.newline {
			p.in.error(p.tokval.pos, "labeled statements are not supported")
		}
		p.consumeSemi()
		return &BranchStmt{Token: tok, TokenPos: pos}
	case LBRACE:
		return p.parseBlock()
	case SEMI:
		return &EmptyStmt{Semi: p.nextToken()}
	case IMPORT:
		return p.parseImportDecl()
	case EXPORT:
		return p.parseExportDecl()
	case IDENT:
		if p.tokval.raw == "async" {
			if tok, val := p.peek(); tok == FUNCTION && !val.newline {
				pos := p.nextToken()
				return p.parseFuncDecl(pos, true, true)
			}
		}
		if tok, _ := p.peek(); tok == COLON {
			p.in.error(p.tokval.pos, "labeled statements are not supported")
		}
	}
	x := p.parseExpr()
	p.consumeSemi()
	return &ExprStmt{X: x}
}

// parseVarDecl parses a declaration without its terminator.
func (p *parser) parseVarDecl() *VarDecl {
	kind := p.tok
	decl := &VarDecl{DeclPos: p.nextToken(), Kind: kind}
	for {
		name := p.parseBindingTarget()
		var init Expr
		if p.tok == EQ {
			p.nextToken()
			init = p.parseAssign()
		}
		decl.List = append(decl.List, &VarDeclarator{Name: name, Init: init})
		if p.tok != COMMA {
			break
		}
		p.nextToken()
	}
	return decl
}

// parseBindingTarget parses a declared name or destructuring pattern.
func (p *parser) parseBindingTarget() Expr {
	switch p.tok {
	case IDENT:
		return p.parseIdent()
	case LBRACE, LBRACK:
		x := p.parsePrimary()
		p.checkPattern(x, false)
		return x
	}
	p.in.errorf(p.tokval.pos, "got %#v, want identifier or pattern", p.tok)
	panic("unreachable")
}

// checkPattern reports an error unless x is a valid binding pattern,
// or, if members is set, a valid assignment target.
func (p *parser) checkPattern(x Expr, members bool) {
	switch x := x.(type) {
	case *Ident:
		return
	case *DotExpr, *IndexExpr:
		if members {
			return
		}
	case *AssignExpr:
		if x.Op == EQ {
			p.checkPattern(x.LHS, members)
			return
		}
	case *ArrayExpr:
		for _, elem := range x.List {
			p.checkPattern(elem, members)
		}
		return
	case *ObjectExpr:
		for _, prop := range x.List {
			if prop.Method {
				p.in.error(Start(prop.Key), "method in destructuring pattern")
			}
			p.checkPattern(prop.Value, members)
		}
		return
	case *SpreadExpr:
		p.checkPattern(x.X, members)
		return
	}
	p.in.errorf(Start(x), "invalid destructuring target")
}

func (p *parser) parseIdent() *Ident {
	if p.tok != IDENT {
		p.in.errorf(p.tokval.pos, "got %#v, want identifier", p.tok)
	}
	id := &Ident{NamePos: p.tokval.pos, Name: p.tokval.raw}
	p.nextToken()
	return id
}

// parsePropertyName parses an identifier name, which may be a
// reserved word, as used after '.' and in import lists.
func (p *parser) parsePropertyName() *Ident {
	if p.tok != IDENT && !p.tok.IsKeyword() {
		p.in.errorf(p.tokval.pos, "got %#v, want property name", p.tok)
	}
	id := &Ident{NamePos: p.tokval.pos, Name: p.tokval.raw}
	p.nextToken()
	return id
}

// parsePropertyKey parses the key of an object property or class member.
func (p *parser) parsePropertyKey() (key Expr, computed bool) {
	switch p.tok {
	case STRING, NUMBER:
		return p.parseLiteral(), false
	case LBRACK:
		p.nextToken()
		noIn := p.noIn
		p.noIn = false
		key = p.parseAssign()
		p.noIn = noIn
		p.consume(RBRACK)
		return key, true
	}
	return p.parsePropertyName(), false
}

func (p *parser) parseLiteral() *Literal {
	lit := &Literal{
		Token:    p.tok,
		TokenPos: p.tokval.pos,
		Raw:      p.tokval.raw,
		Value:    p.tokval.string,
	}
	p.nextToken()
	return lit
}

func (p *parser) parseBlock() *BlockStmt {
	block := &BlockStmt{Lbrace: p.consume(LBRACE)}
	noIn := p.noIn
	p.noIn = false
	for p.tok != RBRACE {
		if p.tok == EOF {
			p.in.error(block.Lbrace, "unterminated block")
		}
		block.Stmts = append(block.Stmts, p.parseStmt())
	}
	p.noIn = noIn
	block.Rbrace = p.nextToken()
	return block
}

func (p *parser) parseReturnStmt() *ReturnStmt {
	pos := p.nextToken()
	stmt := &ReturnStmt{Return: pos}
	if p.tok != SEMI && p.tok != RBRACE && p.tok != EOF && !p.tokval.newline {
		stmt.Result = p.parseExpr()
	}
	p.consumeSemi()
	return stmt
}

func (p *parser) parseIfStmt() *IfStmt {
	pos := p.nextToken()
	p.consume(LPAREN)
	cond := p.parseExpr()
	p.consume(RPAREN)
	stmt := &IfStmt{If: pos, Cond: cond, Then: p.parseStmt()}
	if p.tok == ELSE {
		p.nextToken()
		stmt.Else = p.parseStmt()
	}
	return stmt
}

// parseForStmt parses for (;;), for-in and for-of loops.
func (p *parser) parseForStmt() Stmt {
	pos := p.nextToken()
	if p.tok == AWAIT {
		p.in.error(p.tokval.pos, "for await is not supported")
	}
	p.consume(LPAREN)

	var init Stmt
	switch p.tok {
	case SEMI:
		// no initializer
	case VAR, LET, CONST:
		p.noIn = true
		decl := p.parseVarDecl()
		p.noIn = false
		if p.tok == IN || p.isContextual("of") {
			if len(decl.List) != 1 || decl.List[0].Init != nil {
				p.in.error(decl.DeclPos, "invalid left-hand side in for-in/of loop")
			}
			return p.parseForInRest(pos, decl.Kind, decl.List[0].Name)
		}
		init = decl
	default:
		p.noIn = true
		x := p.parseExpr()
		p.noIn = false
		if p.tok == IN || p.isContextual("of") {
			p.checkPattern(x, true)
			return p.parseForInRest(pos, ILLEGAL, x)
		}
		init = &ExprStmt{X: x}
	}

	stmt := &ForStmt{For: pos, Init: init}
	p.consume(SEMI)
	if p.tok != SEMI {
		stmt.Cond = p.parseExpr()
	}
	p.consume(SEMI)
	if p.tok != RPAREN {
		stmt.Post = p.parseExpr()
	}
	p.consume(RPAREN)
	stmt.Body = p.parseStmt()
	return stmt
}

func (p *parser) parseForInRest(pos Position, kind Token, decl Expr) *ForInStmt {
	stmt := &ForInStmt{For: pos, Of: p.tok == IDENT, Kind: kind, Decl: decl}
	p.nextToken()
	if stmt.Of {
		stmt.X = p.parseAssign()
	} else {
		stmt.X = p.parseExpr()
	}
	p.consume(RPAREN)
	stmt.Body = p.parseStmt()
	return stmt
}

func (p *parser) parseSwitchStmt() *SwitchStmt {
	stmt := &SwitchStmt{Switch: p.nextToken()}
	p.consume(LPAREN)
	stmt.Tag = p.parseExpr()
	p.consume(RPAREN)
	lbrace := p.consume(LBRACE)
	noIn := p.noIn
	p.noIn = false
	var dflt *CaseClause
	for p.tok != RBRACE {
		clause := &CaseClause{Case: p.tokval.pos}
		switch p.tok {
		case CASE:
			p.nextToken()
			clause.Value = p.parseExpr()
		case DEFAULT:
			if dflt != nil {
				p.in.errorf(clause.Case, "multiple defaults in switch (first at %s)", dflt.Case)
			}
			dflt = clause
			p.nextToken()
		case EOF:
			p.in.error(lbrace, "unterminated switch body")
		default:
			p.in.errorf(p.tokval.pos, "got %#v in switch body, want 'case' or 'default'", p.tok)
		}
		clause.Colon = p.consume(COLON)
		for p.tok != CASE && p.tok != DEFAULT && p.tok != RBRACE {
			if p.tok == EOF {
				p.in.error(lbrace, "unterminated switch body")
			}
			clause.Body = append(clause.Body, p.parseStmt())
		}
		stmt.Cases = append(stmt.Cases, clause)
	}
	p.noIn = noIn
	stmt.Rbrace = p.nextToken()
	return stmt
}

func (p *parser) parseTryStmt() *TryStmt {
	stmt := &TryStmt{Try: p.nextToken()}
	stmt.Body = p.parseBlock()
	if p.tok == CATCH {
		p.nextToken()
		if p.tok == LPAREN {
			p.nextToken()
			stmt.Param = p.parseBindingTarget()
			p.consume(RPAREN)
		}
		stmt.Catch = p.parseBlock()
	}
	if p.tok == FINALLY {
		p.nextToken()
		stmt.Finally = p.parseBlock()
	}
	if stmt.Catch == nil && stmt.Finally == nil {
		p.in.error(stmt.Try, "try without catch or finally")
	}
	return stmt
}

// parseFuncDecl parses a function declaration whose 'function'
// keyword is the current token. The name is optional only in an
// export default declaration.
func (p *parser) parseFuncDecl(start Position, async, named bool) *FuncDecl {
	name, fn := p.parseFunction(start, async)
	if name == nil && named {
		p.in.error(start, "function declaration requires a name")
	}
	return &FuncDecl{Name: name, Function: fn}
}

// parseFunction parses 'function' [name] (params) { body }.
func (p *parser) parseFunction(start Position, async bool) (*Ident, Function) {
	p.consume(FUNCTION)
	if p.tok == STAR {
		p.in.error(p.tokval.pos, "generator functions are not supported")
	}
	var name *Ident
	if p.tok == IDENT {
		name = p.parseIdent()
	}
	fn := Function{StartPos: start, Async: async}
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	return name, fn
}

// parseMethod parses the parameters and body of a method whose key
// has been consumed.
func (p *parser) parseMethod(start Position, async bool) *FuncExpr {
	fn := Function{StartPos: start, Async: async}
	fn.Params = p.parseParams()
	fn.Body = p.parseBlock()
	return &FuncExpr{Function: fn}
}

func (p *parser) parseParams() []Expr {
	p.consume(LPAREN)
	var params []Expr
	for p.tok != RPAREN {
		var param Expr
		if p.tok == ELLIPSIS {
			pos := p.nextToken()
			param = &SpreadExpr{Ellipsis: pos, X: p.parseBindingTarget()}
		} else {
			param = p.parseBindingTarget()
			if p.tok == EQ {
				pos := p.nextToken()
				param = &AssignExpr{LHS: param, OpPos: pos, Op: EQ, RHS: p.parseAssign()}
			}
		}
		params = append(params, param)
		if p.tok != COMMA {
			break
		}
		p.nextToken()
	}
	p.consume(RPAREN)
	return params
}

func (p *parser) parseClass(named bool) Class {
	c := Class{ClassPos: p.consume(CLASS)}
	if p.tok == IDENT {
		c.Name = p.parseIdent()
	} else if named {
		p.in.error(c.ClassPos, "class declaration requires a name")
	}
	if p.tok == EXTENDS {
		p.nextToken()
		c.Super = p.parseCallOrMember()
	}
	p.consume(LBRACE)
	for p.tok != RBRACE {
		if p.tok == SEMI {
			p.nextToken()
			continue
		}
		if p.tok == EOF {
			p.in.error(c.ClassPos, "unterminated class body")
		}
		c.Members = append(c.Members, p.parseClassMember())
	}
	c.Rbrace = p.nextToken()
	return c
}

// isModifier reports whether the current identifier is used as a
// modifier (static, async, get, set) rather than as a member name.
func (p *parser) isModifier(name string) bool {
	if !p.isContextual(name) {
		return false
	}
	switch tok, val := p.peek(); tok {
	case LPAREN, EQ, SEMI, RBRACE, COLON, COMMA:
		return false
	default:
		return !val.newline || name == "static"
	}
}

func (p *parser) parseClassMember() *ClassMember {
	m := new(ClassMember)
	if p.isModifier("static") {
		p.nextToken()
		m.Static = true
	}
	m.Accessor = p.parseAccessor()
	async := false
	if m.Accessor == "" && p.isModifier("async") {
		p.nextToken()
		async = true
	}
	start := p.tokval.pos
	m.Key, m.Computed = p.parsePropertyKey()
	if p.tok == LPAREN {
		m.Method = true
		m.Value = p.parseAccessorMethod(start, async, m.Accessor)
		return m
	}
	switch {
	case m.Accessor != "":
		p.in.errorf(p.tokval.pos, "got %#v after %s accessor name, want '('", p.tok, m.Accessor)
	case async:
		p.in.error(start, "async class field")
	}
	if p.tok == EQ {
		p.nextToken()
		m.Value = p.parseAssign()
	}
	p.consumeSemi()
	return m
}

// parseAccessor consumes a get or set modifier and returns it,
// or returns "" if the member is not an accessor.
func (p *parser) parseAccessor() string {
	if p.isModifier("get") || p.isModifier("set") {
		kind := p.tokval.raw
		p.nextToken()
		return kind
	}
	return ""
}

// parseAccessorMethod is like parseMethod but also checks the
// parameter count of a getter or setter.
func (p *parser) parseAccessorMethod(start Position, async bool, accessor string) *FuncExpr {
	fn := p.parseMethod(start, async)
	switch {
	case accessor == "get" && len(fn.Params) != 0:
		p.in.error(Start(fn.Params[0]), "getter must not have parameters")
	case accessor == "set" && len(fn.Params) != 1:
		p.in.error(start, "setter must have exactly one parameter")
	case accessor == "set":
		if _, rest := fn.Params[0].(*SpreadExpr); rest {
			p.in.error(Start(fn.Params[0]), "setter parameter must not be a rest parameter")
		}
	}
	return fn
}

func (p *parser) parseImportDecl() *ImportDecl {
	decl := &ImportDecl{Import: p.nextToken()}
	if p.tok == LPAREN || p.tok == DOT {
		p.in.error(decl.Import, "dynamic import is not supported")
	}
	if p.tok != STRING {
		if p.tok == IDENT {
			decl.Default = p.parseIdent()
			if p.tok == COMMA {
				p.nextToken()
			}
		}
		switch p.tok {
		case STAR:
			p.nextToken()
			if !p.isContextual("as") {
				p.in.errorf(p.tokval.pos, "got %#v, want 'as'", p.tok)
			}
			p.nextToken()
			decl.Namespace = p.parseIdent()
		case LBRACE:
			p.nextToken()
			for p.tok != RBRACE {
				spec := &ImportSpec{Imported: p.parsePropertyName()}
				if p.isContextual("as") {
					p.nextToken()
					spec.Local = p.parseIdent()
				} else {
					spec.Local = &Ident{NamePos: spec.Imported.NamePos, Name: spec.Imported.Name}
				}
				decl.Specs = append(decl.Specs, spec)
				if p.tok != COMMA {
					break
				}
				p.nextToken()
			}
			p.consume(RBRACE)
		}
		if !p.isContextual("from") {
			p.in.errorf(p.tokval.pos, "got %#v, want 'from'", p.tok)
		}
		p.nextToken()
	}
	if p.tok != STRING {
		p.in.errorf(p.tokval.pos, "got %#v, want module specifier", p.tok)
	}
	decl.Source = p.parseLiteral()
	p.consumeSemi()
	return decl
}

func (p *parser) parseExportDecl() *ExportDecl {
	decl := &ExportDecl{Export: p.nextToken()}
	switch p.tok {
	case VAR, LET, CONST:
		decl.Decl = p.parseVarDecl()
		p.consumeSemi()
	case FUNCTION:
		decl.Decl = p.parseFuncDecl(p.tokval.pos, false, true)
	case CLASS:
		decl.Decl = &ClassDecl{Class: p.parseClass(true)}
	case LBRACE:
		p.nextToken()
		for p.tok != RBRACE {
			spec := &ExportSpec{Local: p.parsePropertyName()}
			spec.Exported = spec.Local
			if p.isContextual("as") {
				p.nextToken()
				spec.Exported = p.parsePropertyName()
			}
			decl.Specs = append(decl.Specs, spec)
			if p.tok != COMMA {
				break
			}
			p.nextToken()
		}
		p.consume(RBRACE)
		if p.isContextual("from") {
			p.nextToken()
			if p.tok != STRING {
				p.in.errorf(p.tokval.pos, "got %#v, want module specifier", p.tok)
			}
			decl.Source = p.parseLiteral()
		}
		p.consumeSemi()
	case DEFAULT:
		p.nextToken()
		decl.Default = true
		p.parseExportDefault(decl)
	case IDENT:
		if p.tokval.raw != "async" {
			p.in.errorf(p.tokval.pos, "unexpected %s after export", p.tokval.raw)
		}
		pos := p.nextToken()
		decl.Decl = p.parseFuncDecl(pos, true, true)
	default:
		p.in.errorf(p.tokval.pos, "got %#v after export, want declaration", p.tok)
	}
	return decl
}

func (p *parser) parseExportDefault(decl *ExportDecl) {
	switch p.tok {
	case FUNCTION:
		fn := p.parseFuncDecl(p.tokval.pos, false, false)
		if fn.Name != nil {
			decl.Decl = fn
		} else {
			decl.X = &FuncExpr{Function: fn.Function}
		}
		return
	case CLASS:
		c := p.parseClass(false)
		if c.Name != nil {
			decl.Decl = &ClassDecl{Class: c}
		} else {
			decl.X = &ClassExpr{Class: c}
		}
		return
	}
	decl.X = p.parseAssign()
	p.consumeSemi()
}

// parseExpr parses a comma-separated expression list.
func (p *parser) parseExpr() Expr {
	x := p.parseAssign()
	for p.tok == COMMA {
		pos := p.nextToken()
		y := p.parseAssign()
		x = &BinaryExpr{X: x, OpPos: pos, Op: COMMA, Y: y}
	}
	return x
}

// parseAssign parses an assignment expression, which includes
// arrow functions and conditionals.
func (p *parser) parseAssign() Expr {
	x := p.parseCond()
	if p.tok.IsAssign() {
		op := p.tok
		if op == EQ {
			p.checkPattern(x, true)
		} else {
			switch x.(type) {
			case *Ident, *DotExpr, *IndexExpr:
			default:
				p.in.errorf(Start(x), "invalid left-hand side in assignment")
			}
		}
		pos := p.nextToken()
		y := p.parseAssign()
		return &AssignExpr{LHS: x, OpPos: pos, Op: op, RHS: y}
	}
	return x
}

func (p *parser) parseCond() Expr {
	x := p.parseBinary(precNullishCoalescing)
	if p.tok != QUESTION {
		return x
	}
	p.nextToken()
	noIn := p.noIn
	p.noIn = false
	t := p.parseAssign()
	p.noIn = noIn
	p.consume(COLON)
	f := p.parseAssign()
	return &CondExpr{Cond: x, True: t, False: f}
}

// parseBinary parses a sequence of binary operations whose
// precedence is at least min.
func (p *parser) parseBinary(min prec) Expr {
	x := p.parseUnary()
	for {
		op := p.tok
		opprec := binaryPrec[op]
		if opprec == precLowest || opprec < min || op == IN && p.noIn {
			return x
		}
		pos := p.nextToken()
		var y Expr
		if op == STARSTAR {
			y = p.parseBinary(opprec) // right-associative
		} else {
			y = p.parseBinary(opprec + 1)
		}
		x = &BinaryExpr{X: x, OpPos: pos, Op: op, Y: y}
	}
}

func (p *parser) parseUnary() Expr {
	switch p.tok {
	case PLUS, MINUS, BANG, TILDE, TYPEOF, VOID, DELETE, AWAIT, PLUSPLUS, MINUSMINUS:
		op := p.tok
		pos := p.nextToken()
		x := p.parseUnary()
		if op == PLUSPLUS || op == MINUSMINUS {
			p.checkUpdateTarget(x)
		}
		return &UnaryExpr{OpPos: pos, Op: op, X: x}
	}
	x := p.parseCallOrMember()
	if (p.tok == PLUSPLUS || p.tok == MINUSMINUS) && !p.tokval.newline {
		p.checkUpdateTarget(x)
		op := p.tok
		pos := p.nextToken()
		return &UnaryExpr{OpPos: pos, Op: op, X: x, Postfix: true}
	}
	return x
}

func (p *parser) checkUpdateTarget(x Expr) {
	switch x.(type) {
	case *Ident, *DotExpr, *IndexExpr:
		return
	}
	p.in.errorf(Start(x), "invalid operand for increment or decrement")
}

// parseCallOrMember parses a primary expression followed by any
// number of calls and member accesses.
func (p *parser) parseCallOrMember() Expr {
	var x Expr
	if p.tok == NEW {
		x = p.parseNew()
	} else {
		x = p.parsePrimary()
		if p.bareArrow {
			// An arrow function extends as far as possible;
			// nothing may follow it at this level.
			p.bareArrow = false
			return x
		}
	}
	return p.parseSuffixes(x, true)
}

func (p *parser) parseNew() Expr {
	pos := p.nextToken()
	if p.tok == DOT {
		p.in.error(pos, "new.target is not supported")
	}
	var fn Expr
	if p.tok == NEW {
		fn = p.parseNew()
	} else {
		fn = p.parsePrimary()
		p.bareArrow = false
	}
	fn = p.parseSuffixes(fn, false)
	x := &NewExpr{New: pos, Fn: fn}
	if p.tok == LPAREN {
		_, x.Args, x.Rparen = p.parseArgs()
	}
	return x
}

// parseSuffixes parses member accesses and, if calls is set, calls.
func (p *parser) parseSuffixes(x Expr, calls bool) Expr {
	for {
		switch p.tok {
		case DOT:
			dot := p.nextToken()
			x = &DotExpr{X: x, Dot: dot, Name: p.parsePropertyName()}
		case QUESTIONDOT:
			if !calls {
				p.in.error(p.tokval.pos, "optional chain in new expression")
			}
			dot := p.nextToken()
			switch p.tok {
			case LPAREN:
				lparen, args, rparen := p.parseArgs()
				x = &CallExpr{Fn: x, Optional: true, Lparen: lparen, Args: args, Rparen: rparen}
			case LBRACK:
				x = p.parseIndex(x, true)
			default:
				x = &DotExpr{X: x, Dot: dot, Optional: true, Name: p.parsePropertyName()}
			}
		case LBRACK:
			x = p.parseIndex(x, false)
		case LPAREN:
			if !calls {
				return x
			}
			lparen, args, rparen := p.parseArgs()
			x = &CallExpr{Fn: x, Lparen: lparen, Args: args, Rparen: rparen}
		case TEMPLATE, TEMPLATE_HEAD:
			p.in.error(p.tokval.pos, "tagged templates are not supported")
		default:
			return x
		}
	}
}

func (p *parser) parseIndex(x Expr, optional bool) *IndexExpr {
	lbrack := p.nextToken()
	noIn := p.noIn
	p.noIn = false
	y := p.parseExpr()
	p.noIn = noIn
	rbrack := p.consume(RBRACK)
	return &IndexExpr{X: x, Optional: optional, Lbrack: lbrack, Y: y, Rbrack: rbrack}
}

// parseArgs parses a parenthesized argument list.
func (p *parser) parseArgs() (lparen Position, args []Expr, rparen Position) {
	lparen = p.consume(LPAREN)
	noIn := p.noIn
	p.noIn = false
	for p.tok != RPAREN {
		if p.tok == ELLIPSIS {
			pos := p.nextToken()
			args = append(args, &SpreadExpr{Ellipsis: pos, X: p.parseAssign()})
		} else {
			args = append(args, p.parseAssign())
		}
		if p.tok != COMMA {
			break
		}
		p.nextToken()
	}
	p.noIn = noIn
	rparen = p.consume(RPAREN)
	return lparen, args, rparen
}

func (p *parser) parsePrimary() Expr {
	switch p.tok {
	case IDENT:
		if p.tokval.raw == "async" {
			if x := p.parseAsync(); x != nil {
				return x
			}
		}
		id := p.parseIdent()
		if p.tok == ARROW && !p.tokval.newline {
			return p.parseArrowBody(id.NamePos, false, []Expr{id})
		}
		return id

	case NUMBER, STRING, TRUE, FALSE, NULL:
		return p.parseLiteral()

	case THIS:
		return &ThisExpr{This: p.nextToken()}

	case SUPER:
		return &SuperExpr{Super: p.nextToken()}

	case TEMPLATE, TEMPLATE_HEAD:
		return p.parseTemplate()

	case LPAREN:
		return p.parseParenOrArrow(p.tokval.pos, nil)

	case LBRACK:
		return p.parseArray()

	case LBRACE:
		return p.parseObject()

	case FUNCTION:
		name, fn := p.parseFunction(p.tokval.pos, false)
		return &FuncExpr{Name: name, Function: fn}

	case CLASS:
		return &ClassExpr{Class: p.parseClass(false)}

	case LT:
		return p.parseJSXElement(scanCode)

	case SLASH, SLASH_EQ:
		// In operand position a slash starts a regular expression.
		p.tok = p.in.nextRegexp(&p.tokval)
		return p.parseLiteral()
	}
	p.in.errorf(p.tokval.pos, "got %#v, want primary expression", p.tok)
	panic("unreachable")
}

// parseAsync parses an async function or arrow function whose 'async'
// identifier is the current token. It returns nil, consuming nothing,
// if async is an ordinary identifier.
func (p *parser) parseAsync() Expr {
	tok1, val := p.peek()
	if val.newline {
		return nil
	}
	switch tok1 {
	case FUNCTION:
		start := p.nextToken()
		name, fn := p.parseFunction(start, true)
		return &FuncExpr{Name: name, Function: fn}
	case IDENT:
		if _, tok2 := p.peek2(); tok2 == ARROW {
			start := p.nextToken()
			id := p.parseIdent()
			return p.parseArrowBody(start, true, []Expr{id})
		}
	case LPAREN:
		async := p.parseIdent()
		return p.parseParenOrArrow(async.NamePos, async)
	}
	return nil
}

// parseParenOrArrow parses a parenthesized expression or the parameter
// list of an arrow function, which are indistinguishable until the
// closing parenthesis. If async is non-nil, the list is either the
// parameters of an async arrow function or the arguments of a call
// to a function named async.
func (p *parser) parseParenOrArrow(start Position, async *Ident) Expr {
	lparen := p.consume(LPAREN)
	noIn := p.noIn
	p.noIn = false
	var list []Expr
	for p.tok != RPAREN {
		if p.tok == ELLIPSIS {
			pos := p.nextToken()
			list = append(list, &SpreadExpr{Ellipsis: pos, X: p.parseAssign()})
		} else {
			list = append(list, p.parseAssign())
		}
		if p.tok != COMMA {
			break
		}
		p.nextToken()
	}
	rparen := p.consume(RPAREN)
	p.noIn = noIn

	if p.tok == ARROW && !p.tokval.newline {
		for _, param := range list {
			p.checkPattern(param, false)
		}
		return p.parseArrowBody(start, async != nil, list)
	}
	if async != nil {
		return &CallExpr{Fn: async, Lparen: lparen, Args: list, Rparen: rparen}
	}
	if len(list) == 0 {
		p.in.error(rparen, "got ')', want expression")
	}
	var x Expr
	for _, elem := range list {
		if spread, ok := elem.(*SpreadExpr); ok {
			p.in.error(spread.Ellipsis, "unexpected '...'")
		}
		if x == nil {
			x = elem
		} else {
			x = &BinaryExpr{X: x, OpPos: Start(elem), Op: COMMA, Y: elem}
		}
	}
	return x
}

func (p *parser) parseArrowBody(start Position, async bool, params []Expr) *ArrowFunc {
	p.consume(ARROW)
	fn := Function{StartPos: start, Async: async, Params: params}
	if p.tok == LBRACE {
		fn.Body = p.parseBlock()
	} else {
		fn.Result = p.parseAssign()
	}
	p.bareArrow = true
	return &ArrowFunc{Function: fn}
}

func (p *parser) parseArray() *ArrayExpr {
	x := &ArrayExpr{Lbrack: p.nextToken()}
	noIn := p.noIn
	p.noIn = false
	for p.tok != RBRACK {
		if p.tok == COMMA {
			p.in.error(p.tokval.pos, "array holes are not supported")
		}
		if p.tok == ELLIPSIS {
			pos := p.nextToken()
			x.List = append(x.List, &SpreadExpr{Ellipsis: pos, X: p.parseAssign()})
		} else {
			x.List = append(x.List, p.parseAssign())
		}
		if p.tok != COMMA {
			break
		}
		p.nextToken()
	}
	p.noIn = noIn
	x.Rbrack = p.consume(RBRACK)
	return x
}

func (p *parser) parseObject() *ObjectExpr {
	x := &ObjectExpr{Lbrace: p.nextToken()}
	noIn := p.noIn
	p.noIn = false
	for p.tok != RBRACE {
		x.List = append(x.List, p.parseProperty())
		if p.tok != COMMA {
			break
		}
		p.nextToken()
	}
	p.noIn = noIn
	x.Rbrace = p.consume(RBRACE)
	return x
}

func (p *parser) parseProperty() *Property {
	if p.tok == ELLIPSIS {
		pos := p.nextToken()
		return &Property{Value: &SpreadExpr{Ellipsis: pos, X: p.parseAssign()}}
	}
	accessor := p.parseAccessor()
	async := false
	if accessor == "" && p.isModifier("async") {
		p.nextToken()
		async = true
	}
	start := p.tokval.pos
	shorthand := p.tok == IDENT && accessor == ""
	key, computed := p.parsePropertyKey()
	switch {
	case p.tok == LPAREN:
		fn := p.parseAccessorMethod(start, async, accessor)
		return &Property{Key: key, Computed: computed, Method: true, Accessor: accessor, Value: fn}
	case accessor != "":
		p.in.errorf(p.tokval.pos, "got %#v after %s accessor name, want '('", p.tok, accessor)
	case async:
		p.in.error(start, "got async property, want method")
	case p.tok == COLON:
		p.nextToken()
		return &Property{Key: key, Computed: computed, Value: p.parseAssign()}
	case shorthand:
		name := key.(*Ident)
		prop := &Property{Key: key, Shorthand: true}
		value := &Ident{NamePos: name.NamePos, Name: name.Name}
		prop.Value = value
		if p.tok == EQ {
			// default value in a destructuring pattern
			pos := p.nextToken()
			prop.Value = &AssignExpr{LHS: value, OpPos: pos, Op: EQ, RHS: p.parseAssign()}
		}
		return prop
	}
	p.in.errorf(p.tokval.pos, "got %#v, want ':'", p.tok)
	panic("unreachable")
}

func (p *parser) parseTemplate() *TemplateExpr {
	x := &TemplateExpr{Backtick: p.tokval.pos}
	x.Quasis = append(x.Quasis, p.tokval.string)
	if p.tok == TEMPLATE {
		x.End = p.tokval.pos.add(p.tokval.raw)
		p.nextToken()
		return x
	}
	noIn := p.noIn
	p.noIn = false
	for {
		p.nextToken()
		x.Exprs = append(x.Exprs, p.parseExpr())
		if p.tok != RBRACE {
			p.in.errorf(p.tokval.pos, "got %#v in template substitution, want '}'", p.tok)
		}
		p.tok = p.in.nextTemplate(&p.tokval)
		x.Quasis = append(x.Quasis, p.tokval.string)
		if p.tok == TEMPLATE_TAIL {
			break
		}
	}
	p.noIn = noIn
	x.End = p.tokval.pos.add(p.tokval.raw)
	p.nextToken()
	return x
}

// parseJSXElement parses a markup element or fragment whose '<' is the
// current token. after selects how the token following the element is
// scanned: as code, inside an enclosing tag, or among the children of
// an enclosing element.
func (p *parser) parseJSXElement(after scanMode) *JSXElement {
	lt := p.tokval.pos
	p.advance(scanJSXTag)
	return p.parseJSXElementRest(lt, after)
}

// parseJSXElementRest parses an element after its '<'.
func (p *parser) parseJSXElementRest(lt Position, after scanMode) *JSXElement {
	x := &JSXElement{Lt: lt}
	if p.tok != GT {
		x.Name = p.parseJSXName()
		for p.tok != GT && p.tok != SLASH {
			x.Attrs = append(x.Attrs, p.parseJSXAttr())
		}
		if p.tok == SLASH {
			p.advance(scanJSXTag)
			if p.tok != GT {
				p.in.errorf(p.tokval.pos, "got %#v, want '>'", p.tok)
			}
			x.SelfClosing = true
			x.End = p.tokval.pos.add(">")
			p.advance(after)
			return x
		}
	}
	p.advance(scanJSXChild)

	for {
		switch p.tok {
		case JSXTEXT:
			x.Children = append(x.Children, &JSXText{TextPos: p.tokval.pos, Raw: p.tokval.raw})
			p.advance(scanJSXChild)
		case LBRACE:
			x.Children = append(x.Children, p.parseJSXExprContainer(scanJSXChild))
		case LT:
			childLt := p.tokval.pos
			p.advance(scanJSXTag)
			if p.tok == SLASH {
				p.advance(scanJSXTag)
				p.parseJSXClosing(x)
				x.End = p.tokval.pos.add(">")
				p.advance(after)
				return x
			}
			x.Children = append(x.Children, p.parseJSXElementRest(childLt, scanJSXChild))
		case EOF:
			p.in.errorf(lt, "unterminated JSX element <%s>", jsxName(x.Name))
		default:
			p.in.errorf(p.tokval.pos, "got %#v in JSX children", p.tok)
		}
	}
}

// parseJSXClosing parses the name of a closing tag after "</",
// leaving '>' as the current token.
func (p *parser) parseJSXClosing(x *JSXElement) {
	if x.Name != nil {
		pos := p.tokval.pos
		name := p.parseJSXName()
		if got, want := jsxName(name), jsxName(x.Name); got != want {
			p.in.errorf(pos, "closing tag </%s> does not match <%s>", got, want)
		}
	}
	if p.tok != GT {
		p.in.errorf(p.tokval.pos, "got %#v, want '>'", p.tok)
	}
}

// parseJSXName parses an element name: a (possibly hyphenated)
// identifier or a dotted member chain.
func (p *parser) parseJSXName() Expr {
	if p.tok != IDENT {
		p.in.errorf(p.tokval.pos, "got %#v, want JSX element name", p.tok)
	}
	var x Expr = &Ident{NamePos: p.tokval.pos, Name: p.tokval.raw}
	p.advance(scanJSXTag)
	for p.tok == DOT {
		dot := p.advance(scanJSXTag)
		if p.tok != IDENT {
			p.in.errorf(p.tokval.pos, "got %#v, want JSX element name", p.tok)
		}
		x = &DotExpr{X: x, Dot: dot, Name: &Ident{NamePos: p.tokval.pos, Name: p.tokval.raw}}
		p.advance(scanJSXTag)
	}
	return x
}

func (p *parser) parseJSXAttr() Node {
	if p.tok == LBRACE {
		lbrace := p.nextToken()
		p.consume(ELLIPSIS)
		x := p.parseAssign()
		if p.tok != RBRACE {
			p.in.errorf(p.tokval.pos, "got %#v, want '}'", p.tok)
		}
		rbrace := p.advance(scanJSXTag)
		return &JSXSpreadAttr{Lbrace: lbrace, X: x, Rbrace: rbrace}
	}
	if p.tok != IDENT {
		p.in.errorf(p.tokval.pos, "got %#v, want JSX attribute", p.tok)
	}
	attr := &JSXAttr{Name: &Ident{NamePos: p.tokval.pos, Name: p.tokval.raw}}
	p.advance(scanJSXTag)
	if p.tok != EQ {
		return attr
	}
	p.advance(scanJSXTag)
	switch p.tok {
	case STRING:
		attr.Value = &Literal{Token: STRING, TokenPos: p.tokval.pos, Raw: p.tokval.raw, Value: p.tokval.string}
		p.advance(scanJSXTag)
	case LBRACE:
		container := p.parseJSXExprContainer(scanJSXTag)
		if container.X == nil {
			p.in.error(container.Lbrace, "JSX attribute value must not be empty")
		}
		attr.Value = container
	case LT:
		attr.Value = p.parseJSXElement(scanJSXTag)
	default:
		p.in.errorf(p.tokval.pos, "got %#v, want JSX attribute value", p.tok)
	}
	return attr
}

// parseJSXExprContainer parses {expr} whose '{' is the current token.
func (p *parser) parseJSXExprContainer(after scanMode) *JSXExprContainer {
	x := &JSXExprContainer{Lbrace: p.nextToken()}
	if p.tok != RBRACE {
		noIn := p.noIn
		p.noIn = false
		x.X = p.parseExpr()
		p.noIn = noIn
		if p.tok != RBRACE {
			p.in.errorf(p.tokval.pos, "got %#v, want '}'", p.tok)
		}
	}
	x.Rbrace = p.advance(after)
	return x
}

// jsxName returns the source form of an element name.
func jsxName(name Expr) string {
	switch name := name.(type) {
	case *Ident:
		return name.Name
	case *DotExpr:
		return jsxName(name.X) + "." + name.Name.Name
	}
	return ""
}
