// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines a printer that writes a syntax tree back out as
// source text. Layout is normalized: one statement per line, two-space
// indentation, explicit semicolons, and only the parentheses that
// precedence requires. JSX text is reproduced verbatim.

import (
	"bytes"
	"io"
	"strings"
)

// Print writes the source form of n, which must be a *File, a Stmt,
// or an Expr, to w.
func Print(w io.Writer, n Node) error {
	var p printer
	p.node(n)
	_, err := w.Write(p.buf.Bytes())
	return err
}

// Format returns the source form of n.
func Format(n Node) string {
	var p printer
	p.node(n)
	return p.buf.String()
}

type printer struct {
	buf    bytes.Buffer
	indent int
}

func (p *printer) node(n Node) {
	switch n := n.(type) {
	case *File:
		for _, stmt := range n.Stmts {
			p.stmt(stmt)
		}
	case Stmt:
		p.stmt(n)
	case Expr:
		p.expr(n, precLowest)
	default:
		panic(n)
	}
}

func (p *printer) str(s string) { p.buf.WriteString(s) }

func (p *printer) newline() {
	p.buf.WriteByte('\n')
	for i := 0; i < p.indent; i++ {
		p.str("  ")
	}
}

// stmt prints a statement on its own line.
func (p *printer) stmt(s Stmt) {
	for i := 0; i < p.indent; i++ {
		p.str("  ")
	}
	p.stmtBody(s)
	p.buf.WriteByte('\n')
}

// stmtBody prints a statement without leading indentation or
// trailing newline.
func (p *printer) stmtBody(s Stmt) {
	switch s := s.(type) {
	case *VarDecl:
		p.varDecl(s)
		p.str(";")

	case *FuncDecl:
		p.function(&s.Function, "function", s.Name)

	case *ClassDecl:
		p.class(&s.Class)

	case *ReturnStmt:
		p.str("return")
		if s.Result != nil {
			p.str(" ")
			p.expr(s.Result, precLowest)
		}
		p.str(";")

	case *ExprStmt:
		switch leftmost(s.X).(type) {
		case *ObjectExpr, *FuncExpr, *ClassExpr:
			p.str("(")
			p.expr(s.X, precLowest)
			p.str(")")
		default:
			p.expr(s.X, precLowest)
		}
		p.str(";")

	case *BlockStmt:
		p.block(s)

	case *IfStmt:
		p.str("if (")
		p.expr(s.Cond, precLowest)
		p.str(") ")
		p.stmtBody(s.Then)
		if s.Else != nil {
			if _, ok := s.Then.(*BlockStmt); ok {
				p.str(" ")
			} else {
				p.newline()
			}
			p.str("else ")
			p.stmtBody(s.Else)
		}

	case *ForStmt:
		p.str("for (")
		switch init := s.Init.(type) {
		case *VarDecl:
			p.varDecl(init)
		case *ExprStmt:
			p.expr(init.X, precLowest)
		}
		p.str(";")
		if s.Cond != nil {
			p.str(" ")
			p.expr(s.Cond, precLowest)
		}
		p.str(";")
		if s.Post != nil {
			p.str(" ")
			p.expr(s.Post, precLowest)
		}
		p.str(") ")
		p.stmtBody(s.Body)

	case *ForInStmt:
		p.str("for (")
		if s.Kind != ILLEGAL {
			p.str(s.Kind.String())
			p.str(" ")
		}
		p.expr(s.Decl, precPostfix)
		if s.Of {
			p.str(" of ")
			p.expr(s.X, precAssign)
		} else {
			p.str(" in ")
			p.expr(s.X, precLowest)
		}
		p.str(") ")
		p.stmtBody(s.Body)

	case *WhileStmt:
		p.str("while (")
		p.expr(s.Cond, precLowest)
		p.str(") ")
		p.stmtBody(s.Body)

	case *SwitchStmt:
		p.str("switch (")
		p.expr(s.Tag, precLowest)
		p.str(") {\n")
		p.indent++
		for _, c := range s.Cases {
			p.caseClause(c)
		}
		p.indent--
		for i := 0; i < p.indent; i++ {
			p.str("  ")
		}
		p.str("}")

	case *TryStmt:
		p.str("try ")
		p.block(s.Body)
		if s.Catch != nil {
			p.str(" catch ")
			if s.Param != nil {
				p.str("(")
				p.expr(s.Param, precLowest)
				p.str(") ")
			}
			p.block(s.Catch)
		}
		if s.Finally != nil {
			p.str(" finally ")
			p.block(s.Finally)
		}

	case *ThrowStmt:
		p.str("throw ")
		p.expr(s.X, precLowest)
		p.str(";")

	case *BranchStmt:
		p.str(s.Token.String())
		p.str(";")

	case *EmptyStmt:
		p.str(";")

	case *ImportDecl:
		p.importDecl(s)

	case *ExportDecl:
		p.exportDecl(s)

	default:
		panic(s)
	}
}

func (p *printer) varDecl(d *VarDecl) {
	p.str(d.Kind.String())
	p.str(" ")
	for i, v := range d.List {
		if i > 0 {
			p.str(", ")
		}
		p.expr(v.Name, precLowest)
		if v.Init != nil {
			p.str(" = ")
			p.expr(v.Init, precAssign)
		}
	}
}

func (p *printer) block(b *BlockStmt) {
	if len(b.Stmts) == 0 {
		p.str("{}")
		return
	}
	p.str("{\n")
	p.indent++
	for _, stmt := range b.Stmts {
		p.stmt(stmt)
	}
	p.indent--
	for i := 0; i < p.indent; i++ {
		p.str("  ")
	}
	p.str("}")
}

// caseClause prints a switch clause with its statements indented
// one level below the case label.
func (p *printer) caseClause(c *CaseClause) {
	for i := 0; i < p.indent; i++ {
		p.str("  ")
	}
	if c.Value != nil {
		p.str("case ")
		p.expr(c.Value, precLowest)
		p.str(":")
	} else {
		p.str("default:")
	}
	p.buf.WriteByte('\n')
	p.indent++
	for _, stmt := range c.Body {
		p.stmt(stmt)
	}
	p.indent--
}

func (p *printer) importDecl(d *ImportDecl) {
	p.str("import ")
	if d.Default != nil || d.Namespace != nil || len(d.Specs) > 0 {
		sep := ""
		if d.Default != nil {
			p.str(d.Default.Name)
			sep = ", "
		}
		if d.Namespace != nil {
			p.str(sep)
			p.str("* as ")
			p.str(d.Namespace.Name)
		} else if len(d.Specs) > 0 {
			p.str(sep)
			p.str("{ ")
			for i, spec := range d.Specs {
				if i > 0 {
					p.str(", ")
				}
				p.str(spec.Imported.Name)
				if spec.Local.Name != spec.Imported.Name {
					p.str(" as ")
					p.str(spec.Local.Name)
				}
			}
			p.str(" }")
		}
		p.str(" from ")
	}
	p.literal(d.Source)
	p.str(";")
}

func (p *printer) exportDecl(d *ExportDecl) {
	p.str("export ")
	if d.Default {
		p.str("default ")
	}
	switch {
	case d.Decl != nil:
		p.stmtBody(d.Decl)
	case d.X != nil:
		p.expr(d.X, precAssign)
		p.str(";")
	default:
		p.str("{")
		for i, spec := range d.Specs {
			if i > 0 {
				p.str(",")
			}
			p.str(" ")
			p.str(spec.Local.Name)
			if spec.Exported.Name != spec.Local.Name {
				p.str(" as ")
				p.str(spec.Exported.Name)
			}
		}
		if len(d.Specs) > 0 {
			p.str(" ")
		}
		p.str("}")
		if d.Source != nil {
			p.str(" from ")
			p.literal(d.Source)
		}
		p.str(";")
	}
}

// function prints a function declaration, expression or method.
// keyword is "function" or empty for a method, whose name the caller
// has already printed.
func (p *printer) function(fn *Function, keyword string, name *Ident) {
	if fn.Async {
		p.str("async ")
	}
	p.str(keyword)
	if name != nil {
		if keyword != "" {
			p.str(" ")
		}
		p.str(name.Name)
	}
	p.params(fn.Params)
	p.str(" ")
	p.block(fn.Body)
}

func (p *printer) params(params []Expr) {
	p.str("(")
	p.exprList(params)
	p.str(")")
}

func (p *printer) class(c *Class) {
	p.str("class")
	if c.Name != nil {
		p.str(" ")
		p.str(c.Name.Name)
	}
	if c.Super != nil {
		p.str(" extends ")
		p.expr(c.Super, precCall)
	}
	if len(c.Members) == 0 {
		p.str(" {}")
		return
	}
	p.str(" {\n")
	p.indent++
	for _, m := range c.Members {
		for i := 0; i < p.indent; i++ {
			p.str("  ")
		}
		if m.Static {
			p.str("static ")
		}
		if m.Method {
			fn := m.Value.(*FuncExpr)
			if fn.Async {
				p.str("async ")
			}
			p.accessor(m.Accessor)
			p.propertyKey(m.Key, m.Computed)
			p.params(fn.Params)
			p.str(" ")
			p.block(fn.Body)
		} else {
			p.propertyKey(m.Key, m.Computed)
			if m.Value != nil {
				p.str(" = ")
				p.expr(m.Value, precAssign)
			}
			p.str(";")
		}
		p.buf.WriteByte('\n')
	}
	p.indent--
	for i := 0; i < p.indent; i++ {
		p.str("  ")
	}
	p.str("}")
}

func (p *printer) accessor(kind string) {
	if kind != "" {
		p.str(kind)
		p.str(" ")
	}
}

func (p *printer) propertyKey(key Expr, computed bool) {
	if computed {
		p.str("[")
		p.expr(key, precAssign)
		p.str("]")
		return
	}
	p.expr(key, precPrimary)
}

func (p *printer) exprList(list []Expr) {
	for i, x := range list {
		if i > 0 {
			p.str(", ")
		}
		p.expr(x, precAssign)
	}
}

// expr prints x, parenthesized if its precedence is below level.
func (p *printer) expr(x Expr, level prec) {
	if exprPrec(x) < level {
		p.str("(")
		p.expr(x, precLowest)
		p.str(")")
		return
	}

	switch x := x.(type) {
	case *Ident:
		p.str(x.Name)

	case *Literal:
		p.literal(x)

	case *ThisExpr:
		p.str("this")

	case *SuperExpr:
		p.str("super")

	case *TemplateExpr:
		p.str("`")
		for i, quasi := range x.Quasis {
			if i > 0 {
				p.str("${")
				p.expr(x.Exprs[i-1], precLowest)
				p.str("}")
			}
			p.str(quasi)
		}
		p.str("`")

	case *ArrayExpr:
		p.str("[")
		p.exprList(x.List)
		p.str("]")

	case *ObjectExpr:
		if len(x.List) == 0 {
			p.str("{}")
			return
		}
		p.str("{ ")
		for i, prop := range x.List {
			if i > 0 {
				p.str(", ")
			}
			p.property(prop)
		}
		p.str(" }")

	case *FuncExpr:
		p.function(&x.Function, "function", x.Name)

	case *ArrowFunc:
		if x.Async {
			p.str("async ")
		}
		if id, ok := singleParam(x.Params); ok {
			p.str(id.Name)
		} else {
			p.params(x.Params)
		}
		p.str(" => ")
		switch {
		case x.Body != nil:
			p.block(x.Body)
		case isObject(x.Result):
			p.str("(")
			p.expr(x.Result, precLowest)
			p.str(")")
		default:
			p.expr(x.Result, precAssign)
		}

	case *ClassExpr:
		p.class(&x.Class)

	case *CallExpr:
		p.expr(x.Fn, precCall)
		if x.Optional {
			p.str("?.")
		}
		p.str("(")
		p.exprList(x.Args)
		p.str(")")

	case *NewExpr:
		p.str("new ")
		p.expr(x.Fn, precMember)
		p.str("(")
		p.exprList(x.Args)
		p.str(")")

	case *DotExpr:
		if lit, ok := x.X.(*Literal); ok && lit.Token == NUMBER && isDecimalInt(lit.Raw) {
			p.str("(")
			p.literal(lit)
			p.str(")")
		} else {
			p.expr(x.X, precCall)
		}
		if x.Optional {
			p.str("?.")
		} else {
			p.str(".")
		}
		p.str(x.Name.Name)

	case *IndexExpr:
		p.expr(x.X, precCall)
		if x.Optional {
			p.str("?.")
		}
		p.str("[")
		p.expr(x.Y, precLowest)
		p.str("]")

	case *UnaryExpr:
		if x.Postfix {
			p.expr(x.X, precPostfix)
			p.str(x.Op.String())
			return
		}
		p.str(x.Op.String())
		if x.Op.IsKeyword() || needsSpace(x.Op, x.X) {
			p.str(" ")
		}
		p.expr(x.X, precPrefix)

	case *BinaryExpr:
		if x.Op == COMMA {
			p.expr(x.X, precComma)
			p.str(", ")
			p.expr(x.Y, precAssign)
			return
		}
		opprec := binaryPrec[x.Op]
		left, right := opprec, opprec+1
		switch x.Op {
		case STARSTAR:
			left, right = precPostfix, opprec
		case QUESTIONQUESTION:
			left, right = precBitwiseOr, precBitwiseOr
		case PIPEPIPE, AMPAMP:
			if isNullish(x.X) {
				left = precPrimary
			}
			if isNullish(x.Y) {
				right = precPrimary
			}
		}
		p.expr(x.X, left)
		p.str(" ")
		p.str(x.Op.String())
		p.str(" ")
		p.expr(x.Y, right)

	case *AssignExpr:
		p.expr(x.LHS, precPostfix)
		p.str(" ")
		p.str(x.Op.String())
		p.str(" ")
		p.expr(x.RHS, precAssign)

	case *CondExpr:
		p.expr(x.Cond, precNullishCoalescing)
		p.str(" ? ")
		p.expr(x.True, precAssign)
		p.str(" : ")
		p.expr(x.False, precAssign)

	case *SpreadExpr:
		p.str("...")
		p.expr(x.X, precAssign)

	case *JSXElement:
		p.jsxElement(x)

	case *JSXExprContainer:
		p.str("{")
		if x.X != nil {
			p.expr(x.X, precLowest)
		}
		p.str("}")

	case *JSXText:
		p.str(x.Raw)

	default:
		panic(x)
	}
}

func (p *printer) property(prop *Property) {
	switch {
	case prop.Key == nil:
		p.expr(prop.Value, precLowest) // spread
	case prop.Shorthand:
		p.expr(prop.Value, precAssign)
	case prop.Method:
		fn := prop.Value.(*FuncExpr)
		if fn.Async {
			p.str("async ")
		}
		p.accessor(prop.Accessor)
		p.propertyKey(prop.Key, prop.Computed)
		p.params(fn.Params)
		p.str(" ")
		p.block(fn.Body)
	default:
		p.propertyKey(prop.Key, prop.Computed)
		p.str(": ")
		p.expr(prop.Value, precAssign)
	}
}

func (p *printer) literal(lit *Literal) {
	switch {
	case lit.Raw != "":
		p.str(lit.Raw)
	case lit.Token == STRING:
		p.str(Quote(lit.Value))
	default:
		p.str(lit.Token.String())
	}
}

func (p *printer) jsxElement(x *JSXElement) {
	p.str("<")
	if x.Name != nil {
		p.expr(x.Name, precLowest)
	}
	for _, attr := range x.Attrs {
		p.str(" ")
		switch attr := attr.(type) {
		case *JSXAttr:
			p.str(attr.Name.Name)
			if attr.Value != nil {
				p.str("=")
				if lit, ok := attr.Value.(*Literal); ok && lit.Raw == "" {
					p.str(`"` + lit.Value + `"`)
				} else {
					p.expr(attr.Value, precLowest)
				}
			}
		case *JSXSpreadAttr:
			p.str("{...")
			p.expr(attr.X, precAssign)
			p.str("}")
		}
	}
	if x.SelfClosing {
		p.str(" />")
		return
	}
	p.str(">")
	for _, child := range x.Children {
		p.expr(child, precLowest)
	}
	p.str("</")
	if x.Name != nil {
		p.expr(x.Name, precLowest)
	}
	p.str(">")
}

// leftmost returns the expression that begins the source form of x.
func leftmost(x Expr) Expr {
	for {
		switch y := x.(type) {
		case *BinaryExpr:
			x = y.X
		case *AssignExpr:
			x = y.LHS
		case *CondExpr:
			x = y.Cond
		case *CallExpr:
			x = y.Fn
		case *DotExpr:
			x = y.X
		case *IndexExpr:
			x = y.X
		case *UnaryExpr:
			if !y.Postfix {
				return x
			}
			x = y.X
		default:
			return x
		}
	}
}

// singleParam reports whether params is a lone identifier that
// an arrow function may print without parentheses.
func singleParam(params []Expr) (*Ident, bool) {
	if len(params) != 1 {
		return nil, false
	}
	id, ok := params[0].(*Ident)
	return id, ok
}

func isObject(x Expr) bool {
	_, ok := leftmost(x).(*ObjectExpr)
	return ok
}

func isNullish(x Expr) bool {
	b, ok := x.(*BinaryExpr)
	return ok && b.Op == QUESTIONQUESTION
}

// needsSpace reports whether a prefix operator must be separated from
// its operand to avoid forming a different token, as in - -x.
func needsSpace(op Token, x Expr) bool {
	u, ok := x.(*UnaryExpr)
	if !ok || u.Postfix {
		return false
	}
	switch op {
	case PLUS, PLUSPLUS:
		return u.Op == PLUS || u.Op == PLUSPLUS
	case MINUS, MINUSMINUS:
		return u.Op == MINUS || u.Op == MINUSMINUS
	}
	return false
}

func isDecimalInt(raw string) bool {
	return !strings.ContainsAny(raw, ".eExXoObBn")
}
