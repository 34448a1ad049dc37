// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve defines a name-resolution pass for JavaScript
// modules with JSX markup.
//
// The resolver sets the Binding field of each declaring and each
// referencing syntax.Ident, records the lexical scope owned by every
// module, function, block, loop, switch and catch clause, and marks
// bindings that are assigned after their declaration. Identifiers that
// refer to no declaration (globals) keep a nil Binding, as do property
// names.
//
// Declarations follow module (strict) semantics: let, const, class and
// function declarations are scoped to their enclosing block, var
// declarations to their enclosing function, and imports to the module.
// All declarations of a scope are bound before any reference within it
// is resolved, so a reference may precede its declaration.
package resolve // import "go.jsxmemo.dev/resolve"

import (
	"fmt"
	"sort"
	"unicode"
	"unicode/utf8"

	"go.jsxmemo.dev/syntax"
)

// File resolves the names of the specified file and returns the scope
// information. If it returns a non-nil error, it is an ErrorList
// describing every problem found, and the returned Info is still
// usable for the parts of the file that resolved.
func File(file *syntax.File) (*Info, error) {
	r := newResolver()
	r.push(file)
	r.declareStmts(file.Stmts, true)
	r.stmts(file.Stmts)
	r.pop()

	if len(r.errors) > 0 {
		sort.Sort(r.errors)
		return r.info, r.errors
	}
	return r.info, nil
}

// An ErrorList is a non-empty list of resolver error messages.
type ErrorList []Error // len > 0

func (e ErrorList) Error() string { return e[0].Error() }

func (e ErrorList) Len() int      { return len(e) }
func (e ErrorList) Swap(i, j int) { e[i], e[j] = e[j], e[i] }
func (e ErrorList) Less(i, j int) bool {
	if e[i].Pos.Line != e[j].Pos.Line {
		return e[i].Pos.Line < e[j].Pos.Line
	}
	return e[i].Pos.Col < e[j].Pos.Col
}

// An Error describes the nature and position of a resolver error.
type Error struct {
	Pos syntax.Position
	Msg string
}

func (e Error) Error() string { return e.Pos.String() + ": " + e.Msg }

// Info holds the scopes computed by File.
type Info struct {
	scopes map[syntax.Node]*Scope
}

// ScopeOf returns the scope owned by n, or nil if n owns none.
// Scope owners are the *syntax.File, functions (*syntax.FuncDecl,
// *syntax.FuncExpr, *syntax.ArrowFunc), blocks, for statements,
// switch statements and named class expressions. A function body
// shares the scope of its function.
func (info *Info) ScopeOf(n syntax.Node) *Scope { return info.scopes[n] }

// A Scope is a lexical environment.
type Scope struct {
	Owner  syntax.Node
	Parent *Scope // nil for the module scope

	bindings []*syntax.Binding // in order of declaration
	names    map[string]*syntax.Binding
}

// Own returns the bindings declared directly in s, in declaration order.
func (s *Scope) Own() []*syntax.Binding { return s.bindings }

// Lookup returns the binding that name denotes within s,
// or nil if it is not declared in s or any enclosing scope.
func (s *Scope) Lookup(name string) *syntax.Binding {
	for ; s != nil; s = s.Parent {
		if b := s.names[name]; b != nil {
			return b
		}
	}
	return nil
}

// Encloses reports whether s is t or one of its ancestors.
func (s *Scope) Encloses(t *Scope) bool {
	for ; t != nil; t = t.Parent {
		if t == s {
			return true
		}
	}
	return false
}

// IsFunction reports whether s is the scope of a function.
func (s *Scope) IsFunction() bool {
	switch s.Owner.(type) {
	case *syntax.FuncDecl, *syntax.FuncExpr, *syntax.ArrowFunc:
		return true
	}
	return false
}

func (s *Scope) String() string {
	return fmt.Sprintf("scope of %T at %s", s.Owner, syntax.Start(s.Owner))
}

type resolver struct {
	info   *Info
	env    *Scope // current innermost scope
	errors ErrorList
}

func newResolver() *resolver {
	return &resolver{info: &Info{scopes: make(map[syntax.Node]*Scope)}}
}

func (r *resolver) errorf(pos syntax.Position, format string, args ...interface{}) {
	r.errors = append(r.errors, Error{pos, fmt.Sprintf(format, args...)})
}

func (r *resolver) push(owner syntax.Node) *Scope {
	s := &Scope{Owner: owner, Parent: r.env, names: make(map[string]*syntax.Binding)}
	r.info.scopes[owner] = s
	r.env = s
	return s
}

func (r *resolver) pop() { r.env = r.env.Parent }

// declare binds id in the current scope. A var redeclared with an
// initializer, init, counts as reassigned.
func (r *resolver) declare(kind syntax.BindingKind, id *syntax.Ident, decl syntax.Node, init syntax.Expr) {
	if prev := r.env.names[id.Name]; prev != nil {
		if redeclarable(prev.Kind) && redeclarable(kind) {
			id.Binding = prev
			if init != nil {
				prev.Reassigned = true
			}
			return
		}
		r.errorf(id.NamePos, "%s %s already declared at %s", kind, id.Name, prev.First.NamePos)
		id.Binding = prev
		return
	}
	b := &syntax.Binding{
		Name:  id.Name,
		Kind:  kind,
		Decl:  decl,
		Scope: r.env.Owner,
		First: id,
	}
	r.env.bindings = append(r.env.bindings, b)
	r.env.names[id.Name] = b
	id.Binding = b
}

func redeclarable(k syntax.BindingKind) bool {
	return k == syntax.VarBinding || k == syntax.FunctionBinding || k == syntax.ParamBinding
}

// declarePattern binds each name in a binding pattern.
// init applies only to a pattern that is a plain identifier.
func (r *resolver) declarePattern(kind syntax.BindingKind, pattern syntax.Expr, decl syntax.Node, init syntax.Expr) {
	switch p := pattern.(type) {
	case *syntax.Ident:
		r.declare(kind, p, decl, init)
	case *syntax.AssignExpr:
		r.declarePattern(kind, p.LHS, decl, nil)
	case *syntax.ObjectExpr:
		for _, prop := range p.List {
			r.declarePattern(kind, prop.Value, decl, nil)
		}
	case *syntax.ArrayExpr:
		for _, elem := range p.List {
			r.declarePattern(kind, elem, decl, nil)
		}
	case *syntax.SpreadExpr:
		r.declarePattern(kind, p.X, decl, nil)
	}
}

func declKind(tok syntax.Token) syntax.BindingKind {
	switch tok {
	case syntax.LET:
		return syntax.LetBinding
	case syntax.CONST:
		return syntax.ConstBinding
	}
	return syntax.VarBinding
}

// declareStmts binds the block-scoped declarations of a statement
// list, and if function is set, the var declarations hoisted from
// nested blocks too.
func (r *resolver) declareStmts(stmts []syntax.Stmt, function bool) {
	for _, stmt := range stmts {
		r.declareStmt(stmt)
	}
	if function {
		r.hoistVars(stmts)
	}
}

func (r *resolver) declareStmt(stmt syntax.Stmt) {
	switch stmt := stmt.(type) {
	case *syntax.VarDecl:
		if stmt.Kind != syntax.VAR {
			for _, d := range stmt.List {
				r.declarePattern(declKind(stmt.Kind), d.Name, d, d.Init)
			}
		}
	case *syntax.FuncDecl:
		r.declare(syntax.FunctionBinding, stmt.Name, stmt, nil)
	case *syntax.ClassDecl:
		r.declare(syntax.ClassBinding, stmt.Name, stmt, nil)
	case *syntax.ImportDecl:
		if stmt.Default != nil {
			r.declare(syntax.ImportBinding, stmt.Default, stmt, nil)
		}
		if stmt.Namespace != nil {
			r.declare(syntax.ImportBinding, stmt.Namespace, stmt, nil)
		}
		for _, spec := range stmt.Specs {
			r.declare(syntax.ImportBinding, spec.Local, stmt, nil)
		}
	case *syntax.ExportDecl:
		if stmt.Decl != nil {
			r.declareStmt(stmt.Decl)
		}
	}
}

// hoistVars binds var declarations found anywhere in stmts
// outside nested functions.
func (r *resolver) hoistVars(stmts []syntax.Stmt) {
	for _, stmt := range stmts {
		r.hoistVar(stmt)
	}
}

func (r *resolver) hoistVar(stmt syntax.Stmt) {
	switch stmt := stmt.(type) {
	case *syntax.VarDecl:
		if stmt.Kind == syntax.VAR {
			for _, d := range stmt.List {
				r.declarePattern(syntax.VarBinding, d.Name, d, d.Init)
			}
		}
	case *syntax.ExportDecl:
		if stmt.Decl != nil {
			r.hoistVar(stmt.Decl)
		}
	case *syntax.BlockStmt:
		r.hoistVars(stmt.Stmts)
	case *syntax.IfStmt:
		r.hoistVar(stmt.Then)
		if stmt.Else != nil {
			r.hoistVar(stmt.Else)
		}
	case *syntax.ForStmt:
		if stmt.Init != nil {
			r.hoistVar(stmt.Init)
		}
		r.hoistVar(stmt.Body)
	case *syntax.ForInStmt:
		if stmt.Kind == syntax.VAR {
			r.declarePattern(syntax.VarBinding, stmt.Decl, stmt, nil)
		}
		r.hoistVar(stmt.Body)
	case *syntax.WhileStmt:
		r.hoistVar(stmt.Body)
	case *syntax.SwitchStmt:
		for _, c := range stmt.Cases {
			r.hoistVars(c.Body)
		}
	case *syntax.TryStmt:
		r.hoistVar(stmt.Body)
		if stmt.Catch != nil {
			r.hoistVar(stmt.Catch)
		}
		if stmt.Finally != nil {
			r.hoistVar(stmt.Finally)
		}
	}
}

func (r *resolver) stmts(stmts []syntax.Stmt) {
	for _, stmt := range stmts {
		r.stmt(stmt)
	}
}

func (r *resolver) stmt(stmt syntax.Stmt) {
	switch stmt := stmt.(type) {
	case *syntax.VarDecl:
		for _, d := range stmt.List {
			r.pattern(d.Name)
			if d.Init != nil {
				r.expr(d.Init)
			}
		}

	case *syntax.FuncDecl:
		r.function(stmt, &stmt.Function, nil)

	case *syntax.ClassDecl:
		r.class(&stmt.Class)

	case *syntax.ReturnStmt:
		if stmt.Result != nil {
			r.expr(stmt.Result)
		}

	case *syntax.ExprStmt:
		r.expr(stmt.X)

	case *syntax.BlockStmt:
		r.push(stmt)
		r.declareStmts(stmt.Stmts, false)
		r.stmts(stmt.Stmts)
		r.pop()

	case *syntax.IfStmt:
		r.expr(stmt.Cond)
		r.stmt(stmt.Then)
		if stmt.Else != nil {
			r.stmt(stmt.Else)
		}

	case *syntax.ForStmt:
		r.push(stmt)
		if stmt.Init != nil {
			r.declareStmt(stmt.Init)
			r.stmt(stmt.Init)
		}
		if stmt.Cond != nil {
			r.expr(stmt.Cond)
		}
		if stmt.Post != nil {
			r.expr(stmt.Post)
		}
		r.stmt(stmt.Body)
		r.pop()

	case *syntax.ForInStmt:
		r.expr(stmt.X)
		r.push(stmt)
		switch stmt.Kind {
		case syntax.LET, syntax.CONST:
			r.declarePattern(declKind(stmt.Kind), stmt.Decl, stmt, nil)
			r.pattern(stmt.Decl)
		case syntax.VAR:
			r.pattern(stmt.Decl)
		default:
			r.assign(stmt.Decl)
		}
		r.stmt(stmt.Body)
		r.pop()

	case *syntax.WhileStmt:
		r.expr(stmt.Cond)
		r.stmt(stmt.Body)

	case *syntax.SwitchStmt:
		r.expr(stmt.Tag)
		r.push(stmt)
		for _, c := range stmt.Cases {
			r.declareStmts(c.Body, false)
		}
		for _, c := range stmt.Cases {
			if c.Value != nil {
				r.expr(c.Value)
			}
			r.stmts(c.Body)
		}
		r.pop()

	case *syntax.TryStmt:
		r.stmt(stmt.Body)
		if stmt.Catch != nil {
			r.push(stmt.Catch)
			if stmt.Param != nil {
				r.declarePattern(syntax.CatchBinding, stmt.Param, stmt, nil)
				r.pattern(stmt.Param)
			}
			r.declareStmts(stmt.Catch.Stmts, false)
			r.stmts(stmt.Catch.Stmts)
			r.pop()
		}
		if stmt.Finally != nil {
			r.stmt(stmt.Finally)
		}

	case *syntax.ThrowStmt:
		r.expr(stmt.X)

	case *syntax.BranchStmt, *syntax.EmptyStmt, *syntax.ImportDecl:
		// nothing to resolve

	case *syntax.ExportDecl:
		switch {
		case stmt.Decl != nil:
			r.stmt(stmt.Decl)
		case stmt.X != nil:
			r.expr(stmt.X)
		case stmt.Source == nil:
			for _, spec := range stmt.Specs {
				r.use(spec.Local)
			}
		}

	default:
		panic(fmt.Sprintf("unexpected stmt %T", stmt))
	}
}

// function resolves a function whose name, if any, is bound
// within its own scope.
func (r *resolver) function(owner syntax.Node, fn *syntax.Function, name *syntax.Ident) {
	scope := r.push(owner)
	if name != nil {
		r.declare(syntax.FunctionBinding, name, owner, nil)
	}
	for _, param := range fn.Params {
		r.declarePattern(syntax.ParamBinding, param, owner, nil)
	}
	for _, param := range fn.Params {
		r.pattern(param)
	}
	if fn.Body != nil {
		r.info.scopes[fn.Body] = scope
		r.declareStmts(fn.Body.Stmts, true)
		r.stmts(fn.Body.Stmts)
	} else {
		r.expr(fn.Result)
	}
	r.pop()
}

func (r *resolver) class(c *syntax.Class) {
	if c.Super != nil {
		r.expr(c.Super)
	}
	for _, m := range c.Members {
		if m.Computed {
			r.expr(m.Key)
		}
		if m.Value == nil {
			continue
		}
		if m.Method {
			fn := m.Value.(*syntax.FuncExpr)
			r.function(fn, &fn.Function, nil)
		} else {
			r.expr(m.Value)
		}
	}
}

// pattern resolves the default values and computed keys of a
// binding pattern whose names are already declared.
func (r *resolver) pattern(x syntax.Expr) {
	switch x := x.(type) {
	case *syntax.Ident:
		if x.Binding == nil {
			r.use(x)
		}
	case *syntax.AssignExpr:
		r.pattern(x.LHS)
		r.expr(x.RHS)
	case *syntax.ObjectExpr:
		for _, prop := range x.List {
			if prop.Computed {
				r.expr(prop.Key)
			}
			r.pattern(prop.Value)
		}
	case *syntax.ArrayExpr:
		for _, elem := range x.List {
			r.pattern(elem)
		}
	case *syntax.SpreadExpr:
		r.pattern(x.X)
	}
}

// assign resolves an assignment target, marking each binding it
// names as reassigned.
func (r *resolver) assign(x syntax.Expr) {
	switch x := x.(type) {
	case *syntax.Ident:
		r.use(x)
		if b := x.Binding; b != nil {
			// Assigning a const or import throws when executed;
			// the binding still never changes.
			b.Reassigned = true
		}
	case *syntax.AssignExpr:
		r.assign(x.LHS)
		r.expr(x.RHS)
	case *syntax.ObjectExpr:
		for _, prop := range x.List {
			if prop.Computed {
				r.expr(prop.Key)
			}
			r.assign(prop.Value)
		}
	case *syntax.ArrayExpr:
		for _, elem := range x.List {
			r.assign(elem)
		}
	case *syntax.SpreadExpr:
		r.assign(x.X)
	default:
		r.expr(x)
	}
}

// use resolves a referencing identifier.
func (r *resolver) use(id *syntax.Ident) {
	id.Binding = r.env.Lookup(id.Name)
}

func (r *resolver) exprs(list []syntax.Expr) {
	for _, x := range list {
		r.expr(x)
	}
}

func (r *resolver) expr(x syntax.Expr) {
	switch x := x.(type) {
	case *syntax.Ident:
		r.use(x)

	case *syntax.Literal, *syntax.ThisExpr, *syntax.SuperExpr, *syntax.JSXText:
		// nothing to resolve

	case *syntax.TemplateExpr:
		r.exprs(x.Exprs)

	case *syntax.ArrayExpr:
		r.exprs(x.List)

	case *syntax.ObjectExpr:
		for _, prop := range x.List {
			if prop.Computed {
				r.expr(prop.Key)
			}
			if prop.Method {
				fn := prop.Value.(*syntax.FuncExpr)
				r.function(fn, &fn.Function, nil)
			} else {
				r.expr(prop.Value)
			}
		}

	case *syntax.FuncExpr:
		r.function(x, &x.Function, x.Name)

	case *syntax.ArrowFunc:
		r.function(x, &x.Function, nil)

	case *syntax.ClassExpr:
		if x.Name != nil {
			r.push(x)
			r.declare(syntax.ClassBinding, x.Name, x, nil)
			r.class(&x.Class)
			r.pop()
		} else {
			r.class(&x.Class)
		}

	case *syntax.CallExpr:
		r.expr(x.Fn)
		r.exprs(x.Args)

	case *syntax.NewExpr:
		r.expr(x.Fn)
		r.exprs(x.Args)

	case *syntax.DotExpr:
		r.expr(x.X)

	case *syntax.IndexExpr:
		r.expr(x.X)
		r.expr(x.Y)

	case *syntax.UnaryExpr:
		if x.Op == syntax.PLUSPLUS || x.Op == syntax.MINUSMINUS {
			r.assign(x.X)
		} else {
			r.expr(x.X)
		}

	case *syntax.BinaryExpr:
		r.expr(x.X)
		r.expr(x.Y)

	case *syntax.AssignExpr:
		r.assign(x.LHS)
		r.expr(x.RHS)

	case *syntax.CondExpr:
		r.expr(x.Cond)
		r.expr(x.True)
		r.expr(x.False)

	case *syntax.SpreadExpr:
		r.expr(x.X)

	case *syntax.JSXElement:
		if x.Name != nil {
			r.jsxName(x.Name)
		}
		for _, attr := range x.Attrs {
			switch attr := attr.(type) {
			case *syntax.JSXAttr:
				if attr.Value != nil {
					r.expr(attr.Value)
				}
			case *syntax.JSXSpreadAttr:
				r.expr(attr.X)
			}
		}
		r.exprs(x.Children)

	case *syntax.JSXExprContainer:
		if x.X != nil {
			r.expr(x.X)
		}

	default:
		panic(fmt.Sprintf("unexpected expr %T", x))
	}
}

// jsxName resolves an element name. Lower-case names denote
// intrinsic elements, not variables.
func (r *resolver) jsxName(name syntax.Expr) {
	switch name := name.(type) {
	case *syntax.Ident:
		if !IsIntrinsic(name.Name) {
			r.use(name)
		}
	case *syntax.DotExpr:
		root := name.X
		for dot, ok := root.(*syntax.DotExpr); ok; dot, ok = root.(*syntax.DotExpr) {
			root = dot.X
		}
		if id, ok := root.(*syntax.Ident); ok {
			r.use(id)
		}
	}
}

// IsIntrinsic reports whether an element name denotes a host element
// such as div rather than a component variable.
func IsIntrinsic(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	for _, c := range name {
		if c == '-' || c == ':' {
			return true
		}
	}
	return unicode.IsLower(r)
}
