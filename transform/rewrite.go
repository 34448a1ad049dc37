// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// This file defines the tree mutations. Every node they produce that a
// later visit could classify again carries a syntax.Tag.

import "go.jsxmemo.dev/syntax"

// wrap returns the memoization call for the function fn:
// primitive(fn), or primitive(fn, [captures...]) in Scoped mode.
func (s *state) wrap(fn syntax.Expr) *syntax.CallExpr {
	call := &syntax.CallExpr{
		Fn:   dotted(s.opts.Primitive),
		Args: []syntax.Expr{fn},
		Tag:  syntax.Wrapped,
	}
	if s.opts.Mode == Scoped {
		call.Args = append(call.Args, &syntax.ArrayExpr{List: captures(s.info, fn)})
	}
	return call
}

// isDependencyCall reports whether call is an untransformed call of a
// dependency-based primitive with a callback argument.
func (s *state) isDependencyCall(call *syntax.CallExpr) bool {
	if call.Tag != syntax.Raw || call.Optional || len(call.Args) == 0 {
		return false
	}
	if _, ok := call.Args[0].(*syntax.SpreadExpr); ok {
		return false
	}
	name := calleeName(call.Fn)
	if name == "" {
		return false
	}
	for _, dep := range s.opts.DependencyPrimitives {
		if name == dep {
			return true
		}
	}
	return false
}

// collapse rewrites dep(fn, deps) to primitive(fn) in place.
func (s *state) collapse(call *syntax.CallExpr) {
	pos := syntax.Start(call)
	call.Fn = dotted(s.opts.Primitive)
	call.Args = call.Args[:1]
	call.Tag = syntax.Wrapped
	s.record(Collapse, pos)
}

// isFuncLit reports whether x is an arrow function or function expression.
func isFuncLit(x syntax.Expr) bool {
	switch x.(type) {
	case *syntax.ArrowFunc, *syntax.FuncExpr:
		return true
	}
	return false
}

// takeKey removes the key attribute of elem and returns the props
// object { key: value } for the element factory, or null.
func takeKey(elem *syntax.JSXElement) syntax.Expr {
	for i, attr := range elem.Attrs {
		attr, ok := attr.(*syntax.JSXAttr)
		if !ok || attr.Name.Name != "key" || attr.Value == nil {
			continue
		}
		value := attr.Value
		if c, ok := value.(*syntax.JSXExprContainer); ok {
			if c.X == nil {
				continue
			}
			value = c.X
		}
		elem.Attrs = append(elem.Attrs[:i:i], elem.Attrs[i+1:]...)
		return &syntax.ObjectExpr{List: []*syntax.Property{{
			Key:   ident("key"),
			Value: value,
		}}}
	}
	return &syntax.Literal{Token: syntax.NULL}
}

// insertStmts returns stmts with the given statements inserted at index i.
func insertStmts(stmts []syntax.Stmt, i int, insert ...syntax.Stmt) []syntax.Stmt {
	out := make([]syntax.Stmt, 0, len(stmts)+len(insert))
	out = append(out, stmts[:i]...)
	out = append(out, insert...)
	return append(out, stmts[i:]...)
}

func ident(name string) *syntax.Ident { return &syntax.Ident{Name: name} }

// constDecl returns the declaration const name = init.
func constDecl(name string, init syntax.Expr) *syntax.VarDecl {
	return &syntax.VarDecl{
		Kind: syntax.CONST,
		List: []*syntax.VarDeclarator{{Name: ident(name), Init: init}},
	}
}
