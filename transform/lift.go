// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// The scope lifter. A dependency-based primitive must be called the
// same number of times in the same order on every render, so in Scoped
// mode inline attribute functions cannot be wrapped where they stand.
// Instead the returned markup becomes the result of a factory closure
// created once per module and used as the element type:
//
//	return <b onClick={() => f(x)} />
//
// becomes
//
//	return React.createElement(_cache = _cache || (() => {
//	  const _onClick = React.useCallback(() => f(x), [f, x]);
//	  return <b onClick={_onClick} />;
//	}), null);
//
// Marks are made on entry to an attribute and consumed on exit from
// the enclosing return, so inner subtrees are lifted before outer ones.

import (
	"go.uber.org/zap"

	"go.jsxmemo.dev/syntax"
)

// markLift marks for lifting the topmost element of the markup
// subtree containing the attribute on top of the stack.
func (s *state) markLift() {
	i := len(s.stack) - 2 // the attribute's element
	for i > 0 {
		if _, ok := s.stack[i-1].(*syntax.JSXElement); !ok {
			break
		}
		i--
	}
	root := s.stack[i].(*syntax.JSXElement)
	if _, ok := s.pending[root]; ok {
		return
	}
	if !s.liftable(i) {
		s.log.Debug("lift skipped", zap.Stringer("pos", syntax.Start(root)))
		return
	}
	cache := s.names.New("cache")
	s.pending[root] = cache
	s.caches = append(s.caches, cache)
}

// liftable reports whether the element at stack index i is the result
// of a return statement, and the function returned from is not already
// a lifted factory.
func (s *state) liftable(i int) bool {
	if i < 1 {
		return false
	}
	ret, ok := s.stack[i-1].(*syntax.ReturnStmt)
	if !ok || ret.Result != s.stack[i] {
		return false
	}
	fn := s.enclosingFunc(i - 1)
	return fn >= 0 && !s.inFactory(fn)
}

// inFactory reports whether the function at stack index i is the
// closure of a lifted element: factory(cache = cache || (() => {...}), props).
func (s *state) inFactory(i int) bool {
	if i < 3 {
		return false
	}
	fn, ok := s.stack[i].(*syntax.ArrowFunc)
	if !ok {
		return false
	}
	or, ok := s.stack[i-1].(*syntax.BinaryExpr)
	if !ok || or.Op != syntax.PIPEPIPE || or.Y != syntax.Expr(fn) {
		return false
	}
	assign, ok := s.stack[i-2].(*syntax.AssignExpr)
	if !ok || assign.Op != syntax.EQ || assign.RHS != syntax.Expr(or) || !sameRef(assign.LHS, or.X) {
		return false
	}
	call, ok := s.stack[i-3].(*syntax.CallExpr)
	if !ok || len(call.Args) == 0 || call.Args[0] != syntax.Expr(assign) {
		return false
	}
	return call.Tag == syntax.Lifted || calleeName(call.Fn) == s.opts.ElementFactory
}

// liftReturn performs the lift marked for the result of ret, if any.
func (s *state) liftReturn(ret *syntax.ReturnStmt) {
	root, ok := ret.Result.(*syntax.JSXElement)
	if !ok {
		return
	}
	cache, ok := s.pending[root]
	if !ok {
		return
	}
	delete(s.pending, root)

	var body []syntax.Stmt
	var hoist func(elem *syntax.JSXElement)
	hoist = func(elem *syntax.JSXElement) {
		for _, attr := range elem.Attrs {
			attr, ok := attr.(*syntax.JSXAttr)
			if !ok {
				continue
			}
			c, ok := attr.Value.(*syntax.JSXExprContainer)
			if !ok || c.X == nil || !isFuncLit(c.X) {
				continue
			}
			name := s.names.New(attr.Name.Name)
			pos := syntax.Start(c.X)
			body = append(body, constDecl(name, s.wrap(c.X)))
			c.X = ident(name)
			s.record(Hoist, pos)
		}
		for _, child := range elem.Children {
			if child, ok := child.(*syntax.JSXElement); ok {
				hoist(child)
			}
		}
	}
	hoist(root)

	props := takeKey(root)
	body = append(body, &syntax.ReturnStmt{Result: root})
	factory := &syntax.ArrowFunc{Function: syntax.Function{
		Body: &syntax.BlockStmt{Stmts: body},
	}}
	ret.Result = &syntax.CallExpr{
		Fn: dotted(s.opts.ElementFactory),
		Args: []syntax.Expr{
			&syntax.AssignExpr{
				LHS: ident(cache),
				Op:  syntax.EQ,
				RHS: &syntax.BinaryExpr{X: ident(cache), Op: syntax.PIPEPIPE, Y: factory},
			},
			props,
		},
		Tag: syntax.Lifted,
	}
	s.record(Lift, ret.Return)
}
