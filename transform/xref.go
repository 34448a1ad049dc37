// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transform

// Cross-reference resolution wraps a function at the site where it is
// bound rather than where markup uses it. Constant bindings are found
// by identity through the resolver; mutable names and property paths
// are matched structurally against every attribute value in the file.

import "go.jsxmemo.dev/syntax"

// collectAttrRefs returns the attribute values of f that are reference
// expressions, in source order.
func collectAttrRefs(f *syntax.File) []syntax.Expr {
	var refs []syntax.Expr
	syntax.Walk(f, func(n syntax.Node) bool {
		if attr, ok := n.(*syntax.JSXAttr); ok {
			if c, ok := attr.Value.(*syntax.JSXExprContainer); ok && c.X != nil && isRef(c.X) {
				refs = append(refs, c.X)
			}
		}
		return true
	})
	return refs
}

// referenced reports whether some attribute value denotes the same
// value path as target.
func (s *state) referenced(target syntax.Expr) bool {
	for _, ref := range s.attrRefs {
		if sameRef(ref, target) {
			return true
		}
	}
	return false
}

// referencedBinding reports whether some attribute value is a name
// that resolves to b.
func (s *state) referencedBinding(b *syntax.Binding) bool {
	for _, ref := range s.attrRefs {
		if id, ok := ref.(*syntax.Ident); ok && id.Binding == b {
			return true
		}
	}
	return false
}

// visitReturn wraps, at their declarations, the constant function
// bindings of a component that its returned markup passes to an
// attribute. Only bindings of the function's own scope qualify, so a
// return nested in a block or switch clause never wraps a
// declaration made inside that block.
func (s *state) visitReturn(ret *syntax.ReturnStmt) {
	if _, ok := ret.Result.(*syntax.JSXElement); !ok {
		return
	}
	fn := s.enclosingFunc(len(s.stack) - 1)
	if fn < 0 {
		return
	}
	scope := s.info.ScopeOf(s.stack[fn])
	if scope == nil {
		return
	}
	for _, b := range scope.Own() {
		if !b.Constant() || b.InitKind(s.opts.HookPrefix) != syntax.FunctionInit {
			continue
		}
		if !s.referencedBinding(b) {
			continue
		}
		d := b.Decl.(*syntax.VarDeclarator) // Init() is non-nil only for a plain declarator
		pos := syntax.Start(d.Init)
		d.Init = s.wrap(d.Init)
		s.record(DeclWrap, pos)
	}
}

// visitDeclarator wraps the function initializer of a mutable variable
// whose name some attribute uses.
func (s *state) visitDeclarator(d *syntax.VarDeclarator) {
	id, ok := d.Name.(*syntax.Ident)
	if !ok || id.Binding == nil || id.Binding.Constant() {
		return
	}
	if d.Init == nil || !isFuncLit(d.Init) || !s.referenced(id) {
		return
	}
	pos := syntax.Start(d.Init)
	d.Init = s.wrap(d.Init)
	s.record(DeclWrap, pos)
}

// visitAssign wraps a function assigned to a name or property path
// that some attribute uses.
func (s *state) visitAssign(x *syntax.AssignExpr) {
	if x.Op != syntax.EQ || !isFuncLit(x.RHS) || !isRef(x.LHS) {
		return
	}
	if s.inPattern(x) || !s.referenced(x.LHS) {
		return
	}
	pos := syntax.Start(x.RHS)
	x.RHS = s.wrap(x.RHS)
	s.record(AssignWrap, pos)
}

// inPattern reports whether x, the node on top of the stack, is a
// default value in a parameter list or destructuring pattern.
func (s *state) inPattern(x *syntax.AssignExpr) bool {
	if len(s.stack) < 2 {
		return false
	}
	var params []syntax.Expr
	switch parent := s.stack[len(s.stack)-2].(type) {
	case *syntax.Property:
		return true
	case *syntax.FuncDecl:
		params = parent.Params
	case *syntax.FuncExpr:
		params = parent.Params
	case *syntax.ArrowFunc:
		params = parent.Params
	}
	for _, param := range params {
		if param == syntax.Expr(x) {
			return true
		}
	}
	return false
}
