// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// Walk traverses a syntax tree in depth-first order.
// It starts by calling f(n); n must not be nil.
// If f returns true, Walk calls itself
// recursively for each non-nil child of n.
// Walk then calls f(nil).
//
// The children of a node are read only after f returns, so f may
// replace them in place and Walk descends into the replacements.
func Walk(n Node, f func(Node) bool) {
	if n == nil {
		panic("nil")
	}
	if !f(n) {
		return
	}

	switch n := n.(type) {
	case *File:
		walkStmts(n.Stmts, f)

	case *VarDecl:
		for _, d := range n.List {
			Walk(d, f)
		}

	case *VarDeclarator:
		Walk(n.Name, f)
		if n.Init != nil {
			Walk(n.Init, f)
		}

	case *FuncDecl:
		if n.Name != nil {
			Walk(n.Name, f)
		}
		walkFunction(&n.Function, f)

	case *ClassDecl:
		walkClass(&n.Class, f)

	case *ClassMember:
		Walk(n.Key, f)
		if n.Value != nil {
			Walk(n.Value, f)
		}

	case *ReturnStmt:
		if n.Result != nil {
			Walk(n.Result, f)
		}

	case *ExprStmt:
		Walk(n.X, f)

	case *BlockStmt:
		walkStmts(n.Stmts, f)

	case *IfStmt:
		Walk(n.Cond, f)
		Walk(n.Then, f)
		if n.Else != nil {
			Walk(n.Else, f)
		}

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, f)
		}
		if n.Cond != nil {
			Walk(n.Cond, f)
		}
		if n.Post != nil {
			Walk(n.Post, f)
		}
		Walk(n.Body, f)

	case *ForInStmt:
		Walk(n.Decl, f)
		Walk(n.X, f)
		Walk(n.Body, f)

	case *WhileStmt:
		Walk(n.Cond, f)
		Walk(n.Body, f)

	case *SwitchStmt:
		Walk(n.Tag, f)
		for _, c := range n.Cases {
			Walk(c, f)
		}

	case *CaseClause:
		if n.Value != nil {
			Walk(n.Value, f)
		}
		walkStmts(n.Body, f)

	case *TryStmt:
		Walk(n.Body, f)
		if n.Param != nil {
			Walk(n.Param, f)
		}
		if n.Catch != nil {
			Walk(n.Catch, f)
		}
		if n.Finally != nil {
			Walk(n.Finally, f)
		}

	case *ThrowStmt:
		Walk(n.X, f)

	case *BranchStmt, *EmptyStmt:
		// no-op

	case *ImportDecl:
		if n.Default != nil {
			Walk(n.Default, f)
		}
		if n.Namespace != nil {
			Walk(n.Namespace, f)
		}
		for _, spec := range n.Specs {
			Walk(spec, f)
		}
		Walk(n.Source, f)

	case *ImportSpec:
		Walk(n.Imported, f)
		if n.Local != n.Imported {
			Walk(n.Local, f)
		}

	case *ExportDecl:
		if n.X != nil {
			Walk(n.X, f)
		}
		if n.Decl != nil {
			Walk(n.Decl, f)
		}
		for _, spec := range n.Specs {
			Walk(spec, f)
		}
		if n.Source != nil {
			Walk(n.Source, f)
		}

	case *ExportSpec:
		Walk(n.Local, f)
		if n.Exported != n.Local {
			Walk(n.Exported, f)
		}

	case *Ident, *Literal, *ThisExpr, *SuperExpr, *JSXText:
		// no-op

	case *TemplateExpr:
		walkExprs(n.Exprs, f)

	case *ArrayExpr:
		walkExprs(n.List, f)

	case *ObjectExpr:
		for _, prop := range n.List {
			Walk(prop, f)
		}

	case *Property:
		if n.Key != nil && !n.Shorthand {
			Walk(n.Key, f)
		}
		Walk(n.Value, f)

	case *FuncExpr:
		if n.Name != nil {
			Walk(n.Name, f)
		}
		walkFunction(&n.Function, f)

	case *ArrowFunc:
		walkFunction(&n.Function, f)

	case *ClassExpr:
		walkClass(&n.Class, f)

	case *CallExpr:
		Walk(n.Fn, f)
		walkExprs(n.Args, f)

	case *NewExpr:
		Walk(n.Fn, f)
		walkExprs(n.Args, f)

	case *DotExpr:
		Walk(n.X, f)
		Walk(n.Name, f)

	case *IndexExpr:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *UnaryExpr:
		Walk(n.X, f)

	case *BinaryExpr:
		Walk(n.X, f)
		Walk(n.Y, f)

	case *AssignExpr:
		Walk(n.LHS, f)
		Walk(n.RHS, f)

	case *CondExpr:
		Walk(n.Cond, f)
		Walk(n.True, f)
		Walk(n.False, f)

	case *SpreadExpr:
		Walk(n.X, f)

	case *JSXElement:
		if n.Name != nil {
			Walk(n.Name, f)
		}
		for i := 0; i < len(n.Attrs); i++ {
			Walk(n.Attrs[i], f)
		}
		walkExprs(n.Children, f)

	case *JSXAttr:
		Walk(n.Name, f)
		if n.Value != nil {
			Walk(n.Value, f)
		}

	case *JSXSpreadAttr:
		Walk(n.X, f)

	case *JSXExprContainer:
		if n.X != nil {
			Walk(n.X, f)
		}

	default:
		panic(n)
	}

	f(nil)
}

func walkStmts(stmts []Stmt, f func(Node) bool) {
	for i := 0; i < len(stmts); i++ {
		Walk(stmts[i], f)
	}
}

func walkExprs(exprs []Expr, f func(Node) bool) {
	for i := 0; i < len(exprs); i++ {
		Walk(exprs[i], f)
	}
}

func walkFunction(fn *Function, f func(Node) bool) {
	walkExprs(fn.Params, f)
	if fn.Body != nil {
		Walk(fn.Body, f)
	} else {
		Walk(fn.Result, f)
	}
}

func walkClass(c *Class, f func(Node) bool) {
	if c.Name != nil {
		Walk(c.Name, f)
	}
	if c.Super != nil {
		Walk(c.Super, f)
	}
	for _, m := range c.Members {
		Walk(m, f)
	}
}
