// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// This file defines resolver data types referenced by the syntax tree.
// We cannot guarantee API stability for these types
// as they are closely tied to the implementation.

import "strings"

// A Binding ties together all identifiers that denote the same variable.
// The resolver computes a binding for every declaring and every
// resolved referencing Ident.
type Binding struct {
	Name  string
	Kind  BindingKind
	Decl  Node   // declaring node: *VarDeclarator, *FuncDecl, *ClassDecl, *ImportDecl, *TryStmt, *ForInStmt, or a function
	Scope Node   // node owning the scope that introduces the binding
	First *Ident // declaring identifier

	Reassigned bool // target of an assignment or update after declaration
}

// A BindingKind records how a name was introduced.
type BindingKind uint8

const (
	VarBinding BindingKind = iota
	LetBinding
	ConstBinding
	ParamBinding
	FunctionBinding
	ClassBinding
	ImportBinding
	CatchBinding
)

var bindingKindNames = [...]string{
	VarBinding:      "var",
	LetBinding:      "let",
	ConstBinding:    "const",
	ParamBinding:    "param",
	FunctionBinding: "function",
	ClassBinding:    "class",
	ImportBinding:   "import",
	CatchBinding:    "catch",
}

func (k BindingKind) String() string { return bindingKindNames[k] }

// Constant reports whether the binding always denotes the value it was
// declared with: a const or import, whose assignments throw when
// executed, or any other binding that is never the target of an
// assignment.
func (b *Binding) Constant() bool {
	switch b.Kind {
	case ConstBinding, ImportBinding:
		return true
	}
	return !b.Reassigned
}

// An InitKind classifies the initializer of a variable binding.
type InitKind uint8

const (
	OtherInit    InitKind = iota // anything else, or no initializer
	FunctionInit                 // arrow function or function expression
	HookCallInit                 // call whose callee name begins with the hook prefix
)

var initKindNames = [...]string{
	OtherInit:    "other",
	FunctionInit: "function",
	HookCallInit: "hook call",
}

func (k InitKind) String() string { return initKindNames[k] }

// Init returns the current initializer of a variable declared by a
// plain VarDeclarator, or nil. Names bound by a destructuring pattern
// have no initializer of their own.
func (b *Binding) Init() Expr {
	if d, ok := b.Decl.(*VarDeclarator); ok && d.Name == Expr(b.First) {
		return d.Init
	}
	return nil
}

// InitKind classifies the binding's initializer; a call counts as a
// hook call when its callee, or the last property of a dotted callee,
// begins with hookPrefix.
func (b *Binding) InitKind(hookPrefix string) InitKind {
	switch init := b.Init().(type) {
	case *ArrowFunc, *FuncExpr:
		return FunctionInit
	case *CallExpr:
		if IsHookCallee(init.Fn, hookPrefix) {
			return HookCallInit
		}
	}
	return OtherInit
}

// IsHookCallee reports whether fn names a hook: an identifier or a
// property selector whose name begins with prefix.
func IsHookCallee(fn Expr, prefix string) bool {
	switch fn := fn.(type) {
	case *Ident:
		return strings.HasPrefix(fn.Name, prefix)
	case *DotExpr:
		return strings.HasPrefix(fn.Name.Name, prefix)
	}
	return false
}
