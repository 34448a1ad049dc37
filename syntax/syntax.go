// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syntax provides a parser, printer and abstract syntax tree
// for JavaScript with JSX markup.
package syntax

// A Node is a node in a syntax tree.
type Node interface {
	// Span returns the start and end position of the node.
	Span() (start, end Position)
}

// Start returns the start position of the node.
func Start(n Node) Position {
	start, _ := n.Span()
	return start
}

// End returns the end position of the node.
func End(n Node) Position {
	_, end := n.Span()
	return end
}

// A File represents a JavaScript module.
type File struct {
	Path  string
	Stmts []Stmt
}

func (x *File) Span() (start, end Position) {
	if len(x.Stmts) == 0 {
		return
	}
	start, _ = x.Stmts[0].Span()
	_, end = x.Stmts[len(x.Stmts)-1].Span()
	return start, end
}

// A Tag records whether a node was synthesized by a rewrite.
// Rewriters check it before classifying a node so that a tree
// can be revisited without wrapping anything twice.
type Tag uint8

const (
	Raw     Tag = iota // parsed from source
	Wrapped            // memoization call produced by a rewrite
	Lifted             // element-construction call produced by a scope lift
)

var tagNames = [...]string{Raw: "raw", Wrapped: "wrapped", Lifted: "lifted"}

func (t Tag) String() string { return tagNames[t] }

// A Stmt is a statement.
type Stmt interface {
	Node
	stmt()
}

func (*BlockStmt) stmt()  {}
func (*BranchStmt) stmt() {}
func (*ClassDecl) stmt()  {}
func (*EmptyStmt) stmt()  {}
func (*ExportDecl) stmt() {}
func (*ExprStmt) stmt()   {}
func (*ForInStmt) stmt()  {}
func (*ForStmt) stmt()    {}
func (*FuncDecl) stmt()   {}
func (*IfStmt) stmt()     {}
func (*ImportDecl) stmt() {}
func (*ReturnStmt) stmt() {}
func (*SwitchStmt) stmt() {}
func (*ThrowStmt) stmt()  {}
func (*TryStmt) stmt()    {}
func (*VarDecl) stmt()    {}
func (*WhileStmt) stmt()  {}

// A VarDecl represents a variable declaration:
//
//	const a = 1, { b, c } = d;
type VarDecl struct {
	DeclPos Position
	Kind    Token // = VAR | LET | CONST
	List    []*VarDeclarator
}

func (x *VarDecl) Span() (start, end Position) {
	_, end = x.List[len(x.List)-1].Span()
	return x.DeclPos, end
}

// A VarDeclarator binds a name or pattern within a VarDecl.
type VarDeclarator struct {
	Name Expr // *Ident, or a pattern: *ObjectExpr | *ArrayExpr
	Init Expr // may be nil
}

func (x *VarDeclarator) Span() (start, end Position) {
	start, end = x.Name.Span()
	if x.Init != nil {
		_, end = x.Init.Span()
	}
	return start, end
}

// A Function represents the common parts of function declarations,
// function expressions, arrow functions and methods.
type Function struct {
	StartPos Position // position of FUNCTION token, method name, or first param
	Async    bool
	Params   []Expr     // param = ident | pattern | AssignExpr (default) | SpreadExpr (rest)
	Body     *BlockStmt // nil for an arrow function with an expression body
	Result   Expr       // expression body of an arrow function
}

func (x *Function) Span() (start, end Position) {
	if x.Body != nil {
		_, end = x.Body.Span()
	} else {
		_, end = x.Result.Span()
	}
	return x.StartPos, end
}

// A FuncDecl represents a function declaration.
type FuncDecl struct {
	Name *Ident
	Function
}

// A ClassDecl represents a class declaration.
type ClassDecl struct {
	Class
}

// A Class represents the common parts of class declarations and
// class expressions.
type Class struct {
	ClassPos Position
	Name     *Ident // may be nil for a class expression
	Super    Expr   // may be nil
	Members  []*ClassMember
	Rbrace   Position
}

func (x *Class) Span() (start, end Position) {
	return x.ClassPos, x.Rbrace.add("}")
}

// A ClassMember is a method or field of a class body.
type ClassMember struct {
	Static   bool
	Accessor string // "get" or "set" for an accessor method
	Computed bool   // [Key]
	Key      Expr   // *Ident, *Literal, or any expression if Computed
	Method   bool
	Value    Expr // *FuncExpr if Method; field initializer (may be nil) otherwise
}

func (x *ClassMember) Span() (start, end Position) {
	start, end = x.Key.Span()
	if x.Value != nil {
		_, end = x.Value.Span()
	}
	return start, end
}

// A ReturnStmt returns from a function.
type ReturnStmt struct {
	Return Position
	Result Expr // may be nil
}

func (x *ReturnStmt) Span() (start, end Position) {
	if x.Result == nil {
		return x.Return, x.Return.add("return")
	}
	_, end = x.Result.Span()
	return x.Return, end
}

// An ExprStmt is an expression evaluated for side effects.
type ExprStmt struct {
	X Expr
}

func (x *ExprStmt) Span() (start, end Position) {
	return x.X.Span()
}

// A BlockStmt is a braced statement list.
type BlockStmt struct {
	Lbrace Position
	Stmts  []Stmt
	Rbrace Position
}

func (x *BlockStmt) Span() (start, end Position) {
	return x.Lbrace, x.Rbrace.add("}")
}

// An IfStmt is a conditional: if (Cond) Then else Else.
type IfStmt struct {
	If   Position
	Cond Expr
	Then Stmt
	Else Stmt // may be nil
}

func (x *IfStmt) Span() (start, end Position) {
	body := x.Else
	if body == nil {
		body = x.Then
	}
	_, end = body.Span()
	return x.If, end
}

// A ForStmt represents a loop: for (Init; Cond; Post) Body.
type ForStmt struct {
	For  Position
	Init Stmt // *VarDecl | *ExprStmt; may be nil
	Cond Expr // may be nil
	Post Expr // may be nil
	Body Stmt
}

func (x *ForStmt) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.For, end
}

// A ForInStmt represents a loop over keys or values:
// for (Decl in X) Body or for (Decl of X) Body.
type ForInStmt struct {
	For  Position
	Of   bool
	Kind Token // VAR | LET | CONST, or ILLEGAL if Decl is a plain target
	Decl Expr  // bound name, pattern or assignment target
	X    Expr
	Body Stmt
}

func (x *ForInStmt) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.For, end
}

// A WhileStmt represents a loop: while (Cond) Body.
type WhileStmt struct {
	While Position
	Cond  Expr
	Body  Stmt
}

func (x *WhileStmt) Span() (start, end Position) {
	_, end = x.Body.Span()
	return x.While, end
}

// A SwitchStmt represents switch (Tag) { Cases }.
// The clauses share a single block scope.
type SwitchStmt struct {
	Switch Position
	Tag    Expr
	Cases  []*CaseClause
	Rbrace Position
}

func (x *SwitchStmt) Span() (start, end Position) {
	return x.Switch, x.Rbrace.add("}")
}

// A CaseClause is a clause of a SwitchStmt: case Value: Body,
// or default: Body.
type CaseClause struct {
	Case  Position
	Value Expr // nil for the default clause
	Colon Position
	Body  []Stmt
}

func (x *CaseClause) Span() (start, end Position) {
	end = x.Colon.add(":")
	if len(x.Body) > 0 {
		_, end = x.Body[len(x.Body)-1].Span()
	}
	return x.Case, end
}

// A TryStmt represents try { } catch (Param) { } finally { }.
type TryStmt struct {
	Try     Position
	Body    *BlockStmt
	Param   Expr       // catch parameter; may be nil
	Catch   *BlockStmt // may be nil
	Finally *BlockStmt // may be nil
}

func (x *TryStmt) Span() (start, end Position) {
	switch {
	case x.Finally != nil:
		_, end = x.Finally.Span()
	case x.Catch != nil:
		_, end = x.Catch.Span()
	default:
		_, end = x.Body.Span()
	}
	return x.Try, end
}

// A ThrowStmt raises an exception.
type ThrowStmt struct {
	Throw Position
	X     Expr
}

func (x *ThrowStmt) Span() (start, end Position) {
	_, end = x.X.Span()
	return x.Throw, end
}

// A BranchStmt changes the flow of control: break, continue.
type BranchStmt struct {
	Token    Token // = BREAK | CONTINUE
	TokenPos Position
}

func (x *BranchStmt) Span() (start, end Position) {
	return x.TokenPos, x.TokenPos.add(x.Token.String())
}

// An EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Semi Position
}

func (x *EmptyStmt) Span() (start, end Position) {
	return x.Semi, x.Semi.add(";")
}

// An ImportDecl represents an import declaration:
//
//	import Default, * as Namespace from 'Source';
//	import Default, { a, b as c } from 'Source';
//	import 'Source';
type ImportDecl struct {
	Import    Position
	Default   *Ident // may be nil
	Namespace *Ident // may be nil
	Specs     []*ImportSpec
	Source    *Literal
}

func (x *ImportDecl) Span() (start, end Position) {
	_, end = x.Source.Span()
	return x.Import, end
}

// An ImportSpec is a named import: Imported as Local.
type ImportSpec struct {
	Imported *Ident
	Local    *Ident // same as Imported if there is no 'as' clause
}

func (x *ImportSpec) Span() (start, end Position) {
	start, _ = x.Imported.Span()
	_, end = x.Local.Span()
	return start, end
}

// An ExportDecl represents an export declaration:
//
//	export default X;
//	export Decl
//	export { a, b as c };
type ExportDecl struct {
	Export  Position
	Default bool
	X       Expr          // default export expression; nil otherwise
	Decl    Stmt          // exported declaration; may be nil
	Specs   []*ExportSpec // export list
	Source  *Literal      // re-export source; may be nil
}

func (x *ExportDecl) Span() (start, end Position) {
	switch {
	case x.X != nil:
		_, end = x.X.Span()
	case x.Decl != nil:
		_, end = x.Decl.Span()
	case x.Source != nil:
		_, end = x.Source.Span()
	default:
		end = x.Export.add("export")
	}
	return x.Export, end
}

// An ExportSpec is an entry in an export list: Local as Exported.
type ExportSpec struct {
	Local    *Ident
	Exported *Ident // same as Local if there is no 'as' clause
}

func (x *ExportSpec) Span() (start, end Position) {
	start, _ = x.Local.Span()
	_, end = x.Exported.Span()
	return start, end
}

// An Expr is an expression.
type Expr interface {
	Node
	expr()
}

func (*ArrayExpr) expr()        {}
func (*ArrowFunc) expr()        {}
func (*AssignExpr) expr()       {}
func (*BinaryExpr) expr()       {}
func (*CallExpr) expr()         {}
func (*ClassExpr) expr()        {}
func (*CondExpr) expr()         {}
func (*DotExpr) expr()          {}
func (*FuncExpr) expr()         {}
func (*Ident) expr()            {}
func (*IndexExpr) expr()        {}
func (*JSXElement) expr()       {}
func (*JSXExprContainer) expr() {}
func (*JSXText) expr()          {}
func (*Literal) expr()          {}
func (*NewExpr) expr()          {}
func (*ObjectExpr) expr()       {}
func (*SpreadExpr) expr()       {}
func (*SuperExpr) expr()        {}
func (*TemplateExpr) expr()     {}
func (*ThisExpr) expr()         {}
func (*UnaryExpr) expr()        {}

// An Ident represents an identifier.
type Ident struct {
	NamePos Position
	Name    string

	Binding *Binding // set by resolver; nil for globals and property names
}

func (x *Ident) Span() (start, end Position) {
	return x.NamePos, x.NamePos.add(x.Name)
}

// A Literal represents a literal string, number, boolean, null or
// regular expression.
type Literal struct {
	Token    Token // = STRING | NUMBER | REGEXP | TRUE | FALSE | NULL
	TokenPos Position
	Raw      string // uninterpreted text
	Value    string // decoded value of a STRING
}

func (x *Literal) Span() (start, end Position) {
	return x.TokenPos, x.TokenPos.add(x.Raw)
}

// A TemplateExpr represents a template literal:
// `Quasis[0]${Exprs[0]}Quasis[1]...`.
// len(Quasis) == len(Exprs)+1. Quasis hold raw text.
type TemplateExpr struct {
	Backtick Position
	Quasis   []string
	Exprs    []Expr
	End      Position
}

func (x *TemplateExpr) Span() (start, end Position) {
	return x.Backtick, x.End
}

// A ThisExpr represents 'this'.
type ThisExpr struct {
	This Position
}

func (x *ThisExpr) Span() (start, end Position) {
	return x.This, x.This.add("this")
}

// A SuperExpr represents 'super'.
type SuperExpr struct {
	Super Position
}

func (x *SuperExpr) Span() (start, end Position) {
	return x.Super, x.Super.add("super")
}

// An ArrayExpr represents an array literal or array pattern: [ List ].
type ArrayExpr struct {
	Lbrack Position
	List   []Expr // elements may be *SpreadExpr
	Rbrack Position
}

func (x *ArrayExpr) Span() (start, end Position) {
	return x.Lbrack, x.Rbrack.add("]")
}

// An ObjectExpr represents an object literal or object pattern: { List }.
type ObjectExpr struct {
	Lbrace Position
	List   []*Property
	Rbrace Position
}

func (x *ObjectExpr) Span() (start, end Position) {
	return x.Lbrace, x.Rbrace.add("}")
}

// A Property is an entry in an ObjectExpr:
//
//	Key: Value, [Key]: Value, Key (shorthand), Key() {}, get Key() {}, ...Value
type Property struct {
	Key       Expr // nil for a spread property
	Value     Expr // *SpreadExpr for a spread property
	Computed  bool
	Shorthand bool
	Method    bool   // Value is a *FuncExpr
	Accessor  string // "get" or "set" for an accessor method
}

func (x *Property) Span() (start, end Position) {
	if x.Key != nil {
		start, _ = x.Key.Span()
	} else {
		start, _ = x.Value.Span()
	}
	_, end = x.Value.Span()
	return start, end
}

// A FuncExpr represents a function expression or method.
type FuncExpr struct {
	Name *Ident // may be nil
	Function
}

// An ArrowFunc represents an arrow function: (Params) => Body.
type ArrowFunc struct {
	Function
}

// A ClassExpr represents a class expression.
type ClassExpr struct {
	Class
}

// A CallExpr represents a function call expression: Fn(Args).
type CallExpr struct {
	Fn       Expr
	Optional bool // Fn?.(Args)
	Lparen   Position
	Args     []Expr // args may be *SpreadExpr
	Rparen   Position

	Tag Tag // set by rewriters
}

func (x *CallExpr) Span() (start, end Position) {
	start, _ = x.Fn.Span()
	return start, x.Rparen.add(")")
}

// A NewExpr represents a constructor call: new Fn(Args).
type NewExpr struct {
	New    Position
	Fn     Expr
	Args   []Expr
	Rparen Position // invalid if there is no argument list
}

func (x *NewExpr) Span() (start, end Position) {
	if x.Rparen.IsValid() {
		return x.New, x.Rparen.add(")")
	}
	_, end = x.Fn.Span()
	return x.New, end
}

// A DotExpr represents a property selector: X.Name or X?.Name.
type DotExpr struct {
	X        Expr
	Dot      Position
	Optional bool
	Name     *Ident
}

func (x *DotExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	_, end = x.Name.Span()
	return
}

// An IndexExpr represents a computed member access: X[Y] or X?.[Y].
type IndexExpr struct {
	X        Expr
	Optional bool
	Lbrack   Position
	Y        Expr
	Rbrack   Position
}

func (x *IndexExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	return start, x.Rbrack.add("]")
}

// A UnaryExpr represents a prefix or postfix unary expression: Op X.
// Op is one of + - ! ~ typeof void delete await ++ --.
type UnaryExpr struct {
	OpPos   Position
	Op      Token
	X       Expr
	Postfix bool // X++ or X--
}

func (x *UnaryExpr) Span() (start, end Position) {
	if x.Postfix {
		start, _ = x.X.Span()
		return start, x.OpPos.add(x.Op.String())
	}
	_, end = x.X.Span()
	return x.OpPos, end
}

// A BinaryExpr represents a binary expression: X Op Y.
// Logical operators and the comma operator are binary expressions.
type BinaryExpr struct {
	X     Expr
	OpPos Position
	Op    Token
	Y     Expr
}

func (x *BinaryExpr) Span() (start, end Position) {
	start, _ = x.X.Span()
	_, end = x.Y.Span()
	return start, end
}

// An AssignExpr represents an assignment: LHS Op RHS.
// In a parameter list or pattern it denotes a default value.
type AssignExpr struct {
	LHS   Expr
	OpPos Position
	Op    Token // = EQ or a compound assignment operator
	RHS   Expr
}

func (x *AssignExpr) Span() (start, end Position) {
	start, _ = x.LHS.Span()
	_, end = x.RHS.Span()
	return start, end
}

// A CondExpr represents the conditional: Cond ? True : False.
type CondExpr struct {
	Cond  Expr
	True  Expr
	False Expr
}

func (x *CondExpr) Span() (start, end Position) {
	start, _ = x.Cond.Span()
	_, end = x.False.Span()
	return start, end
}

// A SpreadExpr represents ...X in an argument list, array, object,
// or rest element of a pattern.
type SpreadExpr struct {
	Ellipsis Position
	X        Expr
}

func (x *SpreadExpr) Span() (start, end Position) {
	_, end = x.X.Span()
	return x.Ellipsis, end
}

// A JSXElement represents a markup element or fragment:
//
//	<Name Attrs...>Children</Name>, <Name Attrs... />, <>Children</>
type JSXElement struct {
	Lt          Position
	Name        Expr   // *Ident or *DotExpr; nil for a fragment
	Attrs       []Node // *JSXAttr | *JSXSpreadAttr
	SelfClosing bool
	Children    []Expr // *JSXText | *JSXExprContainer | *JSXElement
	End         Position
}

func (x *JSXElement) Span() (start, end Position) {
	return x.Lt, x.End
}

// IsFragment reports whether x is a fragment <>...</>.
func (x *JSXElement) IsFragment() bool { return x.Name == nil }

// A JSXAttr is a named attribute of a JSXElement.
// Value is nil for a boolean attribute, a STRING *Literal,
// a *JSXExprContainer, or a *JSXElement.
type JSXAttr struct {
	Name  *Ident
	Value Expr
}

func (x *JSXAttr) Span() (start, end Position) {
	start, end = x.Name.Span()
	if x.Value != nil {
		_, end = x.Value.Span()
	}
	return start, end
}

// A JSXSpreadAttr is a spread attribute {...X}.
type JSXSpreadAttr struct {
	Lbrace Position
	X      Expr
	Rbrace Position
}

func (x *JSXSpreadAttr) Span() (start, end Position) {
	return x.Lbrace, x.Rbrace.add("}")
}

// A JSXExprContainer is an embedded expression {X} in markup.
// X is nil for an empty container such as {/* comment */}.
type JSXExprContainer struct {
	Lbrace Position
	X      Expr
	Rbrace Position
}

func (x *JSXExprContainer) Span() (start, end Position) {
	return x.Lbrace, x.Rbrace.add("}")
}

// A JSXText is a verbatim run of text between tags.
type JSXText struct {
	TextPos Position
	Raw     string
}

func (x *JSXText) Span() (start, end Position) {
	return x.TextPos, x.TextPos.add(x.Raw)
}
