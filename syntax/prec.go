// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

// A prec is an operator precedence level, from loosest to tightest.
type prec uint8

const (
	precLowest prec = iota
	precComma
	precSpread
	precAssign
	precConditional
	precNullishCoalescing
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquals
	precCompare
	precShift
	precAdd
	precMultiply
	precExponentiation
	precPrefix
	precPostfix
	precNew
	precCall
	precMember
	precPrimary
)

// binaryPrec maps each binary operator token to its precedence.
// Other tokens, including COMMA, map to precLowest.
var binaryPrec = [maxToken]prec{
	QUESTIONQUESTION: precNullishCoalescing,
	PIPEPIPE:         precLogicalOr,
	AMPAMP:           precLogicalAnd,
	PIPE:             precBitwiseOr,
	CIRCUMFLEX:       precBitwiseXor,
	AMP:              precBitwiseAnd,
	EQL:              precEquals,
	NEQ:              precEquals,
	EQLEQL:           precEquals,
	NEQEQ:            precEquals,
	LT:               precCompare,
	GT:               precCompare,
	LE:               precCompare,
	GE:               precCompare,
	IN:               precCompare,
	INSTANCEOF:       precCompare,
	LTLT:             precShift,
	GTGT:             precShift,
	GTGTGT:           precShift,
	PLUS:             precAdd,
	MINUS:            precAdd,
	STAR:             precMultiply,
	SLASH:            precMultiply,
	PERCENT:          precMultiply,
	STARSTAR:         precExponentiation,
}

// exprPrec returns the precedence of the outermost operator of x.
func exprPrec(x Expr) prec {
	switch x := x.(type) {
	case *BinaryExpr:
		if x.Op == COMMA {
			return precComma
		}
		return binaryPrec[x.Op]
	case *AssignExpr, *ArrowFunc:
		return precAssign
	case *CondExpr:
		return precConditional
	case *UnaryExpr:
		if x.Postfix {
			return precPostfix
		}
		return precPrefix
	case *CallExpr, *NewExpr:
		return precCall
	case *DotExpr, *IndexExpr:
		return precMember
	}
	return precPrimary
}
