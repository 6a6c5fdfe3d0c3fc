// Package ast implements the typed expression/statement/initializer
// graph a parser builds for one translation unit: every expression
// kind carries its own resolved type so the type system, constant
// classifier, and printer can all walk the same tree without
// re-deriving it.
package ast

import (
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

// Node is any expression, statement, or initializer node.
type Node interface {
	Pos() pos.Position
}

// Expr is any expression node. Every expression carries its own
// resolved type, set once by whoever builds the tree (a parser's
// semantic actions), plus whether the source wrapped it in
// parentheses — the printer reads that bit to reproduce the source's
// own parentheses, such as those that make `(a, b)` a single operand.
type Expr interface {
	Node
	ExprType() *types.Type
	SetExprType(*types.Type)
	WasParenthesized() bool
	SetParenthesized(bool)
	exprNode()
}

// ExprBase is embedded by every concrete expression variant.
type ExprBase struct {
	position      pos.Position
	typ           *types.Type
	parenthesized bool
}

// NewExprBase constructs the common header for a new expression node.
func NewExprBase(p pos.Position) ExprBase {
	return ExprBase{position: p}
}

func (b *ExprBase) Pos() pos.Position           { return b.position }
func (b *ExprBase) ExprType() *types.Type       { return b.typ }
func (b *ExprBase) SetExprType(t *types.Type)   { b.typ = t }
func (b *ExprBase) WasParenthesized() bool      { return b.parenthesized }
func (b *ExprBase) SetParenthesized(p bool)     { b.parenthesized = p }
func (b *ExprBase) exprNode()                   {}

// LiteralKind discriminates the scalar literal forms the lexer can
// hand the parser: the several integer bases, the two floating bases,
// narrow/wide character constants, boolean, and the MS `__noop` literal.
type LiteralKind uint8

const (
	LiteralInteger LiteralKind = iota
	LiteralIntegerOctal
	LiteralIntegerHex
	LiteralFloat
	LiteralFloatHex
	LiteralChar
	LiteralWideChar
	LiteralBool
	LiteralMSNoop
)

// Literal is a scalar constant: an integer, float, character, or
// boolean literal, or the MS `__noop` sentinel (which behaves like a
// literal 0 wherever it appears). String/wide-string literals are a
// separate node (StringLiteral) since they carry a symbol.Value
// instead of a scalar.
type Literal struct {
	ExprBase
	Kind       LiteralKind
	Text       string // original source spelling, for the printer
	IntValue   uint64
	FloatValue float64
	BoolValue  bool
}

// NewLiteral constructs a scalar literal expression.
func NewLiteral(base ExprBase, kind LiteralKind, text string) *Literal {
	return &Literal{ExprBase: base, Kind: kind, Text: text}
}

// StringLiteral is a narrow or wide string literal.
type StringLiteral struct {
	ExprBase
	Value symbol.Value
}

// NewStringLiteral constructs a string literal expression.
func NewStringLiteral(base ExprBase, v symbol.Value) *StringLiteral {
	return &StringLiteral{ExprBase: base, Value: v}
}

// Reference is a use of a named entity: an ordinary identifier
// reference or an enum-value reference, disambiguated by
// Entity.Kind() — both read the same way off the symbol table, so one
// node variant serves both cases.
type Reference struct {
	ExprBase
	Entity entity.Entity
}

// NewReference constructs a reference expression naming e.
func NewReference(base ExprBase, e entity.Entity) *Reference {
	return &Reference{ExprBase: base, Entity: e}
}
