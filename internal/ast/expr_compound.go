package ast

import "github.com/cparsecore/cparsecore/internal/types"

// Unary is a prefix or postfix unary expression. PostfixIncrement/
// PostfixDecrement are the only forms where the source text follows
// the operand; the printer switches on Op to decide which side to
// render the operator on.
type Unary struct {
	ExprBase
	Op      UnaryOp
	Operand Expr
}

// NewUnary constructs a unary expression.
func NewUnary(base ExprBase, op UnaryOp, operand Expr) *Unary {
	return &Unary{ExprBase: base, Op: op, Operand: operand}
}

// Binary is a two-operand expression, covering both plain binary
// operators and their compound-assignment siblings (see BinaryOp).
type Binary struct {
	ExprBase
	Op          BinaryOp
	Left, Right Expr
}

// NewBinary constructs a binary expression.
func NewBinary(base ExprBase, op BinaryOp, left, right Expr) *Binary {
	return &Binary{ExprBase: base, Op: op, Left: left, Right: right}
}

// Cast is an explicit `(T)expr` conversion. Implicit conversions
// inserted by the type checker reuse the same node with Implicit set,
// so the printer can suppress the parenthesized type for casts the
// source never wrote.
type Cast struct {
	ExprBase
	TargetType *types.Type
	Operand    Expr
	Implicit   bool
}

// NewCast constructs a cast expression.
func NewCast(base ExprBase, target *types.Type, operand Expr) *Cast {
	return &Cast{ExprBase: base, TargetType: target, Operand: operand}
}

// Conditional is the ternary `cond ? then : otherwise` expression. GNU
// allows omitting the middle operand (`cond ?: otherwise`, evaluating
// cond once and using it as the true-branch value); Then is nil for
// that form.
type Conditional struct {
	ExprBase
	Condition, Then, Else Expr
}

// NewConditional constructs a conditional expression.
func NewConditional(base ExprBase, cond, then, els Expr) *Conditional {
	return &Conditional{ExprBase: base, Condition: cond, Then: then, Else: els}
}

// Call is a function call, `callee(args...)`.
type Call struct {
	ExprBase
	Callee Expr
	Args   []Expr
}

// NewCall constructs a call expression.
func NewCall(base ExprBase, callee Expr, args []Expr) *Call {
	return &Call{ExprBase: base, Callee: callee, Args: args}
}

// ArrayAccess is `base[index]`, kept distinct from pointer
// dereference plus addition because the printer and the bounds/layout
// reasoning both want the two operands separated out.
type ArrayAccess struct {
	ExprBase
	Base, Index Expr
}

// NewArrayAccess constructs an array-access expression.
func NewArrayAccess(base ExprBase, arr, index Expr) *ArrayAccess {
	return &ArrayAccess{ExprBase: base, Base: arr, Index: index}
}

// Select is `base.member` or `base->member`; Arrow distinguishes the
// two since both resolve to the same CompoundMember entity once the
// base's pointee has been stripped.
type Select struct {
	ExprBase
	Base   Expr
	Member SymbolRef
	Arrow  bool
}

// SymbolRef is the minimal view Select needs of the interned member
// name, satisfied by *symbol.Symbol without importing the symbol
// package's full Value machinery here.
type SymbolRef interface {
	Text() string
}

// NewSelect constructs a member-access expression.
func NewSelect(base ExprBase, operand Expr, member SymbolRef, arrow bool) *Select {
	return &Select{ExprBase: base, Base: operand, Member: member, Arrow: arrow}
}

// TypeQuery is sizeof/_Alignof/__builtin_classify_type applied to
// either a type (`sizeof(int)`) or an expression (`sizeof x`); exactly
// one of Type/Operand is set, matching the two C grammar productions.
type TypeQuery struct {
	ExprBase
	Kind    TypeQueryKind
	Type    *types.Type
	Operand Expr
}

// NewTypeQuery constructs a sizeof/alignof/classify_type expression.
func NewTypeQuery(base ExprBase, kind TypeQueryKind, queriedType *types.Type, operand Expr) *TypeQuery {
	return &TypeQuery{ExprBase: base, Kind: kind, Type: queriedType, Operand: operand}
}

// CompoundLiteral is C99's `(T){ initializer-list }`.
type CompoundLiteral struct {
	ExprBase
	Type *types.Type
	Init Initializer
}

// NewCompoundLiteral constructs a compound-literal expression.
func NewCompoundLiteral(base ExprBase, t *types.Type, init Initializer) *CompoundLiteral {
	return &CompoundLiteral{ExprBase: base, Type: t, Init: init}
}

// Offsetof is GNU/C11 `offsetof(T, member-designator)`.
type Offsetof struct {
	ExprBase
	Type           *types.Type
	MemberPath     []SymbolRef
}

// NewOffsetof constructs an offsetof expression.
func NewOffsetof(base ExprBase, t *types.Type, path []SymbolRef) *Offsetof {
	return &Offsetof{ExprBase: base, Type: t, MemberPath: path}
}

// BuiltinConstantP is GNU `__builtin_constant_p(expr)`.
type BuiltinConstantP struct {
	ExprBase
	Operand Expr
}

// NewBuiltinConstantP constructs a __builtin_constant_p expression.
func NewBuiltinConstantP(base ExprBase, operand Expr) *BuiltinConstantP {
	return &BuiltinConstantP{ExprBase: base, Operand: operand}
}

// BuiltinTypesCompatibleP is GNU `__builtin_types_compatible_p(T1, T2)`.
type BuiltinTypesCompatibleP struct {
	ExprBase
	Left, Right *types.Type
}

// NewBuiltinTypesCompatibleP constructs a __builtin_types_compatible_p
// expression.
func NewBuiltinTypesCompatibleP(base ExprBase, left, right *types.Type) *BuiltinTypesCompatibleP {
	return &BuiltinTypesCompatibleP{ExprBase: base, Left: left, Right: right}
}

// VaArgKind discriminates the four stdarg.h builtins that take a
// va_list operand: starting, fetching the next argument, copying, and
// ending.
type VaArgKind uint8

const (
	VaStart VaArgKind = iota
	VaArg
	VaCopy
	VaEnd
)

// VaBuiltin models __builtin_va_start/va_arg/va_copy/va_end. ArgType
// is only meaningful for VaArg (the type to fetch); Second is the
// second operand for va_start (the last named parameter) and va_copy
// (the source va_list).
type VaBuiltin struct {
	ExprBase
	Kind    VaArgKind
	List    Expr
	Second  Expr
	ArgType *types.Type
}

// NewVaBuiltin constructs a va_start/va_arg/va_copy/va_end expression.
func NewVaBuiltin(base ExprBase, kind VaArgKind, list, second Expr, argType *types.Type) *VaBuiltin {
	return &VaBuiltin{ExprBase: base, Kind: kind, List: list, Second: second, ArgType: argType}
}

// StatementExpr is GNU's `({ stmt; stmt; expr; })` statement
// expression: the value of the block is the value of its trailing
// expression statement.
type StatementExpr struct {
	ExprBase
	Body *Block
}

// NewStatementExpr constructs a GNU statement expression.
func NewStatementExpr(base ExprBase, body *Block) *StatementExpr {
	return &StatementExpr{ExprBase: base, Body: body}
}

// LabelAddress is GNU's `&&label` computed-goto address-of-label
// expression.
type LabelAddress struct {
	ExprBase
	Label SymbolRef
}

// NewLabelAddress constructs a &&label expression.
func NewLabelAddress(base ExprBase, label SymbolRef) *LabelAddress {
	return &LabelAddress{ExprBase: base, Label: label}
}

// Invalid stands in for an expression the parser could not make sense
// of after an earlier error; it carries no operands so that a walker
// can still traverse the tree without special-casing nils.
type Invalid struct {
	ExprBase
}

// NewInvalidExpr constructs a placeholder for an unparseable expression.
func NewInvalidExpr(base ExprBase) *Invalid {
	return &Invalid{ExprBase: base}
}
