package ast

// UnaryOp discriminates the unary expression forms: pure arithmetic
// negation/complement/logical-not, pointer dereference and
// address-of, the four increment/decrement forms (prefix and postfix
// each have their own op; all four use the same operand/type shape),
// GNU __assume, and the C++-only delete/throw forms kept here because
// the underlying data model is shared.
type UnaryOp uint8

const (
	UnaryNegate UnaryOp = iota
	UnaryPlus
	UnaryComplement
	UnaryNot
	UnaryDereference
	UnaryAddress
	UnaryPostfixIncrement
	UnaryPostfixDecrement
	UnaryPrefixIncrement
	UnaryPrefixDecrement
	UnaryAssume
	UnaryDelete
	UnaryDeleteArray
	UnaryThrow
)

// BinaryOp discriminates the binary (and compound-assignment) operator
// forms. Each plain arithmetic/bitwise/shift op has a matching
// `OpAssign` sibling (e.g. Add / AddAssign) so Binary can represent
// both `a + b` and `a += b` with the same node shape, the op alone
// telling them apart, instead of doubling the type.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	ShiftLeft
	ShiftRight
	LogicalAnd
	LogicalOr
	Equal
	NotEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Comma
	Assign
	AddAssign
	SubAssign
	MulAssign
	DivAssign
	ModAssign
	BitwiseAndAssign
	BitwiseOrAssign
	BitwiseXorAssign
	ShiftLeftAssign
	ShiftRightAssign
	// IsGreater and friends are the GNU unordered-comparison builtins
	// used for floating-point comparisons that must not raise on NaN.
	IsGreater
	IsGreaterEqual
	IsLess
	IsLessEqual
	IsLessGreater
	IsUnordered
)

// IsAssignment reports whether op assigns into its left operand
// (plain `=` or any compound-assignment form).
func (op BinaryOp) IsAssignment() bool {
	return op == Assign || (op >= AddAssign && op <= ShiftRightAssign)
}

// TypeQueryKind discriminates the operators that query a type rather
// than evaluate an operand: sizeof, _Alignof and GNU
// __builtin_classify_type all produce an integer constant from a type
// or expression, never from evaluating side effects, so they share one
// node shape. __builtin_types_compatible_p is its own node
// (BuiltinTypesCompatibleP).
type TypeQueryKind uint8

const (
	QuerySizeof TypeQueryKind = iota
	QueryAlignof
	QueryClassifyType
)
