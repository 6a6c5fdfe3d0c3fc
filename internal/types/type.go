package types

import "github.com/cparsecore/cparsecore/internal/config"

// SizeExpr is the minimal view the type graph needs of an expression
// node it merely stores a reference to (a VLA's size expression, a
// bit-field's width expression, typeof's operand): its source type,
// if the external semantic pass has already filled it in. Storing the
// full ast.Expr here would make internal/types import internal/ast,
// which imports internal/types for every expression's Type field —
// this interface inverts that dependency instead.
type SizeExpr interface {
	// ExprType returns the expression's own type, or nil if not yet known.
	ExprType() *Type
}

// EntityRef is the minimal view the type graph needs of the entity
// behind a CompoundStruct/CompoundUnion/Enum/Typedef type: its name,
// if any (anonymous compounds and enums mangle through an alias
// symbol instead — see internal/mangle). The concrete entity lives in
// internal/entity, which imports internal/types; this interface keeps
// the dependency one-directional.
type EntityRef interface {
	// EntitySymbol returns the entity's declared name, or nil if anonymous.
	EntitySymbol() SymbolRef
	// AliasSymbol returns the anonymous-type alias name the
	// mangler falls back to, or nil if none was assigned.
	AliasSymbol() SymbolRef
}

// SymbolRef is the minimal view of an interned identifier the type
// graph needs: its text and identity. internal/symbol.Symbol
// implements this directly.
type SymbolRef interface {
	Text() string
}

// TypedefRef is an EntityRef that additionally exposes the type it
// names, so SkipTyperef can walk through it.
type TypedefRef interface {
	EntityRef
	// Definition returns the type the typedef names.
	Definition() *Type
}

// FunctionParameter is one entry of a Function type's parameter list:
// a type with an optional name.
type FunctionParameter struct {
	Type   *Type
	Symbol SymbolRef
}

// Linkage distinguishes C and C++ name-binding policy. The core never implements C++ semantics beyond carrying this
// tag through to the mangler.
type Linkage uint8

const (
	LinkageC Linkage = iota
	LinkageCXX
)

// FunctionModifiers is the modifier bitset a Function type carries,
// independent of the entity-level declaration-modifier bitset.
type FunctionModifiers uint8

const (
	FnModNone FunctionModifiers = 0
)

// Type is the single struct backing every variant of the hash-consed
// type table. A discriminator (Kind) plus per-kind fields stand in
// for a tagged union; Go has no sum types, and splitting each variant
// into its own struct behind a Type interface (the usual idiom for
// AST nodes) would make the hash-cons table's structural-equality
// check — which must compare across variants uniformly — far more
// awkward than one struct with a kind tag.
// Only exported through accessor methods; never mutate a *Type
// obtained from a Table directly — see Duplicate.
type Type struct {
	kind       Kind
	qualifiers Qualifiers

	// Atomic / Complex / Imaginary
	atomicKind AtomicKind

	// Pointer
	pointsTo *Type
	basedOn  SymbolRef // MS __based(var) extension; nil otherwise

	// Reference
	refersTo *Type

	// Array
	element         *Type
	arraySize       uint64
	sizeConstant    bool
	sizeExpr        SizeExpr
	isVLA           bool
	hasImplicitSize bool
	isStaticArray   bool

	// Function
	returnType            *Type
	params                []FunctionParameter
	variadic              bool
	unspecifiedParameters bool
	krStyle               bool
	linkage               Linkage
	callingConvention     config.CallingConvention
	fnModifiers           FunctionModifiers

	// CompoundStruct / CompoundUnion / Enum
	entity EntityRef

	// Enum
	enumUnderlying AtomicKind

	// Bitfield
	bitfieldBase    *Type
	bitfieldBitSize uint32
	bitfieldExpr    SizeExpr

	// Typedef
	typedef TypedefRef

	// Typeof
	typeofType *Type
	typeofExpr SizeExpr

	// Builtin
	builtinSymbol SymbolRef
	builtinReal   *Type
}

// Kind returns the variant discriminator.
func (t *Type) Kind() Kind { return t.kind }

// Qualifiers returns the type's qualifier bitset. For Array and
// Bitfield types the qualifier conceptually lives on the element/base
// type, so this proxies through.
func (t *Type) Qualifiers() Qualifiers {
	switch t.kind {
	case KindArray:
		return t.element.Qualifiers()
	case KindBitfield:
		return t.bitfieldBase.Qualifiers()
	default:
		return t.qualifiers
	}
}

// AtomicKind returns the atomic payload of an Atomic/Complex/Imaginary type.
func (t *Type) AtomicKind() AtomicKind { return t.atomicKind }

// PointsTo returns a Pointer type's pointee.
func (t *Type) PointsTo() *Type { return t.pointsTo }

// BasedOn returns a based-pointer's based-on variable symbol, or nil.
func (t *Type) BasedOn() SymbolRef { return t.basedOn }

// RefersTo returns a Reference type's referent.
func (t *Type) RefersTo() *Type { return t.refersTo }

// Element returns an Array type's element type.
func (t *Type) Element() *Type { return t.element }

// ArraySize returns an Array type's constant element count; only
// meaningful when SizeConstant is true.
func (t *Type) ArraySize() uint64 { return t.arraySize }

// SizeConstant reports whether an Array type has a known constant size.
func (t *Type) SizeConstant() bool { return t.sizeConstant }

// SizeExpr returns a VLA's size expression, or nil.
func (t *Type) SizeExpr() SizeExpr { return t.sizeExpr }

// IsVLA reports whether an Array type is variable-length.
func (t *Type) IsVLA() bool { return t.isVLA }

// HasImplicitSize reports whether an Array's size was omitted (`int a[]`).
func (t *Type) HasImplicitSize() bool { return t.hasImplicitSize }

// IsStaticArraySize reports the `[static N]` parameter-array flag.
func (t *Type) IsStaticArraySize() bool { return t.isStaticArray }

// ReturnType returns a Function type's return type.
func (t *Type) ReturnType() *Type { return t.returnType }

// Parameters returns a Function type's parameter list.
func (t *Type) Parameters() []FunctionParameter { return t.params }

// Variadic reports whether a Function type accepts `...`.
func (t *Type) Variadic() bool { return t.variadic }

// UnspecifiedParameters reports a non-prototype function type (`f()`).
func (t *Type) UnspecifiedParameters() bool { return t.unspecifiedParameters }

// KRStyle reports an old-style K&R parameter list.
func (t *Type) KRStyle() bool { return t.krStyle }

// FunctionLinkage returns a Function type's linkage.
func (t *Type) FunctionLinkage() Linkage { return t.linkage }

// CallingConvention returns a Function type's calling convention.
func (t *Type) CallingConvention() config.CallingConvention { return t.callingConvention }

// FunctionModifiers returns a Function type's modifier bitset.
func (t *Type) FunctionModifiers() FunctionModifiers { return t.fnModifiers }

// CompoundEntity returns the compound/enum entity a
// CompoundStruct/CompoundUnion/Enum type points to.
func (t *Type) CompoundEntity() EntityRef { return t.entity }

// EnumUnderlying returns an Enum type's underlying atomic kind.
func (t *Type) EnumUnderlying() AtomicKind { return t.enumUnderlying }

// BitfieldBase returns a Bitfield type's base atomic/enum type.
func (t *Type) BitfieldBase() *Type { return t.bitfieldBase }

// BitfieldBitSize returns a Bitfield type's declared width in bits.
func (t *Type) BitfieldBitSize() uint32 { return t.bitfieldBitSize }

// BitfieldSizeExpr returns the bit-field's width expression, if stored.
func (t *Type) BitfieldSizeExpr() SizeExpr { return t.bitfieldExpr }

// TypedefEntity returns a Typedef type's typedef entity.
func (t *Type) TypedefEntity() TypedefRef { return t.typedef }

// TypeofType returns a `typeof(type)` operand, or nil if the operand was an expression.
func (t *Type) TypeofType() *Type { return t.typeofType }

// TypeofExpr returns a `typeof(expr)` operand, or nil if the operand was a type.
func (t *Type) TypeofExpr() SizeExpr { return t.typeofExpr }

// BuiltinSymbol returns a Builtin type's name.
func (t *Type) BuiltinSymbol() SymbolRef { return t.builtinSymbol }

// BuiltinReal returns a Builtin type's underlying real type (e.g. __builtin_va_list's struct).
func (t *Type) BuiltinReal() *Type { return t.builtinReal }
