package types

import "github.com/cparsecore/cparsecore/internal/config"

// MakeAtomic returns the canonical Atomic type for kind with qualifiers q.
func (tb *Table) MakeAtomic(kind AtomicKind, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindAtomic, qualifiers: q, atomicKind: kind})
}

// MakeComplex returns the canonical `_Complex kind` type.
func (tb *Table) MakeComplex(kind AtomicKind, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindComplex, qualifiers: q, atomicKind: kind})
}

// MakeImaginary returns the canonical GNU `_Imaginary kind` type.
func (tb *Table) MakeImaginary(kind AtomicKind, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindImaginary, qualifiers: q, atomicKind: kind})
}

// MakePointer returns the canonical pointer-to-pointsTo type, qualified by q.
func (tb *Table) MakePointer(pointsTo *Type, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindPointer, qualifiers: q, pointsTo: pointsTo})
}

// MakeBasedPointer returns the canonical MS `__based(basedOn)` pointer type.
func (tb *Table) MakeBasedPointer(pointsTo *Type, basedOn SymbolRef, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindPointer, qualifiers: q, pointsTo: pointsTo, basedOn: basedOn})
}

// MakeReference returns the canonical C++ reference-to-refersTo type.
func (tb *Table) MakeReference(refersTo *Type) *Type {
	return tb.Identify(&Type{kind: KindReference, refersTo: refersTo})
}

// MakeArray returns the canonical fixed-size array type of size
// elements of element, qualified by q.
func (tb *Table) MakeArray(element *Type, size uint64, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindArray, qualifiers: q, element: element, arraySize: size, sizeConstant: true})
}

// MakeIncompleteArray returns the canonical `element[]` incomplete
// array type, qualified by q.
func (tb *Table) MakeIncompleteArray(element *Type, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindArray, qualifiers: q, element: element, hasImplicitSize: true})
}

// MakeVLA returns the canonical variable-length array type whose size
// is given by sizeExpr, qualified by q.
func (tb *Table) MakeVLA(element *Type, sizeExpr SizeExpr, static bool, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindArray, qualifiers: q, element: element, sizeExpr: sizeExpr, isVLA: true, isStaticArray: static})
}

// MakeFunction0 returns the canonical niladic `returnType(void)` function type.
func (tb *Table) MakeFunction0(returnType *Type, conv config.CallingConvention, linkage Linkage) *Type {
	return tb.Identify(&Type{kind: KindFunction, returnType: returnType, callingConvention: conv, linkage: linkage})
}

// MakeFunctionUnspecified returns the canonical non-prototype
// `returnType()` function type (old-style declaration with unknown parameters).
func (tb *Table) MakeFunctionUnspecified(returnType *Type, conv config.CallingConvention, linkage Linkage) *Type {
	return tb.Identify(&Type{kind: KindFunction, returnType: returnType, callingConvention: conv, linkage: linkage, unspecifiedParameters: true})
}

// MakeFunction returns the canonical function type with the given
// fixed parameter list, optionally variadic.
func (tb *Table) MakeFunction(returnType *Type, params []FunctionParameter, variadic bool, conv config.CallingConvention, linkage Linkage) *Type {
	return tb.Identify(&Type{
		kind: KindFunction, returnType: returnType,
		params: append([]FunctionParameter(nil), params...),
		variadic: variadic, callingConvention: conv, linkage: linkage,
	})
}

// MakeFunctionKR returns the canonical K&R-style function type: a
// fixed identifier list whose parameter types are resolved separately.
func (tb *Table) MakeFunctionKR(returnType *Type, params []FunctionParameter, conv config.CallingConvention, linkage Linkage) *Type {
	return tb.Identify(&Type{
		kind: KindFunction, returnType: returnType,
		params: append([]FunctionParameter(nil), params...),
		krStyle: true, callingConvention: conv, linkage: linkage,
	})
}

// MakeCompoundStruct returns the canonical struct type naming entity.
// Two distinct struct tags are never equal even with identical
// members — compound-type compatibility falls back to entity pointer
// equality, which EntityRef's pointer identity gives for free.
func (tb *Table) MakeCompoundStruct(entity EntityRef, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindCompoundStruct, qualifiers: q, entity: entity})
}

// MakeCompoundUnion returns the canonical union type naming entity.
func (tb *Table) MakeCompoundUnion(entity EntityRef, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindCompoundUnion, qualifiers: q, entity: entity})
}

// MakeEnum returns the canonical enum type naming entity, with
// underlying integer representation kind.
func (tb *Table) MakeEnum(entity EntityRef, underlying AtomicKind, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindEnum, qualifiers: q, entity: entity, enumUnderlying: underlying})
}

// MakeBitfield returns the canonical bit-field type of base type base
// (an Atomic or Enum type) and declared width bitSize.
func (tb *Table) MakeBitfield(base *Type, bitSize uint32, sizeExpr SizeExpr) *Type {
	return tb.Identify(&Type{kind: KindBitfield, bitfieldBase: base, bitfieldBitSize: bitSize, bitfieldExpr: sizeExpr})
}

// MakeTypedef returns the canonical reference to a typedef entity.
func (tb *Table) MakeTypedef(typedef TypedefRef, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindTypedef, qualifiers: q, typedef: typedef})
}

// MakeTypeofType returns the canonical `typeof(type)` type.
func (tb *Table) MakeTypeofType(operand *Type, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindTypeof, qualifiers: q, typeofType: operand})
}

// MakeTypeofExpr returns the canonical `typeof(expr)` type.
func (tb *Table) MakeTypeofExpr(operand SizeExpr, q Qualifiers) *Type {
	return tb.Identify(&Type{kind: KindTypeof, qualifiers: q, typeofExpr: operand})
}

// MakeBuiltin returns the canonical compiler-builtin type named sym
// (e.g. `__builtin_va_list`), with its underlying real representation.
func (tb *Table) MakeBuiltin(sym SymbolRef, real *Type) *Type {
	return tb.Identify(&Type{kind: KindBuiltin, builtinSymbol: sym, builtinReal: real})
}

// MakeError returns the canonical sentinel type standing in for a
// type that failed to resolve, so downstream passes can keep going
// without re-diagnosing the same error.
func (tb *Table) MakeError() *Type {
	return tb.Identify(&Type{kind: KindError})
}

// MakeInvalid returns the canonical zero-value sentinel type used
// before any real type has been assigned.
func (tb *Table) MakeInvalid() *Type {
	return tb.Identify(&Type{kind: KindInvalid})
}
