package types

import "github.com/cparsecore/cparsecore/internal/config"

// WithCallingConvention returns the canonical Function type identical
// to t but using calling convention conv — used by internal/attribute
// when folding `cdecl`/`stdcall`/`fastcall`/`thiscall` onto a function
// type. Non-function types are returned unchanged.
func (tb *Table) WithCallingConvention(t *Type, conv config.CallingConvention) *Type {
	if t.kind != KindFunction || t.callingConvention == conv {
		return t
	}
	cp := Duplicate(t)
	cp.callingConvention = conv
	return tb.Identify(cp)
}

// SkipTyperef strips any number of Typedef and Typeof(type) wrapper
// layers and returns the first non-alias type underneath.
// Qualifiers on the stripped layers are lost; callers that care
// about them should read t.Qualifiers() before calling SkipTyperef.
func SkipTyperef(t *Type) *Type {
	for t != nil {
		switch t.kind {
		case KindTypedef:
			if t.typedef == nil {
				return t
			}
			t = t.typedef.Definition()
		case KindTypeof:
			if t.typeofType == nil {
				return t
			}
			t = t.typeofType
		default:
			return t
		}
	}
	return t
}

// GetUnqualified returns the canonical type identical to t but with no
// qualifiers, identifying the result through tb.
func (tb *Table) GetUnqualified(t *Type) *Type {
	return tb.GetQualified(t, QualNone)
}

// GetQualified returns the canonical type identical to t but with
// qualifiers q, identifying the result through tb. For Array and
// Bitfield types — whose own Qualifiers() proxies to their
// element/base type — this requalifies that underlying type instead
// of the array/bitfield shell itself.
func (tb *Table) GetQualified(t *Type, q Qualifiers) *Type {
	switch t.kind {
	case KindArray:
		element := tb.GetQualified(t.element, q)
		cp := *t
		cp.element = element
		cp.qualifiers = QualNone
		return tb.Identify(&cp)
	case KindBitfield:
		base := tb.GetQualified(t.bitfieldBase, q)
		cp := *t
		cp.bitfieldBase = base
		return tb.Identify(&cp)
	default:
		if t.qualifiers == q {
			return t
		}
		cp := *t
		cp.qualifiers = q
		return tb.Identify(&cp)
	}
}

// Duplicate returns a fresh, not-yet-identified copy of t suitable for
// mutation before a follow-up Identify call — e.g.
// attribute resolution building a modified type from an existing one.
func Duplicate(t *Type) *Type {
	cp := *t
	if t.params != nil {
		cp.params = append([]FunctionParameter(nil), t.params...)
	}
	return &cp
}

// TypesCompatible implements the type-compatibility predicate.
// Two identified types from the same Table are compatible exactly
// when: they are the same canonical pointer, OR they have the same
// kind and equal qualifiers and satisfy a kind-specific structural
// rule. Compound/enum
// compatibility reduces to entity pointer equality — no structural
// comparison ever attempts to look inside the entity.
func TypesCompatible(tb *Table, a, b *Type) bool {
	a = SkipTyperef(a)
	b = SkipTyperef(b)
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind {
		return false
	}
	if a.Qualifiers() != b.Qualifiers() {
		return false
	}
	switch a.kind {
	case KindAtomic, KindComplex, KindImaginary:
		return a.atomicKind == b.atomicKind
	case KindPointer:
		return TypesCompatible(tb, a.pointsTo, b.pointsTo)
	case KindReference:
		return TypesCompatible(tb, a.refersTo, b.refersTo)
	case KindArray:
		if !TypesCompatible(tb, a.element, b.element) {
			return false
		}
		if a.sizeConstant && b.sizeConstant {
			return a.arraySize == b.arraySize
		}
		return true
	case KindFunction:
		return functionTypesCompatible(tb, a, b)
	case KindCompoundStruct, KindCompoundUnion, KindEnum:
		return a.entity == b.entity
	case KindBitfield:
		return TypesCompatible(tb, a.bitfieldBase, b.bitfieldBase) && a.bitfieldBitSize == b.bitfieldBitSize
	case KindBuiltin:
		return a.builtinSymbol == b.builtinSymbol
	case KindError, KindInvalid:
		return true
	}
	return false
}

func functionTypesCompatible(tb *Table, a, b *Type) bool {
	if !TypesCompatible(tb, a.returnType, b.returnType) {
		return false
	}
	if a.unspecifiedParameters || b.unspecifiedParameters {
		return true
	}
	if a.variadic != b.variadic || len(a.params) != len(b.params) {
		return false
	}
	for i := range a.params {
		if !TypesCompatible(tb, a.params[i].Type, b.params[i].Type) {
			return false
		}
	}
	return true
}

// IsTypeInteger reports whether t's skip-typeref'd form is an integer
// atomic, or an Enum/Bitfield (both are integer types per C, the
// former represented by its underlying kind).
func IsTypeInteger(t *Type, tb *Table) bool {
	u := SkipTyperef(t)
	switch u.kind {
	case KindAtomic:
		return GetAtomicFlags(u.atomicKind, tb.cfg)&FlagInteger != 0
	case KindEnum, KindBitfield:
		return true
	}
	return false
}

// IsTypeFloat reports whether t's skip-typeref'd form is a real or
// complex floating type.
func IsTypeFloat(t *Type, tb *Table) bool {
	u := SkipTyperef(t)
	switch u.kind {
	case KindAtomic, KindComplex, KindImaginary:
		return GetAtomicFlags(u.atomicKind, tb.cfg)&FlagFloat != 0
	}
	return false
}

// IsTypeArithmetic reports whether t is an integer or floating type.
func IsTypeArithmetic(t *Type, tb *Table) bool {
	return IsTypeInteger(t, tb) || IsTypeFloat(t, tb)
}

// IsTypeScalar reports whether t is arithmetic or a pointer — the C
// standard's notion of a type valid as a controlling expression.
func IsTypeScalar(t *Type, tb *Table) bool {
	u := SkipTyperef(t)
	return IsTypeArithmetic(t, tb) || u.kind == KindPointer
}

// IsTypeSigned reports whether t's skip-typeref'd atomic/enum kind is signed.
func IsTypeSigned(t *Type, tb *Table) bool {
	u := SkipTyperef(t)
	switch u.kind {
	case KindAtomic, KindComplex, KindImaginary:
		return GetAtomicFlags(u.atomicKind, tb.cfg)&FlagSigned != 0
	case KindEnum:
		return GetAtomicFlags(u.enumUnderlying, tb.cfg)&FlagSigned != 0
	}
	return false
}

// IsTypeIncomplete reports whether t denotes an incomplete type: void,
// an array with no known size, or a compound/enum whose entity has no
// definition yet.
func IsTypeIncomplete(t *Type, complete func(EntityRef) bool) bool {
	u := SkipTyperef(t)
	switch u.kind {
	case KindAtomic:
		return u.atomicKind == Void
	case KindArray:
		return !u.sizeConstant && !u.isVLA
	case KindCompoundStruct, KindCompoundUnion, KindEnum:
		if complete == nil {
			return false
		}
		return !complete(u.entity)
	}
	return false
}

// IsTypeObject reports whether t is an object type: not a function
// type and not void.
func IsTypeObject(t *Type) bool {
	u := SkipTyperef(t)
	if u.kind == KindFunction {
		return false
	}
	return !(u.kind == KindAtomic && u.atomicKind == Void)
}

// IsTypeComplete is the negation of IsTypeIncomplete, restricted to object types.
func IsTypeComplete(t *Type, complete func(EntityRef) bool) bool {
	return IsTypeObject(t) && !IsTypeIncomplete(t, complete)
}

// IsBuiltinVaList reports whether t is (possibly through typedefs) the
// compiler builtin `__builtin_va_list` type.
func IsBuiltinVaList(t *Type) bool {
	u := SkipTyperef(t)
	return u.kind == KindBuiltin && u.builtinSymbol != nil && u.builtinSymbol.Text() == "__builtin_va_list"
}
