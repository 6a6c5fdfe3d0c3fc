// Package entity implements the named-declaration graph: variables,
// functions, compound (struct/union) and enum tags, typedefs, labels,
// and the lexical scopes that hold them, reshaped as one Go interface
// plus one struct per variant (the idiom internal/ast already uses
// for expression/statement nodes).
package entity

import "github.com/cparsecore/cparsecore/internal/pos"

// Kind discriminates the entity-table variants.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVariable
	KindCompoundMember
	KindParameter
	KindFunction
	KindTypedef
	KindClass
	KindStruct
	KindUnion
	KindEnum
	KindEnumValue
	KindLabel
	KindLocalLabel
	KindNamespace
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindCompoundMember:
		return "compound member"
	case KindParameter:
		return "parameter"
	case KindFunction:
		return "function"
	case KindTypedef:
		return "typedef"
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	case KindEnumValue:
		return "enum value"
	case KindLabel:
		return "label"
	case KindLocalLabel:
		return "local label"
	case KindNamespace:
		return "namespace"
	}
	return "invalid"
}

// Namespace is the C namespace an entity's name lives in (ordinary
// identifiers, tags, or labels all partition independently).
type Namespace uint8

const (
	NamespaceInvalid Namespace = iota
	NamespaceNormal
	NamespaceTag
	NamespaceLabel
)

// StorageClass is a declaration's storage-class specifier.
type StorageClass uint8

const (
	StorageNone StorageClass = iota
	StorageExtern
	StorageStatic
	StorageTypedef
	StorageAuto
	StorageRegister
)

// DeclModifiers is the GNU/MS attribute-derived modifier bitset
// attached to declarations.
type DeclModifiers uint32

const (
	DMNone              DeclModifiers = 0
	DMDllimport         DeclModifiers = 1 << 0
	DMDllexport         DeclModifiers = 1 << 1
	DMThread            DeclModifiers = 1 << 2
	DMNaked             DeclModifiers = 1 << 3
	DMMicrosoftInline   DeclModifiers = 1 << 4
	DMForceinline       DeclModifiers = 1 << 5
	DMSelectany         DeclModifiers = 1 << 6
	DMNothrow           DeclModifiers = 1 << 7
	DMNovtable          DeclModifiers = 1 << 8
	DMNoreturn          DeclModifiers = 1 << 9
	DMNoinline          DeclModifiers = 1 << 10
	DMRestrict          DeclModifiers = 1 << 11
	DMNoalias           DeclModifiers = 1 << 12
	DMTransparentUnion  DeclModifiers = 1 << 13
	DMConst             DeclModifiers = 1 << 14
	DMPure              DeclModifiers = 1 << 15
	DMConstructor       DeclModifiers = 1 << 16
	DMDestructor        DeclModifiers = 1 << 17
	DMUnused            DeclModifiers = 1 << 18
	DMUsed              DeclModifiers = 1 << 19
	DMCdecl             DeclModifiers = 1 << 20
	DMFastcall          DeclModifiers = 1 << 21
	DMStdcall           DeclModifiers = 1 << 22
	DMThiscall          DeclModifiers = 1 << 23
	DMDeprecated        DeclModifiers = 1 << 24
	DMReturnsTwice      DeclModifiers = 1 << 25
	DMMalloc            DeclModifiers = 1 << 26
)

// Has reports whether every bit of want is set in m.
func (m DeclModifiers) Has(want DeclModifiers) bool { return m&want == want }

// BuiltinKind identifies a GNU __builtin_* or MS intrinsic function
// entity, or BuiltinNone for an ordinary function.
type BuiltinKind uint8

const (
	BuiltinNone BuiltinKind = iota
	BuiltinGNUAlloca
	BuiltinGNUHugeVal
	BuiltinGNUInf
	BuiltinGNUNan
	BuiltinGNUVaEnd
	BuiltinGNUExpect
	BuiltinGNUReturnAddress
	BuiltinGNUFrameAddress
	BuiltinGNUFfs
	BuiltinGNUClz
	BuiltinGNUCtz
	BuiltinGNUPopcount
	BuiltinGNUParity
	BuiltinGNUPrefetch
	BuiltinGNUTrap
	BuiltinMSRotl
	BuiltinMSRotr
	BuiltinMSByteswap
	BuiltinMSDebugbreak
	BuiltinMSBitScanForward
	BuiltinMSBitScanReverse
	BuiltinMSInterlockedExchange
)

// Position exposes the source position every entity carries, via
// the Entity interface's embedded accessor.
type Position = pos.Position
