package entity

import "github.com/cparsecore/cparsecore/internal/types"

// Compound is a struct or
// union tag, owning a member Scope and the packed/complete flags
// internal/layout consults.
type Compound struct {
	Base
	Alias             *Base // anonymous-type mangling alias, or nil
	Members           *Scope
	Modifiers         DeclModifiers
	Layouted          bool
	Complete          bool
	TransparentUnion  bool
	Packed            bool
	Alignment         int
	Size              int
}

// NewCompound constructs a struct or union entity (Kind must be
// KindStruct or KindUnion).
func NewCompound(base Base, members *Scope) *Compound {
	return &Compound{Base: base, Members: members}
}

// AliasSymbol overrides Base's default, exposing the anonymous-type
// mangling alias a compound type may be assigned.
func (c *Compound) AliasSymbol() types.SymbolRef {
	if c.Alias == nil {
		return nil
	}
	return c.Alias.EntitySymbol()
}

// Enum is an enum tag, owning its list of
// enumerator entities via Members.
type Enum struct {
	Base
	Alias    *Base
	Members  *Scope
	Complete bool
}

// NewEnum constructs an enum entity.
func NewEnum(base Base, members *Scope) *Enum {
	base.kind = KindEnum
	return &Enum{Base: base, Members: members}
}

// AliasSymbol overrides Base's default, mirroring Compound.AliasSymbol.
func (e *Enum) AliasSymbol() types.SymbolRef {
	if e.Alias == nil {
		return nil
	}
	return e.Alias.EntitySymbol()
}

// EnumValue is one enumerator,
// holding its constant-expression value and the enum type it belongs
// to. Value is an interface{} rather than an
// ast.Expr to keep internal/entity from importing internal/ast —
// whoever builds the AST assigns the concrete expression.
type EnumValue struct {
	Base
	Value    interface{}
	EnumType *types.Type
}

// NewEnumValue constructs an enumerator entity.
func NewEnumValue(base Base, enumType *types.Type) *EnumValue {
	base.kind = KindEnumValue
	return &EnumValue{Base: base, EnumType: enumType}
}

// Class is a C++ class tag. It shares struct/union's layout
// machinery (Members, Layouted, Complete, Size, Alignment) plus the
// base-class list C's plain structs never need; the core's C89/C99
// mode never constructs one, but keeping the variant here means a
// later C++-mode extension finds the slot already shaped.
type Class struct {
	Compound
	Bases []types.EntityRef
}

// NewClass constructs a class entity.
func NewClass(base Base, members *Scope) *Class {
	base.kind = KindClass
	return &Class{Compound: Compound{Base: base, Members: members}}
}
