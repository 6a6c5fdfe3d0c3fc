package entity

import "github.com/cparsecore/cparsecore/internal/types"

// Typedef is a typedef name bound to
// a type. Typedef implements types.TypedefRef
// directly, so a *Typedef can be stored straight into a Typedef-kind
// Type's entity field.
type Typedef struct {
	Base
	Modifiers DeclModifiers
	Type      *types.Type
	Alignment int
	Builtin   bool
}

// NewTypedef constructs a typedef entity naming t.
func NewTypedef(base Base, t *types.Type) *Typedef {
	base.kind = KindTypedef
	return &Typedef{Base: base, Type: t}
}

// Definition implements types.TypedefRef.
func (td *Typedef) Definition() *types.Type { return td.Type }
