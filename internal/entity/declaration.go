package entity

import (
	"github.com/cparsecore/cparsecore/internal/attribute"
	"github.com/cparsecore/cparsecore/internal/types"
)

// Declaration is embedded by every entity variant that carries a type
// and storage-class information: variables, parameters, compound
// members, and functions.
type Declaration struct {
	Base
	DeclType             *types.Type
	DeclaredStorageClass StorageClass
	StorageClass         StorageClass
	Modifiers            DeclModifiers
	Alignment            int
	Attributes           []*attribute.Attribute
	Used                 bool
	Implicit             bool
}

// Variable is a file- or block-scope
// object declaration, with an optional initializer set by whoever
// builds the AST (typed interface{} since the initializer lives in
// internal/ast and would otherwise cycle back here).
type Variable struct {
	Declaration
	ThreadLocal  bool
	Restrict     bool
	Deprecated   bool
	Noalias      bool
	AddressTaken bool
	Read         bool
	Initializer  interface{} // *ast.Initializer, set by the owning pass
}

// NewVariable constructs a variable entity.
func NewVariable(decl Declaration) *Variable {
	decl.kind = KindVariable
	return &Variable{Declaration: decl}
}

// Parameter is a function parameter,
// scoped to the function's parameter scope.
type Parameter struct {
	Declaration
	AddressTaken bool
	Read         bool
}

// NewParameter constructs a parameter entity.
func NewParameter(decl Declaration) *Parameter {
	decl.kind = KindParameter
	return &Parameter{Declaration: decl}
}

// CompoundMember is a struct or
// union field, carrying the byte/bit offsets internal/layout computes.
type CompoundMember struct {
	Declaration
	Read         bool
	AddressTaken bool
	Offset       int
	BitOffset    int
}

// NewCompoundMember constructs a compound-member entity.
func NewCompoundMember(decl Declaration) *CompoundMember {
	decl.kind = KindCompoundMember
	return &CompoundMember{Declaration: decl}
}
