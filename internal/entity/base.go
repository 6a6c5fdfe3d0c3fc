package entity

import (
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

// Entity is any named declaration that can live in a Scope: the Go
// counterpart of the common header every variant struct embeds.
type Entity interface {
	Kind() Kind
	Symbol() *symbol.Symbol
	Namespace() Namespace
	Pos() Position
	ParentScope() *Scope

	entityNode()
}

// Base is embedded by every concrete entity variant, providing the
// fields and accessors common to all of them.
type Base struct {
	kind      Kind
	namespace Namespace
	symbol    *symbol.Symbol
	position  Position
	parent    *Scope
}

// NewBase constructs the common header for a new entity.
func NewBase(kind Kind, ns Namespace, sym *symbol.Symbol, p Position) Base {
	return Base{kind: kind, namespace: ns, symbol: sym, position: p}
}

func (b *Base) Kind() Kind             { return b.kind }
func (b *Base) Symbol() *symbol.Symbol { return b.symbol }
func (b *Base) Namespace() Namespace   { return b.namespace }
func (b *Base) Pos() Position          { return b.position }
func (b *Base) ParentScope() *Scope    { return b.parent }

// SetParentScope records which scope an entity was inserted into; set
// once by Scope.Insert.
func (b *Base) SetParentScope(s *Scope) { b.parent = s }

func (b *Base) entityNode() {}

// AliasSymbol is the default: no mangling alias. Compound and Enum
// override this with their own anonymous-type alias.
func (b *Base) AliasSymbol() types.SymbolRef { return nil }

// EntitySymbol implements types.EntityRef, letting every Entity
// variant stand in directly as a compound/enum/typedef type's entity
// reference without a wrapper type.
func (b *Base) EntitySymbol() types.SymbolRef {
	if b.symbol == nil {
		return nil
	}
	return b.symbol
}
