package entity

import "github.com/cparsecore/cparsecore/internal/symbol"

// Scope holds the entities declared at one lexical level: file scope,
// a function's parameter/block scope, or a compound type's member
// list. Entities preserve
// declaration order (Entities) alongside O(1) lookup by symbol within
// just this scope (bySymbol) — Lookup walks outward through Parent for
// the usual C shadowing rule.
type Scope struct {
	Parent   *Scope
	Entities []Entity
	bySymbol map[*symbol.Symbol][]Entity
}

// NewScope returns an empty scope nested in parent (nil for file scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, bySymbol: make(map[*symbol.Symbol][]Entity)}
}

// Insert appends e to the scope's declaration order and index, and
// records the scope as e's parent. Multiple entities may share one
// symbol within a scope — ordinary identifiers, tags, and labels
// occupy independent Namespace partitions of the same symbol — so
// Lookup filters by namespace to disambiguate.
func (s *Scope) Insert(e Entity) {
	s.Entities = append(s.Entities, e)
	sym := e.Symbol()
	s.bySymbol[sym] = append(s.bySymbol[sym], e)
	if b, ok := e.(interface{ SetParentScope(*Scope) }); ok {
		b.SetParentScope(s)
	}
}

// Lookup finds the innermost entity named sym in namespace ns,
// searching this scope and then each enclosing Parent in turn.
func (s *Scope) Lookup(sym *symbol.Symbol, ns Namespace) Entity {
	for scope := s; scope != nil; scope = scope.Parent {
		for _, e := range scope.bySymbol[sym] {
			if e.Namespace() == ns {
				return e
			}
		}
	}
	return nil
}

// LookupLocal is Lookup restricted to this scope, without searching
// enclosing scopes — used for C's "redeclaration in the same scope"
// diagnostics.
func (s *Scope) LookupLocal(sym *symbol.Symbol, ns Namespace) Entity {
	for _, e := range s.bySymbol[sym] {
		if e.Namespace() == ns {
			return e
		}
	}
	return nil
}
