package entity_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
)

func TestScopeLookupWalksParentChain(t *testing.T) {
	table := symbol.NewTable()
	name := table.Intern("x")

	outer := entity.NewScope(nil)
	outerVar := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, name, pos.None)})
	outer.Insert(outerVar)

	inner := entity.NewScope(outer)

	found := inner.Lookup(name, entity.NamespaceNormal)
	if found != entity.Entity(outerVar) {
		t.Fatalf("expected inner scope lookup to find the outer declaration of x")
	}
}

func TestScopeInsertShadowsOuterDeclaration(t *testing.T) {
	table := symbol.NewTable()
	name := table.Intern("x")

	outer := entity.NewScope(nil)
	outerVar := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, name, pos.None)})
	outer.Insert(outerVar)

	inner := entity.NewScope(outer)
	innerVar := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, name, pos.None)})
	inner.Insert(innerVar)

	found := inner.Lookup(name, entity.NamespaceNormal)
	if found != entity.Entity(innerVar) {
		t.Fatalf("expected the inner declaration of x to shadow the outer one")
	}
	if inner.LookupLocal(name, entity.NamespaceNormal) != entity.Entity(innerVar) {
		t.Fatalf("expected LookupLocal to find the inner declaration")
	}
}

func TestScopeNamespacesDoNotCollide(t *testing.T) {
	table := symbol.NewTable()
	name := table.Intern("point")

	scope := entity.NewScope(nil)
	tag := entity.NewCompound(entity.NewBase(entity.KindStruct, entity.NamespaceTag, name, pos.None), entity.NewScope(nil))
	ordinary := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, name, pos.None)})
	scope.Insert(tag)
	scope.Insert(ordinary)

	if scope.Lookup(name, entity.NamespaceTag) != entity.Entity(tag) {
		t.Fatalf("expected tag-namespace lookup to find the struct tag")
	}
	if scope.Lookup(name, entity.NamespaceNormal) != entity.Entity(ordinary) {
		t.Fatalf("expected ordinary-namespace lookup to find the variable")
	}
}

func TestInsertSetsParentScope(t *testing.T) {
	table := symbol.NewTable()
	name := table.Intern("x")

	scope := entity.NewScope(nil)
	v := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, name, pos.None)})
	scope.Insert(v)

	if v.ParentScope() != scope {
		t.Fatalf("expected Insert to record the owning scope")
	}
}
