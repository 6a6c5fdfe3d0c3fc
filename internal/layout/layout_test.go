package layout_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/layout"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

func newMember(tb *types.Table, syms *symbol.Table, name string, t *types.Type) *entity.CompoundMember {
	m := entity.NewCompoundMember(entity.Declaration{
		Base:     entity.NewBase(entity.KindCompoundMember, entity.NamespaceNormal, syms.Intern(name), pos.None),
		DeclType: t,
	})
	return m
}

func newStruct(tb *types.Table, syms *symbol.Table, name string, members ...*entity.CompoundMember) *entity.Compound {
	scope := entity.NewScope(nil)
	c := entity.NewCompound(entity.NewBase(entity.KindStruct, entity.NamespaceTag, syms.Intern(name), pos.None), scope)
	c.Complete = true
	for _, m := range members {
		scope.Insert(m)
	}
	return c
}

func TestLayoutStructPadsForAlignment(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()

	char := tb.MakeAtomic(types.Char, types.QualNone)
	intT := tb.MakeAtomic(types.Int, types.QualNone)

	c := newStruct(tb, syms, "s",
		newMember(tb, syms, "a", char),
		newMember(tb, syms, "b", intT),
	)

	eng := layout.New(tb, nil, nil)
	l, ok := eng.Layout(c)
	if !ok {
		t.Fatalf("expected a complete struct to lay out successfully")
	}
	if l.Alignment() != 4 {
		t.Fatalf("expected struct alignment 4 (int's alignment), got %d", l.Alignment())
	}
	if l.Size() != 8 {
		t.Fatalf("expected size 8 (1 byte + 3 pad + 4 bytes), got %d", l.Size())
	}

	members := c.Members.Entities
	b := members[1].(*entity.CompoundMember)
	if b.Offset != 4 {
		t.Fatalf("expected b at offset 4, got %d", b.Offset)
	}
}

func TestLayoutPackedStructHasNoPadding(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()

	char := tb.MakeAtomic(types.Char, types.QualNone)
	intT := tb.MakeAtomic(types.Int, types.QualNone)

	c := newStruct(tb, syms, "s",
		newMember(tb, syms, "a", char),
		newMember(tb, syms, "b", intT),
	)
	c.Packed = true

	eng := layout.New(tb, nil, nil)
	l, ok := eng.Layout(c)
	if !ok {
		t.Fatalf("expected layout to succeed")
	}
	if l.Size() != 5 {
		t.Fatalf("expected packed size 5 (no padding), got %d", l.Size())
	}
}

func TestLayoutUnionTakesLargestMember(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()

	char := tb.MakeAtomic(types.Char, types.QualNone)
	intT := tb.MakeAtomic(types.Int, types.QualNone)

	scope := entity.NewScope(nil)
	c := entity.NewCompound(entity.NewBase(entity.KindUnion, entity.NamespaceTag, syms.Intern("u"), pos.None), scope)
	c.Complete = true
	scope.Insert(newMember(tb, syms, "a", char))
	scope.Insert(newMember(tb, syms, "b", intT))

	eng := layout.New(tb, nil, nil)
	l, ok := eng.Layout(c)
	if !ok {
		t.Fatalf("expected layout to succeed")
	}
	if l.Size() != 4 || l.Alignment() != 4 {
		t.Fatalf("expected union to take int's size/alignment, got size=%d align=%d", l.Size(), l.Alignment())
	}
}

func TestLayoutIncompleteCompoundFails(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	scope := entity.NewScope(nil)
	c := entity.NewCompound(entity.NewBase(entity.KindStruct, entity.NamespaceTag, syms.Intern("s"), pos.None), scope)

	eng := layout.New(tb, nil, nil)
	if _, ok := eng.Layout(c); ok {
		t.Fatalf("expected an incomplete struct to fail layout")
	}
}

func TestLayoutPacksConsecutiveBitfields(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()

	intT := tb.MakeAtomic(types.Int, types.QualNone)
	bf1 := tb.MakeBitfield(intT, 3, nil)
	bf2 := tb.MakeBitfield(intT, 5, nil)

	c := newStruct(tb, syms, "bits",
		newMember(tb, syms, "a", bf1),
		newMember(tb, syms, "b", bf2),
	)

	eng := layout.New(tb, nil, nil)
	l, ok := eng.Layout(c)
	if !ok {
		t.Fatalf("expected layout to succeed")
	}
	if l.Size() != 4 {
		t.Fatalf("expected the two bit-fields to share one int-sized storage unit, got size %d", l.Size())
	}

	members := c.Members.Entities
	a := members[0].(*entity.CompoundMember)
	b := members[1].(*entity.CompoundMember)
	if a.Offset != b.Offset {
		t.Fatalf("expected both bit-fields to share the same byte offset, got %d and %d", a.Offset, b.Offset)
	}
	if a.BitOffset == b.BitOffset {
		t.Fatalf("expected distinct bit offsets within the shared storage unit")
	}
}

func TestLayoutCachesResult(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	intT := tb.MakeAtomic(types.Int, types.QualNone)
	c := newStruct(tb, syms, "s", newMember(tb, syms, "a", intT))

	eng := layout.New(tb, nil, nil)
	l1, _ := eng.Layout(c)
	l2, _ := eng.Layout(c)
	if l1 != l2 {
		t.Fatalf("expected repeated Layout calls to return the cached result")
	}
}
