package unit_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/diag"
	"github.com/cparsecore/cparsecore/internal/types"
	"github.com/cparsecore/cparsecore/internal/unit"
)

func TestNewContextStampsAUniqueID(t *testing.T) {
	a := unit.New(config.Default(), diag.AllWarnings())
	b := unit.New(config.Default(), diag.AllWarnings())
	if a.ID == b.ID {
		t.Fatalf("expected two Contexts to get distinct IDs")
	}
}

func TestSizeOfAtomicTypeNeedsNoLayoutLookup(t *testing.T) {
	c := unit.New(config.Default(), diag.AllWarnings())
	intT := c.Types.MakeAtomic(types.Int, types.QualNone)
	if got := c.SizeOf(intT); got != 4 {
		t.Fatalf("expected a 32-bit int to be 4 bytes, got %d", got)
	}
}

func TestLayoutLookupRejectsANonCompoundRef(t *testing.T) {
	c := unit.New(config.Default(), diag.AllWarnings())
	lookup := c.LayoutLookup()
	if lookup == nil {
		t.Fatalf("expected a non-nil LayoutLookup")
	}
	if _, ok := lookup(nil); ok {
		t.Fatalf("expected lookup of a non-entity.Compound ref to fail")
	}
}

func TestResetClearsArenaAccounting(t *testing.T) {
	c := unit.New(config.Default(), diag.AllWarnings())
	c.Types.MakeAtomic(types.Int, types.QualNone)
	c.Arena.Reset()
	if c.Arena.Count() != 0 {
		t.Fatalf("expected arena count to be cleared after Reset")
	}
}
