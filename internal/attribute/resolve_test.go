package attribute_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/attribute"
	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

func TestResolvePackedSetsFlagWithoutChangingType(t *testing.T) {
	tb := types.NewTable(config.Default())
	base := tb.MakeAtomic(types.Int, types.QualNone)

	res := attribute.Resolve(tb, base, []attribute.Attribute{{Kind: attribute.KindPacked}})

	if !res.Packed {
		t.Fatalf("expected KindPacked to set Packed")
	}
	if res.Type != base {
		t.Fatalf("expected a plain packed attribute to leave the type unchanged")
	}
}

func TestResolveAlignedWithExplicitArgument(t *testing.T) {
	tb := types.NewTable(config.Default())
	base := tb.MakeAtomic(types.Int, types.QualNone)

	res := attribute.Resolve(tb, base, []attribute.Attribute{
		{Kind: attribute.KindAligned, Args: []attribute.Argument{{IsInt: true, IntValue: 32}}},
	})

	if res.Aligned != 32 {
		t.Fatalf("expected explicit alignment 32, got %d", res.Aligned)
	}
}

func TestResolveAlignedWithoutArgumentUsesMaxNatural(t *testing.T) {
	tb := types.NewTable(config.Default())
	base := tb.MakeAtomic(types.Int, types.QualNone)

	res := attribute.Resolve(tb, base, []attribute.Attribute{{Kind: attribute.KindAligned}})

	if res.Aligned == 0 {
		t.Fatalf("expected a bare aligned attribute to request a nonzero alignment")
	}
}

func TestResolveStdcallRetargetsFunctionType(t *testing.T) {
	tb := types.NewTable(config.Default())
	voidType := tb.MakeAtomic(types.Void, types.QualNone)
	fn := tb.MakeFunction(voidType, nil, false, config.CCCdecl, types.LinkageC)

	res := attribute.Resolve(tb, fn, []attribute.Attribute{{Kind: attribute.KindStdcall}})

	if res.Modifiers&attribute.ModStdcall == 0 {
		t.Fatalf("expected ModStdcall to be set")
	}
	if res.Type.CallingConvention() != config.CCStdcall {
		t.Fatalf("expected the function type to be retargeted to stdcall")
	}
}

func TestResolveModeRetargetsIntegerWidth(t *testing.T) {
	tb := types.NewTable(config.Default())
	base := tb.MakeAtomic(types.Int, types.QualNone)
	table := symbol.NewTable()
	byteMode := table.Intern("QI")

	res := attribute.Resolve(tb, base, []attribute.Attribute{
		{Kind: attribute.KindMode, Args: []attribute.Argument{{Identifier: byteMode}}},
	})

	if types.GetAtomicSize(res.Type.AtomicKind(), tb.Machine()) != 1 {
		t.Fatalf("expected mode(QI) to retarget to a 1-byte integer kind")
	}
}

func TestResolveUnknownModeLeavesTypeUnchanged(t *testing.T) {
	tb := types.NewTable(config.Default())
	base := tb.MakeAtomic(types.Int, types.QualNone)
	table := symbol.NewTable()
	bogus := table.Intern("bogus")

	res := attribute.Resolve(tb, base, []attribute.Attribute{
		{Kind: attribute.KindMode, Args: []attribute.Argument{{Identifier: bogus}}},
	})

	if res.Type != base {
		t.Fatalf("expected an unrecognized mode name to leave the type unchanged")
	}
}

func TestResolveAccumulatesPlainModifierFlags(t *testing.T) {
	tb := types.NewTable(config.Default())
	base := tb.MakeAtomic(types.Int, types.QualNone)

	res := attribute.Resolve(tb, base, []attribute.Attribute{
		{Kind: attribute.KindUnused},
		{Kind: attribute.KindDeprecated},
	})

	if res.Modifiers&attribute.ModUnused == 0 || res.Modifiers&attribute.ModDeprecated == 0 {
		t.Fatalf("expected both ModUnused and ModDeprecated to be set, got %v", res.Modifiers)
	}
}
