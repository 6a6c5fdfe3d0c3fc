package types_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/types"
)

func TestIdentifyIsIdempotent(t *testing.T) {
	tb := types.NewTable(config.Default())

	a := tb.MakeAtomic(types.Int, types.QualNone)
	b := tb.MakeAtomic(types.Int, types.QualNone)

	if a != b {
		t.Fatalf("expected identical atomic types to share one pointer, got %p and %p", a, b)
	}
}

func TestIdentifyDistinguishesQualifiers(t *testing.T) {
	tb := types.NewTable(config.Default())

	plain := tb.MakeAtomic(types.Int, types.QualNone)
	cnst := tb.MakeAtomic(types.Int, types.QualConst)

	if plain == cnst {
		t.Fatalf("expected const int to be distinct from int")
	}
}

func TestPointerIdentityNestsCorrectly(t *testing.T) {
	tb := types.NewTable(config.Default())

	intType := tb.MakeAtomic(types.Int, types.QualNone)
	p1 := tb.MakePointer(intType, types.QualNone)
	p2 := tb.MakePointer(intType, types.QualNone)

	if p1 != p2 {
		t.Fatalf("expected pointer-to-int to be canonicalized once")
	}
	if p1.PointsTo() != intType {
		t.Fatalf("expected pointer to point at the canonical int type")
	}
}

func TestArrayQualifierProxiesToElement(t *testing.T) {
	tb := types.NewTable(config.Default())

	elem := tb.MakeAtomic(types.Char, types.QualConst)
	arr := tb.MakeArray(elem, 10, types.QualNone)

	if arr.Qualifiers() != types.QualConst {
		t.Fatalf("expected array qualifiers to proxy to element, got %v", arr.Qualifiers())
	}
}

func TestGetQualifiedOnArrayRequalifiesElement(t *testing.T) {
	tb := types.NewTable(config.Default())

	elem := tb.MakeAtomic(types.Char, types.QualNone)
	arr := tb.MakeArray(elem, 4, types.QualNone)

	qualified := tb.GetQualified(arr, types.QualConst)

	if qualified.Element().Qualifiers() != types.QualConst {
		t.Fatalf("expected requalified array's element to carry const")
	}
	if qualified.Qualifiers() != types.QualConst {
		t.Fatalf("expected requalified array to report const through proxy")
	}
}

func TestTypesCompatibleFunctionUnspecifiedParameters(t *testing.T) {
	tb := types.NewTable(config.Default())

	ret := tb.MakeAtomic(types.Int, types.QualNone)
	withParams := tb.MakeFunction(ret, []types.FunctionParameter{
		{Type: tb.MakeAtomic(types.Int, types.QualNone)},
	}, false, config.CCCdecl, types.LinkageC)
	unspecified := tb.MakeFunctionUnspecified(ret, config.CCCdecl, types.LinkageC)

	if !types.TypesCompatible(tb, withParams, unspecified) {
		t.Fatalf("expected non-prototype function type to be compatible with any parameter list")
	}
}

func TestTypesCompatibleCompoundFallsBackToEntityIdentity(t *testing.T) {
	tb := types.NewTable(config.Default())

	entA := &stubEntity{name: "point"}
	entB := &stubEntity{name: "point"}

	sA := tb.MakeCompoundStruct(entA, types.QualNone)
	sA2 := tb.MakeCompoundStruct(entA, types.QualNone)
	sB := tb.MakeCompoundStruct(entB, types.QualNone)

	if !types.TypesCompatible(tb, sA, sA2) {
		t.Fatalf("expected same-entity struct types to be compatible")
	}
	if types.TypesCompatible(tb, sA, sB) {
		t.Fatalf("expected distinct entities with identical names to be incompatible")
	}
}

func TestSkipTyperefWalksTypedefChain(t *testing.T) {
	tb := types.NewTable(config.Default())

	base := tb.MakeAtomic(types.Int, types.QualNone)
	td := &stubTypedef{def: base}
	aliased := tb.MakeTypedef(td, types.QualNone)

	if types.SkipTyperef(aliased) != base {
		t.Fatalf("expected SkipTyperef to resolve through the typedef to the base atomic type")
	}
}

func TestFindIntKindForSizeIsMemoized(t *testing.T) {
	tb := types.NewTable(config.Default())

	k1, ok1 := tb.SignedIntKindForSize(4)
	k2, ok2 := tb.SignedIntKindForSize(4)

	if !ok1 || !ok2 {
		t.Fatalf("expected a 4-byte signed integer kind to exist under the default machine")
	}
	if k1 != k2 {
		t.Fatalf("expected memoized lookup to return the same kind across calls")
	}
	if k1 != types.Int {
		t.Fatalf("expected 4-byte signed kind to be Int under the default 32-bit machine, got %v", k1)
	}
}

func TestGetTypeSizeAtomicAndPointer(t *testing.T) {
	tb := types.NewTable(config.Default())

	intType := tb.MakeAtomic(types.Int, types.QualNone)
	ptrType := tb.MakePointer(intType, types.QualNone)

	if got := tb.GetTypeSize(intType, nil); got != 4 {
		t.Fatalf("expected int size 4 on the default 32-bit machine, got %d", got)
	}
	if got := tb.GetTypeSize(ptrType, nil); got != 4 {
		t.Fatalf("expected pointer size 4 on the default 32-bit machine, got %d", got)
	}
}

func TestGetTypeSizeArray(t *testing.T) {
	tb := types.NewTable(config.Default())

	elem := tb.MakeAtomic(types.Int, types.QualNone)
	arr := tb.MakeArray(elem, 10, types.QualNone)

	if got := tb.GetTypeSize(arr, nil); got != 40 {
		t.Fatalf("expected array of 10 ints to size 40 bytes, got %d", got)
	}
}

type stubEntity struct {
	name string
}

func (e *stubEntity) EntitySymbol() types.SymbolRef { return stubSymbol(e.name) }
func (e *stubEntity) AliasSymbol() types.SymbolRef   { return nil }

type stubSymbol string

func (s stubSymbol) Text() string { return string(s) }

type stubTypedef struct {
	def *types.Type
}

func (td *stubTypedef) EntitySymbol() types.SymbolRef { return nil }
func (td *stubTypedef) AliasSymbol() types.SymbolRef   { return nil }
func (td *stubTypedef) Definition() *types.Type        { return td.def }
