package mangle_test

import (
	"strings"
	"testing"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/mangle"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

func TestCreateNameLinuxELFKeepsCLinkageSpelling(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	intT := tb.MakeAtomic(types.Int, types.QualNone)
	fnType := tb.MakeFunction(intT, nil, false, config.CCCdecl, types.LinkageC)

	fn := entity.NewFunction(entity.Declaration{
		Base:     entity.NewBase(entity.KindFunction, entity.NamespaceNormal, syms.Intern("main"), pos.None),
		DeclType: fnType,
	}, nil)

	if got := mangle.CreateNameLinuxELF(fn); got != "main" {
		t.Fatalf("expected a C-linkage function to keep its plain name, got %q", got)
	}
}

func TestCreateNameLinuxELFManglesCXXLinkage(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	voidT := tb.MakeAtomic(types.Void, types.QualNone)
	intT := tb.MakeAtomic(types.Int, types.QualNone)
	fnType := tb.MakeFunction(voidT, []types.FunctionParameter{{Type: intT}}, false, config.CCCdecl, types.LinkageCXX)

	fn := entity.NewFunction(entity.Declaration{
		Base:     entity.NewBase(entity.KindFunction, entity.NamespaceNormal, syms.Intern("frob"), pos.None),
		DeclType: fnType,
	}, nil)

	got := mangle.CreateNameLinuxELF(fn)
	if !strings.HasPrefix(got, "_Z4frob") {
		t.Fatalf("expected an Itanium-mangled name starting with _Z4frob, got %q", got)
	}
	if !strings.HasSuffix(got, "i") {
		t.Fatalf("expected the mangled name to end with the int parameter code 'i', got %q", got)
	}
}

func TestCreateNameLinuxELFVoidParameterList(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	voidT := tb.MakeAtomic(types.Void, types.QualNone)
	fnType := tb.MakeFunction(voidT, nil, false, config.CCCdecl, types.LinkageCXX)

	fn := entity.NewFunction(entity.Declaration{
		Base:     entity.NewBase(entity.KindFunction, entity.NamespaceNormal, syms.Intern("reset"), pos.None),
		DeclType: fnType,
	}, nil)

	got := mangle.CreateNameLinuxELF(fn)
	if !strings.HasSuffix(got, "v") {
		t.Fatalf("expected a no-parameter function to mangle its parameter list as 'v', got %q", got)
	}
}

func TestCreateNameMachoPrependsUnderscore(t *testing.T) {
	syms := symbol.NewTable()
	v := entity.NewVariable(entity.Declaration{
		Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, syms.Intern("counter"), pos.None),
	})
	if got := mangle.CreateNameMacho(v); got != "_counter" {
		t.Fatalf("expected _counter, got %q", got)
	}
}

func TestCreateNameWin32StdcallDecoration(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	voidT := tb.MakeAtomic(types.Void, types.QualNone)
	intT := tb.MakeAtomic(types.Int, types.QualNone)
	fnType := tb.MakeFunction(voidT, []types.FunctionParameter{{Type: intT}}, false, config.CCStdcall, types.LinkageC)

	fn := entity.NewFunction(entity.Declaration{
		Base:     entity.NewBase(entity.KindFunction, entity.NamespaceNormal, syms.Intern("Callback"), pos.None),
		DeclType: fnType,
	}, nil)

	got := mangle.CreateNameWin32(fn, tb)
	if !strings.HasPrefix(got, "_Callback@") {
		t.Fatalf("expected stdcall decoration _Callback@N, got %q", got)
	}
}

func TestCreateNameWin32DllimportPrefix(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	voidT := tb.MakeAtomic(types.Void, types.QualNone)
	fnType := tb.MakeFunction(voidT, nil, false, config.CCCdecl, types.LinkageC)

	fn := entity.NewFunction(entity.Declaration{
		Base:      entity.NewBase(entity.KindFunction, entity.NamespaceNormal, syms.Intern("imported"), pos.None),
		DeclType:  fnType,
		Modifiers: entity.DMDllimport,
	}, nil)

	got := mangle.CreateNameWin32(fn, tb)
	if !strings.HasPrefix(got, "__imp_") {
		t.Fatalf("expected a dllimport prefix, got %q", got)
	}
}
