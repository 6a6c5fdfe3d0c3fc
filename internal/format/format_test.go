package format_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/diag"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/format"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

func callTo(name string, syms *symbol.Table, args ...ast.Expr) *ast.Call {
	fn := entity.NewFunction(entity.Declaration{
		Base: entity.NewBase(entity.KindFunction, entity.NamespaceNormal, syms.Intern(name), pos.None),
	}, nil)
	callee := ast.NewReference(ast.NewExprBase(pos.None), fn)
	return ast.NewCall(ast.NewExprBase(pos.None), callee, args)
}

func strLit(s string) *ast.StringLiteral {
	return ast.NewStringLiteral(ast.NewExprBase(pos.None), symbol.NewNarrow([]byte(s)))
}

func typed(e ast.Expr, t *types.Type) ast.Expr {
	e.SetExprType(t)
	return e
}

func intLit(tb *types.Table) ast.Expr {
	l := ast.NewLiteral(ast.NewExprBase(pos.None), ast.LiteralInteger, "1")
	l.IntValue = 1
	return typed(l, tb.MakeAtomic(types.Int, types.QualNone))
}

func collect(t *testing.T, call *ast.Call, tb *types.Table) []string {
	t.Helper()
	c := diag.NewCollector()
	format.CheckFormat(call, tb, c, diag.AllWarnings())
	msgs := make([]string, len(c.Diagnostics))
	for i, d := range c.Diagnostics {
		msgs[i] = d.Message
	}
	return msgs
}

func TestMatchingIntArgumentProducesNoDiagnostic(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("printf", syms, strLit("%d\n"), intLit(tb))
	if msgs := collect(t, call, tb); len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
}

func TestMismatchedArgumentTypeWarns(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	strArg := typed(strLit("oops"), tb.MakePointer(tb.MakeAtomic(types.Char, types.QualConst), types.QualNone))
	call := callTo("printf", syms, strLit("%d\n"), strArg)
	msgs := collect(t, call, tb)
	if len(msgs) == 0 {
		t.Fatalf("expected a type-mismatch diagnostic")
	}
}

func TestTooFewArgumentsWarns(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("printf", syms, strLit("%d %d\n"), intLit(tb))
	msgs := collect(t, call, tb)
	if len(msgs) == 0 {
		t.Fatalf("expected a too-few-arguments diagnostic")
	}
}

func TestExtraArgumentsWarns(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("printf", syms, strLit("%d\n"), intLit(tb), intLit(tb))
	msgs := collect(t, call, tb)
	if len(msgs) == 0 {
		t.Fatalf("expected an argument-but-only-N-specifiers diagnostic")
	}
}

func TestPercentPercentIsNotAConversion(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("printf", syms, strLit("100%%\n"))
	if msgs := collect(t, call, tb); len(msgs) != 0 {
		t.Fatalf("expected no diagnostics for a literal %%%%, got %v", msgs)
	}
}

func TestRepeatedFlagWarns(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("printf", syms, strLit("%--d\n"), intLit(tb))
	msgs := collect(t, call, tb)
	if len(msgs) == 0 {
		t.Fatalf("expected a repeated-flag diagnostic")
	}
}

func TestScanfRequiresPointerArgument(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("scanf", syms, strLit("%d"), intLit(tb))
	msgs := collect(t, call, tb)
	if len(msgs) == 0 {
		t.Fatalf("expected a diagnostic for a non-pointer scanf argument")
	}
}

func TestScanfMatchingPointerArgumentProducesNoDiagnostic(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	ptrArg := typed(intLit(tb), tb.MakePointer(tb.MakeAtomic(types.Int, types.QualNone), types.QualNone))
	call := callTo("scanf", syms, strLit("%d"), ptrArg)
	if msgs := collect(t, call, tb); len(msgs) != 0 {
		t.Fatalf("expected no diagnostics, got %v", msgs)
	}
}

func TestUnknownNameIsNotChecked(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("not_a_format_function", syms, strLit("%d\n"))
	if msgs := collect(t, call, tb); len(msgs) != 0 {
		t.Fatalf("expected no diagnostics for an unrecognized function, got %v", msgs)
	}
}

func TestEmbeddedNULWarns(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("printf", syms, strLit("%d\x00trailing"), intLit(tb))
	msgs := collect(t, call, tb)
	found := false
	for _, m := range msgs {
		if m == "format string contains '\\0'" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an embedded-NUL diagnostic, got %v", msgs)
	}
}

func TestWarnFormatDisabledSkipsChecking(t *testing.T) {
	tb := types.NewTable(config.Default())
	syms := symbol.NewTable()
	call := callTo("printf", syms, strLit("%d\n"))
	c := diag.NewCollector()
	format.CheckFormat(call, tb, c, diag.NewWarningFlags())
	if len(c.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics when format warnings are disabled")
	}
}
