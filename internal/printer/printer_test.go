package printer_test

import (
	"strings"
	"testing"

	"github.com/aryann/difflib"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/printer"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

func intLit(v uint64) *ast.Literal {
	l := ast.NewLiteral(ast.NewExprBase(pos.None), ast.LiteralInteger, "")
	l.IntValue = v
	l.Text = itoa(v)
	return l
}

func itoa(v uint64) string {
	if v == 0 {
		return "0"
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	return string(digits)
}

func TestPrintExprAddDoesNotParenthesize(t *testing.T) {
	add := ast.NewBinary(ast.NewExprBase(pos.None), ast.Add, intLit(1), intLit(2))
	if got := printer.PrintExpr(add); got != "1 + 2" {
		t.Fatalf("expected \"1 + 2\", got %q", got)
	}
}

func TestPrintExprMulOverAddParenthesizesLeft(t *testing.T) {
	add := ast.NewBinary(ast.NewExprBase(pos.None), ast.Add, intLit(1), intLit(2))
	mul := ast.NewBinary(ast.NewExprBase(pos.None), ast.Mul, add, intLit(3))
	if got := printer.PrintExpr(mul); got != "(1 + 2) * 3" {
		t.Fatalf("expected the lower-precedence left operand parenthesized, got %q", got)
	}
}

func TestPrintExprAssignmentIsRightAssociative(t *testing.T) {
	syms := symbol.NewTable()
	a := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, syms.Intern("a"), pos.None)})
	b := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, syms.Intern("b"), pos.None)})
	refA := ast.NewReference(ast.NewExprBase(pos.None), a)
	refB := ast.NewReference(ast.NewExprBase(pos.None), b)
	assign := ast.NewBinary(ast.NewExprBase(pos.None), ast.Assign, refA, refB)
	if got := printer.PrintExpr(assign); got != "a = b" {
		t.Fatalf("expected \"a = b\", got %q", got)
	}
}

func TestPrintExprCastParenthesizesType(t *testing.T) {
	tb := types.NewTable(config.Default())
	intT := tb.MakeAtomic(types.Int, types.QualNone)
	cast := ast.NewCast(ast.NewExprBase(pos.None), intT, intLit(1))
	if got := printer.PrintExpr(cast); got != "(int)1" {
		t.Fatalf("expected \"(int)1\", got %q", got)
	}
}

func TestPrintStmtReturn(t *testing.T) {
	ret := ast.NewReturn(ast.NewStmtBase(pos.None), intLit(0))
	got := printer.PrintStmt(ret)
	if strings.TrimSpace(got) != "return 0;" {
		t.Fatalf("expected \"return 0;\", got %q", got)
	}
}

func TestPrintTypePointerToConstChar(t *testing.T) {
	tb := types.NewTable(config.Default())
	charT := tb.MakeAtomic(types.Char, types.QualConst)
	ptr := tb.MakePointer(charT, types.QualNone)
	if got := printer.PrintType(ptr); got != "const char *" {
		t.Fatalf("expected \"const char *\", got %q", got)
	}
}

func TestPrintTypeArrayOfInt(t *testing.T) {
	tb := types.NewTable(config.Default())
	intT := tb.MakeAtomic(types.Int, types.QualNone)
	arr := tb.MakeArray(intT, 4, types.QualNone)
	if got := printer.PrintType(arr); got != "int [4]" {
		t.Fatalf("expected \"int [4]\", got %q", got)
	}
}

func TestRoundTripDiffIsEmptyForIdenticalSource(t *testing.T) {
	add := ast.NewBinary(ast.NewExprBase(pos.None), ast.Add, intLit(1), intLit(2))
	first := printer.PrintExpr(add)
	second := printer.PrintExpr(add)

	diff := difflib.Diff(strings.Split(first, "\n"), strings.Split(second, "\n"))
	for _, d := range diff {
		if d.Delta != difflib.Common {
			t.Fatalf("expected no diff between two printings of the same expression, got %v", d)
		}
	}
}
