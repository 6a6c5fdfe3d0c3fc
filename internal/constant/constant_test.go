package constant_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/constant"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

func intLit(v uint64) *ast.Literal {
	l := ast.NewLiteral(ast.NewExprBase(pos.None), ast.LiteralInteger, "")
	l.IntValue = v
	return l
}

func TestLiteralsAreConstant(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	if !c.IsConstantExpression(intLit(1)) {
		t.Fatalf("expected an integer literal to be constant")
	}
}

func TestAssignmentIsNeverConstant(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	assign := ast.NewBinary(ast.NewExprBase(pos.None), ast.Assign, intLit(1), intLit(2))
	if c.IsConstantExpression(assign) {
		t.Fatalf("expected an assignment expression not to be constant")
	}
}

func TestCommaIsNeverConstant(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	comma := ast.NewBinary(ast.NewExprBase(pos.None), ast.Comma, intLit(1), intLit(2))
	if c.IsConstantExpression(comma) {
		t.Fatalf("expected a comma expression not to be constant")
	}
}

func TestArithmeticRequiresBothOperandsConstant(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	add := ast.NewBinary(ast.NewExprBase(pos.None), ast.Add, intLit(1), intLit(2))
	if !c.IsConstantExpression(add) {
		t.Fatalf("expected 1 + 2 to be constant")
	}
}

func TestLogicalAndShortCircuitsOnFalseLeft(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	nonConstRight := ast.NewBinary(ast.NewExprBase(pos.None), ast.Comma, intLit(1), intLit(2))
	and := ast.NewBinary(ast.NewExprBase(pos.None), ast.LogicalAnd, intLit(0), nonConstRight)
	if !c.IsConstantExpression(and) {
		t.Fatalf("expected `0 && (non-constant)` to be constant via short-circuit")
	}
}

func TestLogicalAndRequiresRightWhenLeftIsTrue(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	nonConstRight := ast.NewBinary(ast.NewExprBase(pos.None), ast.Comma, intLit(1), intLit(2))
	and := ast.NewBinary(ast.NewExprBase(pos.None), ast.LogicalAnd, intLit(1), nonConstRight)
	if c.IsConstantExpression(and) {
		t.Fatalf("expected `1 && (non-constant)` not to be constant")
	}
}

func TestEnumValueReferenceIsConstant(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	syms := symbol.NewTable()
	intT := c_intType(t)
	ev := entity.NewEnumValue(entity.NewBase(entity.KindEnumValue, entity.NamespaceNormal, syms.Intern("RED"), pos.None), intT)
	ref := ast.NewReference(ast.NewExprBase(pos.None), ev)
	if !c.IsConstantExpression(ref) {
		t.Fatalf("expected an enum value reference to be constant")
	}
}

func c_intType(t *testing.T) *types.Type {
	t.Helper()
	return types.NewTable(config.Default()).MakeAtomic(types.Int, types.QualNone)
}

func TestVariableReferenceIsNotConstant(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	syms := symbol.NewTable()
	v := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, syms.Intern("x"), pos.None)})
	ref := ast.NewReference(ast.NewExprBase(pos.None), v)
	if c.IsConstantExpression(ref) {
		t.Fatalf("expected a plain variable reference not to be constant")
	}
}

func TestAddressOfStaticVariableIsAddressConstant(t *testing.T) {
	tb := types.NewTable(config.Default())
	c := constant.New(tb)
	syms := symbol.NewTable()
	v := entity.NewVariable(entity.Declaration{
		Base:         entity.NewBase(entity.KindVariable, entity.NamespaceNormal, syms.Intern("g"), pos.None),
		StorageClass: entity.StorageStatic,
	})
	ref := ast.NewReference(ast.NewExprBase(pos.None), v)
	addr := ast.NewUnary(ast.NewExprBase(pos.None), ast.UnaryAddress, ref)
	if !c.IsConstantExpression(addr) {
		t.Fatalf("expected &g for a static variable g to be constant")
	}
}

func TestAddressOfThreadLocalIsNotConstant(t *testing.T) {
	tb := types.NewTable(config.Default())
	c := constant.New(tb)
	syms := symbol.NewTable()
	v := entity.NewVariable(entity.Declaration{
		Base:         entity.NewBase(entity.KindVariable, entity.NamespaceNormal, syms.Intern("g"), pos.None),
		StorageClass: entity.StorageStatic,
	})
	v.ThreadLocal = true
	ref := ast.NewReference(ast.NewExprBase(pos.None), v)
	addr := ast.NewUnary(ast.NewExprBase(pos.None), ast.UnaryAddress, ref)
	if c.IsConstantExpression(addr) {
		t.Fatalf("expected &g for a thread-local g not to be constant")
	}
}

func TestConstantInitializerList(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	list := ast.NewInitList(ast.NewInitBase(pos.None), []ast.Initializer{
		ast.NewInitValue(ast.NewInitBase(pos.None), intLit(1)),
		ast.NewInitValue(ast.NewInitBase(pos.None), intLit(2)),
	})
	if !c.IsConstantInitializer(list) {
		t.Fatalf("expected a list of constant values to be a constant initializer")
	}
}

func TestConstantInitializerListRejectsNonConstantElement(t *testing.T) {
	c := constant.New(types.NewTable(config.Default()))
	syms := symbol.NewTable()
	v := entity.NewVariable(entity.Declaration{Base: entity.NewBase(entity.KindVariable, entity.NamespaceNormal, syms.Intern("x"), pos.None)})
	ref := ast.NewReference(ast.NewExprBase(pos.None), v)
	list := ast.NewInitList(ast.NewInitBase(pos.None), []ast.Initializer{
		ast.NewInitValue(ast.NewInitBase(pos.None), intLit(1)),
		ast.NewInitValue(ast.NewInitBase(pos.None), ref),
	})
	if c.IsConstantInitializer(list) {
		t.Fatalf("expected a list containing a non-constant element to be rejected")
	}
}
