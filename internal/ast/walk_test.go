package ast_test

import (
	"testing"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/pos"
)

func TestWalkVisitsBinaryOperands(t *testing.T) {
	p := pos.Position{}
	left := ast.NewLiteral(ast.NewExprBase(p), ast.LiteralInteger, "1")
	right := ast.NewLiteral(ast.NewExprBase(p), ast.LiteralInteger, "2")
	add := ast.NewBinary(ast.NewExprBase(p), ast.Add, left, right)

	var visited []ast.Node
	ast.Walk(add, func(n ast.Node) bool {
		visited = append(visited, n)
		return true
	})

	if len(visited) != 3 {
		t.Fatalf("expected 3 visited nodes (binary + 2 operands), got %d", len(visited))
	}
	if visited[0] != ast.Node(add) {
		t.Fatalf("expected the binary expression visited first")
	}
}

func TestWalkStopsDescendingWhenFnReturnsFalse(t *testing.T) {
	p := pos.Position{}
	operand := ast.NewLiteral(ast.NewExprBase(p), ast.LiteralInteger, "1")
	neg := ast.NewUnary(ast.NewExprBase(p), ast.UnaryNegate, operand)

	count := 0
	ast.Walk(neg, func(n ast.Node) bool {
		count++
		return false
	})

	if count != 1 {
		t.Fatalf("expected Walk to stop after the root when fn returns false, visited %d nodes", count)
	}
}

func TestWalkTraversesBlockStatements(t *testing.T) {
	p := pos.Position{}
	lit := ast.NewLiteral(ast.NewExprBase(p), ast.LiteralInteger, "0")
	ret := ast.NewReturn(ast.NewStmtBase(p), lit)
	block := ast.NewBlock(ast.NewStmtBase(p), nil, []ast.Stmt{ret})

	var kinds []string
	ast.Walk(block, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.Block:
			kinds = append(kinds, "block")
		case *ast.Return:
			kinds = append(kinds, "return")
		case *ast.Literal:
			kinds = append(kinds, "literal")
		}
		return true
	})

	want := []string{"block", "return", "literal"}
	if len(kinds) != len(want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, kinds)
		}
	}
}

func TestConditionalWithOmittedThenBranch(t *testing.T) {
	p := pos.Position{}
	cond := ast.NewLiteral(ast.NewExprBase(p), ast.LiteralInteger, "1")
	els := ast.NewLiteral(ast.NewExprBase(p), ast.LiteralInteger, "2")
	gnuCond := ast.NewConditional(ast.NewExprBase(p), cond, nil, els)

	count := 0
	ast.Walk(gnuCond, func(n ast.Node) bool {
		count++
		return true
	})

	if count != 3 {
		t.Fatalf("expected 3 nodes visited (conditional, cond, else) with nil then, got %d", count)
	}
}
