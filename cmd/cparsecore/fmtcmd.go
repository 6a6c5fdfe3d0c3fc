package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aryann/difflib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/printer"
	"github.com/cparsecore/cparsecore/internal/unit"
)

var fmtCompareFile string
var fmtDiff bool

var fmtCmd = &cobra.Command{
	Use:   "fmt",
	Short: "Pretty-print a synthetic demonstration function body",
	Long: `fmt renders a small built-in function body through the
pretty-printer. With --compare, it diffs that output against an
existing file's contents line by line (mirroring "caddy fmt --diff"),
which is useful for pinning the printer's exact output in a golden
file without re-running the driver every time.`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().StringVar(&fmtCompareFile, "compare", "", "diff the rendered output against this file's contents")
	fmtCmd.Flags().BoolVar(&fmtDiff, "diff", false, "show the diff instead of just a match/mismatch verdict (requires --compare)")
}

// demoBody builds `if (1 > 2) { return 1; } return 2;`, a small but
// non-trivial statement tree exercising the precedence-aware
// expression printer and the statement printer's block/if/return
// cases together.
func demoBody() *ast.Block {
	a := ast.NewLiteral(ast.NewExprBase(pos.None), ast.LiteralInteger, "1")
	a.IntValue = 1
	b := ast.NewLiteral(ast.NewExprBase(pos.None), ast.LiteralInteger, "2")
	b.IntValue = 2

	cond := ast.NewBinary(ast.NewExprBase(pos.None), ast.Greater, a, b)
	thenReturn := ast.NewReturn(ast.NewStmtBase(pos.None), a)
	thenBlock := ast.NewBlock(ast.NewStmtBase(pos.None), nil, []ast.Stmt{thenReturn})
	ifStmt := ast.NewIf(ast.NewStmtBase(pos.None), cond, thenBlock, nil)
	elseReturn := ast.NewReturn(ast.NewStmtBase(pos.None), b)

	return ast.NewBlock(ast.NewStmtBase(pos.None), nil, []ast.Stmt{ifStmt, elseReturn})
}

func runFmt(cmd *cobra.Command, args []string) error {
	machine, err := loadMachine()
	if err != nil {
		return err
	}
	ctx := unit.New(machine, resolveWarningFlags())

	body := demoBody()
	rendered := printer.PrintStmt(body)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "// session %s\n", ctx.ID)
	if fmtCompareFile == "" {
		fmt.Fprintln(out, rendered)
		return nil
	}

	want, err := os.ReadFile(fmtCompareFile)
	if err != nil {
		return fmt.Errorf("reading --compare file: %w", err)
	}

	diff := difflib.Diff(strings.Split(string(want), "\n"), strings.Split(rendered, "\n"))
	mismatch := false
	for _, d := range diff {
		if d.Delta != difflib.Common {
			mismatch = true
			break
		}
	}

	if !fmtDiff {
		if mismatch {
			fmt.Fprintln(out, "mismatch")
		} else {
			fmt.Fprintln(out, "match")
		}
		logger.Info("fmt comparison completed", zap.Bool("mismatch", mismatch))
		if mismatch {
			os.Exit(1)
		}
		return nil
	}

	for _, d := range diff {
		switch d.Delta {
		case difflib.Common:
			fmt.Fprintf(out, "  %s\n", d.Payload)
		case difflib.LeftOnly:
			fmt.Fprintf(out, "- %s\n", d.Payload)
		case difflib.RightOnly:
			fmt.Fprintf(out, "+ %s\n", d.Payload)
		}
	}
	logger.Info("fmt diff completed", zap.Bool("mismatch", mismatch))
	return nil
}
