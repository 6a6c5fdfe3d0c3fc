package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/diag"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/format"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/unit"
)

var checkFormatArgTypes []string

var checkFormatCmd = &cobra.Command{
	Use:   "check-format <function> <format-string>",
	Short: "Check a printf/scanf-family call's format string against its argument types",
	Args:  cobra.ExactArgs(2),
	RunE:  runCheckFormat,
}

func init() {
	checkFormatCmd.Flags().StringArrayVar(&checkFormatArgTypes, "arg", nil,
		`the type of one trailing argument, repeatable and in call order, e.g. --arg int --arg "const char *"`)
}

func runCheckFormat(cmd *cobra.Command, args []string) error {
	funcName, formatString := args[0], args[1]

	machine, err := loadMachine()
	if err != nil {
		return err
	}
	ctx := unit.New(machine, resolveWarningFlags())

	fn := entity.NewFunction(entity.Declaration{
		Base: entity.NewBase(entity.KindFunction, entity.NamespaceNormal, ctx.Symbols.Intern(funcName), pos.None),
	}, nil)
	callee := ast.NewReference(ast.NewExprBase(pos.None), fn)

	callArgs := []ast.Expr{ast.NewStringLiteral(ast.NewExprBase(pos.None), symbol.NewNarrow([]byte(formatString)))}
	for _, spec := range checkFormatArgTypes {
		t, err := parseTypeSpec(ctx.Types, spec)
		if err != nil {
			return fmt.Errorf("--arg %q: %w", spec, err)
		}
		lit := ast.NewLiteral(ast.NewExprBase(pos.None), ast.LiteralInteger, "0")
		lit.SetExprType(t)
		callArgs = append(callArgs, lit)
	}
	call := ast.NewCall(ast.NewExprBase(pos.None), callee, callArgs)

	format.CheckFormat(call, ctx.Types, ctx.Diags, ctx.Flags)

	out := cmd.OutOrStdout()
	if len(ctx.Diags.Diagnostics) == 0 {
		fmt.Fprintln(out, "no diagnostics")
	} else {
		diag.NewFormatter(out).Format(ctx.Diags)
	}

	logger.Info("format check completed",
		zap.String("function", funcName),
		zap.Int("diagnostics", len(ctx.Diags.Diagnostics)),
	)
	return nil
}
