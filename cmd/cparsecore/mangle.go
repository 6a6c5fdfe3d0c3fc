package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/mangle"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/types"
	"github.com/cparsecore/cparsecore/internal/unit"
)

var (
	mangleName    string
	mangleReturn  string
	mangleParams  []string
	mangleLinkage string
	mangleABI     string
)

var mangleCmd = &cobra.Command{
	Use:   "mangle --name <identifier>",
	Short: "Mangle a synthetic function's linker symbol name",
	RunE:  runMangle,
}

func init() {
	mangleCmd.Flags().StringVar(&mangleName, "name", "", "function name (required)")
	mangleCmd.Flags().StringVar(&mangleReturn, "return", "int", "return type")
	mangleCmd.Flags().StringArrayVar(&mangleParams, "param", nil, "a parameter type, repeatable, in order")
	mangleCmd.Flags().StringVar(&mangleLinkage, "linkage", "c", `"c" or "cxx"`)
	mangleCmd.Flags().StringVar(&mangleABI, "abi", "linux", `"linux", "win32", or "macho"`)
	_ = mangleCmd.MarkFlagRequired("name")
}

func runMangle(cmd *cobra.Command, args []string) error {
	machine, err := loadMachine()
	if err != nil {
		return err
	}
	ctx := unit.New(machine, resolveWarningFlags())

	returnType, err := parseTypeSpec(ctx.Types, mangleReturn)
	if err != nil {
		return fmt.Errorf("return type: %w", err)
	}

	var params []types.FunctionParameter
	for _, spec := range mangleParams {
		t, err := parseTypeSpec(ctx.Types, spec)
		if err != nil {
			return fmt.Errorf("parameter type: %w", err)
		}
		params = append(params, types.FunctionParameter{Type: t})
	}

	var linkage types.Linkage
	switch mangleLinkage {
	case "c":
		linkage = types.LinkageC
	case "cxx":
		linkage = types.LinkageCXX
	default:
		return fmt.Errorf("%s: unknown linkage (want \"c\" or \"cxx\")", mangleLinkage)
	}

	fnType := ctx.Types.MakeFunction(returnType, params, false, config.CCCdecl, linkage)
	fn := entity.NewFunction(entity.Declaration{
		Base:     entity.NewBase(entity.KindFunction, entity.NamespaceNormal, ctx.Symbols.Intern(mangleName), pos.None),
		DeclType: fnType,
	}, nil)

	var out string
	switch mangleABI {
	case "linux":
		out = mangle.CreateNameLinuxELF(fn)
	case "win32":
		out = mangle.CreateNameWin32(fn, ctx.Types)
	case "macho":
		out = mangle.CreateNameMacho(fn)
	default:
		return fmt.Errorf("%s: unknown ABI (want \"linux\", \"win32\", or \"macho\")", mangleABI)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	logger.Info("name mangled", zap.String("name", mangleName), zap.String("abi", mangleABI), zap.String("mangled", out))
	return nil
}
