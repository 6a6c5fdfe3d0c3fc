package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cparsecore/cparsecore/internal/unit"
)

var sizeofCmd = &cobra.Command{
	Use:   "sizeof <type> [<type> ...]",
	Short: "Report the size and alignment of one or more C types",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSizeof,
}

func runSizeof(cmd *cobra.Command, args []string) error {
	machine, err := loadMachine()
	if err != nil {
		return err
	}
	ctx := unit.New(machine, resolveWarningFlags())

	for _, spec := range args {
		t, err := parseTypeSpec(ctx.Types, spec)
		if err != nil {
			return err
		}
		size := ctx.SizeOf(t)
		align := ctx.AlignOf(t)
		fmt.Fprintf(cmd.OutOrStdout(), "%-24s size=%-10s align=%d\n",
			typeSpecName(t), humanize.IBytes(uint64(size)), align)
	}

	logger.Info("sizeof query completed",
		zap.Int("types", len(args)),
		zap.String("session", ctx.ID.String()),
	)
	return nil
}
