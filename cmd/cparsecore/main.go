// Command cparsecore drives the C89/C99 front-end core end to end on
// translation units built directly through the component
// constructors (internal/entity, internal/ast, internal/types) — the
// same way a parser would build them — since no lexer or parser is
// part of this module. Each subcommand exercises one slice of the
// pipeline: sizeof/align queries, struct/union layout, name mangling,
// printf/scanf format checking, and pretty-printing.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/diag"
)

var (
	machineFile string
	warnFlags   warningFlagsValue
	logger      *zap.Logger
)

// warningFlagsValue is a pflag.Value validating each -W argument
// against the known diag.WarningFlag names as it's parsed, instead of
// discovering a typo only once diag.NewWarningFlags is asked to
// enable a flag nothing ever checks.
type warningFlagsValue []string

var _ pflag.Value = (*warningFlagsValue)(nil)

var knownWarningFlags = map[string]bool{
	string(diag.WarnOther):          true,
	string(diag.WarnFormat):         true,
	string(diag.WarnPadded):         true,
	string(diag.WarnPacked):         true,
	string(diag.WarnAttribute):      true,
	string(diag.WarnUnknownPragmas): true,
}

func (w *warningFlagsValue) String() string { return strings.Join(*w, ",") }
func (w *warningFlagsValue) Type() string   { return "warningFlags" }
func (w *warningFlagsValue) Set(s string) error {
	if !knownWarningFlags[s] {
		return fmt.Errorf("%s: unknown warning flag", s)
	}
	*w = append(*w, s)
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "cparsecore",
	Short: "C89/C99 compiler front-end core driver",
	Long: `cparsecore exercises the type graph, entity/scope model, struct
layout engine, name mangler, and printf/scanf format checker of a
C89/C99 compiler front end.

It has no lexer or parser: every subcommand builds its translation
unit directly through the component constructors, the same inputs a
parser would hand the rest of the pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("starting logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&machineFile, "machine", "",
		"TOML file overriding the default target machine configuration")
	rootCmd.PersistentFlags().VarP(&warnFlags, "warn", "W",
		"warning flag to enable (other, format, padded, packed, attribute, unknown-pragmas); repeatable, default: all")

	rootCmd.AddCommand(sizeofCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(mangleCmd)
	rootCmd.AddCommand(checkFormatCmd)
	rootCmd.AddCommand(fmtCmd)
}

// loadMachine resolves the --machine flag into a config.Machine,
// falling back to config.Default() when unset.
func loadMachine() (config.Machine, error) {
	if machineFile == "" {
		return config.Default(), nil
	}
	return config.LoadFile(machineFile)
}

// resolveWarningFlags turns the --warn flag list into a
// diag.WarningFlags, defaulting to every flag enabled (matching a
// front end's typical "-Wall"-ish default for this driver).
func resolveWarningFlags() *diag.WarningFlags {
	if len(warnFlags) == 0 {
		return diag.AllWarnings()
	}
	flags := make([]diag.WarningFlag, len(warnFlags))
	for i, f := range warnFlags {
		flags[i] = diag.WarningFlag(f)
	}
	return diag.NewWarningFlags(flags...)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "cparsecore: internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cparsecore: %v\n", err)
		os.Exit(1)
	}
}
