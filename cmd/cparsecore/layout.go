package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/unit"
)

var (
	layoutMembers []string
	layoutUnion   bool
	layoutPacked  bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout --member name:type [--member name:type ...]",
	Short: "Lay out a synthetic struct or union and report member offsets",
	RunE:  runLayout,
}

func init() {
	layoutCmd.Flags().StringArrayVar(&layoutMembers, "member", nil,
		`a member as "name:type", e.g. --member count:int --member "label:const char *"`)
	layoutCmd.Flags().BoolVar(&layoutUnion, "union", false, "lay out a union instead of a struct")
	layoutCmd.Flags().BoolVar(&layoutPacked, "packed", false, "pack members with no alignment padding")
}

func runLayout(cmd *cobra.Command, args []string) error {
	if len(layoutMembers) == 0 {
		return fmt.Errorf("layout requires at least one --member")
	}

	machine, err := loadMachine()
	if err != nil {
		return err
	}
	ctx := unit.New(machine, resolveWarningFlags())

	scope := entity.NewScope(nil)
	kind := entity.KindStruct
	if layoutUnion {
		kind = entity.KindUnion
	}
	compound := entity.NewCompound(entity.NewBase(kind, entity.NamespaceTag, ctx.Symbols.Intern("anon"), pos.None), scope)
	compound.Complete = true
	compound.Packed = layoutPacked

	var names []string
	for _, spec := range layoutMembers {
		name, typeSpec, ok := strings.Cut(spec, ":")
		if !ok {
			return fmt.Errorf("%q: expected \"name:type\"", spec)
		}
		t, err := parseTypeSpec(ctx.Types, typeSpec)
		if err != nil {
			return err
		}
		member := entity.NewCompoundMember(entity.Declaration{
			Base:     entity.NewBase(entity.KindCompoundMember, entity.NamespaceNormal, ctx.Symbols.Intern(name), pos.None),
			DeclType: t,
		})
		scope.Insert(member)
		names = append(names, name)
	}

	result, ok := ctx.Layout.Layout(compound)
	if !ok {
		return fmt.Errorf("layout failed (incomplete member type)")
	}

	out := cmd.OutOrStdout()
	kindWord := "struct"
	if layoutUnion {
		kindWord = "union"
	}
	fmt.Fprintf(out, "%s { /* size=%s align=%d */\n", kindWord,
		humanize.IBytes(uint64(result.Size())), result.Alignment())
	for _, name := range names {
		member := scope.LookupLocal(ctx.Symbols.Intern(name), entity.NamespaceNormal).(*entity.CompoundMember)
		fmt.Fprintf(out, "    %-20s offset=%d", name, member.Offset)
		if member.BitOffset != 0 {
			fmt.Fprintf(out, " bitoffset=%d", member.BitOffset)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, "};")

	logger.Info("layout computed",
		zap.String("kind", kindWord),
		zap.Int("members", len(names)),
		zap.Int("size", result.Size()),
	)
	return nil
}
