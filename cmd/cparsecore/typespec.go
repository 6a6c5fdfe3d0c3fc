package main

import (
	"fmt"
	"strings"

	"github.com/cparsecore/cparsecore/internal/printer"
	"github.com/cparsecore/cparsecore/internal/types"
)

// atomicByName maps the C spelling of a builtin type to its
// AtomicKind, the reverse of AtomicKind.String(). Kept local to the
// driver rather than exported from internal/types, since only a
// command-line front end needs to parse type names out of free text.
var atomicByName = map[string]types.AtomicKind{
	"void":               types.Void,
	"_Bool":              types.Bool,
	"bool":               types.Bool,
	"wchar_t":            types.WCharT,
	"char":               types.Char,
	"signed char":        types.SChar,
	"unsigned char":      types.UChar,
	"short":              types.Short,
	"short int":          types.Short,
	"unsigned short":     types.UShort,
	"int":                types.Int,
	"unsigned":           types.UInt,
	"unsigned int":       types.UInt,
	"long":               types.Long,
	"long int":           types.Long,
	"unsigned long":      types.ULong,
	"long long":          types.LongLong,
	"unsigned long long": types.ULongLong,
	"float":              types.Float,
	"double":             types.Double,
	"long double":        types.LongDouble,
}

// parseTypeSpec resolves a small subset of C type syntax the driver
// accepts on the command line: an atomic keyword, optionally preceded
// by "const"/"volatile" and followed by any number of "*" pointer
// declarators (e.g. "const char *", "unsigned long long **"). It does
// not parse arrays, function types, or named struct/union/enum tags —
// those only exist as entities a real parser would build, which is
// exactly the collaborator this module doesn't implement.
func parseTypeSpec(tb *types.Table, spec string) (*types.Type, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty type")
	}

	qual := types.QualNone
	for len(fields) > 0 {
		switch fields[0] {
		case "const":
			qual |= types.QualConst
		case "volatile":
			qual |= types.QualVolatile
		default:
			goto base
		}
		fields = fields[1:]
	}
base:
	if len(fields) == 0 {
		return nil, fmt.Errorf("%s: missing base type", spec)
	}

	stars := 0
	last := fields[len(fields)-1]
	for strings.HasSuffix(last, "*") {
		stars++
		last = strings.TrimSuffix(last, "*")
	}
	if last == "" {
		fields = fields[:len(fields)-1]
	} else {
		fields[len(fields)-1] = last
	}
	for _, f := range fields {
		stars += strings.Count(f, "*")
	}
	name := strings.Join(fields, " ")
	name = strings.TrimRight(name, "*")
	name = strings.TrimSpace(name)

	kind, ok := atomicByName[name]
	if !ok {
		return nil, fmt.Errorf("%s: unrecognized builtin type (struct/union/enum/typedef names require a parser this module doesn't implement)", name)
	}

	t := tb.MakeAtomic(kind, qual)
	for i := 0; i < stars; i++ {
		t = tb.MakePointer(t, types.QualNone)
	}
	return t, nil
}

// typeSpecName renders t back to the C spelling the driver printed it
// from, via the pretty-printer.
func typeSpecName(t *types.Type) string {
	return printer.PrintType(t)
}
