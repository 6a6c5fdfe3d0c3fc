// Package format checks printf/scanf-family call sites: it walks a
// format string literal alongside the call's trailing arguments and
// warns when a conversion specifier and its argument disagree, a flag
// is repeated or inapplicable, or the argument count doesn't match the
// number of conversions. strftime/strfmon calls are recognized but not
// yet checked, matching the "TODO: implement other cases" the checker
// has carried since it first grew a format table.
package format

import (
	"strings"

	"github.com/cparsecore/cparsecore/internal/ast"
	"github.com/cparsecore/cparsecore/internal/diag"
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/types"
)

// Kind discriminates the families of format string a call can carry.
type Kind uint8

const (
	Printf Kind = iota
	Scanf
	Strftime
	Strfmon
)

// spec names one format-checked function: which argument holds the
// format string, and which argument the checked varargs start at.
type spec struct {
	name    string
	kind    Kind
	fmtIdx  int
	argIdx  int
}

// builtinTable mirrors check_format's builtin_table: every libc/MSVCRT
// entry point whose format string the checker always verifies, even
// without a __attribute__((format)) annotation. snwprintf appears three
// times in the original table (a copy-paste artifact across the libc
// and MS-mode sections); the duplicate entries are harmless since table
// lookup stops at the first match, and DESIGN.md records the decision
// to carry them over rather than silently dedup a table an auditor
// might later diff against the original.
var builtinTable = []spec{
	{"printf", Printf, 0, 1},
	{"wprintf", Printf, 0, 1},
	{"sprintf", Printf, 1, 2},
	{"swprintf", Printf, 1, 2},
	{"snprintf", Printf, 2, 3},
	{"snwprintf", Printf, 2, 3},
	{"fprintf", Printf, 1, 2},
	{"fwprintf", Printf, 1, 2},
	{"snwprintf", Printf, 2, 3},
	{"snwprintf", Printf, 2, 3},

	{"scanf", Scanf, 0, 1},
	{"wscanf", Scanf, 0, 1},
	{"sscanf", Scanf, 1, 2},
	{"swscanf", Scanf, 1, 2},
	{"fscanf", Scanf, 1, 2},
	{"fwscanf", Scanf, 1, 2},

	{"strftime", Strftime, 3, 4},
	{"wcstrftime", Strftime, 3, 4},

	{"strfmon", Strfmon, 3, 4},

	{"_snprintf", Printf, 2, 3},
	{"_snwprintf", Printf, 2, 3},
	{"_scrintf", Printf, 0, 1},
	{"_scwprintf", Printf, 0, 1},
	{"printf_s", Printf, 0, 1},
	{"wprintf_s", Printf, 0, 1},
	{"sprintf_s", Printf, 3, 4},
	{"swprintf_s", Printf, 3, 4},
	{"fprintf_s", Printf, 1, 2},
	{"fwprintf_s", Printf, 1, 2},
}

// CheckFormat checks call against builtinTable when flags has
// WarnFormat enabled and call's callee is a direct reference to one of
// the table's names; it emits diagnostics to sink and is a no-op for
// every other call.
func CheckFormat(call *ast.Call, tb *types.Table, sink diag.Sink, flags *diag.WarningFlags) {
	if !flags.Enabled(diag.WarnFormat) {
		return
	}
	ref, ok := call.Callee.(*ast.Reference)
	if !ok {
		return
	}
	if ref.Entity == nil || ref.Entity.Symbol() == nil {
		return
	}
	name := ref.Entity.Symbol().Text()

	for _, s := range builtinTable {
		if s.name != name {
			continue
		}
		switch s.kind {
		case Printf:
			checkPrintfFormat(call.Args, s, tb, sink, flags)
		case Scanf:
			checkScanfFormat(call.Args, s, tb, sink, flags)
		case Strftime, Strfmon:
			// TODO: implement other cases
		}
		return
	}
}

func warnf(sink diag.Sink, flags *diag.WarningFlags, p pos.Position, format string, args ...any) {
	diag.Warnf(sink, flags, diag.WarnFormat, diag.StageFormat, p, format, args...)
}

// formatString returns the literal text of e if it is a narrow string
// literal (or, for a conditional, of its first arm that resolves to
// one: Then, or Condition for the GNU `?:` form, else Else), the form
// internal_check_printf_format accepts; everything else (a variable, a
// concatenation the parser already folded, a cast) returns ok=false and
// the call is left unchecked.
func formatString(e ast.Expr) (string, pos.Position, bool) {
	switch n := e.(type) {
	case *ast.StringLiteral:
		return string(n.Value.Bytes), n.Pos(), true
	case *ast.Conditional:
		then := n.Then
		if then == nil {
			then = n.Condition
		}
		if s, p, ok := formatString(then); ok {
			return s, p, true
		}
		return formatString(n.Else)
	case *ast.Cast:
		if n.Implicit {
			return formatString(n.Operand)
		}
	}
	return "", pos.None, false
}

// trimAtNUL stops scanning at the first NUL byte, mirroring the C
// scanner's char-at-a-time walk (which treats '\0' as the loop's end
// condition): only the text before it is parsed as conversions, and
// embedded reports whether that NUL wasn't simply the string's own
// terminator (i.e. more bytes followed it).
func trimAtNUL(s string) (scan string, embedded bool) {
	idx := strings.IndexByte(s, 0)
	if idx < 0 {
		return s, false
	}
	return s[:idx], idx != len(s)-1
}

type flagSet uint8

const (
	flagHash flagSet = 1 << iota
	flagZero
	flagMinus
	flagSpace
	flagPlus
	flagTick
)

type lengthMod uint8

const (
	modNone lengthMod = iota
	modBigL // the 'L' modifier (long double)
	modHH
	modH
	modL // the 'l' modifier
	modLL
	modJ
	modT
	modZ
	modQ
)

func (m lengthMod) String() string {
	switch m {
	case modBigL:
		return "L"
	case modL:
		return "l"
	case modHH:
		return "hh"
	case modH:
		return "h"
	case modLL:
		return "ll"
	case modJ:
		return "j"
	case modT:
		return "t"
	case modZ:
		return "z"
	case modQ:
		return "q"
	default:
		return ""
	}
}

// expectedType returns the type conversion c with length modifier m
// expects, mirroring internal_check_printf_format's big conversion
// switch. ok is false for an unknown/unsupported conversion-modifier
// pairing.
func expectedType(tb *types.Table, c byte, m lengthMod) (t *types.Type, qual types.Qualifiers, allowed flagSet, ok bool) {
	cfg := tb.Machine()
	ptrWidth := types.Int
	if cfg.MachineSize >= 64 {
		ptrWidth = types.Long
	}

	switch c {
	case 'd', 'i':
		allowed = flagMinus | flagSpace | flagPlus | flagZero
		switch m {
		case modNone, modHH, modH:
			return tb.MakeAtomic(types.Int, types.QualNone), types.QualNone, allowed, true
		case modL:
			return tb.MakeAtomic(types.Long, types.QualNone), types.QualNone, allowed, true
		case modLL, modQ:
			return tb.MakeAtomic(types.LongLong, types.QualNone), types.QualNone, allowed, true
		case modJ:
			return tb.MakeAtomic(types.LongLong, types.QualNone), types.QualNone, allowed, true
		case modZ, modT:
			return tb.MakeAtomic(ptrWidth, types.QualNone), types.QualNone, allowed, true
		}
		return nil, 0, 0, false

	case 'o', 'x', 'X', 'u':
		if c == 'u' {
			allowed = flagMinus | flagZero
		} else {
			allowed = flagMinus | flagHash | flagZero
		}
		switch m {
		case modNone, modHH, modH:
			return tb.MakeAtomic(types.UInt, types.QualNone), types.QualNone, allowed, true
		case modL:
			return tb.MakeAtomic(types.ULong, types.QualNone), types.QualNone, allowed, true
		case modLL, modQ:
			return tb.MakeAtomic(types.ULongLong, types.QualNone), types.QualNone, allowed, true
		case modJ:
			return tb.MakeAtomic(types.ULongLong, types.QualNone), types.QualNone, allowed, true
		case modZ, modT:
			uKind, _ := types.FindUnsignedIntKindForSize(types.GetAtomicSize(ptrWidth, cfg), cfg)
			return tb.MakeAtomic(uKind, types.QualNone), types.QualNone, allowed, true
		}
		return nil, 0, 0, false

	case 'a', 'A', 'e', 'E', 'f', 'F', 'g', 'G':
		// the l modifier is accepted but ignored for float conversions
		allowed = flagMinus | flagSpace | flagPlus | flagHash | flagZero
		switch m {
		case modNone, modL:
			return tb.MakeAtomic(types.Double, types.QualNone), types.QualNone, allowed, true
		case modBigL:
			return tb.MakeAtomic(types.LongDouble, types.QualNone), types.QualNone, allowed, true
		}
		return nil, 0, 0, false

	case 'c':
		allowed = flagSpace
		switch m {
		case modNone:
			return tb.MakeAtomic(types.Int, types.QualNone), types.QualNone, allowed, true
		case modL:
			return tb.MakeAtomic(types.Int, types.QualNone), types.QualNone, allowed, true
		}
		return nil, 0, 0, false

	case 's':
		allowed = flagMinus
		switch m {
		case modNone:
			return tb.MakePointer(tb.MakeAtomic(types.Char, types.QualConst), types.QualNone), types.QualConst, allowed, true
		case modL:
			return tb.MakePointer(tb.MakeAtomic(types.WCharT, types.QualConst), types.QualNone), types.QualConst, allowed, true
		}
		return nil, 0, 0, false

	case 'p':
		return tb.MakePointer(tb.MakeAtomic(types.Void, types.QualNone), types.QualNone), types.QualNone, flagSet(0), true

	case 'n':
		switch m {
		case modNone:
			return tb.MakePointer(tb.MakeAtomic(types.Int, types.QualNone), types.QualNone), types.QualNone, 0, true
		case modHH:
			return tb.MakePointer(tb.MakeAtomic(types.SChar, types.QualNone), types.QualNone), types.QualNone, 0, true
		case modH:
			return tb.MakePointer(tb.MakeAtomic(types.Short, types.QualNone), types.QualNone), types.QualNone, 0, true
		case modL:
			return tb.MakePointer(tb.MakeAtomic(types.Long, types.QualNone), types.QualNone), types.QualNone, 0, true
		case modLL, modQ:
			return tb.MakePointer(tb.MakeAtomic(types.LongLong, types.QualNone), types.QualNone), types.QualNone, 0, true
		case modJ:
			return tb.MakePointer(tb.MakeAtomic(types.LongLong, types.QualNone), types.QualNone), types.QualNone, 0, true
		case modZ, modT:
			return tb.MakePointer(tb.MakeAtomic(ptrWidth, types.QualNone), types.QualNone), types.QualNone, 0, true
		}
		return nil, 0, 0, false
	}
	return nil, 0, 0, false
}

func flagChar(f flagSet) byte {
	switch f {
	case flagHash:
		return '#'
	case flagZero:
		return '0'
	case flagMinus:
		return '-'
	case flagSpace:
		return ' '
	case flagPlus:
		return '+'
	case flagTick:
		return '\''
	}
	return 0
}

// checkPrintfFormat mirrors check_printf_format/internal_check_printf_format:
// it walks the literal's conversion specifiers one at a time, cross
// checking each against the corresponding call argument, and finally
// warns if more arguments were passed than conversions consumed.
func checkPrintfFormat(args []ast.Expr, s spec, tb *types.Table, sink diag.Sink, flags *diag.WarningFlags) {
	if s.fmtIdx >= len(args) {
		return
	}
	fmtExpr := args[s.fmtIdx]
	str, p, ok := formatString(fmtExpr)
	if !ok {
		return
	}
	scan, embeddedNUL := trimAtNUL(str)
	str = scan

	rest := args[minInt(s.argIdx, len(args)):]

	numFmt, consumed := walkPrintf(str, p, rest, tb, sink, flags)
	if numFmt < 0 {
		return
	}
	if embeddedNUL {
		warnf(sink, flags, p, "format string contains '\\0'")
	}
	numArgs := len(rest)
	if numArgs > consumed {
		plural := func(n int) string {
			if n != 1 {
				return "s"
			}
			return ""
		}
		warnf(sink, flags, p, "%d argument%s but only %d format specifier%s",
			numArgs, plural(numArgs), numFmt, plural(numFmt))
	}
}

// walkPrintf scans one printf-family format string, returning the
// number of conversions found (or -1 if scanning had to bail out, e.g.
// on a `%N$` positional argument selector this checker doesn't
// support) and how many of args it consumed.
func walkPrintf(s string, p pos.Position, args []ast.Expr, tb *types.Table, sink diag.Sink, flags *diag.WarningFlags) (numFmt int, consumed int) {
	i := 0
	argIdx := 0
	n := len(s)
	for i < n {
		if s[i] != '%' {
			i++
			continue
		}
		i++
		if i >= n {
			warnf(sink, flags, p, "dangling %% in format string")
			break
		}
		if s[i] == '%' {
			i++
			continue
		}
		numFmt++

		var fs flagSet
		for i < n {
			var f flagSet
			switch s[i] {
			case '#':
				f = flagHash
			case '0':
				f = flagZero
			case '-':
				f = flagMinus
			case '\'':
				f = flagTick
			case ' ':
				if fs&flagPlus != 0 {
					warnf(sink, flags, p, "' ' is overridden by prior '+' in conversion specification %d", numFmt)
				}
				f = flagSpace
			case '+':
				if fs&flagSpace != 0 {
					warnf(sink, flags, p, "'+' overrides prior ' ' in conversion specification %d", numFmt)
				}
				f = flagPlus
			default:
				goto doneFlags
			}
			if fs&f != 0 {
				warnf(sink, flags, p, "repeated flag '%c' in conversion specification %d", s[i], numFmt)
			}
			fs |= f
			i++
		}
	doneFlags:

		if i < n && s[i] == '*' {
			i++
			if argIdx >= len(args) {
				warnf(sink, flags, p, "missing argument for '*' field width in conversion specification %d", numFmt)
				return -1, argIdx
			}
			if t := types.SkipTyperef(args[argIdx].ExprType()); t != nil && !(t.Kind() == types.KindAtomic && t.AtomicKind() == types.Int) {
				warnf(sink, flags, p, "argument for '*' field width in conversion specification %d is not an 'int'", numFmt)
			}
			argIdx++
		} else {
			for i < n && isDigit(s[i]) {
				i++
			}
		}

		if i < n && s[i] == '.' {
			i++
			if i < n && s[i] == '*' {
				i++
				if argIdx >= len(args) {
					warnf(sink, flags, p, "missing argument for '*' precision in conversion specification %d", numFmt)
					return -1, argIdx
				}
				if t := types.SkipTyperef(args[argIdx].ExprType()); t != nil && !(t.Kind() == types.KindAtomic && t.AtomicKind() == types.Int) {
					warnf(sink, flags, p, "argument for '*' precision in conversion specification %d is not an 'int'", numFmt)
				}
				argIdx++
			} else {
				for i < n && isDigit(s[i]) {
					i++
				}
			}
		}

		mod := modNone
		if i < n {
			switch s[i] {
			case 'h':
				i++
				if i < n && s[i] == 'h' {
					i++
					mod = modHH
				} else {
					mod = modH
				}
			case 'l':
				i++
				if i < n && s[i] == 'l' {
					i++
					mod = modLL
				} else {
					mod = modL
				}
			case 'L':
				i++
				mod = modBigL
			case 'j':
				i++
				mod = modJ
			case 't':
				i++
				mod = modT
			case 'z':
				i++
				mod = modZ
			case 'q':
				i++
				mod = modQ
			}
		}

		if i >= n {
			warnf(sink, flags, p, "dangling %% in format string")
			break
		}
		conv := s[i]
		i++

		expected, qual, allowed, ok := expectedType(tb, conv, mod)
		if !ok {
			if mod != modNone {
				warnf(sink, flags, p, "invalid length modifier '%s' for conversion specifier '%%%c'", mod, conv)
			} else {
				warnf(sink, flags, p, "unknown conversion specifier '%%%c' at position %d", conv, numFmt)
			}
			if argIdx < len(args) {
				argIdx++
			}
			continue
		}

		if wrong := fs &^ allowed; wrong != 0 {
			var wrongChars []byte
			for _, f := range []flagSet{flagHash, flagZero, flagMinus, flagSpace, flagPlus, flagTick} {
				if wrong&f != 0 {
					wrongChars = append(wrongChars, flagChar(f))
				}
			}
			warnf(sink, flags, p, "invalid format flags %q in conversion specification %%%c at position %d", string(wrongChars), conv, numFmt)
		}

		if argIdx >= len(args) {
			warnf(sink, flags, p, "too few arguments for format string")
			return -1, argIdx
		}
		argType := types.SkipTyperef(args[argIdx].ExprType())
		argIdx++
		if argType == nil {
			continue
		}

		if conv == 'p' && argType.Kind() == types.KindPointer {
			continue
		}
		expectedSkip := types.SkipTyperef(expected)
		if expectedSkip.Kind() == types.KindPointer {
			if argType.Kind() != types.KindPointer {
				warnf(sink, flags, p, "argument type does not match conversion specifier '%%%s%c' at position %d", mod, conv, numFmt)
				continue
			}
			argTo := types.SkipTyperef(argType.PointsTo())
			expTo := types.SkipTyperef(expectedSkip.PointsTo())
			if argTo.Qualifiers()&^qual != 0 || tb.Identify(stripQual(tb, argTo)) != tb.Identify(stripQual(tb, expTo)) {
				warnf(sink, flags, p, "argument type does not match conversion specifier '%%%s%c' at position %d", mod, conv, numFmt)
			}
		} else if tb.Identify(stripQual(tb, argType)) != tb.Identify(stripQual(tb, expectedSkip)) {
			warnf(sink, flags, p, "argument type does not match conversion specifier '%%%s%c' at position %d", mod, conv, numFmt)
		}
	}
	return numFmt, argIdx
}

func stripQual(tb *types.Table, t *types.Type) *types.Type {
	switch t.Kind() {
	case types.KindAtomic:
		return tb.MakeAtomic(t.AtomicKind(), types.QualNone)
	case types.KindPointer:
		return tb.MakePointer(t.PointsTo(), types.QualNone)
	default:
		return t
	}
}

// checkScanfFormat mirrors check_scanf_format: every scanf conversion
// expects a pointer argument, so besides validating the length
// modifier it also checks the argument is a non-const, non-volatile
// pointer to the conversion's expected pointee type (with the usual
// char/signed-char/unsigned-char exception).
func checkScanfFormat(args []ast.Expr, s spec, tb *types.Table, sink diag.Sink, flags *diag.WarningFlags) {
	if s.fmtIdx >= len(args) {
		return
	}
	str, p, ok := formatString(args[s.fmtIdx])
	if !ok {
		return
	}
	str, embeddedNUL := trimAtNUL(str)
	rest := args[minInt(s.argIdx, len(args)):]

	cfg := tb.Machine()
	ptrWidth := types.Int
	if cfg.MachineSize >= 64 {
		ptrWidth = types.Long
	}

	i, n := 0, len(str)
	numFmt := 0
	argIdx := 0
	for i < n {
		if str[i] != '%' {
			i++
			continue
		}
		i++
		if i >= n {
			break
		}
		if str[i] == '%' {
			i++
			continue
		}
		numFmt++

		mod := modNone
		switch str[i] {
		case 'h':
			i++
			if i < n && str[i] == 'h' {
				i++
				mod = modHH
			} else {
				mod = modH
			}
		case 'l':
			i++
			if i < n && str[i] == 'l' {
				i++
				mod = modLL
			} else {
				mod = modL
			}
		case 'L':
			i++
			mod = modBigL
		case 'j':
			i++
			mod = modJ
		case 't':
			i++
			mod = modT
		case 'z':
			i++
			mod = modZ
		}

		if i >= n {
			break
		}
		conv := str[i]
		i++

		var expected *types.Type
		switch conv {
		case 'd', 'i', 'n':
			switch mod {
			case modNone:
				expected = tb.MakeAtomic(types.Int, types.QualNone)
			case modHH:
				expected = tb.MakeAtomic(types.SChar, types.QualNone)
			case modH:
				expected = tb.MakeAtomic(types.Short, types.QualNone)
			case modL:
				expected = tb.MakeAtomic(types.Long, types.QualNone)
			case modLL, modQ:
				expected = tb.MakeAtomic(types.LongLong, types.QualNone)
			case modJ:
				expected = tb.MakeAtomic(types.LongLong, types.QualNone)
			case modZ, modT:
				expected = tb.MakeAtomic(ptrWidth, types.QualNone)
			default:
				warnf(sink, flags, p, "invalid length modifier '%s' for conversion specifier '%%%c'", mod, conv)
				continue
			}
		case 'o', 'x', 'X', 'u':
			switch mod {
			case modNone:
				expected = tb.MakeAtomic(types.UInt, types.QualNone)
			case modHH:
				expected = tb.MakeAtomic(types.UChar, types.QualNone)
			case modH:
				expected = tb.MakeAtomic(types.UShort, types.QualNone)
			case modL:
				expected = tb.MakeAtomic(types.ULong, types.QualNone)
			case modLL, modQ:
				expected = tb.MakeAtomic(types.ULongLong, types.QualNone)
			case modJ:
				expected = tb.MakeAtomic(types.ULongLong, types.QualNone)
			case modZ, modT:
				uKind, _ := types.FindUnsignedIntKindForSize(types.GetAtomicSize(ptrWidth, cfg), cfg)
				expected = tb.MakeAtomic(uKind, types.QualNone)
			default:
				warnf(sink, flags, p, "invalid length modifier '%s' for conversion specifier '%%%c'", mod, conv)
				continue
			}
		case 'a', 'A', 'e', 'E', 'f', 'F', 'g', 'G':
			switch mod {
			case modNone, modL:
				expected = tb.MakeAtomic(types.Double, types.QualNone)
			case modBigL:
				expected = tb.MakeAtomic(types.LongDouble, types.QualNone)
			default:
				warnf(sink, flags, p, "invalid length modifier '%s' for conversion specifier '%%%c'", mod, conv)
				continue
			}
		case 'C':
			expected = tb.MakeAtomic(types.WCharT, types.QualNone)
		case 'c', 's', '[':
			switch mod {
			case modNone:
				expected = tb.MakeAtomic(types.Char, types.QualNone)
			case modL:
				expected = tb.MakeAtomic(types.WCharT, types.QualNone)
			default:
				warnf(sink, flags, p, "invalid length modifier '%s' for conversion specifier '%%%c'", mod, conv)
				continue
			}
		case 'S':
			expected = tb.MakeAtomic(types.WCharT, types.QualNone)
		case 'p':
			expected = tb.MakePointer(tb.MakeAtomic(types.Void, types.QualNone), types.QualNone)
		default:
			warnf(sink, flags, p, "encountered unknown conversion specifier '%%%c' at position %d", conv, numFmt)
		}

		if argIdx >= len(rest) {
			warnf(sink, flags, p, "too few arguments for format string")
			return
		}
		argType := types.SkipTyperef(rest[argIdx].ExprType())
		argIdx++
		if expected == nil || argType == nil {
			continue
		}
		if argType.Kind() != types.KindPointer {
			warnf(sink, flags, p, "argument type does not match conversion specifier '%%%s%c' at position %d", mod, conv, numFmt)
			continue
		}
		pointee := types.SkipTyperef(argType.PointsTo())
		if conv == 'p' && pointee.Kind() == types.KindPointer {
			continue
		}
		if pointee.Qualifiers().Has(types.QualConst) || pointee.Qualifiers().Has(types.QualVolatile) {
			warnf(sink, flags, p, "argument type does not match conversion specifier '%%%s%c' at position %d", mod, conv, numFmt)
			continue
		}
		unqual := stripQual(tb, pointee)
		expectedUnqual := stripQual(tb, types.SkipTyperef(expected))
		if tb.Identify(unqual) == tb.Identify(expectedUnqual) {
			continue
		}
		if expected.Kind() == types.KindAtomic && expected.AtomicKind() == types.Char &&
			unqual.Kind() == types.KindAtomic && (unqual.AtomicKind() == types.SChar || unqual.AtomicKind() == types.UChar) {
			continue
		}
		warnf(sink, flags, p, "argument type does not match conversion specifier '%%%s%c' at position %d", mod, conv, numFmt)
	}

	if embeddedNUL {
		warnf(sink, flags, p, "format string contains '\\0'")
	}
	if argIdx < len(rest) {
		numArgs := len(rest)
		plural := func(v int) string {
			if v != 1 {
				return "s"
			}
			return ""
		}
		warnf(sink, flags, p, "%d argument%s but only %d format specifier%s",
			numArgs, plural(numArgs), numFmt, plural(numFmt))
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
