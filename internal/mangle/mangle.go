// Package mangle computes linker names for declarations: the
// platform-specific decoration functions and variables need on
// Linux/ELF, Win32/PE, and Mach-O, plus an Itanium-style name-mangling
// scheme for non-C linkage. Only the mangling scheme itself
// (mangler.mangleEntity/mangleType) needs a bytes.Buffer and visits a type graph; the
// three platform entry points are thin dispatchers around it.
package mangle

import (
	"bytes"
	"fmt"

	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/diag"
	"github.com/cparsecore/cparsecore/internal/entity"
	"github.com/cparsecore/cparsecore/internal/types"
)

// mangler accumulates an Itanium-style mangled name one production at
// a time, mirroring the gapid ia64 mangler's shape: a byte buffer plus
// one method per grammar production.
type mangler struct {
	bytes.Buffer
}

func (m *mangler) mangleEntity(e entity.Entity) {
	m.WriteString("_Z")
	m.name(symbolText(e))
	if fn, ok := e.(*entity.Function); ok {
		m.parameters(types.SkipTyperef(fn.DeclType))
	}
}

func (m *mangler) name(name string) {
	fmt.Fprintf(m, "%d%s", len(name), name)
}

func (m *mangler) parameters(fnType *types.Type) {
	if fnType.UnspecifiedParameters() {
		diag.Bug("mangle", "cannot mangle a function with unspecified parameter types")
	}
	if fnType.KRStyle() {
		diag.Bug("mangle", "cannot mangle a K&R-style parameter list")
	}

	params := fnType.Parameters()
	if len(params) == 0 {
		m.WriteByte('v')
		return
	}
	for _, p := range params {
		m.mangleType(p.Type)
	}
	if fnType.Variadic() {
		m.WriteByte('z')
	}
}

func (m *mangler) qualifiers(q types.Qualifiers) {
	if q.Has(types.QualVolatile) {
		m.WriteByte('V')
	}
	if q.Has(types.QualConst) {
		m.WriteByte('K')
	}
}

// atomicCode is get_atomic_type_mangle's table.
func atomicCode(k types.AtomicKind) byte {
	switch k {
	case types.Void:
		return 'v'
	case types.WCharT:
		return 'w'
	case types.Bool:
		return 'b'
	case types.Char:
		return 'c'
	case types.SChar:
		return 'a'
	case types.UChar:
		return 'h'
	case types.Int:
		return 'i'
	case types.UInt:
		return 'j'
	case types.Short:
		return 's'
	case types.UShort:
		return 't'
	case types.Long:
		return 'l'
	case types.ULong:
		return 'm'
	case types.LongLong:
		return 'x'
	case types.ULongLong:
		return 'y'
	case types.LongDouble:
		return 'e'
	case types.Float:
		return 'f'
	case types.Double:
		return 'd'
	}
	diag.Bug("mangle", "invalid atomic type kind %d in mangler", int(k))
	return 0
}

func (m *mangler) mangleType(orig *types.Type) {
	t := types.SkipTyperef(orig)
	m.qualifiers(t.Qualifiers())

	switch t.Kind() {
	case types.KindAtomic:
		m.WriteByte(atomicCode(t.AtomicKind()))
	case types.KindPointer:
		m.WriteByte('P')
		m.mangleType(t.PointsTo())
	case types.KindReference:
		m.WriteByte('R')
		m.mangleType(t.RefersTo())
	case types.KindFunction:
		m.WriteByte('F')
		if t.FunctionLinkage() == types.LinkageC {
			m.WriteByte('Y')
		}
		m.mangleType(t.ReturnType())
		m.parameters(t)
		m.WriteByte('E')
	case types.KindCompoundStruct, types.KindCompoundUnion:
		m.name(entityName(t.CompoundEntity()))
	case types.KindEnum:
		m.name(entityName(t.CompoundEntity()))
	case types.KindArray:
		switch {
		case t.IsVLA():
			m.WriteString("A_")
		case t.SizeConstant():
			fmt.Fprintf(m, "A%d_", t.ArraySize())
		default:
			diag.Bug("mangle", "cannot mangle a non-constant-sized array type")
		}
		m.mangleType(t.Element())
	case types.KindComplex:
		m.WriteByte('C')
		m.WriteByte(atomicCode(t.AtomicKind()))
	case types.KindImaginary:
		m.WriteByte('G')
		m.WriteByte(atomicCode(t.AtomicKind()))
	case types.KindBitfield:
		diag.Bug("mangle", "no mangling for bit-field types is implemented")
	default:
		diag.Bug("mangle", "invalid type kind %d encountered while mangling", int(t.Kind()))
	}
}

// entityName resolves a compound/enum type's mangled name: its own
// symbol if named, otherwise the anonymous-type alias AliasSymbol
// assigns it.
func entityName(ref types.EntityRef) string {
	if ref == nil {
		diag.Bug("mangle", "mangling a compound/enum type with no entity")
	}
	if sym := ref.EntitySymbol(); sym != nil {
		return sym.Text()
	}
	if alias := ref.AliasSymbol(); alias != nil {
		return alias.Text()
	}
	diag.Bug("mangle", "mangling an anonymous type with no alias symbol")
	return ""
}

func symbolText(e entity.Entity) string {
	if e.Symbol() == nil {
		diag.Bug("mangle", "mangling an entity with no symbol")
	}
	return e.Symbol().Text()
}

// MangleEntity returns e's Itanium-style mangled name (the `_Z...`
// form `create_name_linux_elf`/`create_name_win32` fall back to for
// C++ linkage). e must be a *entity.Function, *entity.Variable, or
// other Declaration-embedding entity.
func MangleEntity(e entity.Entity) string {
	m := &mangler{}
	m.mangleEntity(e)
	return m.String()
}

func declType(e entity.Entity) *types.Type {
	switch v := e.(type) {
	case *entity.Function:
		return v.DeclType
	case *entity.Variable:
		return v.DeclType
	default:
		return nil
	}
}

func linkage(e entity.Entity) types.Linkage {
	t := declType(e)
	if t == nil {
		return types.LinkageC
	}
	skipped := types.SkipTyperef(t)
	if skipped.Kind() != types.KindFunction {
		return types.LinkageC
	}
	return skipped.FunctionLinkage()
}

// CreateNameLinuxELF implements create_name_linux_elf: a function with
// C linkage (or any non-function declaration) keeps its plain spelling,
// a function with C++ linkage mangles through MangleEntity.
func CreateNameLinuxELF(e entity.Entity) string {
	if _, ok := e.(*entity.Function); ok && linkage(e) == types.LinkageCXX {
		return MangleEntity(e)
	}
	return symbolText(e)
}

// CreateNameWin32 implements create_name_win32: calling-convention
// prefix/suffix decoration for the stdcall/fastcall family, `__imp_`
// for dllimport, and Itanium mangling for C++ linkage.
func CreateNameWin32(e entity.Entity, tb *types.Table) string {
	fn, isFn := e.(*entity.Function)
	if !isFn {
		return "_" + symbolText(e)
	}

	skipped := types.SkipTyperef(fn.DeclType)
	var out bytes.Buffer

	if fn.Modifiers.Has(entity.DMDllimport) {
		out.WriteString("__imp_")
	}

	cc := skipped.CallingConvention()
	switch cc {
	case config.CCDefault, config.CCCdecl, config.CCStdcall:
		out.WriteByte('_')
	case config.CCFastcall:
		out.WriteByte('@')
	default:
		diag.Bug("mangle", "unhandled calling convention %q", string(cc))
	}

	switch skipped.FunctionLinkage() {
	case types.LinkageC:
		out.WriteString(symbolText(e))
	case types.LinkageCXX:
		out.WriteString(MangleEntity(e))
	}

	switch cc {
	case config.CCDefault, config.CCCdecl:
	case config.CCStdcall, config.CCFastcall:
		size := 0
		for _, p := range skipped.Parameters() {
			size += tb.GetTypeSize(p.Type, nil)
		}
		fmt.Fprintf(&out, "@%d", size)
	default:
		diag.Bug("mangle", "unhandled calling convention %q", string(cc))
	}

	return out.String()
}

// CreateNameMacho implements create_name_macho: every external symbol
// gets a leading underscore, Mach-O has no C++ linkage support here.
func CreateNameMacho(e entity.Entity) string {
	if linkage(e) == types.LinkageCXX {
		diag.Bug("mangle", "C++ linkage is not supported for Mach-O name mangling")
	}
	return "_" + symbolText(e)
}
