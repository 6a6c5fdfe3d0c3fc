package attribute

import (
	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/types"
)

// Modifiers is attribute resolution's output bitset, bit-for-bit
// identical to the declaration-modifier bitset entity.DeclModifiers uses. Kept
// independent of internal/entity's own DeclModifiers type so this
// package never has to import entity; callers convert with a plain
// numeric cast (both are uint32-backed).
type Modifiers uint32

const (
	ModNone              Modifiers = 0
	ModDllimport         Modifiers = 1 << 0
	ModDllexport         Modifiers = 1 << 1
	ModThread            Modifiers = 1 << 2
	ModNaked             Modifiers = 1 << 3
	ModMicrosoftInline   Modifiers = 1 << 4
	ModForceinline       Modifiers = 1 << 5
	ModSelectany         Modifiers = 1 << 6
	ModNothrow           Modifiers = 1 << 7
	ModNovtable          Modifiers = 1 << 8
	ModNoreturn          Modifiers = 1 << 9
	ModNoinline          Modifiers = 1 << 10
	ModRestrict          Modifiers = 1 << 11
	ModNoalias           Modifiers = 1 << 12
	ModTransparentUnion  Modifiers = 1 << 13
	ModConst             Modifiers = 1 << 14
	ModPure              Modifiers = 1 << 15
	ModConstructor       Modifiers = 1 << 16
	ModDestructor        Modifiers = 1 << 17
	ModUnused            Modifiers = 1 << 18
	ModUsed              Modifiers = 1 << 19
	ModCdecl             Modifiers = 1 << 20
	ModFastcall          Modifiers = 1 << 21
	ModStdcall           Modifiers = 1 << 22
	ModThiscall          Modifiers = 1 << 23
	ModDeprecated        Modifiers = 1 << 24
	ModReturnsTwice      Modifiers = 1 << 25
	ModMalloc            Modifiers = 1 << 26
)

// kindToModifier maps the attributes that only ever set a plain flag
// (no argument, no type change) directly onto a Modifiers bit.
var kindToModifier = map[Kind]Modifiers{
	KindDllimport:        ModDllimport,
	KindDllexport:        ModDllexport,
	KindThread:           ModThread,
	KindNaked:            ModNaked,
	KindSelectany:        ModSelectany,
	KindNothrow:          ModNothrow,
	KindNovtable:         ModNovtable,
	KindNoreturn:         ModNoreturn,
	KindNoinline:         ModNoinline,
	KindRestrict:         ModRestrict,
	KindNoalias:          ModNoalias,
	KindTransparentUnion: ModTransparentUnion,
	KindConst:            ModConst,
	KindPure:             ModPure,
	KindConstructor:      ModConstructor,
	KindDestructor:       ModDestructor,
	KindUnused:           ModUnused,
	KindUsed:             ModUsed,
	KindDeprecated:       ModDeprecated,
	KindReturnsTwice:     ModReturnsTwice,
	KindMalloc:           ModMalloc,
}

var kindToCallingConvention = map[Kind]config.CallingConvention{
	KindCdecl:    config.CCCdecl,
	KindStdcall:  config.CCStdcall,
	KindFastcall: config.CCFastcall,
	KindThiscall: config.CCThiscall,
}

// Result is the outcome of resolving an attribute list against a base
// type: the folded modifier bitset, the (possibly re-identified) type,
// and whether the compound should pack its members.
type Result struct {
	Modifiers Modifiers
	Type      *types.Type
	Packed    bool
	Aligned   int // explicit alignment override, 0 if none requested or not a positive power of two
}

// Resolve folds attrs onto baseType, returning the accumulated
// modifier bitset and the type as changed by type-affecting
// attributes (calling convention, mode()). Every other attribute only
// contributes to Modifiers/Packed/Aligned; the caller's declaration
// builder is responsible for attaching those to the entity.
func Resolve(tb *types.Table, baseType *types.Type, attrs []Attribute) Result {
	res := Result{Type: baseType}
	for _, a := range attrs {
		if m, ok := kindToModifier[a.Kind]; ok {
			res.Modifiers |= m
		}
		switch a.Kind {
		case KindPacked:
			res.Packed = true
		case KindAligned:
			if len(a.Args) > 0 && a.Args[0].IsInt {
				if n := a.Args[0].IntValue; n > 0 && n&(n-1) == 0 {
					res.Aligned = int(n)
				}
			} else {
				res.Aligned = maxNaturalAlignment
			}
		case KindCdecl, KindStdcall, KindFastcall, KindThiscall:
			res.Modifiers |= callingConventionModifier(a.Kind)
			res.Type = retargetCallingConvention(tb, res.Type, kindToCallingConvention[a.Kind])
		case KindMode:
			if len(a.Args) > 0 && a.Args[0].Identifier != nil {
				if retyped, ok := applyMode(tb, res.Type, a.Args[0].Identifier.Text()); ok {
					res.Type = retyped
				}
			}
		}
	}
	return res
}

// maxNaturalAlignment stands in for GCC's bare `__attribute__((aligned))`
// (no argument), which requests the target's maximum natural alignment.
const maxNaturalAlignment = 16

func callingConventionModifier(k Kind) Modifiers {
	switch k {
	case KindCdecl:
		return ModCdecl
	case KindStdcall:
		return ModStdcall
	case KindFastcall:
		return ModFastcall
	case KindThiscall:
		return ModThiscall
	}
	return ModNone
}

// retargetCallingConvention rebuilds a Function type under a new
// calling convention; non-function types are returned unchanged
// (diagnosed as a warning at the call site, not here).
func retargetCallingConvention(tb *types.Table, t *types.Type, conv config.CallingConvention) *types.Type {
	return tb.WithCallingConvention(t, conv)
}

// applyMode implements GNU `__attribute__((mode(X)))`: retarget an
// integer atomic type to the machine mode named by modeName (e.g.
// "QI"→1 byte, "HI"→2, "SI"→4, "DI"→8 — the ABI's machine_mode
// letters). A leading and trailing `__` pair on modeName (`__DI__`) is
// stripped before the lookup. Returns ok=false for unrecognized or
// inapplicable modes.
func applyMode(tb *types.Table, t *types.Type, modeName string) (*types.Type, bool) {
	if t.Kind() != types.KindAtomic {
		return t, false
	}
	if len(modeName) > 4 && modeName[:2] == "__" && modeName[len(modeName)-2:] == "__" {
		modeName = modeName[2 : len(modeName)-2]
	}
	size, ok := modeSizes[modeName]
	if !ok {
		return t, false
	}
	if types.GetAtomicFlags(t.AtomicKind(), tb.Machine())&types.FlagSigned != 0 {
		kind, ok := tb.SignedIntKindForSize(size)
		if !ok {
			return t, false
		}
		return tb.MakeAtomic(kind, t.Qualifiers()), true
	}
	kind, ok := tb.UnsignedIntKindForSize(size)
	if !ok {
		return t, false
	}
	return tb.MakeAtomic(kind, t.Qualifiers()), true
}

var modeSizes = map[string]int{
	"QI": 1, "HI": 2, "SI": 4, "DI": 8,
	"byte": 1, "word": 4, "pointer": 4,
}
