// Package attribute implements GNU __attribute__ and MS __declspec
// resolution: folding a raw attribute list collected by the parser
// into type changes (packed, calling convention, mode()) and a
// declaration modifier bitset. Deliberately independent of
// internal/entity — entity converts this package's Modifiers into its
// own DeclModifiers via a plain numeric cast, keeping the import graph
// entity → attribute, never the reverse.
package attribute

import "github.com/cparsecore/cparsecore/internal/symbol"

// Kind enumerates the recognized attribute names, GNU and MS combined
// (kept in one Kind space since both surfaces can appear on the same
// declaration in -fms-extensions mode).
type Kind uint8

const (
	KindUnknown Kind = iota
	KindConst
	KindVolatile
	KindCdecl
	KindStdcall
	KindFastcall
	KindThiscall
	KindDeprecated
	KindNoinline
	KindAlwaysInline
	KindReturnsTwice
	KindNoreturn
	KindNaked
	KindPure
	KindMalloc
	KindWeak
	KindConstructor
	KindDestructor
	KindNothrow
	KindTransparentUnion
	KindCommon
	KindNocommon
	KindPacked
	KindUsed
	KindUnused
	KindWarnUnusedResult
	KindAligned
	KindAlias
	KindSection
	KindFormat
	KindFormatArg
	KindWeakref
	KindNonnull
	KindVisibility
	KindMode
	KindSentinel
	KindDllimport
	KindDllexport
	KindSelectany
	KindThread
	KindNovtable
	KindRestrict
	KindNoalias
	KindVectorSize
	KindMayAlias
	KindCleanup
	KindProperty
	KindUUID
)

var kindNames = map[Kind]string{
	KindConst: "const", KindVolatile: "volatile", KindCdecl: "cdecl",
	KindStdcall: "stdcall", KindFastcall: "fastcall", KindThiscall: "thiscall",
	KindDeprecated: "deprecated", KindNoinline: "noinline",
	KindAlwaysInline: "always_inline", KindReturnsTwice: "returns_twice",
	KindNoreturn: "noreturn", KindNaked: "naked", KindPure: "pure",
	KindMalloc: "malloc", KindWeak: "weak", KindConstructor: "constructor",
	KindDestructor: "destructor", KindNothrow: "nothrow",
	KindTransparentUnion: "transparent_union", KindCommon: "common",
	KindNocommon: "nocommon", KindPacked: "packed", KindUsed: "used",
	KindUnused: "unused", KindWarnUnusedResult: "warn_unused_result",
	KindAligned: "aligned", KindAlias: "alias", KindSection: "section",
	KindFormat: "format", KindFormatArg: "format_arg", KindWeakref: "weakref",
	KindNonnull: "nonnull", KindVisibility: "visibility", KindMode: "mode",
	KindSentinel: "sentinel", KindDllimport: "dllimport",
	KindDllexport: "dllexport", KindSelectany: "selectany", KindThread: "thread",
	KindNovtable: "novtable", KindRestrict: "restrict", KindNoalias: "noalias",
	KindVectorSize: "vector_size", KindMayAlias: "may_alias",
	KindCleanup: "cleanup", KindProperty: "property", KindUUID: "uuid",
}

// Name returns the attribute's source spelling.
func (k Kind) Name() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// KindByName resolves a parsed attribute identifier (with any leading
// and trailing double underscores already stripped by the caller) to
// its Kind.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// Argument is one raw argument to a parenthesized attribute
// (`aligned(16)`, `format(printf, 1, 2)`). The core only ever needs a
// constant integer or an identifier out of these; richer expression
// arguments are out of scope.
type Argument struct {
	IntValue   int64
	IsInt      bool
	Identifier *symbol.Symbol
}

// Attribute is one raw `__attribute__((...))` or `__declspec(...)`
// entry as collected by the parser, before resolution.
type Attribute struct {
	Kind Kind
	Args []Argument
}
