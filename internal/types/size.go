package types

import "github.com/cparsecore/cparsecore/internal/config"

// CompoundLayout is the minimal view the type graph needs of a
// compound/enum entity's computed layout: its size and alignment in
// bytes, once internal/layout has run over its members. internal/types
// cannot import internal/layout (layout needs the Type graph to walk
// member types), so GetTypeSize/GetTypeAlignment take a lookup
// function instead, supplied by whoever owns the layout cache
// (internal/unit's Context).
type CompoundLayout interface {
	Size() int
	Alignment() int
}

// LayoutLookup resolves a compound/enum entity's computed layout. It
// returns ok=false for an incomplete type.
type LayoutLookup func(EntityRef) (CompoundLayout, bool)

// GetTypeSize returns t's size in bytes, calling lookup for
// CompoundStruct/CompoundUnion types. Enum, Bitfield, Pointer and
// Function sizes never need lookup; an Array needs it only through a
// compound element type.
func (tb *Table) GetTypeSize(t *Type, lookup LayoutLookup) int {
	u := SkipTyperef(t)
	switch u.kind {
	case KindAtomic, KindComplex, KindImaginary:
		sz := GetAtomicSize(u.atomicKind, tb.cfg)
		if u.kind == KindComplex {
			return sz * 2
		}
		return sz
	case KindPointer, KindReference:
		return GetAtomicSize(ptrIntKind(tb.cfg), tb.cfg)
	case KindArray:
		if !u.sizeConstant {
			return 0
		}
		return int(u.arraySize) * tb.GetTypeSize(u.element, lookup)
	case KindEnum:
		return GetAtomicSize(u.enumUnderlying, tb.cfg)
	case KindCompoundStruct, KindCompoundUnion:
		if lookup == nil {
			return 0
		}
		if l, ok := lookup(u.entity); ok {
			return l.Size()
		}
		return 0
	case KindBuiltin:
		if u.builtinReal != nil {
			return tb.GetTypeSize(u.builtinReal, lookup)
		}
		return 0
	}
	return 0
}

// GetTypeAlignment returns t's required alignment in bytes, calling
// lookup for compound types.
func (tb *Table) GetTypeAlignment(t *Type, lookup LayoutLookup) int {
	u := SkipTyperef(t)
	switch u.kind {
	case KindAtomic, KindComplex, KindImaginary:
		return GetAtomicAlignment(u.atomicKind, tb.cfg)
	case KindPointer, KindReference:
		return GetAtomicAlignment(ptrIntKind(tb.cfg), tb.cfg)
	case KindArray:
		return tb.GetTypeAlignment(u.element, lookup)
	case KindEnum:
		return GetAtomicAlignment(u.enumUnderlying, tb.cfg)
	case KindCompoundStruct, KindCompoundUnion:
		if lookup == nil {
			return 1
		}
		if l, ok := lookup(u.entity); ok {
			return l.Alignment()
		}
		return 1
	case KindBuiltin:
		if u.builtinReal != nil {
			return tb.GetTypeAlignment(u.builtinReal, lookup)
		}
		return 1
	}
	return 1
}

// ptrIntKind returns the integer atomic kind whose size matches a
// pointer under cfg — Long on LP64, Int otherwise — used as the
// stand-in for pointer size/alignment since the atomic property table
// has no separate entry for void*.
func ptrIntKind(cfg config.Machine) AtomicKind {
	if cfg.MachineSize >= 64 {
		return Long
	}
	return Int
}
