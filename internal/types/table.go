package types

import (
	"fmt"
	"strings"

	"github.com/cparsecore/cparsecore/internal/config"
)

// Table is the hash-cons registry: every constructor routes its
// freshly-built *Type through Identify, which returns the single
// canonical instance for that structural shape. Two types with the
// same Kind, Qualifiers, and kind-specific fields are always the same
// *Type pointer afterward, so TypesCompatible can use == once both
// sides have been identified.
type Table struct {
	cfg          config.Machine
	bySig        map[string]*Type
	sizeSigned   map[int]AtomicKind
	sizeUnsigned map[int]AtomicKind
}

// NewTable returns an empty hash-cons table bound to cfg. cfg is fixed
// for the table's lifetime — a new translation unit gets a new Table.
func NewTable(cfg config.Machine) *Table {
	return &Table{
		cfg:          cfg,
		bySig:        make(map[string]*Type),
		sizeSigned:   make(map[int]AtomicKind),
		sizeUnsigned: make(map[int]AtomicKind),
	}
}

// Machine returns the table's bound configuration.
func (tb *Table) Machine() config.Machine { return tb.cfg }

// Identify returns the canonical *Type for t's structural shape,
// registering t itself as canonical on first sight. Every constructor
// in this package ends by calling Identify.
func (tb *Table) Identify(t *Type) *Type {
	key := tb.signature(t)
	if existing, ok := tb.bySig[key]; ok {
		return existing
	}
	tb.bySig[key] = t
	return t
}

// signature builds the canonical structural key. Nested *Type fields
// are assumed already-identified (constructors identify their
// arguments bottom-up), so their pointer value stands in for their
// full structural shape.
func (tb *Table) signature(t *Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|", t.kind, t.qualifiers)
	switch t.kind {
	case KindAtomic, KindComplex, KindImaginary:
		fmt.Fprintf(&b, "%d", t.atomicKind)
	case KindPointer:
		fmt.Fprintf(&b, "%p|%v", t.pointsTo, t.basedOn)
	case KindReference:
		fmt.Fprintf(&b, "%p", t.refersTo)
	case KindArray:
		fmt.Fprintf(&b, "%p|%v|%d|%v|%v|%v", t.element, t.sizeConstant, t.arraySize, t.isVLA, t.hasImplicitSize, t.isStaticArray)
	case KindFunction:
		fmt.Fprintf(&b, "%p|%v|%v|%v|%d|%s|%d", t.returnType, t.variadic, t.unspecifiedParameters, t.krStyle, t.linkage, t.callingConvention, t.fnModifiers)
		for _, p := range t.params {
			fmt.Fprintf(&b, "|%p", p.Type)
		}
	case KindCompoundStruct, KindCompoundUnion, KindEnum:
		fmt.Fprintf(&b, "%p|%d", t.entity, t.enumUnderlying)
	case KindBitfield:
		fmt.Fprintf(&b, "%p|%d", t.bitfieldBase, t.bitfieldBitSize)
	case KindTypedef:
		fmt.Fprintf(&b, "%p", t.typedef)
	case KindTypeof:
		fmt.Fprintf(&b, "%p|%p", t.typeofType, t.typeofExpr)
	case KindBuiltin:
		fmt.Fprintf(&b, "%p|%p", t.builtinSymbol, t.builtinReal)
	}
	return b.String()
}

// signedIntKindForSize memoizes FindSignedIntKindForSize — the
// candidate scan only runs once per distinct size for this table's
// lifetime.
func (tb *Table) signedIntKindForSize(n int) (AtomicKind, bool) {
	if k, ok := tb.sizeSigned[n]; ok {
		return k, true
	}
	k, ok := FindSignedIntKindForSize(n, tb.cfg)
	if ok {
		tb.sizeSigned[n] = k
	}
	return k, ok
}

// unsignedIntKindForSize is the unsigned counterpart of signedIntKindForSize.
func (tb *Table) unsignedIntKindForSize(n int) (AtomicKind, bool) {
	if k, ok := tb.sizeUnsigned[n]; ok {
		return k, true
	}
	k, ok := FindUnsignedIntKindForSize(n, tb.cfg)
	if ok {
		tb.sizeUnsigned[n] = k
	}
	return k, ok
}

// SignedIntKindForSize returns the signed integer kind of exact size n
// bytes under the table's machine configuration, memoized.
func (tb *Table) SignedIntKindForSize(n int) (AtomicKind, bool) {
	return tb.signedIntKindForSize(n)
}

// UnsignedIntKindForSize returns the unsigned integer kind of exact
// size n bytes under the table's machine configuration, memoized.
func (tb *Table) UnsignedIntKindForSize(n int) (AtomicKind, bool) {
	return tb.unsignedIntKindForSize(n)
}
