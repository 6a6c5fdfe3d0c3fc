package ast

import (
	"github.com/cparsecore/cparsecore/internal/pos"
	"github.com/cparsecore/cparsecore/internal/symbol"
)

// Initializer is any of the four forms a declarator's initializer can
// take: a single value, a brace-enclosed list (itself holding
// Initializers, recursively), a string used to initialize a char/
// wchar_t array, or a designated member within a list.
type Initializer interface {
	Node
	initializerNode()
}

// InitBase is embedded by every concrete initializer variant.
type InitBase struct {
	position pos.Position
}

// NewInitBase constructs the common header for a new initializer node.
func NewInitBase(p pos.Position) InitBase { return InitBase{position: p} }

func (b *InitBase) Pos() pos.Position  { return b.position }
func (b *InitBase) initializerNode()   {}

// InitValue is `= expr`.
type InitValue struct {
	InitBase
	Value Expr
}

// NewInitValue constructs a scalar initializer.
func NewInitValue(base InitBase, value Expr) *InitValue {
	return &InitValue{InitBase: base, Value: value}
}

// InitList is a brace-enclosed initializer list, `{ a, b, c }`. Each
// element is itself an Initializer so nested aggregates (`{{1,2},{3,4}}`)
// and designated elements within the same list share one representation.
type InitList struct {
	InitBase
	Elements []Initializer
}

// NewInitList constructs a brace-enclosed initializer list.
func NewInitList(base InitBase, elements []Initializer) *InitList {
	return &InitList{InitBase: base, Elements: elements}
}

// InitString initializes a char/wchar_t array directly from a string
// literal, the one case C lets bypass the brace-list form entirely.
type InitString struct {
	InitBase
	Value symbol.Value
}

// NewInitString constructs a string initializer.
func NewInitString(base InitBase, v symbol.Value) *InitString {
	return &InitString{InitBase: base, Value: v}
}

// Designator is one link in a C99 designated-initializer path: either
// `.member` or `[index]`. A DesignatedInit carries a chain of these so
// `.a[2].b = x` is represented as the three-link path it reads as.
type Designator struct {
	Member SymbolRef // nil for an index designator
	Index  Expr      // nil for a member designator
}

// DesignatedInit pairs a designator path with the initializer it
// targets, e.g. `.a[2].b = x` within an enclosing InitList.
type DesignatedInit struct {
	InitBase
	Path  []Designator
	Value Initializer
}

// NewDesignatedInit constructs a C99 designated initializer.
func NewDesignatedInit(base InitBase, path []Designator, value Initializer) *DesignatedInit {
	return &DesignatedInit{InitBase: base, Path: path, Value: value}
}
