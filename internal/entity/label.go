package entity

// Label is a goto target, with the usual
// C warning flags for "declared but never jumped to" and "address
// taken" (GNU computed-goto `&&label`). Statement is an interface{}
// rather than ast.Stmt to keep internal/entity from importing
// internal/ast; whoever builds the labeled statement sets it.
type Label struct {
	Base
	Used         bool
	AddressTaken bool
	Statement    interface{}
}

// NewLabel constructs a label entity.
func NewLabel(base Base) *Label {
	base.kind = KindLabel
	base.namespace = NamespaceLabel
	return &Label{Base: base}
}

// LocalLabel is a GNU `__label__` declaration: a label scoped to the
// block it's declared in rather than the whole function, so a nested
// block can reuse the name without colliding with an outer label of
// the same name. It shares Label's fields; its own Kind
// (KindLocalLabel) tells the two apart, while both live in
// NamespaceLabel, so Scope.Lookup finds either one the same way.
type LocalLabel struct {
	Label
}

// NewLocalLabel constructs a __label__ entity.
func NewLocalLabel(base Base) *LocalLabel {
	base.kind = KindLocalLabel
	base.namespace = NamespaceLabel
	return &LocalLabel{Label: Label{Base: base}}
}

// NamespaceEntity is a C++ namespace, owning a member Scope. The
// core's C89/C99 scope never produces one directly; the variant
// exists so a later C++-mode extension has a slot ready.
type NamespaceEntity struct {
	Base
	Members *Scope
}

// NewNamespace constructs a namespace entity.
func NewNamespace(base Base, members *Scope) *NamespaceEntity {
	base.kind = KindNamespace
	return &NamespaceEntity{Base: base, Members: members}
}
