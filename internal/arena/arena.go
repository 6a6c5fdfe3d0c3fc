// Package arena models a bump allocator: every AST node, type node,
// and entity is conceptually allocated from one Arena per translation
// unit and lives until the whole unit is discarded. Go's garbage
// collector already reclaims individual nodes, so Arena doesn't
// manage raw memory the way an obstack-style allocator does; instead it gives
// every allocation a single owner and a single Reset point, which is
// the property a lifecycle bounded by the translation unit actually
// needs — modelling real pointer-bump allocation would require
// unsafe.Pointer tricks the rest of this module's ecosystem never
// reaches for.
package arena

// Arena owns the allocation count for one translation unit. The zero
// value is ready to use.
type Arena struct {
	count int
}

// New returns an empty Arena.
func New() *Arena {
	return &Arena{}
}

// Alloc allocates one zero-valued T, attributing it to a, and returns
// a pointer to it. Every constructor in internal/types, internal/entity,
// and internal/ast calls this instead of a bare `new`, so a.count
// reflects exactly what the translation unit allocated.
func Alloc[T any](a *Arena) *T {
	a.count++
	return new(T)
}

// AllocSlice allocates a slice of n zero-valued T, attributed to a.
func AllocSlice[T any](a *Arena, n int) []T {
	a.count += n
	return make([]T, n)
}

// Count reports how many values have been allocated since the last Reset.
func (a *Arena) Count() int {
	return a.count
}

// Reset marks the arena as torn down, the way a translation unit's
// teardown frees its backing storage in one shot. Previously allocated
// values remain valid Go values — Reset only zeroes the accounting —
// but by convention nothing continues to use them past this point.
func (a *Arena) Reset() {
	a.count = 0
}
