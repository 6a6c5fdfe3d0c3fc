// Package unit wires one translation unit's core components together:
// the arena, symbol table, type table, diagnostic collector, and the
// layout engine that supplies internal/types its LayoutLookup
// callback. A Context is the one object cmd/cparsecore constructs and
// threads through the front end.
package unit

import (
	"github.com/google/uuid"

	"github.com/cparsecore/cparsecore/internal/arena"
	"github.com/cparsecore/cparsecore/internal/config"
	"github.com/cparsecore/cparsecore/internal/diag"
	"github.com/cparsecore/cparsecore/internal/layout"
	"github.com/cparsecore/cparsecore/internal/symbol"
	"github.com/cparsecore/cparsecore/internal/types"
)

// Context owns every per-translation-unit resource: allocation
// accounting, symbol interning, the type hash-cons table, layout
// computation, and diagnostic collection. Two Contexts never share a
// Table or Arena — each translation unit gets its own.
type Context struct {
	ID uuid.UUID

	Arena   *arena.Arena
	Symbols *symbol.Table
	Types   *types.Table
	Layout  *layout.Engine
	Diags   *diag.Collector
	Flags   *diag.WarningFlags

	machine config.Machine
}

// New builds a Context for a translation unit compiled under machine,
// with flags controlling which warnings surface; diagnostics are
// collected in the Context's own Diags collector.
// A fresh random ID is stamped on every Context so a driver processing
// several translation units (or retrying one after a crash) can tell
// their diagnostics apart in a combined log.
func New(machine config.Machine, flags *diag.WarningFlags) *Context {
	diags := diag.NewCollector()
	tb := types.NewTable(machine)
	c := &Context{
		ID:      uuid.New(),
		Arena:   arena.New(),
		Symbols: symbol.NewTable(),
		Types:   tb,
		Diags:   diags,
		Flags:   flags,
		machine: machine,
	}
	c.Layout = layout.New(tb, diags, flags)
	return c
}

// Machine returns the configuration the Context was built with.
func (c *Context) Machine() config.Machine { return c.machine }

// LayoutLookup returns the callback internal/types needs to resolve a
// compound/enum entity to its computed size and alignment — c.Layout's
// Lookup method, already shaped to satisfy types.LayoutLookup.
func (c *Context) LayoutLookup() types.LayoutLookup {
	return c.Layout.Lookup
}

// SizeOf returns t's size in bytes under this Context's machine and
// layout cache.
func (c *Context) SizeOf(t *types.Type) int {
	return c.Types.GetTypeSize(t, c.LayoutLookup())
}

// AlignOf returns t's required alignment in bytes under this
// Context's machine and layout cache.
func (c *Context) AlignOf(t *types.Type) int {
	return c.Types.GetTypeAlignment(t, c.LayoutLookup())
}

// Reset discards the arena's allocation accounting, the way a
// translation unit's teardown would free its backing storage in one
// shot. The Context itself (symbol table, type table, diagnostics)
// is not reusable across translation units; Reset only exists so a
// caller that embeds the arena directly in a longer-lived object can
// clear it between phases.
func (c *Context) Reset() {
	c.Arena.Reset()
}
