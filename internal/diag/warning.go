package diag

// WarningFlag names one of the gated warnings the front-end can emit:
// unknown mode, attribute on inappropriate entity, format mismatches,
// padding inserted, superfluous packed, unrecognized attributes.
type WarningFlag string

const (
	WarnOther          WarningFlag = "other"
	WarnFormat         WarningFlag = "format"
	WarnPadded         WarningFlag = "padded"
	WarnPacked         WarningFlag = "packed"
	WarnAttribute      WarningFlag = "attribute"
	WarnUnknownPragmas WarningFlag = "unknown-pragmas"
)

// WarningFlags is the set of currently-enabled named warning flags.
// The core only ever reads it; owning and parsing -W command-line
// flags is the driver's job.
type WarningFlags struct {
	enabled map[WarningFlag]bool
}

// NewWarningFlags builds a flag set with the given flags enabled.
func NewWarningFlags(flags ...WarningFlag) *WarningFlags {
	w := &WarningFlags{enabled: make(map[WarningFlag]bool, len(flags))}
	for _, f := range flags {
		w.enabled[f] = true
	}
	return w
}

// AllWarnings enables every known warning flag, useful for tests that
// want every gated diagnostic to surface.
func AllWarnings() *WarningFlags {
	return NewWarningFlags(WarnOther, WarnFormat, WarnPadded, WarnPacked, WarnAttribute, WarnUnknownPragmas)
}

// Enabled reports whether flag is turned on. A nil *WarningFlags
// behaves as "nothing enabled", not "everything enabled" — callers
// that want any warning enabled by default must ask for it explicitly.
func (w *WarningFlags) Enabled(flag WarningFlag) bool {
	if w == nil {
		return false
	}
	return w.enabled[flag]
}

// Set turns flag on or off.
func (w *WarningFlags) Set(flag WarningFlag, on bool) {
	if w.enabled == nil {
		w.enabled = make(map[WarningFlag]bool)
	}
	w.enabled[flag] = on
}
