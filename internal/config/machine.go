// Package config holds the process-wide configuration consulted at
// init: machine word size, char signedness, bitfield byte order, the
// wchar_t backing kind, the active C-mode bitset, the default calling
// convention, and an optional long-double-size override.
package config

// CMode is one flag in the c_mode bitset.
type CMode uint8

const (
	CModeC89 CMode = 1 << iota
	CModeC99
	CModeGNUC
	CModeMS
	CModeCXX
)

// Has reports whether every bit of want is set in m.
func (m CMode) Has(want CMode) bool {
	return m&want == want
}

// CallingConvention is a function type's calling-convention payload.
type CallingConvention string

const (
	CCDefault  CallingConvention = "default"
	CCCdecl    CallingConvention = "cdecl"
	CCStdcall  CallingConvention = "stdcall"
	CCFastcall CallingConvention = "fastcall"
	CCThiscall CallingConvention = "thiscall"
)

// WcharKind names which atomic kind backs wchar_t; kept as a string so
// internal/types can look it up by AtomicKind.String() without an
// import cycle.
type WcharKind string

// Machine is the configuration table, one instance per translation
// unit.
type Machine struct {
	// MachineSize is 16, 32, or 64.
	MachineSize int
	// CharIsSigned is the sign of bare char.
	CharIsSigned bool
	// ByteOrderBigEndian selects which bit-field packing algorithm applies.
	ByteOrderBigEndian bool
	// WcharKind is the atomic kind backing wchar_t, by name
	// ("int", "unsigned short", ...).
	WcharKind WcharKind
	// CMode is the enabled C-mode bitset.
	CMode CMode
	// DefaultCallingConvention is used for function types that don't
	// request one explicitly.
	DefaultCallingConvention CallingConvention
	// ForceLongDoubleSize overrides long double's size when > 0.
	ForceLongDoubleSize int
}

// Default returns the default configuration: 32-bit machine,
// signed char, little-endian bitfields, wchar_t backed by int, ANSI +
// C99 + GNU extensions enabled, cdecl calling convention.
func Default() Machine {
	return Machine{
		MachineSize:              32,
		CharIsSigned:             true,
		ByteOrderBigEndian:       false,
		WcharKind:                "int",
		CMode:                    CModeC89 | CModeC99 | CModeGNUC,
		DefaultCallingConvention: CCCdecl,
		ForceLongDoubleSize:      0,
	}
}
