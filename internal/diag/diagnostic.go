// Package diag is the one channel every other component routes
// user-facing output through: a (position, severity, message) triple
// fed to a Sink. The core never formats or gates diagnostics itself
// beyond the warning-flag check in WarningFlags — rendering belongs
// to the driver, keeping a clean separation between emitting a
// diagnostic and gating it on a -W flag.
package diag

import "github.com/cparsecore/cparsecore/internal/pos"

// Severity is one of the three levels a Diagnostic can carry.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityFatal   Severity = "fatal"
)

// Stage identifies which component raised the diagnostic, for callers
// that want to filter or group by phase.
type Stage string

const (
	StageAttribute Stage = "attribute"
	StageLayout    Stage = "layout"
	StageConstant  Stage = "constant"
	StageMangle    Stage = "mangle"
	StageFormat    Stage = "format"
	StagePrinter   Stage = "printer"
	StageTypes     Stage = "types"
)

// Diagnostic is one message routed through a Sink.
type Diagnostic struct {
	Position pos.Position
	Severity Severity
	Stage    Stage
	Message  string
}

// Sink receives diagnostics. Most callers pass a *Collector; a driver
// that wants streaming output can implement Sink directly.
type Sink interface {
	Emit(d Diagnostic)
}

// Collector is the default Sink: it buffers every diagnostic and
// tracks whether any error-or-worse was seen, so the driver's final
// exit code can reflect whether any error was emitted.
type Collector struct {
	Diagnostics []Diagnostic
	hadError    bool
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Emit records d and latches hadError when d.Severity is error or fatal.
func (c *Collector) Emit(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
	if d.Severity == SeverityError || d.Severity == SeverityFatal {
		c.hadError = true
	}
}

// HadError reports whether any error or fatal diagnostic was emitted.
func (c *Collector) HadError() bool {
	return c.hadError
}

// Errorf emits an error diagnostic from the given stage.
func Errorf(sink Sink, stage Stage, p pos.Position, format string, args ...any) {
	sink.Emit(Diagnostic{Position: p, Severity: SeverityError, Stage: stage, Message: sprintf(format, args...)})
}

// Warnf emits a warning diagnostic, gated by flag: if flags is
// non-nil and flag is not enabled, nothing is emitted — mirroring
// the "gated by a named warning flag" rule.
func Warnf(sink Sink, flags *WarningFlags, flag WarningFlag, stage Stage, p pos.Position, format string, args ...any) {
	if flags != nil && !flags.Enabled(flag) {
		return
	}
	sink.Emit(Diagnostic{Position: p, Severity: SeverityWarning, Stage: stage, Message: sprintf(format, args...)})
}
