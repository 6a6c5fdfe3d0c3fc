package diag

import "fmt"

func sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// BugError wraps an unreachable/unimplemented condition that
// calls a panic: a type variant guaranteed not to occur, a mangling
// target missing a case, an invalid expression kind reaching the
// classifier or printer, multiple translation units sharing one graph.
// Components raise these with Bug instead of a bare panic so a
// top-level recover() (the cmd/cparsecore CLI) can print a clean
// message instead of a raw goroutine stack trace.
type BugError struct {
	Component string
	Message   string
}

func (e *BugError) Error() string {
	return fmt.Sprintf("compiler bug in %s: %s", e.Component, e.Message)
}

// Bug panics with a *BugError. Call it from truly unreachable
// branches, never from a recoverable error path.
func Bug(component, format string, args ...any) {
	panic(&BugError{Component: component, Message: sprintf(format, args...)})
}
