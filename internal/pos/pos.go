// Package pos carries the source-location shape the core shares with
// the external lexer/parser: a filename and a line number, nothing more.
package pos

import "fmt"

// Position is the (filename, line) pair the core tracks per entity.
// The core never tracks columns or byte offsets; that precision is the
// external lexer's concern.
type Position struct {
	File string
	Line uint32
}

// None is the zero value, used for synthetic entities the core itself
// introduces (implicit declarations, builtin aliases).
var None = Position{}

func (p Position) String() string {
	if p.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// IsValid reports whether p was set by a real source location.
func (p Position) IsValid() bool {
	return p.File != ""
}
