package diag

import (
	"fmt"
	"io"
	"sort"
)

// Formatter renders a batch of diagnostics to an io.Writer, one line
// per diagnostic, sorted by file then line the way a driver's final
// report typically reads. It is deliberately simpler than a
// source-snippet formatter: positions here only carry (filename,
// line), not the column/byte-range a snippet needs.
type Formatter struct {
	w io.Writer
}

// NewFormatter returns a Formatter writing to w.
func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Format writes every diagnostic in c, sorted by (file, line).
func (f *Formatter) Format(c *Collector) {
	ds := make([]Diagnostic, len(c.Diagnostics))
	copy(ds, c.Diagnostics)
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Position.File != ds[j].Position.File {
			return ds[i].Position.File < ds[j].Position.File
		}
		return ds[i].Position.Line < ds[j].Position.Line
	})
	for _, d := range ds {
		f.formatOne(d)
	}
}

func (f *Formatter) formatOne(d Diagnostic) {
	loc := "<unknown>"
	if d.Position.IsValid() {
		loc = d.Position.String()
	}
	stage := ""
	if d.Stage != "" {
		stage = fmt.Sprintf("[%s] ", d.Stage)
	}
	fmt.Fprintf(f.w, "%s: %s%s: %s\n", loc, stage, d.Severity, d.Message)
}
