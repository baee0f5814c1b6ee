package cli

import (
	"fmt"
	"io"
)

// logger provides conditional debug output.
type logger struct {
	w       io.Writer
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		fmt.Fprintf(l.w, format, args...)
	}
}

// warner reports non-fatal problems such as unreadable directories.
// It satisfies walk.Logger.
type warner struct {
	w      io.Writer
	prefix string
}

// Printf writes one warning line.
func (w warner) Printf(format string, args ...any) {
	fmt.Fprintf(w.w, w.prefix+format+"\n", args...)
}
