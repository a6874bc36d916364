// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Logger writes prefixed diagnostic lines to stderr. A nil *Logger discards
// everything, so library code can log unconditionally.
type Logger struct {
	Dst     io.Writer
	Quiet   bool // suppress warnings
	Verbose bool // emit INFO lines
	Debug   bool // emit DEBUG dumps
}

func (l *Logger) Warnf(format string, a ...any) {
	if l == nil || l.Dst == nil {
		return
	}
	Warnf(l.Dst, l.Quiet, format, a...)
}

func (l *Logger) Infof(format string, a ...any) {
	if l == nil || l.Dst == nil || !l.Verbose {
		return
	}
	_, _ = fmt.Fprintf(l.Dst, "INFO: "+format+"\n", a...)
}

// Dump pretty-prints v under label when Debug is set.
func (l *Logger) Dump(label string, v any) {
	if l == nil || l.Dst == nil || !l.Debug {
		return
	}
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
	body := strings.TrimRight(cfg.Sdump(v), "\n")
	_, _ = fmt.Fprintf(l.Dst, "DEBUG: %s:\n%s\n", label, body)
}
