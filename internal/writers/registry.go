// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Reporter receives coverage statistics in output order. Streaming reporters
// write each value as it arrives; document reporters buffer until Close.
type Reporter interface {
	Reference(nt int64) error
	Reads(nt int64) error
	// Close emits the coverage ratio (and anything still buffered).
	Close() error
}

// Reporter registry (format → constructor). Register in init() blocks from the
// format files.
var Reporters = map[string]func(w io.Writer) Reporter{}

// Register is idempotent, last wins.
func Register(format string, fn func(io.Writer) Reporter) { Reporters[format] = fn }

// Lookup returns the constructor registered for format.
func Lookup(format string) (func(io.Writer) Reporter, error) {
	fn, ok := Reporters[format]
	if !ok {
		return nil, fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn, nil
}

// New returns the reporter registered for format.
func New(format string, w io.Writer) (Reporter, error) {
	fn, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	return fn(w), nil
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Reporters))
	for k := range Reporters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Coverage is reads/ref with IEEE-754 semantics (inf for ref == 0, NaN for 0/0).
func Coverage(refNT, readsNT int64) float64 {
	return float64(readsNT) / float64(refNT)
}
