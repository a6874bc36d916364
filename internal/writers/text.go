// internal/writers/text.go
package writers

import (
	"fmt"
	"io"
	"math"
	"strconv"
)

func init() { Register("text", NewText) }

type textReporter struct {
	w                  io.Writer
	ref, reads         int64
	haveRef, haveReads bool
}

// NewText streams the three-line report:
//
//	reference nt: <int>
//	reads nt: <int>
//	coverage: <ratio>x
func NewText(w io.Writer) Reporter { return &textReporter{w: w} }

func (t *textReporter) Reference(nt int64) error {
	t.ref, t.haveRef = nt, true
	_, err := fmt.Fprintf(t.w, "reference nt: %d\n", nt)
	return err
}

func (t *textReporter) Reads(nt int64) error {
	t.reads, t.haveReads = nt, true
	_, err := fmt.Fprintf(t.w, "reads nt: %d\n", nt)
	return err
}

func (t *textReporter) Close() error {
	if !t.haveRef || !t.haveReads {
		return nil
	}
	_, err := fmt.Fprintf(t.w, "coverage: %sx\n", FormatRatio(Coverage(t.ref, t.reads)))
	return err
}

// FormatRatio renders v as the shortest decimal that round-trips, without an
// exponent ("0.5", "2", "0.0001"). Infinities print as "inf"/"-inf".
func FormatRatio(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
