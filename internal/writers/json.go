// internal/writers/json.go
package writers

import (
	"encoding/json"
	"io"

	"github.com/sanath-2024/stan-x-paper-prep/pkg/api"
)

func init() { Register("json", NewJSON) }

// docReporter buffers both totals and hands a v1 document to encode on Close.
type docReporter struct {
	w                  io.Writer
	doc                api.CoverageV1
	haveRef, haveReads bool
	encode             func(io.Writer, api.CoverageV1) error
}

func (d *docReporter) Reference(nt int64) error {
	d.doc.ReferenceNT, d.haveRef = nt, true
	return nil
}

func (d *docReporter) Reads(nt int64) error {
	d.doc.ReadsNT, d.haveReads = nt, true
	return nil
}

func (d *docReporter) Close() error {
	if !d.haveRef || !d.haveReads {
		return nil
	}
	d.doc.Coverage = api.Ratio(Coverage(d.doc.ReferenceNT, d.doc.ReadsNT))
	return d.encode(d.w, d.doc)
}

// NewJSON writes one indented api.CoverageV1 object once both totals are known.
func NewJSON(w io.Writer) Reporter {
	return &docReporter{w: w, encode: func(w io.Writer, v api.CoverageV1) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}}
}
