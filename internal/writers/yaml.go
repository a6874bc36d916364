// internal/writers/yaml.go
package writers

import (
	"io"

	"gopkg.in/yaml.v2"

	"github.com/sanath-2024/stan-x-paper-prep/pkg/api"
)

func init() { Register("yaml", NewYAML) }

// NewYAML writes one api.CoverageV1 mapping once both totals are known.
// Non-finite coverage renders as yaml.v2's .inf / .nan.
func NewYAML(w io.Writer) Reporter {
	return &docReporter{w: w, encode: func(w io.Writer, v api.CoverageV1) error {
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}}
}
