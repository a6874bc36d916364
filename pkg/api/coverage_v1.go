// pkg/api/coverage_v1.go
package api

import (
	"encoding/json"
	"math"
	"strconv"
)

// CoverageV1 is the stable JSON/YAML schema for a fast_coverage report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type CoverageV1 struct {
	ReferenceNT int64 `json:"reference_nt" yaml:"reference_nt"`
	ReadsNT     int64 `json:"reads_nt" yaml:"reads_nt"`
	Coverage    Ratio `json:"coverage" yaml:"coverage"`
}

// Ratio is a coverage value. JSON has no spelling for non-finite numbers, so
// those are encoded as the strings "inf", "-inf" and "NaN".
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	v := float64(r)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-inf"`), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		switch s {
		case "NaN":
			*r = Ratio(math.NaN())
		case "inf":
			*r = Ratio(math.Inf(1))
		case "-inf":
			*r = Ratio(math.Inf(-1))
		default:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			*r = Ratio(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = Ratio(v)
	return nil
}
