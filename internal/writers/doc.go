// Package writers turns coverage results into serialized reports.
//
// Design:
//   • Writers own all presentation knowledge (text lines, JSON, YAML).
//   • The coverage driver only hands over numbers, in order, as they are known.
//   • JSON/YAML go through pkg/api (v1) for a stable wire format.
package writers
