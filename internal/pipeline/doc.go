// Package pipeline sums record lengths from a streaming record source.
//
// A single producer drives the source (record extraction is inherently
// serial) and ships batches of records to worker goroutines. Workers keep
// private partial totals which are combined once every worker has joined, so
// the result equals a left-to-right serial sum regardless of scheduling.
//
// The only contracts to implement are Source and Measurer.
package pipeline
