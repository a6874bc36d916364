// internal/pipeline/source.go
package pipeline

// Source is the minimal capability the pipeline needs from a record reader.
// fasta.Scanner and fastq.Scanner satisfy it, as can fakes in tests.
type Source[R any] interface {
	Scan() bool
	Record() R
	Err() error
}

// Measurer reports the counted length of one record.
type Measurer interface {
	Len() int
}

// Sizer is implemented by records that hold their payload in memory. The
// reducer uses it to cap the bytes waiting in one batch.
type Sizer interface {
	Size() int
}
