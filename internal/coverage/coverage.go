// Package coverage computes naive sequencing coverage: total read bases over
// total reference bases.
package coverage

import (
	"bufio"
	"context"
	"errors"
	"io/fs"

	"github.com/sanath-2024/stan-x-paper-prep/internal/cmdutil"
	"github.com/sanath-2024/stan-x-paper-prep/internal/errs"
	"github.com/sanath-2024/stan-x-paper-prep/internal/fasta"
	"github.com/sanath-2024/stan-x-paper-prep/internal/fastq"
	"github.com/sanath-2024/stan-x-paper-prep/internal/pipeline"
	"github.com/sanath-2024/stan-x-paper-prep/internal/sink"
	"github.com/sanath-2024/stan-x-paper-prep/internal/writers"
)

// Options configures one fast_coverage run. Paths of "-" select the standard
// streams supplied by Streams.
type Options struct {
	Reads string // FASTQ
	Ref   string // FASTA
	Out   string

	Format    string // report format; "" means text
	Threads   int
	BatchSize int

	Streams sink.Streams
	Log     *cmdutil.Logger
}

// Run opens the reference, the reads and the output (in that order), sums
// both inputs and writes the report. Lines already reported stay written
// when a later stage fails. An unknown Format fails before anything is opened.
func Run(ctx context.Context, o Options) (err error) {
	format := o.Format
	if format == "" {
		format = "text"
	}
	newReporter, err := writers.Lookup(format)
	if err != nil {
		return errs.New(errs.CLI, "", "", err)
	}

	ref, err := o.Streams.OpenRead(o.Ref)
	if err != nil {
		return err
	}
	defer func() { _ = ref.Close() }()

	reads, err := o.Streams.OpenRead(o.Reads)
	if err != nil {
		return err
	}
	defer func() { _ = reads.Close() }()

	if ref.Kind() == sink.KindStd && reads.Kind() == sink.KindStd {
		o.Log.Warnf("--ref and --reads both read standard input; the reads will only see what the reference leaves")
	}

	out, err := o.Streams.OpenWrite(o.Out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = errs.New(errs.IO, "close", out.Name(), cerr)
		}
	}()

	bw := bufio.NewWriter(out)
	rep := newReporter(bw)
	defer func() {
		if ferr := flush(bw, out); ferr != nil && err == nil {
			err = ferr
		}
	}()

	cfg := pipeline.Config{Threads: o.Threads, BatchSize: o.BatchSize}

	refTot, err := pipeline.SumLengths[fasta.Record](ctx, cfg, fasta.NewScanner(ref))
	if err != nil {
		return classify(ctx, "parse reference", ref.Name(), err)
	}
	o.Log.Infof("reference %s: %d records, %d nt", ref.Name(), refTot.Records, refTot.Bases)
	if err := rep.Reference(refTot.Bases); err != nil {
		return errs.New(errs.IO, "write", out.Name(), err)
	}

	readsTot, err := pipeline.SumLengths[fastq.Record](ctx, cfg, fastq.NewScanner(reads))
	if err != nil {
		return classify(ctx, "parse reads", reads.Name(), err)
	}
	o.Log.Infof("reads %s: %d records, %d nt", reads.Name(), readsTot.Records, readsTot.Bases)
	if err := rep.Reads(readsTot.Bases); err != nil {
		return errs.New(errs.IO, "write", out.Name(), err)
	}
	if refTot.Bases == 0 {
		o.Log.Warnf("reference %s has no sequence; coverage is undefined", ref.Name())
	}

	if err := rep.Close(); err != nil {
		return errs.New(errs.IO, "write", out.Name(), err)
	}
	return nil
}

// classify maps a reduction failure onto the taxonomy. Failures reading the
// underlying handle are IO; everything the parsers reject is FASTQ, for FASTA
// input as well.
func classify(ctx context.Context, op, name string, err error) error {
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return err
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return errs.New(errs.IO, "read", name, err)
	}
	return errs.New(errs.FASTQ, op, name, err)
}

func flush(bw *bufio.Writer, out *sink.Output) error {
	if err := bw.Flush(); err != nil {
		return errs.New(errs.IO, "write", out.Name(), err)
	}
	if err := out.Flush(); err != nil {
		return errs.New(errs.IO, "flush", out.Name(), err)
	}
	return nil
}
