// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/sanath-2024/stan-x-paper-prep/internal/cliutil"
)

// Subcommands
const (
	CmdFastCoverage = "fast_coverage"
)

// Report formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Options holds the fast_coverage flags.
type Options struct {
	// Input / output
	Reads string // FASTQ, "-" = stdin
	Ref   string // FASTA, "-" = stdin
	Out   string // "-" = stdout

	// Performance
	Threads   int
	BatchSize int

	// Output
	Format string

	// Misc
	Quiet   bool
	Verbose bool
	Debug   bool
}

// ParseArgs registers the fast_coverage flags on fs, parses argv (the
// arguments after the subcommand name) and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	// Input / output
	fs.StringVar(&opt.Reads, "reads", "", "FASTQ reads file or '-' for STDIN [*]")
	fs.StringVar(&opt.Reads, "q", "", "alias of --reads")
	fs.StringVar(&opt.Ref, "ref", "", "FASTA reference file or '-' for STDIN [*]")
	fs.StringVar(&opt.Ref, "r", "", "alias of --ref")
	fs.StringVar(&opt.Out, "out", "", "output file or '-' for STDOUT [*]")
	fs.StringVar(&opt.Out, "o", "", "alias of --out")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&opt.BatchSize, "batch-size", 1024, "records handed to a worker at a time [1024]")

	// Output
	fs.StringVar(&opt.Format, "format", FormatText, "report: text | json | yaml [text]")
	fs.StringVar(&opt.Format, "f", FormatText, "alias of --format")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log per-input record and base counts [false]")
	fs.BoolVar(&opt.Debug, "debug", false, "dump resolved options to STDERR [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if len(posArgs) > 0 {
		return opt, fmt.Errorf("unexpected argument(s): %s", strings.Join(posArgs, " "))
	}
	return opt, Validate(&opt)
}

// Validate applies the fast_coverage invariants.
func Validate(o *Options) error {
	var missing []string
	if o.Reads == "" {
		missing = append(missing, "--reads")
	}
	if o.Ref == "" {
		missing = append(missing, "--ref")
	}
	if o.Out == "" {
		missing = append(missing, "--out")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required flag(s): %s", strings.Join(missing, ", "))
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.BatchSize < 1 {
		return errors.New("--batch-size must be ≥ 1")
	}
	switch o.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	return nil
}
