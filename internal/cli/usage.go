// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/sanath-2024/stan-x-paper-prep/internal/version"
)

func header(out io.Writer, name string) {
	fmt.Fprintf(out, "%s – statistics for the Stan-X paper\n\n", name)
	fmt.Fprintln(out, "Author:  Sanath Govindarajan <sgovindarajan@utexas.edu>")
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
}

// PrintUsage prints the top-level help.
func PrintUsage(out io.Writer, name string) {
	header(out, name)
	fmt.Fprintf(out, "Usage:\n  %s <command> [flags]\n\n", name)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintf(out, "  %-16s Naive coverage: nt in reads / nt in reference\n", CmdFastCoverage)
	fmt.Fprintln(out, "\nFlags:")
	fmt.Fprintln(out, "  -v, --version               Print version and exit")
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	fmt.Fprintf(out, "\nRun '%s <command> --help' for command flags.\n", name)
}

// PrintFastCoverageUsage prints help for fast_coverage. fs must already carry
// the flags registered by ParseArgs (defaults are read back from it).
func PrintFastCoverageUsage(out io.Writer, name string, fs *flag.FlagSet) {
	def := func(flagName string) string {
		if f := fs.Lookup(flagName); f != nil {
			return f.DefValue
		}
		return ""
	}

	header(out, name)
	fmt.Fprintf(out, "Usage:\n  %s %s --reads <fastq|-> --ref <fasta|-> --out <file|->\n", name, CmdFastCoverage)

	fmt.Fprintln(out, "\nInput / output:")
	fmt.Fprintln(out, "  -q, --reads file            FASTQ reads, '-' for STDIN [*]")
	fmt.Fprintln(out, "  -r, --ref file              FASTA reference, '-' for STDIN [*]")
	fmt.Fprintln(out, "  -o, --out file              Report destination, '-' for STDOUT [*]")

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
	fmt.Fprintf(out, "      --batch-size int        Records handed to a worker at a time [%s]\n", def("batch-size"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -f, --format string         Report: text | json | yaml [%s]\n", def("format"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "      --quiet                 Suppress warnings [%s]\n", def("quiet"))
	fmt.Fprintf(out, "      --verbose               Log record and base counts per input [%s]\n", def("verbose"))
	fmt.Fprintf(out, "      --debug                 Dump resolved options to STDERR [%s]\n", def("debug"))
	fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	fmt.Fprintln(out, "\n[*] required")
}
