package coverage

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanath-2024/stan-x-paper-prep/internal/cmdutil"
	"github.com/sanath-2024/stan-x-paper-prep/internal/errs"
	"github.com/sanath-2024/stan-x-paper-prep/internal/sink"
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	return fn
}

// runFiles runs with file inputs and returns what landed in the output file.
func runFiles(t *testing.T, ref, reads string, threads int) (string, error) {
	t.Helper()
	dir := t.TempDir()
	outFn := filepath.Join(dir, "out.txt")
	err := Run(context.Background(), Options{
		Ref:     write(t, dir, "ref.fa", ref),
		Reads:   write(t, dir, "reads.fq", reads),
		Out:     outFn,
		Threads: threads,
	})
	got, rerr := os.ReadFile(outFn)
	if rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
		t.Fatalf("read output: %v", rerr)
	}
	return string(got), err
}

func TestScenarios(t *testing.T) {
	cases := []struct {
		name, ref, reads, want string
	}{
		{"minimal", ">chr1\nACGT\nACGT\n", "@r1\nACGT\n+\nIIII\n",
			"reference nt: 8\nreads nt: 4\ncoverage: 0.5x\n"},
		{"multi record reference", ">a\nAAA\n>b\nTT\n", "@x\nAAAAAAAAAA\n+\n!!!!!!!!!!\n",
			"reference nt: 5\nreads nt: 10\ncoverage: 2x\n"},
		{"terminators stripped", ">a\nAC\nGT\n", "@x\nAC\n+\nII\n",
			"reference nt: 4\nreads nt: 2\ncoverage: 0.5x\n"},
		{"empty reads", ">a\n" + strings.Repeat("A", 100) + "\n", "",
			"reference nt: 100\nreads nt: 0\ncoverage: 0x\n"},
		{"empty reference", "", "@x\nACG\n+\nIII\n",
			"reference nt: 0\nreads nt: 3\ncoverage: infx\n"},
		{"both empty", "", "",
			"reference nt: 0\nreads nt: 0\ncoverage: NaNx\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runFiles(t, tc.ref, tc.reads, 2)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMissingReferenceWritesNothing(t *testing.T) {
	dir := t.TempDir()
	outFn := filepath.Join(dir, "out.txt")
	err := Run(context.Background(), Options{
		Ref:   filepath.Join(dir, "missing.fa"),
		Reads: write(t, dir, "reads.fq", "@r\nA\n+\nI\n"),
		Out:   outFn,
	})
	assert.True(t, errors.Is(err, errs.FileNotFound), "got %v", err)
	_, statErr := os.Stat(outFn)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "output must not be created")
}

func TestMissingReadsIsFileNotFound(t *testing.T) {
	dir := t.TempDir()
	err := Run(context.Background(), Options{
		Ref:   write(t, dir, "ref.fa", ">a\nA\n"),
		Reads: filepath.Join(dir, "missing.fq"),
		Out:   filepath.Join(dir, "out.txt"),
	})
	assert.Equal(t, errs.FileNotFound, errs.KindOf(err))
}

func TestMalformedReadsKeepsReferenceLine(t *testing.T) {
	got, err := runFiles(t, ">chr1\nACGT\nACGT\n", "@r1\nACGT\n+\nII\n", 4)
	assert.Equal(t, errs.FASTQ, errs.KindOf(err), "got %v", err)
	assert.Equal(t, "reference nt: 8\n", got)
}

func TestMalformedReferenceReportedAsFASTQ(t *testing.T) {
	got, err := runFiles(t, "ACGT\n>a\nAC\n", "@r\nA\n+\nI\n", 1)
	assert.Equal(t, errs.FASTQ, errs.KindOf(err), "got %v", err)
	assert.Empty(t, got)
}

func TestUnreadableReferenceIsIO(t *testing.T) {
	dir := t.TempDir()
	err := Run(context.Background(), Options{
		Ref:   dir, // a directory opens but cannot be read
		Reads: write(t, dir, "reads.fq", ""),
		Out:   filepath.Join(dir, "out.txt"),
	})
	require.Error(t, err)
	assert.Equal(t, errs.IO, errs.KindOf(err), "got %v", err)
}

func TestStandardStreams(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	err := Run(context.Background(), Options{
		Ref:   "-",
		Reads: write(t, dir, "reads.fq", "@r1\nACGT\n+\nIIII\n"),
		Out:   "-",
		Streams: sink.Streams{
			Stdin:  strings.NewReader(">chr1\nACGT\nACGT\n"),
			Stdout: &out,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "reference nt: 8\nreads nt: 4\ncoverage: 0.5x\n", out.String())
}

func TestBothInputsOnStdinWarns(t *testing.T) {
	var out, logBuf bytes.Buffer
	err := Run(context.Background(), Options{
		Ref: "-", Reads: "-", Out: "-",
		Streams: sink.Streams{Stdin: strings.NewReader(">a\nACGT\n"), Stdout: &out},
		Log:     &cmdutil.Logger{Dst: &logBuf},
	})
	require.NoError(t, err)
	assert.Equal(t, "reference nt: 4\nreads nt: 0\ncoverage: 0x\n", out.String())
	assert.Contains(t, logBuf.String(), "WARN: --ref and --reads both read standard input")
}

func TestStructuredFormats(t *testing.T) {
	var out bytes.Buffer
	dir := t.TempDir()
	err := Run(context.Background(), Options{
		Ref:     write(t, dir, "ref.fa", ">a\nAAA\n>b\nTT\n"),
		Reads:   write(t, dir, "reads.fq", "@x\nAAAAAAAAAA\n+\n!!!!!!!!!!\n"),
		Out:     "-",
		Format:  "json",
		Streams: sink.Streams{Stdout: &out},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reference_nt":5,"reads_nt":10,"coverage":2}`, out.String())
}

func TestUnknownFormatIsCLIAndLeavesOutputAlone(t *testing.T) {
	dir := t.TempDir()
	outFn := write(t, dir, "out.txt", "previous report\n")
	err := Run(context.Background(), Options{
		Ref:    write(t, dir, "ref.fa", ">a\nA\n"),
		Reads:  write(t, dir, "reads.fq", ""),
		Out:    outFn,
		Format: "xml",
	})
	assert.Equal(t, errs.CLI, errs.KindOf(err))
	got, rerr := os.ReadFile(outFn)
	require.NoError(t, rerr)
	assert.Equal(t, "previous report\n", string(got), "output must not be truncated")
}

func TestLongUnwrappedReference(t *testing.T) {
	const n = 65 << 20
	got, err := runFiles(t, ">chr1\n"+strings.Repeat("A", n)+"\n", "@r1\nACGT\n+\nIIII\n", 2)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "reference nt: 68157440\nreads nt: 4\ncoverage: "), got)
}

func TestEmptyReadIsFASTQError(t *testing.T) {
	got, err := runFiles(t, ">a\nACGT\n", "@r1\n\n+\n\n", 1)
	assert.Equal(t, errs.FASTQ, errs.KindOf(err), "got %v", err)
	assert.Equal(t, "reference nt: 4\n", got)
}

func TestParallelDeterminism(t *testing.T) {
	var ref, reads strings.Builder
	for i := 0; i < 500; i++ {
		ref.WriteString(">c\n")
		ref.WriteString(strings.Repeat("ACGT", i%13+1))
		ref.WriteString("\n")
		n := i%150 + 1
		reads.WriteString("@r\n" + strings.Repeat("G", n) + "\n+\n" + strings.Repeat("I", n) + "\n")
	}
	serial, err := runFiles(t, ref.String(), reads.String(), 1)
	require.NoError(t, err)
	for _, threads := range []int{2, 8, 0} {
		par, err := runFiles(t, ref.String(), reads.String(), threads)
		require.NoError(t, err)
		assert.Equal(t, serial, par, "threads=%d", threads)
	}
}

func TestSplitReferenceSumsMatch(t *testing.T) {
	whole := ">a\nACGTAC\nGT\n>b\nTTTT\n>c\nG G\n"
	partA, partB := ">a\nACGTAC\nGT\n", ">b\nTTTT\n>c\nG G\n"
	get := func(ref string) string {
		got, err := runFiles(t, ref, "", 2)
		require.NoError(t, err)
		return strings.SplitN(got, "\n", 2)[0]
	}
	assert.Equal(t, "reference nt: 14", get(whole))
	assert.Equal(t, "reference nt: 8", get(partA))
	assert.Equal(t, "reference nt: 6", get(partB))
}

func TestCancelledRun(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Options{
		Ref:   write(t, dir, "ref.fa", ">a\nACGT\n"),
		Reads: write(t, dir, "reads.fq", ""),
		Out:   filepath.Join(dir, "out.txt"),
	})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}
