// Package sink opens the byte streams calculate_stats reads from and writes to.
//
// A path of "-" selects the process standard stream; any other string is a
// filesystem path. Input and Output are tagged structs rather than interfaces:
// there are exactly two variants per direction and the driver owns both.
// Nothing here interprets content.
package sink

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/sanath-2024/stan-x-paper-prep/internal/errs"
)

// StdPath is the path literal that selects a standard stream.
const StdPath = "-"

// Kind tags which handle backs a sink.
type Kind uint8

const (
	KindFile Kind = iota
	KindStd
)

func (k Kind) String() string {
	if k == KindStd {
		return "std"
	}
	return "file"
}

// Streams supplies the standard handles used for "-". The zero value falls
// back to os.Stdin / os.Stdout at open time.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
}

func (s Streams) stdin() io.Reader {
	if s.Stdin != nil {
		return s.Stdin
	}
	return os.Stdin
}

func (s Streams) stdout() io.Writer {
	if s.Stdout != nil {
		return s.Stdout
	}
	return os.Stdout
}

// Input is a readable sink.
type Input struct {
	kind Kind
	file *os.File
	std  io.Reader
	name string
}

// Output is a writable sink.
type Output struct {
	kind Kind
	file *os.File
	std  io.Writer
	name string
}

// OpenRead opens path for sequential reading using the process streams.
func OpenRead(path string) (*Input, error) { return Streams{}.OpenRead(path) }

// OpenWrite creates or truncates path using the process streams.
func OpenWrite(path string) (*Output, error) { return Streams{}.OpenWrite(path) }

// OpenRead opens path for sequential reading. A missing path is
// errs.FileNotFound; every other open failure is errs.IO.
func (s Streams) OpenRead(path string) (*Input, error) {
	if path == StdPath {
		return &Input{kind: KindStd, std: s.stdin(), name: "<stdin>"}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, classifyOpen(path, err)
	}
	return &Input{kind: KindFile, file: fh, name: path}, nil
}

// OpenWrite creates or truncates path. Error classes match OpenRead.
func (s Streams) OpenWrite(path string) (*Output, error) {
	if path == StdPath {
		return &Output{kind: KindStd, std: s.stdout(), name: "<stdout>"}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, classifyOpen(path, err)
	}
	return &Output{kind: KindFile, file: fh, name: path}, nil
}

func classifyOpen(path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err // the path is already carried by errs.Error
	}
	if errors.Is(err, fs.ErrNotExist) {
		return errs.New(errs.FileNotFound, "open", path, err)
	}
	return errs.New(errs.IO, "open", path, err)
}

// Kind reports which handle backs the sink.
func (in *Input) Kind() Kind { return in.kind }

// Name is the path, or "<stdin>".
func (in *Input) Name() string { return in.name }

// Read passes straight through to the underlying handle.
func (in *Input) Read(p []byte) (int, error) {
	switch in.kind {
	case KindStd:
		return in.std.Read(p)
	default:
		return in.file.Read(p)
	}
}

// Close releases a file handle. Standard input is left open.
func (in *Input) Close() error {
	if in.kind != KindFile || in.file == nil {
		return nil
	}
	err := in.file.Close()
	in.file = nil
	return err
}

// Kind reports which handle backs the sink.
func (out *Output) Kind() Kind { return out.kind }

// Name is the path, or "<stdout>".
func (out *Output) Name() string { return out.name }

// Write passes straight through to the underlying handle.
func (out *Output) Write(p []byte) (int, error) {
	switch out.kind {
	case KindStd:
		return out.std.Write(p)
	default:
		return out.file.Write(p)
	}
}

// Flush pushes any bytes held by the standard stream writer (for example a
// bufio.Writer handed in through Streams). File writes are unbuffered.
func (out *Output) Flush() error {
	if out.kind != KindStd {
		return nil
	}
	if f, ok := out.std.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close releases a file handle. Standard output is left open.
func (out *Output) Close() error {
	if out.kind != KindFile || out.file == nil {
		return nil
	}
	err := out.file.Close()
	out.file = nil
	return err
}
