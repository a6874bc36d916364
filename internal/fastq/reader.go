// internal/fastq/reader.go
package fastq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShort is returned when input ends inside a record.
	ErrShort = errors.New("truncated FASTQ record")
	// ErrInvalid is returned when a header or separator line lacks its prefix
	// or the sequence line is empty.
	ErrInvalid = errors.New("invalid FASTQ record")
	// ErrLengthMismatch is returned when sequence and quality lengths differ.
	ErrLengthMismatch = errors.New("sequence and quality lengths differ")
)

// Record is one four-line FASTQ entry.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// Len is the byte length of the sequence line.
func (r Record) Len() int { return len(r.Seq) }

// Size is the in-memory payload of the record.
func (r Record) Size() int { return len(r.Seq) + len(r.Qual) }

// Scanner reads strictly four-line FASTQ records. Blank lines between records
// are skipped; inside a record every line must be present and the sequence
// must not be empty. Wrapped sequence or quality lines are not supported.
// Lines have no length limit.
type Scanner struct {
	r    *bufio.Reader
	line int
	buf  []byte
	rec  Record
	err  error
	done bool
}

// NewScanner returns a Scanner reading from r. r is not closed.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 1<<20)}
}

// Scan advances to the next record. It returns false at end of input or on
// the first malformed record, after which it keeps returning false.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	var hdr []byte
	for {
		line, ok, err := s.readLine(s.buf[:0])
		s.buf = line[:0]
		if err != nil {
			return s.fail(err)
		}
		if !ok {
			s.done = true
			return false
		}
		if len(line) > 0 {
			hdr = line
			break
		}
	}
	if hdr[0] != '@' {
		return s.fail(fmt.Errorf("fastq: line %d: header must start with '@': %w", s.line, ErrInvalid))
	}
	id := string(hdr[1:])

	seq, ok := s.body(nil)
	if !ok {
		return false
	}
	if len(seq) == 0 {
		return s.fail(fmt.Errorf("fastq: line %d: empty sequence: %w", s.line, ErrInvalid))
	}

	sep, ok := s.body(s.buf[:0])
	if !ok {
		return false
	}
	s.buf = sep[:0]
	if len(sep) == 0 || sep[0] != '+' {
		return s.fail(fmt.Errorf("fastq: line %d: separator must start with '+': %w", s.line, ErrInvalid))
	}

	qual, ok := s.body(nil)
	if !ok {
		return false
	}
	if len(qual) != len(seq) {
		return s.fail(fmt.Errorf("fastq: record %q: %d sequence bytes, %d quality bytes: %w",
			id, len(seq), len(qual), ErrLengthMismatch))
	}
	s.rec = Record{ID: id, Seq: seq, Qual: qual}
	return true
}

// Record returns the record read by the last successful Scan. The returned
// value does not alias scanner buffers.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first parse or read failure, or nil at a clean end of input.
func (s *Scanner) Err() error { return s.err }

// body appends a line that must exist inside a record to dst.
func (s *Scanner) body(dst []byte) ([]byte, bool) {
	line, ok, err := s.readLine(dst)
	if err != nil {
		return nil, s.fail(err)
	}
	if !ok {
		return nil, s.fail(fmt.Errorf("fastq: line %d: %w", s.line, ErrShort))
	}
	return line, true
}

// readLine appends the next line to dst without its "\n" or "\r\n"
// terminator. ok is false at a clean end of input.
func (s *Scanner) readLine(dst []byte) (out []byte, ok bool, err error) {
	start, read := len(dst), 0
	for {
		frag, rerr := s.r.ReadSlice('\n')
		read += len(frag)
		dst = append(dst, frag...)
		if rerr == bufio.ErrBufferFull {
			continue
		}
		if rerr != nil && rerr != io.EOF {
			return dst[:start], false, fmt.Errorf("fastq read: line %d: %w", s.line+1, rerr)
		}
		break
	}
	if read == 0 {
		return dst, false, nil
	}
	s.line++
	n := len(dst)
	if n > start && dst[n-1] == '\n' {
		n--
	}
	if n > start && dst[n-1] == '\r' {
		n--
	}
	return dst[:n], true, nil
}

func (s *Scanner) fail(err error) bool {
	s.done = true
	s.err = err
	s.rec = Record{}
	return false
}
