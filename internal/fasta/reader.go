// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader is returned when sequence data appears before the first '>' line.
var ErrNoHeader = errors.New("sequence data before first '>' header")

// Record is one FASTA entry.
//
// Seq holds the sequence lines joined with their terminators removed.
// Interior whitespace is kept; Len skips it.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Len is the number of non-whitespace sequence bytes.
func (r Record) Len() int {
	n := 0
	for _, b := range r.Seq {
		if !isSpace[b] {
			n++
		}
	}
	return n
}

// Size is the in-memory payload of the record.
func (r Record) Size() int { return len(r.Seq) }

var isSpace = [256]bool{' ': true, '\t': true, '\n': true, '\v': true, '\f': true, '\r': true}

// Scanner reads FASTA records one at a time, in the style of bufio.Scanner.
// Lines have no length limit: an unwrapped chromosome is one line. Once Scan
// returns false it keeps returning false; Err tells a clean end of input from
// a parse or read failure.
type Scanner struct {
	r    *bufio.Reader
	line int
	buf  []byte // scratch for header and blank lines

	header  []byte // header of the next record, without '>'
	pending bool

	rec  Record
	err  error
	done bool
}

// NewScanner returns a Scanner reading from r. r is not closed.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReaderSize(r, 1<<20)}
}

// Scan advances to the next record.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	for !s.pending {
		line, ok, err := s.readLine(s.buf[:0])
		s.buf = line[:0]
		if err != nil {
			return s.fail(err)
		}
		if !ok {
			s.done = true
			return false
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] != '>' {
			return s.fail(fmt.Errorf("fasta: line %d: %w", s.line, ErrNoHeader))
		}
		s.setHeader(line[1:])
	}

	id, desc := parseHeader(s.header)
	s.pending = false
	var seq []byte
	for {
		// Sequence lines are read straight onto the end of seq.
		mark := len(seq)
		var ok bool
		var err error
		seq, ok, err = s.readLine(seq)
		if err != nil {
			return s.fail(err)
		}
		if !ok {
			break
		}
		if len(seq) > mark && seq[mark] == '>' {
			s.setHeader(seq[mark+1:])
			seq = seq[:mark]
			break
		}
	}
	s.rec = Record{ID: id, Desc: desc, Seq: seq}
	return true
}

// Record returns the record read by the last successful Scan. The returned
// value does not alias scanner buffers.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first parse or read failure, or nil at a clean end of input.
func (s *Scanner) Err() error { return s.err }

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
			return dst[:start], false, fmt.Errorf("fasta read: line %d: %w", s.line+1, rerr)
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

func (s *Scanner) setHeader(h []byte) {
	s.header = append(s.header[:0], h...)
	s.pending = true
}

func (s *Scanner) fail(err error) bool {
	s.done = true
	s.err = err
	s.rec = Record{}
	return false
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
