// Package errs holds the small, fixed error taxonomy of calculate_stats.
//
// Every failure that leaves the coverage driver is an *Error carrying one of
// five kinds. Callers classify with errors.Is(err, errs.IO) or KindOf(err);
// the wrapped cause stays reachable through Unwrap for diagnostics.
package errs

import (
	"errors"
	"fmt"
)

// Kind enumerates the failure classes.
type Kind int

const (
	CLI Kind = iota + 1
	FileNotFound
	IO
	FASTA // reserved; FASTA parse failures are reported as FASTQ
	FASTQ
)

var kindNames = map[Kind]string{
	CLI:          "CLI",
	FileNotFound: "FileNotFound",
	IO:           "IO",
	FASTA:        "FASTA",
	FASTQ:        "FASTQ",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error implements error so a bare Kind can be used as an errors.Is target.
func (k Kind) Error() string { return k.String() }

// Error is a classified failure.
type Error struct {
	Kind Kind
	Op   string // what was being done ("open", "write", "parse reference", ...)
	Path string // sink name, may be empty
	Err  error  // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg += ": " + e.Op
	}
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error or a bare Kind by kind.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return e.Kind == t.Kind
	}
	return false
}

// New builds a classified error.
func New(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

// Errorf builds a classified error from a format string.
func Errorf(kind Kind, format string, a ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, a...)}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}
	return 0
}
