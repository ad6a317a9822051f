package records

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrRead is returned when the underlying stream fails.
var ErrRead = errors.New("read records")

// Delimiter selects how records are separated in the input.
type Delimiter int

const (
	// Newline separates records by '\n'. A trailing '\r' is dropped.
	Newline Delimiter = iota
	// Null separates records by '\x00'.
	Null
)

// Byte returns the separator byte for d.
func (d Delimiter) Byte() byte {
	if d == Null {
		return 0
	}
	return '\n'
}

func (d Delimiter) String() string {
	if d == Null {
		return "null"
	}
	return "newline"
}

// Reader reads delimited records from a stream.
type Reader struct {
	r     *bufio.Reader
	delim Delimiter
	err   error
}

// NewReader creates a Reader over r using delim.
func NewReader(r io.Reader, delim Delimiter) *Reader {
	return &Reader{
		r:     bufio.NewReader(r),
		delim: delim,
	}
}

// Next returns the next record without its delimiter.
// It returns io.EOF once the input is exhausted. A final record that lacks
// a trailing delimiter is still returned. A read failure is returned, wrapped
// in ErrRead, by this call and every later one.
func (rd *Reader) Next() (string, error) {
	if rd.err != nil {
		return "", rd.err
	}

	sep := rd.delim.Byte()
	line, err := rd.r.ReadBytes(sep)
	if err != nil {
		if !errors.Is(err, io.EOF) {
			rd.err = fmt.Errorf("%w: %w", ErrRead, err)
			return "", rd.err
		}
		rd.err = io.EOF
		if len(line) == 0 {
			return "", io.EOF
		}
	}

	line = bytes.TrimSuffix(line, []byte{sep})
	if rd.delim == Newline {
		line = bytes.TrimSuffix(line, []byte{'\r'})
	}
	return decodeLossy(line), nil
}

// ReadAll reads every record from r.
func ReadAll(r io.Reader, delim Delimiter) ([]string, error) {
	rd := NewReader(r, delim)
	var out []string
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
}
