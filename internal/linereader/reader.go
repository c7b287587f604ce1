// =============================================================================
// IMU CSV Splitter - Line Reader
// =============================================================================
//
// This module yields the lines of a recording with normalized terminators.
// "\r\n", a lone "\r" and "\n" all end a line, and every terminated line is
// handed out ending in a single "\n". A final line without a terminator is
// handed out without one.
//
// Both the streaming parser and the validate command read through it, so a
// split run and a validation run always agree on where lines end.
//
// =============================================================================

package linereader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// MaxLineLength bounds a single input line.
const MaxLineLength = 1024 * 1024

// Reader reads normalized lines from an io.Reader.
type Reader struct {
	scanner    *bufio.Scanner
	line       string
	lineNumber int
	terminated bool
	err        error
}

// New wraps r. The caller owns r and is responsible for closing it.
func New(r io.Reader) *Reader {
	lr := &Reader{scanner: bufio.NewScanner(r)}
	lr.scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	lr.scanner.Split(lr.splitLines)
	return lr
}

// Next advances to the next line. It returns false at end of input or on a
// read error; call Err to tell the two apart.
func (r *Reader) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			r.err = fmt.Errorf("error reading line %d: %w", r.lineNumber+1, err)
		}
		return false
	}

	r.lineNumber++
	r.line = r.scanner.Text()
	if r.terminated {
		r.line += "\n"
	}
	return true
}

// Line returns the current line, ending in "\n" when the input line had a
// terminator of any kind.
func (r *Reader) Line() string {
	return r.line
}

// LineNumber returns the 1-based number of the current line.
func (r *Reader) LineNumber() int {
	return r.lineNumber
}

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	return r.err
}

// splitLines is a bufio.SplitFunc that ends lines on "\r\n", "\r" or "\n"
// and records whether the returned token was terminated.
func (r *Reader) splitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			r.terminated = true
			return i + 1, data[:i], nil
		}
		// A "\r" at the end of the buffer may be the first half of "\r\n".
		if i+1 == len(data) && !atEOF {
			return 0, nil, nil
		}
		r.terminated = true
		if i+1 < len(data) && data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	}

	if atEOF {
		r.terminated = false
		return len(data), data, nil
	}
	return 0, nil, nil
}
