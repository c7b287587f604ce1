// =============================================================================
// IMU CSV Splitter - Record Parser
// =============================================================================
//
// This module turns the lines of an IMU recording into records: six tokens
// separated by the exact literal ", ", no header row.
//
// Lines come from the linereader package, so every terminated line ends in
// a single "\n" whatever terminator the file used. Tokens are otherwise
// passed through untouched; the last token keeps that "\n".
//
// =============================================================================

package csvparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/imu-csv-splitter/internal/linereader"
	"github.com/ginjaninja78/imu-csv-splitter/internal/types"
	"github.com/ginjaninja78/imu-csv-splitter/internal/validation"
)

// SplitLine splits one input line (terminator included) into a record.
// It fails with a *validation.RecordError when the line does not hold
// exactly six tokens.
func SplitLine(line string, lineNumber int) (types.Record, error) {
	tokens := strings.Split(line, types.FieldSeparator)
	if err := validation.CheckArity(tokens, lineNumber, line); err != nil {
		return types.Record{}, err
	}

	rec := types.Record{LineNumber: lineNumber}
	copy(rec.Fields[:], tokens)
	return rec, nil
}

// =============================================================================
// STREAMING PARSER
// =============================================================================

// StreamingParser reads records one line at a time.
//
// USAGE:
//   parser := csvparser.NewStreamingParser(file)
//   for parser.Next() {
//       rec := parser.Record()
//       // ...
//   }
//   if err := parser.Err(); err != nil {
//       // handle error
//   }
type StreamingParser struct {
	lines   *linereader.Reader
	current types.Record
	err     error
}

// NewStreamingParser wraps r. The caller owns r and is responsible for
// closing it.
func NewStreamingParser(r io.Reader) *StreamingParser {
	return &StreamingParser{
		lines: linereader.New(r),
	}
}

// Next advances to the next record. It returns false at end of input or on
// the first error; call Err to tell the two apart.
func (p *StreamingParser) Next() bool {
	if p.err != nil {
		return false
	}

	if !p.lines.Next() {
		p.err = p.lines.Err()
		return false
	}

	rec, err := SplitLine(p.lines.Line(), p.lines.LineNumber())
	if err != nil {
		p.err = fmt.Errorf("malformed record: %w", err)
		return false
	}

	p.current = rec
	return true
}

// Record returns the record read by the last successful call to Next.
func (p *StreamingParser) Record() types.Record {
	return p.current
}

// LineNumber returns the number of lines consumed so far.
func (p *StreamingParser) LineNumber() int {
	return p.lines.LineNumber()
}

// Err returns the first error encountered, if any.
func (p *StreamingParser) Err() error {
	return p.err
}
