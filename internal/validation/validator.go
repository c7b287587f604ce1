// =============================================================================
// IMU CSV Splitter - Validation Module
// =============================================================================
//
// This module checks that input lines have the shape the splitter expects:
// exactly six tokens separated by the literal ", ".
//
// VALIDATION LEVELS:
//   1. Record level: CheckArity rejects a single line with the wrong token
//      count. The splitter calls it for every line and stops on the first
//      failure.
//   2. File level: ValidateFile scans a whole input and collects every
//      malformed line without writing anything. The validate command uses it.
//
// Token contents are not inspected. A line of six non-numeric tokens is
// accepted; only the count matters.
//
// =============================================================================

package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/imu-csv-splitter/internal/linereader"
	"github.com/ginjaninja78/imu-csv-splitter/internal/types"
)

// =============================================================================
// RECORD ERROR
// =============================================================================

// RecordError reports a line that does not split into exactly six tokens.
type RecordError struct {
	// LineNumber is the 1-based line number in the input file.
	LineNumber int

	// Got is the number of tokens the line split into.
	Got int

	// Want is the number of tokens expected (always types.FieldCount).
	Want int

	// Line is the offending line with its terminator removed.
	Line string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields separated by %q, got %d: %q",
		e.LineNumber, e.Want, types.FieldSeparator, e.Got, e.Line)
}

// CheckArity returns a *RecordError when tokens does not hold exactly
// types.FieldCount entries.
func CheckArity(tokens []string, lineNumber int, line string) error {
	if len(tokens) == types.FieldCount {
		return nil
	}
	return newRecordError(tokens, lineNumber, line)
}

func newRecordError(tokens []string, lineNumber int, line string) *RecordError {
	return &RecordError{
		LineNumber: lineNumber,
		Got:        len(tokens),
		Want:       types.FieldCount,
		Line:       strings.TrimRight(line, "\r\n"),
	}
}

// =============================================================================
// FILE VALIDATION
// =============================================================================

// Result is the outcome of validating a whole input file.
type Result struct {
	// IsValid is true when every line has exactly six tokens.
	IsValid bool

	// Errors holds one entry per malformed line, in file order.
	Errors []*RecordError

	// LineCount is the number of lines scanned.
	LineCount int

	// ErrorCount is len(Errors).
	ErrorCount int
}

// ValidateFile scans r line by line and collects every malformed line.
// Lines are read the same way the splitter reads them, but scanning does
// not stop at the first bad line.
func ValidateFile(r io.Reader) (*Result, error) {
	result := &Result{
		IsValid: true,
		Errors:  make([]*RecordError, 0),
	}

	lines := linereader.New(r)
	for lines.Next() {
		result.LineCount = lines.LineNumber()
		line := lines.Line()
		tokens := strings.Split(line, types.FieldSeparator)
		if len(tokens) != types.FieldCount {
			result.Errors = append(result.Errors, newRecordError(tokens, lines.LineNumber(), line))
			result.ErrorCount++
			result.IsValid = false
		}
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
