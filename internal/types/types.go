// =============================================================================
// IMU CSV Splitter - Shared Types
// =============================================================================
//
// This package contains the record type shared by the parser, the validator,
// the projection writers and the report, kept here to avoid import cycles.
//
// =============================================================================

package types

import "strings"

// FieldSeparator is the literal token separator of both the input and the
// output files: a comma followed by exactly one space.
const FieldSeparator = ", "

// FieldCount is the number of tokens every input line must split into.
const FieldCount = 6

// FieldNames names the six tokens of a record, in input order.
var FieldNames = [FieldCount]string{"ax", "ay", "az", "mx", "my", "mz"}

// =============================================================================
// RECORD
// =============================================================================

// Record is one input line split into its six tokens.
//
// Tokens are kept verbatim. Nothing is trimmed or parsed, so the final token
// (mz) still carries the source line's terminator when there was one.
type Record struct {
	// LineNumber is the 1-based line number in the input file.
	LineNumber int

	// Fields holds ax, ay, az, mx, my, mz in that order.
	Fields [FieldCount]string
}

// Accelerometer returns the first three tokens (ax, ay, az).
func (r Record) Accelerometer() []string {
	return r.Fields[0:3:3]
}

// Magnetometer returns the last three tokens (mx, my, mz).
func (r Record) Magnetometer() []string {
	return r.Fields[3:6:6]
}

// AccLine renders the accelerometer projection: "{ax}, {ay}, {az}\n".
func (r Record) AccLine() string {
	return strings.Join(r.Accelerometer(), FieldSeparator) + "\n"
}

// MagChunk renders the magnetometer projection: "{mx}, {my}, {mz}".
// No newline is appended; whatever terminator mz carried is written as is.
func (r Record) MagChunk() string {
	return strings.Join(r.Magnetometer(), FieldSeparator)
}
