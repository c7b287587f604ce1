// =============================================================================
// IMU CSV Splitter - Projection Writer
// =============================================================================
//
// This module writes one projection of each record to an output file:
//   - acc_data.csv receives "{ax}, {ay}, {az}\n"
//   - mag_data.csv receives "{mx}, {my}, {mz}" (no newline appended)
//
// Writes go through a bufio.Writer. Close flushes before closing the file,
// so a run that fails midway still leaves every row written so far on disk.
//
// =============================================================================

package csvwriter

import (
	"bufio"
	"fmt"
	"os"

	"github.com/ginjaninja78/imu-csv-splitter/internal/types"
)

// ProjectionWriter writes record projections to a single file.
type ProjectionWriter struct {
	path string
	file *os.File
	buf  *bufio.Writer
	rows int
}

// Create opens path for writing, truncating any existing file.
func Create(path string) (*ProjectionWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	return &ProjectionWriter{
		path: path,
		file: f,
		buf:  bufio.NewWriter(f),
	}, nil
}

// WriteAcc writes the accelerometer projection of rec.
func (w *ProjectionWriter) WriteAcc(rec types.Record) error {
	return w.write(rec.AccLine())
}

// WriteMag writes the magnetometer projection of rec.
func (w *ProjectionWriter) WriteMag(rec types.Record) error {
	return w.write(rec.MagChunk())
}

func (w *ProjectionWriter) write(s string) error {
	if _, err := w.buf.WriteString(s); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	w.rows++
	return nil
}

// Rows returns the number of projections written so far.
func (w *ProjectionWriter) Rows() int {
	return w.rows
}

// Path returns the output file path.
func (w *ProjectionWriter) Path() string {
	return w.path
}

// Close flushes buffered output and closes the file. The file is closed
// even when the flush fails; the first error is returned.
func (w *ProjectionWriter) Close() error {
	flushErr := w.buf.Flush()
	closeErr := w.file.Close()

	if flushErr != nil {
		return fmt.Errorf("failed to flush %s: %w", w.path, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close %s: %w", w.path, closeErr)
	}
	return nil
}
