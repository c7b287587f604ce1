// =============================================================================
// IMU CSV Splitter - Splitter Module
// =============================================================================
//
// This module contains the core splitting logic for a single recording.
//
// PIPELINE:
//   1. Resolve the input to an absolute path; its directory is the work dir
//   2. Derive acc_data.csv and mag_data.csv inside the work dir
//   3. Check the input is a regular file, open it, then create (truncate)
//      both outputs
//   4. For each line: split on ", " into six tokens, write the first three
//      to the accelerometer file and the last three to the magnetometer file
//   5. Close all three files on every exit path
//
// FAILURE:
//   The first malformed line stops the run. Outputs are not rolled back;
//   whatever was written before the failure stays on disk.
//
// =============================================================================

package splitter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ginjaninja78/imu-csv-splitter/internal/config"
	"github.com/ginjaninja78/imu-csv-splitter/internal/csvparser"
	"github.com/ginjaninja78/imu-csv-splitter/internal/csvwriter"
	"github.com/ginjaninja78/imu-csv-splitter/internal/types"
	"github.com/ginjaninja78/imu-csv-splitter/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result summarizes one completed split run.
type Result struct {
	// RunID identifies the run in logs and reports.
	RunID string

	// InputPath is the absolute input path.
	InputPath string

	// AccPath and MagPath are the absolute output paths.
	AccPath string
	MagPath string

	// RecordCount is the number of records written to each output.
	RecordCount int

	// Preview holds the first records of the run, up to the preview limit.
	Preview []types.Record

	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long the run took.
func (r *Result) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// =============================================================================
// SPLITTER
// =============================================================================

// Splitter splits IMU recordings into accelerometer and magnetometer files.
type Splitter struct {
	config *config.Config
	log    logrus.FieldLogger

	// previewRows is the number of records kept in Result.Preview.
	previewRows int
}

// New creates a splitter. A nil cfg uses config.Default(); a nil log
// discards diagnostics.
func New(cfg *config.Config, log logrus.FieldLogger) *Splitter {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &Splitter{
		config:      cfg,
		log:         log,
		previewRows: cfg.Report.Preview(),
	}
}

// Run splits the recording at inputPath.
//
// All three files are held open for the whole run and released by defers,
// so they are closed whether the loop finishes or fails on a bad line.
func (s *Splitter) Run(inputPath string) (res *Result, err error) {
	fm, err := utils.NewFileManager(inputPath, s.config.AccFileName, s.config.MagFileName)
	if err != nil {
		return nil, err
	}

	res = &Result{
		RunID:     utils.NewRunID(),
		InputPath: fm.InputPath,
		AccPath:   fm.AccPath(),
		MagPath:   fm.MagPath(),
		StartTime: time.Now(),
	}

	log := s.log.WithFields(logrus.Fields{
		"run_id": res.RunID,
		"input":  res.InputPath,
	})
	log.Debug("starting split")

	// Outputs are truncated on create, so a missing or directory input must
	// be rejected before either of them is touched.
	if err := fm.CheckInput(); err != nil {
		return nil, err
	}

	input, err := os.Open(fm.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	acc, err := csvwriter.Create(res.AccPath)
	if err != nil {
		return nil, err
	}
	defer closeWriter(acc, &err)

	mag, err := csvwriter.Create(res.MagPath)
	if err != nil {
		return nil, err
	}
	defer closeWriter(mag, &err)

	parser := csvparser.NewStreamingParser(input)
	for parser.Next() {
		rec := parser.Record()

		if err := acc.WriteAcc(rec); err != nil {
			return nil, err
		}
		if err := mag.WriteMag(rec); err != nil {
			return nil, err
		}

		if len(res.Preview) < s.previewRows {
			res.Preview = append(res.Preview, rec)
		}
		log.WithField("line", rec.LineNumber).Trace("record split")
	}
	if err := parser.Err(); err != nil {
		log.WithError(err).WithField("records_written", acc.Rows()).Debug("split aborted")
		return nil, fmt.Errorf("failed to split %s: %w", res.InputPath, err)
	}

	res.RecordCount = acc.Rows()
	res.EndTime = time.Now()

	log.WithFields(logrus.Fields{
		"records":  res.RecordCount,
		"acc":      res.AccPath,
		"mag":      res.MagPath,
		"duration": res.Duration(),
	}).Debug("split complete")

	return res, nil
}

// closeWriter closes w and reports its error through errp unless an earlier
// error is already set.
func closeWriter(w *csvwriter.ProjectionWriter, errp *error) {
	if cerr := w.Close(); cerr != nil && *errp == nil {
		*errp = cerr
	}
}
