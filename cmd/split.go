// =============================================================================
// IMU CSV Splitter - Split Command Logic
// =============================================================================
//
// This file holds the body of the root command.
//
// PROCESSING PIPELINE:
//   1. Load configuration (optional file, defaults otherwise)
//   2. Split the recording into the two sibling output files
//   3. Write the Excel report when one was requested
//   4. Print "done"
//
// Any failure aborts the run and is reported by Execute with exit status 1;
// "done" is never printed after a failure.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/imu-csv-splitter/internal/report"
	"github.com/ginjaninja78/imu-csv-splitter/internal/splitter"
	"github.com/ginjaninja78/imu-csv-splitter/pkg/utils"
)

// runSplit splits inputPath and prints the completion message.
func runSplit(cmd *cobra.Command, inputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	res, err := splitter.New(cfg, log).Run(inputPath)
	if err != nil {
		return err
	}

	// --report is taken as given; a configured path is relative to the
	// input's directory.
	target := reportPath
	if target == "" && cfg.Report.Enabled {
		fm, err := utils.NewFileManager(res.InputPath, cfg.AccFileName, cfg.MagFileName)
		if err != nil {
			return err
		}
		target = fm.Resolve(cfg.Report.Path)
	}
	if target != "" {
		if err := report.Write(target, res); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.WithFields(logrus.Fields{
			"run_id": res.RunID,
			"report": target,
		}).Debug("report written")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "done")
	return nil
}
