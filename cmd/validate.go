// =============================================================================
// IMU CSV Splitter - Validate Command
// =============================================================================
//
// This file defines the 'validate' command. It checks every line of a
// recording for the six-field shape without writing any output file.
//
// COMMAND USAGE:
//   splitter validate <input_path>
//
// OUTPUT:
//   line 12: expected 6 fields separated by ", ", got 5: "1, 2, 3, 4, 5"
//   checked 340 line(s), 1 malformed
//
// Unlike a split run, validation reports every malformed line rather than
// stopping at the first. It exits nonzero when any line is malformed.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/imu-csv-splitter/internal/config"
	"github.com/ginjaninja78/imu-csv-splitter/internal/validation"
	"github.com/ginjaninja78/imu-csv-splitter/pkg/utils"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate <input_path>",
	Short: "Check that every line of a recording has six fields",
	Long: `The validate command scans a recording and lists every line that does not
split into exactly six ", " separated fields. No output files are written.`,
	Args:          requireInputPath,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return runValidate(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, inputPath string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	fm, err := utils.NewFileManager(inputPath, config.DefaultAccFileName, config.DefaultMagFileName)
	if err != nil {
		return err
	}
	if err := fm.CheckInput(); err != nil {
		return err
	}

	file, err := os.Open(fm.InputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	result, err := validation.ValidateFile(file)
	if err != nil {
		return err
	}
	log.WithField("input", fm.InputPath).Debug("validation finished")

	out := cmd.OutOrStdout()
	for _, recErr := range result.Errors {
		fmt.Fprintln(out, recErr.Error())
	}
	fmt.Fprintf(out, "checked %d line(s), %d malformed\n", result.LineCount, result.ErrorCount)

	if !result.IsValid {
		return fmt.Errorf("%s has %d malformed line(s)", fm.InputPath, result.ErrorCount)
	}
	return nil
}
