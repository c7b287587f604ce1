// =============================================================================
// IMU CSV Splitter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Called with an input
// path, the root command performs the split itself; subcommands add the
// validate and version tools.
//
// COBRA CLI STRUCTURE:
//   rootCmd (splitter <input_path>)
//   ├── validateCmd (splitter validate <input_path>)
//   └── versionCmd  (splitter version)
//
// OUTPUT STREAMS:
//   stdout carries only "done" (or the validate summary); diagnostics and
//   logs go to stderr.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ginjaninja78/imu-csv-splitter/internal/config"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the optional configuration file.
var cfgFile string

// verbose forces debug logging regardless of the configured level.
var verbose bool

// reportPath requests an Excel summary of the run at this path.
var reportPath string

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command. With an input path it splits the
// recording into acc_data.csv and mag_data.csv next to the input.
var rootCmd = &cobra.Command{
	Use:   "splitter <input_path>",
	Short: "Split IMU recordings into accelerometer and magnetometer files",
	Long: `splitter reads a recording in which every line holds six comma-space
separated values (ax, ay, az, mx, my, mz) and writes two files next to it:

  acc_data.csv  "ax, ay, az" per line
  mag_data.csv  "mx, my, mz" per line, line endings copied from the input

Values are passed through verbatim. A line that does not have exactly six
fields stops the run; output written up to that line is left in place.

Example Usage:
  splitter ./recordings/imu.csv
  splitter ./recordings/imu.csv --report run.xlsx
  splitter validate ./recordings/imu.csv`,

	Args:          requireInputPath,
	SilenceErrors: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		// Past argument validation, errors are not usage problems.
		cmd.SilenceUsage = true
		return runSplit(cmd, args[0])
	},
}

// requireInputPath fails before any file is touched when no input path was
// given. Extra arguments are ignored.
func requireInputPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("requires an input path argument")
	}
	return nil
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command and exits with status 1 on any error.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to an optional YAML configuration file",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging on stderr",
	)

	rootCmd.Flags().StringVar(
		&reportPath,
		"report",
		"",
		"Write an Excel summary of the run to this path",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig loads the configuration named by --config, or the defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger for a command.
func newLogger(cmd *cobra.Command, cfg *config.Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	if verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	return log
}
