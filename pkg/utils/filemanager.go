// =============================================================================
// IMU CSV Splitter - File Management Utilities
// =============================================================================
//
// This package resolves the paths of a split run:
//   - the absolute path of the input recording
//   - the directory it lives in (the working directory of the run)
//   - the sibling output files derived from it
//
// It also generates run IDs.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileManager derives every path of a run from the input path.
type FileManager struct {
	// InputPath is the absolute path of the input recording.
	InputPath string

	// WorkDir is the directory containing the input; all outputs go here.
	WorkDir string

	// AccFileName and MagFileName are the output file names.
	AccFileName string
	MagFileName string
}

// NewFileManager resolves inputPath to an absolute path and takes its
// directory as the working directory. The input file itself is not opened
// or checked here.
func NewFileManager(inputPath, accFileName, magFileName string) (*FileManager, error) {
	if inputPath == "" {
		return nil, fmt.Errorf("input path is empty")
	}

	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve input path %s: %w", inputPath, err)
	}

	return &FileManager{
		InputPath:   absPath,
		WorkDir:     filepath.Dir(absPath),
		AccFileName: accFileName,
		MagFileName: magFileName,
	}, nil
}

// AccPath returns the accelerometer output path.
func (fm *FileManager) AccPath() string {
	return filepath.Join(fm.WorkDir, fm.AccFileName)
}

// MagPath returns the magnetometer output path.
func (fm *FileManager) MagPath() string {
	return filepath.Join(fm.WorkDir, fm.MagFileName)
}

// Resolve returns path unchanged when absolute, otherwise joined onto the
// working directory.
func (fm *FileManager) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(fm.WorkDir, path)
}

// CheckInput verifies the input exists and is a regular file.
func (fm *FileManager) CheckInput() error {
	info, err := os.Stat(fm.InputPath)
	if err != nil {
		return fmt.Errorf("input file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input file %s is a directory", fm.InputPath)
	}
	return nil
}

// NewRunID returns a random identifier for one split run.
func NewRunID() string {
	return uuid.New().String()
}
