// =============================================================================
// IMU CSV Splitter - Run Report
// =============================================================================
//
// This module writes an optional Excel workbook summarizing a split run.
//
// WORKBOOK LAYOUT:
//   Summary sheet:
//     | Field        | Value                     |
//     | Run ID       | 7c0e...                   |
//     | Input        | /data/run1/imu.csv        |
//     | Accelerometer| /data/run1/acc_data.csv   |
//     | Magnetometer | /data/run1/mag_data.csv   |
//     | Records      | 1200                      |
//     | Started      | 2024-01-01T10:00:00Z      |
//     | Duration     | 12ms                      |
//
//   Preview sheet:
//     | line | ax | ay | az | mx | my | mz |
//     one row per previewed record
//
// The report is only written after a successful run.
//
// =============================================================================

package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/imu-csv-splitter/internal/splitter"
	"github.com/ginjaninja78/imu-csv-splitter/internal/types"
)

// Sheet names.
const (
	SummarySheet = "Summary"
	PreviewSheet = "Preview"
)

// Write builds the workbook for res and saves it to path.
func Write(path string, res *splitter.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	// A new workbook starts with a single "Sheet1".
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}

	if err := writeSummary(f, res); err != nil {
		return err
	}

	if _, err := f.NewSheet(PreviewSheet); err != nil {
		return fmt.Errorf("failed to create preview sheet: %w", err)
	}
	if err := writePreview(f, res.Preview); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}

	return nil
}

func writeSummary(f *excelize.File, res *splitter.Result) error {
	rows := [][]string{
		{"Field", "Value"},
		{"Run ID", res.RunID},
		{"Input", res.InputPath},
		{"Accelerometer", res.AccPath},
		{"Magnetometer", res.MagPath},
		{"Records", strconv.Itoa(res.RecordCount)},
		{"Started", res.StartTime.Format(time.RFC3339)},
		{"Duration", res.Duration().String()},
	}

	for i, row := range rows {
		if err := setRow(f, SummarySheet, i+1, row); err != nil {
			return err
		}
	}
	return nil
}

func writePreview(f *excelize.File, records []types.Record) error {
	header := append([]string{"line"}, types.FieldNames[:]...)
	if err := setRow(f, PreviewSheet, 1, header); err != nil {
		return err
	}

	for i, rec := range records {
		row := make([]string, 0, len(header))
		row = append(row, strconv.Itoa(rec.LineNumber))
		for _, field := range rec.Fields {
			row = append(row, strings.TrimRight(field, "\r\n"))
		}
		if err := setRow(f, PreviewSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values into consecutive cells of the given 1-based row.
func setRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
