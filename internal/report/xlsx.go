// File: internal/report/xlsx.go
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	WeeklySheet  = "Weekly"
	MonthlySheet = "Monthly"
)

// WriteXLSX writes a workbook with one sheet per series.
func WriteXLSX(w io.Writer, weekly, monthly []Point) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", WeeklySheet); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	if _, err := f.NewSheet(MonthlySheet); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	if err := writeSheet(f, WeeklySheet, "Week", weekly); err != nil {
		return err
	}
	if err := writeSheet(f, MonthlySheet, "Month", monthly); err != nil {
		return err
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet, period string, points []Point) error {
	if err := f.SetSheetRow(sheet, "A1", &[]any{period, "Hours"}); err != nil {
		return fmt.Errorf("writeSheet %s: %w", sheet, err)
	}
	for i, p := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("writeSheet %s: %w", sheet, err)
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{p.Label, p.Value}); err != nil {
			return fmt.Errorf("writeSheet %s: %w", sheet, err)
		}
	}
	return nil
}
