package timelog

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	v1 "rcauthy.net/rcauthy/rcauthy/v1"
	"rcauthy.net/rcauthy/rcauthy/v1/common"
	"rcauthy.net/rcauthy/utils"
)

const exportSheet = "Logs"

// ExportXLSX writes the entries to a spreadsheet at path, one row per
// record, times rendered in the Philippine zone the service operates in.
func ExportXLSX(entries []v1.LogEntry, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Time In", "Time Out", "Total Hours", "Type"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return err
		}
	}

	for row, entry := range entries {
		values := []any{
			entry.CreatedAt.In(utils.ManilaTZ).Format("2006-01-02"),
			formatClock(entry.TimeIn),
			formatClock(entry.TimeOut),
			entry.TotalHours,
			entry.Type,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(exportSheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save export: %w", err)
	}

	return nil
}

func formatClock(ts common.Timestamp) string {
	if ts.IsZero() {
		return ""
	}
	return ts.In(utils.ManilaTZ).Format("03:04 PM")
}
