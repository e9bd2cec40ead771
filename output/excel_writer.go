package output

import (
	"fmt"
	"strconv"
	"time"

	"daylog/timelog"

	"github.com/xuri/excelize/v2"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(path string, entries []timelog.Entry) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	headers := []string{"ID", "Title", "Description", "ProjectID", "LocationID", "DurationHours", "Deadline", "CreatedAt", "UpdatedAt", "CreatedBy", "UpdatedBy"}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("set excel header %s: %w", cell, err)
		}
	}

	for i, entry := range entries {
		row := i + 2
		values := []string{
			entry.ID,
			entry.Title,
			entry.Description,
			entry.ProjectID,
			entry.LocationID,
			strconv.FormatFloat(entry.DurationHours, 'f', 2, 64),
			entry.Deadline.Format(time.RFC3339),
			entry.CreatedAt.Format(time.RFC3339),
			entry.UpdatedAt.Format(time.RFC3339),
			entry.CreatedBy,
			entry.UpdatedBy,
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set excel value %s: %w", cell, err)
			}
		}
	}

	if err := file.SaveAs(path); err != nil {
		return fmt.Errorf("save excel output %s: %w", path, err)
	}

	return nil
}
