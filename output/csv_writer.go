package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"daylog/timelog"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(path string, entries []timelog.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"ID", "Title", "Description", "ProjectID", "LocationID", "DurationHours", "Deadline", "CreatedAt", "UpdatedAt", "CreatedBy", "UpdatedBy"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, entry := range entries {
		row := []string{
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
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}

	return nil
}
