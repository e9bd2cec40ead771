package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

func writeDayReportsCSV(path string, reports []DayReport) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv output %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{"Date", "TotalHours", "Duration", "EntryCount"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, report := range reports {
		row := []string{
			report.Date,
			fmt.Sprintf("%.2f", report.TotalHours),
			report.Duration,
			strconv.Itoa(report.EntryCount),
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
