package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"daylog/output"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportMode   string
	exportOutput string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export time log entries from SQLite to CSV/Excel",
	Long: `Export time log entries from SQLite.

Modes:
- raw: export each entry row
- daily: export per-day totals (date, total hours, duration, entry count)

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export raw entries to CSV
  daylog export --mode raw --output ./entries.csv

  # Export raw entries to Excel
  daylog export --mode raw --output ./entries.xlsx

  # Export per-day totals to CSV
  daylog export --mode daily --output ./days.csv

  # Force Excel format independent of extension
  daylog export --mode daily --format excel --output ./days.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		store, cfg, err := openConfiguredStore(exportDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.ListEntries(cfg.User)
		if err != nil {
			return err
		}

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, entries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Rows: %d, Mode: raw, Format: %s, File: %s\n", len(entries), format, exportOutput)
		case "daily":
			reports := output.BuildDayReports(entries)
			if err := output.WriteDayReports(exportOutput, format, reports); err != nil {
				return err
			}
			fmt.Printf("Export completed. Days: %d, Mode: daily, Format: %s, File: %s\n", len(reports), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, daily)", exportMode)
		}
		return nil
	},
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|daily")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")

	_ = exportCmd.MarkFlagRequired("output")
}
