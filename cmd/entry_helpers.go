package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"daylog/archiver"
	"daylog/config"
	"daylog/durfmt"
	"daylog/storage"
	"daylog/timelog"

	"github.com/spf13/cobra"
)

// openConfiguredStore loads the validated config and opens the SQLite store.
// An explicit --db flag value wins over the configured storage path.
func openConfiguredStore(dbFlag string) (*storage.SQLiteStore, *config.Config, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, nil, err
	}

	dbPath := strings.TrimSpace(dbFlag)
	if dbPath == "" {
		dbPath = cfg.Storage.DB
	}

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// resolveDurationHours picks between the --duration shorthand and the
// --hours decimal value. Shorthand wins when both are set.
func resolveDurationHours(shorthand string, hours float64) float64 {
	if strings.TrimSpace(shorthand) != "" {
		return durfmt.ParseShorthand(shorthand)
	}
	return hours
}

func parseDeadlineFlag(value string) (time.Time, error) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid deadline %q (expected YYYY-MM-DD)", raw)
	}
	return parsed, nil
}

type entryFormFlags struct {
	title       string
	description string
	project     string
	location    string
	hours       float64
	duration    string
	deadline    string
}

func (f *entryFormFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.title, "title", "t", "", "Entry title")
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "Entry description")
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "Project identifier")
	cmd.Flags().StringVarP(&f.location, "location", "l", "", "Location identifier")
	cmd.Flags().Float64Var(&f.hours, "hours", 0, "Duration in decimal hours, e.g. 1.5")
	cmd.Flags().StringVar(&f.duration, "duration", "", `Duration shorthand "H,MM", e.g. 1,30 for 1h 30m`)
	cmd.Flags().StringVar(&f.deadline, "deadline", "", "Deadline date YYYY-MM-DD (default: today)")
}

func (f *entryFormFlags) toForm() (archiver.Form, error) {
	deadline, err := parseDeadlineFlag(f.deadline)
	if err != nil {
		return archiver.Form{}, err
	}

	return archiver.Form{
		Title:         strings.TrimSpace(f.title),
		Description:   strings.TrimSpace(f.description),
		ProjectID:     strings.TrimSpace(f.project),
		LocationID:    strings.TrimSpace(f.location),
		DurationHours: resolveDurationHours(f.duration, f.hours),
		Deadline:      deadline,
	}, nil
}

func printEntryTable(entries []timelog.Entry) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tPROJECT\tLOCATION\tDURATION\tDEADLINE\tCREATED")
	for _, entry := range entries {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.ID,
			entry.Title,
			entry.ProjectID,
			entry.LocationID,
			durfmt.FormatEnglish(entry.DurationHours),
			entry.Deadline.Format("2006-01-02"),
			entry.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = writer.Flush()
}

func printArchiveTable(archives []timelog.ArchivedEntry) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tENTRY\tTITLE\tPROJECT\tLOCATION\tDURATION\tDEADLINE\tARCHIVED")
	for _, archive := range archives {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			archive.ID,
			archive.EntryID,
			archive.Title,
			archive.ProjectID,
			archive.LocationID,
			durfmt.FormatEnglish(archive.DurationHours),
			archive.Deadline.Format("2006-01-02"),
			archive.CreatedAt.Format("2006-01-02 15:04"),
		)
	}
	_ = writer.Flush()
}
