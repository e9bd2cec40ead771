package cmd

import (
	"fmt"
	"time"

	"daylog/archiver"
	"daylog/durfmt"

	"github.com/spf13/cobra"
)

var (
	addFlags  entryFormFlags
	addDBPath string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new time log entry",
	Long: `Record a new time log entry in the local SQLite database.

Duration can be given as decimal hours (--hours 1.5) or as comma
shorthand (--duration 1,30). Shorthand wins when both are set.
A zero duration is allowed on creation; the entry can be filled in later.`,
	Example: `
  # Record 1h 30m of code review
  daylog add --title "code review" --project client-a --duration 1,30

  # Record 2.25 hours with location and deadline
  daylog add -t "sprint planning" -p client-a -l office --hours 2.25 --deadline 2026-04-01
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openConfiguredStore(addDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		form, err := addFlags.toForm()
		if err != nil {
			return err
		}

		entry, err := archiver.NewService(store).Create(form, cfg.User, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Added entry %s: %s (%s)\n", entry.ID, entry.Title, durfmt.FormatEnglish(entry.DurationHours))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)

	addFlags.register(addCmd)
	addCmd.Flags().StringVar(&addDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")

	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("project")
}
