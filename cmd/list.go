package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listDBPath string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List time log entries, newest first",
	Example: `
  # List all entries for the configured user
  daylog list
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openConfiguredStore(listDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.ListEntries(cfg.User)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No entries found.")
			return nil
		}

		printEntryTable(entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
}
