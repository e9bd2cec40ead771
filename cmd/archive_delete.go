package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveDeleteDBPath string

var archiveDeleteCmd = &cobra.Command{
	Use:   "delete <archive-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Delete a single archived state",
	Example: `
  # Remove one snapshot from an entry's history
  daylog archive delete 9a1b...
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openConfiguredStore(archiveDeleteDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.DeleteArchive(args[0])
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("archived state not found: %s", args[0])
		}

		fmt.Printf("Deleted archived state: %s\n", args[0])
		return nil
	},
}

func init() {
	archiveCmd.AddCommand(archiveDeleteCmd)

	archiveDeleteCmd.Flags().StringVar(&archiveDeleteDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
}
