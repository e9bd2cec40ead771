package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var archiveListDBPath string

var archiveListCmd = &cobra.Command{
	Use:   "list <entry-id>",
	Args:  cobra.ExactArgs(1),
	Short: "List archived states of an entry, newest first",
	Example: `
  # Show the pre-edit history of an entry
  daylog archive list 3f2c...
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openConfiguredStore(archiveListDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		archives, err := store.ListArchives(args[0])
		if err != nil {
			return err
		}

		if len(archives) == 0 {
			fmt.Println("No archived states found.")
			return nil
		}

		printArchiveTable(archives)
		return nil
	},
}

func init() {
	archiveCmd.AddCommand(archiveListCmd)

	archiveListCmd.Flags().StringVar(&archiveListDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
}
