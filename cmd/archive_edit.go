package cmd

import (
	"fmt"

	"daylog/archiver"
	"daylog/durfmt"

	"github.com/spf13/cobra"
)

var (
	archiveEditFlags  entryFormFlags
	archiveEditDBPath string
)

var archiveEditCmd = &cobra.Command{
	Use:   "edit <archive-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Correct an archived state in place",
	Long: `Correct the fields of an archived state.

The correction is applied in place. No additional snapshot is created and
the live entry is not touched.`,
	Example: `
  # Fix the title of an archived state
  daylog archive edit 9a1b... --title "code review" --project client-a --hours 2
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, err := openConfiguredStore(archiveEditDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		form, err := archiveEditFlags.toForm()
		if err != nil {
			return err
		}

		archive, err := archiver.NewService(store).EditArchive(args[0], form)
		if err != nil {
			return err
		}

		fmt.Printf("Updated archived state %s: %s (%s)\n", archive.ID, archive.Title, durfmt.FormatEnglish(archive.DurationHours))
		return nil
	},
}

func init() {
	archiveCmd.AddCommand(archiveEditCmd)

	archiveEditFlags.register(archiveEditCmd)
	archiveEditCmd.Flags().StringVar(&archiveEditDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")

	_ = archiveEditCmd.MarkFlagRequired("title")
	_ = archiveEditCmd.MarkFlagRequired("project")
}
