package cmd

import "github.com/spf13/cobra"

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Inspect and maintain archived entry states",
	Long: `Work with the pre-edit history of time log entries.

Every time an edit is confirmed for archiving, the entry's previous state
is stored as a read-only snapshot. Archived states can be listed, corrected
in place, and deleted. Editing an archived state never creates another
snapshot.`,
	Example: `
  # List archived states of an entry, newest first
  daylog archive list 3f2c...

  # Correct a typo in an archived state
  daylog archive edit 9a1b... --title "code review"

  # Delete a single archived state
  daylog archive delete 9a1b...
`,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
}
