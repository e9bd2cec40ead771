package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	deleteDBPath        string
	deletePurgeArchives bool
)

var (
	deletePromptInput  io.Reader = os.Stdin
	deletePromptOutput io.Writer = os.Stdout
)

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Delete a time log entry",
	Long: `Delete a time log entry from the local SQLite database.

Before deletion, an interactive security prompt requires typing exactly "Y".
Archived states of the entry are kept unless --purge-archives is set.`,
	Example: `
  # Delete an entry, keeping its archived states
  daylog delete 3f2c...

  # Delete an entry together with its archived states
  daylog delete 3f2c... --purge-archives
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, err := confirmDeletePrompt(deletePromptInput, deletePromptOutput, args[0])
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("delete aborted: confirmation was not 'Y'")
		}

		store, _, err := openConfiguredStore(deleteDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		deleted, err := store.DeleteEntry(args[0], deletePurgeArchives)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("entry not found: %s", args[0])
		}

		fmt.Printf("Deleted entry: %s\n", args[0])
		if deletePurgeArchives {
			fmt.Println("Archived states purged.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().StringVar(&deleteDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
	deleteCmd.Flags().BoolVar(&deletePurgeArchives, "purge-archives", false, "Also delete the entry's archived states")
}

func confirmDeletePrompt(input io.Reader, output io.Writer, id string) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("delete confirmation input is not available")
	}

	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprintf(output, "Delete entry %q? Type Y to confirm: ", id); err != nil {
		return false, fmt.Errorf("write delete confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			line = strings.TrimSpace(line)
			return line == "Y", nil
		}
		return false, fmt.Errorf("read delete confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}
