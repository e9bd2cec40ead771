package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"daylog/archiver"
	"daylog/durfmt"

	"github.com/spf13/cobra"
)

var (
	editFlags     entryFormFlags
	editDBPath    string
	editArchive   bool
	editNoArchive bool
)

var (
	editPromptInput  io.Reader = os.Stdin
	editPromptOutput io.Writer = os.Stdout
)

var editCmd = &cobra.Command{
	Use:   "edit <entry-id>",
	Args:  cobra.ExactArgs(1),
	Short: "Edit a time log entry, optionally archiving its current state",
	Long: `Edit an existing time log entry.

Before the edit is applied you are asked whether the current state of the
entry should be archived. An archived state is a read-only snapshot kept
in the entry's history. Use --archive or --no-archive to skip the prompt.

Declining the archive still applies the edit; only the snapshot is skipped.`,
	Example: `
  # Edit with interactive archive prompt
  daylog edit 3f2c... --title "final report" --hours 3

  # Archive the current state without asking
  daylog edit 3f2c... --hours 3 --archive

  # Apply the edit without keeping a snapshot
  daylog edit 3f2c... --hours 3 --no-archive
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if editArchive && editNoArchive {
			return fmt.Errorf("--archive and --no-archive are mutually exclusive")
		}

		store, cfg, err := openConfiguredStore(editDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		form, err := editFlags.toForm()
		if err != nil {
			return err
		}

		decision, err := resolveSnapshotDecision(editArchive, editNoArchive, editPromptInput, editPromptOutput)
		if err != nil {
			return err
		}

		result, err := archiver.NewService(store).EditLive(args[0], form, decision, cfg.User, time.Now())
		if err != nil {
			return err
		}

		fmt.Printf("Updated entry %s: %s (%s)\n", result.Entry.ID, result.Entry.Title, durfmt.FormatEnglish(result.Entry.DurationHours))
		if result.ArchiveID != "" {
			fmt.Printf("Archived previous state as %s\n", result.ArchiveID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)

	editFlags.register(editCmd)
	editCmd.Flags().StringVar(&editDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
	editCmd.Flags().BoolVar(&editArchive, "archive", false, "Archive the current state without asking")
	editCmd.Flags().BoolVar(&editNoArchive, "no-archive", false, "Apply the edit without archiving the current state")
}

// resolveSnapshotDecision maps the flag pair onto a snapshot decision and
// falls back to the interactive prompt when neither flag is set.
func resolveSnapshotDecision(archive, noArchive bool, input io.Reader, output io.Writer) (archiver.SnapshotDecision, error) {
	if archive {
		return archiver.SnapshotConfirmed, nil
	}
	if noArchive {
		return archiver.SnapshotDeclined, nil
	}

	confirmed, err := confirmSnapshotPrompt(input, output)
	if err != nil {
		return archiver.SnapshotDeclined, err
	}
	if confirmed {
		return archiver.SnapshotConfirmed, nil
	}
	return archiver.SnapshotDeclined, nil
}

func confirmSnapshotPrompt(input io.Reader, output io.Writer) (bool, error) {
	if input == nil {
		return false, fmt.Errorf("archive confirmation input is not available")
	}

	if output == nil {
		output = io.Discard
	}

	if _, err := fmt.Fprint(output, "Archive the current state before editing? Type Y to archive: "); err != nil {
		return false, fmt.Errorf("write archive confirmation prompt: %w", err)
	}

	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			line = strings.TrimSpace(line)
			return line == "Y", nil
		}
		return false, fmt.Errorf("read archive confirmation: %w", err)
	}
	return strings.TrimSpace(line) == "Y", nil
}
