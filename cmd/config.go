package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage daylog configuration file values.",
	Long: `Create, edit, display, and delete the daylog configuration file.

The configuration stores application-wide values:
- user
- goal.daily_target_hours
- storage.db`,
	Example: `
  # Create default config in $HOME/.daylog.yaml
  daylog config create

  # Show active config and source file
  daylog config show

  # Open active config in editor (creates example if missing)
  daylog config edit

  # Delete active config file
  daylog config delete
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
