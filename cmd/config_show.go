package cmd

import (
	"fmt"
	"github.com/spf13/viper"

	"daylog/config"
	"github.com/spf13/cobra"
)

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show active configuration values.",
	Long: `Display the currently loaded configuration and the resolved config file path.

This command validates the configuration before printing values.`,
	Example: `
  # Show active configuration
  daylog config show
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			fmt.Println("Invalid config:", err)
			return
		}

		if configPath := viper.ConfigFileUsed(); configPath != "" {
			fmt.Println("Config file loaded from:", viper.ConfigFileUsed())
			fmt.Println("Configuration:")
			fmt.Printf("user: %s\n", cfg.User)
			fmt.Printf("goal.daily_target_hours: %g\n", cfg.Goal.DailyTargetHours)
			fmt.Printf("storage.db: %s\n", cfg.Storage.DB)
		}

	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
}
