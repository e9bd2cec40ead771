package cmd

import (
	"fmt"
	"time"

	"daylog/timelog"

	"github.com/spf13/cobra"
)

var locationDBPath string

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage locations referenced by entries",
	Example: `
  # Register a location
  daylog location add office

  # List locations
  daylog location list
`,
}

var locationAddCmd = &cobra.Command{
	Use:   "add <name>",
	Args:  cobra.ExactArgs(1),
	Short: "Register a location name",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openConfiguredStore(locationDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.InsertLocation(timelog.Location{
			Name:      args[0],
			CreatedAt: time.Now(),
			CreatedBy: cfg.User,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added location %s: %s\n", id, args[0])
		return nil
	},
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openConfiguredStore(locationDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		locations, err := store.ListLocations(cfg.User)
		if err != nil {
			return err
		}

		if len(locations) == 0 {
			fmt.Println("No locations found.")
			return nil
		}
		for _, location := range locations {
			fmt.Printf("%s  %s\n", location.ID, location.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locationCmd)
	locationCmd.AddCommand(locationAddCmd)
	locationCmd.AddCommand(locationListCmd)

	locationCmd.PersistentFlags().StringVar(&locationDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
}
