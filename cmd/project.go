package cmd

import (
	"fmt"
	"time"

	"daylog/timelog"

	"github.com/spf13/cobra"
)

var projectDBPath string

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects referenced by entries",
	Example: `
  # Register a project
  daylog project add client-a

  # List projects
  daylog project list
`,
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Args:  cobra.ExactArgs(1),
	Short: "Register a project name",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openConfiguredStore(projectDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.InsertProject(timelog.Project{
			Name:      args[0],
			CreatedAt: time.Now(),
			CreatedBy: cfg.User,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Added project %s: %s\n", id, args[0])
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openConfiguredStore(projectDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		projects, err := store.ListProjects(cfg.User)
		if err != nil {
			return err
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}
		for _, project := range projects {
			fmt.Printf("%s  %s\n", project.ID, project.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)

	projectCmd.PersistentFlags().StringVar(&projectDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
}
