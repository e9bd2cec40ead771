package cmd

import (
	"fmt"
	"time"

	"daylog/durfmt"
	"daylog/summary"

	"github.com/spf13/cobra"
)

var summaryDBPath string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show today/week/month totals and goal progress",
	Long: `Summarize logged hours for today, the current week (starting Sunday),
and the current month, and report progress against the daily hour goal.

Also shown: active days and average hours per active day over the
trailing 30 days, and the project and location with the most hours.`,
	Example: `
  # Show the dashboard summary
  daylog summary
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, cfg, err := openConfiguredStore(summaryDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.ListEntries(cfg.User)
		if err != nil {
			return err
		}

		now := time.Now()
		stats := summary.Summarize(entries, now)
		goal := summary.EvaluateGoal(stats.TodayHours, cfg.Goal.DailyTargetHours)

		fmt.Printf("Today:          %s\n", durfmt.FormatEnglish(stats.TodayHours))
		fmt.Printf("This week:      %s\n", durfmt.FormatEnglish(stats.WeekHours))
		fmt.Printf("This month:     %s\n", durfmt.FormatEnglish(stats.MonthHours))
		fmt.Printf("Active days:    %d (last 30 days)\n", stats.ActiveDays)
		fmt.Printf("Average daily:  %s\n", durfmt.FormatEnglish(stats.AverageDaily))
		if stats.TopProject != nil {
			fmt.Printf("Top project:    %s (%s)\n", stats.TopProject.ID, durfmt.FormatEnglish(stats.TopProject.Hours))
		}
		if stats.TopLocation != nil {
			fmt.Printf("Top location:   %s (%s)\n", stats.TopLocation.ID, durfmt.FormatEnglish(stats.TopLocation.Hours))
		}

		fmt.Printf("\nGoal:           %s of %s (%.0f%%, %s)\n",
			durfmt.FormatEnglish(goal.AchievedHours),
			durfmt.FormatEnglish(goal.TargetHours),
			goal.Progress,
			goal.Status,
		)
		switch goal.Status {
		case summary.GoalOverachieved:
			fmt.Printf("Overtime:       %s\n", durfmt.FormatEnglish(goal.OvertimeHours))
		case summary.GoalCompleted:
		default:
			fmt.Printf("Remaining:      %s\n", durfmt.FormatEnglish(goal.RemainingHours))
		}

		recent := summary.RecentEntries(entries, 3)
		if len(recent) > 0 {
			fmt.Println("\nRecent entries:")
			printEntryTable(recent)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVar(&summaryDBPath, "db", "", "Path to local SQLite database (default: storage.db from config)")
}
