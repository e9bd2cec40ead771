/*
Copyright © 2026 daylog authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"github.com/spf13/viper"
	"os"

	"daylog/config"
	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "daylog",
	Short: "Track daily time log entries against a daily hour goal.",
	Long: `
**********************************************
*                 DAY LOG                    *
**********************************************

This CLI records time log entries in a local SQLite database, keeps a
pre-edit history of every entry you choose to archive, summarizes today,
this week, and this month against your daily hour goal, and exports
entries to CSV or Excel.

Durations are entered as decimal hours or as comma shorthand:
"1,30" means 1 hour 30 minutes.
`,
	Example: `
  # Create configuration file
  daylog config create

  # Record 1h 30m of work
  daylog add --title "code review" --project client-a --duration 1,30

  # Edit an entry, archiving its current state first
  daylog edit 3f2c... --hours 3 --archive

  # Show today/week/month totals and goal progress
  daylog summary

  # Export raw entries
  daylog export --mode raw --output ./entries.csv

  # Export per-day totals
  daylog export --mode daily --output ./days.xlsx

  # Start the local web dashboard
  daylog serve
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.daylog.yaml, then ./.daylog.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".daylog" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".daylog")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintln(os.Stderr, "No config file found. Create one first with: daylog config create")
	}
}
