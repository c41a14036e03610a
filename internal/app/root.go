// Package app contains the Cobra command tree for moodwatch.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "moodwatch",
	Short: "Track mood, activities and sleep, and analyze what drives them",
	Long: `moodwatch keeps a local log of mood ratings, activities and sleep
sessions, and turns that irregular history into daily series it can
analyze: recurring patterns, lagged correlations, causality tests,
multivariate structure, cycles and behavioral clusters, each with
plain-language insights.

Run 'moodwatch' with no arguments for an overview of the commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("moodwatch", appVersion)
		fmt.Println()
		fmt.Println("Track your day:")
		fmt.Println("  track mood      Log a mood rating with optional emotions")
		fmt.Println("  track activity  Log an activity with duration and intensity")
		fmt.Println("  track sleep     Log a sleep session")
		fmt.Println()
		fmt.Println("Analyze your history:")
		fmt.Println("  patterns      Time-of-day, day-of-week and trend patterns")
		fmt.Println("  correlations  Same-day activity and sleep correlations")
		fmt.Println("  lags          Delayed effects of activities and sleep on mood")
		fmt.Println("  causality     Granger causality between mood and its drivers")
		fmt.Println("  multivariate  Joint structure across all variables")
		fmt.Println("  cycles        Periodicity in the daily mood series")
		fmt.Println("  clusters      Behavioral clusters over your mood entries")
		fmt.Println("  report        Everything above in one combined report")
		fmt.Println()
		fmt.Println("Manage your data:")
		fmt.Println("  data export   Write the full event log as JSON")
		fmt.Println("  data import   Load entries from a JSON archive")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/moodwatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
