package app

import (
	"fmt"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var correlationsDays int

var correlationsCmd = &cobra.Command{
	Use:   "correlations",
	Short: "Same-day correlations between activities, sleep and mood",
	RunE:  runCorrelations,
}

func init() {
	correlationsCmd.Flags().IntVar(&correlationsDays, "days", 0, "Analysis window in days (default from config)")
	rootCmd.AddCommand(correlationsCmd)
}

func runCorrelations(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	days := s.days(correlationsDays)

	activities, err := s.eng.ActivityCorrelations(days)
	if err != nil {
		return err
	}
	sleep, err := s.eng.SleepCorrelations(days)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(map[string]any{
			"activity_correlations": activities,
			"sleep_correlations":    sleep,
		})
	}

	fmt.Println(output.Section("Activity Correlations"))
	fmt.Println()
	if activities.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(activities.Status, activities.Message))
	} else {
		tbl := output.NewTable("Activity", "Duration r", "p", "Significant", "Intensity r", "Days")
		for _, c := range activities.Correlations {
			tbl.AddRow(
				c.Activity,
				fmt.Sprintf("%+.2f", c.DurationCorrelation),
				fmt.Sprintf("%.3f", c.DurationPValue),
				output.Significance(c.DurationPValue),
				optFloat(c.IntensityCorrelation),
				fmt.Sprintf("%d", c.SampleSize),
			)
		}
		tbl.Print()
		fmt.Println()
		fmt.Println(output.InsightList(activities.Insights))
	}

	fmt.Println(output.Section("Sleep Correlations"))
	fmt.Println()
	if sleep.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(sleep.Status, sleep.Message))
		return nil
	}

	tbl := output.NewTable("Measure", "r", "p", "Significant")
	if sleep.Duration != nil {
		tbl.AddRow("duration",
			fmt.Sprintf("%+.2f", sleep.Duration.Correlation),
			fmt.Sprintf("%.3f", sleep.Duration.PValue),
			output.Significance(sleep.Duration.PValue))
	}
	if sleep.Quality != nil {
		tbl.AddRow("quality",
			fmt.Sprintf("%+.2f", sleep.Quality.Correlation),
			fmt.Sprintf("%.3f", sleep.Quality.PValue),
			output.Significance(sleep.Quality.PValue))
	}
	tbl.Print()
	if sleep.OptimalSleepDuration != nil {
		fmt.Printf("\n Optimal sleep duration: %g hours\n", *sleep.OptimalSleepDuration)
	}
	fmt.Println()
	fmt.Println(output.InsightList(sleep.Insights))
	return nil
}
