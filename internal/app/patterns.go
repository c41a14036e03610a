package app

import (
	"fmt"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var patternsDays int

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Time-of-day, day-of-week and trend patterns in your mood",
	RunE:  runPatterns,
}

func init() {
	patternsCmd.Flags().IntVar(&patternsDays, "days", 0, "Analysis window in days (default from config)")
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.eng.MoodPatterns(s.days(patternsDays))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}

	fmt.Println(output.Section("Mood Patterns"))
	fmt.Println()

	if res.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(res.Status, res.Message))
		return nil
	}

	if res.TimeOfDay != nil {
		tbl := output.NewTable("Time of Day", "Avg Mood")
		addBand := func(name string, mean *float64) {
			if mean != nil {
				tbl.AddRow(name, output.MoodBar(*mean, 10))
			}
		}
		addBand("morning", res.TimeOfDay.Morning)
		addBand("afternoon", res.TimeOfDay.Afternoon)
		addBand("evening", res.TimeOfDay.Evening)
		tbl.Print()
		fmt.Println()
	}

	if res.DayOfWeek != nil {
		tbl := output.NewTable("Period", "Avg Mood")
		if res.DayOfWeek.Weekday != nil {
			tbl.AddRow("weekdays", output.MoodBar(*res.DayOfWeek.Weekday, 10))
		}
		if res.DayOfWeek.Weekend != nil {
			tbl.AddRow("weekends", output.MoodBar(*res.DayOfWeek.Weekend, 10))
		}
		tbl.Print()
		fmt.Println()
	}

	if trend := res.TrendAnalysis; trend != nil {
		fmt.Printf(" Overall trend: %s %s\n", trend.Direction, output.TrendArrow(trend.OverallTrend))
		if trend.WeeklyTrend != nil {
			fmt.Printf(" Weekly trend:  %s %s\n", trend.WeeklyDirection, output.TrendArrow(*trend.WeeklyTrend))
		}
		fmt.Println()
	}

	fmt.Println(output.InsightList(res.Insights))
	return nil
}
