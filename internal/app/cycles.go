package app

import (
	"fmt"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var cyclesDays int

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "Periodicity in the daily mood series",
	RunE:  runCycles,
}

func init() {
	cyclesCmd.Flags().IntVar(&cyclesDays, "days", 0, "Analysis window in days (default from config)")
	rootCmd.AddCommand(cyclesCmd)
}

func runCycles(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.eng.MoodCycles(s.days(cyclesDays))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}

	fmt.Println(output.Section("Mood Cycles"))
	fmt.Println()

	if res.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(res.Status, res.Message))
		return nil
	}

	if len(res.Cycles) > 0 {
		tbl := output.NewTable("Length", "Strength", "Type")
		for _, c := range res.Cycles {
			tbl.AddRow(
				fmt.Sprintf("%d d", c.Length),
				fmt.Sprintf("%.2f", c.Strength),
				c.Type,
			)
		}
		tbl.Print()
		fmt.Println()
	}

	fmt.Println(output.InsightList(res.Insights))
	return nil
}
