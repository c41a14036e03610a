package app

import (
	"fmt"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var (
	causalityDays   int
	causalityMaxLag int
)

var causalityCmd = &cobra.Command{
	Use:   "causality",
	Short: "Granger causality between mood and its drivers",
	Long: `Test, for each activity and sleep variable, whether its history helps
predict mood beyond mood's own history, and the reverse direction.
A significant result is predictive, not proof of causation.`,
	RunE: runCausality,
}

func init() {
	causalityCmd.Flags().IntVar(&causalityDays, "days", 0, "Analysis window in days (default from config)")
	causalityCmd.Flags().IntVar(&causalityMaxLag, "max-lag", 0, "Maximum lag in days (default from config)")
	rootCmd.AddCommand(causalityCmd)
}

func runCausality(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.eng.GrangerCausality(s.days(causalityDays), s.maxLag(causalityMaxLag))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}

	fmt.Println(output.Section("Granger Causality"))
	fmt.Println()

	if res.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(res.Status, res.Message))
		return nil
	}

	if len(res.CausalityResults) == 0 {
		fmt.Println(output.StyleMuted.Render(" No predictive relationships found."))
		return nil
	}

	tbl := output.NewTable("Direction", "Best Lag", "p")
	for _, r := range res.CausalityResults {
		tbl.AddRow(
			r.Direction,
			fmt.Sprintf("%d d", r.MostSignificantLag.Lag),
			fmt.Sprintf("%.4f", r.MostSignificantLag.PValue),
		)
	}
	tbl.Print()
	fmt.Println()
	fmt.Println(output.InsightList(res.Insights))
	return nil
}
