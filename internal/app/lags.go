package app

import (
	"fmt"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var (
	lagsDays   int
	lagsMaxLag int
)

var lagsCmd = &cobra.Command{
	Use:   "lags",
	Short: "Delayed effects of activities and sleep on mood",
	Long: `Correlate each activity and sleep variable against mood shifted by
1..N days, to surface effects that take a day or more to show up.`,
	RunE: runLags,
}

func init() {
	lagsCmd.Flags().IntVar(&lagsDays, "days", 0, "Analysis window in days (default from config)")
	lagsCmd.Flags().IntVar(&lagsMaxLag, "max-lag", 0, "Maximum lag in days (default from config)")
	rootCmd.AddCommand(lagsCmd)
}

func runLags(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.eng.LaggedCorrelations(s.days(lagsDays), s.maxLag(lagsMaxLag))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}

	fmt.Println(output.Section("Lagged Correlations"))
	fmt.Println()

	if res.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(res.Status, res.Message))
		return nil
	}

	if len(res.LagResults) == 0 {
		fmt.Println(output.StyleMuted.Render(" No variable shows a delayed relationship with mood."))
		return nil
	}

	tbl := output.NewTable("Variable", "Best Lag", "r", "p", "Significant")
	for _, r := range res.LagResults {
		tbl.AddRow(
			r.Variable,
			fmt.Sprintf("%d d", r.StrongestLag.Lag),
			fmt.Sprintf("%+.2f", r.StrongestLag.Correlation),
			fmt.Sprintf("%.3f", r.StrongestLag.PValue),
			output.Significance(r.StrongestLag.PValue),
		)
	}
	tbl.Print()
	fmt.Println()
	fmt.Println(output.InsightList(res.Insights))
	return nil
}
