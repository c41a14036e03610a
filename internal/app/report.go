package app

import (
	"fmt"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var (
	reportDays   int
	reportMaxLag int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run every analysis and combine the insights",
	Long: `Run patterns, lagged correlations, causality, multivariate, cycle and
cluster analysis over one window and curate the headline insights.
Analyses without enough data are noted and skipped.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportDays, "days", 0, "Analysis window in days (default from config)")
	reportCmd.Flags().IntVar(&reportMaxLag, "max-lag", 0, "Maximum lag in days (default from config)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.eng.Comprehensive(s.days(reportDays), s.maxLag(reportMaxLag))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}

	fmt.Println(output.Section("Mood Report"))
	fmt.Println()

	sections := []struct {
		name    string
		status  string
		message string
	}{
		{"Patterns", res.MoodPatterns.Status, res.MoodPatterns.Message},
		{"Lagged correlations", res.LaggedCorrelations.Status, res.LaggedCorrelations.Message},
		{"Causality", res.GrangerCausality.Status, res.GrangerCausality.Message},
		{"Multivariate", res.MultivariateRelationships.Status, res.MultivariateRelationships.Message},
		{"Cycles", res.MoodCycles.Status, res.MoodCycles.Message},
		{"Clusters", res.MoodClusters.Status, res.MoodClusters.Message},
	}

	tbl := output.NewTable("Analysis", "Status")
	for _, sec := range sections {
		status := sec.status
		if status != analyzer.StatusSuccess && sec.message != "" {
			status = fmt.Sprintf("%s (%s)", status, sec.message)
		}
		tbl.AddRow(sec.name, status)
	}
	tbl.Print()

	if len(res.KeyInsights) > 0 {
		fmt.Println(output.Section("Key Insights"))
		fmt.Println()
		fmt.Println(output.InsightList(res.KeyInsights))
	}

	if flagVerbose && len(res.AllInsights) > len(res.KeyInsights) {
		fmt.Println(output.Section("All Insights"))
		fmt.Println()
		fmt.Println(output.InsightList(res.AllInsights))
	}

	if len(res.AllInsights) == 0 {
		fmt.Println()
		fmt.Println(output.StyleMuted.Render(" Not enough data yet. Keep tracking and run this again in a week."))
	}
	return nil
}
