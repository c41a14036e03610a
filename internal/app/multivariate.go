package app

import (
	"fmt"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var multivariateDays int

var multivariateCmd = &cobra.Command{
	Use:   "multivariate",
	Short: "Joint structure across mood, activities and sleep",
	RunE:  runMultivariate,
}

func init() {
	multivariateCmd.Flags().IntVar(&multivariateDays, "days", 0, "Analysis window in days (default from config)")
	rootCmd.AddCommand(multivariateCmd)
}

func runMultivariate(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.eng.Multivariate(s.days(multivariateDays))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}

	fmt.Println(output.Section("Multivariate Analysis"))
	fmt.Println()

	if res.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(res.Status, res.Message))
		return nil
	}

	if pca := res.PCAAnalysis; pca != nil {
		if pca.Error != "" {
			fmt.Println(output.StatusNote(analyzer.StatusError, "PCA failed: "+pca.Error))
		} else {
			fmt.Printf(" Mood loads on component %d\n", pca.MoodPrincipalComponent)
			if len(pca.ExplainedVariance) > 0 {
				fmt.Printf(" First component explains %.0f%% of variance\n\n", pca.ExplainedVariance[0]*100)
			}
			if len(pca.MoodRelatedVariables) > 0 {
				tbl := output.NewTable("Variable", "Loading", "Relationship")
				for _, v := range pca.MoodRelatedVariables {
					tbl.AddRow(v.Variable, fmt.Sprintf("%+.2f", v.Loading), v.Relationship)
				}
				tbl.Print()
			}
		}
		fmt.Println()
	}

	if va := res.VARAnalysis; va != nil {
		if va.Error != "" {
			fmt.Println(output.StatusNote(analyzer.StatusError, "VAR failed: "+va.Error))
		} else {
			fmt.Printf(" VAR model order: %d\n", va.ModelOrder)
			if len(va.GrangerCausality) > 0 {
				tbl := output.NewTable("Direction", "F", "p")
				for _, g := range va.GrangerCausality {
					tbl.AddRow(g.Direction,
						fmt.Sprintf("%.2f", g.TestStatistic),
						fmt.Sprintf("%.4f", g.PValue))
				}
				tbl.Print()
			}
		}
		fmt.Println()
	}

	fmt.Println(output.InsightList(res.Insights))
	return nil
}
