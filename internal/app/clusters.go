package app

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/moodwatch/internal/analyzer"
	"github.com/blackwell-systems/moodwatch/internal/output"
	"github.com/spf13/cobra"
)

var clustersDays int

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Behavioral clusters over your mood entries",
	RunE:  runClusters,
}

func init() {
	clustersCmd.Flags().IntVar(&clustersDays, "days", 0, "Analysis window in days (default from config)")
	rootCmd.AddCommand(clustersCmd)
}

func runClusters(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.eng.MoodClusters(s.days(clustersDays))
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(res)
	}

	fmt.Println(output.Section("Mood Clusters"))
	fmt.Println()

	if res.Status != analyzer.StatusSuccess {
		fmt.Println(output.StatusNote(res.Status, res.Message))
		return nil
	}

	fmt.Printf(" %d clusters\n\n", res.OptimalClusters)

	tbl := output.NewTable("Cluster", "Share", "Avg Mood", "Time", "Common Day", "Emotions")
	for _, c := range res.ClusterStats {
		tbl.AddRow(
			fmt.Sprintf("%d", c.ClusterID+1),
			fmt.Sprintf("%.1f%%", c.Percentage),
			output.MoodBar(c.AvgMood, 10),
			c.TimeOfDay,
			c.MostCommonDay,
			strings.Join(c.CommonEmotions, ", "),
		)
	}
	tbl.Print()
	fmt.Println()
	fmt.Println(output.InsightList(res.Insights))
	return nil
}
