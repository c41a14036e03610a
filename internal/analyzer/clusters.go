package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/moodwatch/internal/stats"
	"github.com/blackwell-systems/moodwatch/internal/store"
)

const minClusterEntries = 10

var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MoodClusters groups raw mood entries into behavioral clusters over
// mood level, hour of day, and day of week, picking the cluster count
// by an elbow heuristic. The fixed seed keeps runs reproducible for
// identical input.
func (e *Engine) MoodClusters(days int) (*ClustersResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	moods, err := e.moodEntries(days)
	if err != nil {
		return nil, err
	}

	n := len(moods)
	if n < minClusterEntries {
		return &ClustersResult{
			Status:   StatusInsufficientData,
			Message:  "Not enough mood data for clustering analysis",
			Insights: []string{},
		}, nil
	}

	// Feature vector per entry: mood level, hour, weekday (Monday=0).
	points := make([][]float64, n)
	for i, m := range moods {
		points[i] = []float64{
			m.MoodLevel,
			float64(m.Timestamp.Hour()),
			float64(mondayIndexed(m.Timestamp.Weekday())),
		}
	}
	scaled := stats.Standardize(points)

	maxK := n / 3
	if maxK > 4 {
		maxK = 4
	}
	if maxK < 2 {
		maxK = 2
	}

	inertias := make([]float64, 0, maxK-1)
	for k := 2; k <= maxK; k++ {
		fit, err := stats.KMeans(scaled, k, e.cfg.ClusterSeed)
		if err != nil {
			return &ClustersResult{
				Status:   StatusError,
				Message:  fmt.Sprintf("Error in clustering analysis: %v", err),
				Insights: []string{},
			}, nil
		}
		inertias = append(inertias, fit.Inertia)
	}

	optimalK := elbowK(inertias)

	fit, err := stats.KMeans(scaled, optimalK, e.cfg.ClusterSeed)
	if err != nil {
		return &ClustersResult{
			Status:   StatusError,
			Message:  fmt.Sprintf("Error in clustering analysis: %v", err),
			Insights: []string{},
		}, nil
	}

	clusterStats := make([]ClusterStats, 0, optimalK)
	for id := 0; id < optimalK; id++ {
		var members []store.MoodEntry
		for i, assignment := range fit.Assignments {
			if assignment == id {
				members = append(members, moods[i])
			}
		}
		clusterStats = append(clusterStats, summarizeCluster(id, members, n))
	}

	insights := make([]string, 0, optimalK)
	for _, c := range clusterStats {
		insights = append(insights, describeCluster(c))
	}

	return &ClustersResult{
		Status:          StatusSuccess,
		OptimalClusters: optimalK,
		ClusterStats:    clusterStats,
		Insights:        insights,
	}, nil
}

// elbowK picks the smallest k at which the inertia improvement drops
// below half the previous improvement, defaulting to 2.
func elbowK(inertias []float64) int {
	if len(inertias) < 2 {
		return 2
	}
	changes := make([]float64, len(inertias)-1)
	for i := 1; i < len(inertias); i++ {
		changes[i-1] = inertias[i-1] - inertias[i]
	}
	for i := 1; i < len(changes); i++ {
		if changes[i] < 0.5*changes[i-1] {
			return i + 2
		}
	}
	return 2
}

func summarizeCluster(id int, members []store.MoodEntry, total int) ClusterStats {
	moodLevels := make([]float64, len(members))
	dayCounts := make(map[int]int)
	var hourSum float64
	for i, m := range members {
		moodLevels[i] = m.MoodLevel
		hourSum += float64(m.Timestamp.Hour())
		dayCounts[mondayIndexed(m.Timestamp.Weekday())]++
	}

	avgMood := stats.Mean(moodLevels)
	avgHour := hourSum / float64(len(members))

	mostCommonDay := 0
	for day := 1; day < 7; day++ {
		if dayCounts[day] > dayCounts[mostCommonDay] {
			mostCommonDay = day
		}
	}

	return ClusterStats{
		ClusterID:      id,
		Size:           len(members),
		Percentage:     float64(len(members)) / float64(total) * 100,
		AvgMood:        avgMood,
		MoodCategory:   moodCategory(avgMood),
		TimeOfDay:      hourLabel(avgHour),
		MostCommonDay:  weekdayNames[mostCommonDay],
		CommonEmotions: topEmotions(members, 3),
	}
}

func describeCluster(c ClusterStats) string {
	characteristics := []string{
		fmt.Sprintf("%s mood", c.MoodCategory),
		fmt.Sprintf("%s entries", c.TimeOfDay),
		fmt.Sprintf("often on %s", c.MostCommonDay),
	}
	if len(c.CommonEmotions) > 0 {
		characteristics = append(characteristics,
			fmt.Sprintf("emotions: %s", strings.Join(c.CommonEmotions, ", ")))
	}
	return fmt.Sprintf("Cluster %d (%.1f%% of entries): %s",
		c.ClusterID+1, c.Percentage, strings.Join(characteristics, ", "))
}

func moodCategory(avg float64) string {
	switch {
	case avg >= 7:
		return "positive"
	case avg <= 4:
		return "negative"
	default:
		return "neutral"
	}
}

func hourLabel(hour float64) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// topEmotions counts emotions across members and returns up to limit
// names, most frequent first, breaking ties by first appearance.
func topEmotions(members []store.MoodEntry, limit int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for _, m := range members {
		for _, emotion := range m.Emotions {
			if _, ok := counts[emotion]; !ok {
				firstSeen[emotion] = len(firstSeen)
			}
			counts[emotion]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return firstSeen[names[i]] < firstSeen[names[j]]
	})

	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

// mondayIndexed maps Go's Sunday-first weekday to Monday=0..Sunday=6.
func mondayIndexed(d time.Weekday) int {
	return (int(d) + 6) % 7
}
