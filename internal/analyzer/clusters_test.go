package analyzer

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/moodwatch/internal/store"
)

// twoGroupFixture logs two clearly separated behavioral groups: happy
// morning entries and low evening entries, one of each per day.
func twoGroupFixture(days int) *fakeSource {
	f := &fakeSource{}
	for offset := 0; offset < days; offset++ {
		f.moods = append(f.moods, moodAt(offset, 9, 8, "happy", "content"))
		f.moods = append(f.moods, moodAt(offset, 20, 3, "sad"))
	}
	return f
}

func TestMoodClustersInsufficientEntries(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset < 9; offset++ {
		f.moods = append(f.moods, moodAt(offset, 12, 6))
	}
	e := newTestEngine(f)

	res, err := e.MoodClusters(30)
	if err != nil {
		t.Fatalf("MoodClusters: %v", err)
	}
	if res.Status != StatusInsufficientData {
		t.Errorf("Status = %q, want insufficient_data", res.Status)
	}
	if res.Message != "Not enough mood data for clustering analysis" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestMoodClustersStructure(t *testing.T) {
	e := newTestEngine(twoGroupFixture(15))

	res, err := e.MoodClusters(30)
	if err != nil {
		t.Fatalf("MoodClusters: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q (%s), want success", res.Status, res.Message)
	}

	if res.OptimalClusters < 2 || res.OptimalClusters > 4 {
		t.Fatalf("OptimalClusters = %d, want 2..4", res.OptimalClusters)
	}
	if len(res.ClusterStats) != res.OptimalClusters {
		t.Errorf("got %d cluster stats, want %d", len(res.ClusterStats), res.OptimalClusters)
	}
	if len(res.Insights) != res.OptimalClusters {
		t.Errorf("got %d insights, want one per cluster", len(res.Insights))
	}

	totalSize := 0
	totalPct := 0.0
	for _, c := range res.ClusterStats {
		totalSize += c.Size
		totalPct += c.Percentage
	}
	if totalSize != 30 {
		t.Errorf("cluster sizes sum to %d, want 30", totalSize)
	}
	if math.Abs(totalPct-100) > 1e-9 {
		t.Errorf("percentages sum to %v, want 100", totalPct)
	}

	for _, insight := range res.Insights {
		if !strings.HasPrefix(insight, "Cluster ") {
			t.Errorf("insight %q does not describe a cluster", insight)
		}
	}
}

func TestMoodClustersSeparatesGroups(t *testing.T) {
	e := newTestEngine(twoGroupFixture(15))

	res, err := e.MoodClusters(30)
	if err != nil {
		t.Fatalf("MoodClusters: %v", err)
	}

	categories := make(map[string]bool)
	for _, c := range res.ClusterStats {
		categories[c.MoodCategory] = true
	}
	if !categories["positive"] || !categories["negative"] {
		t.Errorf("expected both a positive and a negative cluster, got %+v", res.ClusterStats)
	}

	for _, c := range res.ClusterStats {
		switch c.MoodCategory {
		case "positive":
			if c.TimeOfDay != "morning" {
				t.Errorf("positive cluster time = %q, want morning", c.TimeOfDay)
			}
			if len(c.CommonEmotions) == 0 || c.CommonEmotions[0] != "happy" {
				t.Errorf("positive cluster emotions = %v, want happy first", c.CommonEmotions)
			}
		case "negative":
			if c.TimeOfDay != "evening" {
				t.Errorf("negative cluster time = %q, want evening", c.TimeOfDay)
			}
		}
	}
}

func TestMoodClustersDeterministic(t *testing.T) {
	e := newTestEngine(twoGroupFixture(15))

	first, err := e.MoodClusters(30)
	if err != nil {
		t.Fatalf("MoodClusters: %v", err)
	}
	second, err := e.MoodClusters(30)
	if err != nil {
		t.Fatalf("MoodClusters: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated MoodClusters calls returned different results")
	}
}

func TestElbowK(t *testing.T) {
	cases := []struct {
		inertias []float64
		want     int
	}{
		// Improvement collapses after k=3.
		{[]float64{100, 50, 45, 44}, 3},
		// Improvements stay comparable, default to 2.
		{[]float64{100, 60, 30}, 2},
		{[]float64{100}, 2},
		{nil, 2},
	}
	for _, tc := range cases {
		if got := elbowK(tc.inertias); got != tc.want {
			t.Errorf("elbowK(%v) = %d, want %d", tc.inertias, got, tc.want)
		}
	}
}

func TestTopEmotions(t *testing.T) {
	members := []store.MoodEntry{
		{Emotions: []string{"calm", "happy"}},
		{Emotions: []string{"happy", "tired"}},
		{Emotions: []string{"happy", "calm", "anxious"}},
	}

	got := topEmotions(members, 3)
	want := []string{"happy", "calm", "tired"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topEmotions = %v, want %v", got, want)
	}

	if got := topEmotions(members, 1); !reflect.DeepEqual(got, []string{"happy"}) {
		t.Errorf("topEmotions limit 1 = %v, want [happy]", got)
	}
	if got := topEmotions(nil, 3); got != nil {
		t.Errorf("topEmotions(nil) = %v, want nil", got)
	}
}

func TestMondayIndexed(t *testing.T) {
	if got := mondayIndexed(time.Monday); got != 0 {
		t.Errorf("mondayIndexed(Monday) = %d, want 0", got)
	}
	if got := mondayIndexed(time.Sunday); got != 6 {
		t.Errorf("mondayIndexed(Sunday) = %d, want 6", got)
	}
	if got := mondayIndexed(time.Saturday); got != 5 {
		t.Errorf("mondayIndexed(Saturday) = %d, want 5", got)
	}
}

func TestMoodCategoryBounds(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{7, "positive"},
		{7.5, "positive"},
		{4, "negative"},
		{3.2, "negative"},
		{5.5, "neutral"},
	}
	for _, tc := range cases {
		if got := moodCategory(tc.avg); got != tc.want {
			t.Errorf("moodCategory(%v) = %q, want %q", tc.avg, got, tc.want)
		}
	}
}
