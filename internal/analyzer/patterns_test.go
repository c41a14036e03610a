package analyzer

import (
	"testing"
)

func TestMoodPatternsInsufficientData(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset < 4; offset++ {
		f.moods = append(f.moods, moodAt(offset, 12, 6))
	}
	e := newTestEngine(f)

	res, err := e.MoodPatterns(30)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	if res.Status != StatusInsufficientData {
		t.Errorf("Status = %q, want %q", res.Status, StatusInsufficientData)
	}
	if res.TimeOfDay != nil {
		t.Error("TimeOfDay should be nil on insufficient data")
	}
}

func TestMoodPatternsWeekendPeriod(t *testing.T) {
	e := newTestEngine(weekendFixture(60))

	res, err := e.MoodPatterns(60)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", res.Status)
	}

	if res.DayOfWeek.BetterPeriod != "weekends" {
		t.Errorf("BetterPeriod = %q, want weekends", res.DayOfWeek.BetterPeriod)
	}
	if *res.DayOfWeek.Weekend != 7 || *res.DayOfWeek.Weekday != 5 {
		t.Errorf("weekend/weekday means = %v/%v, want 7/5", *res.DayOfWeek.Weekend, *res.DayOfWeek.Weekday)
	}
	if !containsString(res.Insights, "Your mood is typically better on weekends compared to weekdays.") {
		t.Errorf("missing weekend insight, got %v", res.Insights)
	}
}

func TestMoodPatternsBestTimeOfDay(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset < 5; offset++ {
		f.moods = append(f.moods, moodAt(offset, 9, 8))  // morning
		f.moods = append(f.moods, moodAt(offset, 20, 5)) // evening
	}
	e := newTestEngine(f)

	res, err := e.MoodPatterns(30)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	if res.TimeOfDay.BestTime != "morning" {
		t.Errorf("BestTime = %q, want morning", res.TimeOfDay.BestTime)
	}
	if res.TimeOfDay.Afternoon != nil {
		t.Error("Afternoon should be nil with no afternoon entries")
	}
	if !containsString(res.Insights, "Your mood tends to be best during the morning.") {
		t.Errorf("missing best-time insight, got %v", res.Insights)
	}
}

func TestMoodPatternsNearTieYieldsNoBestTime(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset < 5; offset++ {
		f.moods = append(f.moods, moodAt(offset, 9, 7))
		f.moods = append(f.moods, moodAt(offset, 20, 6.8))
	}
	e := newTestEngine(f)

	res, err := e.MoodPatterns(30)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	if res.TimeOfDay.BestTime != "" {
		t.Errorf("BestTime = %q, want none for a 0.2 gap", res.TimeOfDay.BestTime)
	}
}

func TestMoodPatternsNightEntriesExcluded(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset < 6; offset++ {
		f.moods = append(f.moods, moodAt(offset, 2, 3)) // night, outside every band
	}
	e := newTestEngine(f)

	res, err := e.MoodPatterns(30)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	if res.TimeOfDay.Morning != nil || res.TimeOfDay.Afternoon != nil || res.TimeOfDay.Evening != nil {
		t.Error("night entries must not populate any hour band")
	}
	if res.TimeOfDay.BestTime != "" {
		t.Errorf("BestTime = %q, want none", res.TimeOfDay.BestTime)
	}
}

func TestMoodPatternsImprovingTrend(t *testing.T) {
	f := &fakeSource{}
	for i := 0; i < 20; i++ {
		// Oldest entry first: offset 19 is the earliest.
		f.moods = append(f.moods, moodAt(19-i, 12, 1+float64(i)*0.2))
	}
	e := newTestEngine(f)

	res, err := e.MoodPatterns(30)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	trend := res.TrendAnalysis
	if trend == nil {
		t.Fatal("TrendAnalysis missing with 20 entries")
	}
	if trend.Direction != "improving" {
		t.Errorf("Direction = %q (slope %v), want improving", trend.Direction, trend.OverallTrend)
	}
	if trend.WeeklyTrend == nil {
		t.Fatal("WeeklyTrend missing with 20 entries")
	}
	if trend.WeeklyDirection != "improving" {
		t.Errorf("WeeklyDirection = %q, want improving", trend.WeeklyDirection)
	}
	if !containsString(res.Insights, "Your overall mood has been improving during this period.") {
		t.Errorf("missing trend insight, got %v", res.Insights)
	}
}

func TestMoodPatternsTrendNeedsSevenEntries(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset < 5; offset++ {
		f.moods = append(f.moods, moodAt(offset, 12, float64(offset)))
	}
	e := newTestEngine(f)

	res, err := e.MoodPatterns(30)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", res.Status)
	}
	if res.TrendAnalysis != nil {
		t.Error("TrendAnalysis should be nil with fewer than 7 entries")
	}
}

func TestMoodPatternsStableTrend(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset < 10; offset++ {
		f.moods = append(f.moods, moodAt(offset, 12, 6))
	}
	e := newTestEngine(f)

	res, err := e.MoodPatterns(30)
	if err != nil {
		t.Fatalf("MoodPatterns: %v", err)
	}
	if res.TrendAnalysis.Direction != "stable" {
		t.Errorf("Direction = %q, want stable", res.TrendAnalysis.Direction)
	}
	if !containsString(res.Insights, "Your overall mood has been relatively stable during this period.") {
		t.Errorf("missing stable insight, got %v", res.Insights)
	}
}

func containsString(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
