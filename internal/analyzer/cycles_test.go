package analyzer

import (
	"testing"
)

func TestMoodCyclesInsufficientRows(t *testing.T) {
	e := newTestEngine(weekendFixture(10))

	res, err := e.MoodCycles(10)
	if err != nil {
		t.Fatalf("MoodCycles: %v", err)
	}
	if res.Status != StatusInsufficientData {
		t.Errorf("Status = %q, want insufficient_data", res.Status)
	}
}

func TestMoodCyclesWeeklyPattern(t *testing.T) {
	e := newTestEngine(weekendFixture(60))

	res, err := e.MoodCycles(60)
	if err != nil {
		t.Fatalf("MoodCycles: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q (%s), want success", res.Status, res.Message)
	}

	var weekly *Cycle
	for i := range res.Cycles {
		if res.Cycles[i].Length == 7 {
			weekly = &res.Cycles[i]
			break
		}
	}
	if weekly == nil {
		t.Fatalf("no 7-day cycle detected, cycles = %+v", res.Cycles)
	}
	if weekly.Type != "weekly" {
		t.Errorf("cycle type = %q, want weekly", weekly.Type)
	}
	if weekly.Strength < 0.5 {
		t.Errorf("cycle strength = %v, want strong lag-7 autocorrelation", weekly.Strength)
	}

	if !containsString(res.Insights, "Your mood appears to follow a weekly cycle.") {
		t.Errorf("missing weekly insight, got %v", res.Insights)
	}

	// Cycles are ranked by strength, so the dominant 7-day rhythm
	// comes first.
	if len(res.Cycles) > 0 && res.Cycles[0].Length != 7 {
		t.Errorf("strongest cycle length = %d, want 7", res.Cycles[0].Length)
	}
}

func TestMoodCyclesLagBound(t *testing.T) {
	e := newTestEngine(weekendFixture(60))

	res, err := e.MoodCycles(60)
	if err != nil {
		t.Fatalf("MoodCycles: %v", err)
	}

	// 61 rows caps the lag range at 14.
	if len(res.Autocorrelation) != 14 {
		t.Errorf("got %d ACF lags, want 14", len(res.Autocorrelation))
	}
	if len(res.PartialAutocorrelation) != 14 {
		t.Errorf("got %d PACF lags, want 14", len(res.PartialAutocorrelation))
	}
	for i, v := range res.Autocorrelation {
		if v.Lag != i+1 {
			t.Fatalf("Autocorrelation[%d].Lag = %d, want %d (lag 0 excluded)", i, v.Lag, i+1)
		}
	}
}

func TestMoodCyclesHarmonicSuppression(t *testing.T) {
	// Alternating daily mood has significant positive autocorrelation
	// at every even lag; only lag 2 is a real cycle, the rest are
	// harmonics of it.
	f := &fakeSource{}
	for offset := 0; offset <= 30; offset++ {
		level := 4.0
		if (30-offset)%2 == 0 {
			level = 8.0
		}
		f.moods = append(f.moods, moodAt(offset, 12, level))
	}
	e := newTestEngine(f)

	res, err := e.MoodCycles(30)
	if err != nil {
		t.Fatalf("MoodCycles: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", res.Status)
	}

	for _, c := range res.Cycles {
		if c.Length != 2 && c.Length%2 == 0 {
			t.Errorf("harmonic cycle length %d should be suppressed", c.Length)
		}
	}
	if !hasCycleLength(res.Cycles, 2) {
		t.Errorf("primary 2-day cycle missing, cycles = %+v", res.Cycles)
	}
}

func TestMoodCyclesConstantSeriesReportsError(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset <= 30; offset++ {
		f.moods = append(f.moods, moodAt(offset, 12, 6))
	}
	e := newTestEngine(f)

	res, err := e.MoodCycles(30)
	if err != nil {
		t.Fatalf("MoodCycles: %v", err)
	}
	if res.Status != StatusError {
		t.Errorf("Status = %q, want error for a constant series", res.Status)
	}
	if len(res.Cycles) != 0 {
		t.Errorf("cycles = %+v, want none", res.Cycles)
	}
}
