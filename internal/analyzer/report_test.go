package analyzer

import (
	"math/rand"
	"testing"
)

// richFixture extends the driven-mood history with noisy sleep so every
// analysis has enough signal to succeed.
func richFixture(days int) *fakeSource {
	f := drivenMoodFixture(days)
	rng := rand.New(rand.NewSource(3))
	for offset := 0; offset <= days; offset++ {
		f.sleeps = append(f.sleeps, sleepAt(offset, 5+rng.Float64()*4, nil))
	}
	return f
}

func TestComprehensiveValidation(t *testing.T) {
	e := newTestEngine(&fakeSource{})

	if _, err := e.Comprehensive(0, 7); err == nil {
		t.Error("Comprehensive with days=0 should fail")
	}
	if _, err := e.Comprehensive(30, 0); err == nil {
		t.Error("Comprehensive with maxLag=0 should fail")
	}
}

func TestComprehensiveEmptyStore(t *testing.T) {
	e := newTestEngine(&fakeSource{})

	res, err := e.Comprehensive(30, 7)
	if err != nil {
		t.Fatalf("Comprehensive: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Errorf("Status = %q, want success even with no data", res.Status)
	}

	subStatuses := map[string]string{
		"mood_patterns":              res.MoodPatterns.Status,
		"lagged_correlations":        res.LaggedCorrelations.Status,
		"granger_causality":          res.GrangerCausality.Status,
		"multivariate_relationships": res.MultivariateRelationships.Status,
		"mood_cycles":                res.MoodCycles.Status,
		"mood_clusters":              res.MoodClusters.Status,
	}
	for name, status := range subStatuses {
		if status != StatusInsufficientData {
			t.Errorf("%s status = %q, want insufficient_data", name, status)
		}
	}

	if res.AllInsights == nil || len(res.AllInsights) != 0 {
		t.Errorf("AllInsights = %v, want empty non-nil slice", res.AllInsights)
	}
	if res.KeyInsights == nil || len(res.KeyInsights) != 0 {
		t.Errorf("KeyInsights = %v, want empty non-nil slice", res.KeyInsights)
	}
}

func TestComprehensiveRichHistory(t *testing.T) {
	e := newTestEngine(richFixture(60))

	res, err := e.Comprehensive(60, 7)
	if err != nil {
		t.Fatalf("Comprehensive: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", res.Status)
	}

	subStatuses := map[string]string{
		"mood_patterns":              res.MoodPatterns.Status,
		"lagged_correlations":        res.LaggedCorrelations.Status,
		"granger_causality":          res.GrangerCausality.Status,
		"multivariate_relationships": res.MultivariateRelationships.Status,
		"mood_cycles":                res.MoodCycles.Status,
		"mood_clusters":              res.MoodClusters.Status,
	}
	for name, status := range subStatuses {
		if status != StatusSuccess {
			t.Errorf("%s status = %q, want success", name, status)
		}
	}

	if len(res.AllInsights) == 0 {
		t.Error("AllInsights empty for a rich history")
	}
	if len(res.KeyInsights) == 0 {
		t.Error("KeyInsights empty for a rich history")
	}
}

func TestComprehensiveKeyInsightsCuration(t *testing.T) {
	e := newTestEngine(richFixture(60))

	res, err := e.Comprehensive(60, 7)
	if err != nil {
		t.Fatalf("Comprehensive: %v", err)
	}

	seen := make(map[string]bool)
	for _, insight := range res.KeyInsights {
		if seen[insight] {
			t.Errorf("duplicate key insight %q", insight)
		}
		seen[insight] = true

		if !containsString(res.AllInsights, insight) {
			t.Errorf("key insight %q missing from AllInsights", insight)
		}
	}
}

func TestCurateKeyInsightsCapsAndDedupes(t *testing.T) {
	res := &ComprehensiveResult{
		MoodPatterns: &PatternsResult{Status: StatusSuccess},
		MoodCycles: &CyclesResult{
			Status:   StatusSuccess,
			Insights: []string{"cycle a", "cycle b"},
		},
		GrangerCausality: &CausalitiesResult{
			Status:   StatusSuccess,
			Insights: []string{"cause a", "cause b", "cause c"},
		},
		LaggedCorrelations: &LagsResult{
			Status:   StatusSuccess,
			Insights: []string{"lag a", "cycle a"},
		},
		MultivariateRelationships: &MultivariateResult{
			Status:   StatusError,
			Insights: []string{"never included"},
		},
		MoodClusters: &ClustersResult{Status: StatusSuccess},
	}

	got := curateKeyInsights(res)
	want := []string{"cycle a", "cycle b", "cause a", "cause b", "lag a"}
	if len(got) != len(want) {
		t.Fatalf("curateKeyInsights = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key insight %d = %q, want %q", i, got[i], want[i])
		}
	}
}
