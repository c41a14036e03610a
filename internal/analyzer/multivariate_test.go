package analyzer

import (
	"math"
	"math/rand"
	"testing"
)

// collinearFixture logs mood plus two predictors tied to it: exercise
// duration moves with mood, sleep duration against it.
func collinearFixture(days int) *fakeSource {
	f := &fakeSource{}
	for offset := 0; offset <= days; offset++ {
		i := days - offset
		m := variedMood(i)
		f.moods = append(f.moods, moodAt(offset, 12, m))
		f.activities = append(f.activities, activityAt(offset, "exercise", int(m*10)))
		f.sleeps = append(f.sleeps, sleepAt(offset, 12-m, nil))
	}
	return f
}

func TestMultivariateInsufficientRows(t *testing.T) {
	e := newTestEngine(collinearFixture(10))

	res, err := e.Multivariate(10)
	if err != nil {
		t.Fatalf("Multivariate: %v", err)
	}
	if res.Status != StatusInsufficientData {
		t.Errorf("Status = %q, want insufficient_data", res.Status)
	}
}

func TestMultivariateNeedsTwoPredictors(t *testing.T) {
	f := &fakeSource{}
	for offset := 0; offset <= 20; offset++ {
		f.moods = append(f.moods, moodAt(offset, 12, variedMood(offset)))
		f.activities = append(f.activities, activityAt(offset, "exercise", 30+offset%5*10))
	}
	e := newTestEngine(f)

	res, err := e.Multivariate(20)
	if err != nil {
		t.Fatalf("Multivariate: %v", err)
	}
	if res.Status != StatusInsufficientData {
		t.Fatalf("Status = %q, want insufficient_data", res.Status)
	}
	if res.Message != "Need at least 2 predictor variables for multivariate analysis" {
		t.Errorf("unexpected message %q", res.Message)
	}
}

func TestMultivariateDominantComponent(t *testing.T) {
	e := newTestEngine(collinearFixture(20))

	res, err := e.Multivariate(20)
	if err != nil {
		t.Fatalf("Multivariate: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", res.Status)
	}

	pca := res.PCAAnalysis
	if pca == nil || pca.Error != "" {
		t.Fatalf("PCA failed: %+v", pca)
	}

	// All three variables are linear in mood, so the first component
	// carries essentially all the variance.
	if pca.ExplainedVariance[0] < 0.95 {
		t.Errorf("ExplainedVariance[0] = %v, want > 0.95", pca.ExplainedVariance[0])
	}

	// Below 30 rows no VAR model is fitted.
	if res.VARAnalysis != nil {
		t.Errorf("VARAnalysis = %+v, want nil for 21 rows", res.VARAnalysis)
	}
}

// TestPCAAnalysisMoodComponent pins the component selection and the
// relationship signs on an exactly constructed standardized matrix:
// two orthogonal unit patterns m and w, with columns mood=m,
// x1=(m+w)/sqrt2, x2=w. Mood's loadings across the components are
// (0.5, 0.707, 0.5), so the middle component is the mood component,
// where x1 loads 0 and x2 loads opposite to mood.
func TestPCAAnalysisMoodComponent(t *testing.T) {
	const n = 20
	root2 := math.Sqrt2

	scaled := make([][]float64, n)
	for i := 0; i < n; i++ {
		m := 1.0
		if i%4 >= 2 {
			m = -1.0
		}
		w := 1.0
		if i%2 == 1 {
			w = -1.0
		}
		scaled[i] = []float64{m, (m + w) / root2, w}
	}

	pca := pcaAnalysis(scaled, []string{"mood_mean", "exercise_duration", "sleep_duration"})
	if pca.Error != "" {
		t.Fatalf("pcaAnalysis: %v", pca.Error)
	}

	if pca.MoodPrincipalComponent != 2 {
		t.Fatalf("MoodPrincipalComponent = %d, want 2", pca.MoodPrincipalComponent)
	}

	if len(pca.MoodRelatedVariables) != 1 {
		t.Fatalf("MoodRelatedVariables = %+v, want exactly sleep_duration", pca.MoodRelatedVariables)
	}
	related := pca.MoodRelatedVariables[0]
	if related.Variable != "sleep_duration" {
		t.Errorf("related variable = %q, want sleep_duration", related.Variable)
	}
	if related.Relationship != "negative" {
		t.Errorf("relationship = %q, want negative", related.Relationship)
	}
	if math.Abs(math.Abs(related.Loading)-1/root2) > 1e-6 {
		t.Errorf("loading = %v, want magnitude ~0.707", related.Loading)
	}
}

func TestMultivariateVARModelOrder(t *testing.T) {
	// Noisy relationships so the VAR design is never exactly singular.
	rng := rand.New(rand.NewSource(11))
	f := &fakeSource{}
	for offset := 0; offset <= 60; offset++ {
		i := 60 - offset
		m := variedMood(i) + rng.Float64()
		f.moods = append(f.moods, moodAt(offset, 12, m))
		f.activities = append(f.activities,
			activityAt(offset, "exercise", 20+int(m*5)+rng.Intn(15)))
		f.sleeps = append(f.sleeps, sleepAt(offset, 5+rng.Float64()*4, nil))
	}
	e := newTestEngine(f)

	res, err := e.Multivariate(60)
	if err != nil {
		t.Fatalf("Multivariate: %v", err)
	}
	if res.Status != StatusSuccess {
		t.Fatalf("Status = %q, want success", res.Status)
	}
	if res.VARAnalysis == nil {
		t.Fatal("VARAnalysis missing with 61 rows")
	}
	if res.VARAnalysis.Error != "" {
		t.Fatalf("VAR failed: %v", res.VARAnalysis.Error)
	}
	if res.VARAnalysis.ModelOrder != 7 {
		t.Errorf("ModelOrder = %d, want 7", res.VARAnalysis.ModelOrder)
	}
	for i := 1; i < len(res.VARAnalysis.GrangerCausality); i++ {
		if res.VARAnalysis.GrangerCausality[i].PValue < res.VARAnalysis.GrangerCausality[i-1].PValue {
			t.Error("VAR causality results not sorted ascending by p-value")
		}
	}
}
