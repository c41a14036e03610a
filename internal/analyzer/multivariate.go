package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/blackwell-systems/moodwatch/internal/stats"
)

const (
	minMultivariateRows = 14
	minVARRows          = 30

	// pcaLoadingFloor is the minimum absolute loading for a predictor
	// to count as co-loading with mood on the same component.
	pcaLoadingFloor = 0.3
)

// Multivariate standardizes mood plus every eligible predictor and
// decomposes the joint structure: PCA to find which variables load on
// the same component as mood, and, with enough data, a small vector
// autoregression with pairwise causality cross-checks. A failed
// sub-fit degrades to an error payload for that sub-analysis only.
func (e *Engine) Multivariate(days int) (*MultivariateResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	table, err := e.loadDaily(days)
	if err != nil {
		return nil, err
	}

	if !table.hasMood || table.rows() < minMultivariateRows {
		return &MultivariateResult{
			Status:   StatusInsufficientData,
			Message:  fmt.Sprintf("Need at least %d days of data for multivariate analysis", minMultivariateRows),
			Insights: []string{},
		}, nil
	}

	predictors := table.eligiblePredictors()
	if len(predictors) < 2 {
		return &MultivariateResult{
			Status:   StatusInsufficientData,
			Message:  "Need at least 2 predictor variables for multivariate analysis",
			Insights: []string{},
		}, nil
	}

	// Column 0 is mood, then the predictors.
	n := table.rows()
	names := make([]string, 0, len(predictors)+1)
	names = append(names, "mood_mean")
	for _, p := range predictors {
		names = append(names, p.name)
	}

	matrix := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, len(names))
		row[0] = table.mood[i]
		for j, p := range predictors {
			row[j+1] = p.values[i]
		}
		matrix[i] = row
	}
	scaled := stats.Standardize(matrix)

	res := &MultivariateResult{
		Status:      StatusSuccess,
		PCAAnalysis: pcaAnalysis(scaled, names),
		Insights:    []string{},
	}
	if n >= minVARRows {
		res.VARAnalysis = varAnalysis(scaled, names, n)
	}

	for i, v := range res.PCAAnalysis.MoodRelatedVariables {
		if i == 3 {
			break
		}
		if v.Relationship == "positive" {
			res.Insights = append(res.Insights, fmt.Sprintf(
				"%s tends to move in the same direction as your mood.", titleVar(v.Variable)))
		} else {
			res.Insights = append(res.Insights, fmt.Sprintf(
				"%s tends to move in the opposite direction from your mood.", titleVar(v.Variable)))
		}
	}

	if res.VARAnalysis != nil {
		for i, g := range res.VARAnalysis.GrangerCausality {
			if i == 3 {
				break
			}
			name := humanizeVar(g.Variable)
			if g.Direction == fmt.Sprintf("%s -> mood", g.Variable) {
				res.Insights = append(res.Insights, fmt.Sprintf(
					"Changes in %s appear to predict changes in your mood.", name))
			} else {
				res.Insights = append(res.Insights, fmt.Sprintf(
					"Changes in your mood appear to predict changes in %s.", name))
			}
		}
	}

	return res, nil
}

// pcaAnalysis finds the component mood loads on most heavily and the
// predictors that co-load with it.
func pcaAnalysis(scaled [][]float64, names []string) *PCAAnalysis {
	pca, err := stats.PCA(scaled)
	if err != nil {
		return &PCAAnalysis{Error: err.Error()}
	}

	moodPC := 0
	for i := range pca.Components {
		if math.Abs(pca.Components[i][0]) > math.Abs(pca.Components[moodPC][0]) {
			moodPC = i
		}
	}
	moodLoading := pca.Components[moodPC][0]

	var related []MoodRelatedVariable
	for j := 1; j < len(names); j++ {
		loading := pca.Components[moodPC][j]
		if math.Abs(loading) <= pcaLoadingFloor {
			continue
		}
		relationship := "negative"
		if loading*moodLoading > 0 {
			relationship = "positive"
		}
		related = append(related, MoodRelatedVariable{
			Variable:     names[j],
			Loading:      loading,
			Relationship: relationship,
		})
	}
	sort.SliceStable(related, func(i, j int) bool {
		return math.Abs(related[i].Loading) > math.Abs(related[j].Loading)
	})

	return &PCAAnalysis{
		ExplainedVariance:      pca.ExplainedVariance,
		MoodPrincipalComponent: moodPC + 1,
		MoodRelatedVariables:   related,
	}
}

// varAnalysis fits a VAR(p) over the standardized variables and runs
// pairwise Granger tests between mood and every other variable within
// the joint model.
func varAnalysis(scaled [][]float64, names []string, n int) *VARAnalysis {
	p := n / 5
	if p > 7 {
		p = 7
	}
	if p < 1 {
		p = 1
	}

	var results []VARGrangerResult
	for j := 1; j < len(names); j++ {
		f, pval, err := varGranger(scaled, 0, j, p)
		if err != nil {
			return &VARAnalysis{Error: err.Error()}
		}
		if pval < 0.05 {
			results = append(results, VARGrangerResult{
				Variable:      names[j],
				Direction:     fmt.Sprintf("%s -> mood", names[j]),
				PValue:        pval,
				TestStatistic: f,
				Significant:   true,
			})
		}

		f, pval, err = varGranger(scaled, j, 0, p)
		if err != nil {
			return &VARAnalysis{Error: err.Error()}
		}
		if pval < 0.05 {
			results = append(results, VARGrangerResult{
				Variable:      names[j],
				Direction:     fmt.Sprintf("mood -> %s", names[j]),
				PValue:        pval,
				TestStatistic: f,
				Significant:   true,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].PValue < results[j].PValue
	})

	return &VARAnalysis{
		ModelOrder:       p,
		GrangerCausality: results,
	}
}

// varGranger tests whether the driver variable's lags improve the
// target's equation within a VAR(p) over all columns of scaled. The
// unrestricted design regresses target_t on an intercept plus p lags
// of every variable; the restricted design drops the driver's lags.
func varGranger(scaled [][]float64, target, driver, p int) (f, pval float64, err error) {
	n := len(scaled)
	k := len(scaled[0])
	obs := n - p
	df2 := obs - (1 + p*k)
	if df2 <= 0 {
		return 0, 0, stats.ErrDegenerate
	}

	y := make([]float64, obs)
	full := make([][]float64, obs)
	restricted := make([][]float64, obs)
	for t := p; t < n; t++ {
		i := t - p
		y[i] = scaled[t][target]

		fullRow := make([]float64, 0, 1+p*k)
		restrictedRow := make([]float64, 0, 1+p*(k-1))
		fullRow = append(fullRow, 1)
		restrictedRow = append(restrictedRow, 1)
		for lag := 1; lag <= p; lag++ {
			for v := 0; v < k; v++ {
				fullRow = append(fullRow, scaled[t-lag][v])
				if v != driver {
					restrictedRow = append(restrictedRow, scaled[t-lag][v])
				}
			}
		}
		full[i] = fullRow
		restricted[i] = restrictedRow
	}

	_, rssU, err := stats.OLS(full, y)
	if err != nil {
		return 0, 0, err
	}
	_, rssR, err := stats.OLS(restricted, y)
	if err != nil {
		return 0, 0, err
	}
	if rssU < 1e-12 {
		return 0, 0, stats.ErrDegenerate
	}

	f = ((rssR - rssU) / float64(p)) / (rssU / float64(df2))
	if f < 0 {
		f = 0
	}
	return f, stats.FTail(f, float64(p), float64(df2)), nil
}
