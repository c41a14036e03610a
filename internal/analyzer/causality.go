package analyzer

import (
	"fmt"
	"sort"

	"github.com/blackwell-systems/moodwatch/internal/stats"
)

// GrangerCausality runs Granger-style causality tests between each
// predictor and mood, in both directions, at every lag up to maxLag.
// A direction that cannot be fitted (degenerate variance,
// collinearity) is skipped rather than failing the analysis; sparse
// data makes that a normal outcome.
func (e *Engine) GrangerCausality(days, maxLag int) (*CausalitiesResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}
	if err := validateMaxLag(maxLag); err != nil {
		return nil, err
	}

	table, err := e.loadDaily(days)
	if err != nil {
		return nil, err
	}

	minRows := maxLag + 10
	if !table.hasMood || table.rows() < minRows {
		return &CausalitiesResult{
			Status:   StatusInsufficientData,
			Message:  fmt.Sprintf("Need at least %d days of data for Granger causality testing", minRows),
			Insights: []string{},
		}, nil
	}

	predictors := table.eligiblePredictors()
	if len(predictors) == 0 {
		return &CausalitiesResult{
			Status:   StatusInsufficientData,
			Message:  "No predictor variables (activities, sleep) available for analysis",
			Insights: []string{},
		}, nil
	}

	var results []CausalityResult
	for _, pred := range predictors {
		forward := testDirection(table.mood, pred.values, maxLag,
			pred.name, fmt.Sprintf("%s -> mood", pred.name))
		if forward != nil && forward.HasCausality {
			results = append(results, *forward)
		}

		reverse := testDirection(pred.values, table.mood, maxLag,
			pred.name, fmt.Sprintf("mood -> %s", pred.name))
		if reverse != nil && reverse.HasCausality {
			results = append(results, *reverse)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MostSignificantLag.PValue < results[j].MostSignificantLag.PValue
	})

	insights := []string{}
	for _, result := range results {
		lag := result.MostSignificantLag.Lag
		name := humanizeVar(result.Variable)
		if result.Direction == fmt.Sprintf("%s -> mood", result.Variable) {
			insights = append(insights, fmt.Sprintf(
				"Changes in %s appear to precede changes in your mood by %d %s.",
				name, lag, dayWord(lag)))
		} else {
			insights = append(insights, fmt.Sprintf(
				"Changes in your mood appear to precede changes in %s by %d %s.",
				name, lag, dayWord(lag)))
		}
	}

	return &CausalitiesResult{
		Status:           StatusSuccess,
		CausalityResults: results,
		Insights:         insights,
	}, nil
}

// testDirection tests whether x Granger-causes y at every lag up to
// maxLag. Returns nil when any lag fails to fit, skipping the whole
// direction.
func testDirection(y, x []float64, maxLag int, variable, direction string) *CausalityResult {
	pValues := make([]PValueAtLag, 0, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		_, p, err := stats.GrangerCause(y, x, lag)
		if err != nil {
			return nil
		}
		pValues = append(pValues, PValueAtLag{
			Lag:         lag,
			PValue:      p,
			Significant: p < 0.05,
		})
	}

	result := &CausalityResult{
		Variable:  variable,
		Direction: direction,
		PValues:   pValues,
	}

	for i := range pValues {
		if !pValues[i].Significant {
			continue
		}
		if result.MostSignificantLag == nil || pValues[i].PValue < result.MostSignificantLag.PValue {
			result.MostSignificantLag = &pValues[i]
		}
	}
	result.HasCausality = result.MostSignificantLag != nil

	return result
}
