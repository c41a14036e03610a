package analyzer

import (
	"fmt"
	"math"
	"sort"

	"github.com/blackwell-systems/moodwatch/internal/stats"
)

// insightCorrelation is the magnitude a correlation must cross before
// it is phrased as an insight.
const insightCorrelation = 0.3

// LaggedCorrelations cross-correlates daily mood against each
// predictor shifted back by 1..maxLag days. A predictor is retained
// only when its strongest-lag absolute correlation exceeds the
// configured floor; retained predictors are ranked by that magnitude.
func (e *Engine) LaggedCorrelations(days, maxLag int) (*LagsResult, error) {
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

	if !table.hasMood {
		return &LagsResult{
			Status:   StatusInsufficientData,
			Message:  "No mood data available for analysis",
			Insights: []string{},
		}, nil
	}

	predictors := table.eligiblePredictors()
	if len(predictors) == 0 {
		return &LagsResult{
			Status:   StatusInsufficientData,
			Message:  "No predictor variables (activities, sleep) available for analysis",
			Insights: []string{},
		}, nil
	}

	n := table.rows()
	var lagResults []LagResult

	for _, pred := range predictors {
		var correlations []LagCorrelation
		for lag := 1; lag <= maxLag && lag < n; lag++ {
			// Align the predictor value from lag days earlier with
			// today's mood, dropping the first lag rows.
			r, p, err := stats.Pearson(table.mood[lag:], pred.values[:n-lag])
			if err != nil {
				continue
			}
			correlations = append(correlations, LagCorrelation{
				Lag:         lag,
				Correlation: r,
				PValue:      p,
				Significant: p < 0.05,
			})
		}
		if len(correlations) == 0 {
			continue
		}

		strongest := correlations[0]
		for _, c := range correlations[1:] {
			if math.Abs(c.Correlation) > math.Abs(strongest.Correlation) {
				strongest = c
			}
		}

		if math.Abs(strongest.Correlation) > e.cfg.CorrelationFloor {
			lagResults = append(lagResults, LagResult{
				Variable:        pred.name,
				LagCorrelations: correlations,
				StrongestLag:    strongest,
			})
		}
	}

	sort.SliceStable(lagResults, func(i, j int) bool {
		return math.Abs(lagResults[i].StrongestLag.Correlation) >
			math.Abs(lagResults[j].StrongestLag.Correlation)
	})

	insights := []string{}
	for _, result := range lagResults {
		s := result.StrongestLag
		if !s.Significant {
			continue
		}
		switch {
		case s.Correlation > insightCorrelation:
			insights = append(insights, fmt.Sprintf(
				"%s appears to positively affect your mood %d %s later.",
				titleVar(result.Variable), s.Lag, dayWord(s.Lag)))
		case s.Correlation < -insightCorrelation:
			insights = append(insights, fmt.Sprintf(
				"%s appears to negatively affect your mood %d %s later.",
				titleVar(result.Variable), s.Lag, dayWord(s.Lag)))
		}
	}

	return &LagsResult{
		Status:     StatusSuccess,
		LagResults: lagResults,
		Insights:   insights,
	}, nil
}
