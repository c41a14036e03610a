package analyzer

import (
	"golang.org/x/sync/errgroup"
)

// Comprehensive runs every analysis over one window. The sub-analyses
// are independent: a failure or insufficient-data outcome in one never
// blocks the others, and infrastructure errors are downgraded to
// error-status payloads so the combined report always materializes.
func (e *Engine) Comprehensive(days, maxLag int) (*ComprehensiveResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}
	if err := validateMaxLag(maxLag); err != nil {
		return nil, err
	}

	res := &ComprehensiveResult{Status: StatusSuccess}

	// The event source is read-only for the duration of the call, so
	// the sub-analyses can run concurrently.
	var g errgroup.Group
	g.Go(func() error {
		r, err := e.MoodPatterns(days)
		if err != nil {
			r = &PatternsResult{Status: StatusError, Message: err.Error(), Insights: []string{}}
		}
		res.MoodPatterns = r
		return nil
	})
	g.Go(func() error {
		r, err := e.LaggedCorrelations(days, maxLag)
		if err != nil {
			r = &LagsResult{Status: StatusError, Message: err.Error(), Insights: []string{}}
		}
		res.LaggedCorrelations = r
		return nil
	})
	g.Go(func() error {
		r, err := e.GrangerCausality(days, maxLag)
		if err != nil {
			r = &CausalitiesResult{Status: StatusError, Message: err.Error(), Insights: []string{}}
		}
		res.GrangerCausality = r
		return nil
	})
	g.Go(func() error {
		r, err := e.Multivariate(days)
		if err != nil {
			r = &MultivariateResult{Status: StatusError, Message: err.Error(), Insights: []string{}}
		}
		res.MultivariateRelationships = r
		return nil
	})
	g.Go(func() error {
		r, err := e.MoodCycles(days)
		if err != nil {
			r = &CyclesResult{Status: StatusError, Message: err.Error(), Insights: []string{}}
		}
		res.MoodCycles = r
		return nil
	})
	g.Go(func() error {
		r, err := e.MoodClusters(days)
		if err != nil {
			r = &ClustersResult{Status: StatusError, Message: err.Error(), Insights: []string{}}
		}
		res.MoodClusters = r
		return nil
	})
	_ = g.Wait()

	res.AllInsights = []string{}
	appendIf := func(status string, insights []string) {
		if status == StatusSuccess {
			res.AllInsights = append(res.AllInsights, insights...)
		}
	}
	appendIf(res.MoodPatterns.Status, res.MoodPatterns.Insights)
	appendIf(res.LaggedCorrelations.Status, res.LaggedCorrelations.Insights)
	appendIf(res.GrangerCausality.Status, res.GrangerCausality.Insights)
	appendIf(res.MultivariateRelationships.Status, res.MultivariateRelationships.Insights)
	appendIf(res.MoodCycles.Status, res.MoodCycles.Insights)
	appendIf(res.MoodClusters.Status, res.MoodClusters.Insights)

	res.KeyInsights = curateKeyInsights(res)
	return res, nil
}

// curateKeyInsights builds the short headline list: cycle insights
// first, then the two strongest causality, lag-correlation, and
// multivariate insights, preserving first-seen order and dropping
// exact duplicates.
func curateKeyInsights(res *ComprehensiveResult) []string {
	var candidates []string
	if res.MoodCycles.Status == StatusSuccess {
		candidates = append(candidates, res.MoodCycles.Insights...)
	}
	if res.GrangerCausality.Status == StatusSuccess {
		candidates = append(candidates, firstN(res.GrangerCausality.Insights, 2)...)
	}
	if res.LaggedCorrelations.Status == StatusSuccess {
		candidates = append(candidates, firstN(res.LaggedCorrelations.Insights, 2)...)
	}
	if res.MultivariateRelationships.Status == StatusSuccess {
		candidates = append(candidates, firstN(res.MultivariateRelationships.Insights, 2)...)
	}

	key := []string{}
	seen := make(map[string]bool)
	for _, insight := range candidates {
		if !seen[insight] {
			seen[insight] = true
			key = append(key, insight)
		}
	}
	return key
}

func firstN(xs []string, n int) []string {
	if len(xs) > n {
		return xs[:n]
	}
	return xs
}
