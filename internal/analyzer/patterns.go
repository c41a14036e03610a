package analyzer

import (
	"fmt"
	"sort"
	"time"

	"github.com/blackwell-systems/moodwatch/internal/stats"
	"github.com/blackwell-systems/moodwatch/internal/store"
)

const (
	minPatternEntries = 5
	minTrendEntries   = 7
	minWeeklyEntries  = 14

	trendMargin       = 0.05
	weeklyTrendMargin = 0.1
)

// MoodPatterns analyzes the raw mood entries of the last days for
// time-of-day, day-of-week, and linear trend patterns.
func (e *Engine) MoodPatterns(days int) (*PatternsResult, error) {
	if err := validateDays(days); err != nil {
		return nil, err
	}

	moods, err := e.moodEntries(days)
	if err != nil {
		return nil, err
	}

	if len(moods) < minPatternEntries {
		return &PatternsResult{
			Status:   StatusInsufficientData,
			Message:  "Not enough mood data to identify patterns",
			Insights: []string{},
		}, nil
	}

	res := &PatternsResult{
		Status:    StatusSuccess,
		TimeOfDay: e.timeOfDayPattern(moods),
		DayOfWeek: e.dayOfWeekPattern(moods),
		Insights:  []string{},
	}
	res.TrendAnalysis = trendAnalysis(moods)

	if res.TimeOfDay.BestTime != "" {
		res.Insights = append(res.Insights,
			fmt.Sprintf("Your mood tends to be best during the %s.", res.TimeOfDay.BestTime))
	}

	switch res.DayOfWeek.BetterPeriod {
	case "weekends":
		res.Insights = append(res.Insights, "Your mood is typically better on weekends compared to weekdays.")
	case "weekdays":
		res.Insights = append(res.Insights, "Your mood is typically better on weekdays compared to weekends.")
	}

	if res.TrendAnalysis != nil {
		switch res.TrendAnalysis.Direction {
		case "improving":
			res.Insights = append(res.Insights, "Your overall mood has been improving during this period.")
		case "declining":
			res.Insights = append(res.Insights, "Your overall mood has been declining during this period.")
		default:
			res.Insights = append(res.Insights, "Your overall mood has been relatively stable during this period.")
		}
	}

	return res, nil
}

// timeOfDayPattern computes mean mood per hour band. Night entries
// (00:00-04:59) fall outside every band.
func (e *Engine) timeOfDayPattern(moods []store.MoodEntry) *TimeOfDayPattern {
	var morning, afternoon, evening []float64
	for _, m := range moods {
		switch h := m.Timestamp.Hour(); {
		case h >= 5 && h <= 11:
			morning = append(morning, m.MoodLevel)
		case h >= 12 && h <= 17:
			afternoon = append(afternoon, m.MoodLevel)
		case h >= 18 && h <= 23:
			evening = append(evening, m.MoodLevel)
		}
	}

	p := &TimeOfDayPattern{
		Morning:   meanOrNil(morning),
		Afternoon: meanOrNil(afternoon),
		Evening:   meanOrNil(evening),
	}
	p.BestTime = bestTimeOfDay(p, e.cfg.TimeOfDayMargin)
	return p
}

// bestTimeOfDay returns the band with the highest mean, but only when
// it beats every other populated band by more than the margin. Ties
// and near-ties report nothing rather than an arbitrary pick.
func bestTimeOfDay(p *TimeOfDayPattern, margin float64) string {
	type band struct {
		name string
		mean float64
	}
	var bands []band
	if p.Morning != nil {
		bands = append(bands, band{"morning", *p.Morning})
	}
	if p.Afternoon != nil {
		bands = append(bands, band{"afternoon", *p.Afternoon})
	}
	if p.Evening != nil {
		bands = append(bands, band{"evening", *p.Evening})
	}
	if len(bands) == 0 {
		return ""
	}

	best := bands[0]
	for _, b := range bands[1:] {
		if b.mean > best.mean {
			best = b
		}
	}
	for _, b := range bands {
		if b.name != best.name && best.mean-b.mean <= margin {
			return ""
		}
	}
	return best.name
}

func (e *Engine) dayOfWeekPattern(moods []store.MoodEntry) *DayOfWeekPattern {
	var weekday, weekend []float64
	for _, m := range moods {
		switch m.Timestamp.Weekday() {
		case time.Saturday, time.Sunday:
			weekend = append(weekend, m.MoodLevel)
		default:
			weekday = append(weekday, m.MoodLevel)
		}
	}

	p := &DayOfWeekPattern{
		Weekday:      meanOrNil(weekday),
		Weekend:      meanOrNil(weekend),
		BetterPeriod: "similar",
	}
	if p.Weekday != nil && p.Weekend != nil {
		switch {
		case *p.Weekend > *p.Weekday+e.cfg.PeriodMargin:
			p.BetterPeriod = "weekends"
		case *p.Weekday > *p.Weekend+e.cfg.PeriodMargin:
			p.BetterPeriod = "weekdays"
		}
	}
	return p
}

// trendAnalysis fits the OLS slope of mood against entry index, so
// gaps in logging compress rather than stretch the timeline. With at
// least 14 entries it also fits a slope over the means of consecutive
// 7-entry blocks, dropping a trailing partial block.
func trendAnalysis(moods []store.MoodEntry) *TrendAnalysis {
	if len(moods) < minTrendEntries {
		return nil
	}

	sorted := make([]store.MoodEntry, len(moods))
	copy(sorted, moods)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	values := make([]float64, len(sorted))
	for i, m := range sorted {
		values[i] = m.MoodLevel
	}

	slope := stats.Slope(values)
	res := &TrendAnalysis{
		OverallTrend: slope,
		Direction:    trendDirection(slope, trendMargin),
	}

	if len(values) >= minWeeklyEntries {
		var blockMeans []float64
		for i := 0; i+7 <= len(values); i += 7 {
			blockMeans = append(blockMeans, stats.Mean(values[i:i+7]))
		}
		if len(blockMeans) >= 2 {
			weekly := stats.Slope(blockMeans)
			res.WeeklyTrend = &weekly
			res.WeeklyDirection = trendDirection(weekly, weeklyTrendMargin)
		}
	}

	return res
}

func trendDirection(slope, margin float64) string {
	switch {
	case slope > margin:
		return "improving"
	case slope < -margin:
		return "declining"
	default:
		return "stable"
	}
}

func meanOrNil(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	m := stats.Mean(xs)
	return &m
}
